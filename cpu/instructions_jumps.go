package cpu

func (c *Cpu) JMP() { c.PC = c.addr }

// JSR pushes the address of the JSR's own last byte, not the address of the
// next instruction: by the time this runs, decode has already advanced PC
// past both operand bytes, so PC-1 is exactly that last byte.
func (c *Cpu) JSR() {
	c.pushU16(c.PC - 1)
	c.PC = c.addr
}

func (c *Cpu) RTS() {
	c.PC = c.pullU16() + 1
}
