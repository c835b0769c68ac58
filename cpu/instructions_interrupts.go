package cpu

// BRK is a software interrupt: it pushes PC+1 (skipping BRK's signature
// byte), pushes P with B set, disables further IRQs, and vectors through
// the same address IRQ uses.
func (c *Cpu) BRK() {
	c.pushU16(c.PC + 1)
	c.pushU8(c.P | byte(FlagBreak) | byte(FlagUnused))
	c.setFlag(FlagInterrupt, true)
	c.PC = c.Bus.ReadU16(vectorIRQ)
}

// RTI is the mirror image of BRK/IRQ/NMI entry: pull P (forcing bit 5 set,
// bit 4 cleared) then pull PC.
func (c *Cpu) RTI() {
	v := c.pullU8()
	c.P = (v | byte(FlagUnused)) &^ byte(FlagBreak)
	c.PC = c.pullU16()
}

// NOP covers both the documented no-op and every illegal NOP variant. The
// illegal variants still consume an operand and may cross a page boundary
// for cycle-accounting purposes, but decode and Step already charge for
// that; there is nothing left for the handler itself to do.
func (c *Cpu) NOP() {}

// KIL halts the CPU irrecoverably; Step refuses to run any further
// instructions once Halted is true.
func (c *Cpu) KIL() { c.Halted = true }
