package cpu

func (c *Cpu) PHA() { c.pushU8(c.A) }

// PHP always pushes P with bits 4 (break) and 5 (unused) set, regardless of
// their live value.
func (c *Cpu) PHP() {
	c.pushU8(c.P | byte(FlagBreak) | byte(FlagUnused))
}

func (c *Cpu) PLA() { c.A = c.pullU8(); c.setZN(c.A) }

// PLP restores P from the stack but forces bit 5 set and bit 4 cleared,
// since those two bits only ever exist in pushed copies.
func (c *Cpu) PLP() {
	v := c.pullU8()
	c.P = (v | byte(FlagUnused)) &^ byte(FlagBreak)
}
