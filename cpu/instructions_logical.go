package cpu

func (c *Cpu) AND() { c.A &= c.readOperand(); c.setZN(c.A) }
func (c *Cpu) ORA() { c.A |= c.readOperand(); c.setZN(c.A) }
func (c *Cpu) EOR() { c.A ^= c.readOperand(); c.setZN(c.A) }

// BIT tests A & M without storing: Z reflects the masked result, while N
// and V are copied straight from bits 7 and 6 of the memory operand, not
// from the AND result.
func (c *Cpu) BIT() {
	m := c.readOperand()
	c.setFlag(FlagZero, c.A&m == 0)
	c.setFlag(FlagNegative, m&0x80 != 0)
	c.setFlag(FlagOverflow, m&0x40 != 0)
}
