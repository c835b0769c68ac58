package cpu

// adc is the shared core of ADC. SBC(M) is arithmetically ADC(^M): t = A + M
// + C, with overflow computed against the pre-update A, so sbc reuses adc
// directly on the operand's one's complement.
func (c *Cpu) adc(m byte) {
	carry := byte(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}
	sum := int(c.A) + int(m) + int(carry)
	result := byte(sum)
	overflow := (^(c.A ^ m) & (c.A ^ result) & 0x80) != 0
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, overflow)
	c.A = result
	c.setZN(c.A)
}

func (c *Cpu) sbc(m byte) {
	c.adc(^m)
}

func (c *Cpu) ADC() { c.adc(c.readOperand()) }
func (c *Cpu) SBC() { c.sbc(c.readOperand()) }

// compare is the shared core of CMP/CPX/CPY: subtract without storing,
// setting Carry when reg >= m and Z,N from the result byte.
func (c *Cpu) compare(reg, m byte) {
	result := reg - m
	c.setFlag(FlagCarry, reg >= m)
	c.setZN(result)
}

func (c *Cpu) CMP() { c.compare(c.A, c.readOperand()) }
func (c *Cpu) CPX() { c.compare(c.X, c.readOperand()) }
func (c *Cpu) CPY() { c.compare(c.Y, c.readOperand()) }
