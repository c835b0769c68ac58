package cpu

// Illegal/undocumented opcodes. Where the NES-dev consensus behavior is a
// straightforward composition of two legal instructions, that composition is
// implemented directly: the read-modify-write step, then the logical or
// arithmetic step it combines (SLO = ASL then ORA, DCP = DEC then CMP,
// ISC = INC then SBC, and so on). The magic-value-dependent opcodes (XAA,
// AHX, TAS, SHX, SHY) are unstable even on real silicon; they're implemented
// here to the commonly accepted approximation and are not required for the
// correctness of any legal program.

func (c *Cpu) SLO() {
	m := c.readOperand()
	carry := m&0x80 != 0
	r := m << 1
	c.writeOperand(r)
	c.setFlag(FlagCarry, carry)
	c.A |= r
	c.setZN(c.A)
}

func (c *Cpu) RLA() {
	m := c.readOperand()
	carryIn := boolToByte(c.getFlag(FlagCarry))
	carryOut := m&0x80 != 0
	r := (m << 1) | carryIn
	c.writeOperand(r)
	c.setFlag(FlagCarry, carryOut)
	c.A &= r
	c.setZN(c.A)
}

func (c *Cpu) SRE() {
	m := c.readOperand()
	carry := m&0x01 != 0
	r := m >> 1
	c.writeOperand(r)
	c.setFlag(FlagCarry, carry)
	c.A ^= r
	c.setZN(c.A)
}

func (c *Cpu) RRA() {
	m := c.readOperand()
	carryIn := boolToByte(c.getFlag(FlagCarry))
	carryOut := m&0x01 != 0
	r := (m >> 1) | (carryIn << 7)
	c.writeOperand(r)
	c.setFlag(FlagCarry, carryOut)
	c.adc(r)
}

func (c *Cpu) SAX() { c.writeOperand(c.A & c.X) }

func (c *Cpu) LAX() {
	m := c.readOperand()
	c.A = m
	c.X = m
	c.setZN(m)
}

func (c *Cpu) DCP() {
	r := c.readOperand() - 1
	c.writeOperand(r)
	c.setFlag(FlagCarry, c.A >= r)
	c.setZN(c.A - r)
}

func (c *Cpu) ISC() {
	r := c.readOperand() + 1
	c.writeOperand(r)
	c.sbc(r)
}

// ANC is AND #imm, then copies the result's sign bit into Carry as if the
// accumulator had been shifted left through it.
func (c *Cpu) ANC() {
	c.A &= c.readOperand()
	c.setZN(c.A)
	c.setFlag(FlagCarry, c.A&0x80 != 0)
}

// ALR is AND #imm followed by LSR A.
func (c *Cpu) ALR() {
	c.A &= c.readOperand()
	carry := c.A&0x01 != 0
	c.A >>= 1
	c.setFlag(FlagCarry, carry)
	c.setZN(c.A)
}

// ARR is AND #imm followed by ROR A, with Carry and Overflow derived from
// bits 6 and 5 of the rotated result rather than the usual ROR rule.
func (c *Cpu) ARR() {
	c.A &= c.readOperand()
	carryIn := boolToByte(c.getFlag(FlagCarry))
	c.A = (c.A >> 1) | (carryIn << 7)
	c.setZN(c.A)
	c.setFlag(FlagCarry, c.A&0x40 != 0)
	c.setFlag(FlagOverflow, (c.A>>6)&1 != (c.A>>5)&1)
}

// XAA is notoriously unstable on real hardware; this implements the common
// "magic constant" consensus approximation.
func (c *Cpu) XAA() {
	c.A = (c.A | 0xEE) & c.X & c.readOperand()
	c.setZN(c.A)
}

// highPlusOne is the "& (high byte of the address + 1)" term shared by
// AHX/TAS/SHX/SHY.
func (c *Cpu) highPlusOne() byte {
	return byte(c.addr>>8) + 1
}

func (c *Cpu) AHX() {
	c.Bus.WriteU8(c.addr, c.A&c.X&c.highPlusOne())
}

func (c *Cpu) TAS() {
	c.S = c.A & c.X
	c.Bus.WriteU8(c.addr, c.S&c.highPlusOne())
}

func (c *Cpu) SHX() {
	c.Bus.WriteU8(c.addr, c.X&c.highPlusOne())
}

func (c *Cpu) SHY() {
	c.Bus.WriteU8(c.addr, c.Y&c.highPlusOne())
}

func (c *Cpu) LAS() {
	v := c.readOperand() & c.S
	c.A = v
	c.X = v
	c.S = v
	c.setZN(v)
}

// AXS (also known as SBX) sets X = (A & X) - imm, with Carry set exactly as
// CMP would set it for that subtraction.
func (c *Cpu) AXS() {
	t := c.A & c.X
	m := c.readOperand()
	c.setFlag(FlagCarry, t >= m)
	c.X = t - m
	c.setZN(c.X)
}
