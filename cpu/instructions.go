package cpu

// Load/Store/Transfer. LDA/LDX/LDY set Z,N from the loaded byte. STA/STX/STY
// set no flags. The transfers set Z,N from the destination register, except
// TXS, which does not touch the flags at all.

func (c *Cpu) LDA() { c.A = c.readOperand(); c.setZN(c.A) }
func (c *Cpu) LDX() { c.X = c.readOperand(); c.setZN(c.X) }
func (c *Cpu) LDY() { c.Y = c.readOperand(); c.setZN(c.Y) }

func (c *Cpu) STA() { c.writeOperand(c.A) }
func (c *Cpu) STX() { c.writeOperand(c.X) }
func (c *Cpu) STY() { c.writeOperand(c.Y) }

func (c *Cpu) TAX() { c.X = c.A; c.setZN(c.X) }
func (c *Cpu) TAY() { c.Y = c.A; c.setZN(c.Y) }
func (c *Cpu) TXA() { c.A = c.X; c.setZN(c.A) }
func (c *Cpu) TYA() { c.A = c.Y; c.setZN(c.A) }
func (c *Cpu) TSX() { c.X = c.S; c.setZN(c.X) }
func (c *Cpu) TXS() { c.S = c.X }
