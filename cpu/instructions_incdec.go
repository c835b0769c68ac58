package cpu

func (c *Cpu) INC() { r := c.readOperand() + 1; c.writeOperand(r); c.setZN(r) }
func (c *Cpu) DEC() { r := c.readOperand() - 1; c.writeOperand(r); c.setZN(r) }

func (c *Cpu) INX() { c.X++; c.setZN(c.X) }
func (c *Cpu) INY() { c.Y++; c.setZN(c.Y) }
func (c *Cpu) DEX() { c.X--; c.setZN(c.X) }
func (c *Cpu) DEY() { c.Y--; c.setZN(c.Y) }
