package cpu

func (c *Cpu) CLC() { c.setFlag(FlagCarry, false) }
func (c *Cpu) SEC() { c.setFlag(FlagCarry, true) }
func (c *Cpu) CLI() { c.setFlag(FlagInterrupt, false) }
func (c *Cpu) SEI() { c.setFlag(FlagInterrupt, true) }
func (c *Cpu) CLV() { c.setFlag(FlagOverflow, false) }
func (c *Cpu) CLD() { c.setFlag(FlagDecimal, false) }
func (c *Cpu) SED() { c.setFlag(FlagDecimal, true) }
