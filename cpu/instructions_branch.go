package cpu

// Branches test a single flag and hand off to Cpu.branch, which owns both
// the PC update and the taken/page-cross cycle bonuses.

func (c *Cpu) BPL() { c.branch(!c.getFlag(FlagNegative)) }
func (c *Cpu) BMI() { c.branch(c.getFlag(FlagNegative)) }
func (c *Cpu) BVC() { c.branch(!c.getFlag(FlagOverflow)) }
func (c *Cpu) BVS() { c.branch(c.getFlag(FlagOverflow)) }
func (c *Cpu) BCC() { c.branch(!c.getFlag(FlagCarry)) }
func (c *Cpu) BCS() { c.branch(c.getFlag(FlagCarry)) }
func (c *Cpu) BNE() { c.branch(!c.getFlag(FlagZero)) }
func (c *Cpu) BEQ() { c.branch(c.getFlag(FlagZero)) }
