package cpu

// decode resolves the effective address for mode, starting at the byte
// immediately after the opcode (c.PC has already been advanced past the
// opcode itself by the time this runs). It sets c.mode, c.addr, and
// c.pageCrossed, and advances c.PC past the operand bytes it consumes. It
// never touches the bus beyond reading the operand bytes and, for the
// indirect modes, the pointer bytes they name — instruction handlers read
// or write the effective address via readOperand/writeOperand, not decode.
func (c *Cpu) decode(mode AddressingMode) {
	c.mode = mode
	c.pageCrossed = false

	switch mode {
	case Implied, Accumulator:
		// no operand

	case Immediate:
		c.addr = c.PC
		c.PC++

	case ZeroPage:
		c.addr = uint16(c.Bus.ReadU8(c.PC))
		c.PC++

	case ZeroPageX:
		op := c.Bus.ReadU8(c.PC)
		c.PC++
		c.addr = uint16(op + c.X) // wraps mod 256 by construction

	case ZeroPageY:
		op := c.Bus.ReadU8(c.PC)
		c.PC++
		c.addr = uint16(op + c.Y)

	case Relative:
		offset := int8(c.Bus.ReadU8(c.PC))
		c.PC++
		base := c.PC
		target := uint16(int32(base) + int32(offset))
		c.pageCrossed = base&0xFF00 != target&0xFF00
		c.addr = target

	case Absolute:
		c.addr = c.Bus.ReadU16(c.PC)
		c.PC += 2

	case AbsoluteX:
		base := c.Bus.ReadU16(c.PC)
		c.PC += 2
		c.addr = base + uint16(c.X)
		c.pageCrossed = base&0xFF00 != c.addr&0xFF00

	case AbsoluteY:
		base := c.Bus.ReadU16(c.PC)
		c.PC += 2
		c.addr = base + uint16(c.Y)
		c.pageCrossed = base&0xFF00 != c.addr&0xFF00

	case Indirect:
		base := c.Bus.ReadU16(c.PC)
		c.PC += 2
		c.addr = c.readU16Bugged(base)

	case IndirectX:
		op := c.Bus.ReadU8(c.PC)
		c.PC++
		ptr := op + c.X
		c.addr = c.readU16ZeroPage(ptr)

	case IndirectY:
		op := c.Bus.ReadU8(c.PC)
		c.PC++
		base := c.readU16ZeroPage(op)
		c.addr = base + uint16(c.Y)
		c.pageCrossed = base&0xFF00 != c.addr&0xFF00
	}
}

// readU16ZeroPage reads a little-endian 16-bit pointer from zero page,
// wrapping the high-byte fetch within page 0 rather than spilling into
// page 1 — the documented izx/izy pointer-wraparound behavior.
func (c *Cpu) readU16ZeroPage(ptr byte) uint16 {
	lo := uint16(c.Bus.ReadU8(uint16(ptr)))
	hi := uint16(c.Bus.ReadU8(uint16(ptr + 1)))
	return hi<<8 | lo
}

// readU16Bugged reproduces the 6502's indirect-JMP page bug: when base ends
// in 0xFF, the high byte is fetched from base&0xFF00 (wrapping within the
// same page) instead of base+1.
func (c *Cpu) readU16Bugged(base uint16) uint16 {
	lo := uint16(c.Bus.ReadU8(base))
	var hiAddr uint16
	if base&0x00FF == 0x00FF {
		hiAddr = base & 0xFF00
	} else {
		hiAddr = base + 1
	}
	hi := uint16(c.Bus.ReadU8(hiAddr))
	return hi<<8 | lo
}
