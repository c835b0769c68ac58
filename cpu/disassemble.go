package cpu

import "fmt"

// Disassemble formats the instruction at addr as a single line of the form
// "mnemonic operand", without mutating the Cpu or advancing any state. It
// reads whatever operand bytes the addressing mode implies directly off the
// bus, which is safe because disassembly never writes.
func (c *Cpu) Disassemble(addr uint16) string {
	op := Opcodes[c.Bus.ReadU8(addr)]
	operand := addr + 1

	switch op.Mode {
	case Implied:
		return op.Name
	case Accumulator:
		return fmt.Sprintf("%s A", op.Name)
	case Immediate:
		return fmt.Sprintf("%s #$%02X", op.Name, c.Bus.ReadU8(operand))
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", op.Name, c.Bus.ReadU8(operand))
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", op.Name, c.Bus.ReadU8(operand))
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", op.Name, c.Bus.ReadU8(operand))
	case IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", op.Name, c.Bus.ReadU8(operand))
	case IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", op.Name, c.Bus.ReadU8(operand))
	case Relative:
		offset := int8(c.Bus.ReadU8(operand))
		target := uint16(int32(operand+1) + int32(offset))
		return fmt.Sprintf("%s $%04X", op.Name, target)
	case Absolute:
		return fmt.Sprintf("%s $%04X", op.Name, c.Bus.ReadU16(operand))
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", op.Name, c.Bus.ReadU16(operand))
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", op.Name, c.Bus.ReadU16(operand))
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", op.Name, c.Bus.ReadU16(operand))
	default:
		return fmt.Sprintf("%s ???", op.Name)
	}
}

// InstructionLength reports how many bytes (opcode plus operand) the
// instruction at addr occupies, for callers walking a program linearly.
func (c *Cpu) InstructionLength(addr uint16) uint16 {
	switch Opcodes[c.Bus.ReadU8(addr)].Mode {
	case Implied, Accumulator:
		return 1
	case Immediate, ZeroPage, ZeroPageX, ZeroPageY, IndirectX, IndirectY, Relative:
		return 2
	default:
		return 3
	}
}
