package cpu

// An AddressingMode tells the Cpu where to find the operand byte of an
// instruction. There are 13 possible modes; which one applies is baked into
// the Opcode, not guessed at runtime.
//
// Most modes can index the full 64 kB range of memory, that is, 256 pages of
// 256 bytes. The exception is the ZeroPage family, which is confined to the
// first page.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator

	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	IndirectX

	IndirectY
	Relative

	Absolute
	AbsoluteX
	AbsoluteY

	Indirect
)

func (a AddressingMode) String() string {
	switch a {
	case Implied:
		return "imp"
	case Accumulator:
		return "acc"
	case Immediate:
		return "imm"
	case ZeroPage:
		return "zp"
	case ZeroPageX:
		return "zpx"
	case ZeroPageY:
		return "zpy"
	case IndirectX:
		return "izx"
	case IndirectY:
		return "izy"
	case Relative:
		return "rel"
	case Absolute:
		return "abs"
	case AbsoluteX:
		return "abx"
	case AbsoluteY:
		return "aby"
	case Indirect:
		return "ind"
	default:
		return "???"
	}
}

// An Opcode is associated with a unique byte Value (0x00-0xff). There are
// 256 possible opcodes; 151 of them encode the 56 documented mnemonics, the
// remainder are the undocumented/illegal opcodes that real-world 6502
// software occasionally relies on.
//
// The Opcode carries the AddressingMode and base Cycles that elapse before
// the Exec completes; both are looked up once per fetch, not recomputed by
// the handler.
type Opcode struct {
	Name string

	Mode AddressingMode

	// Clock cycles required before any page-boundary penalty.
	Cycles byte

	// If true, an extra cycle is added when the addressing mode's
	// effective-address computation crosses a page boundary. For
	// Relative mode this only matters when the branch is taken; see
	// Cpu.branch, which handles that bonus itself and is excluded from
	// the generic check in Step.
	PageCrossExtra bool

	Exec func(c *Cpu)
}

// Opcodes is the dense, exhaustive 256-entry instruction table: every byte
// value maps to defined behavior, including the illegal opcodes and every
// KIL (jam) byte. Handlers are wired by method value, so dispatch is a
// single array index plus a call, same as looking up a documented mnemonic.
//
// The documented 56 mnemonics and their addressing-mode/cycle combinations
// follow the standard Obelisk/NESDev 6502 reference tables. Every byte value
// is mapped explicitly, including the illegal/undocumented opcodes and all
// twelve KIL slots, so Step never needs a default case or a missing-entry
// fallback.
var Opcodes = [256]Opcode{
	0x00: {Name: "BRK", Mode: Implied, Cycles: 7, Exec: (*Cpu).BRK},
	0x01: {Name: "ORA", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).ORA},
	0x02: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x03: {Name: "SLO", Mode: IndirectX, Cycles: 8, Exec: (*Cpu).SLO},
	0x04: {Name: "NOP", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).NOP},
	0x05: {Name: "ORA", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).ORA},
	0x06: {Name: "ASL", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).ASL},
	0x07: {Name: "SLO", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).SLO},
	0x08: {Name: "PHP", Mode: Implied, Cycles: 3, Exec: (*Cpu).PHP},
	0x09: {Name: "ORA", Mode: Immediate, Cycles: 2, Exec: (*Cpu).ORA},
	0x0A: {Name: "ASL", Mode: Accumulator, Cycles: 2, Exec: (*Cpu).ASL},
	0x0B: {Name: "ANC", Mode: Immediate, Cycles: 2, Exec: (*Cpu).ANC},
	0x0C: {Name: "NOP", Mode: Absolute, Cycles: 4, Exec: (*Cpu).NOP},
	0x0D: {Name: "ORA", Mode: Absolute, Cycles: 4, Exec: (*Cpu).ORA},
	0x0E: {Name: "ASL", Mode: Absolute, Cycles: 6, Exec: (*Cpu).ASL},
	0x0F: {Name: "SLO", Mode: Absolute, Cycles: 6, Exec: (*Cpu).SLO},

	0x10: {Name: "BPL", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BPL},
	0x11: {Name: "ORA", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).ORA},
	0x12: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x13: {Name: "SLO", Mode: IndirectY, Cycles: 8, Exec: (*Cpu).SLO},
	0x14: {Name: "NOP", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).NOP},
	0x15: {Name: "ORA", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).ORA},
	0x16: {Name: "ASL", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).ASL},
	0x17: {Name: "SLO", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).SLO},
	0x18: {Name: "CLC", Mode: Implied, Cycles: 2, Exec: (*Cpu).CLC},
	0x19: {Name: "ORA", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).ORA},
	0x1A: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: (*Cpu).NOP},
	0x1B: {Name: "SLO", Mode: AbsoluteY, Cycles: 7, Exec: (*Cpu).SLO},
	0x1C: {Name: "NOP", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).NOP},
	0x1D: {Name: "ORA", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).ORA},
	0x1E: {Name: "ASL", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).ASL},
	0x1F: {Name: "SLO", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).SLO},

	0x20: {Name: "JSR", Mode: Absolute, Cycles: 6, Exec: (*Cpu).JSR},
	0x21: {Name: "AND", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).AND},
	0x22: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x23: {Name: "RLA", Mode: IndirectX, Cycles: 8, Exec: (*Cpu).RLA},
	0x24: {Name: "BIT", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).BIT},
	0x25: {Name: "AND", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).AND},
	0x26: {Name: "ROL", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).ROL},
	0x27: {Name: "RLA", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).RLA},
	0x28: {Name: "PLP", Mode: Implied, Cycles: 4, Exec: (*Cpu).PLP},
	0x29: {Name: "AND", Mode: Immediate, Cycles: 2, Exec: (*Cpu).AND},
	0x2A: {Name: "ROL", Mode: Accumulator, Cycles: 2, Exec: (*Cpu).ROL},
	0x2B: {Name: "ANC", Mode: Immediate, Cycles: 2, Exec: (*Cpu).ANC},
	0x2C: {Name: "BIT", Mode: Absolute, Cycles: 4, Exec: (*Cpu).BIT},
	0x2D: {Name: "AND", Mode: Absolute, Cycles: 4, Exec: (*Cpu).AND},
	0x2E: {Name: "ROL", Mode: Absolute, Cycles: 6, Exec: (*Cpu).ROL},
	0x2F: {Name: "RLA", Mode: Absolute, Cycles: 6, Exec: (*Cpu).RLA},

	0x30: {Name: "BMI", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BMI},
	0x31: {Name: "AND", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).AND},
	0x32: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x33: {Name: "RLA", Mode: IndirectY, Cycles: 8, Exec: (*Cpu).RLA},
	0x34: {Name: "NOP", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).NOP},
	0x35: {Name: "AND", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).AND},
	0x36: {Name: "ROL", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).ROL},
	0x37: {Name: "RLA", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).RLA},
	0x38: {Name: "SEC", Mode: Implied, Cycles: 2, Exec: (*Cpu).SEC},
	0x39: {Name: "AND", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).AND},
	0x3A: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: (*Cpu).NOP},
	0x3B: {Name: "RLA", Mode: AbsoluteY, Cycles: 7, Exec: (*Cpu).RLA},
	0x3C: {Name: "NOP", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).NOP},
	0x3D: {Name: "AND", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).AND},
	0x3E: {Name: "ROL", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).ROL},
	0x3F: {Name: "RLA", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).RLA},

	0x40: {Name: "RTI", Mode: Implied, Cycles: 6, Exec: (*Cpu).RTI},
	0x41: {Name: "EOR", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).EOR},
	0x42: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x43: {Name: "SRE", Mode: IndirectX, Cycles: 8, Exec: (*Cpu).SRE},
	0x44: {Name: "NOP", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).NOP},
	0x45: {Name: "EOR", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).EOR},
	0x46: {Name: "LSR", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).LSR},
	0x47: {Name: "SRE", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).SRE},
	0x48: {Name: "PHA", Mode: Implied, Cycles: 3, Exec: (*Cpu).PHA},
	0x49: {Name: "EOR", Mode: Immediate, Cycles: 2, Exec: (*Cpu).EOR},
	0x4A: {Name: "LSR", Mode: Accumulator, Cycles: 2, Exec: (*Cpu).LSR},
	0x4B: {Name: "ALR", Mode: Immediate, Cycles: 2, Exec: (*Cpu).ALR},
	0x4C: {Name: "JMP", Mode: Absolute, Cycles: 3, Exec: (*Cpu).JMP},
	0x4D: {Name: "EOR", Mode: Absolute, Cycles: 4, Exec: (*Cpu).EOR},
	0x4E: {Name: "LSR", Mode: Absolute, Cycles: 6, Exec: (*Cpu).LSR},
	0x4F: {Name: "SRE", Mode: Absolute, Cycles: 6, Exec: (*Cpu).SRE},

	0x50: {Name: "BVC", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BVC},
	0x51: {Name: "EOR", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).EOR},
	0x52: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x53: {Name: "SRE", Mode: IndirectY, Cycles: 8, Exec: (*Cpu).SRE},
	0x54: {Name: "NOP", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).NOP},
	0x55: {Name: "EOR", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).EOR},
	0x56: {Name: "LSR", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).LSR},
	0x57: {Name: "SRE", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).SRE},
	0x58: {Name: "CLI", Mode: Implied, Cycles: 2, Exec: (*Cpu).CLI},
	0x59: {Name: "EOR", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).EOR},
	0x5A: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: (*Cpu).NOP},
	0x5B: {Name: "SRE", Mode: AbsoluteY, Cycles: 7, Exec: (*Cpu).SRE},
	0x5C: {Name: "NOP", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).NOP},
	0x5D: {Name: "EOR", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).EOR},
	0x5E: {Name: "LSR", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).LSR},
	0x5F: {Name: "SRE", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).SRE},

	0x60: {Name: "RTS", Mode: Implied, Cycles: 6, Exec: (*Cpu).RTS},
	0x61: {Name: "ADC", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).ADC},
	0x62: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x63: {Name: "RRA", Mode: IndirectX, Cycles: 8, Exec: (*Cpu).RRA},
	0x64: {Name: "NOP", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).NOP},
	0x65: {Name: "ADC", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).ADC},
	0x66: {Name: "ROR", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).ROR},
	0x67: {Name: "RRA", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).RRA},
	0x68: {Name: "PLA", Mode: Implied, Cycles: 4, Exec: (*Cpu).PLA},
	0x69: {Name: "ADC", Mode: Immediate, Cycles: 2, Exec: (*Cpu).ADC},
	0x6A: {Name: "ROR", Mode: Accumulator, Cycles: 2, Exec: (*Cpu).ROR},
	0x6B: {Name: "ARR", Mode: Immediate, Cycles: 2, Exec: (*Cpu).ARR},
	0x6C: {Name: "JMP", Mode: Indirect, Cycles: 5, Exec: (*Cpu).JMP},
	0x6D: {Name: "ADC", Mode: Absolute, Cycles: 4, Exec: (*Cpu).ADC},
	0x6E: {Name: "ROR", Mode: Absolute, Cycles: 6, Exec: (*Cpu).ROR},
	0x6F: {Name: "RRA", Mode: Absolute, Cycles: 6, Exec: (*Cpu).RRA},

	0x70: {Name: "BVS", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BVS},
	0x71: {Name: "ADC", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).ADC},
	0x72: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x73: {Name: "RRA", Mode: IndirectY, Cycles: 8, Exec: (*Cpu).RRA},
	0x74: {Name: "NOP", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).NOP},
	0x75: {Name: "ADC", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).ADC},
	0x76: {Name: "ROR", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).ROR},
	0x77: {Name: "RRA", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).RRA},
	0x78: {Name: "SEI", Mode: Implied, Cycles: 2, Exec: (*Cpu).SEI},
	0x79: {Name: "ADC", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).ADC},
	0x7A: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: (*Cpu).NOP},
	0x7B: {Name: "RRA", Mode: AbsoluteY, Cycles: 7, Exec: (*Cpu).RRA},
	0x7C: {Name: "NOP", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).NOP},
	0x7D: {Name: "ADC", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).ADC},
	0x7E: {Name: "ROR", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).ROR},
	0x7F: {Name: "RRA", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).RRA},

	0x80: {Name: "NOP", Mode: Immediate, Cycles: 2, Exec: (*Cpu).NOP},
	0x81: {Name: "STA", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).STA},
	0x82: {Name: "NOP", Mode: Immediate, Cycles: 2, Exec: (*Cpu).NOP},
	0x83: {Name: "SAX", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).SAX},
	0x84: {Name: "STY", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).STY},
	0x85: {Name: "STA", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).STA},
	0x86: {Name: "STX", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).STX},
	0x87: {Name: "SAX", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).SAX},
	0x88: {Name: "DEY", Mode: Implied, Cycles: 2, Exec: (*Cpu).DEY},
	0x89: {Name: "NOP", Mode: Immediate, Cycles: 2, Exec: (*Cpu).NOP},
	0x8A: {Name: "TXA", Mode: Implied, Cycles: 2, Exec: (*Cpu).TXA},
	0x8B: {Name: "XAA", Mode: Immediate, Cycles: 2, Exec: (*Cpu).XAA},
	0x8C: {Name: "STY", Mode: Absolute, Cycles: 4, Exec: (*Cpu).STY},
	0x8D: {Name: "STA", Mode: Absolute, Cycles: 4, Exec: (*Cpu).STA},
	0x8E: {Name: "STX", Mode: Absolute, Cycles: 4, Exec: (*Cpu).STX},
	0x8F: {Name: "SAX", Mode: Absolute, Cycles: 4, Exec: (*Cpu).SAX},

	0x90: {Name: "BCC", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BCC},
	0x91: {Name: "STA", Mode: IndirectY, Cycles: 6, Exec: (*Cpu).STA},
	0x92: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0x93: {Name: "AHX", Mode: IndirectY, Cycles: 6, Exec: (*Cpu).AHX},
	0x94: {Name: "STY", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).STY},
	0x95: {Name: "STA", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).STA},
	0x96: {Name: "STX", Mode: ZeroPageY, Cycles: 4, Exec: (*Cpu).STX},
	0x97: {Name: "SAX", Mode: ZeroPageY, Cycles: 4, Exec: (*Cpu).SAX},
	0x98: {Name: "TYA", Mode: Implied, Cycles: 2, Exec: (*Cpu).TYA},
	0x99: {Name: "STA", Mode: AbsoluteY, Cycles: 5, Exec: (*Cpu).STA},
	0x9A: {Name: "TXS", Mode: Implied, Cycles: 2, Exec: (*Cpu).TXS},
	0x9B: {Name: "TAS", Mode: AbsoluteY, Cycles: 5, Exec: (*Cpu).TAS},
	0x9C: {Name: "SHY", Mode: AbsoluteX, Cycles: 5, Exec: (*Cpu).SHY},
	0x9D: {Name: "STA", Mode: AbsoluteX, Cycles: 5, Exec: (*Cpu).STA},
	0x9E: {Name: "SHX", Mode: AbsoluteY, Cycles: 5, Exec: (*Cpu).SHX},
	0x9F: {Name: "AHX", Mode: AbsoluteY, Cycles: 5, Exec: (*Cpu).AHX},

	0xA0: {Name: "LDY", Mode: Immediate, Cycles: 2, Exec: (*Cpu).LDY},
	0xA1: {Name: "LDA", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).LDA},
	0xA2: {Name: "LDX", Mode: Immediate, Cycles: 2, Exec: (*Cpu).LDX},
	0xA3: {Name: "LAX", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).LAX},
	0xA4: {Name: "LDY", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).LDY},
	0xA5: {Name: "LDA", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).LDA},
	0xA6: {Name: "LDX", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).LDX},
	0xA7: {Name: "LAX", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).LAX},
	0xA8: {Name: "TAY", Mode: Implied, Cycles: 2, Exec: (*Cpu).TAY},
	0xA9: {Name: "LDA", Mode: Immediate, Cycles: 2, Exec: (*Cpu).LDA},
	0xAA: {Name: "TAX", Mode: Implied, Cycles: 2, Exec: (*Cpu).TAX},
	0xAB: {Name: "LAX", Mode: Immediate, Cycles: 2, Exec: (*Cpu).LAX},
	0xAC: {Name: "LDY", Mode: Absolute, Cycles: 4, Exec: (*Cpu).LDY},
	0xAD: {Name: "LDA", Mode: Absolute, Cycles: 4, Exec: (*Cpu).LDA},
	0xAE: {Name: "LDX", Mode: Absolute, Cycles: 4, Exec: (*Cpu).LDX},
	0xAF: {Name: "LAX", Mode: Absolute, Cycles: 4, Exec: (*Cpu).LAX},

	0xB0: {Name: "BCS", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BCS},
	0xB1: {Name: "LDA", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).LDA},
	0xB2: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0xB3: {Name: "LAX", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).LAX},
	0xB4: {Name: "LDY", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).LDY},
	0xB5: {Name: "LDA", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).LDA},
	0xB6: {Name: "LDX", Mode: ZeroPageY, Cycles: 4, Exec: (*Cpu).LDX},
	0xB7: {Name: "LAX", Mode: ZeroPageY, Cycles: 4, Exec: (*Cpu).LAX},
	0xB8: {Name: "CLV", Mode: Implied, Cycles: 2, Exec: (*Cpu).CLV},
	0xB9: {Name: "LDA", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).LDA},
	0xBA: {Name: "TSX", Mode: Implied, Cycles: 2, Exec: (*Cpu).TSX},
	0xBB: {Name: "LAS", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).LAS},
	0xBC: {Name: "LDY", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).LDY},
	0xBD: {Name: "LDA", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).LDA},
	0xBE: {Name: "LDX", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).LDX},
	0xBF: {Name: "LAX", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).LAX},

	0xC0: {Name: "CPY", Mode: Immediate, Cycles: 2, Exec: (*Cpu).CPY},
	0xC1: {Name: "CMP", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).CMP},
	0xC2: {Name: "NOP", Mode: Immediate, Cycles: 2, Exec: (*Cpu).NOP},
	0xC3: {Name: "DCP", Mode: IndirectX, Cycles: 8, Exec: (*Cpu).DCP},
	0xC4: {Name: "CPY", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).CPY},
	0xC5: {Name: "CMP", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).CMP},
	0xC6: {Name: "DEC", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).DEC},
	0xC7: {Name: "DCP", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).DCP},
	0xC8: {Name: "INY", Mode: Implied, Cycles: 2, Exec: (*Cpu).INY},
	0xC9: {Name: "CMP", Mode: Immediate, Cycles: 2, Exec: (*Cpu).CMP},
	0xCA: {Name: "DEX", Mode: Implied, Cycles: 2, Exec: (*Cpu).DEX},
	0xCB: {Name: "AXS", Mode: Immediate, Cycles: 2, Exec: (*Cpu).AXS},
	0xCC: {Name: "CPY", Mode: Absolute, Cycles: 4, Exec: (*Cpu).CPY},
	0xCD: {Name: "CMP", Mode: Absolute, Cycles: 4, Exec: (*Cpu).CMP},
	0xCE: {Name: "DEC", Mode: Absolute, Cycles: 6, Exec: (*Cpu).DEC},
	0xCF: {Name: "DCP", Mode: Absolute, Cycles: 6, Exec: (*Cpu).DCP},

	0xD0: {Name: "BNE", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BNE},
	0xD1: {Name: "CMP", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).CMP},
	0xD2: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0xD3: {Name: "DCP", Mode: IndirectY, Cycles: 8, Exec: (*Cpu).DCP},
	0xD4: {Name: "NOP", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).NOP},
	0xD5: {Name: "CMP", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).CMP},
	0xD6: {Name: "DEC", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).DEC},
	0xD7: {Name: "DCP", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).DCP},
	0xD8: {Name: "CLD", Mode: Implied, Cycles: 2, Exec: (*Cpu).CLD},
	0xD9: {Name: "CMP", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).CMP},
	0xDA: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: (*Cpu).NOP},
	0xDB: {Name: "DCP", Mode: AbsoluteY, Cycles: 7, Exec: (*Cpu).DCP},
	0xDC: {Name: "NOP", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).NOP},
	0xDD: {Name: "CMP", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).CMP},
	0xDE: {Name: "DEC", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).DEC},
	0xDF: {Name: "DCP", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).DCP},

	0xE0: {Name: "CPX", Mode: Immediate, Cycles: 2, Exec: (*Cpu).CPX},
	0xE1: {Name: "SBC", Mode: IndirectX, Cycles: 6, Exec: (*Cpu).SBC},
	0xE2: {Name: "NOP", Mode: Immediate, Cycles: 2, Exec: (*Cpu).NOP},
	0xE3: {Name: "ISC", Mode: IndirectX, Cycles: 8, Exec: (*Cpu).ISC},
	0xE4: {Name: "CPX", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).CPX},
	0xE5: {Name: "SBC", Mode: ZeroPage, Cycles: 3, Exec: (*Cpu).SBC},
	0xE6: {Name: "INC", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).INC},
	0xE7: {Name: "ISC", Mode: ZeroPage, Cycles: 5, Exec: (*Cpu).ISC},
	0xE8: {Name: "INX", Mode: Implied, Cycles: 2, Exec: (*Cpu).INX},
	0xE9: {Name: "SBC", Mode: Immediate, Cycles: 2, Exec: (*Cpu).SBC},
	0xEA: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: (*Cpu).NOP},
	0xEB: {Name: "SBC", Mode: Immediate, Cycles: 2, Exec: (*Cpu).SBC},
	0xEC: {Name: "CPX", Mode: Absolute, Cycles: 4, Exec: (*Cpu).CPX},
	0xED: {Name: "SBC", Mode: Absolute, Cycles: 4, Exec: (*Cpu).SBC},
	0xEE: {Name: "INC", Mode: Absolute, Cycles: 6, Exec: (*Cpu).INC},
	0xEF: {Name: "ISC", Mode: Absolute, Cycles: 6, Exec: (*Cpu).ISC},

	0xF0: {Name: "BEQ", Mode: Relative, Cycles: 2, PageCrossExtra: true, Exec: (*Cpu).BEQ},
	0xF1: {Name: "SBC", Mode: IndirectY, Cycles: 5, PageCrossExtra: true, Exec: (*Cpu).SBC},
	0xF2: {Name: "KIL", Mode: Implied, Cycles: 2, Exec: (*Cpu).KIL},
	0xF3: {Name: "ISC", Mode: IndirectY, Cycles: 8, Exec: (*Cpu).ISC},
	0xF4: {Name: "NOP", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).NOP},
	0xF5: {Name: "SBC", Mode: ZeroPageX, Cycles: 4, Exec: (*Cpu).SBC},
	0xF6: {Name: "INC", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).INC},
	0xF7: {Name: "ISC", Mode: ZeroPageX, Cycles: 6, Exec: (*Cpu).ISC},
	0xF8: {Name: "SED", Mode: Implied, Cycles: 2, Exec: (*Cpu).SED},
	0xF9: {Name: "SBC", Mode: AbsoluteY, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).SBC},
	0xFA: {Name: "NOP", Mode: Implied, Cycles: 2, Exec: (*Cpu).NOP},
	0xFB: {Name: "ISC", Mode: AbsoluteY, Cycles: 7, Exec: (*Cpu).ISC},
	0xFC: {Name: "NOP", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).NOP},
	0xFD: {Name: "SBC", Mode: AbsoluteX, Cycles: 4, PageCrossExtra: true, Exec: (*Cpu).SBC},
	0xFE: {Name: "INC", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).INC},
	0xFF: {Name: "ISC", Mode: AbsoluteX, Cycles: 7, Exec: (*Cpu).ISC},
}
