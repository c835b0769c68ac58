// Package cpu implements a dispatch-per-byte interpreter for the MOS
// Technology 6502 as used in the NES/Famicom: all 256 opcodes, the 13
// addressing modes, status-flag arithmetic, cycle accounting with
// page-boundary penalties, and interrupt vector handling.
package cpu

import (
	"fmt"
	"log"

	"sixfiveohtwo/mem"
)

const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE

	stackBase uint16 = 0x0100
)

// A Cpu is a single MOS 6502 core wired to a Bus. It holds no goroutines and
// performs no I/O of its own; the host drives it one instruction at a time
// via Step, and reads registers through the exported fields between calls.
type Cpu struct {
	Bus *mem.Bus

	A, X, Y byte
	PC      uint16
	S       byte
	P       byte
	Cycles  uint64

	Halted bool

	irqLine bool
	nmiLine bool

	// Decode state for the instruction currently executing. Handlers
	// read these through readOperand/writeOperand/branch, keeping
	// addressing and effect separate; the store-style illegal opcodes
	// (AHX, TAS, SHX, SHY) also use addr directly.
	mode        AddressingMode
	addr        uint16
	pageCrossed bool

	// Trace, when non-nil, receives one line per fetched opcode: PC,
	// opcode byte, mnemonic, and addressing mode. Nil by default.
	Trace *log.Logger
}

// New constructs a Cpu wired to bus and puts it through reset, which loads
// PC from the reset vector and establishes the documented initial register
// state.
func New(bus *mem.Bus) *Cpu {
	c := &Cpu{Bus: bus}
	c.reset()
	return c
}

// reset loads PC from the reset vector and establishes the 6502's
// documented power-on/reset register state, including the hardware quirk
// that drives S from 0xFF down to 0xFC rather than leaving it at 0xFF.
func (c *Cpu) reset() {
	c.PC = c.Bus.ReadU16(vectorReset)
	c.S = 0xFF
	c.S -= 3
	c.P = 0b0011_0100
	c.A, c.X, c.Y = 0, 0, 0
	c.Cycles = 0
	c.Halted = false
	c.irqLine, c.nmiLine = false, false
}

// RequestIRQ latches a maskable interrupt request. It is serviced at the
// next instruction boundary if the interrupt-disable flag is clear.
func (c *Cpu) RequestIRQ() {
	c.irqLine = true
}

// RequestNMI latches a non-maskable interrupt request. It is always
// serviced at the next instruction boundary, regardless of the
// interrupt-disable flag.
func (c *Cpu) RequestNMI() {
	c.nmiLine = true
}

// Step runs exactly one instruction (servicing a pending interrupt first, if
// any) and returns false iff the CPU is halted, either already or as a
// result of this instruction being KIL. A halted Cpu ignores further Step
// calls entirely.
func (c *Cpu) Step() bool {
	if c.Halted {
		return false
	}

	if c.nmiLine {
		c.serviceNMI()
	} else if c.irqLine && !c.getFlag(FlagInterrupt) {
		c.serviceIRQ()
	}
	c.irqLine, c.nmiLine = false, false

	if c.Halted {
		return false
	}

	op, err := c.fetch()
	if err != nil {
		panic(fmt.Errorf("cpu: fetch at PC=%#04x: %w", c.PC, err))
	}

	if c.Trace != nil {
		c.Trace.Printf("PC=%04X op=%02X %-4s %s", c.PC, c.Bus.ReadU8(c.PC), op.Name, op.Mode)
	}

	c.PC++
	c.decode(op.Mode)
	c.Cycles += uint64(op.Cycles)
	if op.PageCrossExtra && c.pageCrossed && op.Mode != Relative {
		c.Cycles++
	}

	op.Exec(c)

	return !c.Halted
}

// RunUntil steps the Cpu until predicate reports true or the Cpu halts.
func (c *Cpu) RunUntil(predicate func(*Cpu) bool) {
	for !c.Halted && !predicate(c) {
		if !c.Step() {
			return
		}
	}
}

// fetch looks up the Opcode for the byte at PC. The table is dense over all
// 256 byte values, so this never actually fails; the error return exists so
// a future re-keying of the table to something non-exhaustive fails loudly
// in Step rather than panicking deep inside decode.
func (c *Cpu) fetch() (Opcode, error) {
	b := c.Bus.ReadU8(c.PC)
	op := Opcodes[b]
	if op.Exec == nil {
		return Opcode{}, fmt.Errorf("no opcode entry for byte %#02x", b)
	}
	return op, nil
}

// pushU8 pushes v onto the stack and decrements S, wrapping modulo 256.
func (c *Cpu) pushU8(v byte) {
	c.Bus.WriteU8(stackBase|uint16(c.S), v)
	c.S--
}

// pullU8 increments S, wrapping modulo 256, and returns the byte underneath.
func (c *Cpu) pullU8() byte {
	c.S++
	return c.Bus.ReadU8(stackBase | uint16(c.S))
}

// pushU16 pushes v high-byte-first, so the low byte ends up at the lower
// address once both bytes have been pushed.
func (c *Cpu) pushU16(v uint16) {
	c.pushU8(byte(v >> 8))
	c.pushU8(byte(v))
}

// pullU16 is the inverse of pushU16.
func (c *Cpu) pullU16() uint16 {
	lo := uint16(c.pullU8())
	hi := uint16(c.pullU8())
	return hi<<8 | lo
}

// readOperand fetches the byte an instruction operates on, honoring
// Accumulator mode, which has no bus address at all.
func (c *Cpu) readOperand() byte {
	if c.mode == Accumulator {
		return c.A
	}
	return c.Bus.ReadU8(c.addr)
}

// writeOperand stores the result of an instruction back to wherever it came
// from, honoring Accumulator mode.
func (c *Cpu) writeOperand(v byte) {
	if c.mode == Accumulator {
		c.A = v
		return
	}
	c.Bus.WriteU8(c.addr, v)
}

// branch applies a conditional branch's PC update and cycle accounting.
// Relative-mode cycle bonuses are handled entirely here rather than by the
// generic page-cross check in Step, because that check fires unconditionally
// from decode while a branch's extra cycle must only apply when taken.
func (c *Cpu) branch(taken bool) {
	if !taken {
		return
	}
	c.Cycles++
	if c.pageCrossed {
		c.Cycles++
	}
	c.PC = c.addr
}

// serviceIRQ pushes PC and P (with B clear) and jumps to the IRQ/BRK vector,
// per the documented non-BRK interrupt sequence.
func (c *Cpu) serviceIRQ() {
	c.pushU16(c.PC)
	c.pushU8((c.P | byte(FlagUnused)) &^ byte(FlagBreak))
	c.setFlag(FlagInterrupt, true)
	c.PC = c.Bus.ReadU16(vectorIRQ)
	c.Cycles += 7
}

// serviceNMI is identical to serviceIRQ but uses the NMI vector and is never
// gated on the interrupt-disable flag.
func (c *Cpu) serviceNMI() {
	c.pushU16(c.PC)
	c.pushU8((c.P | byte(FlagUnused)) &^ byte(FlagBreak))
	c.setFlag(FlagInterrupt, true)
	c.PC = c.Bus.ReadU16(vectorNMI)
	c.Cycles += 7
}
