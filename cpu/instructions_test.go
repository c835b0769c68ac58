package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/mem"
)

func TestLDAImmediateSetsZero(t *testing.T) {
	c := newTestCpu([]byte{0xA9, 0x00, 0x02}, 0x0200) // LDA #$00; KIL
	assert.True(t, c.Step())
	assert.Equal(t, byte(0), c.A)
	assert.True(t, c.getFlag(FlagZero))
	assert.False(t, c.getFlag(FlagNegative))
	assert.Equal(t, uint64(2), c.Cycles)
}

func TestADCCarryAndOverflow(t *testing.T) {
	c := newTestCpu([]byte{0x69, 0x50, 0x02}, 0x0200) // ADC #$50; KIL
	c.A = 0x50

	assert.True(t, c.Step())
	assert.Equal(t, byte(0xA0), c.A)
	assert.False(t, c.getFlag(FlagCarry))
	assert.True(t, c.getFlag(FlagOverflow))
	assert.True(t, c.getFlag(FlagNegative))
	assert.False(t, c.getFlag(FlagZero))
}

func TestSBCBorrow(t *testing.T) {
	c := newTestCpu([]byte{0xE9, 0xF0, 0x02}, 0x0200) // SBC #$F0; KIL
	c.A = 0x50
	c.setFlag(FlagCarry, true)

	assert.True(t, c.Step())
	assert.Equal(t, byte(0x60), c.A)
	assert.False(t, c.getFlag(FlagCarry))
	assert.False(t, c.getFlag(FlagOverflow))
}

func TestJSRRTSRoundTrip(t *testing.T) {
	program := make([]byte, 6)
	program[0], program[1], program[2] = 0x20, 0x05, 0x02 // JSR $0205
	program[5] = 0x60                                     // RTS
	c := newTestCpu(program, 0x0200)
	startS := c.S

	assert.True(t, c.Step()) // JSR
	assert.Equal(t, uint16(0x0205), c.PC)
	assert.Equal(t, startS-2, c.S)

	assert.True(t, c.Step()) // RTS
	assert.Equal(t, uint16(0x0203), c.PC)
	assert.Equal(t, startS, c.S)
}

func TestBranchTakenPageCross(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0x10, 0x02}, 0x02FD) // BPL +2, spans the $02/$03 boundary
	bus.WriteU16(vectorReset, 0x02FD)
	c := New(bus)

	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x0301), c.PC)
	assert.Equal(t, uint64(4), c.Cycles) // 2 base + 1 taken + 1 page-cross
}

func TestBranchNotTaken(t *testing.T) {
	c := newTestCpu([]byte{0xF0, 0x10}, 0x0200) // BEQ +16, Z clear by default
	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x0202), c.PC)
	assert.Equal(t, uint64(2), c.Cycles)
}

func TestBranchTakenSamePage(t *testing.T) {
	c := newTestCpu([]byte{0xD0, 0x10}, 0x0200) // BNE +16, Z clear by default -> taken
	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x0212), c.PC)
	assert.Equal(t, uint64(3), c.Cycles) // 2 base + 1 taken, no page cross
}

func TestPushPullU8RoundTripAndWrap(t *testing.T) {
	c := &Cpu{Bus: mem.NewBus(), S: 0x01}

	c.pushU8(0xAB)
	assert.Equal(t, byte(0x00), c.S)

	c.pushU8(0xCD) // S wraps from 0x00 to 0xFF
	assert.Equal(t, byte(0xFF), c.S)

	assert.Equal(t, byte(0xCD), c.pullU8())
	assert.Equal(t, byte(0x00), c.S)

	assert.Equal(t, byte(0xAB), c.pullU8())
	assert.Equal(t, byte(0x01), c.S)
}

func TestPushPullU16RoundTrip(t *testing.T) {
	c := &Cpu{Bus: mem.NewBus(), S: 0xFF}
	c.pushU16(0x1234)
	assert.Equal(t, uint16(0x1234), c.pullU16())
	assert.Equal(t, byte(0xFF), c.S)
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c := newTestCpu([]byte{0x08, 0x28}, 0x0200) // PHP; PLP
	c.P = 0b1010_1010                           // N, D, Z set; V, I, C clear; bit5 already set, bit4 already clear

	assert.True(t, c.Step()) // PHP
	assert.True(t, c.Step()) // PLP
	assert.Equal(t, byte(0b1010_1010), c.P)
}

func TestPLPForcesUnusedAndClearsBreak(t *testing.T) {
	c := newTestCpu([]byte{0x28}, 0x0200) // PLP
	c.S = 0xFE
	c.Bus.WriteU8(stackBase|0xFF, 0b0001_0000) // bit4 set, bit5 clear

	assert.True(t, c.Step())
	assert.True(t, c.getFlag(FlagUnused))
	assert.False(t, c.getFlag(FlagBreak))
}

func TestUnusedFlagStaysSetAcrossInstructions(t *testing.T) {
	c := newTestCpu([]byte{0xA9, 0x05, 0x18, 0xAA}, 0x0200) // LDA #$05; CLC; TAX
	for i := 0; i < 3; i++ {
		assert.True(t, c.Step())
		assert.True(t, c.getFlag(FlagUnused))
	}
}

func TestCompareSetsCarryOnGreaterOrEqual(t *testing.T) {
	c := newTestCpu([]byte{0xC9, 0x10}, 0x0200) // CMP #$10
	c.A = 0x20

	assert.True(t, c.Step())
	assert.True(t, c.getFlag(FlagCarry))
	assert.False(t, c.getFlag(FlagZero))
	assert.False(t, c.getFlag(FlagNegative))
}

func TestCompareEqualSetsZeroAndCarry(t *testing.T) {
	c := newTestCpu([]byte{0xE0, 0x10}, 0x0200) // CPX #$10
	c.X = 0x10

	assert.True(t, c.Step())
	assert.True(t, c.getFlag(FlagCarry))
	assert.True(t, c.getFlag(FlagZero))
}

func TestPCAdvancesMonotonically(t *testing.T) {
	c := newTestCpu([]byte{0xEA, 0xEA, 0xEA}, 0x0200) // NOP NOP NOP
	prev := c.PC
	for i := 0; i < 3; i++ {
		assert.True(t, c.Step())
		assert.Greater(t, c.PC, prev)
		prev = c.PC
	}
}

func TestKILHaltsTheCpu(t *testing.T) {
	c := newTestCpu([]byte{0x02, 0xEA}, 0x0200) // KIL; NOP
	assert.False(t, c.Step())
	assert.True(t, c.Halted)
	halted := c.PC
	assert.False(t, c.Step()) // further Step calls are no-ops
	assert.Equal(t, halted, c.PC)
}
