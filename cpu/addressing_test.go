package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIndirectJMPPageBug exercises the documented 6502 hardware bug: when the
// indirect pointer's low byte sits at the end of a page ($xxFF), the high
// byte of the target is fetched from $xx00 rather than spilling into the
// next page.
func TestIndirectJMPPageBug(t *testing.T) {
	c := newTestCpu([]byte{0x6C, 0xFF, 0x02}, 0x0300)
	c.Bus.WriteU8(0x02FF, 0x34) // pointer low byte
	c.Bus.WriteU8(0x0200, 0x12) // pointer high byte, per the bug, not $0300

	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x1234), c.PC)
}

// TestZeroPageXWrap confirms zero-page,X addressing wraps within page zero
// instead of spilling into page one.
func TestZeroPageXWrap(t *testing.T) {
	c := newTestCpu([]byte{0xA2, 0x01, 0xB5, 0xFF}, 0x0200) // LDX #$01; LDA $FF,X
	c.Bus.WriteU8(0x0000, 0x42)

	assert.True(t, c.Step()) // LDX
	assert.True(t, c.Step()) // LDA $FF,X -> addr 0x0000
	assert.Equal(t, byte(0x42), c.A)
}

// TestAbsoluteIndexedPageCross confirms the extra cycle only applies when the
// indexed effective address actually crosses into a new page.
func TestAbsoluteIndexedPageCross(t *testing.T) {
	c := newTestCpu([]byte{0xA0, 0x01, 0xB9, 0xFF, 0x02}, 0x0200) // LDY #$01; LDA $02FF,Y
	c.Bus.WriteU8(0x0300, 0x77)

	assert.True(t, c.Step()) // LDY #$01, 2 cycles
	assert.Equal(t, uint64(2), c.Cycles)

	assert.True(t, c.Step()) // LDA $02FF,Y crosses into $0300: 4 base + 1 bonus
	assert.Equal(t, byte(0x77), c.A)
	assert.Equal(t, uint64(2+5), c.Cycles)
}

// TestAbsoluteIndexedNoPageCross confirms no bonus cycle is charged when the
// indexed address stays within the same page.
func TestAbsoluteIndexedNoPageCross(t *testing.T) {
	c := newTestCpu([]byte{0xA0, 0x01, 0xB9, 0xF0, 0x02}, 0x0200) // LDY #$01; LDA $02F0,Y
	c.Bus.WriteU8(0x02F1, 0x99)

	assert.True(t, c.Step())
	assert.True(t, c.Step())
	assert.Equal(t, uint64(2+4), c.Cycles)
}

// TestIndirectYPointerWrap confirms the zero-page pointer read for (zp),Y
// wraps its high-byte fetch within page zero.
func TestIndirectYPointerWrap(t *testing.T) {
	c := newTestCpu([]byte{0xA0, 0x00, 0xB1, 0xFF}, 0x0200) // LDY #$00; LDA ($FF),Y
	c.Bus.WriteU8(0x00FF, 0x00)                             // pointer low byte
	c.Bus.WriteU8(0x0000, 0x03)                             // pointer high byte, wrapped
	c.Bus.WriteU8(0x0300, 0x55)

	assert.True(t, c.Step())
	assert.True(t, c.Step())
	assert.Equal(t, byte(0x55), c.A)
}
