package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/mem"
)

func TestBRKPushesPCPlusOneAndVectorsThroughIRQ(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0x00}, 0x0200) // BRK
	bus.WriteU16(vectorReset, 0x0200)
	bus.WriteU16(vectorIRQ, 0x9000)
	c := New(bus)
	startS := c.S

	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.True(t, c.getFlag(FlagInterrupt))
	assert.Equal(t, startS-3, c.S)

	pushedP := c.Bus.ReadU8(stackBase | uint16(c.S+1))
	assert.NotZero(t, pushedP&byte(FlagBreak))
}

func TestRTIRestoresPCAndClearsBreak(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0x00}, 0x0200) // BRK
	bus.WriteU16(vectorReset, 0x0200)
	bus.WriteU16(vectorIRQ, 0x9000)
	bus.LoadProgram([]byte{0x40}, 0x9000) // RTI
	c := New(bus)

	assert.True(t, c.Step()) // BRK
	assert.True(t, c.Step()) // RTI
	assert.Equal(t, uint16(0x0202), c.PC)
	assert.False(t, c.getFlag(FlagBreak))
	assert.True(t, c.getFlag(FlagUnused))
}

func TestRequestIRQServicedWhenNotMasked(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0xEA}, 0x0200) // NOP
	bus.WriteU16(vectorReset, 0x0200)
	bus.WriteU16(vectorIRQ, 0x9000)
	bus.LoadProgram([]byte{0xEA}, 0x9000) // ISR entry: NOP
	c := New(bus)
	c.setFlag(FlagInterrupt, false) // reset leaves I set

	c.RequestIRQ()
	// A single Step both services the interrupt and executes the first
	// instruction at the vector, same as real 6502 hardware draws no line
	// between "enter the ISR" and "fetch its first opcode".
	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x9001), c.PC)
	assert.True(t, c.getFlag(FlagInterrupt))
}

func TestRequestIRQIgnoredWhenMasked(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0xEA}, 0x0200) // NOP
	bus.WriteU16(vectorReset, 0x0200)
	bus.WriteU16(vectorIRQ, 0x9000)
	c := New(bus)
	c.setFlag(FlagInterrupt, true)

	c.RequestIRQ()
	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x0201), c.PC) // NOP ran instead of servicing IRQ
}

func TestRequestNMIIgnoresInterruptDisable(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0xEA}, 0x0200) // NOP
	bus.WriteU16(vectorReset, 0x0200)
	bus.WriteU16(0xFFFA, 0x9500)
	bus.LoadProgram([]byte{0xEA}, 0x9500) // ISR entry: NOP
	c := New(bus)
	c.setFlag(FlagInterrupt, true)

	c.RequestNMI()
	assert.True(t, c.Step())
	assert.Equal(t, uint16(0x9501), c.PC)
}

func TestResetDrivesStackPointerDownByThree(t *testing.T) {
	bus := mem.NewBus()
	bus.WriteU16(vectorReset, 0x0200)
	c := New(bus)
	assert.Equal(t, byte(0xFC), c.S)
}

func TestRunUntilStopsOnPredicate(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0xEA, 0xEA, 0xEA, 0xEA}, 0x0200)
	bus.WriteU16(vectorReset, 0x0200)
	c := New(bus)

	// RunUntil checks the predicate before each Step, so it takes one more
	// call than the number of instructions actually executed.
	steps := 0
	c.RunUntil(func(c *Cpu) bool {
		steps++
		return steps >= 3
	})
	assert.Equal(t, uint16(0x0202), c.PC)
}

func TestRunUntilStopsOnHalt(t *testing.T) {
	bus := mem.NewBus()
	bus.LoadProgram([]byte{0xEA, 0x02, 0xEA}, 0x0200) // NOP; KIL; NOP
	bus.WriteU16(vectorReset, 0x0200)
	c := New(bus)

	c.RunUntil(func(c *Cpu) bool { return false })
	assert.True(t, c.Halted)
	assert.Equal(t, uint16(0x0202), c.PC)
}
