package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sixfiveohtwo/mem"
)

// newTestCpu builds a Cpu with program loaded at loadAt and the reset
// vector pointed at the same address, so PC starts exactly at the first
// loaded byte.
func newTestCpu(program []byte, loadAt uint16) *Cpu {
	bus := mem.NewBus()
	bus.LoadProgram(program, loadAt)
	bus.WriteU16(vectorReset, loadAt)
	return New(bus)
}

func TestLoadProgram(t *testing.T) {
	program := []byte{0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00}
	c := newTestCpu(program, 0x8000)

	assert.Equal(t, byte(0xA2), c.Bus.ReadU8(0x8000))
	assert.Equal(t, byte(0x8E), c.Bus.ReadU8(0x8002))

	assert.Equal(t, "LDX", Opcodes[c.Bus.ReadU8(0x8000)].Name)
	assert.Equal(t, "STX", Opcodes[c.Bus.ReadU8(0x8002)].Name)
}

// TestMultiplyLoop runs a hand-written "multiply 10 by 3 via repeated
// addition" program and checks the register trace after every instruction.
// The loop stores its operands to zero page, loads 10 into Y, then adds the
// value at $0001 (3) into A once per Y count.
func TestMultiplyLoop(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, // LDX #$0A
		0x8E, 0x00, 0x00, // STX $0000
		0xA2, 0x03, // LDX #$03
		0x8E, 0x01, 0x00, // STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,             // CLC
		0x6D, 0x01, 0x00, // ADC $0001
		0x88,       // DEY
		0xD0, 0xFA, // BNE -6 (back to ADC $0001)
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
	}
	c := newTestCpu(program, 0x8000)

	// Setup: LDX #$0A; STX $0000; LDX #$03; STX $0001; LDY $0000; LDA #$00; CLC
	steps := []struct {
		name    string
		a, x, y byte
	}{
		{"LDX", 0, 0x0A, 0},
		{"STX", 0, 0x0A, 0},
		{"LDX", 0, 0x03, 0},
		{"STX", 0, 0x03, 0},
		{"LDY", 0, 0x03, 0x0A},
		{"LDA", 0, 0x03, 0x0A},
		{"CLC", 0, 0x03, 0x0A},
	}
	for _, want := range steps {
		name := Opcodes[c.Bus.ReadU8(c.PC)].Name
		assert.True(t, c.Step())
		assert.Equal(t, want.name, name)
		assert.Equal(t, want.a, c.A)
		assert.Equal(t, want.x, c.X)
		assert.Equal(t, want.y, c.Y)
	}

	// ADC/DEY/BNE loop runs 10 times (Y counts 10 down to 0), accumulating
	// the value at $0001 (3) into A each pass.
	for i := 0; i < 10; i++ {
		assert.True(t, c.Step()) // ADC $0001
		assert.True(t, c.Step()) // DEY
		assert.True(t, c.Step()) // BNE
	}
	assert.Equal(t, byte(30), c.A)
	assert.Equal(t, byte(0), c.Y)

	assert.True(t, c.Step()) // STA $0002
	assert.Equal(t, byte(30), c.Bus.ReadU8(0x0002))
}
