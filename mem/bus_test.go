package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteU8(t *testing.T) {
	b := NewBus()
	b.WriteU8(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), b.ReadU8(0x1234))
}

func TestReadWriteU16LittleEndian(t *testing.T) {
	b := NewBus()
	b.WriteU16(0x1000, 0x1234)
	assert.Equal(t, byte(0x34), b.ReadU8(0x1000))
	assert.Equal(t, byte(0x12), b.ReadU8(0x1001))
	assert.Equal(t, uint16(0x1234), b.ReadU16(0x1000))
}

func TestLoadProgramAtOffset(t *testing.T) {
	b := NewBus()
	b.LoadProgram([]byte{0xA9, 0x01, 0x00}, 0x8000)
	assert.Equal(t, byte(0xA9), b.ReadU8(0x8000))
	assert.Equal(t, byte(0x01), b.ReadU8(0x8001))
}

func TestNewBusIsZeroed(t *testing.T) {
	b := NewBus()
	assert.Equal(t, byte(0), b.ReadU8(0xFFFF))
}
