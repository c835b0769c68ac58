package mem

// A Bus is the central (global) object that connects multiple 'hardware'
// components together, enabling communication between them. Each Bus has an
// independent memory layout that begins at 0x0000.
//
// In the NES, there are 2 Buses. One has 64 kB, responsible for CPU, memory,
// audio and cartridge (0x0000-0xffff). The other has 8 (?) kB, responsible for
// graphics (0x2000-0x3fff?).
//
// One or more components (structs) can be connected to a Bus by means of a
// pointer; e.g. Cpu.Bus = &Bus{}.
//
// The Bus performs no address decoding and attaches no meaning to any
// region: it is a flat 64 kB array. Mapping ROM images, mirroring, or
// memory-mapped I/O onto it is the caller's job (see cmd/sixfiveohtwo),
// never the Cpu's.
type Bus struct {
	RAM [64 * 1024]byte // 64 kB, zeroed on construction
}

// NewBus returns an empty Bus, all 64 kB zeroed.
func NewBus() *Bus {
	return &Bus{}
}

// WriteU8 stores a single byte at addr.
func (b *Bus) WriteU8(addr uint16, data byte) {
	b.RAM[addr] = data
}

// ReadU8 loads a single byte from addr.
func (b *Bus) ReadU8(addr uint16) byte {
	return b.RAM[addr]
}

// WriteU16 stores a little-endian 16-bit value split across addr and addr+1.
// The high byte's address wraps around the 64 kB space rather than panicking
// at the top of memory, matching the Cpu's own wraparound arithmetic.
func (b *Bus) WriteU16(addr uint16, data uint16) {
	b.RAM[addr] = byte(data)
	b.RAM[addr+1] = byte(data >> 8)
}

// ReadU16 loads a little-endian 16-bit value from addr and addr+1.
func (b *Bus) ReadU16(addr uint16) uint16 {
	lo := uint16(b.RAM[addr])
	hi := uint16(b.RAM[addr+1])
	return hi<<8 | lo
}

// LoadProgram copies program into RAM starting at offset, overwriting
// whatever was there. It does not touch the reset vector; callers that want
// the Cpu to start executing the loaded program must set that separately.
func (b *Bus) LoadProgram(program []byte, offset uint16) {
	copy(b.RAM[offset:], program)
}
