package cpu

const (
	MEMORY_SIZE = 256 // Bytes of addressable memory.
)

// Memory is the flat, byte addressable RAM of the LS-8.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at addr. ok is false if addr is out of range.
func (m *Memory) Read(addr int) (value byte, ok bool) {
	if addr < 0 || addr >= len(m) {
		return
	}

	return m[addr], true
}

// Write stores value at addr. Returns false if addr is out of range.
func (m *Memory) Write(addr int, value byte) (ok bool) {
	if addr < 0 || addr >= len(m) {
		return
	}

	m[addr] = value
	return true
}

// Fetch reads the opcode byte at pc and the two bytes that follow it.
// Bytes beyond the end of memory read as zero.
func (m *Memory) Fetch(pc int) (code, a, b byte) {
	code, _ = m.Read(pc)
	a, _ = m.Read(pc + 1)
	b, _ = m.Read(pc + 2)
	return
}

// Load zeroes memory, then copies data to address 0.
func (m *Memory) Load(data []byte) (err error) {
	if len(data) > len(m) {
		err = ErrMemoryFull
		return
	}

	clear(m[:])
	copy(m[:], data)

	return
}
