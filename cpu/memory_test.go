package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	val, ok := m.Read(0x10)
	assert.True(ok)
	assert.Equal(byte(0), val)

	assert.True(m.Write(0x10, 0xa5))
	val, ok = m.Read(0x10)
	assert.True(ok)
	assert.Equal(byte(0xa5), val)

	assert.True(m.Write(0xff, 0x5a))
	val, ok = m.Read(0xff)
	assert.True(ok)
	assert.Equal(byte(0x5a), val)
}

func TestMemory_Range(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}

	assert.False(m.Write(MEMORY_SIZE, 1))
	assert.False(m.Write(-1, 1))

	_, ok := m.Read(MEMORY_SIZE)
	assert.False(ok)
	_, ok = m.Read(-1)
	assert.False(ok)
}

func TestMemory_Fetch(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m[0] = byte(OP_LDI)
	m[1] = 2
	m[2] = 3
	m[0xfe] = byte(OP_PRN)
	m[0xff] = 4

	code, a, b := m.Fetch(0)
	assert.Equal(byte(OP_LDI), code)
	assert.Equal(byte(2), a)
	assert.Equal(byte(3), b)

	// Reads past the end of memory are clamped to zero.
	code, a, b = m.Fetch(0xfe)
	assert.Equal(byte(OP_PRN), code)
	assert.Equal(byte(4), a)
	assert.Equal(byte(0), b)

	code, a, b = m.Fetch(0xff)
	assert.Equal(byte(4), code)
	assert.Equal(byte(0), a)
	assert.Equal(byte(0), b)
}

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m[0x80] = 0x33

	err := m.Load([]byte{1, 2, 3})
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 0}, m[:4])
	assert.Equal(byte(0), m[0x80])

	err = m.Load(make([]byte, MEMORY_SIZE))
	assert.NoError(err)

	err = m.Load(make([]byte, MEMORY_SIZE+1))
	assert.ErrorIs(err, ErrMemoryFull)
}
