package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatch_Table(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       Opcode
		code     byte
		name     string
		operands int
	}){
		{OP_HLT, 0b00000001, "HLT", 0},
		{OP_LDI, 0b10000010, "LDI", 2},
		{OP_PRN, 0b01000111, "PRN", 1},
		{OP_MUL, 0b10100010, "MUL", 2},
		{OP_PUSH, 0b01000101, "PUSH", 1},
		{OP_POP, 0b01000110, "POP", 1},
	}

	for _, entry := range table {
		assert.Equal(entry.code, byte(entry.op), entry.name)
		assert.Equal(entry.name, entry.op.String())

		inst, err := Lookup(entry.op)
		assert.NoError(err, entry.name)
		assert.Equal(entry.op, inst.Opcode, entry.name)
		assert.Equal(entry.operands, inst.Operands(), entry.name)
		assert.Equal(entry.operands+1, inst.Width(), entry.name)
		assert.Equal(entry.name, inst.String())

		byName, ok := LookupMnemonic(entry.name)
		assert.True(ok, entry.name)
		assert.Equal(entry.op, byName.Opcode, entry.name)
	}

	count := 0
	for op, inst := range Instructions() {
		count++
		assert.Equal(op, inst.Opcode)
		// The operand count is also encoded in the opcode.
		assert.Equal(op.Operands(), inst.Operands(), op.String())
	}
	assert.Equal(len(table), count)
}

func TestDispatch_Order(t *testing.T) {
	assert := assert.New(t)

	var ops []Opcode
	for op := range Instructions() {
		ops = append(ops, op)
	}

	assert.Equal([]Opcode{OP_HLT, OP_PUSH, OP_POP, OP_PRN, OP_LDI, OP_MUL}, ops)
}

func TestDispatch_Unknown(t *testing.T) {
	assert := assert.New(t)

	for _, code := range []byte{0x00, 0x02, 0xff, 0b10100000} {
		_, err := Lookup(Opcode(code))
		assert.ErrorIs(err, ErrOpcodeUnknown)
		assert.ErrorIs(err, ErrOpcode(code))
	}

	_, ok := LookupMnemonic("JMP")
	assert.False(ok)
	_, ok = LookupMnemonic("ldi")
	assert.False(ok)
}

func TestDispatch_Handlers(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	inst, _ := Lookup(OP_LDI)
	assert.NoError(inst.invoke(cpu, 1, 0x2a))
	assert.Equal(byte(0x2a), cpu.Register[1])

	inst, _ = Lookup(OP_PUSH)
	assert.NoError(inst.invoke(cpu, 1, 0xee))
	assert.Equal(byte(STACK_TOP-1), cpu.Register.SP())

	inst, _ = Lookup(OP_POP)
	assert.NoError(inst.invoke(cpu, 2, 0xee))
	assert.Equal(byte(0x2a), cpu.Register[2])

	cpu.Register[3] = 2
	inst, _ = Lookup(OP_MUL)
	assert.NoError(inst.invoke(cpu, 2, 3))
	assert.Equal(byte(0x54), cpu.Register[2])

	inst, _ = Lookup(OP_HLT)
	assert.NoError(inst.invoke(cpu, 0xee, 0xee))
	assert.True(cpu.Halted())

	// Handlers leave the program counter alone.
	assert.Equal(0, cpu.Pc)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	assert.NoError(mem.Load([]byte{
		byte(OP_LDI), 0, 8,
		byte(OP_PRN), 0,
		byte(OP_MUL), 2, 3,
		byte(OP_HLT),
		0xff,
	}))

	assert.Equal("LDI R0,8", Decode(mem, 0))
	assert.Equal("PRN R0", Decode(mem, 3))
	assert.Equal("MUL R2,R3", Decode(mem, 5))
	assert.Equal("HLT", Decode(mem, 8))
	assert.Equal("DB 0xFF", Decode(mem, 9))
}
