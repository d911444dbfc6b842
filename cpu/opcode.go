package cpu

import (
	"fmt"
)

// Opcode is a one-byte instruction code.
//
// The top two bits of an opcode encode the number of operand bytes that
// follow it in memory.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
)

// Operands returns the operand count encoded in the opcode.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // ADD
	ALU_OP_MUL = AluOp(1) // MUL
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// Decode returns the assembly text of the instruction at pc, or a
// byte literal if the opcode is unknown.
func Decode(mem *Memory, pc int) (text string) {
	code, a, b := mem.Fetch(pc)
	op := Opcode(code)

	inst, err := Lookup(op)
	if err != nil {
		text = fmt.Sprintf("DB 0x%02X", code)
		return
	}

	switch inst.Operands() {
	case 0:
		text = op.String()
	case 1:
		text = fmt.Sprintf("%v R%d", op, a)
	case 2:
		if op == OP_LDI {
			text = fmt.Sprintf("%v R%d,%d", op, a, b)
		} else {
			text = fmt.Sprintf("%v R%d,R%d", op, a, b)
		}
	}

	return
}
