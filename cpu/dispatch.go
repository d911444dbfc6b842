package cpu

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// handler is one of nullary, unary or binary.
type handler interface {
	operands() int
}

type nullary func(cpu *Cpu) error
type unary func(cpu *Cpu, a byte) error
type binary func(cpu *Cpu, a, b byte) error

func (nullary) operands() int { return 0 }
func (unary) operands() int   { return 1 }
func (binary) operands() int  { return 2 }

// Instruction is a dispatch table entry.
type Instruction struct {
	Opcode Opcode
	handler
}

// Operands returns the number of operand bytes consumed.
func (inst Instruction) Operands() int {
	return inst.handler.operands()
}

// Width returns the size in bytes of the encoded instruction.
func (inst Instruction) Width() int {
	return 1 + inst.Operands()
}

// String returns the instruction mnemonic.
func (inst Instruction) String() string {
	return inst.Opcode.String()
}

// invoke calls the handler with as many operands as it declares.
func (inst Instruction) invoke(cpu *Cpu, a, b byte) (err error) {
	switch h := inst.handler.(type) {
	case nullary:
		err = h(cpu)
	case unary:
		err = h(cpu, a)
	case binary:
		err = h(cpu, a, b)
	default:
		panic(fmt.Sprintf("opcode %v: unknown handler %T", inst.Opcode, h))
	}

	return
}

var instructionSet = map[Opcode]Instruction{
	OP_HLT:  {OP_HLT, nullary(hlt)},
	OP_LDI:  {OP_LDI, binary(ldi)},
	OP_PRN:  {OP_PRN, unary(prn)},
	OP_MUL:  {OP_MUL, binary(mul)},
	OP_PUSH: {OP_PUSH, unary(push)},
	OP_POP:  {OP_POP, unary(pop)},
}

// Lookup returns the dispatch table entry for op.
func Lookup(op Opcode) (inst Instruction, err error) {
	inst, ok := instructionSet[op]
	if !ok {
		err = errors.Join(ErrOpcode(op), ErrOpcodeUnknown)
		return
	}

	return
}

// LookupMnemonic returns the dispatch table entry for a mnemonic,
// such as "LDI".
func LookupMnemonic(name string) (inst Instruction, ok bool) {
	for _, inst = range instructionSet {
		if inst.Opcode.String() == name {
			ok = true
			return
		}
	}

	inst = Instruction{}
	return
}

// Instructions returns an iterator over the dispatch table, in opcode order.
func Instructions() iter.Seq2[Opcode, Instruction] {
	return func(yield func(Opcode, Instruction) bool) {
		for _, op := range slices.Sorted(maps.Keys(instructionSet)) {
			if !yield(op, instructionSet[op]) {
				return
			}
		}
	}
}

func hlt(cpu *Cpu) error {
	cpu.State = STATE_HALTED
	return nil
}

func ldi(cpu *Cpu, reg, value byte) error {
	return cpu.Register.Set(int(reg), value)
}

func prn(cpu *Cpu, reg byte) (err error) {
	value, err := cpu.Register.Get(int(reg))
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(cpu.Output, value)
	return
}

func mul(cpu *Cpu, a, b byte) error {
	return cpu.Alu(ALU_OP_MUL, int(a), int(b))
}

func push(cpu *Cpu, reg byte) error {
	return cpu.Push(int(reg))
}

func pop(cpu *Cpu, reg byte) error {
	return cpu.Pop(int(reg))
}
