package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted          = errors.New(f("cpu halted"))
	ErrPcRange         = errors.New(f("pc out of range"))
	ErrMemoryFull      = errors.New(f("memory full"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrStackEmpty      = errors.New(f("stack empty"))
	ErrStackFull       = errors.New(f("stack full"))

	// Instruction decode errors
	ErrOpcodeUnknown  = errors.New(f("opcode unknown"))
	ErrAluUnsupported = errors.New(f("unsupported alu operation"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOperandCount       = errors.New(f("wrong number of operands"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrOpcode identifies the opcode byte that faulted.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", uint8(eo), Opcode(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a byte value", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Unwrap() error {
	return ErrRegisterInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
