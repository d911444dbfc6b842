package cpu

// Alu performs op on registers a and b, storing the result in register a.
// Results wrap modulo 256.
func (cpu *Cpu) Alu(op AluOp, a, b int) (err error) {
	input, err := cpu.Register.Get(a)
	if err != nil {
		return
	}

	value, err := cpu.Register.Get(b)
	if err != nil {
		return
	}

	var output byte
	switch op {
	case ALU_OP_ADD:
		output = input + value
	case ALU_OP_MUL:
		output = input * value
	default:
		err = ErrAluUnsupported
		return
	}

	cpu.Register[a] = output

	return
}
