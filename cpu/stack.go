package cpu

// Push decrements the stack pointer, then stores the value of register reg
// at the new stack pointer address.
//
// Pushing with the stack pointer at 0 fails with ErrStackFull and leaves
// the machine state unchanged.
func (cpu *Cpu) Push(reg int) (err error) {
	value, err := cpu.Register.Get(reg)
	if err != nil {
		return
	}

	sp := cpu.Register.SP()
	if sp == 0 {
		err = ErrStackFull
		return
	}

	sp--
	cpu.Register[REG_SP] = sp
	cpu.Memory[sp] = value

	return
}

// Pop reads the byte at the stack pointer, increments the stack pointer,
// then stores the byte into register reg.
//
// Popping with the stack pointer at 0xFF fails with ErrStackEmpty and
// leaves the machine state unchanged.
func (cpu *Cpu) Pop(reg int) (err error) {
	if reg < 0 || reg >= len(cpu.Register) {
		err = ErrRegisterInvalid
		return
	}

	sp := cpu.Register.SP()
	if int(sp) == len(cpu.Memory)-1 {
		err = ErrStackEmpty
		return
	}

	value := cpu.Memory[sp]
	cpu.Register[REG_SP] = sp + 1
	cpu.Register[reg] = value

	return
}

// Peek returns the byte at the top of the stack.
func (cpu *Cpu) Peek() (value byte, ok bool) {
	sp := cpu.Register.SP()
	if sp >= STACK_TOP {
		return
	}

	return cpu.Memory[sp], true
}

// Depth returns the number of bytes pushed below STACK_TOP.
func (cpu *Cpu) Depth() int {
	sp := int(cpu.Register.SP())
	if sp >= STACK_TOP {
		return 0
	}

	return STACK_TOP - sp
}
