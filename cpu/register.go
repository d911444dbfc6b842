package cpu

const (
	REGISTER_COUNT = 8    // Number of general purpose registers.
	REG_SP         = 7    // Register index of the stack pointer.
	STACK_TOP      = 0xf4 // Initial stack pointer value.
)

// Registers is the LS-8 register bank.
type Registers [REGISTER_COUNT]byte

// Get returns the value of register index.
func (r *Registers) Get(index int) (value byte, err error) {
	if index < 0 || index >= len(r) {
		err = ErrRegisterInvalid
		return
	}

	value = r[index]
	return
}

// Set stores value into register index.
func (r *Registers) Set(index int, value byte) (err error) {
	if index < 0 || index >= len(r) {
		err = ErrRegisterInvalid
		return
	}

	r[index] = value
	return
}

// SP returns the stack pointer.
func (r *Registers) SP() byte {
	return r[REG_SP]
}

// Reset clears all registers and sets the stack pointer to STACK_TOP.
func (r *Registers) Reset() {
	clear(r[:])
	r[REG_SP] = STACK_TOP
}
