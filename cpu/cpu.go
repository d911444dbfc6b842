package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"
	"strings"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE":    fmt.Sprintf("%d", MEMORY_SIZE),
	"REGISTER_COUNT": fmt.Sprintf("%d", REGISTER_COUNT),
	"STACK_TOP":      fmt.Sprintf("0x%x", STACK_TOP),
	"SP":             fmt.Sprintf("R%d", REG_SP),
}

// Cpu is the simulation context for the LS-8.
type Cpu struct {
	Verbose bool      // Set to enable verbose logging.
	Output  io.Writer // Destination of PRN output.

	Pc       int       // Program counter.
	Register Registers // Register bank.
	Memory   Memory    // RAM.
	State    State     // Execution state.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU, printing to standard output.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Output: os.Stdout,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, and sets the stack pointer to STACK_TOP.
// - Zeros the program counter and statistics counters.
// - Sets the CPU running.
//
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0
}

// Load resets the CPU, and loads a program image into memory.
func (cpu *Cpu) Load(program []byte) (err error) {
	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	cpu.Reset()

	return
}

// Halted returns true once a HLT instruction has executed.
func (cpu *Cpu) Halted() bool {
	return cpu.State == STATE_HALTED
}

// Tick executes a single instruction.
//
// On error the program counter still addresses the faulting instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted() {
		err = ErrHalted
		return
	}

	if cpu.Pc < 0 || cpu.Pc >= len(cpu.Memory) {
		err = ErrPcRange
		return
	}

	code, a, b := cpu.Memory.Fetch(cpu.Pc)
	op := Opcode(code)

	inst, err := Lookup(op)
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(op), err)
		}
	}()

	width := inst.Width()
	if cpu.Pc+width > len(cpu.Memory) {
		err = ErrPcRange
		return
	}

	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, Decode(&cpu.Memory, cpu.Pc))
	}

	err = inst.invoke(cpu, a, b)
	if err != nil {
		return
	}

	cpu.Ticks++

	if !cpu.Halted() {
		cpu.Pc += width
	}

	return
}

// Run executes instructions until the CPU halts, or an instruction fails.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted() {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Trace returns the program counter, the three bytes at and after it, and
// all of the registers as hexadecimal.
func (cpu *Cpu) Trace() string {
	code, a, b := cpu.Memory.Fetch(cpu.Pc)

	var text strings.Builder
	fmt.Fprintf(&text, "TRACE: %02X | %02X %02X %02X |", cpu.Pc, code, a, b)
	for _, val := range cpu.Register {
		fmt.Fprintf(&text, " %02X", val)
	}

	return text.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State)
	for n, val := range cpu.Register {
		reg := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			reg = "sp"
		}
		text += fmt.Sprintf("% 5s: %02X\n", reg, val)
	}

	top := "--"
	val, ok := cpu.Peek()
	if ok {
		top = fmt.Sprintf("%02X", val)
	}
	text += fmt.Sprintf("% 5s: %v\n", "stack", top)

	return
}
