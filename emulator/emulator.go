// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
)

const (
	PROGRAM_LIMIT = cpu.STACK_TOP // Bytes available below the stack.
)

var _emulator_defines = map[string]string{
	"PROGRAM_LIMIT": fmt.Sprintf("0x%x", PROGRAM_LIMIT),
}

// Emulator state. CPU + program ROM.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Assembled program listing, if any.
	Rom      io.Rom       // Program image loaded on reset.

	Tracer *log.Logger // If set, receives a trace line before each instruction.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Rom.Defines(),
	)
}

// Reset the emulator state, and load the program into memory.
//
// If an assembled Program is present, it replaces the ROM contents.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Program != nil {
		emu.Rom.Data = emu.Program.Binary()
	}

	if emu.Verbose && len(emu.Rom.Data) > PROGRAM_LIMIT {
		log.Printf("emulator: program of %d bytes overlaps the stack", len(emu.Rom.Data))
	}

	err = emu.Cpu.Load(emu.Rom.Data)
	if err != nil {
		return
	}

	return
}

// LineNo returns the source line number of the instruction at the program
// counter, or 0 if there is no program listing.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: addr, LineNo: lineno, Err: err}
		}
	}()

	if emu.Tracer != nil {
		emu.Tracer.Print(emu.Cpu.Trace())
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted()

	return
}

// Run ticks the emulator until the program halts, or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
