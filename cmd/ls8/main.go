// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/io"
)

const (
	EXIT_USAGE   = 1 // Bad command line, or runtime fault.
	EXIT_PROGRAM = 2 // Program file missing or unreadable.
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] program.ls8\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %v [options] -c program.asm\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var compile string
	var save bool
	var output string
	var trace bool
	var verbose bool
	var dump bool

	flag.Usage = usage
	flag.StringVar(&compile, "c", "", ".asm file to compile")
	flag.BoolVar(&save, "s", false, "Save compiled program as .ls8, do not execute")
	flag.StringVar(&output, "o", "-", "Output for -s")
	flag.BoolVar(&trace, "t", false, "Trace each instruction to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump the machine state on exit")

	flag.Parse()

	log.SetPrefix(os.Args[0] + ": ")

	if len(compile) == 0 && flag.NArg() != 1 {
		flag.Usage()
		os.Exit(EXIT_USAGE)
	}
	if len(compile) != 0 && flag.NArg() != 0 {
		log.Printf("Unknown arguments: %v", flag.Args())
		os.Exit(EXIT_USAGE)
	}
	if save && len(compile) == 0 {
		log.Printf("-s requires -c")
		os.Exit(EXIT_USAGE)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Cpu.Output = os.Stdout

	if trace {
		emu.Tracer = log.New(os.Stderr, "", 0)
	}

	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Printf("%v: %v", compile, err)
			os.Exit(EXIT_PROGRAM)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for equ, value := range emu.Defines() {
			asm.Predefine(equ, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		name := flag.Arg(0)
		rom, err := io.LoadFile(os.DirFS(filepath.Dir(name)), filepath.Base(name))
		if err != nil {
			log.Print(err)
			os.Exit(EXIT_PROGRAM)
		}
		emu.Rom = *rom
	}

	if save {
		ouf := os.Stdout
		if output != "-" {
			var err error
			ouf, err = os.Create(output)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			defer ouf.Close()
		}
		err := emu.Program.Listing(ouf)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()

	if dump {
		pp.Fprintln(os.Stderr, emu.Cpu)
	}

	if err != nil {
		log.Fatal(err)
	}
}
