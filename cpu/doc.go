// Package cpu implements the LS-8 microprocessor and assembler.
//
// The CPU consists of 256 bytes of memory, a program counter (PC), eight
// 8-bit registers (R0-R7, with R7 doubling as the stack pointer), an ALU, and
// a dispatch table that maps each one-byte opcode to its handler. The stack
// lives in memory and grows downward from 0xF4.
//
// The assembler translates LS-8 mnemonics into a Program, supporting labels,
// equates, raw data bytes and compile-time expression evaluation.
package cpu
