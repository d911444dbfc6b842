// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var (
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
	reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Assembler is a single pass assembler for LS-8 mnemonics.
type Assembler struct {
	Verbose   bool        // If set, verbosely logs the assembler actions.
	Statement []Statement // List of generated statements.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the byte value of a number. Negative numbers down to
// -128 are encoded as two's complement.
func (asm *Assembler) valueOf(word string) (value byte, err error) {
	v64, err := strconv.ParseInt(word, 0, 16)
	if err != nil || v64 < -128 || v64 > 0xff {
		err = ErrParseNumber(word)
		return
	}

	value = byte(v64)
	return
}

// registerOf returns the register index named by word.
func (asm *Assembler) registerOf(word string) (index byte, err error) {
	if len(word) != 2 || (word[0] != 'R' && word[0] != 'r') {
		err = ErrParseRegister(word)
		return
	}

	n := int(word[1] - '0')
	if n < 0 || n >= REGISTER_COUNT {
		err = ErrParseRegister(word)
		return
	}

	index = byte(n)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates, such as register names.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// currentAddr gets the address of the next assembled byte.
func (asm *Assembler) currentAddr() int {
	if len(asm.Statement) == 0 {
		return 0
	}

	last := asm.Statement[len(asm.Statement)-1]

	return last.Addr + len(last.Bytes)
}

// parseLine expands a single line into words, handling equates,
// expressions, and labels.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
	}

	return
}

// parseWords assembles the words of a single statement.
func (asm *Assembler) parseWords(words []string, lineno int, text string) (err error) {
	var bytes []byte
	var label string

	if len(words) == 0 {
		return
	}

	defer func() {
		if err != nil || len(bytes) == 0 {
			return
		}
		st := Statement{LineNo: lineno, Addr: asm.currentAddr(), Text: text, Bytes: bytes, LinkLabel: label}
		asm.Statement = append(asm.Statement, st)
	}()

	mnemonic := strings.ToUpper(words[0])
	args := words[1:]

	if mnemonic == "DB" {
		if len(args) == 0 {
			err = ErrOperandCount
			return
		}
		for _, arg := range args {
			var value byte
			value, err = asm.valueOf(arg)
			if err != nil {
				return
			}
			bytes = append(bytes, value)
		}
		return
	}

	inst, ok := LookupMnemonic(mnemonic)
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(args) != inst.Operands() {
		err = ErrOperandCount
		return
	}

	bytes = append(bytes, byte(inst.Opcode))
	for n, arg := range args {
		var value byte
		if inst.Opcode == OP_LDI && n == 1 {
			value, err = asm.valueOf(arg)
			if err != nil && reLabel.MatchString(arg) {
				// Resolved when linking.
				err = nil
				label = arg
			}
		} else {
			value, err = asm.registerOf(arg)
		}
		if err != nil {
			return
		}
		bytes = append(bytes, value)
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Statement = asm.Statement[:0]
	asm.Label = make(map[string]int)
	asm.Equate = maps.Clone(asm.predefine)
	if asm.Equate == nil {
		asm.Equate = make(map[string]string)
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(strings.Split(text, ";")[0])

		var words []string
		words, err = asm.parseLine(line)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno, line)
		if err != nil {
			return
		}

		if asm.currentAddr() > MEMORY_SIZE {
			err = ErrMemoryFull
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Statement {
		st := &asm.Statement[n]

		if len(st.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[st.LinkLabel]
		if !ok {
			lineno = st.LineNo
			line = st.Text
			err = ErrLabelMissing(st.LinkLabel)
			return
		}
		if addr > 0xff {
			lineno = st.LineNo
			line = st.Text
			err = ErrParseNumber(fmt.Sprintf("%d", addr))
			return
		}
		st.Bytes[len(st.Bytes)-1] = byte(addr)
	}

	prog = &Program{
		Statements: slices.Clone(asm.Statement),
	}

	if asm.Verbose {
		log.Print(pp.Sprint(prog.Statements))
	}

	return
}
