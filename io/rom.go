// Package io reads and writes LS-8 program images.
//
// A program image is a text file with one 8-bit binary literal per line.
// Anything after a '#' is a comment, and blank lines are ignored:
//
//	10000010 # LDI R0,8
//	00000000
//	00001000
//	01000111 # PRN R0
//	00000000
//	00000001 # HLT
package io

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"strconv"
	"strings"
)

const (
	ROM_SIZE = 256 // Maximum size of a program image.
)

// Rom is an LS-8 program image.
type Rom struct {
	Data []byte
}

var _ io.ReaderFrom = (*Rom)(nil)
var _ io.WriterTo = (*Rom)(nil)

// Defines returns an iter of defines for the ROM.
func (rc *Rom) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"ROM_SIZE": fmt.Sprintf("%d", ROM_SIZE),
	})
}

// ReadFrom replaces the ROM data with the program image read from r.
func (rc *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	scanner := bufio.NewScanner(r)

	var lineno int
	var data []byte

	for scanner.Scan() {
		text := scanner.Text()
		n += int64(len(text)) + 1
		lineno++

		line := strings.TrimSpace(strings.Split(text, "#")[0])
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: ErrNotBinary}
			return
		}

		if len(data) == ROM_SIZE {
			err = ErrSyntax{LineNo: lineno, Line: text, Err: ErrRomFull}
			return
		}

		data = append(data, byte(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rc.Data = data

	return
}

// WriteTo writes the ROM data as a program image.
func (rc *Rom) WriteTo(w io.Writer) (n int64, err error) {
	out := bufio.NewWriter(w)

	for _, value := range rc.Data {
		var wrote int
		wrote, err = fmt.Fprintf(out, "%08b\n", value)
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = out.Flush()

	return
}
