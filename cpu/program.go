package cpu

import (
	"fmt"
	"io"
	"iter"
)

// Statement is a line of assembled source with its location in memory.
type Statement struct {
	LineNo    int
	Addr      int
	Text      string
	Bytes     []byte
	LinkLabel string
}

// Program is an assembled LS-8 program.
type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug finds the statement that assembled the byte at addr.
// The returned Debug has a nil Statement if there is none.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, st := range prog.Statements {
		if addr >= st.Addr && addr < st.Addr+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     addr - st.Addr,
			}
			break
		}
	}

	return
}

// Bytes iterates over each assembled byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(addr int, value byte) bool) {
		for _, st := range prog.Statements {
			for n, value := range st.Bytes {
				if !yield(st.Addr+n, value) {
					return
				}
			}
		}
	}
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []byte) {
	for addr, value := range prog.Bytes() {
		for len(bins) < addr {
			bins = append(bins, 0)
		}
		bins = append(bins, value)
	}

	return
}

// Listing writes the program in the .ls8 binary literal format, with the
// source text of each statement as a comment.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, st := range prog.Statements {
		for n, value := range st.Bytes {
			if n == 0 {
				_, err = fmt.Fprintf(w, "%08b # %v\n", value, st.Text)
			} else {
				_, err = fmt.Fprintf(w, "%08b\n", value)
			}
			if err != nil {
				return
			}
		}
	}

	return
}
