package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Program image errors
	ErrNotBinary = errors.New(f("not an 8-bit binary literal"))
	ErrRomFull   = errors.New(f("rom full"))
)

// ErrSyntax locates a malformed line of a program image.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrProgramFile indicates a missing, unreadable or malformed program file.
type ErrProgramFile struct {
	Path string
	Err  error
}

func (err *ErrProgramFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrProgramFile) Unwrap() error {
	return err.Err
}
