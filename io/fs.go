package io

import (
	"io/fs"
)

// LoadFile reads a program image from a file system.
func LoadFile(fsys fs.FS, name string) (rom *Rom, err error) {
	defer func() {
		if err != nil {
			rom = nil
			err = &ErrProgramFile{Path: name, Err: err}
		}
	}()

	inf, err := fsys.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	rom = &Rom{}
	_, err = rom.ReadFrom(inf)

	return
}
