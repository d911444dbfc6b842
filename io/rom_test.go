package io

import (
	"bytes"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
)

const print8 = `# print8.ls8

10000010 # LDI R0,8
00000000
00001000
01000111 # PRN R0
00000000
00000001 # HLT
`

func TestRom_ReadFrom(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	n, err := rom.ReadFrom(strings.NewReader(print8))
	assert.NoError(err)
	assert.Equal(int64(len(print8)), n)
	assert.Equal([]byte{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, rom.Data)
}

func TestRom_ReadFrom_Empty(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []byte{1, 2, 3}}
	_, err := rom.ReadFrom(strings.NewReader("\n# nothing here\n   \n"))
	assert.NoError(err)
	assert.Equal(0, len(rom.Data))
}

func TestRom_ReadFrom_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		lineno int
		err    error
	}){
		{"decimal", "10000010\n12\n", 2, ErrNotBinary},
		{"wide", "100000010\n", 1, ErrNotBinary},
		{"word", "00000001\n\nHLT # halt\n", 3, ErrNotBinary},
		{"full", strings.Repeat("00000000\n", ROM_SIZE+1), ROM_SIZE + 1, ErrRomFull},
	}

	for _, entry := range table {
		rom := &Rom{Data: []byte{0xaa}}
		_, err := rom.ReadFrom(strings.NewReader(entry.text))
		assert.ErrorIs(err, entry.err, entry.name)

		var syn ErrSyntax
		if assert.True(errors.As(err, &syn), entry.name) {
			assert.Equal(entry.lineno, syn.LineNo, entry.name)
		}

		// Data is untouched on error.
		assert.Equal([]byte{0xaa}, rom.Data, entry.name)
	}
}

func TestRom_WriteTo(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []byte{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}}

	out := &bytes.Buffer{}
	n, err := rom.WriteTo(out)
	assert.NoError(err)
	assert.Equal(int64(6*9), n)
	assert.Equal("10000010\n00000000\n00001000\n01000111\n00000000\n00000001\n", out.String())

	again := &Rom{}
	_, err = again.ReadFrom(out)
	assert.NoError(err)
	assert.Equal(rom.Data, again.Data)
}

func TestRom_Defines(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{}
	defines := map[string]string{}
	for key, value := range rom.Defines() {
		defines[key] = value
	}

	assert.Equal(map[string]string{"ROM_SIZE": "256"}, defines)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	fsys := fstest.MapFS{
		"examples/print8.ls8": &fstest.MapFile{Data: []byte(print8)},
		"examples/bad.ls8":    &fstest.MapFile{Data: []byte("HLT\n")},
	}

	rom, err := LoadFile(fsys, "examples/print8.ls8")
	assert.NoError(err)
	assert.Equal([]byte{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, rom.Data)

	rom, err = LoadFile(fsys, "examples/missing.ls8")
	assert.Nil(rom)
	assert.ErrorIs(err, fs.ErrNotExist)
	var pf *ErrProgramFile
	if assert.True(errors.As(err, &pf)) {
		assert.Equal("examples/missing.ls8", pf.Path)
	}

	rom, err = LoadFile(fsys, "examples/bad.ls8")
	assert.Nil(rom)
	assert.ErrorIs(err, ErrNotBinary)
	assert.True(errors.As(err, &pf))
}
