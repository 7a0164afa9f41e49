// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm_test

import (
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []int64

func TestAssemble(t *testing.T) {
	for _, test := range []struct {
		name string
		code string
		prog C
	}{
		{"empty", "", nil},
		{"comments", "; nothing\n\n   ; here\n", nil},
		{"add", "add 9, 10, 3", C{1, 9, 10, 3}},
		{"modes", "mul 4, #3, 4", C{1002, 4, 3, 4}},
		{"relative", "add #3, #4, rb\nout rb+0\nin rb-2", C{21101, 3, 4, 0, 204, 0, 203, -2}},
		{"negative", "arb #-34\nadd -1, #-2, 7", C{109, -34, 1001, -1, -2, 7}},
		{"aliases", "inp 0\njt #1, #0\njf #0, #0\nrbo #1\nhalt", C{3, 0, 1105, 1, 0, 1106, 0, 0, 109, 1, 99}},
		{"jumps", "jnz #1, #end\njz 5, end\nend: hlt", C{1105, 1, 6, 6, 5, 6, 99}},
		{"compare", "lt #1, #2, 0\neq 0, #1, 0", C{1107, 1, 2, 0, 1008, 0, 1, 0}},
		{"data", "x: data 1, -2, x, #4\ny:", C{1, -2, 0, 4}},
		{"forward", "out v\nhlt\nv: data 42", C{4, 3, 99, 42}},
		{"label line", "start:\n  jnz #1, #start", C{1105, 1, 0}},
		{"crlf", "out #1\r\nhlt\r\n", C{104, 1, 99}},
		{"labels as offsets", "arb #-len\nout rb+len\nlen: data 5", C{109, -4, 204, 4, 5}},
	} {
		p, err := asm.AssembleString(test.name, test.code)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.prog, C(p), test.name)
	}
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	foo 1
	add 1, 2
	out zorg
	add 1, 2, #3
	in #5
l:	hlt
l:	hlt
rb:	data 99999999999999999999
`
	_, err := asm.AssembleString("test_errors", code)
	require.Error(t, err)
	errs, ok := err.(asm.ErrAsm)
	require.True(t, ok)
	require.Len(t, errs, 8)
	lines := []int{2, 3, 4, 5, 6, 8, 9, 9}
	for k, e := range errs {
		assert.Equal(t, lines[k], e.Pos.Line, "%v", &errs[k])
		assert.Equal(t, "test_errors", e.Pos.Filename)
	}
	assert.True(t, strings.HasPrefix(err.Error(), "test_errors:2:"), err.Error())

	// syntax error
	_, err = asm.AssembleString("syntax", "add 1,, 2")
	require.Error(t, err)
	errs, ok = err.(asm.ErrAsm)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Pos.Line)
}

func TestAssemble_maxErrors(t *testing.T) {
	_, err := asm.AssembleString("many", strings.Repeat("nope\n", 20))
	require.Error(t, err)
	assert.Len(t, err.(asm.ErrAsm), 10)
}

func TestDisassemble(t *testing.T) {
	for _, test := range []struct {
		prog C
		pc   int
		next int
		s    string
	}{
		{C{1002, 4, 3, 4}, 0, 4, "mul 4, #3, 4"},
		{C{0, 204, -1}, 1, 3, "out rb-1"},
		{C{99}, 0, 1, "hlt"},
		{C{42}, 0, 1, "data 42"},
		{C{11101, 1, 1, 1}, 0, 1, "data 11101"},
		{C{10099}, 0, 1, "data 10099"},
		{C{1, 2}, 0, 1, "data 1"},
	} {
		var b strings.Builder
		next, err := asm.Disassemble(test.prog, test.pc, &b)
		require.NoError(t, err)
		assert.Equal(t, test.next, next, test.s)
		assert.Equal(t, test.s, b.String())
	}

	_, err := asm.Disassemble(C{99}, 1, &strings.Builder{})
	assert.Error(t, err)
}

func TestDisassembleAll_reassemble(t *testing.T) {
	progs := []C{
		{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99},
		{3, 21, 1008, 21, 8, 20, 1005, 20, 22, 107, 8, 21, 20, 1006, 20, 31,
			1106, 0, 36, 98, 0, 0, 1002, 21, 125, 20, 4, 20, 1105, 1, 46, 104,
			999, 1105, 1, 46, 1101, 1000, 1, 20, 4, 20, 1105, 1, 46, 98, 99},
		{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50},
	}
	for _, p := range progs {
		var b strings.Builder
		require.NoError(t, asm.DisassembleAll(p, 0, &b))
		q, err := asm.AssembleString("reassemble", b.String())
		require.NoError(t, err, b.String())
		assert.Equal(t, p, C(q))
	}
}

// Assembled programs run as expected.
func TestAssemble_run(t *testing.T) {
	code := `
	; count down from the input value to 1
	in n
loop:	out n
	add n, #-1, n
	jnz n, #loop
	hlt
n:	data 0
`
	p, err := asm.AssembleString("countdown", code)
	require.NoError(t, err)
	i, err := vm.New(p, 0, vm.Input(3))
	require.NoError(t, err)
	st, err := i.Run()
	require.NoError(t, err)
	assert.Equal(t, vm.Halted, st)
	assert.Equal(t, C{3, 2, 1}, C(i.Output()))
}
