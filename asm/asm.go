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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) ([]int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrAsm{{Msg: errors.Wrap(err, name).Error()}}
	}
	return AssembleString(name, string(b))
}

// AssembleString works like Assemble on the source code src.
func AssembleString(name, src string) ([]int64, error) {
	s, err := parse(name, src)
	if err != nil {
		return nil, err
	}
	c := &compiler{labels: make(map[string]int)}
	return c.compile(s)
}

// encode returns the instruction word for ins.
func encode(ins *vm.Instruction) int64 {
	w, m := int64(ins.Op), int64(100)
	for k := 0; k < ins.Op.Params(); k++ {
		w += int64(ins.Params[k].Mode) * m
		m *= 10
	}
	return w
}

// Disassemble writes a disassembly of the instruction in mem at position pc to
// the specified io.Writer and returns the position of the next instruction
// and any write error.
//
// Words that do not decode to a valid instruction are written as a data
// statement, so that the output can be assembled back to the same words.
func Disassemble(mem []int64, pc int, w io.Writer) (next int, err error) {
	if pc < 0 || pc >= len(mem) {
		return pc, errors.Errorf("address %d out of range", pc)
	}
	ew := ici.NewErrWriter(w)
	ins, err := vm.Decode(mem, pc)
	if err == nil {
		if d := ins.Op.Dst(); encode(&ins) == mem[pc] && (d < 0 || ins.Params[d].Mode != vm.Immediate) {
			io.WriteString(ew, ins.String())
			return pc + ins.Size(), ew.Err
		}
	}
	io.WriteString(ew, "data ")
	io.WriteString(ew, strconv.FormatInt(mem[pc], 10))
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all words in the given slice to
// the specified io.Writer, one instruction per line, with its address in a
// trailing comment. The base argument specifies the real address of the first
// word (mem[0]). It will return any write error.
func DisassembleAll(mem []int64, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	var b strings.Builder
	for pc := 0; pc < len(mem); {
		b.Reset()
		next, _ := Disassemble(mem, pc, &b)
		fmt.Fprintf(ew, "\t%-24s; %d\n", b.String(), base+pc)
		if ew.Err != nil {
			return ew.Err
		}
		pc = next
	}
	return nil
}
