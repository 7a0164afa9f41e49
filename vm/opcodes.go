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

package vm

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Opcode identifies an Intcode instruction. It is the value of the two least
// significant decimal digits of an instruction word.
type Opcode int64

// Intcode opcodes.
const (
	OpAdd         Opcode = 1
	OpMul         Opcode = 2
	OpIn          Opcode = 3
	OpOut         Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpAdjustRB    Opcode = 9
	OpHalt        Opcode = 99
)

type opInfo struct {
	name   string
	params int
	dst    int // index of the write parameter, -1 if none
}

var opcodes = [...]opInfo{
	OpAdd:         {"add", 3, 2},
	OpMul:         {"mul", 3, 2},
	OpIn:          {"in", 1, 0},
	OpOut:         {"out", 1, -1},
	OpJumpIfTrue:  {"jnz", 2, -1},
	OpJumpIfFalse: {"jz", 2, -1},
	OpLessThan:    {"lt", 3, 2},
	OpEquals:      {"eq", 3, 2},
	OpAdjustRB:    {"arb", 1, -1},
	OpHalt:        {"hlt", 0, -1},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op > 0 && op < Opcode(len(opcodes)) && opcodes[op].name != ""
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if !op.Valid() {
		return "op(" + strconv.FormatInt(int64(op), 10) + ")"
	}
	return opcodes[op].name
}

// Params returns the number of parameters expected by op.
func (op Opcode) Params() int {
	if !op.Valid() {
		return 0
	}
	return opcodes[op].params
}

// Dst returns the index of the parameter op writes to, or -1.
func (op Opcode) Dst() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].dst
}

// Size returns the number of words used by an instruction with opcode op.
func (op Opcode) Size() int {
	return 1 + op.Params()
}

// Mode is a parameter mode.
type Mode int8

// Parameter modes.
const (
	Position  Mode = 0 // value is an address
	Immediate Mode = 1 // value is used as-is
	Relative  Mode = 2 // value is an offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Param is an instruction parameter: its raw value and its mode.
type Param struct {
	Value int64
	Mode  Mode
}

func (p Param) String() string {
	v := strconv.FormatInt(p.Value, 10)
	switch p.Mode {
	case Immediate:
		return "#" + v
	case Relative:
		switch {
		case p.Value == 0:
			return "rb"
		case p.Value > 0:
			return "rb+" + v
		}
		return "rb" + v
	}
	return v
}

// Instruction is a decoded instruction.
type Instruction struct {
	Op     Opcode
	Params [3]Param
}

// Size returns the number of words used by the instruction.
func (ins *Instruction) Size() int { return ins.Op.Size() }

// String returns the instruction in assembler syntax, e.g. "add 10, #3, rb+2".
func (ins *Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	for k := 0; k < ins.Op.Params(); k++ {
		if k == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(ins.Params[k].String())
	}
	return b.String()
}

// Decode decodes the instruction at address pc in mem.
//
// The returned error's cause is ErrInvalidAddress if pc is negative,
// ErrMemoryOverflow if the instruction does not fit in mem, ErrUnknownOpcode or
// ErrUnknownParameterMode.
func Decode(mem []int64, pc int) (ins Instruction, err error) {
	if pc < 0 {
		return ins, errors.Wrapf(ErrInvalidAddress, "pc %d", pc)
	}
	if pc >= len(mem) {
		return ins, errors.Wrapf(ErrMemoryOverflow, "pc %d", pc)
	}
	w := mem[pc]
	ins.Op = Opcode(w % 100)
	if !ins.Op.Valid() {
		return ins, errors.Wrapf(ErrUnknownOpcode, "%d", w)
	}
	n := ins.Op.Params()
	for k, modes := 0, w/100; modes > 0; k, modes = k+1, modes/10 {
		m := Mode(modes % 10)
		if m > Relative {
			return ins, errors.Wrapf(ErrUnknownParameterMode, "%d in %d", m, w)
		}
		if k < n {
			ins.Params[k].Mode = m
		}
	}
	if pc+n >= len(mem) {
		return ins, errors.Wrapf(ErrMemoryOverflow, "%s at %d needs %d words", ins.Op, pc, n+1)
	}
	for k := 0; k < n; k++ {
		ins.Params[k].Value = mem[pc+1+k]
	}
	return ins, nil
}
