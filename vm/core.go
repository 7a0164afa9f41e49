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
	"fortio.org/safecast"
	"github.com/pkg/errors"
)

// maxInsSize is the size of the largest instruction.
const maxInsSize = 4

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// jump sets the PC to target.
func (i *Instance) jump(target int64) error {
	pc, err := safecast.Convert[int](target)
	if err != nil {
		return errors.Wrapf(ErrInvalidAddress, "jump target %d", target)
	}
	i.PC = pc
	return nil
}

// fetch decodes the instruction at PC. When memory growth is enabled, words
// past the end of memory decode as zeros and memory is left as is.
func (i *Instance) fetch() (Instruction, error) {
	if !i.grow || i.PC < 0 || i.PC+maxInsSize <= len(i.Mem) {
		return Decode(i.Mem, i.PC)
	}
	if i.PC >= i.memLimit {
		return Instruction{}, errors.Wrapf(ErrInvalidAddress, "pc %d beyond memory limit %d", i.PC, i.memLimit)
	}
	var w [maxInsSize]int64
	if i.PC < len(i.Mem) {
		copy(w[:], i.Mem[i.PC:])
	}
	n := i.memLimit - i.PC
	if n > maxInsSize {
		n = maxInsSize
	}
	return Decode(w[:n], 0)
}

// exec decodes and executes the instruction at PC. On error, the PC points to
// the faulting instruction.
func (i *Instance) exec() (Status, error) {
	ins, err := i.fetch()
	if err != nil {
		return Faulted, err
	}
	if i.logf != nil {
		i.logf("%6d rb=%-6d %v", i.PC, i.RB, &ins)
	}
	p := &ins.Params
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		a, err := i.read(p[0])
		if err != nil {
			return Faulted, err
		}
		b, err := i.read(p[1])
		if err != nil {
			return Faulted, err
		}
		dst, err := i.writeAddr(p[2])
		if err != nil {
			return Faulted, err
		}
		var v int64
		switch ins.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLessThan:
			v = b2i(a < b)
		case OpEquals:
			v = b2i(a == b)
		}
		i.store(dst, v)
		i.PC += 4
	case OpIn:
		dst, err := i.writeAddr(p[0])
		if err != nil {
			return Faulted, err
		}
		if i.in >= len(i.input) {
			return WaitingForInput, nil
		}
		i.store(dst, i.input[i.in])
		i.in++
		if i.in == len(i.input) {
			i.input, i.in = i.input[:0], 0
		}
		i.PC += 2
	case OpOut:
		v, err := i.read(p[0])
		if err != nil {
			return Faulted, err
		}
		i.output = append(i.output, v)
		i.PC += 2
	case OpJumpIfTrue, OpJumpIfFalse:
		c, err := i.read(p[0])
		if err != nil {
			return Faulted, err
		}
		t, err := i.read(p[1])
		if err != nil {
			return Faulted, err
		}
		if (c != 0) == (ins.Op == OpJumpIfTrue) {
			if err = i.jump(t); err != nil {
				return Faulted, err
			}
		} else {
			i.PC += 3
		}
	case OpAdjustRB:
		d, err := i.read(p[0])
		if err != nil {
			return Faulted, err
		}
		i.RB += d
		i.PC += 2
	case OpHalt:
		i.result = i.load(0)
		i.PC++
		i.insCount++
		return Halted, nil
	}
	i.insCount++
	return Continue, nil
}
