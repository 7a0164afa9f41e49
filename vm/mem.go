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

// addr converts v to a memory index.
func (i *Instance) addr(v int64) (int, error) {
	a, err := safecast.Convert[int](v)
	if err != nil || a < 0 {
		return 0, errors.Wrapf(ErrInvalidAddress, "%d", v)
	}
	if !i.grow {
		if a >= len(i.Mem) {
			return 0, errors.Wrapf(ErrInvalidAddress, "%d out of range [0, %d)", v, len(i.Mem))
		}
	} else if a >= i.memLimit {
		return 0, errors.Wrapf(ErrInvalidAddress, "%d beyond memory limit %d", v, i.memLimit)
	}
	return a, nil
}

func (i *Instance) load(a int) int64 {
	if a < len(i.Mem) {
		return i.Mem[a]
	}
	return 0
}

func (i *Instance) store(a int, v int64) {
	if a >= len(i.Mem) {
		i.growTo(a + 1)
	}
	i.Mem[a] = v
}

// growTo grows memory to hold at least n words. Memory is at least doubled,
// up to the memory limit. Callers must check n against the limit.
func (i *Instance) growTo(n int) {
	if n <= len(i.Mem) {
		return
	}
	sz := 2 * len(i.Mem)
	if sz < n {
		sz = n
	}
	if sz > i.memLimit {
		sz = i.memLimit
	}
	if sz <= cap(i.Mem) {
		i.Mem = i.Mem[:sz]
		return
	}
	m := make([]int64, sz)
	copy(m, i.Mem)
	i.Mem = m
}

// read resolves p to a value.
func (i *Instance) read(p Param) (int64, error) {
	var v int64
	switch p.Mode {
	case Immediate:
		return p.Value, nil
	case Position:
		v = p.Value
	case Relative:
		v = p.Value + i.RB
	default:
		return 0, errors.Wrapf(ErrUnknownParameterMode, "%d", p.Mode)
	}
	a, err := i.addr(v)
	if err != nil {
		return 0, err
	}
	return i.load(a), nil
}

// writeAddr resolves p to a memory index suitable for writing.
func (i *Instance) writeAddr(p Param) (int, error) {
	switch p.Mode {
	case Position:
		return i.addr(p.Value)
	case Relative:
		return i.addr(p.Value + i.RB)
	case Immediate:
		return 0, errors.Wrapf(ErrImmediateWriteTarget, "%s", p)
	}
	return 0, errors.Wrapf(ErrUnknownParameterMode, "%d", p.Mode)
}
