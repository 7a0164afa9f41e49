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

import "github.com/pkg/errors"

// DefaultMemSize is the conventional minimum memory size, in words.
const DefaultMemSize = 4096

// DefaultMemLimit is the memory size limit, in words, used by GrowMemory when
// no limit is given.
const DefaultMemLimit = 1 << 24

// Status is the execution status of an Instance after a step.
type Status int

// Execution statuses.
const (
	Continue        Status = iota // ready to execute the next instruction
	Halted                        // halt instruction executed
	WaitingForInput               // suspended on an input instruction with an empty input queue
	Faulted                       // fatal error
)

var statusNames = [...]string{"continue", "halted", "waiting for input", "faulted"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Terminal returns true for the Halted and Faulted statuses.
func (s Status) Terminal() bool { return s == Halted || s == Faulted }

// Instance represents an Intcode VM instance.
type Instance struct {
	PC       int     // Program Counter (aka. Instruction Pointer)
	RB       int64   // Relative base
	Mem      []int64 // Memory
	input    []int64
	in       int // read cursor in input
	output   []int64
	insCount int64
	grow     bool
	memLimit int
	logf     func(format string, args ...interface{})
	status   Status
	err      error
	result   int64
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(values ...int64) Option {
	return func(i *Instance) error { i.PushInput(values...); return nil }
}

// GrowMemory enables on-demand memory growth: writes past the end of memory
// grow it, zero-filled, and reads past the end return 0. Addresses at or
// beyond limit are still invalid. A limit of 0 means DefaultMemLimit, or the
// current memory size if larger.
//
// The default is a fixed size memory where any access past the end faults.
func GrowMemory(limit int) Option {
	return func(i *Instance) error {
		if limit < 0 {
			return errors.Errorf("negative memory limit %d", limit)
		}
		if limit == 0 {
			limit = DefaultMemLimit
			if limit < len(i.Mem) {
				limit = len(i.Mem)
			}
		}
		if limit < len(i.Mem) {
			return errors.Errorf("memory limit %d below current size %d", limit, len(i.Mem))
		}
		i.grow = true
		i.memLimit = limit
		return nil
	}
}

// Patch overwrites memory starting at addr with the given values. This is
// typically used to set the "noun" and "verb" of a program (addresses 1 and 2)
// before running it.
func Patch(addr int, values ...int64) Option {
	return func(i *Instance) error {
		for k, v := range values {
			a, err := i.addr(int64(addr + k))
			if err != nil {
				return errors.Wrap(err, "Patch")
			}
			i.store(a, v)
		}
		return nil
	}
}

// Trace sets a function used to log every executed instruction. A nil logf
// disables tracing.
func Trace(logf func(format string, args ...interface{})) Option {
	return func(i *Instance) error { i.logf = logf; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The program is copied into a new memory of at least minSize words, zero
// padded. Usually minSize is DefaultMemSize.
//
// Options will be set by calling SetOptions, in order.
func New(program []int64, minSize int, opts ...Option) (*Instance, error) {
	sz := len(program)
	if minSize > sz {
		sz = minSize
	}
	i := &Instance{
		Mem: make([]int64, sz),
	}
	copy(i.Mem, program)
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// State returns the status of the last step and, if the instance has faulted,
// the fault.
func (i *Instance) State() (Status, error) {
	return i.status, i.err
}

// Result returns the value of memory address 0 at the time the halt
// instruction was executed. It is 0 until the instance halts.
func (i *Instance) Result() int64 {
	return i.result
}
