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
	"fmt"

	"github.com/pkg/errors"
)

// Fault causes. Errors returned by Step, Run and RunLimit for a faulted
// instance are *Fault values whose cause is one of these.
var (
	ErrMemoryOverflow       = errors.New("memory overflow")
	ErrInvalidAddress       = errors.New("invalid address")
	ErrUnknownOpcode        = errors.New("unknown opcode")
	ErrUnknownParameterMode = errors.New("unknown parameter mode")
	ErrImmediateWriteTarget = errors.New("immediate mode write target")
)

// ErrStepLimit is returned by RunLimit when the step budget is exhausted. The
// instance can be resumed.
var ErrStepLimit = errors.New("step limit reached")

// Fault describes a fatal execution error.
type Fault struct {
	Err  error // cause, wraps one of the Err* fault causes
	PC   int   // address of the faulting instruction
	Word int64 // instruction word at PC, if any
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault @pc=%d (%d): %v", f.PC, f.Word, f.Err)
}

// Unwrap returns f.Err.
func (f *Fault) Unwrap() error { return f.Err }

// Cause returns f.Err.
func (f *Fault) Cause() error { return f.Err }

// Format implements fmt.Formatter. With the %+v verb, the stack trace of the
// cause is printed as well.
func (f *Fault) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "fault @pc=%d (%d): %+v", f.PC, f.Word, f.Err)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, f.Error())
	case 'q':
		fmt.Fprintf(s, "%q", f.Error())
	}
}
