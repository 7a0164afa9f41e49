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

// Step executes a single instruction and returns the resulting status.
//
// On WaitingForInput, nothing has been executed and the PC still points to the
// input instruction. Push some input and call Step or Run again to resume.
//
// Once an instance has halted or faulted, Step returns the same status and
// error without executing anything.
func (i *Instance) Step() (Status, error) {
	st, err := i.RunLimit(1)
	if err == ErrStepLimit {
		err = nil
	}
	return st, err
}

// Run executes instructions until the instance halts, faults or waits for
// input. If an error occurs, the PC will point to the instruction that
// triggered the error.
func (i *Instance) Run() (Status, error) {
	return i.RunLimit(0)
}

// RunLimit works like Run but executes at most max instructions. If the
// budget runs out, it returns Continue and ErrStepLimit, and the instance can
// be resumed. A max of 0 or less means no limit.
func (i *Instance) RunLimit(max int64) (st Status, err error) {
	if i.status.Terminal() {
		return i.status, i.err
	}
	pc := i.PC
	defer func() {
		if e := recover(); e != nil {
			err = i.fault(pc, errors.Errorf("recovered error: %v", e))
			st = Faulted
		}
	}()
	for n := int64(0); max <= 0 || n < max; n++ {
		pc = i.PC
		st, err = i.exec()
		switch st {
		case Continue:
			continue
		case Faulted:
			err = i.fault(pc, err)
		}
		i.status = st
		return st, err
	}
	i.status = Continue
	return Continue, ErrStepLimit
}

func (i *Instance) fault(pc int, err error) error {
	f := &Fault{Err: err, PC: pc}
	if pc >= 0 && pc < len(i.Mem) {
		f.Word = i.Mem[pc]
	}
	i.PC = pc
	i.status, i.err = Faulted, f
	return f
}
