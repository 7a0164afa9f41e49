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

package ascii

import (
	"bufio"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Terminal connects an Intcode ASCII program to a reader and a writer.
type Terminal struct {
	In  io.Reader
	Out io.Writer
	// Raw enables character mode: input is forwarded as soon as a byte is
	// read and echoed to Out. CTRL-D ends the input and carriage returns are
	// converted to new lines. Use with a terminal in raw mode.
	Raw bool
	// Flush, if not nil, is called before reading input.
	Flush func() error
	// Limit is the maximum number of instructions to execute, no limit if 0.
	Limit int64

	r     *bufio.Reader
	steps int64
}

// Run runs i until it halts or faults, writing its output to t.Out and
// feeding it from t.In whenever it waits for input. Non-ASCII values are
// written in decimal form on a line of their own.
//
// If t.In runs dry while the program is waiting for input, Run returns
// WaitingForInput and io.EOF. Other read errors are returned as is, after any
// partial input read along with them has been pushed to i. If the step budget is exhausted, it returns
// Continue and vm.ErrStepLimit.
func (t *Terminal) Run(i *vm.Instance) (vm.Status, error) {
	if t.r == nil {
		t.r = bufio.NewReader(t.In)
	}
	ew := ici.NewErrWriter(t.Out)
	for {
		var max int64
		if t.Limit > 0 {
			if max = t.Limit - t.steps; max <= 0 {
				return vm.Continue, vm.ErrStepLimit
			}
		}
		n := i.InstructionCount()
		st, err := i.RunLimit(max)
		t.steps += i.InstructionCount() - n
		t.write(ew, i.DrainOutput())
		if ew.Err != nil {
			return st, ew.Err
		}
		if err != nil || st != vm.WaitingForInput {
			return st, err
		}
		if t.Flush != nil {
			if err = t.Flush(); err != nil {
				return st, errors.Wrap(err, "flush failed")
			}
		}
		in, err := t.read(ew)
		if len(in) > 0 {
			i.PushInput(in...)
		}
		if err != nil && err != io.EOF {
			return st, errors.Wrap(err, "read failed")
		}
		if len(in) > 0 {
			continue
		}
		return st, io.EOF
	}
}

func (t *Terminal) write(ew *ici.ErrWriter, out []int64) {
	for _, v := range out {
		if IsASCII(v) {
			ew.Write([]byte{byte(v)})
			continue
		}
		io.WriteString(ew, strconv.FormatInt(v, 10))
		ew.Write([]byte{'\n'})
	}
}

func (t *Terminal) read(ew *ici.ErrWriter) ([]int64, error) {
	if t.Raw {
		c, err := t.r.ReadByte()
		if err != nil {
			return nil, err
		}
		switch c {
		case 4:
			return nil, io.EOF
		case '\r':
			c = '\n'
		}
		ew.Write([]byte{c})
		return []int64{int64(c)}, nil
	}
	l, err := t.r.ReadString('\n')
	if l == "" {
		return nil, err
	}
	if l[len(l)-1] != '\n' {
		l += "\n"
	}
	if err == io.EOF {
		// reported by the next call
		err = nil
	}
	return Encode(l), err
}
