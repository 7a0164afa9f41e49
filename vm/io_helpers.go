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
	"io"

	"github.com/db47h/intcode/internal/ici"
)

// Exchange pushes the given input values, runs the instance until it stops
// and returns the values output in the process. This is the typical
// request/response cycle of interactive programs.
func (i *Instance) Exchange(input ...int64) ([]int64, Status, error) {
	i.PushInput(input...)
	st, err := i.Run()
	return i.DrainOutput(), st, err
}

// Dump dumps the virtual machine registers, I/O queues and memory to the
// specified io.Writer. Trailing zero words in memory are omitted.
func (i *Instance) Dump(w io.Writer) error {
	ew := ici.NewErrWriter(w)
	fmt.Fprintf(ew, "pc=%d rb=%d status=%q steps=%d\n", i.PC, i.RB, i.status, i.insCount)
	if i.err != nil {
		fmt.Fprintf(ew, "error=%q\n", i.err.Error())
	}
	io.WriteString(ew, "input=")
	ew.WriteInts(i.input[i.in:], ",")
	io.WriteString(ew, "\noutput=")
	ew.WriteInts(i.output, ",")
	io.WriteString(ew, "\nmem=")
	end := len(i.Mem)
	for end > 0 && i.Mem[end-1] == 0 {
		end--
	}
	ew.WriteInts(i.Mem[:end], ",")
	_, err := ew.Write([]byte{'\n'})
	return err
}
