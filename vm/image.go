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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Parse reads a program in text form from r: decimal integers separated by
// commas. White space around values is ignored, as are empty values, so that a
// trailing comma or new line is accepted.
func Parse(r io.Reader) ([]int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return ParseString(string(b))
}

// ParseString works like Parse on the program text s.
func ParseString(s string) ([]int64, error) {
	var prog []int64
	for n, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value #%d", n)
		}
		prog = append(prog, v)
	}
	return prog, nil
}

// Load loads a program in text form from file fileName.
func Load(fileName string) ([]int64, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	prog, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return prog, nil
}

// Format writes mem to w in program text form, followed by a new line.
func Format(w io.Writer, mem []int64) error {
	ew := ici.NewErrWriter(w)
	ew.WriteInts(mem, ",")
	_, err := ew.Write([]byte{'\n'})
	return err
}
