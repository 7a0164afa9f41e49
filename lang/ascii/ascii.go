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

// Package ascii provides utility functions and types to talk to Intcode
// programs that use ASCII text for input and output.
//
// Such programs read and write one character per value. Values outside of the
// ASCII range are usually answers or scores and are handled separately.
package ascii

import (
	"strings"

	"github.com/db47h/intcode/vm"
)

// MaxASCII is the largest value considered to be an ASCII character.
const MaxASCII = 127

// IsASCII returns true if v is an ASCII character code.
func IsASCII(v int64) bool { return v >= 0 && v <= MaxASCII }

// Encode returns the values for the bytes of s.
func Encode(s string) []int64 {
	v := make([]int64, len(s))
	for k := 0; k < len(s); k++ {
		v[k] = int64(s[k])
	}
	return v
}

// Push pushes the given lines to the input queue of i. A new line is appended
// to each line that does not end with one.
func Push(i *vm.Instance, lines ...string) {
	for _, l := range lines {
		if !strings.HasSuffix(l, "\n") {
			l += "\n"
		}
		i.PushInput(Encode(l)...)
	}
}

// Decode converts values to text. Values that are not ASCII characters are
// returned in extra, in order.
func Decode(values []int64) (text string, extra []int64) {
	var b strings.Builder
	for _, v := range values {
		if IsASCII(v) {
			b.WriteByte(byte(v))
		} else {
			extra = append(extra, v)
		}
	}
	return b.String(), extra
}
