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

// PushInput appends the given values to the input queue.
func (i *Instance) PushInput(values ...int64) {
	i.input = append(i.input, values...)
}

// PendingInput returns the number of values in the input queue.
func (i *Instance) PendingInput() int {
	return len(i.input) - i.in
}

// Output returns a copy of the output log.
func (i *Instance) Output() []int64 {
	return append([]int64(nil), i.output...)
}

// DrainOutput returns the output log and clears it.
func (i *Instance) DrainOutput() []int64 {
	out := i.output
	i.output = nil
	return out
}
