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

package vm_test

import (
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	ins, err := vm.Decode(C{1002, 4, 3, 4}, 0)
	require.NoError(t, err)
	assert.Equal(t, vm.OpMul, ins.Op)
	assert.Equal(t, vm.Param{Value: 4, Mode: vm.Position}, ins.Params[0])
	assert.Equal(t, vm.Param{Value: 3, Mode: vm.Immediate}, ins.Params[1])
	assert.Equal(t, vm.Param{Value: 4, Mode: vm.Position}, ins.Params[2])
	assert.Equal(t, 4, ins.Size())
	assert.Equal(t, "mul 4, #3, 4", ins.String())
}

func TestDecode_strings(t *testing.T) {
	for _, test := range []struct {
		code C
		s    string
	}{
		{C{1, 1, 2, 3}, "add 1, 2, 3"},
		{C{21101, 3, 4, 0}, "add #3, #4, rb"},
		{C{203, -2}, "in rb-2"},
		{C{204, 7}, "out rb+7"},
		{C{1105, 0, 12}, "jnz #0, #12"},
		{C{6, 1, 2}, "jz 1, 2"},
		{C{1107, -1, 8, 5}, "lt #-1, #8, 5"},
		{C{8, 1, 2, 3}, "eq 1, 2, 3"},
		{C{109, -34}, "arb #-34"},
		{C{99}, "hlt"},
	} {
		ins, err := vm.Decode(test.code, 0)
		require.NoError(t, err, test.s)
		assert.Equal(t, test.s, ins.String())
		assert.Equal(t, len(test.code), ins.Size(), test.s)
	}
}

func TestDecode_errors(t *testing.T) {
	for _, test := range []struct {
		code  C
		pc    int
		cause error
	}{
		{C{99}, -1, vm.ErrInvalidAddress},
		{C{99}, 1, vm.ErrMemoryOverflow},
		{C{1, 0, 0}, 0, vm.ErrMemoryOverflow},
		{C{100}, 0, vm.ErrUnknownOpcode},
		{C{-99}, 0, vm.ErrUnknownOpcode},
		{C{399, 0}, 0, vm.ErrUnknownParameterMode},
		{C{3000000001, 0, 0, 0}, 0, vm.ErrUnknownParameterMode},
	} {
		_, err := vm.Decode(test.code, test.pc)
		assert.Equal(t, test.cause, errors.Cause(err), "%v @%d", test.code, test.pc)
	}
}

func TestOpcode(t *testing.T) {
	assert.True(t, vm.OpHalt.Valid())
	assert.False(t, vm.Opcode(10).Valid())
	assert.Equal(t, "op(10)", vm.Opcode(10).String())
	assert.Equal(t, 4, vm.OpEquals.Size())
	assert.Equal(t, 1, vm.OpHalt.Size())
	assert.Equal(t, 0, vm.OpIn.Dst())
	assert.Equal(t, -1, vm.OpOut.Dst())
	assert.Equal(t, "relative", vm.Relative.String())
}
