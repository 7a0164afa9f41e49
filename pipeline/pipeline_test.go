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

package pipeline_test

import (
	"testing"

	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type C []int64

var (
	amp1 = C{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0}
	amp2 = C{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23,
		101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0}
	loop1 = C{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
		27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5}
)

func permutations(a C) []C {
	if len(a) <= 1 {
		return []C{append(C(nil), a...)}
	}
	var r []C
	for k := range a {
		rest := append(append(C(nil), a[:k]...), a[k+1:]...)
		for _, p := range permutations(rest) {
			r = append(r, append(C{a[k]}, p...))
		}
	}
	return r
}

func amplify(t *testing.T, prog, phases C, feedback bool) int64 {
	t.Helper()
	p, err := pipeline.NewChain(prog, vm.DefaultMemSize, phases)
	require.NoError(t, err)
	p.Feedback = feedback
	out, err := p.Run(0)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	return out[len(out)-1]
}

func best(t *testing.T, prog, phases C, feedback bool) (int64, C) {
	var max int64
	var arg C
	for _, ph := range permutations(phases) {
		if v := amplify(t, prog, ph, feedback); arg == nil || v > max {
			max, arg = v, ph
		}
	}
	return max, arg
}

func TestChain(t *testing.T) {
	assert.Equal(t, int64(43210), amplify(t, amp1, C{4, 3, 2, 1, 0}, false))
	max, arg := best(t, amp2, C{0, 1, 2, 3, 4}, false)
	assert.Equal(t, int64(54321), max)
	assert.Equal(t, C{0, 1, 2, 3, 4}, arg)
}

func TestFeedback(t *testing.T) {
	p, err := pipeline.NewChain(loop1, 0, C{9, 8, 7, 6, 5})
	require.NoError(t, err)
	p.Feedback = true
	out, err := p.Run(0)
	require.NoError(t, err)
	assert.Equal(t, int64(139629729), out[len(out)-1])
	assert.Len(t, out, 5)
	for _, s := range p.Stages {
		st, _ := s.State()
		assert.Equal(t, vm.Halted, st)
	}

	max, _ := best(t, loop1, C{5, 6, 7, 8, 9}, true)
	assert.Equal(t, int64(139629729), max)
}

// Same stages, same input, same output.
func TestDeterminism(t *testing.T) {
	run := func() (C, int64) {
		a, err := vm.New(C{3, 0, 102, 3, 0, 0, 4, 0, 99}, 16)
		require.NoError(t, err)
		b, err := vm.New(C{3, 0, 1001, 0, 7, 0, 4, 0, 99}, 16)
		require.NoError(t, err)
		p := pipeline.New(a, b)
		out, err := p.Run(5)
		require.NoError(t, err)
		return out, p.Steps()
	}
	out1, n1 := run()
	out2, n2 := run()
	assert.Equal(t, C{22}, out1)
	assert.Equal(t, out1, out2)
	assert.Equal(t, n1, n2)
}

func TestStalled(t *testing.T) {
	// the second stage wants two values, the first one only outputs one
	a, err := vm.New(C{104, 1, 99}, 0)
	require.NoError(t, err)
	b, err := vm.New(C{3, 0, 3, 0, 99}, 0)
	require.NoError(t, err)
	_, err = pipeline.New(a, b).Run()
	assert.Equal(t, pipeline.ErrStalled, err)
}

func TestFault(t *testing.T) {
	a, err := vm.New(C{104, 1, 99}, 0)
	require.NoError(t, err)
	b, err := vm.New(C{3, 0, 42}, 0)
	require.NoError(t, err)
	_, err = pipeline.New(a, b).Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, vm.ErrUnknownOpcode), "%v", err)
	assert.Contains(t, err.Error(), "stage 1")
}

func TestLimit(t *testing.T) {
	p, err := pipeline.NewChain(loop1, 0, C{9, 8, 7, 6, 5})
	require.NoError(t, err)
	p.Feedback = true
	p.Limit = 20
	_, err = p.Run(0)
	assert.Equal(t, vm.ErrStepLimit, err)
	assert.Equal(t, int64(20), p.Steps())

	// resume without limit
	p.Limit = 0
	out, err := p.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(139629729), out[len(out)-1])
}
