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

// Package pipeline chains Intcode VM instances: the output of each stage is
// fed to the input of the next one.
//
// Stages are run one after the other, in a single goroutine, each until it
// halts or waits for input. With Feedback set, the output of the last stage is
// also fed back to the first one.
package pipeline

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// ErrStalled is returned by Run when no stage can make progress.
var ErrStalled = errors.New("pipeline stalled")

// Pipeline is a chain of VM instances.
type Pipeline struct {
	Stages   []*vm.Instance
	Feedback bool  // route the output of the last stage to the first one
	Limit    int64 // total step budget, no limit if 0
	steps    int64
}

// New returns a new pipeline for the given stages.
func New(stages ...*vm.Instance) *Pipeline {
	return &Pipeline{Stages: stages}
}

// NewChain creates a pipeline of len(phases) instances running a copy of
// prog. Each instance receives its phase setting as first input value.
func NewChain(prog []int64, minSize int, phases []int64, opts ...vm.Option) (*Pipeline, error) {
	p := &Pipeline{}
	for k, ph := range phases {
		i, err := vm.New(prog, minSize, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "stage %d", k)
		}
		i.PushInput(ph)
		p.Stages = append(p.Stages, i)
	}
	return p, nil
}

// Steps returns the number of instructions executed by all stages so far.
func (p *Pipeline) Steps() int64 { return p.steps }

// Run pushes input to the first stage and runs all stages in turn until the
// last one halts. It returns the values output by the last stage in the
// process.
//
// Errors from a stage are wrapped with the stage index. If the step budget is
// exhausted, the returned error is vm.ErrStepLimit and Run can be called again
// to resume. If a full round completes without any stage executing an
// instruction, the error is ErrStalled.
func (p *Pipeline) Run(input ...int64) ([]int64, error) {
	if len(p.Stages) == 0 {
		return nil, errors.New("empty pipeline")
	}
	last := len(p.Stages) - 1
	p.Stages[0].PushInput(input...)
	var out []int64
	for {
		progress := false
		for k, s := range p.Stages {
			var max int64
			if p.Limit > 0 {
				if max = p.Limit - p.steps; max <= 0 {
					return out, vm.ErrStepLimit
				}
			}
			n := s.InstructionCount()
			_, err := s.RunLimit(max)
			n = s.InstructionCount() - n
			p.steps += n
			progress = progress || n > 0

			o := s.DrainOutput()
			if k < last {
				p.Stages[k+1].PushInput(o...)
			} else {
				out = append(out, o...)
				if p.Feedback {
					p.Stages[0].PushInput(o...)
				}
			}
			if err == vm.ErrStepLimit {
				return out, err
			}
			if err != nil {
				return out, errors.Wrapf(err, "stage %d", k)
			}
		}
		if st, _ := p.Stages[last].State(); st == vm.Halted {
			return out, nil
		}
		if !progress {
			return out, ErrStalled
		}
	}
}
