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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// intList is a flag.Value accumulating comma separated integers.
type intList []int64

func (l *intList) String() string {
	s := make([]string, len(*l))
	for k, v := range *l {
		s[k] = strconv.FormatInt(v, 10)
	}
	return strings.Join(s, ",")
}

func (l *intList) Set(s string) error {
	v, err := vm.ParseString(s)
	if err != nil {
		return err
	}
	*l = append(*l, v...)
	return nil
}

func (l *intList) Get() interface{} { return *l }

type patch struct {
	addr  int
	value int64
}

// patchList is a flag.Value accumulating addr=value pairs.
type patchList []patch

func (l *patchList) String() string {
	s := make([]string, len(*l))
	for k, p := range *l {
		s[k] = fmt.Sprintf("%d=%d", p.addr, p.value)
	}
	return strings.Join(s, ",")
}

func (l *patchList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(f), "=", 2)
		if len(kv) != 2 {
			return errors.Errorf("invalid patch %q, expected addr=value", f)
		}
		a, err := strconv.Atoi(kv[0])
		if err != nil {
			return errors.Wrap(err, "invalid address")
		}
		v, err := strconv.ParseInt(kv[1], 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid value")
		}
		*l = append(*l, patch{a, v})
	}
	return nil
}

func (l *patchList) Get() interface{} { return *l }

var (
	noRawIO  bool
	debug    bool
	dump     bool
	disasm   bool
	isAsm    bool
	asciiIO  bool
	trace    bool
	result   bool
	feedback bool
	grow     bool
	memLimit int
	size     int
	steps    int64
	input    intList
	phases   intList
	patches  patchList
)

func setupIO() (raw bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

func loadProgram(fileName string) ([]int64, error) {
	if !isAsm {
		return vm.Load(fileName)
	}
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(fileName, f)
}

func vmOptions() []vm.Option {
	var opts []vm.Option
	if grow {
		opts = append(opts, vm.GrowMemory(memLimit))
	}
	for _, p := range patches {
		opts = append(opts, vm.Patch(p.addr, p.value))
	}
	if trace {
		opts = append(opts, vm.Trace(log.New(os.Stderr, "", 0).Printf))
	}
	return opts
}

// readInts reads a line of integers from r for a program waiting for input.
func readInts(r *bufio.Reader, w io.Writer) ([]int64, error) {
	for {
		io.WriteString(w, "? ")
		l, err := r.ReadString('\n')
		v, perr := vm.ParseString(strings.Join(strings.Fields(l), ","))
		if perr != nil {
			fmt.Fprintf(w, "%v\n", perr)
			if err != nil {
				return nil, err
			}
			continue
		}
		if len(v) > 0 {
			return v, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// runInts runs i, printing outputs one per line and reading input from stdin.
func runInts(i *vm.Instance, out *bufio.Writer) error {
	in := bufio.NewReader(os.Stdin)
	left := steps
	for {
		n := i.InstructionCount()
		st, err := i.RunLimit(left)
		for _, v := range i.DrainOutput() {
			fmt.Fprintln(out, v)
		}
		if err != nil {
			return err
		}
		if st == vm.Halted {
			return nil
		}
		if steps > 0 {
			if left -= i.InstructionCount() - n; left <= 0 {
				return vm.ErrStepLimit
			}
		}
		out.Flush()
		v, err := readInts(in, os.Stderr)
		if err != nil {
			return err
		}
		i.PushInput(v...)
	}
}

func runASCII(i *vm.Instance, out *bufio.Writer) error {
	// try to switch the terminal to raw mode.
	rawtty, ioTearDownFn := setupIO()
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}
	t := &ascii.Terminal{In: os.Stdin, Out: out, Raw: rawtty, Flush: out.Flush, Limit: steps}
	_, err := t.Run(i)
	return err
}

func runChain(prog []int64, out io.Writer) error {
	p, err := pipeline.NewChain(prog, size, phases, vmOptions()...)
	if err != nil {
		return err
	}
	p.Feedback = feedback
	p.Limit = steps
	v, err := p.Run(input...)
	for _, o := range v {
		fmt.Fprintln(out, o)
	}
	return err
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		i.Dump(os.Stderr)
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var i *vm.Instance

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		if err == nil && dump && i != nil {
			err = i.Dump(os.Stdout)
		}
		atExit(i, err)
	}()

	flag.IntVar(&size, "size", vm.DefaultMemSize, "minimum memory size in words")
	flag.BoolVar(&grow, "grow", false, "grow memory on demand instead of faulting")
	flag.IntVar(&memLimit, "mem-limit", 0, "memory size limit in words when growing memory, 0 for the default limit")
	flag.Var(&input, "input", "comma separated input `values` (can be specified multiple times)")
	flag.Var(&patches, "patch", "set memory before running, as comma separated `addr=value` pairs")
	flag.Var(&phases, "phases", "run a chain of amplifiers with the given comma separated phase `settings`")
	flag.BoolVar(&feedback, "feedback", false, "with -phases, feed the last amplifier output back to the first one")
	flag.BoolVar(&asciiIO, "ascii", false, "ASCII terminal mode")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO in ASCII mode")
	flag.Int64Var(&steps, "steps", 0, "maximum number of instructions to execute, 0 for no limit")
	flag.BoolVar(&isAsm, "asm", false, "program file is assembly source")
	flag.BoolVar(&disasm, "disasm", false, "print the program disassembly and exit")
	flag.BoolVar(&trace, "trace", false, "trace executed instructions to stderr")
	flag.BoolVar(&result, "result", false, "print the value at address 0 upon halt")
	flag.BoolVar(&dump, "dump", false, "dump the VM state upon exit")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] program\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	prog, err := loadProgram(flag.Arg(0))
	if err != nil {
		return
	}

	switch {
	case disasm:
		err = asm.DisassembleAll(prog, 0, stdout)
		return
	case len(phases) > 0:
		err = runChain(prog, stdout)
		return
	}

	i, err = vm.New(prog, size, append(vmOptions(), vm.Input(input...))...)
	if err != nil {
		return
	}
	if asciiIO {
		err = runASCII(i, stdout)
	} else {
		err = runInts(i, stdout)
	}
	if err == io.EOF {
		err = nil
	}
	if err == nil && result {
		fmt.Fprintln(stdout, i.Result())
	}
}
