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

// The intcode command line tool runs Intcode programs. It is a showcase for
// the package github.com/db47h/intcode/vm.
//
// Usage:
//
//	intcode [flags] program
//
// The program file contains comma separated integers, or assembly source code
// with the -asm flag (see package github.com/db47h/intcode/asm).
//
// Flags:
//
//	-ascii
//		  ASCII terminal mode
//	-asm
//		  program file is assembly source
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print the program disassembly and exit
//	-dump
//		  dump the VM state upon exit
//	-feedback
//		  with -phases, feed the last amplifier output back to the first one
//	-grow
//		  grow memory on demand instead of faulting
//	-input values
//		  comma separated input values (can be specified multiple times)
//	-mem-limit int
//		  memory size limit in words when growing memory, 0 for the default limit
//	-noraw
//		  disable raw terminal IO in ASCII mode
//	-patch addr=value
//		  set memory before running, as comma separated addr=value pairs
//	-phases settings
//		  run a chain of amplifiers with the given comma separated phase settings
//	-result
//		  print the value at address 0 upon halt
//	-size int
//		  minimum memory size in words (default 4096)
//	-steps int
//		  maximum number of instructions to execute, 0 for no limit
//	-trace
//		  trace executed instructions to stderr
//
// In the default mode, output values are printed one per line. When the
// program waits for input and no more -input values are available, a line of
// integers is read from stdin.
//
// -ascii: output values are printed as ASCII characters and input is read from
// stdin as text. Non-ASCII output values are printed in decimal on their own
// line. Unless -noraw is given or stdin is not a terminal, the terminal is
// switched to raw mode and each key press is sent to the program as it is
// typed. Use CTRL-D to end the input.
//
// -phases: runs as many copies of the program as there are phase settings,
// each receiving its phase setting as first input, and chains them so that the
// output of one is the input of the next. The -input values go to the first
// one and the output of the last one is printed.
//
// -patch: the typical use is to set the "noun" and "verb" of a program:
//
//	intcode -result -patch 1=12,2=2 program.txt
//
// -debug: will print a full stacktrace and dump the VM state should the VM
// crash.
package main
