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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a sequence of signed 64 bits integers. The program is
// copied into the VM memory, zero padded up to a minimum size, and executed
// from address 0. Each instruction word encodes an opcode in its two least
// significant decimal digits and the mode of each parameter in the following
// digits, least significant first:
//
//	1002,4,3,4	mul 4, #3, 4	(modes: position, immediate, position)
//
// Parameters in position mode (0) are addresses, in immediate mode (1) they
// are used as-is, and in relative mode (2) they are offsets from the relative
// base register. Write targets are never in immediate mode.
//
// Instructions:
//
//	opcode	asm	params	description
//	------	---	------	-----------------------------------------------
//	1	add	a b dst	dst = a + b
//	2	mul	a b dst	dst = a * b
//	3	in	dst	dst = next input value, suspends if none
//	4	out	src	append src to the output log
//	5	jnz	c t	jump to t if c != 0
//	6	jz	c t	jump to t if c == 0
//	7	lt	a b dst	dst = 1 if a < b, 0 otherwise
//	8	eq	a b dst	dst = 1 if a == b, 0 otherwise
//	9	arb	d	add d to the relative base
//	99	hlt		halt, the result is the value at address 0
//
// Execution is cooperative: when an input instruction finds the input queue
// empty, Run returns WaitingForInput without consuming anything. The caller
// pushes more input with PushInput and calls Run again. Several instances can
// be chained that way by moving the output of one into the input of another
// (see package github.com/db47h/intcode/pipeline).
//
// By default, memory has a fixed size and any access past its end faults. The
// GrowMemory option makes it grow on demand instead.
package vm
