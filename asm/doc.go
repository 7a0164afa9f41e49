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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Source code is line oriented. Each line holds an optional label definition,
// an optional statement and an optional comment:
//
//	label:	mnemonic operand, operand, ...	; comment
//
// Supported mnemonics (aliases in parentheses):
//
//	opcode	asm		operands
//	------	---		--------
//	1	add		a, b, dst
//	2	mul		a, b, dst
//	3	in (inp)	dst
//	4	out		src
//	5	jnz (jt)	cond, target
//	6	jz (jf)		cond, target
//	7	lt		a, b, dst
//	8	eq		a, b, dst
//	9	arb (rbo)	delta
//	99	hlt (halt)
//
// Operands:
//
//	42, -1, label	position mode: the value is an address
//	#42, #label	immediate mode
//	rb, rb+3, rb-1	relative mode: offset from the relative base
//
// Labels evaluate to the address of the word following their definition and
// can be used anywhere a number is expected, including forward references. The
// name "rb" is reserved.
//
// Write targets (the last operand of add, mul, lt and eq, the operand of in)
// cannot be immediate.
//
// Data:
//
// The data pseudo instruction places words as-is in the output:
//
//	table:	data 1, -2, table
//
// Numbers are decimal only.
package asm
