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

package asm

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/db47h/intcode/vm"
)

const maxErrors = 10

var asmLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[-+#:,]`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var asmParser = participle.MustBuild[source](
	participle.Lexer(asmLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

type source struct {
	Lines []*line `@@*`
}

type line struct {
	Pos   lexer.Position
	Label string     `(@Ident ":")?`
	Stmt  *statement `@@? EOL`
}

type statement struct {
	Pos  lexer.Position
	Op   string     `@Ident`
	Args []*operand `(@@ ("," @@)*)?`
}

type operand struct {
	Pos lexer.Position
	Imm *value    `  "#" @@`
	Rel *relative `| @@`
	Mem *value    `| @@`
}

type relative struct {
	Sign   string `"rb" (@("+" | "-")`
	Offset *value `@@)?`
}

type value struct {
	Pos   lexer.Position
	Neg   bool   `@"-"?`
	Int   string `( @Int`
	Label string `| @Ident )`
}

var mnemonics = map[string]vm.Opcode{
	"add":  vm.OpAdd,
	"mul":  vm.OpMul,
	"in":   vm.OpIn,
	"inp":  vm.OpIn,
	"out":  vm.OpOut,
	"jnz":  vm.OpJumpIfTrue,
	"jt":   vm.OpJumpIfTrue,
	"jz":   vm.OpJumpIfFalse,
	"jf":   vm.OpJumpIfFalse,
	"lt":   vm.OpLessThan,
	"eq":   vm.OpEquals,
	"arb":  vm.OpAdjustRB,
	"rbo":  vm.OpAdjustRB,
	"hlt":  vm.OpHalt,
	"halt": vm.OpHalt,
}

// Error is a single assembler error.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrAsm encapsulates errors generated by the assembler.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

type compiler struct {
	labels map[string]int
	out    []int64
	errs   ErrAsm
}

func (c *compiler) errorf(pos lexer.Position, format string, args ...interface{}) {
	if len(c.errs) < maxErrors {
		c.errs = append(c.errs, Error{pos, fmt.Sprintf(format, args...)})
	}
}

// size returns the number of words generated by s.
func (c *compiler) size(s *statement) int {
	if op, ok := mnemonics[s.Op]; ok {
		return op.Size()
	}
	return len(s.Args)
}

// scan collects label addresses.
func (c *compiler) scan(src *source) {
	pc := 0
	for _, l := range src.Lines {
		if l.Label != "" {
			switch _, dup := c.labels[l.Label]; {
			case l.Label == "rb":
				c.errorf(l.Pos, "reserved label name %s", l.Label)
			case dup:
				c.errorf(l.Pos, "label %s redefined", l.Label)
			default:
				c.labels[l.Label] = pc
			}
		}
		if l.Stmt != nil {
			pc += c.size(l.Stmt)
		}
	}
}

func (c *compiler) value(v *value) int64 {
	if v.Label != "" {
		a, ok := c.labels[v.Label]
		if !ok {
			c.errorf(v.Pos, "undefined label %s", v.Label)
			return 0
		}
		if v.Neg {
			return -int64(a)
		}
		return int64(a)
	}
	s := v.Int
	if v.Neg {
		s = "-" + s
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		c.errorf(v.Pos, "invalid integer %s", s)
	}
	return n
}

func (c *compiler) operand(o *operand) (vm.Mode, int64) {
	switch {
	case o.Imm != nil:
		return vm.Immediate, c.value(o.Imm)
	case o.Rel != nil:
		if o.Rel.Offset == nil {
			return vm.Relative, 0
		}
		v := c.value(o.Rel.Offset)
		if o.Rel.Sign == "-" {
			v = -v
		}
		return vm.Relative, v
	}
	return vm.Position, c.value(o.Mem)
}

func (c *compiler) statement(s *statement) {
	if s.Op == "data" {
		for _, a := range s.Args {
			if a.Rel != nil {
				c.errorf(a.Pos, "relative operand in data")
				continue
			}
			_, v := c.operand(a)
			c.out = append(c.out, v)
		}
		return
	}
	op, ok := mnemonics[s.Op]
	if !ok {
		c.errorf(s.Pos, "unknown mnemonic %s", s.Op)
		return
	}
	if len(s.Args) != op.Params() {
		c.errorf(s.Pos, "%s expects %d operands, got %d", op, op.Params(), len(s.Args))
		return
	}
	w, m := int64(op), int64(100)
	args := make([]int64, len(s.Args))
	for k, a := range s.Args {
		mode, v := c.operand(a)
		if mode == vm.Immediate && k == op.Dst() {
			c.errorf(a.Pos, "immediate write target")
		}
		w += int64(mode) * m
		m *= 10
		args[k] = v
	}
	c.out = append(c.out, w)
	c.out = append(c.out, args...)
}

func (c *compiler) compile(src *source) ([]int64, error) {
	c.scan(src)
	for _, l := range src.Lines {
		if l.Stmt != nil {
			c.statement(l.Stmt)
		}
	}
	if len(c.errs) > 0 {
		sort.SliceStable(c.errs, func(i, j int) bool {
			a, b := c.errs[i].Pos, c.errs[j].Pos
			return a.Line < b.Line || a.Line == b.Line && a.Column < b.Column
		})
		return nil, c.errs
	}
	return c.out, nil
}

func parse(name, src string) (*source, error) {
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	s, err := asmParser.ParseString(name, src)
	if err != nil {
		if pe, ok := err.(participle.Error); ok {
			return nil, ErrAsm{{pe.Position(), pe.Message()}}
		}
		return nil, ErrAsm{{lexer.Position{Filename: name}, err.Error()}}
	}
	return s, nil
}
