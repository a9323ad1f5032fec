// Package codegen emits x86-64 assembly for a lowered program.
//
// Code is generated for a stack machine: every expression leaves exactly
// one 8-byte value on the native stack, and every statement leaves the
// stack as it found it.
package codegen

import (
	"io"

	"github.com/golang/glog"

	"github.com/you-not-fish/stackcc/internal/diag"
	"github.com/you-not-fish/stackcc/internal/lower"
	"github.com/you-not-fish/stackcc/internal/rtabi"
	"github.com/you-not-fish/stackcc/internal/syntax"
)

// Generator emits one program. Its label counter and stack depth belong
// to that program only.
type Generator struct {
	e     emitter
	label int   // next control-flow label id
	depth int   // values pushed on the operand stack
	err   error // first internal error
}

// NewGenerator returns a Generator writing to w.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{e: emitter{w: w}}
}

// Generate writes the assembly for p to w.
func Generate(w io.Writer, p *lower.Program) error {
	return NewGenerator(w).Generate(p)
}

// Generate writes the assembly for p. It returns the first write error
// or violated invariant.
func (g *Generator) Generate(p *lower.Program) error {
	g.e.emit(rtabi.Syntax)
	g.e.emit(".globl %s", rtabi.EntrySymbol)
	g.e.emitLabel(rtabi.EntrySymbol)

	// Prologue
	g.e.emitInst("push %s", rtabi.RegFrame)
	g.e.emitInst("mov %s, %s", rtabi.RegFrame, rtabi.RegStack)
	g.e.emitInst("sub %s, %d", rtabi.RegStack, rtabi.AlignFrame(p.FrameSize))

	for _, s := range p.Stmts {
		g.stmt(s)
		if g.err != nil {
			return g.err
		}
		if g.e.err != nil {
			return g.e.err
		}
	}

	// Epilogue
	g.e.emitLabel(rtabi.ReturnLabel)
	g.e.emitInst("mov %s, %s", rtabi.RegStack, rtabi.RegFrame)
	g.e.emitInst("pop %s", rtabi.RegFrame)
	g.e.emitInst("ret")
	return g.e.err
}

// errorf records an internal error. Only the first one is kept.
func (g *Generator) errorf(pos syntax.Pos, format string, args ...interface{}) {
	if g.err == nil {
		g.err = diag.Unexpectedf(pos, format, args...)
	}
}

// newLabel returns a fresh label id.
func (g *Generator) newLabel() int {
	n := g.label
	g.label++
	return n
}

// push pushes a register or immediate onto the operand stack.
func (g *Generator) push(operand string) {
	g.e.emitInst("push %s", operand)
	g.depth++
}

// pop pops the top of the operand stack into reg.
func (g *Generator) pop(reg string) {
	g.e.emitInst("pop %s", reg)
	g.depth--
}

// jumpIfZero pops a value and jumps to label if it is zero.
func (g *Generator) jumpIfZero(label string) {
	g.pop(rtabi.RegResult)
	g.e.emitInst("cmp %s, 0", rtabi.RegResult)
	g.e.emitInst("je %s", label)
}

func logStmt(s lower.Stmt, depth int) {
	if glog.V(7) {
		glog.Infof("%s: generating %T at depth %d", s.Pos(), s, depth)
	}
}
