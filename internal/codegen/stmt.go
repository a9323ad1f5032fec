package codegen

import (
	"github.com/you-not-fish/stackcc/internal/lower"
	"github.com/you-not-fish/stackcc/internal/rtabi"
)

// stmt emits s. A statement leaves the operand stack as deep as it found
// it; any difference is reported as an internal error.
func (g *Generator) stmt(s lower.Stmt) {
	logStmt(s, g.depth)
	before := g.depth

	switch s := s.(type) {
	case *lower.ExprStmt:
		if s.X != nil {
			g.expr(s.X)
			g.pop(rtabi.RegResult)
		}

	case *lower.Return:
		if s.Result != nil {
			g.expr(s.Result)
			g.pop(rtabi.RegResult)
		}
		g.e.emitInst("jmp %s", rtabi.ReturnLabel)

	case *lower.If:
		n := g.newLabel()
		g.expr(s.Cond)
		g.jumpIfZero(labelName(rtabi.LabelElse, n))
		g.stmt(s.Then)
		g.e.emitInst("jmp %s", labelName(rtabi.LabelEnd, n))
		g.e.emitLabel(labelName(rtabi.LabelElse, n))
		if s.Else != nil {
			g.stmt(s.Else)
		}
		g.e.emitLabel(labelName(rtabi.LabelEnd, n))

	case *lower.For:
		n := g.newLabel()
		if s.Init != nil {
			g.expr(s.Init)
			g.pop(rtabi.RegResult)
		}
		g.e.emitLabel(labelName(rtabi.LabelBegin, n))
		g.expr(s.Cond)
		g.jumpIfZero(labelName(rtabi.LabelEnd, n))
		g.stmt(s.Body)
		if s.Post != nil {
			g.expr(s.Post)
			g.pop(rtabi.RegResult)
		}
		g.e.emitInst("jmp %s", labelName(rtabi.LabelBegin, n))
		g.e.emitLabel(labelName(rtabi.LabelEnd, n))

	case *lower.While:
		n := g.newLabel()
		g.e.emitLabel(labelName(rtabi.LabelBegin, n))
		g.expr(s.Cond)
		g.jumpIfZero(labelName(rtabi.LabelEnd, n))
		g.stmt(s.Body)
		g.e.emitInst("jmp %s", labelName(rtabi.LabelBegin, n))
		g.e.emitLabel(labelName(rtabi.LabelEnd, n))

	case *lower.Block:
		for _, x := range s.Stmts {
			g.stmt(x)
		}

	default:
		g.errorf(s.Pos(), "unknown statement %T", s)
		return
	}

	if g.depth != before {
		g.errorf(s.Pos(), "operand stack depth %d after %T, want %d", g.depth, s, before)
	}
}
