package codegen

import (
	"strconv"

	"github.com/you-not-fish/stackcc/internal/lower"
	"github.com/you-not-fish/stackcc/internal/rtabi"
	"github.com/you-not-fish/stackcc/internal/syntax"
)

// expr emits x, leaving its value on top of the operand stack.
func (g *Generator) expr(x lower.Expr) {
	switch x := x.(type) {
	case *lower.Num:
		g.push(strconv.Itoa(int(rtabi.Imm32(x.Value))))

	case *lower.VarRef:
		g.addr(x)
		g.pop("rax")
		g.e.emitInst("mov rax, [rax]")
		g.push("rax")

	case *lower.Binary:
		g.expr(x.X)
		g.expr(x.Y)
		g.pop("rdi")
		g.pop("rax")
		g.binop(x.Op, x.Pos())
		g.push("rax")

	case *lower.Assign:
		g.addr(x.X)
		g.expr(x.Y)
		g.pop("rdi")
		g.pop("rax")
		g.e.emitInst("mov [rax], rdi")
		g.push("rdi")

	case *lower.AssignOp:
		// The address stays in r8, which neither idiv nor a shift touches.
		g.addr(x.X)
		g.expr(x.Y)
		g.pop("rdi")
		g.pop("r8")
		g.e.emitInst("mov rax, [r8]")
		g.binop(x.Op, x.Pos())
		g.e.emitInst("mov [r8], rax")
		g.push("rax")

	case *lower.PostIncDec:
		g.addr(x.X)
		g.pop("rdi")
		g.e.emitInst("mov rax, [rdi]")
		g.push("rax")
		if x.Dec {
			g.e.emitInst("sub rax, 1")
		} else {
			g.e.emitInst("add rax, 1")
		}
		g.e.emitInst("mov [rdi], rax")

	case *lower.Comma:
		g.expr(x.X)
		g.pop("rax")
		g.expr(x.Y)

	case *lower.Cond:
		n := g.newLabel()
		g.expr(x.Cond)
		g.jumpIfZero(labelName(rtabi.LabelElse, n))
		g.expr(x.Then)
		g.e.emitInst("jmp %s", labelName(rtabi.LabelEnd, n))
		g.e.emitLabel(labelName(rtabi.LabelElse, n))
		// Only one arm runs: the else arm starts without the then value.
		g.depth--
		g.expr(x.Else)
		g.e.emitLabel(labelName(rtabi.LabelEnd, n))

	case *lower.Call:
		g.call(x)

	default:
		g.errorf(x.Pos(), "unknown expression %T", x)
		// Keep the depth consistent for the caller.
		g.depth++
	}
}

// addr pushes the address of a variable's slot.
func (g *Generator) addr(v *lower.VarRef) {
	g.e.emitInst("mov rax, %s", rtabi.RegFrame)
	g.e.emitInst("sub rax, %d", v.Var.Offset)
	g.push("rax")
}

// binop applies op to rax and rdi, leaving the result in rax.
func (g *Generator) binop(op lower.Op, pos syntax.Pos) {
	switch op {
	case lower.Add:
		g.e.emitInst("add rax, rdi")
	case lower.Sub:
		g.e.emitInst("sub rax, rdi")
	case lower.Mul:
		g.e.emitInst("imul rax, rdi")
	case lower.Div:
		g.e.emitInst("cqo")
		g.e.emitInst("idiv rdi")
	case lower.Rem:
		g.e.emitInst("cqo")
		g.e.emitInst("idiv rdi")
		g.e.emitInst("mov rax, %s", rtabi.RegRemain)
	case lower.And:
		g.e.emitInst("and rax, rdi")
	case lower.Or:
		g.e.emitInst("or rax, rdi")
	case lower.Xor:
		g.e.emitInst("xor rax, rdi")
	case lower.Shl:
		g.e.emitInst("mov rcx, rdi")
		g.e.emitInst("shl rax, %s", rtabi.RegCount)
	case lower.Shr:
		g.e.emitInst("mov rcx, rdi")
		g.e.emitInst("sar rax, %s", rtabi.RegCount)
	case lower.Lt, lower.Leq, lower.Eql, lower.Neq:
		g.e.emitInst("cmp rax, rdi")
		g.e.emitInst("%s al", setcc[op])
		g.e.emitInst("movzx rax, al")
	default:
		g.errorf(pos, "unknown operator %v", op)
	}
}

var setcc = map[lower.Op]string{
	lower.Lt:  "setl",
	lower.Leq: "setle",
	lower.Eql: "sete",
	lower.Neq: "setne",
}

// call emits a call. Arguments are evaluated right to left so the first
// one ends up on top; the first six are popped into registers and the
// rest stay on the stack in argument order. A padding slot is pushed
// first when needed to keep rsp 16-byte aligned at the call.
func (g *Generator) call(c *lower.Call) {
	nargs := len(c.Args)
	stackArgs := rtabi.StackArgs(nargs)

	pad := (g.depth+stackArgs)%2 == 1
	if pad {
		g.e.emitInst("sub rsp, %d", rtabi.WordSize)
		g.depth++
	}

	for i := nargs - 1; i >= 0; i-- {
		g.expr(c.Args[i])
	}

	target := c.Label
	if !c.IsLabel() {
		g.expr(c.Fun)
		g.pop(rtabi.RegCallee)
		target = rtabi.RegCallee
	}

	for i := 0; i < nargs && i < rtabi.NumArgRegs; i++ {
		g.pop(rtabi.ArgRegs[i])
	}
	g.e.emitInst("call %s", target)

	release := stackArgs
	if pad {
		release++
	}
	if release > 0 {
		g.e.emitInst("add rsp, %d", release*rtabi.WordSize)
		g.depth -= release
	}
	g.push(rtabi.RegResult)
}
