package lower

import (
	"github.com/golang/glog"

	"github.com/you-not-fish/stackcc/internal/diag"
	"github.com/you-not-fish/stackcc/internal/syntax"
)

// Analyzer lowers one unit. Its variable table lives as long as the
// Analyzer, so a fresh Analyzer is needed for every unit.
type Analyzer struct {
	scope *scope
}

// NewAnalyzer returns an Analyzer with an empty variable table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{scope: newScope()}
}

// Analyze lowers p with a fresh Analyzer.
func Analyze(p *syntax.Program) (*Program, error) {
	return NewAnalyzer().Analyze(p)
}

// Analyze lowers every statement of p. The first error aborts.
func (a *Analyzer) Analyze(p *syntax.Program) (*Program, error) {
	prog := &Program{}
	for _, s := range p.Stmts {
		ls, err := a.stmt(s)
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, ls)
	}
	prog.FrameSize = a.scope.frameSize()
	prog.Vars = append([]*Variable(nil), a.scope.order...)
	return prog, nil
}

// ----------------------------------------------------------------------------
// Statements

func (a *Analyzer) stmt(s syntax.Stmt) (Stmt, error) {
	switch s := s.(type) {
	case *syntax.ExprStmt:
		x, err := a.optExpr(s.X)
		if err != nil {
			return nil, err
		}
		n := &ExprStmt{X: x}
		n.pos = s.Pos()
		return n, nil

	case *syntax.ReturnStmt:
		x, err := a.optExpr(s.Result)
		if err != nil {
			return nil, err
		}
		n := &Return{Result: x}
		n.pos = s.Pos()
		return n, nil

	case *syntax.IfStmt:
		n := &If{}
		n.pos = s.Pos()
		var err error
		if n.Cond, err = a.expr(s.Cond); err != nil {
			return nil, err
		}
		if n.Then, err = a.stmt(s.Then); err != nil {
			return nil, err
		}
		if s.Else != nil {
			if n.Else, err = a.stmt(s.Else); err != nil {
				return nil, err
			}
		}
		return n, nil

	case *syntax.ForStmt:
		n := &For{}
		n.pos = s.Pos()
		var err error
		if n.Init, err = a.optExpr(s.Init); err != nil {
			return nil, err
		}
		if s.Cond == nil {
			n.Cond = num(s.Pos(), 1)
		} else if n.Cond, err = a.expr(s.Cond); err != nil {
			return nil, err
		}
		if n.Post, err = a.optExpr(s.Post); err != nil {
			return nil, err
		}
		if n.Body, err = a.stmt(s.Body); err != nil {
			return nil, err
		}
		return n, nil

	case *syntax.WhileStmt:
		n := &While{}
		n.pos = s.Pos()
		var err error
		if n.Cond, err = a.expr(s.Cond); err != nil {
			return nil, err
		}
		if n.Body, err = a.stmt(s.Body); err != nil {
			return nil, err
		}
		return n, nil

	case *syntax.BlockStmt:
		n := &Block{}
		n.pos = s.Pos()
		for _, x := range s.Stmts {
			ls, err := a.stmt(x)
			if err != nil {
				return nil, err
			}
			n.Stmts = append(n.Stmts, ls)
		}
		return n, nil
	}
	return nil, diag.Unexpectedf(s.Pos(), "unknown statement %T", s)
}

// ----------------------------------------------------------------------------
// Expressions

func (a *Analyzer) optExpr(x syntax.Expr) (Expr, error) {
	if x == nil {
		return nil, nil
	}
	return a.expr(x)
}

func (a *Analyzer) expr(x syntax.Expr) (Expr, error) {
	switch x := x.(type) {
	case *syntax.NumberLit:
		return num(x.Pos(), x.Value), nil

	case *syntax.Name:
		return a.varRef(x), nil

	case *syntax.BinaryExpr:
		return a.binary(x)

	case *syntax.AssignExpr:
		lhs, err := a.target(x.X)
		if err != nil {
			return nil, err
		}
		rhs, err := a.expr(x.Y)
		if err != nil {
			return nil, err
		}
		if x.Op == syntax.Assign {
			n := &Assign{X: lhs, Y: rhs}
			n.pos = x.Pos()
			return n, nil
		}
		op, err := binaryOp(x.Op, x.Pos())
		if err != nil {
			return nil, err
		}
		n := &AssignOp{Op: op, X: lhs, Y: rhs}
		n.pos = x.Pos()
		return n, nil

	case *syntax.CommaExpr:
		lhs, err := a.expr(x.X)
		if err != nil {
			return nil, err
		}
		rhs, err := a.expr(x.Y)
		if err != nil {
			return nil, err
		}
		n := &Comma{X: lhs, Y: rhs}
		n.pos = x.Pos()
		return n, nil

	case *syntax.CondExpr:
		n := &Cond{}
		n.pos = x.Pos()
		var err error
		if n.Cond, err = a.expr(x.Cond); err != nil {
			return nil, err
		}
		if n.Then, err = a.expr(x.Then); err != nil {
			return nil, err
		}
		if n.Else, err = a.expr(x.Else); err != nil {
			return nil, err
		}
		return n, nil

	case *syntax.IncDecExpr:
		v, err := a.target(x.X)
		if err != nil {
			return nil, err
		}
		if x.Op.IsPostfix() {
			n := &PostIncDec{Dec: x.Op.IsDec(), X: v}
			n.pos = x.Pos()
			return n, nil
		}
		op := Add
		if x.Op.IsDec() {
			op = Sub
		}
		n := &AssignOp{Op: op, X: v, Y: num(x.Pos(), 1)}
		n.pos = x.Pos()
		return n, nil

	case *syntax.CallExpr:
		return a.call(x)
	}
	return nil, diag.Unexpectedf(x.Pos(), "unknown expression %T", x)
}

// binary lowers a binary expression. Operands are lowered in source
// order before any swap, so slot allocation follows first use.
func (a *Analyzer) binary(x *syntax.BinaryExpr) (Expr, error) {
	lhs, err := a.expr(x.X)
	if err != nil {
		return nil, err
	}
	rhs, err := a.expr(x.Y)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case syntax.AndAnd:
		// a && b => a ? b : 0
		n := &Cond{Cond: lhs, Then: rhs, Else: num(x.Pos(), 0)}
		n.pos = x.Pos()
		return n, nil
	case syntax.OrOr:
		// a || b => a ? 1 : b
		n := &Cond{Cond: lhs, Then: num(x.Pos(), 1), Else: rhs}
		n.pos = x.Pos()
		return n, nil
	case syntax.Gtr:
		return binary(x.Pos(), Lt, rhs, lhs), nil
	case syntax.Geq:
		return binary(x.Pos(), Leq, rhs, lhs), nil
	}

	op, err := binaryOp(x.Op, x.Pos())
	if err != nil {
		return nil, err
	}
	return binary(x.Pos(), op, lhs, rhs), nil
}

// call lowers a call. A bare identifier callee is a direct call to the
// symbol of that name and does not allocate a variable.
func (a *Analyzer) call(x *syntax.CallExpr) (Expr, error) {
	n := &Call{}
	n.pos = x.Pos()
	if name, ok := x.Fun.(*syntax.Name); ok {
		n.Label = name.Value
	} else {
		fun, err := a.expr(x.Fun)
		if err != nil {
			return nil, err
		}
		n.Fun = fun
	}
	for _, arg := range x.Args {
		la, err := a.expr(arg)
		if err != nil {
			return nil, err
		}
		n.Args = append(n.Args, la)
	}
	return n, nil
}

// target lowers the operand of an assignment or increment, which must
// be a variable.
func (a *Analyzer) target(x syntax.Expr) (*VarRef, error) {
	name, ok := x.(*syntax.Name)
	if !ok {
		return nil, &InvalidAssignTargetError{Pos: x.Pos()}
	}
	return a.varRef(name), nil
}

func (a *Analyzer) varRef(name *syntax.Name) *VarRef {
	_, known := a.scope.vars[name.Value]
	v := a.scope.lookup(name.Value)
	if !known {
		glog.V(5).Infof("%s: variable %s at [rbp-%d]", name.Pos(), v.Name, v.Offset)
	}
	n := &VarRef{Var: v}
	n.pos = name.Pos()
	return n
}

// binaryOp maps a raw operator with a direct lowered counterpart.
// Logical and greater-than operators are rewritten by the caller; the
// plain assignment operator never names a binary operation.
func binaryOp(op syntax.Operator, pos syntax.Pos) (Op, error) {
	switch op {
	case syntax.Add:
		return Add, nil
	case syntax.Sub:
		return Sub, nil
	case syntax.Mul:
		return Mul, nil
	case syntax.Div:
		return Div, nil
	case syntax.Rem:
		return Rem, nil
	case syntax.And:
		return And, nil
	case syntax.Or:
		return Or, nil
	case syntax.Xor:
		return Xor, nil
	case syntax.Shl:
		return Shl, nil
	case syntax.Shr:
		return Shr, nil
	case syntax.Lss:
		return Lt, nil
	case syntax.Leq:
		return Leq, nil
	case syntax.Eql:
		return Eql, nil
	case syntax.Neq:
		return Neq, nil
	}
	return 0, diag.Unexpectedf(pos, "operator %s has no binary form", op)
}

func binary(pos syntax.Pos, op Op, x, y Expr) *Binary {
	n := &Binary{Op: op, X: x, Y: y}
	n.pos = pos
	return n
}

func num(pos syntax.Pos, v uint64) *Num {
	n := &Num{Value: v}
	n.pos = pos
	return n
}
