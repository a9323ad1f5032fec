// Package lower turns the raw syntax tree into the lowered program the
// code generator consumes: identifiers are resolved to stack slots and
// sugar forms are rewritten into a smaller expression algebra.
package lower

import "github.com/you-not-fish/stackcc/internal/syntax"

// Node is the interface implemented by all lowered nodes.
type Node interface {
	Pos() syntax.Pos // position copied from the raw node
	aNode()
}

// Expr is a lowered expression.
type Expr interface {
	Node
	aExpr()
}

// Stmt is a lowered statement.
type Stmt interface {
	Node
	aStmt()
}

type node struct {
	pos syntax.Pos
}

func (n *node) Pos() syntax.Pos { return n.pos }
func (n *node) aNode()          {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Operators

// Op is a lowered binary operator. There is no greater-than form and no
// logical operator: those are rewritten away.
type Op uint

const (
	_ Op = iota
	Add
	Sub
	Mul
	Div
	Rem
	And
	Or
	Xor
	Shl
	Shr
	Lt
	Leq
	Eql
	Neq
)

var opNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Rem: "%",
	And: "&",
	Or:  "|",
	Xor: "^",
	Shl: "<<",
	Shr: ">>",
	Lt:  "<",
	Leq: "<=",
	Eql: "==",
	Neq: "!=",
}

func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "?"
}

// IsCompare reports whether op yields a 0/1 comparison result.
func (op Op) IsCompare() bool {
	return op >= Lt && op <= Neq
}

// ----------------------------------------------------------------------------
// Expressions

// Binary computes X Op Y.
type Binary struct {
	expr
	Op Op
	X  Expr
	Y  Expr
}

// Assign stores Y into X and yields the stored value.
type Assign struct {
	expr
	X *VarRef
	Y Expr
}

// AssignOp stores X Op Y into X and yields the new value.
type AssignOp struct {
	expr
	Op Op
	X  *VarRef
	Y  Expr
}

// Comma evaluates X, discards it, and yields Y.
type Comma struct {
	expr
	X Expr
	Y Expr
}

// Cond yields Then if Cond is non-zero, else Else. Only one arm runs.
type Cond struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// PostIncDec adds or subtracts one from X and yields the old value.
type PostIncDec struct {
	expr
	Dec bool
	X   *VarRef
}

// VarRef reads a variable.
type VarRef struct {
	expr
	Var *Variable
}

// Num is an integer constant.
type Num struct {
	expr
	Value uint64
}

// Call calls a function. A direct call names its target in Label and has
// a nil Fun; a computed call evaluates Fun to get the target address.
type Call struct {
	expr
	Label string
	Fun   Expr
	Args  []Expr
}

// IsLabel reports whether c calls an assembler symbol directly.
func (c *Call) IsLabel() bool { return c.Fun == nil }

// ----------------------------------------------------------------------------
// Statements

// ExprStmt evaluates X for its effects. X is nil for an empty statement.
type ExprStmt struct {
	stmt
	X Expr
}

// Return leaves the program, with Result (if any) as the exit value.
type Return struct {
	stmt
	Result Expr
}

// If runs Then when Cond is non-zero, otherwise Else (which may be nil).
type If struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt
}

// For is a loop. Init and Post may be nil; Cond never is.
type For struct {
	stmt
	Init Expr
	Cond Expr
	Post Expr
	Body Stmt
}

// While runs Body as long as Cond is non-zero.
type While struct {
	stmt
	Cond Expr
	Body Stmt
}

// Block is a statement sequence.
type Block struct {
	stmt
	Stmts []Stmt
}

// Program is the result of analyzing one unit.
type Program struct {
	Stmts []Stmt

	// FrameSize is the number of bytes of local storage: 8 for each
	// distinct variable, before any alignment.
	FrameSize int

	// Vars lists the variables in first-use order.
	Vars []*Variable
}
