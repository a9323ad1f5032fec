package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 2 main classes of nodes: Expressions and Statements.
// All nodes implement the Node interface. The tree is strictly owned:
// a parent is the only holder of its children.

// Node is the interface implemented by all syntax tree nodes.
type Node interface {
	Pos() Pos // position of the token that introduced the node
	aNode()   // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all nodes.
type node struct {
	pos Pos
}

func (n *node) Pos() Pos { return n.pos }
func (n *node) aNode()   {}

// SetPos sets the node position. It is used by code that builds trees
// outside the parser, such as tests.
func (n *node) SetPos(pos Pos) { n.pos = pos }

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// ----------------------------------------------------------------------------
// Operators

// Operator is a binary or assignment operator.
type Operator uint

const (
	_ Operator = iota

	// Assign is the plain assignment operator "=". It only appears in
	// AssignExpr and never names a binary operation.
	Assign

	OrOr   // ||
	AndAnd // &&
	Or     // |
	Xor    // ^
	And    // &
	Eql    // ==
	Neq    // !=
	Lss    // <
	Leq    // <=
	Gtr    // >
	Geq    // >=
	Shl    // <<
	Shr    // >>
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	Rem    // %
)

var operatorNames = [...]string{
	Assign: "=",
	OrOr:   "||",
	AndAnd: "&&",
	Or:     "|",
	Xor:    "^",
	And:    "&",
	Eql:    "==",
	Neq:    "!=",
	Lss:    "<",
	Leq:    "<=",
	Gtr:    ">",
	Geq:    ">=",
	Shl:    "<<",
	Shr:    ">>",
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Rem:    "%",
}

func (op Operator) String() string {
	if int(op) < len(operatorNames) && operatorNames[op] != "" {
		return operatorNames[op]
	}
	return "?"
}

// binaryOps maps binary operator tokens to operators.
var binaryOps = map[Token]Operator{
	_OrOr:   OrOr,
	_AndAnd: AndAnd,
	_Or:     Or,
	_Xor:    Xor,
	_And:    And,
	_Eql:    Eql,
	_Neq:    Neq,
	_Lss:    Lss,
	_Leq:    Leq,
	_Gtr:    Gtr,
	_Geq:    Geq,
	_Shl:    Shl,
	_Shr:    Shr,
	_Add:    Add,
	_Sub:    Sub,
	_Mul:    Mul,
	_Div:    Div,
	_Rem:    Rem,
}

// assignOps maps assignment tokens to the operator they apply;
// "=" maps to Assign.
var assignOps = map[Token]Operator{
	_Assign:    Assign,
	_MulAssign: Mul,
	_DivAssign: Div,
	_RemAssign: Rem,
	_AddAssign: Add,
	_SubAssign: Sub,
	_ShlAssign: Shl,
	_ShrAssign: Shr,
	_AndAssign: And,
	_XorAssign: Xor,
	_OrAssign:  Or,
}

// IncDecOp distinguishes the four increment and decrement forms.
type IncDecOp uint

const (
	PreInc  IncDecOp = iota // ++x
	PreDec                  // --x
	PostInc                 // x++
	PostDec                 // x--
)

// IsPostfix reports whether op is x++ or x--.
func (op IncDecOp) IsPostfix() bool { return op == PostInc || op == PostDec }

// IsDec reports whether op decrements.
func (op IncDecOp) IsDec() bool { return op == PreDec || op == PostDec }

func (op IncDecOp) String() string {
	if op.IsDec() {
		return "--"
	}
	return "++"
}

// ----------------------------------------------------------------------------
// Program

// Program is the parse result of one compiled unit.
type Program struct {
	node
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Expressions

// Name represents an identifier.
type Name struct {
	expr
	Value string // identifier string
}

// NumberLit represents an unsigned integer literal.
type NumberLit struct {
	expr
	Value uint64
}

// BinaryExpr represents X Op Y.
type BinaryExpr struct {
	expr
	Op Operator
	X  Expr
	Y  Expr
}

// AssignExpr represents X = Y or X op= Y.
// Op is Assign for plain assignment, otherwise the applied operator.
type AssignExpr struct {
	expr
	Op Operator
	X  Expr
	Y  Expr
}

// CommaExpr represents X, Y.
type CommaExpr struct {
	expr
	X Expr
	Y Expr
}

// CondExpr represents Cond ? Then : Else.
type CondExpr struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// IncDecExpr represents ++X, --X, X++ or X--.
type IncDecExpr struct {
	expr
	Op IncDecOp
	X  Expr
}

// CallExpr represents Fun(Args...). Fun is any expression; a plain
// Name is the common case.
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

// ----------------------------------------------------------------------------
// Statements

// ExprStmt represents an expression statement. X is nil for ";".
type ExprStmt struct {
	stmt
	X Expr
}

// ReturnStmt represents return [Result];
type ReturnStmt struct {
	stmt
	Result Expr // nil if no result
}

// IfStmt represents if (Cond) Then [else Else].
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else branch
}

// ForStmt represents for (Init; Cond; Post) Body.
// Each clause is nil when omitted.
type ForStmt struct {
	stmt
	Init Expr
	Cond Expr
	Post Expr
	Body Stmt
}

// WhileStmt represents while (Cond) Body.
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// BlockStmt represents { Stmts }.
type BlockStmt struct {
	stmt
	Stmts []Stmt
}
