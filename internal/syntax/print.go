package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a textual representation of the syntax tree to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// field prints a labeled child one level deeper.
func (p *printer) field(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	// Statements
	case *ExprStmt:
		p.printf("ExprStmt %s\n", n.pos)
		if n.X != nil {
			p.indent++
			p.print(n.X)
			p.indent--
		}

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Then", n.Then)
		if n.Else != nil {
			p.field("Else", n.Else)
		}
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		if n.Init != nil {
			p.field("Init", n.Init)
		}
		if n.Cond != nil {
			p.field("Cond", n.Cond)
		}
		if n.Post != nil {
			p.field("Post", n.Post)
		}
		p.field("Body", n.Body)
		p.indent--

	case *WhileStmt:
		p.printf("WhileStmt %s\n", n.pos)
		p.indent++
		p.field("Cond", n.Cond)
		p.field("Body", n.Body)
		p.indent--

	case *BlockStmt:
		p.printf("BlockStmt %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	// Expressions
	case *Name:
		p.printf("Name %q %s\n", n.Value, n.pos)

	case *NumberLit:
		p.printf("NumberLit %d %s\n", n.Value, n.pos)

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.Op, n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *AssignExpr:
		op := "="
		if n.Op != Assign {
			op = n.Op.String() + "="
		}
		p.printf("AssignExpr %s %s\n", op, n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *CommaExpr:
		p.printf("CommaExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *CondExpr:
		p.printf("CondExpr %s\n", n.pos)
		p.indent++
		p.print(n.Cond)
		p.print(n.Then)
		p.print(n.Else)
		p.indent--

	case *IncDecExpr:
		kind := "prefix"
		if n.Op.IsPostfix() {
			kind = "postfix"
		}
		p.printf("IncDecExpr %s %s %s\n", kind, n.Op, n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.pos)
		p.indent++
		p.field("Fun", n.Fun)
		if len(n.Args) > 0 {
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent--
		}
		p.indent--

	default:
		p.printf("<unknown node %T>\n", node)
	}
}

// ----------------------------------------------------------------------------
// Source formatting

// Format renders node back into source text. Every compound expression
// is parenthesized, so parsing the result yields the same tree shape.
func Format(node Node) string {
	var b strings.Builder
	f := &formatter{b: &b}
	f.node(node)
	return b.String()
}

type formatter struct {
	b      *strings.Builder
	indent int
}

func (f *formatter) line(s string) {
	f.b.WriteString(strings.Repeat("\t", f.indent))
	f.b.WriteString(s)
	f.b.WriteByte('\n')
}

func (f *formatter) node(node Node) {
	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			f.node(s)
		}
	case Stmt:
		f.stmt(n)
	case Expr:
		f.b.WriteString(ExprString(n))
	}
}

// body prints a nested statement one level deeper unless it is a block.
func (f *formatter) body(s Stmt) {
	if _, ok := s.(*BlockStmt); ok {
		f.stmt(s)
		return
	}
	f.indent++
	f.stmt(s)
	f.indent--
}

func (f *formatter) stmt(s Stmt) {
	switch s := s.(type) {
	case *ExprStmt:
		if s.X == nil {
			f.line(";")
			return
		}
		f.line(ExprString(s.X) + ";")

	case *ReturnStmt:
		if s.Result == nil {
			f.line("return;")
			return
		}
		f.line("return " + ExprString(s.Result) + ";")

	case *IfStmt:
		f.line("if (" + ExprString(s.Cond) + ")")
		if s.Else != nil && endsInOpenIf(s.Then) {
			// Brace the then branch so the else keeps its owner.
			f.line("{")
			f.body(s.Then)
			f.line("}")
		} else {
			f.body(s.Then)
		}
		if s.Else != nil {
			f.line("else")
			f.body(s.Else)
		}

	case *ForStmt:
		f.line("for (" + optExprString(s.Init) + "; " + optExprString(s.Cond) + "; " + optExprString(s.Post) + ")")
		f.body(s.Body)

	case *WhileStmt:
		f.line("while (" + ExprString(s.Cond) + ")")
		f.body(s.Body)

	case *BlockStmt:
		f.line("{")
		f.indent++
		for _, x := range s.Stmts {
			f.stmt(x)
		}
		f.indent--
		f.line("}")
	}
}

// endsInOpenIf reports whether s ends in an if statement without an
// else, which would capture a following else.
func endsInOpenIf(s Stmt) bool {
	switch s := s.(type) {
	case *IfStmt:
		if s.Else == nil {
			return true
		}
		return endsInOpenIf(s.Else)
	case *ForStmt:
		return endsInOpenIf(s.Body)
	case *WhileStmt:
		return endsInOpenIf(s.Body)
	}
	return false
}

func optExprString(x Expr) string {
	if x == nil {
		return ""
	}
	return ExprString(x)
}

// ExprString returns the fully parenthesized source form of x.
func ExprString(x Expr) string {
	switch x := x.(type) {
	case *Name:
		return x.Value
	case *NumberLit:
		return strconv.FormatUint(x.Value, 10)
	case *BinaryExpr:
		return "(" + ExprString(x.X) + " " + x.Op.String() + " " + ExprString(x.Y) + ")"
	case *AssignExpr:
		op := "="
		if x.Op != Assign {
			op = x.Op.String() + "="
		}
		return "(" + ExprString(x.X) + " " + op + " " + ExprString(x.Y) + ")"
	case *CommaExpr:
		return "(" + ExprString(x.X) + ", " + ExprString(x.Y) + ")"
	case *CondExpr:
		return "(" + ExprString(x.Cond) + " ? " + ExprString(x.Then) + " : " + ExprString(x.Else) + ")"
	case *IncDecExpr:
		if x.Op.IsPostfix() {
			return "(" + ExprString(x.X) + x.Op.String() + ")"
		}
		return "(" + x.Op.String() + ExprString(x.X) + ")"
	case *CallExpr:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = ExprString(a)
		}
		return ExprString(x.Fun) + "(" + strings.Join(args, ", ") + ")"
	}
	return "<?>"
}
