package lower

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes a textual dump of p to w: the variable table followed by
// the lowered statements.
func Fprint(w io.Writer, p *Program) {
	pr := &printer{w: w}
	pr.printf("Program frame=%d\n", p.FrameSize)
	pr.indent++
	for _, v := range p.Vars {
		pr.printf("Var %s [rbp-%d]\n", v.Name, v.Offset)
	}
	for _, s := range p.Stmts {
		pr.stmt(s)
	}
	pr.indent--
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) field(label string, s Stmt) {
	p.printf("%s:\n", label)
	p.indent++
	p.stmt(s)
	p.indent--
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *ExprStmt:
		if s.X == nil {
			p.printf("ExprStmt %s\n", s.pos)
			return
		}
		p.printf("ExprStmt %s %s\n", ExprString(s.X), s.pos)
	case *Return:
		if s.Result == nil {
			p.printf("Return %s\n", s.pos)
			return
		}
		p.printf("Return %s %s\n", ExprString(s.Result), s.pos)
	case *If:
		p.printf("If %s %s\n", ExprString(s.Cond), s.pos)
		p.indent++
		p.field("Then", s.Then)
		if s.Else != nil {
			p.field("Else", s.Else)
		}
		p.indent--
	case *For:
		p.printf("For %s; %s; %s %s\n", optString(s.Init), ExprString(s.Cond), optString(s.Post), s.pos)
		p.indent++
		p.stmt(s.Body)
		p.indent--
	case *While:
		p.printf("While %s %s\n", ExprString(s.Cond), s.pos)
		p.indent++
		p.stmt(s.Body)
		p.indent--
	case *Block:
		p.printf("Block %s\n", s.pos)
		p.indent++
		for _, x := range s.Stmts {
			p.stmt(x)
		}
		p.indent--
	default:
		p.printf("<unknown statement %T>\n", s)
	}
}

func optString(x Expr) string {
	if x == nil {
		return ""
	}
	return ExprString(x)
}

// ExprString returns the fully parenthesized form of x. Variables print
// with their slot offset, as in a@8.
func ExprString(x Expr) string {
	switch x := x.(type) {
	case *Num:
		return strconv.FormatUint(x.Value, 10)
	case *VarRef:
		return x.Var.String()
	case *Binary:
		return "(" + ExprString(x.X) + " " + x.Op.String() + " " + ExprString(x.Y) + ")"
	case *Assign:
		return "(" + ExprString(x.X) + " = " + ExprString(x.Y) + ")"
	case *AssignOp:
		return "(" + ExprString(x.X) + " " + x.Op.String() + "= " + ExprString(x.Y) + ")"
	case *Comma:
		return "(" + ExprString(x.X) + ", " + ExprString(x.Y) + ")"
	case *Cond:
		return "(" + ExprString(x.Cond) + " ? " + ExprString(x.Then) + " : " + ExprString(x.Else) + ")"
	case *PostIncDec:
		if x.Dec {
			return "(" + ExprString(x.X) + "--)"
		}
		return "(" + ExprString(x.X) + "++)"
	case *Call:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = ExprString(a)
		}
		if x.IsLabel() {
			return x.Label + "(" + strings.Join(args, ", ") + ")"
		}
		return "(*" + ExprString(x.Fun) + ")(" + strings.Join(args, ", ") + ")"
	}
	return "<?>"
}
