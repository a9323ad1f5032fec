package lower

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/stackcc/internal/diag"
	"github.com/you-not-fish/stackcc/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.Program {
	t.Helper()
	prog, err := syntax.ParseFile(syntax.NewFile("test.c", src))
	require.NoError(t, err, "source: %q", src)
	return prog
}

func analyze(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := Analyze(parse(t, src))
	require.NoError(t, err, "source: %q", src)
	return prog
}

// firstExpr analyzes src and returns the expression of its first
// statement.
func firstExpr(t *testing.T, src string) Expr {
	t.Helper()
	prog := analyze(t, src)
	require.NotEmpty(t, prog.Stmts)
	s, ok := prog.Stmts[0].(*ExprStmt)
	require.True(t, ok, "got %T", prog.Stmts[0])
	return s.X
}

func TestAnalyzeRewrites(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a > b;", "(b@16 < a@8)"},
		{"a >= b;", "(b@16 <= a@8)"},
		{"a < b;", "(a@8 < b@16)"},
		{"a <= b;", "(a@8 <= b@16)"},
		{"a == b != c;", "((a@8 == b@16) != c@24)"},
		{"a && b;", "(a@8 ? b@16 : 0)"},
		{"a || b;", "(a@8 ? 1 : b@16)"},
		{"a && b || c;", "((a@8 ? b@16 : 0) ? 1 : c@24)"},
		{"++x;", "(x@8 += 1)"},
		{"--x;", "(x@8 -= 1)"},
		{"x++;", "(x@8++)"},
		{"x--;", "(x@8--)"},
		{"x = y;", "(x@8 = y@16)"},
		{"x <<= 2;", "(x@8 <<= 2)"},
		{"x %= y + 1;", "(x@8 %= (y@16 + 1))"},
		{"a, b;", "(a@8, b@16)"},
		{"a ? b : c;", "(a@8 ? b@16 : c@24)"},
		{"x = a > b ? a : b;", "(x@8 = ((b@24 < a@16) ? a@16 : b@24))"},
		{"a >> 1 << 2;", "((a@8 >> 1) << 2)"},
		{"a & b | c ^ d;", "((a@8 & b@16) | (c@24 ^ d@32))"},
		{"a * b / c % d - e;", "((((a@8 * b@16) / c@24) % d@32) - e@40)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, ExprString(firstExpr(t, tt.src)))
		})
	}
}

func TestAnalyzeCalls(t *testing.T) {
	tests := []struct {
		src   string
		want  string
		vars  []string
		label bool
	}{
		{"f();", "f()", nil, true},
		{"f(a, b);", "f(a@8, b@16)", []string{"a", "b"}, true},
		{"(f)(x);", "f(x@8)", []string{"x"}, true},
		{"(f + 1)(2);", "(*(f@8 + 1))(2)", []string{"f"}, false},
		{"g(1)(x);", "(*g(1))(x@8)", []string{"x"}, false},
		{"p = 4; (p)(p, 1);", "(p@8 = 4)", []string{"p"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog := analyze(t, tt.src)
			assert.Equal(t, tt.want, ExprString(prog.Stmts[0].(*ExprStmt).X))

			var names []string
			for _, v := range prog.Vars {
				names = append(names, v.Name)
			}
			assert.Equal(t, tt.vars, names)

			last := prog.Stmts[len(prog.Stmts)-1].(*ExprStmt).X.(*Call)
			assert.Equal(t, tt.label, last.IsLabel())
		})
	}
}

func TestAnalyzeForWithoutCondition(t *testing.T) {
	prog := analyze(t, "for (;;) x = 1;")
	f := prog.Stmts[0].(*For)
	assert.Nil(t, f.Init)
	assert.Nil(t, f.Post)
	require.NotNil(t, f.Cond)
	assert.Equal(t, "1", ExprString(f.Cond))
}

// varRefs collects every variable reference reachable from n.
func varRefs(n Node) []*VarRef {
	var refs []*VarRef
	var visit func(n Node)
	visitExpr := func(x Expr) {
		if x != nil {
			visit(x)
		}
	}
	visitStmt := func(s Stmt) {
		if s != nil {
			visit(s)
		}
	}
	visit = func(n Node) {
		switch n := n.(type) {
		case *VarRef:
			refs = append(refs, n)
		case *Binary:
			visitExpr(n.X)
			visitExpr(n.Y)
		case *Assign:
			visitExpr(n.X)
			visitExpr(n.Y)
		case *AssignOp:
			visitExpr(n.X)
			visitExpr(n.Y)
		case *Comma:
			visitExpr(n.X)
			visitExpr(n.Y)
		case *Cond:
			visitExpr(n.Cond)
			visitExpr(n.Then)
			visitExpr(n.Else)
		case *PostIncDec:
			visitExpr(n.X)
		case *Call:
			visitExpr(n.Fun)
			for _, a := range n.Args {
				visitExpr(a)
			}
		case *ExprStmt:
			visitExpr(n.X)
		case *Return:
			visitExpr(n.Result)
		case *If:
			visitExpr(n.Cond)
			visitStmt(n.Then)
			visitStmt(n.Else)
		case *For:
			visitExpr(n.Init)
			visitExpr(n.Cond)
			visitExpr(n.Post)
			visitStmt(n.Body)
		case *While:
			visitExpr(n.Cond)
			visitStmt(n.Body)
		case *Block:
			for _, s := range n.Stmts {
				visitStmt(s)
			}
		}
	}
	visit(n)
	return refs
}

func TestVariableSlots(t *testing.T) {
	prog := analyze(t, "a = 1; { b = a; } while (a) { c = b + a; a--; } return c;")

	require.Len(t, prog.Vars, 3)
	for i, name := range []string{"a", "b", "c"} {
		assert.Equal(t, name, prog.Vars[i].Name)
		assert.Equal(t, 8*(i+1), prog.Vars[i].Offset)
	}
	assert.Equal(t, 24, prog.FrameSize)

	byName := make(map[string]*Variable)
	for _, s := range prog.Stmts {
		for _, ref := range varRefs(s) {
			if v, ok := byName[ref.Var.Name]; ok {
				assert.Same(t, v, ref.Var, "%s resolves to two variables", ref.Var.Name)
			}
			byName[ref.Var.Name] = ref.Var
		}
	}
	assert.Len(t, byName, 3)
}

func TestVariableSlotsVerboseLogging(t *testing.T) {
	v := flag.Lookup("v")
	require.NotNil(t, v, "glog registers -v")
	old := v.Value.String()
	require.NoError(t, v.Value.Set("5"))
	t.Cleanup(func() { v.Value.Set(old) })

	prog := analyze(t, "a = 1; b = a; return a + b;")
	require.Len(t, prog.Vars, 2)
	assert.Equal(t, "a@8", prog.Vars[0].String())
	assert.Equal(t, "b@16", prog.Vars[1].String())
}

func TestFrameSizeCountsDistinctNames(t *testing.T) {
	sources := []string{
		"return 42;",
		"a = 3; return a + 4;",
		"s = 0; for (i = 0; i < 5; i++) s = s + i; return s;",
		"x = y > z; f(x, w); (g + 0)(v);",
		"if (p) q = r; else { q = p; t++; } while (u) u--;",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			raw := parse(t, src)
			prog, err := Analyze(raw)
			require.NoError(t, err)

			names := syntax.VarNames(raw)
			assert.Equal(t, 8*len(names), prog.FrameSize)
			require.Len(t, prog.Vars, len(names))
			for i, v := range prog.Vars {
				assert.Equal(t, names[i], v.Name, "first-use order")
				assert.Equal(t, 8*(i+1), v.Offset)
			}
		})
	}
}

func TestAnalyzeTwiceIsDeterministic(t *testing.T) {
	raw := parse(t, "s = 0; for (i = 0; i < 5; i++) if (i > 2 && s) s += f(i, s); else s = s || i; return s;")

	first, err := Analyze(raw)
	require.NoError(t, err)
	second, err := Analyze(raw)
	require.NoError(t, err)

	var a, b bytes.Buffer
	Fprint(&a, first)
	Fprint(&b, second)
	assert.Equal(t, a.String(), b.String())

	// The two results share no variables.
	require.NotEmpty(t, first.Vars)
	assert.NotSame(t, first.Vars[0], second.Vars[0])
}

func TestPositionsPreserved(t *testing.T) {
	prog := analyze(t, "a = b > c;")
	s := prog.Stmts[0].(*ExprStmt)
	assert.Equal(t, "test.c:1:1", s.Pos().String())

	as := s.X.(*Assign)
	assert.Equal(t, "test.c:1:3", as.Pos().String())
	assert.Equal(t, "test.c:1:1", as.X.Pos().String())

	lt := as.Y.(*Binary)
	assert.Equal(t, "test.c:1:7", lt.Pos().String())
	// Swapped operands keep their own positions.
	assert.Equal(t, "test.c:1:9", lt.X.Pos().String())
	assert.Equal(t, "test.c:1:5", lt.Y.Pos().String())
}

func TestInvalidAssignTarget(t *testing.T) {
	tests := []struct {
		src string
		col uint32
	}{
		{"(a + b) = 1;", 4},
		{"1 = 2;", 1},
		{"f() = 1;", 2},
		{"++f();", 4},
		{"f()++;", 2},
		{"x = (a + b)--;", 8},
		{"x += (y = 1) -= 2;", 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := Analyze(parse(t, tt.src))
			require.Error(t, err)

			var ie *InvalidAssignTargetError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, "must be a modifiable value", ie.Message())
			if tt.col != 0 {
				assert.Equal(t, tt.col, ie.Pos.Col())
			}
			assert.Contains(t, diag.Render(err), "must be a modifiable value")
		})
	}
}

func TestAssignOperatorHasNoBinaryForm(t *testing.T) {
	_, err := binaryOp(syntax.Assign, syntax.Pos{})
	require.Error(t, err)
	assert.True(t, diag.IsUnexpected(err))

	_, err = binaryOp(syntax.AndAnd, syntax.Pos{})
	assert.True(t, diag.IsUnexpected(err))

	// A compound assignment carrying an operator without a binary form
	// is rejected the same way.
	raw := &syntax.Program{Stmts: []syntax.Stmt{
		&syntax.ExprStmt{X: &syntax.AssignExpr{
			Op: syntax.OrOr,
			X:  &syntax.Name{Value: "x"},
			Y:  &syntax.NumberLit{Value: 1},
		}},
	}}
	_, err = Analyze(raw)
	require.Error(t, err)
	assert.True(t, diag.IsUnexpected(err))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, analyze(t, "a = 3; return a + 4;"))
	want := "Program frame=8\n" +
		"  Var a [rbp-8]\n" +
		"  ExprStmt (a@8 = 3) test.c:1:1\n" +
		"  Return (a@8 + 4) test.c:1:8\n"
	assert.Equal(t, want, buf.String())
}

func TestFprintStatements(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, analyze(t, "if (a) { ; } else return; for (;;) b++; while (c) {}"))
	out := buf.String()
	for _, s := range []string{
		"If a@8 test.c:1:1",
		"Then:",
		"Block test.c:1:8",
		"ExprStmt test.c:1:10",
		"Else:",
		"Return test.c:1:19",
		"For ; 1;  test.c:1:27",
		"ExprStmt (b@16++)",
		"While c@24",
	} {
		assert.Contains(t, out, s)
	}
}
