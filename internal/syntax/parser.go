package syntax

// Parser performs syntax analysis over a token stream.
//
// Parsing is fail-fast: the first error aborts the whole unit and there is
// no recovery.
type Parser struct {
	ts TokenStream
}

// NewParser creates a new Parser reading from toks.
func NewParser(toks []Lexeme) *Parser {
	return &Parser{ts: NewTokenStream(toks)}
}

// Parse parses a complete token sequence into a Program.
func Parse(toks []Lexeme) (*Program, error) {
	return NewParser(toks).Parse()
}

// ParseFile tokenizes and parses f.
func ParseFile(f *File) (*Program, error) {
	toks, err := Tokenize(f)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// ----------------------------------------------------------------------------
// Token navigation

// tok returns the current token type.
func (p *Parser) tok() Token {
	return p.ts.Peek().Tok
}

// pos returns the position of the current token.
func (p *Parser) pos() Pos {
	return p.ts.Peek().Pos
}

// next consumes the current token.
func (p *Parser) next() Lexeme {
	return p.ts.Next()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok() == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise it returns a syntax error.
func (p *Parser) want(tok Token) (Lexeme, error) {
	if p.tok() != tok {
		return Lexeme{}, p.syntaxError(quote(tok))
	}
	return p.next(), nil
}

// syntaxError reports that the current token is not what was expected.
func (p *Parser) syntaxError(expected string) error {
	found := p.ts.Peek()
	return &SyntaxError{Pos: found.Pos, Found: found, Expected: expected}
}

func quote(tok Token) string {
	return "'" + tok.String() + "'"
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses statements until EOF.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	prog.pos = p.pos()

	for p.tok() != _EOF {
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		prog.Stmts = append(prog.Stmts, s)
	}
	return prog, nil
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a statement.
func (p *Parser) stmt() (Stmt, error) {
	switch p.tok() {
	case _Return:
		return p.returnStmt()
	case _If:
		return p.ifStmt()
	case _For:
		return p.forStmt()
	case _While:
		return p.whileStmt()
	case _Lbrace:
		return p.blockStmt()
	default:
		return p.exprStmt()
	}
}

// exprStmt parses: [expr] ;
func (p *Parser) exprStmt() (Stmt, error) {
	s := &ExprStmt{}
	s.pos = p.pos()

	if p.got(_Semi) {
		return s, nil
	}

	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	s.X = x
	if _, err := p.want(_Semi); err != nil {
		return nil, err
	}
	return s, nil
}

// returnStmt parses: return [expr] ;
func (p *Parser) returnStmt() (Stmt, error) {
	s := &ReturnStmt{}
	s.pos = p.next().Pos

	if p.got(_Semi) {
		return s, nil
	}

	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	s.Result = x
	if _, err := p.want(_Semi); err != nil {
		return nil, err
	}
	return s, nil
}

// parenExpr parses: ( expr )
func (p *Parser) parenExpr() (Expr, error) {
	if _, err := p.want(_Lparen); err != nil {
		return nil, err
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(_Rparen); err != nil {
		return nil, err
	}
	return x, nil
}

// ifStmt parses: if ( cond ) then [else else]
func (p *Parser) ifStmt() (Stmt, error) {
	s := &IfStmt{}
	s.pos = p.next().Pos

	var err error
	if s.Cond, err = p.parenExpr(); err != nil {
		return nil, err
	}
	if s.Then, err = p.stmt(); err != nil {
		return nil, err
	}
	if p.got(_Else) {
		if s.Else, err = p.stmt(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// optExpr parses an expression unless the current token is end.
// The terminating token is consumed either way.
func (p *Parser) optExpr(end Token) (Expr, error) {
	if p.got(end) {
		return nil, nil
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.want(end); err != nil {
		return nil, err
	}
	return x, nil
}

// forStmt parses: for ( [init] ; [cond] ; [post] ) body
func (p *Parser) forStmt() (Stmt, error) {
	s := &ForStmt{}
	s.pos = p.next().Pos

	var err error
	if _, err = p.want(_Lparen); err != nil {
		return nil, err
	}
	if s.Init, err = p.optExpr(_Semi); err != nil {
		return nil, err
	}
	if s.Cond, err = p.optExpr(_Semi); err != nil {
		return nil, err
	}
	if s.Post, err = p.optExpr(_Rparen); err != nil {
		return nil, err
	}
	if s.Body, err = p.stmt(); err != nil {
		return nil, err
	}
	return s, nil
}

// whileStmt parses: while ( cond ) body
func (p *Parser) whileStmt() (Stmt, error) {
	s := &WhileStmt{}
	s.pos = p.next().Pos

	var err error
	if s.Cond, err = p.parenExpr(); err != nil {
		return nil, err
	}
	if s.Body, err = p.stmt(); err != nil {
		return nil, err
	}
	return s, nil
}

// blockStmt parses: { stmts... }
func (p *Parser) blockStmt() (Stmt, error) {
	b := &BlockStmt{}
	b.pos = p.next().Pos

	for !p.got(_Rbrace) {
		if p.tok() == _EOF {
			return nil, p.syntaxError(quote(_Rbrace))
		}
		s, err := p.stmt()
		if err != nil {
			return nil, err
		}
		b.Stmts = append(b.Stmts, s)
	}
	return b, nil
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses a comma expression.
func (p *Parser) expr() (Expr, error) {
	x, err := p.assignExpr()
	if err != nil {
		return nil, err
	}
	for p.tok() == _Comma {
		c := &CommaExpr{X: x}
		c.pos = p.next().Pos
		if c.Y, err = p.assignExpr(); err != nil {
			return nil, err
		}
		x = c
	}
	return x, nil
}

// assignExpr parses an assignment or conditional expression.
//
// Both alternatives start with a unary expression, so a cloned cursor
// parses one unary expression ahead and the clone becomes the real
// cursor. If an assignment operator follows, the unary expression is the
// target; otherwise it is the leftmost operand of a conditional
// expression. Each token is parsed once, so nesting costs linear time.
func (p *Parser) assignExpr() (Expr, error) {
	ahead := &Parser{ts: p.ts.Clone()}
	lhs, err := ahead.unaryExpr()
	if err != nil {
		return nil, err
	}
	p.ts = ahead.ts
	if !p.tok().IsAssignOp() {
		return p.condRest(lhs)
	}

	a := &AssignExpr{Op: assignOps[p.tok()], X: lhs}
	a.pos = p.next().Pos
	if a.Y, err = p.assignExpr(); err != nil {
		return nil, err
	}
	return a, nil
}

// condRest parses: or-expr [? expr : assign-expr]
// where x is the already parsed leftmost unary operand.
func (p *Parser) condRest(x Expr) (Expr, error) {
	cond, err := p.binaryRest(0, x)
	if err != nil {
		return nil, err
	}
	if p.tok() != _Question {
		return cond, nil
	}

	c := &CondExpr{Cond: cond}
	c.pos = p.next().Pos
	if c.Then, err = p.expr(); err != nil {
		return nil, err
	}
	if _, err = p.want(_Colon); err != nil {
		return nil, err
	}
	if c.Else, err = p.assignExpr(); err != nil {
		return nil, err
	}
	return c, nil
}

// precedence lists the binary operator tokens of each level,
// lowest binding first.
var precedence = [...][]Token{
	{_OrOr},
	{_AndAnd},
	{_Or},
	{_Xor},
	{_And},
	{_Eql, _Neq},
	{_Lss, _Gtr, _Leq, _Geq},
	{_Shl, _Shr},
	{_Add, _Sub},
	{_Mul, _Div, _Rem},
}

// binaryExpr parses a left-associative binary expression at the given
// precedence level.
func (p *Parser) binaryExpr(level int) (Expr, error) {
	x, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}
	return p.binaryRest(level, x)
}

// binaryRest continues a binary expression at the given precedence level
// whose leftmost unary operand x has already been parsed.
func (p *Parser) binaryRest(level int, x Expr) (Expr, error) {
	if level == len(precedence) {
		return x, nil
	}

	x, err := p.binaryRest(level+1, x)
	if err != nil {
		return nil, err
	}
	for contains(precedence[level], p.tok()) {
		op := &BinaryExpr{Op: binaryOps[p.tok()], X: x}
		op.pos = p.next().Pos
		if op.Y, err = p.binaryExpr(level + 1); err != nil {
			return nil, err
		}
		x = op
	}
	return x, nil
}

func contains(toks []Token, tok Token) bool {
	for _, t := range toks {
		if t == tok {
			return true
		}
	}
	return false
}

// unaryExpr parses: ++unary | --unary | postfix
func (p *Parser) unaryExpr() (Expr, error) {
	var op IncDecOp
	switch p.tok() {
	case _Inc:
		op = PreInc
	case _Dec:
		op = PreDec
	default:
		return p.postfixExpr()
	}

	x := &IncDecExpr{Op: op}
	x.pos = p.next().Pos
	var err error
	if x.X, err = p.unaryExpr(); err != nil {
		return nil, err
	}
	return x, nil
}

// postfixExpr parses a primary expression followed by any number of
// x++, x-- and call suffixes.
func (p *Parser) postfixExpr() (Expr, error) {
	x, err := p.primaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		switch p.tok() {
		case _Inc, _Dec:
			op := PostInc
			if p.tok() == _Dec {
				op = PostDec
			}
			n := &IncDecExpr{Op: op, X: x}
			n.pos = p.next().Pos
			x = n

		case _Lparen:
			if x, err = p.callExpr(x); err != nil {
				return nil, err
			}

		default:
			return x, nil
		}
	}
}

// callExpr parses Fun(args...). Arguments are assignment expressions,
// so a top-level comma separates them.
func (p *Parser) callExpr(fun Expr) (Expr, error) {
	call := &CallExpr{Fun: fun}
	call.pos = p.next().Pos

	if p.got(_Rparen) {
		return call, nil
	}
	for {
		arg, err := p.assignExpr()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.got(_Rparen) {
			return call, nil
		}
		if p.tok() != _Comma {
			return nil, p.syntaxError(quote(_Comma) + " or " + quote(_Rparen))
		}
		p.next()
	}
}

// primaryExpr parses a number, an identifier or a parenthesized expression.
func (p *Parser) primaryExpr() (Expr, error) {
	switch p.tok() {
	case _Number:
		tok := p.next()
		lit := &NumberLit{Value: tok.Val}
		lit.pos = tok.Pos
		return lit, nil

	case _Name:
		tok := p.next()
		n := &Name{Value: tok.Lit}
		n.pos = tok.Pos
		return n, nil

	case _Lparen:
		return p.parenExpr()

	default:
		return nil, p.syntaxError("expression")
	}
}
