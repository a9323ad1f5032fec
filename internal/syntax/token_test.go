package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Name, "NAME"},
		{_Number, "NUMBER"},
		{_Assign, "="},
		{_ShlAssign, "<<="},
		{_OrOr, "||"},
		{_Geq, ">="},
		{_Inc, "++"},
		{_Question, "?"},
		{_Rbrace, "}"},
		{_Return, "return"},
		{_While, "while"},
		{Token(999), "token(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		assert.NotEmpty(t, tokenNames[tok], "token %d has no name", tok)
	}
}

func TestTokenPredicates(t *testing.T) {
	assignOps := []Token{
		_Assign, _MulAssign, _DivAssign, _RemAssign, _AddAssign, _SubAssign,
		_ShlAssign, _ShrAssign, _AndAssign, _XorAssign, _OrAssign,
	}
	count := 0
	for tok := Token(0); tok < tokenCount; tok++ {
		if tok.IsAssignOp() {
			count++
		}
	}
	assert.Equal(t, len(assignOps), count)
	for _, tok := range assignOps {
		assert.True(t, tok.IsAssignOp(), "%s", tok)
	}
	assert.False(t, _Eql.IsAssignOp())

	for _, kw := range []Token{_Else, _For, _If, _Return, _While} {
		assert.True(t, kw.IsKeyword(), "%s", kw)
	}
	assert.False(t, _Name.IsKeyword())
	assert.True(t, _EOF.IsEOF())
}

func TestLookupKeyword(t *testing.T) {
	assert.Equal(t, _Return, LookupKeyword("return"))
	assert.Equal(t, _While, LookupKeyword("while"))
	assert.Equal(t, _Name, LookupKeyword("int"))
	assert.Equal(t, _Name, LookupKeyword("Return"))
}

func TestPunctTableOrder(t *testing.T) {
	// A symbol must never be shadowed by an earlier prefix of itself.
	for i, later := range punct {
		for _, earlier := range punct[:i] {
			if len(earlier.lit) < len(later.lit) {
				assert.NotEqual(t, earlier.lit, later.lit[:len(earlier.lit)],
					"%q shadows %q", earlier.lit, later.lit)
			}
		}
	}
}

func TestLexemeString(t *testing.T) {
	assert.Equal(t, `NAME "x"`, Lexeme{Tok: _Name, Lit: "x"}.String())
	assert.Equal(t, `NUMBER "7"`, Lexeme{Tok: _Number, Lit: "7"}.String())
	assert.Equal(t, `";"`, Lexeme{Tok: _Semi}.String())
	assert.Equal(t, "EOF", Lexeme{Tok: _EOF}.String())
}

func TestTokenStream(t *testing.T) {
	toks, err := Tokenize(NewFile("test.c", "a b c"))
	require.NoError(t, err)

	ts := NewTokenStream(toks)
	assert.Equal(t, 4, ts.Remaining())
	assert.Equal(t, "a", ts.Peek().Lit)
	assert.Equal(t, "a", ts.Next().Lit)

	clone := ts.Clone()
	assert.Equal(t, "b", clone.Next().Lit)
	assert.Equal(t, "c", clone.Next().Lit)

	// The cloned-from cursor does not move.
	assert.Equal(t, "b", ts.Peek().Lit)

	// Next sticks at EOF.
	assert.Equal(t, _EOF, clone.Next().Tok)
	assert.Equal(t, _EOF, clone.Next().Tok)
	assert.Equal(t, 1, clone.Remaining())
}

func TestTokenStreamAddsEOF(t *testing.T) {
	ts := NewTokenStream(nil)
	assert.Equal(t, _EOF, ts.Peek().Tok)

	ts = NewTokenStream([]Lexeme{{Tok: _Name, Lit: "x"}})
	ts.Next()
	assert.Equal(t, _EOF, ts.Peek().Tok)
}
