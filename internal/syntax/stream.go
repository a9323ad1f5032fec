package syntax

// TokenStream is a cursor over a shared, immutable token buffer.
// Copying a TokenStream (or calling Clone) yields an independent cursor;
// the buffer itself is never duplicated.
type TokenStream struct {
	toks []Lexeme
	i    int
}

// NewTokenStream returns a cursor at the first token of toks.
// toks must end with an _EOF token.
func NewTokenStream(toks []Lexeme) TokenStream {
	if len(toks) == 0 || !toks[len(toks)-1].Tok.IsEOF() {
		toks = append(toks[:len(toks):len(toks)], Lexeme{Tok: _EOF})
	}
	return TokenStream{toks: toks}
}

// Peek returns the current token without consuming it.
func (ts *TokenStream) Peek() Lexeme {
	return ts.toks[ts.i]
}

// Next consumes and returns the current token. The stream sticks at EOF.
func (ts *TokenStream) Next() Lexeme {
	tok := ts.toks[ts.i]
	if ts.i < len(ts.toks)-1 {
		ts.i++
	}
	return tok
}

// Clone returns an independent cursor at the same position.
func (ts *TokenStream) Clone() TokenStream {
	return *ts
}

// Remaining returns the number of tokens left, including EOF.
func (ts *TokenStream) Remaining() int {
	return len(ts.toks) - ts.i
}
