package syntax

import (
	"strconv"
	"strings"
)

// Scanner performs lexical analysis on one source file.
// It is single-pass and never backtracks over characters.
type Scanner struct {
	*source // embedded character reader

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for f.
func NewScanner(f *File) *Scanner {
	return &Scanner{source: newSource(f)}
}

// Tokenize scans all of f and returns its tokens. The last token is
// always _EOF, positioned just past the final character.
func Tokenize(f *File) ([]Lexeme, error) {
	return NewScanner(f).All()
}

// All scans the remaining input.
func (s *Scanner) All() ([]Lexeme, error) {
	var toks []Lexeme
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Tok.IsEOF() {
			return toks, nil
		}
	}
}

// Next scans the next token.
func (s *Scanner) Next() (Lexeme, error) {
	s.skipWhitespace()

	pos := s.pos()
	if s.eof() {
		return Lexeme{Tok: _EOF, Pos: pos}, nil
	}

	if tok, ok := s.scanOperator(); ok {
		return tok, nil
	}

	switch c := s.ch(); {
	case isDigit(c):
		return s.scanNumber()
	case isLetter(c):
		return s.scanIdent(), nil
	}
	return Lexeme{}, &UnexpectedCharError{Pos: pos, Char: s.ch()}
}

// skipWhitespace skips spaces, tabs and newlines.
func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.ch()) {
		s.nextch()
	}
}

// scanOperator matches the punctuation table against the input.
// The table is ordered longest first, so the first hit is the longest match.
func (s *Scanner) scanOperator() (Lexeme, bool) {
	for _, p := range punct {
		if s.startsWith(p.lit) {
			tok := Lexeme{Tok: p.tok, Pos: s.pos(), Lit: p.lit}
			s.advance(len(p.lit))
			return tok, true
		}
	}
	return Lexeme{}, false
}

// scanNumber scans an unsigned decimal integer.
func (s *Scanner) scanNumber() (Lexeme, error) {
	pos := s.pos()
	s.litBuf.Reset()
	for isDigit(s.ch()) {
		s.litBuf.WriteRune(s.ch())
		s.nextch()
	}

	lit := s.litBuf.String()
	val, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		return Lexeme{}, &ScanError{Pos: pos, Msg: "integer literal " + lit + " is too large"}
	}
	return Lexeme{Tok: _Number, Pos: pos, Lit: lit, Val: val}, nil
}

// scanIdent scans an identifier or keyword.
func (s *Scanner) scanIdent() Lexeme {
	pos := s.pos()
	s.litBuf.Reset()
	for isLetter(s.ch()) || isDigit(s.ch()) {
		s.litBuf.WriteRune(s.ch())
		s.nextch()
	}

	lit := s.litBuf.String()
	return Lexeme{Tok: LookupKeyword(lit), Pos: pos, Lit: lit}
}
