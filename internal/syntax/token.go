// Package syntax implements lexical and syntactic analysis for the stackcc
// source language, a small C subset with a single 64-bit integer type.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of file

	// Literals
	_Name   // identifier: foo, bar, _tmp1
	_Number // unsigned decimal integer literal

	// Assignment operators
	_Assign    // =
	_MulAssign // *=
	_DivAssign // /=
	_RemAssign // %=
	_AddAssign // +=
	_SubAssign // -=
	_ShlAssign // <<=
	_ShrAssign // >>=
	_AndAssign // &=
	_XorAssign // ^=
	_OrAssign  // |=

	// Binary operators
	_OrOr   // ||
	_AndAnd // &&
	_Or     // |
	_Xor    // ^
	_And    // &
	_Eql    // ==
	_Neq    // !=
	_Lss    // <
	_Leq    // <=
	_Gtr    // >
	_Geq    // >=
	_Shl    // <<
	_Shr    // >>
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /
	_Rem    // %

	// Increment and decrement
	_Inc // ++
	_Dec // --

	// Recognized by the lexer, not used by the grammar
	_Not      // !
	_Tilde    // ~
	_Arrow    // ->
	_Dot      // .
	_Ellipsis // ...

	// Delimiters
	_Question // ?
	_Colon    // :
	_Semi     // ;
	_Comma    // ,
	_Lparen   // (
	_Rparen   // )
	_Lbrack   // [ or <:
	_Rbrack   // ] or :>
	_Lbrace   // { or <%
	_Rbrace   // } or %>

	// Keywords
	_Else
	_For
	_If
	_Return
	_While

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name:   "NAME",
	_Number: "NUMBER",

	_Assign:    "=",
	_MulAssign: "*=",
	_DivAssign: "/=",
	_RemAssign: "%=",
	_AddAssign: "+=",
	_SubAssign: "-=",
	_ShlAssign: "<<=",
	_ShrAssign: ">>=",
	_AndAssign: "&=",
	_XorAssign: "^=",
	_OrAssign:  "|=",

	_OrOr:   "||",
	_AndAnd: "&&",
	_Or:     "|",
	_Xor:    "^",
	_And:    "&",
	_Eql:    "==",
	_Neq:    "!=",
	_Lss:    "<",
	_Leq:    "<=",
	_Gtr:    ">",
	_Geq:    ">=",
	_Shl:    "<<",
	_Shr:    ">>",
	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_Rem:    "%",

	_Inc: "++",
	_Dec: "--",

	_Not:      "!",
	_Tilde:    "~",
	_Arrow:    "->",
	_Dot:      ".",
	_Ellipsis: "...",

	_Question: "?",
	_Colon:    ":",
	_Semi:     ";",
	_Comma:    ",",
	_Lparen:   "(",
	_Rparen:   ")",
	_Lbrack:   "[",
	_Rbrack:   "]",
	_Lbrace:   "{",
	_Rbrace:   "}",

	_Else:   "else",
	_For:    "for",
	_If:     "if",
	_Return: "return",
	_While:  "while",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _Else && t <= _While
}

// IsAssignOp reports whether t is one of the eleven assignment operators.
func (t Token) IsAssignOp() bool {
	return t >= _Assign && t <= _OrAssign
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// keywords maps keyword strings to their tokens.
var keywords = map[string]Token{
	"else":   _Else,
	"for":    _For,
	"if":     _If,
	"return": _Return,
	"while":  _While,
}

// LookupKeyword returns the keyword token for ident, or _Name if ident
// is not a keyword.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// punct is the punctuation table in match order: three-character
// symbols, then two-character, then one-character.
var punct = [...]struct {
	lit string
	tok Token
}{
	{"...", _Ellipsis},
	{"<<=", _ShlAssign},
	{">>=", _ShrAssign},

	{"<:", _Lbrack},
	{":>", _Rbrack},
	{"<%", _Lbrace},
	{"%>", _Rbrace},
	{"->", _Arrow},
	{"++", _Inc},
	{"--", _Dec},
	{"<<", _Shl},
	{">>", _Shr},
	{"<=", _Leq},
	{">=", _Geq},
	{"==", _Eql},
	{"!=", _Neq},
	{"&&", _AndAnd},
	{"||", _OrOr},
	{"*=", _MulAssign},
	{"/=", _DivAssign},
	{"%=", _RemAssign},
	{"+=", _AddAssign},
	{"-=", _SubAssign},
	{"&=", _AndAssign},
	{"^=", _XorAssign},
	{"|=", _OrAssign},

	{"[", _Lbrack},
	{"]", _Rbrack},
	{"(", _Lparen},
	{")", _Rparen},
	{"{", _Lbrace},
	{"}", _Rbrace},
	{".", _Dot},
	{"&", _And},
	{"*", _Mul},
	{"+", _Add},
	{"-", _Sub},
	{"~", _Tilde},
	{"!", _Not},
	{"/", _Div},
	{"%", _Rem},
	{"<", _Lss},
	{">", _Gtr},
	{"^", _Xor},
	{"|", _Or},
	{"?", _Question},
	{":", _Colon},
	{";", _Semi},
	{"=", _Assign},
	{",", _Comma},
}

// Lexeme is one token produced by the scanner.
type Lexeme struct {
	Tok Token  // token type
	Pos Pos    // position of the first character
	Lit string // source text (identifier name, digits, or operator)
	Val uint64 // value of a _Number token
}

// String returns a short description of the lexeme for diagnostics.
func (l Lexeme) String() string {
	switch l.Tok {
	case _Name, _Number:
		return fmt.Sprintf("%s %q", l.Tok, l.Lit)
	case _EOF:
		return "EOF"
	}
	return fmt.Sprintf("%q", l.Tok.String())
}
