package syntax

import "fmt"

// UnexpectedCharError reports a character that cannot start any token.
type UnexpectedCharError struct {
	Pos  Pos
	Char rune
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("%s: unexpected character %q", e.Pos, e.Char)
}

// Message returns the error text without the position prefix.
func (e *UnexpectedCharError) Message() string {
	return fmt.Sprintf("unexpected character %q", e.Char)
}

// Position returns the location of the offending character.
func (e *UnexpectedCharError) Position() Pos { return e.Pos }

// ScanError represents any other lexical error.
type ScanError struct {
	Pos Pos
	Msg string
}

func (e *ScanError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Message returns the error text without the position prefix.
func (e *ScanError) Message() string { return e.Msg }

// Position returns the location of the offending literal.
func (e *ScanError) Position() Pos { return e.Pos }

// SyntaxError represents a syntax error: the parser found a token
// other than the one the grammar requires.
type SyntaxError struct {
	Pos      Pos
	Found    Lexeme // the offending token
	Expected string // description of what was expected
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Message()
}

// Message returns the error text without the position prefix.
func (e *SyntaxError) Message() string {
	return fmt.Sprintf("unexpected %s, expected %s", e.Found, e.Expected)
}

// Position returns the location of the offending token.
func (e *SyntaxError) Position() Pos { return e.Pos }
