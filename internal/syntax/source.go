package syntax

// char is one source character together with its position.
type char struct {
	pos Pos
	ch  rune // -1 for the end sentinel
}

// source is a character reader with position tracking.
// The whole file is decoded up front into (position, character) pairs
// followed by a sentinel, so lookahead never has to re-decode.
type source struct {
	chars []char
	offs  int // index of the current character
}

// newSource decodes f into a source positioned at its first character.
//
// Position tracking: a newline is located at the end of the line it
// terminates; the character after it starts the next line at column 1.
func newSource(f *File) *source {
	s := &source{}
	line, col := uint32(1), uint32(1)
	for _, r := range f.text {
		s.chars = append(s.chars, char{pos: NewPos(f, line, col), ch: r})
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	s.chars = append(s.chars, char{pos: NewPos(f, line, col), ch: -1})
	return s
}

// ch returns the current character, -1 at EOF.
func (s *source) ch() rune {
	return s.chars[s.offs].ch
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return s.chars[s.offs].pos
}

// peek returns the character n positions ahead of the current one,
// or -1 past the end.
func (s *source) peek(n int) rune {
	if i := s.offs + n; i < len(s.chars) {
		return s.chars[i].ch
	}
	return -1
}

// nextch advances to the next character. It stops at the sentinel.
func (s *source) nextch() {
	if s.offs < len(s.chars)-1 {
		s.offs++
	}
}

// advance skips n characters.
func (s *source) advance(n int) {
	for ; n > 0; n-- {
		s.nextch()
	}
}

// eof reports whether all characters were consumed.
func (s *source) eof() bool {
	return s.ch() < 0
}

// startsWith reports whether the remaining input begins with lit.
func (s *source) startsWith(lit string) bool {
	i := 0
	for _, r := range lit {
		if s.peek(i) != r {
			return false
		}
		i++
	}
	return true
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r separates tokens.
func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
