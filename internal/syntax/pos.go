package syntax

import (
	"fmt"
	"strings"
)

// File is the complete text of one compiled unit.
// It is shared by every Pos created from it and never modified.
type File struct {
	name string
	text string
}

// NewFile creates a File holding the given source text.
func NewFile(name, text string) *File {
	return &File{name: name, text: text}
}

// Name returns the source file name.
func (f *File) Name() string { return f.name }

// Text returns the full source text.
func (f *File) Text() string { return f.text }

// line returns the text of the 1-based line n without its newline.
func (f *File) line(n uint32) string {
	text := f.text
	for i := uint32(1); i < n; i++ {
		j := strings.IndexByte(text, '\n')
		if j < 0 {
			return ""
		}
		text = text[j+1:]
	}
	if j := strings.IndexByte(text, '\n'); j >= 0 {
		text = text[:j]
	}
	return text
}

// Pos represents a position in a source file.
// The zero value is an invalid position.
type Pos struct {
	file *File  // source file
	line uint32 // 1-based line number
	col  uint32 // 1-based column number (character offset in line)
}

// NewPos creates a new Pos in file f with the given line and column.
// Line and column numbers are 1-based.
func NewPos(f *File, line, col uint32) Pos {
	return Pos{file: f, line: line, col: col}
}

// String returns a string representation of the position in the format
// "filename:line:col" or "line:col" if there is no filename.
func (p Pos) String() string {
	if name := p.Filename(); name != "" {
		return fmt.Sprintf("%s:%d:%d", name, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid.
// A position is valid if line > 0.
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Filename returns the source file name.
func (p Pos) Filename() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// File returns the file the position belongs to, or nil.
func (p Pos) File() *File {
	return p.file
}

// LineText returns the full text of the line containing p.
func (p Pos) LineText() string {
	if p.file == nil || !p.IsValid() {
		return ""
	}
	return p.file.line(p.line)
}

// Caret returns a line that points at the column of p with a '^'.
// Tabs in the source line before the column are kept so the caret
// lines up under any tab width.
func (p Pos) Caret() string {
	if p.col <= 1 {
		return "^"
	}
	line := []rune(p.LineText())
	var b strings.Builder
	for i := 0; i < int(p.col-1); i++ {
		if i < len(line) && line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}
