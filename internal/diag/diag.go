// Package diag renders compiler errors for display and defines the error
// kind used for violated internal invariants.
package diag

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/you-not-fish/stackcc/internal/syntax"
)

// Positioned is implemented by errors that point at a source location.
type Positioned interface {
	error
	Position() syntax.Pos
	Message() string
}

// Render returns the human-readable form of err. A positioned error with
// a valid position renders as
//
//	file:line
//	<source line>
//	<spaces>^
//	<message>
//
// A multi-unit error renders each of its errors in turn. Anything else
// renders as err.Error().
func Render(err error) string {
	if err == nil {
		return ""
	}

	if multi, ok := err.(*multierror.Error); ok {
		wr := multi.WrappedErrors()
		if len(wr) == 1 {
			return Render(wr[0])
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%d errors occurred:", len(wr))
		for i, werr := range wr {
			fmt.Fprintf(&b, "\n    %d) %s", i, indent(Render(werr), "       "))
		}
		return b.String()
	}

	var p Positioned
	if !errors.As(err, &p) || !p.Position().IsValid() {
		return err.Error()
	}
	pos := p.Position()

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d\n", filename(pos), pos.Line())
	b.WriteString(pos.LineText())
	b.WriteByte('\n')
	b.WriteString(pos.Caret())
	b.WriteByte('\n')
	b.WriteString(p.Message())
	return b.String()
}

func filename(pos syntax.Pos) string {
	if name := pos.Filename(); name != "" {
		return name
	}
	return "<input>"
}

// indent prefixes every line of s but the first.
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
