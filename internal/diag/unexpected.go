package diag

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/you-not-fish/stackcc/internal/syntax"
)

// UnexpectedError reports a violated compiler invariant. It is a bug in
// the compiler, never in the compiled program.
type UnexpectedError struct {
	Pos syntax.Pos // may be invalid
	err error      // carries the message and the stack of the report site
}

// Unexpectedf returns an UnexpectedError recording the caller's stack.
func Unexpectedf(pos syntax.Pos, format string, args ...interface{}) error {
	return &UnexpectedError{Pos: pos, err: errors.Errorf(format, args...)}
}

func (e *UnexpectedError) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Message()
	}
	return e.Message()
}

// Message returns the error text without the position prefix.
func (e *UnexpectedError) Message() string {
	return "internal compiler error: " + e.err.Error()
}

// Position returns the location being compiled when the error occurred.
func (e *UnexpectedError) Position() syntax.Pos { return e.Pos }

// Cause returns the underlying error, which carries the stack trace.
func (e *UnexpectedError) Cause() error { return e.err }

// StackTrace returns the stack of the report site.
func (e *UnexpectedError) StackTrace() errors.StackTrace {
	if st, ok := e.err.(interface{ StackTrace() errors.StackTrace }); ok {
		return st.StackTrace()
	}
	return nil
}

// Unwrap returns the underlying error.
func (e *UnexpectedError) Unwrap() error { return e.err }

// Format prints the stack trace of the report site for %+v.
func (e *UnexpectedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%s\n%+v", e.Error(), e.err)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// IsUnexpected reports whether err is or wraps an UnexpectedError.
func IsUnexpected(err error) bool {
	var ue *UnexpectedError
	return errors.As(err, &ue)
}
