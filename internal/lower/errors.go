package lower

import "github.com/you-not-fish/stackcc/internal/syntax"

// InvalidAssignTargetError reports an assignment or increment whose
// target is not a variable.
type InvalidAssignTargetError struct {
	Pos syntax.Pos
}

func (e *InvalidAssignTargetError) Error() string {
	return e.Pos.String() + ": " + e.Message()
}

// Message returns the error text without the position prefix.
func (e *InvalidAssignTargetError) Message() string {
	return "must be a modifiable value"
}

// Position returns the location of the offending target.
func (e *InvalidAssignTargetError) Position() syntax.Pos { return e.Pos }
