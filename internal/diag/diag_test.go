package diag

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/stackcc/internal/syntax"
)

func TestRenderSyntaxError(t *testing.T) {
	f := syntax.NewFile("prog.c", "a = 1;\nreturn (a;\n")
	_, err := syntax.ParseFile(f)
	require.Error(t, err)

	want := "prog.c:2\n" +
		"return (a;\n" +
		"         ^\n" +
		"unexpected \";\", expected ')'"
	assert.Equal(t, want, Render(err))
}

func TestRenderUnexpectedChar(t *testing.T) {
	f := syntax.NewFile("prog.c", "x = 1 @ 2;\n")
	_, err := syntax.Tokenize(f)
	require.Error(t, err)

	lines := strings.Split(Render(err), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "prog.c:1", lines[0])
	assert.Equal(t, "x = 1 @ 2;", lines[1])
	assert.Equal(t, "      ^", lines[2])
	assert.Equal(t, "unexpected character '@'", lines[3])
}

func TestRenderWrappedPositioned(t *testing.T) {
	f := syntax.NewFile("prog.c", "$\n")
	_, err := syntax.Tokenize(f)
	require.Error(t, err)

	wrapped := errors.Wrap(err, "compiling prog.c")
	assert.True(t, strings.HasPrefix(Render(wrapped), "prog.c:1\n$\n^\n"))
}

func TestRenderPlainError(t *testing.T) {
	err := errors.New("open missing.c: no such file or directory")
	assert.Equal(t, err.Error(), Render(err))
	assert.Equal(t, "", Render(nil))
}

func TestRenderInvalidPosition(t *testing.T) {
	err := Unexpectedf(syntax.Pos{}, "stack depth %d", 3)
	assert.Equal(t, "internal compiler error: stack depth 3", Render(err))
}

func TestRenderMultiError(t *testing.T) {
	var result *multierror.Error
	result = multierror.Append(result, errors.New("first"))
	assert.Equal(t, "first", Render(result.ErrorOrNil()))

	f := syntax.NewFile("b.c", "#\n")
	_, err := syntax.Tokenize(f)
	result = multierror.Append(result, err)

	want := "2 errors occurred:\n" +
		"    0) first\n" +
		"    1) b.c:1\n" +
		"       #\n" +
		"       ^\n" +
		"       unexpected character '#'"
	assert.Equal(t, want, Render(result))
}

func TestUnexpectedError(t *testing.T) {
	pos := syntax.NewPos(syntax.NewFile("u.c", "x;\n"), 1, 1)
	err := Unexpectedf(pos, "unbalanced stack: %d", 2)

	assert.Equal(t, "u.c:1:1: internal compiler error: unbalanced stack: 2", err.Error())
	assert.True(t, IsUnexpected(err))
	assert.True(t, IsUnexpected(errors.Wrap(err, "context")))
	assert.False(t, IsUnexpected(errors.New("plain")))

	var ue *UnexpectedError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, pos, ue.Position())
	assert.NotEmpty(t, ue.StackTrace())

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "unbalanced stack: 2")
	assert.Contains(t, detailed, "TestUnexpectedError")
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
}
