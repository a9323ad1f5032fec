package driver

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/you-not-fish/stackcc/internal/lower"
	"github.com/you-not-fish/stackcc/internal/syntax"
)

// Stage selects which intermediate form Dump prints.
type Stage int

const (
	StageNone    Stage = iota // compile normally
	StageTokens               // token stream
	StageAST                  // raw syntax tree as text
	StageASTJSON              // raw syntax tree as JSON
	StageLowered              // lowered program
)

var stageNames = [...]string{
	StageNone:    "none",
	StageTokens:  "tokens",
	StageAST:     "ast",
	StageASTJSON: "ast-json",
	StageLowered: "lowered",
}

func (s Stage) String() string {
	if s >= 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Dump runs the pipeline over f up to stage and prints that stage's
// result to w.
func Dump(stage Stage, f *syntax.File, w io.Writer) error {
	toks, err := syntax.Tokenize(f)
	if err != nil {
		return err
	}
	if stage == StageTokens {
		return dumpTokens(w, toks)
	}

	raw, err := syntax.Parse(toks)
	if err != nil {
		return err
	}
	switch stage {
	case StageAST:
		syntax.Fprint(w, raw)
		return nil
	case StageASTJSON:
		return syntax.FprintJSON(w, raw)
	}

	prog, err := lower.Analyze(raw)
	if err != nil {
		return err
	}
	if stage == StageLowered {
		lower.Fprint(w, prog)
		return nil
	}
	return errors.Errorf("nothing to dump for stage %s", stage)
}

func dumpTokens(w io.Writer, toks []syntax.Lexeme) error {
	if _, err := fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20)); err != nil {
		return err
	}
	for _, tok := range toks {
		if _, err := fmt.Fprintf(w, "%-20s %-12s %s\n", tok.Pos, tok.Tok, formatLiteral(tok.Lit)); err != nil {
			return err
		}
	}
	return nil
}

// formatLiteral quotes a literal for display. Literals never hold quotes
// or control characters.
func formatLiteral(lit string) string {
	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(lit)
	b.WriteByte('"')
	return b.String()
}
