// Package driver connects the compiler stages to files: it reads units,
// runs the pipeline, writes assembly, and applies the multi-unit error
// policy.
package driver

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/you-not-fish/stackcc/internal/codegen"
	"github.com/you-not-fish/stackcc/internal/lower"
	"github.com/you-not-fish/stackcc/internal/syntax"
)

// DefaultSuffix is appended to an input path to name its output.
const DefaultSuffix = ".s"

// Options configures a compiler run.
type Options struct {
	// Output names the output file. It is only valid with a single input.
	Output string

	// Suffix is appended to each input path when Output is empty.
	Suffix string

	// KeepGoing compiles every unit even after a failure and reports all
	// failures together. Otherwise the first failure stops the run.
	KeepGoing bool

	// Emit selects a stage dump instead of compilation.
	Emit Stage

	// Stdout receives stage dumps.
	Stdout io.Writer
}

// DefaultOptions returns the options of a plain compile.
func DefaultOptions() Options {
	return Options{Suffix: DefaultSuffix, Stdout: os.Stdout}
}

// ReadUnit reads the source file at path. A newline is always appended
// to the text.
func ReadUnit(path string) (*syntax.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return syntax.NewFile(path, string(data)+"\n"), nil
}

// Compile runs the whole pipeline over f and writes the assembly to w.
// The first error of any stage is returned as is.
func Compile(f *syntax.File, w io.Writer) error {
	start := time.Now()
	toks, err := syntax.Tokenize(f)
	if err != nil {
		return err
	}
	logStage(f, "lex", start)

	start = time.Now()
	raw, err := syntax.Parse(toks)
	if err != nil {
		return err
	}
	logStage(f, "parse", start)

	start = time.Now()
	prog, err := lower.Analyze(raw)
	if err != nil {
		return err
	}
	logStage(f, "analyze", start)

	start = time.Now()
	if err := codegen.Generate(w, prog); err != nil {
		return err
	}
	logStage(f, "generate", start)
	return nil
}

func logStage(f *syntax.File, stage string, start time.Time) {
	if glog.V(3) {
		glog.Infof("%s: %s took %v", f.Name(), stage, time.Since(start))
	}
}

// OutputPath returns the path the assembly for input is written to.
func OutputPath(input string, opts Options) string {
	if opts.Output != "" {
		return opts.Output
	}
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return input + suffix
}

// CompileFile compiles the unit at path. The output file is only
// created when compilation succeeds.
func CompileFile(path string, opts Options) error {
	f, err := ReadUnit(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Compile(f, &buf); err != nil {
		return err
	}

	out := OutputPath(path, opts)
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", out)
	}
	glog.V(1).Infof("%s: wrote %s (%d bytes)", path, out, buf.Len())
	return nil
}

// Run processes every unit in paths. With opts.KeepGoing all failures
// are returned together as a *multierror.Error; otherwise the first
// failure ends the run.
func Run(paths []string, opts Options) error {
	if len(paths) == 0 {
		return errors.New("no input files")
	}
	if opts.Output != "" && len(paths) > 1 {
		return errors.New("an output file can only be named for a single input")
	}

	var result *multierror.Error
	for _, path := range paths {
		err := runUnit(path, opts)
		if err == nil {
			continue
		}
		if !opts.KeepGoing {
			return err
		}
		glog.V(1).Infof("%s: failed, continuing: %v", path, err)
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

func runUnit(path string, opts Options) error {
	if opts.Emit == StageNone {
		return CompileFile(path, opts)
	}
	f, err := ReadUnit(path)
	if err != nil {
		return err
	}
	w := opts.Stdout
	if w == nil {
		w = os.Stdout
	}
	return Dump(opts.Emit, f, w)
}
