// Package main implements the stackcc compiler entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/you-not-fish/stackcc/internal/diag"
	"github.com/you-not-fish/stackcc/internal/driver"
)

// Version information
const Version = "0.1.0-dev"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line in args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		// Flag and argument errors; cobra has already printed them.
		return 2
	}
	return a.exitCode
}

type app struct {
	stdout, stderr io.Writer
	exitCode       int

	logToStderr bool
	verbose     int
}

// compileFlags holds the flags that configure a compile.
type compileFlags struct {
	output      string
	suffix      string
	keepGoing   bool
	emitTokens  bool
	emitAST     bool
	astFormat   string
	emitLowered bool
}

func (f *compileFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.output, "output", "o", "", "Output file (single input only)")
	fs.StringVar(&f.suffix, "suffix", driver.DefaultSuffix, "Suffix appended to each input path to name its output")
	fs.BoolVar(&f.keepGoing, "keep-going", false, "Compile every input and report all failures")
	fs.BoolVar(&f.emitTokens, "emit-tokens", false, "Output token stream")
	fs.BoolVar(&f.emitAST, "emit-ast", false, "Output AST")
	fs.StringVar(&f.astFormat, "ast-format", "text", "AST output format (text or json)")
	fs.BoolVar(&f.emitLowered, "emit-lowered", false, "Output the lowered program")
}

// options converts the flags into driver options writing dumps to stdout.
func (f *compileFlags) options(stdout io.Writer) (driver.Options, error) {
	opts := driver.Options{
		Output:    f.output,
		Suffix:    f.suffix,
		KeepGoing: f.keepGoing,
		Stdout:    stdout,
	}

	switch f.astFormat {
	case "text", "json":
	default:
		return opts, errors.Errorf("unknown AST format %q (want text or json)", f.astFormat)
	}

	switch {
	case f.emitTokens:
		opts.Emit = driver.StageTokens
	case f.emitAST && f.astFormat == "json":
		opts.Emit = driver.StageASTJSON
	case f.emitAST:
		opts.Emit = driver.StageAST
	case f.emitLowered:
		opts.Emit = driver.StageLowered
	}
	return opts, nil
}

func (a *app) newRootCmd() *cobra.Command {
	var flags compileFlags

	cmd := &cobra.Command{
		Use:          "stackcc [flags] file...",
		Short:        "Compile a C subset to x86-64 assembly",
		Long:         "stackcc compiles each input file into an x86-64 assembly file (Intel syntax) defining a single global main function.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(a.logToStderr, a.verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
		Run: a.runFunc(func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(a.stdout)
			if err != nil {
				return err
			}
			return driver.Run(args, opts)
		}),
	}

	flags.register(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("emit-tokens", "emit-ast", "emit-lowered")

	cmd.PersistentFlags().BoolVar(&a.logToStderr, "logtostderr", false,
		"Log to stderr instead of to files")
	cmd.PersistentFlags().IntVarP(&a.verbose, "verbose", "v", 0,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")

	cmd.AddCommand(a.newVersionCmd())
	cmd.AddCommand(a.newDoctorCmd())
	return cmd
}

// runFunc wraps a command body so that a failure is reported on stderr and
// sets a non-zero exit code.
func (a *app) runFunc(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := run(cmd, args); err != nil {
			var msg string
			if a.logToStderr {
				msg = detailedError(err)
			} else {
				msg = diag.Render(err)
				glog.V(3).Info(detailedError(err))
			}
			fmt.Fprintln(a.stderr, msg)
			a.exitCode = 1
		}
	}
}

// detailedError renders err and appends the stack trace it carries, if any.
func detailedError(err error) string {
	msg := diag.Render(err)
	var st interface{ StackTrace() errors.StackTrace }
	if errors.As(err, &st) {
		msg += fmt.Sprintf("\n%+v", st.StackTrace())
	}
	return msg
}
