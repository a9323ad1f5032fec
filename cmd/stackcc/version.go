package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/stackcc/internal/rtabi"
)

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "stackcc version %s\n", Version)
			fmt.Fprintf(a.stdout, "go version %s\n", runtime.Version())
			fmt.Fprintf(a.stdout, "target %s/%s\n", rtabi.GOOS, rtabi.GOARCH)
		},
	}
}

func (a *app) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check for the tools needed to assemble and link the output",
		Args:  cobra.NoArgs,
		Run: a.runFunc(func(cmd *cobra.Command, args []string) error {
			return a.runDoctor()
		}),
	}
}

// runDoctor reports the host and the assembler toolchain.
func (a *app) runDoctor() error {
	w := a.stdout
	fmt.Fprintln(w, "stackcc Toolchain Doctor")
	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w)

	ok := true
	host := runtime.GOOS + "/" + runtime.GOARCH
	fmt.Fprintf(w, "host:    %s", host)
	if runtime.GOOS == rtabi.GOOS && runtime.GOARCH == rtabi.GOARCH {
		fmt.Fprintln(w, " ✓")
	} else {
		fmt.Fprintf(w, " (output targets %s/%s, cannot run here)\n", rtabi.GOOS, rtabi.GOARCH)
	}

	ccVersion, ccOk := checkTool("cc", "--version")
	fmt.Fprintf(w, "cc:      %s", ccVersion)
	if ccOk {
		fmt.Fprintln(w, " ✓")
	} else {
		fmt.Fprintln(w, " ✗ (not found)")
		ok = false
	}

	asVersion, asOk := checkTool("as", "--version")
	fmt.Fprintf(w, "as:      %s", asVersion)
	if asOk {
		fmt.Fprintln(w, " ✓")
	} else {
		fmt.Fprintln(w, " (optional, not found)")
	}

	fmt.Fprintln(w)
	if !ok {
		return errors.New("some required tools are missing")
	}
	fmt.Fprintln(w, "All required tools available!")
	return nil
}

// checkTool runs a tool with the given arguments and returns the first line of output.
func checkTool(name string, args ...string) (string, bool) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", false
	}

	line, _, _ := strings.Cut(string(out), "\n")
	line = strings.TrimSpace(line)
	if len(line) > 60 {
		line = line[:57] + "..."
	}
	return line, true
}
