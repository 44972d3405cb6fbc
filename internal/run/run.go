// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package run abstracts external process execution behind a fake-able seam.
// The normalizer, the OCR stage, and the container runtime all shell out to
// external binaries through a Runner so tests never spawn real processes.
package run

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// LookPath reports where the binary lives on PATH, or an error when
	// it is absent.
	LookPath(file string) (string, error)

	// Run executes the command and returns an error on non-zero exit.
	// The returned error includes the command's combined output, since
	// external converters report diagnostics on stderr.
	Run(name string, args ...string) error

	// RunPiped executes the command with stdin and stdout attached.
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osRunner is the production Runner backed by os/exec.
type osRunner struct{}

func (osRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osRunner) Run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (osRunner) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// Default is the Runner used outside of tests.
var Default Runner = osRunner{}
