// Package forge obtains the raw gas report text, either by running the
// forge test runner or by reading a saved report.
package forge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

var (
	// ErrToolFailed indicates the report command exited with a non-zero status.
	ErrToolFailed = errors.New("gas report command failed")

	// ErrToolLaunch indicates the report command could not be started.
	ErrToolLaunch = errors.New("gas report command could not be started")

	// ErrInvalidOutput indicates the report is not valid UTF-8 text.
	ErrInvalidOutput = errors.New("gas report is not valid UTF-8")
)

// DefaultCommandName is the test runner that prints the gas report
const DefaultCommandName = "forge"

// DefaultArgs are passed to DefaultCommandName
var DefaultArgs = []string{"test", "--gas-report"}

// stderrTailLines is how much of a failed command's stderr ends up in the hint
const stderrTailLines = 20

// Source yields the raw report text
type Source interface {
	Report(ctx context.Context) (string, error)
	String() string
}

// Command runs an external command and returns its stdout
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string // nil inherits the current environment
}

// NewCommand returns a Command for name and args, falling back to
// `forge test --gas-report` when name is empty
func NewCommand(name string, args []string) *Command {
	if name == "" {
		name = DefaultCommandName
		if len(args) == 0 {
			args = DefaultArgs
		}
	}
	return &Command{Name: name, Args: append([]string(nil), args...)}
}

func (c *Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Report runs the command once. Any non-zero exit, launch failure or
// non-UTF-8 output is an error; there is no retry.
func (c *Command) Report(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = errors.Mark(errors.Wrapf(err, "%s", c), ErrToolFailed)
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = errors.WithSecondaryError(err, ctxErr)
			}
			if tail := tailLines(stderr.String(), stderrTailLines); tail != "" {
				err = errors.WithHint(err, tail)
			}
			return "", err
		}
		return "", errors.WithHintf(
			errors.Mark(errors.Wrapf(err, "%s", c), ErrToolLaunch),
			"make sure %q is installed and on your PATH", c.Name)
	}

	if !utf8.Valid(out) {
		return "", errors.Wrapf(ErrInvalidOutput, "%s", c)
	}
	return string(out), nil
}

// ExitCode extracts the command exit status from a Report error, or -1
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// File reads a previously saved report. Path "-" reads from Stdin.
type File struct {
	Path  string
	Stdin io.Reader
}

func (f *File) String() string {
	if f.Path == "-" {
		return "stdin"
	}
	return f.Path
}

// Report reads the whole file
func (f *File) Report(_ context.Context) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.Path == "-" {
		in := f.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(f.Path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "read gas report from %s", f)
	}

	if !utf8.Valid(data) {
		return "", errors.Wrapf(ErrInvalidOutput, "%s", f)
	}
	return string(data), nil
}

func tailLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = append([]string{fmt.Sprintf("... (%d lines omitted)", len(lines)-n)}, lines[len(lines)-n:]...)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
