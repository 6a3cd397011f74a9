// Package runner executes a selected menu command with an embedded POSIX
// shell, so no system shell is required.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/seanodell/vscode-terminal-menu/internal/logging"
)

// Options configures a single run.
type Options struct {
	// Dir is the working directory, normally the project folder.
	Dir string
	// Env defaults to the current process environment.
	Env    []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes command and returns its exit status. A non-zero status is
// not an error; err is reserved for commands that could not be run at all.
func Run(ctx context.Context, command string, opts Options) (int, error) {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, fmt.Errorf("failed to parse command: %w", err)
	}

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	r, err := interp.New(
		interp.Dir(opts.Dir),
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(opts.Stdin, stdout, stderr),
	)
	if err != nil {
		return -1, fmt.Errorf("failed to create shell: %w", err)
	}

	logging.Info().Str("command", command).Str("dir", opts.Dir).Msg("running command")

	err = r.Run(ctx, file)
	status, isExit := interp.IsExitStatus(err)
	switch {
	case err == nil:
		return 0, nil
	case isExit:
		return int(status), nil
	default:
		return -1, err
	}
}
