// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkgship/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs argv in dir, streaming stdout and stderr to the logger.
// The child inherits the parent environment unchanged; formatter and
// installer commands are expected to resolve their own toolchains.
func (e *Executor) Execute(ctx context.Context, argv []string, dir string) error {
	if len(argv) == 0 {
		return zerr.New("empty command")
	}

	name := argv[0]
	args := argv[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // user provided command
	if dir != "" {
		cmd.Dir = dir
	}

	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1 // Unknown or signal
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", name), "exit_code", exitCode)
	}

	return nil
}

// logWriter forwards process output to the logger line by line.
// Write may be called with partial lines; splitting on newlines keeps the
// log output readable without a full line buffer.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	msg := string(p)
	lines := strings.Split(strings.TrimSuffix(msg, "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
