// Package shell provides the external process executor adapter.
package shell

import (
	"context"
	"os/exec"
	"strings"

	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

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

// Execute runs argv[0] with the remaining arguments in the given working
// directory. The child inherits the parent environment; stdout and stderr
// are streamed line-wise to the logger. External build tools may
// parallelize internally, which is why no two executions ever run
// concurrently here.
func (e *Executor) Execute(ctx context.Context, argv []string, dir string) error {
	if len(argv) == 0 {
		return zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // command comes from the manifest
	cmd.Dir = dir
	cmd.Stdout = &logWriter{logger: e.logger, level: "info"}
	cmd.Stderr = &logWriter{logger: e.logger, level: "error"}

	e.logger.Info("running " + strings.Join(argv, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		cmdErr := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(argv, " "))
		return zerr.With(cmdErr, "exit_code", exitCode)
	}

	return nil
}

// logWriter forwards process output to the logger one line at a time.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if line == "" {
			continue
		}
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
