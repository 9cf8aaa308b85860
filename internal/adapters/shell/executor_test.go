package shell_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	"github.com/Timdpr/atsp-approximation/internal/adapters/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_Success(t *testing.T) {
	var buf bytes.Buffer
	e := shell.NewExecutor(logger.NewWithWriter(&buf))

	err := e.Execute(context.Background(), []string{"sh", "-c", "echo configuring"}, "")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "configuring")
}

func TestExecute_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	e := shell.NewExecutor(logger.NewWithWriter(&buf))

	err := e.Execute(context.Background(), []string{"sh", "-c", "touch built.marker"}, dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "built.marker"))
}

func TestExecute_NonZeroExit(t *testing.T) {
	var buf bytes.Buffer
	e := shell.NewExecutor(logger.NewWithWriter(&buf))

	err := e.Execute(context.Background(), []string{"sh", "-c", "echo broken >&2; exit 3"}, "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
	assert.Contains(t, buf.String(), "broken")
}

func TestExecute_CommandNotFound(t *testing.T) {
	e := shell.NewExecutor(logger.NewWithWriter(&bytes.Buffer{}))

	err := e.Execute(context.Background(), []string{"definitely-not-a-real-tool-xyz"}, "")
	require.Error(t, err)
}

func TestExecute_EmptyCommand(t *testing.T) {
	e := shell.NewExecutor(logger.NewWithWriter(&bytes.Buffer{}))

	err := e.Execute(context.Background(), nil, "")
	require.Error(t, err)
}

func TestExecute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := shell.NewExecutor(logger.NewWithWriter(&bytes.Buffer{}))
	err := e.Execute(ctx, []string{"sleep", "10"}, "")
	require.Error(t, err)
}
