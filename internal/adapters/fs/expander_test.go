package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Timdpr/atsp-approximation/internal/adapters/fs"
	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fanOutTarget(dir, suffix string) *domain.Target {
	return &domain.Target{
		Name: domain.NewInternedString("atsp-instances"),
		Action: domain.Action{
			Kind:   domain.ActionDecompressDir,
			Dir:    dir,
			Suffix: suffix,
		},
	}
}

func TestExpander_DiscoversMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"br17.atsp.gz", "ft53.atsp.gz", "readme.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	expanded, err := fs.NewExpander().Expand(fanOutTarget(dir, ".gz"))
	require.NoError(t, err)
	require.Len(t, expanded, 2)

	assert.Equal(t, "atsp-instances:br17.atsp.gz", expanded[0].Name.String())
	assert.Equal(t, domain.ActionDecompress, expanded[0].Action.Kind)
	assert.Equal(t, filepath.Join(dir, "br17.atsp.gz"), expanded[0].Action.Path)
	assert.Equal(t, []string{filepath.Join(dir, "br17.atsp")}, expanded[0].OutputPaths())
	assert.Equal(t, []string{filepath.Join(dir, "ft53.atsp")}, expanded[1].OutputPaths())
}

func TestExpander_EmptyDirectory(t *testing.T) {
	expanded, err := fs.NewExpander().Expand(fanOutTarget(t.TempDir(), ".gz"))
	require.NoError(t, err)
	assert.Empty(t, expanded)
}

func TestExpander_EvaluatedFresh(t *testing.T) {
	// The file set is not fixed at declaration time: a file added between
	// evaluations shows up in the next expansion.
	dir := t.TempDir()
	target := fanOutTarget(dir, ".gz")
	expander := fs.NewExpander()

	expanded, err := expander.Expand(target)
	require.NoError(t, err)
	assert.Empty(t, expanded)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "late.gz"), []byte("x"), 0o600))
	expanded, err = expander.Expand(target)
	require.NoError(t, err)
	assert.Len(t, expanded, 1)
}

func TestExpander_RejectsNonFanOut(t *testing.T) {
	target := &domain.Target{
		Name:   domain.NewInternedString("bin"),
		Action: domain.Action{Kind: domain.ActionCompile},
	}
	_, err := fs.NewExpander().Expand(target)
	require.Error(t, err)
	assert.ErrorContains(t, err, "fan-out")
}
