package main

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipFile(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func TestRun_BuildAndClean(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	gzipFile(t, filepath.Join(tmpDir, "br17.atsp.gz"), "17 cities")

	manifest := `version: "1"
targets:
  instance:
    action: decompress
    path: br17.atsp.gz
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "provision.yaml"), []byte(manifest), 0o600))

	exitCode := run([]string{"build"})
	assert.Equal(t, 0, exitCode)
	assert.FileExists(t, filepath.Join(tmpDir, "br17.atsp"))

	// Second run performs no work and still succeeds.
	assert.Equal(t, 0, run([]string{"build"}))

	assert.Equal(t, 0, run([]string{"clean"}))
	assert.NoFileExists(t, filepath.Join(tmpDir, "br17.atsp"))
}

func TestRun_MissingManifest(t *testing.T) {
	chdir(t, t.TempDir())

	exitCode := run([]string{"build"})
	assert.Equal(t, 1, exitCode)
}

func TestRun_UnknownTarget(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	gzipFile(t, filepath.Join(tmpDir, "a.gz"), "data")
	manifest := `version: "1"
targets:
  a:
    action: decompress
    path: a.gz
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "provision.yaml"), []byte(manifest), 0o600))

	exitCode := run([]string{"build", "nope"})
	assert.Equal(t, 1, exitCode)
}

func TestRun_Version(t *testing.T) {
	assert.Equal(t, 0, run([]string{"version"}))
}
