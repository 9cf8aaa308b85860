package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Timdpr/atsp-approximation/internal/adapters/config"
	"github.com/Timdpr/atsp-approximation/internal/adapters/logger"
	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "provision.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader() *config.Loader {
	return config.NewLoader(logger.NewWithWriter(io.Discard))
}

func TestLoad_FullPipeline(t *testing.T) {
	path := writeManifest(t, `
version: "1"
targets:
  graph-lib-src:
    action: fetch-archive
    url: http://example.com/lemon-1.3.1.tar.gz
    destDir: vendor/lemon-src
  graph-lib:
    action: build-external
    sourceDir: vendor/lemon-src/lemon-1.3.1
    buildDir: vendor/lemon-src/lemon-1.3.1/build
    installDir: vendor/lemon
    dependsOn: [graph-lib-src]
  vc-solver:
    action: compile
    sources: [solver/vc_solver.cpp]
    output: bin/vc_solver
    includeDirs: [vendor/lemon/include]
    dependsOn: [graph-lib]
  concorde:
    action: fetch-executable
    url: http://example.com/concorde
    destPath: bin/concorde
  atsp-data:
    action: fetch-archive
    url: http://example.com/ALL_atsp.tar.gz
    destDir: data/atsp
  atsp-instances:
    action: decompress-dir
    dir: data/atsp
    dependsOn: [atsp-data]
  python-deps:
    action: install-deps
    manifestDir: .
`)

	g, err := newLoader().Load(path)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	assert.Equal(t, 7, g.Len())

	// Prerequisites come before dependents in the walk.
	pos := make(map[string]int)
	i := 0
	for target := range g.Walk() {
		pos[target.Name.String()] = i
		i++
	}
	assert.Less(t, pos["graph-lib-src"], pos["graph-lib"])
	assert.Less(t, pos["graph-lib"], pos["vc-solver"])
	assert.Less(t, pos["atsp-data"], pos["atsp-instances"])
}

func TestLoad_DerivedOutputs(t *testing.T) {
	path := writeManifest(t, `
version: "1"
targets:
  lib:
    action: build-external
    sourceDir: src
    buildDir: src/build
    installDir: vendor/lib
  one-file:
    action: decompress
    path: data/br17.atsp.gz
`)

	g, err := newLoader().Load(path)
	require.NoError(t, err)

	lib, ok := g.Get(domain.NewInternedString("lib"))
	require.True(t, ok)
	assert.Equal(t, []string{"vendor/lib"}, lib.OutputPaths())

	one, ok := g.Get(domain.NewInternedString("one-file"))
	require.True(t, ok)
	assert.Equal(t, []string{"data/br17.atsp"}, one.OutputPaths())
}

func TestLoad_InstallDepsDefaults(t *testing.T) {
	path := writeManifest(t, `
version: "1"
targets:
  python-deps:
    action: install-deps
    manifestDir: pydeps
`)

	g, err := newLoader().Load(path)
	require.NoError(t, err)

	target, ok := g.Get(domain.NewInternedString("python-deps"))
	require.True(t, ok)
	assert.Equal(t, "pip3", target.Action.Tool)
	assert.Empty(t, target.Outputs)
	require.NotNil(t, target.Probe)
	assert.Equal(t, filepath.Join("pydeps", ".provision-pip-stamp"), target.Probe.Path)
	assert.Equal(t, filepath.Join("pydeps", "requirements.txt"), target.Probe.NewerThan)
}

func TestLoad_MissingPrerequisite(t *testing.T) {
	path := writeManifest(t, `
version: "1"
targets:
  solver:
    action: compile
    sources: [main.cpp]
    output: bin/solver
    dependsOn: [missing]
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "missing prerequisite")
}

func TestLoad_UnknownActionKind(t *testing.T) {
	path := writeManifest(t, `
version: "1"
targets:
  odd:
    action: teleport
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown action kind")
}

func TestLoad_MissingActionField(t *testing.T) {
	path := writeManifest(t, `
version: "1"
targets:
  partial:
    action: fetch-archive
    url: http://example.com/a.tar.gz
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid action")
}

func TestLoad_ReservedTargetName(t *testing.T) {
	path := writeManifest(t, `
version: "1"
targets:
  all:
    action: decompress
    path: data/x.gz
`)

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "reserved")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeManifest(t, "targets: [not: a: map")

	_, err := newLoader().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse manifest file")
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := newLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read manifest file")
}
