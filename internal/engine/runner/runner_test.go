package runner_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports/mocks"
	"github.com/Timdpr/atsp-approximation/internal/engine/runner"
)

type fixture struct {
	fetcher   *mocks.MockFetcher
	archiver  *mocks.MockArchiver
	executor  *mocks.MockExecutor
	installer *mocks.MockDepInstaller
	logger    *mocks.MockLogger
	runner    *runner.Runner
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		fetcher:   mocks.NewMockFetcher(ctrl),
		archiver:  mocks.NewMockArchiver(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		installer: mocks.NewMockDepInstaller(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.runner = runner.New(f.fetcher, f.archiver, f.executor, f.installer, f.logger)
	return f
}

func target(name string, action domain.Action) *domain.Target {
	return &domain.Target{
		Name:   domain.NewInternedString(name),
		Action: action,
	}
}

func TestRun_FetchArchive(t *testing.T) {
	f := newFixture(t)
	body := io.NopCloser(strings.NewReader("tarball"))

	f.fetcher.EXPECT().Open(gomock.Any(), "https://example.com/lemon.tar.gz").Return(body, nil)
	f.archiver.EXPECT().ExtractTarGz(body, "deps/lemon-src").Return(nil)

	err := f.runner.Run(context.Background(), target("lemon-src", domain.Action{
		Kind:    domain.ActionFetchArchive,
		URL:     "https://example.com/lemon.tar.gz",
		DestDir: "deps/lemon-src",
	}))
	require.NoError(t, err)
}

func TestRun_FetchArchive_FetchError(t *testing.T) {
	f := newFixture(t)
	f.fetcher.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	err := f.runner.Run(context.Background(), target("lemon-src", domain.Action{
		Kind:    domain.ActionFetchArchive,
		URL:     "https://example.com/lemon.tar.gz",
		DestDir: "deps/lemon-src",
	}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "action failed")
}

func TestRun_FetchExecutable(t *testing.T) {
	f := newFixture(t)
	f.fetcher.EXPECT().
		FetchFile(gomock.Any(), "https://example.com/concorde", "bin/concorde", os.FileMode(0o755)).
		Return(nil)

	err := f.runner.Run(context.Background(), target("concorde", domain.Action{
		Kind:     domain.ActionFetchExecutable,
		URL:      "https://example.com/concorde",
		DestPath: "bin/concorde",
	}))
	require.NoError(t, err)
}

func TestRun_BuildExternal_ConfigureThenInstall(t *testing.T) {
	f := newFixture(t)
	buildDir := filepath.Join(t.TempDir(), "build")

	gomock.InOrder(
		f.executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), buildDir).
			DoAndReturn(func(_ context.Context, argv []string, _ string) error {
				assert.Equal(t, "cmake", argv[0])
				assert.Contains(t, argv[1], "-DCMAKE_INSTALL_PREFIX=")
				return nil
			}),
		f.executor.EXPECT().
			Execute(gomock.Any(), []string{"make", "install"}, buildDir).
			Return(nil),
	)

	err := f.runner.Run(context.Background(), target("lemon", domain.Action{
		Kind:       domain.ActionBuildExternal,
		SourceDir:  "deps/lemon-src",
		BuildDir:   buildDir,
		InstallDir: "deps/lemon",
	}))
	require.NoError(t, err)
	assert.DirExists(t, buildDir)
}

func TestRun_BuildExternal_ConfigureFailureAbortsBuild(t *testing.T) {
	f := newFixture(t)
	buildDir := filepath.Join(t.TempDir(), "build")

	// Only the configure invocation may happen.
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any(), buildDir).Return(assert.AnError)

	err := f.runner.Run(context.Background(), target("lemon", domain.Action{
		Kind:       domain.ActionBuildExternal,
		SourceDir:  "deps/lemon-src",
		BuildDir:   buildDir,
		InstallDir: "deps/lemon",
	}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "configure")
}

func TestRun_Compile(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(t.TempDir(), "bin", "vc_solver")

	f.executor.EXPECT().
		Execute(gomock.Any(), []string{"g++", "-I", "deps/lemon/include", "-o", out, "src/vc_solver.cc"}, "").
		Return(nil)

	err := f.runner.Run(context.Background(), target("vc-solver", domain.Action{
		Kind:        domain.ActionCompile,
		Sources:     []string{"src/vc_solver.cc"},
		OutputPath:  out,
		IncludeDirs: []string{"deps/lemon/include"},
		Compiler:    "g++",
	}))
	require.NoError(t, err)
}

func TestRun_InstallDeps_WritesProbeStamp(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	stamp := filepath.Join(dir, ".provision-pip-stamp")

	f.installer.EXPECT().Install(gomock.Any(), dir, "pip3").Return(nil)

	tgt := target("python-deps", domain.Action{
		Kind:        domain.ActionInstallDeps,
		ManifestDir: dir,
		Tool:        "pip3",
	})
	tgt.Probe = &domain.Probe{Path: stamp, NewerThan: filepath.Join(dir, "requirements.txt")}

	err := f.runner.Run(context.Background(), tgt)
	require.NoError(t, err)
	assert.FileExists(t, stamp)
}

func TestRun_InstallDeps_FailureLeavesNoStamp(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	stamp := filepath.Join(dir, ".provision-pip-stamp")

	f.installer.EXPECT().Install(gomock.Any(), dir, "pip3").Return(assert.AnError)

	tgt := target("python-deps", domain.Action{
		Kind:        domain.ActionInstallDeps,
		ManifestDir: dir,
		Tool:        "pip3",
	})
	tgt.Probe = &domain.Probe{Path: stamp}

	err := f.runner.Run(context.Background(), tgt)
	require.Error(t, err)
	assert.NoFileExists(t, stamp)
}

func TestRun_Decompress(t *testing.T) {
	f := newFixture(t)
	f.archiver.EXPECT().Decompress("data/br17.atsp.gz").Return("data/br17.atsp", nil)

	err := f.runner.Run(context.Background(), target("atsp-instances:br17.atsp.gz", domain.Action{
		Kind: domain.ActionDecompress,
		Path: "data/br17.atsp.gz",
	}))
	require.NoError(t, err)
}

func TestRun_FanOutKindIsRejected(t *testing.T) {
	f := newFixture(t)

	err := f.runner.Run(context.Background(), target("atsp-instances", domain.Action{
		Kind: domain.ActionDecompressDir,
		Dir:  "data",
	}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown action kind")
}
