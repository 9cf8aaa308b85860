// Package runner executes target actions by dispatching on their kind.
package runner

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
)

var _ ports.Runner = (*Runner)(nil)

// Runner dispatches actions to the fetch, archive, shell and installer
// adapters. It never cleans up a failed action; incomplete work lands on
// temporary paths inside the adapters and only moves into place on success.
type Runner struct {
	fetcher   ports.Fetcher
	archiver  ports.Archiver
	executor  ports.Executor
	installer ports.DepInstaller
	logger    ports.Logger
}

// New creates a new Runner.
func New(
	fetcher ports.Fetcher,
	archiver ports.Archiver,
	executor ports.Executor,
	installer ports.DepInstaller,
	logger ports.Logger,
) *Runner {
	return &Runner{
		fetcher:   fetcher,
		archiver:  archiver,
		executor:  executor,
		installer: installer,
		logger:    logger,
	}
}

// Run executes the target's action. Errors carry the action kind and the
// operation that failed.
func (r *Runner) Run(ctx context.Context, target *domain.Target) error {
	action := target.Action

	var err error
	switch action.Kind {
	case domain.ActionFetchArchive:
		err = r.fetchArchive(ctx, action)
	case domain.ActionFetchExecutable:
		err = r.fetchExecutable(ctx, action)
	case domain.ActionBuildExternal:
		err = r.buildExternal(ctx, action)
	case domain.ActionCompile:
		err = r.compile(ctx, action)
	case domain.ActionInstallDeps:
		err = r.installDeps(ctx, target)
	case domain.ActionDecompress:
		err = r.decompress(action)
	default:
		// decompress-dir is expanded before it ever reaches the runner.
		return zerr.With(domain.ErrUnknownActionKind, "kind", string(action.Kind))
	}

	if err != nil {
		failure := zerr.With(zerr.Wrap(err, "action failed"), "target", target.Name.String())
		return zerr.With(failure, "kind", string(action.Kind))
	}
	return nil
}

func (r *Runner) fetchArchive(ctx context.Context, action domain.Action) error {
	body, err := r.fetcher.Open(ctx, action.URL)
	if err != nil {
		return zerr.Wrap(err, "fetch archive")
	}
	defer func() { _ = body.Close() }()

	if err := r.archiver.ExtractTarGz(body, action.DestDir); err != nil {
		return zerr.Wrap(err, "extract archive")
	}
	return nil
}

func (r *Runner) fetchExecutable(ctx context.Context, action domain.Action) error {
	if err := r.fetcher.FetchFile(ctx, action.URL, action.DestPath, 0o755); err != nil {
		return zerr.Wrap(err, "fetch executable")
	}
	return nil
}

// buildExternal runs the configure step and then the build+install step in
// the build directory. A configure failure aborts before the build runs.
func (r *Runner) buildExternal(ctx context.Context, action domain.Action) error {
	if err := os.MkdirAll(action.BuildDir, 0o755); err != nil {
		return zerr.Wrap(err, "create build dir")
	}

	installDir, err := filepath.Abs(action.InstallDir)
	if err != nil {
		return zerr.Wrap(err, "resolve install dir")
	}
	sourceDir, err := filepath.Abs(action.SourceDir)
	if err != nil {
		return zerr.Wrap(err, "resolve source dir")
	}

	configure := []string{"cmake", "-DCMAKE_INSTALL_PREFIX=" + installDir, sourceDir}
	if err := r.executor.Execute(ctx, configure, action.BuildDir); err != nil {
		return zerr.Wrap(err, "configure")
	}

	if err := r.executor.Execute(ctx, []string{"make", "install"}, action.BuildDir); err != nil {
		return zerr.Wrap(err, "build and install")
	}
	return nil
}

func (r *Runner) compile(ctx context.Context, action domain.Action) error {
	if err := os.MkdirAll(filepath.Dir(action.OutputPath), 0o755); err != nil {
		return zerr.Wrap(err, "create output dir")
	}

	argv := []string{action.Compiler}
	for _, dir := range action.IncludeDirs {
		argv = append(argv, "-I", dir)
	}
	argv = append(argv, "-o", action.OutputPath)
	argv = append(argv, action.Sources...)

	if err := r.executor.Execute(ctx, argv, ""); err != nil {
		return zerr.Wrap(err, "compile")
	}
	return nil
}

// installDeps runs the installer and, on success, freshens the target's
// probe stamp so the install is not repeated until the manifest changes.
func (r *Runner) installDeps(ctx context.Context, target *domain.Target) error {
	action := target.Action
	if err := r.installer.Install(ctx, action.ManifestDir, action.Tool); err != nil {
		return zerr.Wrap(err, "install dependencies")
	}

	if target.Probe != nil {
		if err := writeStamp(target.Probe.Path); err != nil {
			return zerr.Wrap(err, "write probe stamp")
		}
	}
	return nil
}

func (r *Runner) decompress(action domain.Action) error {
	out, err := r.archiver.Decompress(action.Path)
	if err != nil {
		return zerr.Wrap(err, "decompress")
	}
	r.logger.Info("decompressed to " + out)
	return nil
}

func writeStamp(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, nil, 0o644)
}
