// Package pip provides the Python dependency installer adapter.
package pip

import (
	"context"
	"os/exec"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DepInstaller = (*Installer)(nil)

// requirementsFile is the manifest the installer is run against.
const requirementsFile = "requirements.txt"

// remediation names the exact command to run when the tool is absent.
const remediation = "python3 -m ensurepip --upgrade"

// Installer implements ports.DepInstaller by invoking pip against a
// requirements file.
type Installer struct {
	executor ports.Executor
}

// NewInstaller creates a new Installer.
func NewInstaller(executor ports.Executor) *Installer {
	return &Installer{executor: executor}
}

// Install checks that the installer tool exists on PATH, then runs
// `<tool> install -r requirements.txt` in manifestDir. The missing-tool
// error carries a remediation hint and fires before anything is attempted.
func (i *Installer) Install(ctx context.Context, manifestDir, tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		toolErr := zerr.With(domain.ErrMissingTool, "tool", tool)
		return zerr.With(toolErr, "remediation", remediation)
	}

	argv := []string{tool, "install", "-r", requirementsFile}
	if err := i.executor.Execute(ctx, argv, manifestDir); err != nil {
		return zerr.With(zerr.Wrap(err, "dependency install failed"), "tool", tool)
	}

	return nil
}
