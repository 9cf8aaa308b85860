package ports

import "context"

// DepInstaller invokes a language-level dependency installer against a
// manifest directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type DepInstaller interface {
	// Install runs the installer tool against the manifest in manifestDir.
	// It must verify the tool is present before attempting the install and
	// return a remediation hint when it is not.
	Install(ctx context.Context, manifestDir, tool string) error
}
