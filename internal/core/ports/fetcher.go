package ports

import (
	"context"
	"io"
	"os"
)

// Fetcher downloads remote artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Open streams the body of the given URL. The caller must close the
	// returned reader.
	Open(ctx context.Context, url string) (io.ReadCloser, error)

	// FetchFile downloads the given URL to destPath with the given file mode.
	// The write goes to a temporary path and is renamed into place only on
	// success, so a failed download never leaves a corrupt file at destPath.
	FetchFile(ctx context.Context, url, destPath string, mode os.FileMode) error
}
