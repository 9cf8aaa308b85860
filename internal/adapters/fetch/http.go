// Package fetch provides the HTTP fetcher adapter.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fetcher = (*HTTPFetcher)(nil)

// partialSuffix marks in-flight downloads. A crashed run leaves the partial
// file behind; the next run simply overwrites it and the final path is only
// ever written by a successful rename.
const partialSuffix = ".partial"

// HTTPFetcher implements ports.Fetcher using net/http.
type HTTPFetcher struct {
	client *http.Client
	logger ports.Logger
}

// NewFetcher creates a new HTTPFetcher using the default HTTP client.
func NewFetcher(logger ports.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: http.DefaultClient,
		logger: logger,
	}
}

// NewFetcherWithClient creates a new HTTPFetcher with a custom client.
func NewFetcherWithClient(client *http.Client, logger ports.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: client,
		logger: logger,
	}
}

// Open streams the body of the given URL.
func (f *HTTPFetcher) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		statusErr := zerr.With(domain.ErrFetchFailed, "url", url)
		return nil, zerr.With(statusErr, "status", resp.Status)
	}

	return resp.Body, nil
}

// FetchFile downloads the given URL to destPath with the given mode. The
// body is written to a partial file and renamed into place on success, so
// an interrupted download never yields a corrupt file at the final path.
func (f *HTTPFetcher) FetchFile(ctx context.Context, url, destPath string, mode os.FileMode) error {
	body, err := f.Open(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close() //nolint:errcheck // best effort close in defer

	if err := os.MkdirAll(filepath.Dir(destPath), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", destPath)
	}

	tmpPath := destPath + partialSuffix
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // path derives from manifest
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", tmpPath)
	}

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", tmpPath)
	}

	// The mode passed to OpenFile is masked by the umask; chmod makes the
	// executable bit stick before the file reaches its final name.
	if err := os.Chmod(tmpPath, mode); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", tmpPath)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", destPath)
	}

	f.logger.Info("fetched " + url)
	return nil
}
