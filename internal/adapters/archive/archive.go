// Package archive provides tarball extraction and gzip decompression.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Timdpr/atsp-approximation/internal/core/domain"
	"github.com/Timdpr/atsp-approximation/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Archiver)(nil)

const partialSuffix = ".partial"

// Archiver implements ports.Archiver on top of archive/tar and compress/gzip.
type Archiver struct {
	logger ports.Logger
}

// NewArchiver creates a new Archiver.
func NewArchiver(logger ports.Logger) *Archiver {
	return &Archiver{logger: logger}
}

// ExtractTarGz unpacks a gzipped tarball stream into destDir. The unpack
// happens in a partial sibling directory that replaces destDir only once
// the whole stream was consumed, so destDir's existence signals a complete
// extraction. A tarball that wraps everything in a single versioned
// directory (the dist-tarball convention) has that directory stripped:
// its contents land directly in destDir.
func (a *Archiver) ExtractTarGz(r io.Reader, destDir string) error {
	tmpDir := destDir + partialSuffix
	if err := os.RemoveAll(tmpDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", tmpDir)
	}
	if err := os.MkdirAll(tmpDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", tmpDir)
	}

	if err := a.unpack(r, tmpDir); err != nil {
		return err
	}

	srcDir := tmpDir
	if sole, ok := soleSubdir(tmpDir); ok {
		srcDir = sole
	}

	if err := os.RemoveAll(destDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", destDir)
	}
	if err := os.Rename(srcDir, destDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", destDir)
	}
	if srcDir != tmpDir {
		if err := os.RemoveAll(tmpDir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", tmpDir)
		}
	}

	a.logger.Info("extracted archive into " + destDir)
	return nil
}

// soleSubdir returns the single top-level directory of dir, if that
// directory is all dir contains.
func soleSubdir(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 || !entries[0].IsDir() {
		return "", false
	}
	return filepath.Join(dir, entries[0].Name()), true
}

func (a *Archiver) unpack(r io.Reader, dir string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer gz.Close() //nolint:errcheck // best effort close in defer

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(err, domain.ErrExtractFailed.Error())
		}

		path, err := securePath(dir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(path, 0o750); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", path)
			}
		case tar.TypeReg:
			if err := writeEntry(path, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		default:
			// Symlinks and special files never occur in the archives this
			// tool consumes; skip rather than fail.
			continue
		}
	}
}

// securePath joins an archive entry name onto dir, refusing entries that
// would escape it.
func securePath(dir, name string) (string, error) {
	path := filepath.Join(dir, filepath.Clean(name))
	if rel, err := filepath.Rel(dir, path); err != nil || strings.HasPrefix(rel, "..") {
		return "", zerr.With(domain.ErrExtractFailed, "entry", name)
	}
	return path, nil
}

func writeEntry(path string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // path validated by securePath
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", path)
	}

	if _, err := io.Copy(f, r); err != nil { //nolint:gosec // archive sources are trusted manifest URLs
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrExtractFailed.Error()), "path", path)
	}

	return f.Close()
}

// Decompress writes the decompressed form of the gzip file at path next to
// it, with the compression suffix stripped, and returns the output path.
// An existing output makes the call a no-op: decompression is idempotent
// and detected by output existence, never re-attempted.
func (a *Archiver) Decompress(path string) (string, error) {
	out := strings.TrimSuffix(path, filepath.Ext(path))
	if out == path {
		return "", zerr.With(domain.ErrDecompressFailed, "path", path)
	}

	if _, err := os.Stat(out); err == nil {
		return out, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecompressFailed.Error()), "path", out)
	}

	in, err := os.Open(path) //nolint:gosec // path derives from manifest
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecompressFailed.Error()), "path", path)
	}
	defer in.Close() //nolint:errcheck // best effort close in defer

	gz, err := gzip.NewReader(in)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecompressFailed.Error()), "path", path)
	}
	defer gz.Close() //nolint:errcheck // best effort close in defer

	tmpPath := out + partialSuffix
	tmp, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // sibling of manifest path
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecompressFailed.Error()), "path", tmpPath)
	}

	if _, err := io.Copy(tmp, gz); err != nil { //nolint:gosec // dataset files are small
		_ = tmp.Close()
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecompressFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecompressFailed.Error()), "path", tmpPath)
	}

	if err := os.Rename(tmpPath, out); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDecompressFailed.Error()), "path", out)
	}

	return out, nil
}
