package ports

import "io"

// Archiver unpacks archives and decompresses files.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// ExtractTarGz unpacks a gzipped tarball stream into destDir. Extraction
	// happens in a temporary sibling directory that is renamed to destDir on
	// success, so destDir's existence signals a complete unpack.
	ExtractTarGz(r io.Reader, destDir string) error

	// Decompress writes the decompressed form of the file at path next to it
	// (suffix stripped) and returns the output path. If the output already
	// exists the call is a no-op.
	Decompress(path string) (string, error)
}
