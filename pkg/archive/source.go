package archive

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/forgekit/bsa-kit/pkg/bsaerr"
)

// DataSource is an opaque provider of one file's bytes. Open may be called
// at most once per write; the writer reads it to completion and closes it.
type DataSource interface {
	// Open returns a fresh reader over the payload and its exact byte
	// length.
	Open() (io.ReadCloser, int64, error)
}

// BytesSource wraps an in-memory byte slice as a DataSource.
type BytesSource []byte

func (b BytesSource) Open() (io.ReadCloser, int64, error) {
	return io.NopCloser(bytes.NewReader(b)), int64(len(b)), nil
}

// FileDataSource wraps a path on a real filesystem as a DataSource.
type FileDataSource string

func (p FileDataSource) Open() (io.ReadCloser, int64, error) {
	f, err := os.Open(string(p))
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", string(p), bsaerr.ErrIo)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat %s: %w", string(p), bsaerr.ErrIo)
	}
	return f, info.Size(), nil
}

// FileSource is one file to be written into an archive.
type FileSource struct {
	Name string
	Data DataSource
	// Compressed, when non-nil, overrides the archive's CompressedArchive
	// default for this file only.
	Compressed *bool
}

// NewFileSource builds a FileSource with no per-file compression override.
func NewFileSource(name string, data DataSource) FileSource {
	return FileSource{Name: name, Data: data}
}

// WithCompressed returns a copy of f with an explicit per-file compression
// override.
func (f FileSource) WithCompressed(compressed bool) FileSource {
	f.Compressed = &compressed
	return f
}

// DirSource is one directory's worth of files to be written into an
// archive. The writer rejects a DirSource with zero files as BadInput.
type DirSource struct {
	Name  string
	Files []FileSource
}

func NewDirSource(name string, files ...FileSource) DirSource {
	return DirSource{Name: name, Files: files}
}

// DirSourceFromFS walks root on the real filesystem and builds a single
// DirSource named name from its immediate file entries. This is a thin
// illustration of the filesystem-traversal collaborator the core library
// expects, not a general-purpose recursive archiver: it does not descend
// into subdirectories, since the archive model is a flat directory-of-files
// tree rather than a nested filesystem.
func DirSourceFromFS(root, name string) (DirSource, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return DirSource{}, fmt.Errorf("read dir %s: %w", root, bsaerr.ErrIo)
	}
	dir := DirSource{Name: name}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		dir.Files = append(dir.Files, NewFileSource(e.Name(), FileDataSource(filepath.Join(root, e.Name()))))
	}
	return dir, nil
}
