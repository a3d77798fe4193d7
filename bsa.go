// Package bsa is the reader/writer facade for Bethesda Softworks Archives:
// a sum-typed Archive that dispatches to the v001 or v10X codec chosen at
// Open time, and a symmetric WriteArchive that selects a variant to emit.
package bsa

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/archive"
	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/forgekit/bsa-kit/pkg/option"
	"github.com/forgekit/bsa-kit/pkg/v001"
	"github.com/forgekit/bsa-kit/pkg/v10x"
	"github.com/forgekit/bsa-kit/pkg/version"
)

// listReader is implemented by both concrete variant readers.
type listReader interface {
	List() ([]archive.DirEntry, error)
	Extract(fe archive.FileEntry, sink io.Writer) error
}

// Archive is the sum-typed reader: Open validates the magic and version,
// then dispatches to the matching concrete codec. The generic backbone in
// pkg/v10x never leaks through this type.
type Archive struct {
	version version.Version
	reader  listReader
	opts    option.OpenOptions
}

// Open reads the magic and version from src and instantiates the matching
// reader. src must support seeking, since both families locate records by
// absolute or relative offset.
func Open(src io.ReadSeeker, opts ...option.OpenOption) (*Archive, error) {
	o := option.OpenOptions{}
	for _, apply := range opts {
		apply(&o)
	}

	v, err := version.Read(src)
	if err != nil {
		return nil, err
	}

	a := &Archive{version: v, opts: o}

	switch v.Tag {
	case version.TagV001:
		r, err := v001.NewReader(src, o.Logger)
		if err != nil {
			return nil, err
		}
		a.reader = r
	case version.TagV10X:
		variant, err := v10x.ForVersion(v.V10X)
		if err != nil {
			return nil, err
		}
		r, err := v10x.NewReader(src, variant, o.Logger)
		if err != nil {
			return nil, err
		}
		a.reader = r
	default:
		return nil, fmt.Errorf("bsa: cannot open %s: %w", v, bsaerr.ErrUnsupportedVersion)
	}

	if o.PreloadList {
		if _, err := a.List(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Version reports the archive's decoded version tag.
func (a *Archive) Version() version.Version {
	return a.version
}

// List materializes (and, on later calls, returns the cached) directory
// tree.
func (a *Archive) List() ([]archive.DirEntry, error) {
	return a.reader.List()
}

// Extract writes the logical (decompressed) bytes of fe to sink, reporting
// progress through the ExtractionProgressCallback option if one was given
// to Open.
func (a *Archive) Extract(fe archive.FileEntry, sink io.Writer) error {
	if a.opts.ExtractionProgressCallback == nil {
		return a.reader.Extract(fe, sink)
	}
	pw := &progressWriter{
		w:        sink,
		name:     fe.Name,
		total:    int64(fe.Size),
		callback: a.opts.ExtractionProgressCallback,
	}
	return a.reader.Extract(fe, pw)
}

type progressWriter struct {
	w        io.Writer
	name     string
	total    int64
	written  int64
	callback option.ExtractionProgressCallback
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	p.callback(p.name, p.written, p.total, 0, 0)
	return n, err
}

// WriteArchive writes dirs to sink using the variant and flags selected by
// opts (default: v105, IncludeDirectoryNames|IncludeFileNames).
func WriteArchive(sink io.ReadWriteSeeker, dirs []archive.DirSource, opts ...option.CreateOption) error {
	o := option.DefaultCreateOptions()
	for _, apply := range opts {
		apply(&o)
	}

	switch o.Variant.Tag {
	case version.TagV001:
		return v001.WriteArchive(sink, dirs, o.Logger)
	case version.TagV10X:
		variant, err := v10x.ForVersion(o.Variant.V10X)
		if err != nil {
			return err
		}
		return v10x.WriteArchive(sink, variant, v10x.WriteOptions{
			ArchiveFlags: o.ArchiveFlags,
			FileFlags:    o.FileFlags,
		}, dirs, o.Logger)
	default:
		return fmt.Errorf("bsa: cannot write %s: %w", o.Variant, bsaerr.ErrUnsupportedVersion)
	}
}
