package v10x

import (
	"io"

	"github.com/forgekit/bsa-kit/pkg/binary"
	"github.com/forgekit/bsa-kit/pkg/hash"
	"github.com/forgekit/bsa-kit/pkg/version"
)

// Codec is the per-variant compression pipeline.
type Codec interface {
	// Compress reads all of src, writes the compressed form to dst, and
	// returns the number of compressed bytes written.
	Compress(dst io.Writer, src io.Reader) (int64, error)
	// Uncompress reads the compressed payload from src (already bounded
	// to its exact compressed length by the caller) and writes
	// uncompressedSize decoded bytes to dst.
	Uncompress(dst io.Writer, src io.Reader, uncompressedSize uint32) error
}

// DirRecordCodec encodes and decodes the one part of a directory record
// that differs in byte layout between variants: the padding around the
// offset field. Hash and file-count occupy the same position in every
// variant.
type DirRecordCodec interface {
	// Size is the on-disk byte size of one directory record.
	Size() int
	// WritePlaceholder writes the record's hash and file-count fields
	// plus a zeroed offset (and any padding), returning a handle to
	// backpatch the offset once it's known.
	WritePlaceholder(sink io.WriteSeeker, h hash.Hash, fileCount uint32) (*binary.Positioned[uint32], error)
	// Read decodes one directory record.
	Read(src io.Reader) (h hash.Hash, fileCount uint32, offset uint32, err error)
}

// Variant injects the three concerns that differ across v103/v104/v105
// into the shared engine in reader.go and writer.go: the archive version tag, the
// directory-record layout, and the compression codec.
type Variant interface {
	Version() version.V10X
	DirRecordCodec() DirRecordCodec
	Codec() Codec
}

func ForVersion(v version.V10X) (Variant, error) {
	switch v {
	case version.V103:
		return v103Variant{}, nil
	case version.V104:
		return v104Variant{}, nil
	case version.V105:
		return v105Variant{}, nil
	default:
		return nil, unsupportedVariant(v)
	}
}
