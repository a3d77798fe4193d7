// Package v001 implements the Morrowind BSA codec: a flat, hash-indexed
// archive with no directory hierarchy, no compression, and no embedded
// names. See SPEC_FULL.md section 4.6.
package v001

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/archive"
	"github.com/forgekit/bsa-kit/pkg/binary"
	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/forgekit/bsa-kit/pkg/hash"
	"github.com/forgekit/bsa-kit/pkg/logging"
	"github.com/forgekit/bsa-kit/pkg/strcodec"
)

// Header is the 8-byte body following the magic: hash_offset locates the
// hash table relative to the end of this header, file_count sizes every
// other table.
type Header struct {
	HashOffset uint32
	FileCount  uint32
}

func ReadHeader(src io.Reader) (Header, error) {
	hashOffset, err := binary.ReadPOD[uint32](src)
	if err != nil {
		return Header{}, err
	}
	fileCount, err := binary.ReadPOD[uint32](src)
	if err != nil {
		return Header{}, err
	}
	return Header{HashOffset: hashOffset, FileCount: fileCount}, nil
}

func WriteHeader(sink io.Writer, h Header) error {
	if err := binary.WritePOD[uint32](sink, h.HashOffset); err != nil {
		return err
	}
	return binary.WritePOD[uint32](sink, h.FileCount)
}

type entry struct {
	size       uint32
	offset     uint32
	nameOffset uint32
	hash       hash.Hash
	name       string
}

// Reader implements the v001 read/list/extract protocol. Because the
// format has no directory records, List returns one synthetic DirEntry
// (empty hash and name) holding every file — names conventionally embed a
// virtual path ("meshes\\x.nif") even though the on-disk layout is flat.
type Reader struct {
	src       io.ReadSeeker
	header    Header
	entries   []entry
	dataStart int64
	logger    *logging.Logger
}

func NewReader(src io.ReadSeeker, logger *logging.Logger) (*Reader, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	header, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	headerEnd, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("v001: %w", bsaerr.ErrIo)
	}
	r := &Reader{src: src, header: header, logger: logger}

	entries := make([]entry, header.FileCount)
	for i := range entries {
		size, err := binary.ReadPOD[uint32](src)
		if err != nil {
			return nil, fmt.Errorf("v001: size/offset pair %d: %w", i, err)
		}
		offset, err := binary.ReadPOD[uint32](src)
		if err != nil {
			return nil, fmt.Errorf("v001: size/offset pair %d: %w", i, err)
		}
		entries[i].size, entries[i].offset = size, offset
	}
	for i := range entries {
		nameOffset, err := binary.ReadPOD[uint32](src)
		if err != nil {
			return nil, fmt.Errorf("v001: name offset %d: %w", i, err)
		}
		entries[i].nameOffset = nameOffset
	}

	namePoolStart, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("v001: %w", bsaerr.ErrIo)
	}
	for i := range entries {
		if _, err := src.Seek(namePoolStart+int64(entries[i].nameOffset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("v001: seek name %d: %w", i, bsaerr.ErrIo)
		}
		name, err := strcodec.ReadZString(src)
		if err != nil {
			return nil, fmt.Errorf("v001: name %d: %w", i, err)
		}
		entries[i].name = name
	}

	// hash_offset is relative to the end of the fixed header (absolute
	// offset 12: 4-byte magic + 8-byte header), which headerEnd already
	// reflects regardless of where in the stream NewReader was invoked.
	hashTableStart := headerEnd + int64(header.HashOffset)
	if _, err := src.Seek(hashTableStart, io.SeekStart); err != nil {
		return nil, fmt.Errorf("v001: seek hash table: %w", bsaerr.ErrIo)
	}
	for i := range entries {
		h, err := binary.ReadPOD[uint64](src)
		if err != nil {
			return nil, fmt.Errorf("v001: hash %d: %w", i, err)
		}
		entries[i].hash = hash.Hash(h)
	}

	r.dataStart, err = src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("v001: %w", bsaerr.ErrIo)
	}
	r.entries = entries
	return r, nil
}

// List returns the single synthetic directory holding every file.
func (r *Reader) List() ([]archive.DirEntry, error) {
	files := make([]archive.FileEntry, len(r.entries))
	for i, e := range r.entries {
		files[i] = archive.FileEntry{
			Hash:   e.hash,
			Name:   e.name,
			Offset: e.offset,
			Size:   e.size,
		}
	}
	return []archive.DirEntry{{Files: files}}, nil
}

// Extract writes the raw (uncompressed) bytes of fe to sink.
func (r *Reader) Extract(fe archive.FileEntry, sink io.Writer) error {
	if _, err := r.src.Seek(r.dataStart+int64(fe.Offset), io.SeekStart); err != nil {
		return fmt.Errorf("v001: seek file data: %w", bsaerr.ErrIo)
	}
	if _, err := io.CopyN(sink, r.src, int64(fe.Size)); err != nil {
		return fmt.Errorf("v001: extract: %w", bsaerr.ErrBadData)
	}
	return nil
}
