package v10x

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/archive"
	"github.com/forgekit/bsa-kit/pkg/binary"
	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/forgekit/bsa-kit/pkg/consts"
	"github.com/forgekit/bsa-kit/pkg/hash"
	"github.com/forgekit/bsa-kit/pkg/logging"
	"github.com/forgekit/bsa-kit/pkg/strcodec"
)

type rawDirRecord struct {
	hash      hash.Hash
	fileCount uint32
	offset    uint32 // on-disk value: content-start + total_file_name_length
}

// Reader implements the v10X read/list/extract protocol from SPEC_FULL.md
// section 4.4, parameterized by Variant. Callers obtain one via the root
// package's Open, which has already consumed the magic and version number.
type Reader struct {
	src     io.ReadSeeker
	variant Variant
	header  Header
	dirRaw  []rawDirRecord
	names   map[hash.Hash]string
	dirs    []archive.DirEntry // cached after the first List call
	logger  *logging.Logger
}

// NewReader reads the header, directory-record table, and file-name pool
// from src, which must be positioned immediately after the magic and
// version number.
func NewReader(src io.ReadSeeker, variant Variant, logger *logging.Logger) (*Reader, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	r := &Reader{src: src, variant: variant, logger: logger}

	header, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	r.header = header
	logger.Debug("read v10x header", "variant", variant.Version(), "dirCount", header.DirCount, "fileCount", header.FileCount)

	if err := r.readDirRecordTable(); err != nil {
		return nil, err
	}
	if err := r.readFileNamePool(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reader) readDirRecordTable() error {
	codec := r.variant.DirRecordCodec()
	r.dirRaw = make([]rawDirRecord, r.header.DirCount)
	for i := range r.dirRaw {
		h, fileCount, offset, err := codec.Read(r.src)
		if err != nil {
			return fmt.Errorf("v10x: dir record %d: %w", i, err)
		}
		r.dirRaw[i] = rawDirRecord{hash: h, fileCount: fileCount, offset: offset}
	}
	return nil
}

func (r *Reader) fileNamePoolOffset() int64 {
	codec := r.variant.DirRecordCodec()
	offset := int64(consts.HeaderOffset) + int64(r.header.DirCount)*int64(codec.Size())
	if r.header.ArchiveFlags.Has(consts.IncludeDirectoryNames) {
		offset += int64(r.header.EffectiveTotalDirNameLen())
	}
	offset += int64(r.header.FileCount) * int64(consts.FileRecordSize)
	return offset
}

func (r *Reader) readFileNamePool() error {
	r.names = make(map[hash.Hash]string, r.header.FileCount)
	if !r.header.ArchiveFlags.Has(consts.IncludeFileNames) {
		return nil
	}
	if _, err := r.src.Seek(r.fileNamePoolOffset(), io.SeekStart); err != nil {
		return fmt.Errorf("v10x: seek file name pool: %w", bsaerr.ErrIo)
	}
	for i := uint32(0); i < r.header.FileCount; i++ {
		name, err := strcodec.ReadZString(r.src)
		if err != nil {
			return fmt.Errorf("v10x: file name %d: %w", i, err)
		}
		r.names[hash.V10X(name)] = name
	}
	return nil
}

// List materializes and caches the directory tree.
func (r *Reader) List() ([]archive.DirEntry, error) {
	if r.dirs != nil {
		return r.dirs, nil
	}

	dirs := make([]archive.DirEntry, len(r.dirRaw))
	for i, raw := range r.dirRaw {
		contentOffset := int64(raw.offset) - int64(r.header.TotalFileNameLength)
		if _, err := r.src.Seek(contentOffset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("v10x: seek dir content %d: %w", i, bsaerr.ErrIo)
		}

		var dirName string
		if r.header.ArchiveFlags.Has(consts.IncludeDirectoryNames) {
			name, err := strcodec.ReadBZString(r.src)
			if err != nil {
				return nil, fmt.Errorf("v10x: dir name %d: %w", i, err)
			}
			dirName = name
		}

		files := make([]archive.FileEntry, raw.fileCount)
		for j := range files {
			fh, err := binary.ReadPOD[uint64](r.src)
			if err != nil {
				return nil, fmt.Errorf("v10x: file record %d/%d: %w", i, j, err)
			}
			size, err := binary.ReadPOD[uint32](r.src)
			if err != nil {
				return nil, fmt.Errorf("v10x: file record %d/%d: %w", i, j, err)
			}
			offset, err := binary.ReadPOD[uint32](r.src)
			if err != nil {
				return nil, fmt.Errorf("v10x: file record %d/%d: %w", i, j, err)
			}

			fHash := hash.Hash(fh)
			overrideSet := size&consts.CompressionOverrideBit != 0
			compressed := r.header.ArchiveFlags.Has(consts.CompressedArchive) != overrideSet

			files[j] = archive.FileEntry{
				Hash:       fHash,
				Name:       r.names[fHash],
				Compressed: compressed,
				Offset:     offset,
				Size:       size & consts.SizeMask,
			}
		}

		dirs[i] = archive.DirEntry{Hash: raw.hash, Name: dirName, Files: files}
	}

	r.dirs = dirs
	return dirs, nil
}

// Extract writes the logical (decompressed) bytes of fe to sink.
func (r *Reader) Extract(fe archive.FileEntry, sink io.Writer) error {
	if _, err := r.src.Seek(int64(fe.Offset), io.SeekStart); err != nil {
		return fmt.Errorf("v10x: seek file data: %w", bsaerr.ErrIo)
	}

	remaining := int64(fe.Size)
	if r.header.ArchiveFlags.Has(consts.EmbedFileNames) {
		name, err := strcodec.ReadBString(r.src)
		if err != nil {
			return fmt.Errorf("v10x: embedded file name: %w", err)
		}
		remaining -= int64(strcodec.SizeBString(name))
	}

	if !fe.Compressed {
		if _, err := io.CopyN(sink, r.src, remaining); err != nil {
			return fmt.Errorf("v10x: extract: %w", bsaerr.ErrBadData)
		}
		return nil
	}

	uncompressedSize, err := binary.ReadPOD[uint32](r.src)
	if err != nil {
		return fmt.Errorf("v10x: uncompressed-size prefix: %w", err)
	}
	remaining -= 4
	if remaining < 0 {
		return fmt.Errorf("v10x: file record size too small for compression header: %w", bsaerr.ErrBadData)
	}

	return r.variant.Codec().Uncompress(sink, io.LimitReader(r.src, remaining), uncompressedSize)
}

// Header exposes the decoded archive header, mainly for info/debug tooling.
func (r *Reader) Header() Header {
	return r.header
}
