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
	"github.com/forgekit/bsa-kit/pkg/version"
)

// WriteOptions configures WriteArchive, mirroring the archive/file flag
// enumeration from SPEC_FULL.md section 4.7.
type WriteOptions struct {
	ArchiveFlags consts.ArchiveFlag
	FileFlags    consts.FileFlag
}

type fileWriteState struct {
	src          archive.FileSource
	dirName      string
	compressed   bool
	overrideBit  bool
	offsetPlaceholder *binary.Positioned[uint32]
	sizePlaceholder   *binary.Positioned[uint32]
}

// WriteArchive runs the three-pass write protocol from SPEC_FULL.md section
// 4.5: placeholders, directory contents + name pool, then file data.
func WriteArchive(sink io.ReadWriteSeeker, variant Variant, opts WriteOptions, dirs []archive.DirSource, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if opts.ArchiveFlags.Has(consts.Xbox360Archive) || opts.ArchiveFlags.Has(consts.XMemCodec) {
		return fmt.Errorf("v10x: Xbox360Archive/XMemCodec not implemented: %w", bsaerr.ErrUnsupportedVersion)
	}
	for _, d := range dirs {
		if len(d.Files) == 0 {
			return fmt.Errorf("v10x: directory %q has no files: %w", d.Name, bsaerr.ErrBadInput)
		}
	}

	if err := version.Write(sink, version.NewV10X(variant.Version())); err != nil {
		return err
	}

	var totalDirNameLength, totalFileNameLength uint32
	var fileCount uint32
	poolNames := make([]string, 0)
	for _, d := range dirs {
		// BZString size on disk is len(name)+2 (length byte + name + NUL);
		// total_dir_name_length excludes only the length byte.
		totalDirNameLength += uint32(len(hash.Normalize(d.Name)) + 1)
		for _, f := range d.Files {
			name := hash.Normalize(f.Name)
			totalFileNameLength += uint32(strcodec.SizeZString(name))
			poolNames = append(poolNames, name)
			fileCount++
		}
	}

	header := Header{
		Offset:              consts.HeaderOffset,
		ArchiveFlags:        opts.ArchiveFlags,
		DirCount:            uint32(len(dirs)),
		FileCount:           fileCount,
		TotalDirNameLength:  totalDirNameLength,
		TotalFileNameLength: totalFileNameLength,
		FileFlags:           opts.FileFlags,
	}
	if err := WriteHeader(sink, header); err != nil {
		return err
	}
	logger.Debug("wrote v10x header", "variant", variant.Version(), "dirCount", header.DirCount, "fileCount", header.FileCount)

	codec := variant.DirRecordCodec()
	dirOffsetPlaceholders := make([]*binary.Positioned[uint32], len(dirs))
	for i, d := range dirs {
		ph, err := codec.WritePlaceholder(sink, hash.V10X(d.Name), uint32(len(d.Files)))
		if err != nil {
			return err
		}
		dirOffsetPlaceholders[i] = ph
	}

	var files []fileWriteState
	for i, d := range dirs {
		contentStart, err := sink.Seek(0, io.SeekCurrent)
		if err != nil {
			return fmt.Errorf("v10x: %w", bsaerr.ErrIo)
		}
		if err := dirOffsetPlaceholders[i].Update(sink, uint32(contentStart)+totalFileNameLength); err != nil {
			return err
		}

		if opts.ArchiveFlags.Has(consts.IncludeDirectoryNames) {
			if err := strcodec.WriteBZString(sink, hash.Normalize(d.Name)); err != nil {
				return err
			}
		}

		for _, f := range d.Files {
			desiredCompressed := opts.ArchiveFlags.Has(consts.CompressedArchive)
			if f.Compressed != nil {
				desiredCompressed = *f.Compressed
			}
			overrideBit := desiredCompressed != opts.ArchiveFlags.Has(consts.CompressedArchive)

			var initialSize uint32
			if overrideBit {
				initialSize = consts.CompressionOverrideBit
			}

			if err := binary.WritePOD[uint64](sink, uint64(hash.V10X(f.Name))); err != nil {
				return err
			}
			sizePH, err := binary.NewPositionedWithValue[uint32](sink, initialSize)
			if err != nil {
				return err
			}
			offsetPH, err := binary.NewPositioned[uint32](sink)
			if err != nil {
				return err
			}

			files = append(files, fileWriteState{
				src:               f,
				dirName:           d.Name,
				compressed:        desiredCompressed,
				overrideBit:       overrideBit,
				offsetPlaceholder: offsetPH,
				sizePlaceholder:   sizePH,
			})
		}
	}

	if opts.ArchiveFlags.Has(consts.IncludeFileNames) {
		for _, name := range poolNames {
			if err := strcodec.WriteZString(sink, name); err != nil {
				return err
			}
		}
	}

	for _, fw := range files {
		recordPos, err := sink.Seek(0, io.SeekCurrent)
		if err != nil {
			return fmt.Errorf("v10x: %w", bsaerr.ErrIo)
		}

		if opts.ArchiveFlags.Has(consts.EmbedFileNames) {
			full := hash.Normalize(fw.dirName) + `\` + hash.Normalize(fw.src.Name)
			if err := strcodec.WriteBString(sink, full); err != nil {
				return err
			}
		}

		r, dataLen, err := fw.src.Data.Open()
		if err != nil {
			return err
		}
		if fw.compressed {
			sizePH, err := binary.NewPositioned[uint32](sink)
			if err != nil {
				r.Close()
				return err
			}
			_, err = variant.Codec().Compress(sink, r)
			r.Close()
			if err != nil {
				return err
			}
			if err := sizePH.Update(sink, uint32(dataLen)); err != nil {
				return err
			}
		} else {
			_, err := io.Copy(sink, r)
			r.Close()
			if err != nil {
				return fmt.Errorf("v10x: write file data: %w", bsaerr.ErrIo)
			}
		}

		endPos, err := sink.Seek(0, io.SeekCurrent)
		if err != nil {
			return fmt.Errorf("v10x: %w", bsaerr.ErrIo)
		}
		payloadLen := uint32(endPos - recordPos)
		sizeValue := payloadLen
		if fw.overrideBit {
			sizeValue |= consts.CompressionOverrideBit
		}
		if err := fw.sizePlaceholder.Update(sink, sizeValue); err != nil {
			return err
		}
		if err := fw.offsetPlaceholder.Update(sink, uint32(recordPos)); err != nil {
			return err
		}
	}

	return nil
}
