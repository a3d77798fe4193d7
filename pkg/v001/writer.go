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
	"github.com/forgekit/bsa-kit/pkg/version"
)

type flatFile struct {
	name string
	data []byte
}

// WriteArchive computes every table in memory (the format carries no
// backpatched offsets) and writes the archive to sink in one pass: header,
// size/offset pairs, name-offset table, name pool, hash table, then file
// payloads. v001 has no directories; each DirSource's name is prepended to
// its files' names as a virtual path.
func WriteArchive(sink io.Writer, dirs []archive.DirSource, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	var flat []flatFile
	for _, d := range dirs {
		if len(d.Files) == 0 {
			return fmt.Errorf("v001: directory %q has no files: %w", d.Name, bsaerr.ErrBadInput)
		}
		prefix := hash.Normalize(d.Name)
		for _, f := range d.Files {
			name := hash.Normalize(f.Name)
			if prefix != "" {
				name = prefix + `\` + name
			}
			r, n, err := f.Data.Open()
			if err != nil {
				return err
			}
			buf := make([]byte, n)
			_, err = io.ReadFull(r, buf)
			r.Close()
			if err != nil {
				return fmt.Errorf("v001: read file data: %w", bsaerr.ErrIo)
			}
			flat = append(flat, flatFile{name: name, data: buf})
		}
	}

	fileCount := uint32(len(flat))

	sizes := make([]uint32, fileCount)
	offsets := make([]uint32, fileCount)
	nameOffsets := make([]uint32, fileCount)
	hashes := make([]hash.Hash, fileCount)

	var dataOffset, nameOffset uint32
	for i, f := range flat {
		sizes[i] = uint32(len(f.data))
		offsets[i] = dataOffset
		dataOffset += uint32(len(f.data))

		nameOffsets[i] = nameOffset
		nameOffset += uint32(strcodec.SizeZString(f.name))

		hashes[i] = hash.V001(f.name)
	}

	namePoolSize := nameOffset
	sizeOffsetTableSize := fileCount * 8
	nameOffsetTableSize := fileCount * 4
	hashOffset := sizeOffsetTableSize + nameOffsetTableSize + namePoolSize

	if err := version.Write(sink, version.V001()); err != nil {
		return err
	}
	if err := WriteHeader(sink, Header{HashOffset: hashOffset, FileCount: fileCount}); err != nil {
		return err
	}
	logger.Debug("wrote v001 header", "fileCount", fileCount)

	for i := range flat {
		if err := binary.WritePOD[uint32](sink, sizes[i]); err != nil {
			return err
		}
		if err := binary.WritePOD[uint32](sink, offsets[i]); err != nil {
			return err
		}
	}
	for i := range flat {
		if err := binary.WritePOD[uint32](sink, nameOffsets[i]); err != nil {
			return err
		}
	}
	for _, f := range flat {
		if err := strcodec.WriteZString(sink, f.name); err != nil {
			return err
		}
	}
	for i := range flat {
		if err := binary.WritePOD[uint64](sink, uint64(hashes[i])); err != nil {
			return err
		}
	}
	for _, f := range flat {
		if _, err := sink.Write(f.data); err != nil {
			return fmt.Errorf("v001: write file data: %w", bsaerr.ErrIo)
		}
	}

	return nil
}
