package v10x

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/binary"
	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/forgekit/bsa-kit/pkg/hash"
)

// narrowDirRecordCodec is the 16-byte v103/v104 layout: hash, file_count,
// offset — no padding.
type narrowDirRecordCodec struct{}

func (narrowDirRecordCodec) Size() int { return 16 }

func (narrowDirRecordCodec) WritePlaceholder(sink io.WriteSeeker, h hash.Hash, fileCount uint32) (*binary.Positioned[uint32], error) {
	if err := binary.WritePOD[uint64](sink, uint64(h)); err != nil {
		return nil, err
	}
	if err := binary.WritePOD[uint32](sink, fileCount); err != nil {
		return nil, err
	}
	return binary.NewPositioned[uint32](sink)
}

func (narrowDirRecordCodec) Read(src io.Reader) (hash.Hash, uint32, uint32, error) {
	h, err := binary.ReadPOD[uint64](src)
	if err != nil {
		return 0, 0, 0, err
	}
	fileCount, err := binary.ReadPOD[uint32](src)
	if err != nil {
		return 0, 0, 0, err
	}
	offset, err := binary.ReadPOD[uint32](src)
	if err != nil {
		return 0, 0, 0, err
	}
	return hash.Hash(h), fileCount, offset, nil
}

// wideDirRecordCodec is the 24-byte v105 layout: hash, file_count, a 4-byte
// padding word, offset, a second 4-byte padding word.
type wideDirRecordCodec struct{}

func (wideDirRecordCodec) Size() int { return 24 }

func (wideDirRecordCodec) WritePlaceholder(sink io.WriteSeeker, h hash.Hash, fileCount uint32) (*binary.Positioned[uint32], error) {
	if err := binary.WritePOD[uint64](sink, uint64(h)); err != nil {
		return nil, err
	}
	if err := binary.WritePOD[uint32](sink, fileCount); err != nil {
		return nil, err
	}
	if err := binary.WritePOD[uint32](sink, 0); err != nil {
		return nil, err
	}
	pos, err := binary.NewPositioned[uint32](sink)
	if err != nil {
		return nil, err
	}
	if err := binary.WritePOD[uint32](sink, 0); err != nil {
		return nil, err
	}
	return pos, nil
}

func (wideDirRecordCodec) Read(src io.Reader) (hash.Hash, uint32, uint32, error) {
	h, err := binary.ReadPOD[uint64](src)
	if err != nil {
		return 0, 0, 0, err
	}
	fileCount, err := binary.ReadPOD[uint32](src)
	if err != nil {
		return 0, 0, 0, err
	}
	if _, err := binary.ReadPOD[uint32](src); err != nil { // padding_pre
		return 0, 0, 0, err
	}
	offset, err := binary.ReadPOD[uint32](src)
	if err != nil {
		return 0, 0, 0, err
	}
	if _, err := binary.ReadPOD[uint32](src); err != nil { // padding_post
		return 0, 0, 0, err
	}
	return hash.Hash(h), fileCount, offset, nil
}

var errBadDirRecord = fmt.Errorf("v10x: directory record: %w", bsaerr.ErrBadData)
