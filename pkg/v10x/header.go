package v10x

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/binary"
	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/forgekit/bsa-kit/pkg/consts"
)

// Header is the 28-byte v10X archive header that immediately follows the
// magic and version number; its offset field (always 36) counts the bytes
// of magic+version+header together.
type Header struct {
	Offset               uint32
	ArchiveFlags         consts.ArchiveFlag
	DirCount             uint32
	FileCount            uint32
	TotalDirNameLength   uint32
	TotalFileNameLength  uint32
	FileFlags            consts.FileFlag
	Padding              uint16
}

// EffectiveTotalDirNameLen is total_dir_name_length + dir_count: each
// directory name's BZString carries one extra length byte and one extra
// NUL beyond the raw name bytes that total_dir_name_length counts.
func (h Header) EffectiveTotalDirNameLen() uint32 {
	return h.TotalDirNameLength + h.DirCount
}

func ReadHeader(src io.Reader) (Header, error) {
	var h Header
	var err error
	if h.Offset, err = binary.ReadPOD[uint32](src); err != nil {
		return Header{}, err
	}
	if h.Offset != consts.HeaderOffset {
		return Header{}, fmt.Errorf("v10x: header.offset = %d, want %d: %w", h.Offset, consts.HeaderOffset, bsaerr.ErrBadData)
	}
	flags, err := binary.ReadPOD[uint32](src)
	if err != nil {
		return Header{}, err
	}
	h.ArchiveFlags = consts.ArchiveFlag(flags)
	if h.ArchiveFlags.Has(consts.Xbox360Archive) || h.ArchiveFlags.Has(consts.XMemCodec) {
		return Header{}, fmt.Errorf("v10x: Xbox360Archive/XMemCodec: %w", bsaerr.ErrUnsupportedVersion)
	}
	if h.DirCount, err = binary.ReadPOD[uint32](src); err != nil {
		return Header{}, err
	}
	if h.FileCount, err = binary.ReadPOD[uint32](src); err != nil {
		return Header{}, err
	}
	if h.TotalDirNameLength, err = binary.ReadPOD[uint32](src); err != nil {
		return Header{}, err
	}
	if h.TotalFileNameLength, err = binary.ReadPOD[uint32](src); err != nil {
		return Header{}, err
	}
	fileFlags, err := binary.ReadPOD[uint16](src)
	if err != nil {
		return Header{}, err
	}
	h.FileFlags = consts.FileFlag(fileFlags)
	if h.Padding, err = binary.ReadPOD[uint16](src); err != nil {
		return Header{}, err
	}
	return h, nil
}

func WriteHeader(sink io.Writer, h Header) error {
	if err := binary.WritePOD[uint32](sink, h.Offset); err != nil {
		return err
	}
	if err := binary.WritePOD[uint32](sink, uint32(h.ArchiveFlags)); err != nil {
		return err
	}
	if err := binary.WritePOD[uint32](sink, h.DirCount); err != nil {
		return err
	}
	if err := binary.WritePOD[uint32](sink, h.FileCount); err != nil {
		return err
	}
	if err := binary.WritePOD[uint32](sink, h.TotalDirNameLength); err != nil {
		return err
	}
	if err := binary.WritePOD[uint32](sink, h.TotalFileNameLength); err != nil {
		return err
	}
	if err := binary.WritePOD[uint16](sink, uint16(h.FileFlags)); err != nil {
		return err
	}
	return binary.WritePOD[uint16](sink, h.Padding)
}
