// Package version implements the 4-byte-magic + optional-4-byte-number
// dispatch that identifies which archive codec to use.
package version

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/binary"
	"github.com/forgekit/bsa-kit/pkg/bsaerr"
)

// Tag identifies which archive family a Version belongs to.
type Tag int

const (
	TagV001 Tag = iota
	TagV10X
	TagV200
)

// V10X identifies one of the three v10X sibling formats.
type V10X uint32

const (
	V103 V10X = 103
	V104 V10X = 104
	V105 V10X = 105
)

func (v V10X) String() string {
	switch v {
	case V103:
		return "v103"
	case V104:
		return "v104"
	case V105:
		return "v105"
	default:
		return fmt.Sprintf("v10x(%d)", uint32(v))
	}
}

// Version is the sum type {V001, V10X{103|104|105}, V200(u32)}.
type Version struct {
	Tag  Tag
	V10X V10X // valid iff Tag == TagV10X
	V200 uint32 // valid iff Tag == TagV200
}

func V001() Version { return Version{Tag: TagV001} }

func NewV10X(v V10X) Version { return Version{Tag: TagV10X, V10X: v} }

func NewV200(n uint32) Version { return Version{Tag: TagV200, V200: n} }

func (v Version) String() string {
	switch v.Tag {
	case TagV001:
		return "v100"
	case TagV10X:
		return v.V10X.String()
	case TagV200:
		return fmt.Sprintf("BA2 v%03d", v.V200)
	default:
		return "unknown"
	}
}

const (
	magicV10X = "BSA\x00"
	magicBA2  = "BTDX"
	magicV001 = uint32(0x00000100)
)

// Read validates the magic (and, for v10X/v200, the trailing numeric
// version) from src and returns the decoded Version.
func Read(src io.Reader) (Version, error) {
	var raw [4]byte
	if _, err := io.ReadFull(src, raw[:]); err != nil {
		return Version{}, fmt.Errorf("version: short read: %w", bsaerr.ErrBadData)
	}

	switch string(raw[:]) {
	case magicV10X:
		n, err := binary.ReadPOD[uint32](src)
		if err != nil {
			return Version{}, err
		}
		switch V10X(n) {
		case V103, V104, V105:
			return NewV10X(V10X(n)), nil
		default:
			return Version{}, fmt.Errorf("version: %d: %w", n, bsaerr.ErrUnknownVersion)
		}
	case magicBA2:
		n, err := binary.ReadPOD[uint32](src)
		if err != nil {
			return Version{}, err
		}
		return Version{}, fmt.Errorf("version: BA2 v%03d: %w", n, bsaerr.ErrUnsupportedVersion)
	}

	asUint32 := uint32(raw[0]) | uint32(raw[1])<<8 | uint32(raw[2])<<16 | uint32(raw[3])<<24
	if asUint32 == magicV001 {
		return V001(), nil
	}

	return Version{}, fmt.Errorf("version: magic %08x: %w", asUint32, bsaerr.ErrUnknownMagic)
}

// Write encodes the magic and (for v10X/v200) the trailing numeric version.
func Write(sink io.Writer, v Version) error {
	switch v.Tag {
	case TagV001:
		return binary.WritePOD[uint32](sink, magicV001)
	case TagV10X:
		if _, err := io.WriteString(sink, magicV10X); err != nil {
			return fmt.Errorf("version: %w", bsaerr.ErrIo)
		}
		return binary.WritePOD[uint32](sink, uint32(v.V10X))
	case TagV200:
		if _, err := io.WriteString(sink, magicBA2); err != nil {
			return fmt.Errorf("version: %w", bsaerr.ErrIo)
		}
		return binary.WritePOD[uint32](sink, v.V200)
	default:
		return fmt.Errorf("version: unrecognized tag %d: %w", v.Tag, bsaerr.ErrBadInput)
	}
}

// Size returns the on-disk byte size of the magic plus any trailing number.
func Size(v Version) int {
	switch v.Tag {
	case TagV001:
		return 4
	default:
		return 8
	}
}
