// Package binary provides the fixed-size on-disk primitives shared by the
// v001 and v10X codecs: little-endian POD read/write, batched sequences, and
// a backpatching helper for offsets that are only known after later data has
// been written.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/bsaerr"
)

// POD is the set of fixed-width scalar types the archive formats store
// directly on disk. Composite records (Header, DirRecord, FileRecord, ...)
// marshal themselves field-by-field using these primitives rather than
// satisfying POD directly, the same way rstms-iso-kit's directory records
// hand-roll Marshal/Unmarshal instead of reflecting over struct tags.
type POD interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64
}

// ReadPOD reads one little-endian value of T from src.
func ReadPOD[T POD](src io.Reader) (T, error) {
	var v T
	if err := binary.Read(src, binary.LittleEndian, &v); err != nil {
		var zero T
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return zero, fmt.Errorf("read %T: %w", v, bsaerr.ErrBadData)
		}
		return zero, fmt.Errorf("read %T: %w", v, bsaerr.ErrIo)
	}
	return v, nil
}

// WritePOD writes val to sink in little-endian order.
func WritePOD[T POD](sink io.Writer, val T) error {
	if err := binary.Write(sink, binary.LittleEndian, val); err != nil {
		return fmt.Errorf("write %T: %w", val, bsaerr.ErrIo)
	}
	return nil
}

// ReadMany reads n adjacent little-endian values of T from src.
func ReadMany[T POD](src io.Reader, n int) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		v, err := ReadPOD[T](src)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// WriteMany is the inverse of ReadMany.
func WriteMany[T POD](sink io.Writer, values []T) error {
	for _, v := range values {
		if err := WritePOD(sink, v); err != nil {
			return err
		}
	}
	return nil
}

// Sizeof returns the on-disk byte count of a POD value.
func Sizeof[T POD](value T) int {
	return binary.Size(value)
}

// Positioned remembers a sink offset at which a placeholder of T was
// written so the real value can be patched in once it's known, without
// disturbing the sink's append position.
type Positioned[T POD] struct {
	pos int64
}

// NewPositioned writes a zero-valued placeholder of T at the sink's current
// position and records that position for a later Update.
func NewPositioned[T POD](sink io.WriteSeeker) (*Positioned[T], error) {
	pos, err := sink.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("positioned: %w", bsaerr.ErrIo)
	}
	var zero T
	if err := WritePOD(sink, zero); err != nil {
		return nil, err
	}
	return &Positioned[T]{pos: pos}, nil
}

// NewPositionedWithValue writes value (rather than a zero placeholder) at
// the sink's current position and records that position for a later
// Update, for callers that already know a provisional value (e.g. a
// compression-override bit set ahead of the final payload length).
func NewPositionedWithValue[T POD](sink io.WriteSeeker, value T) (*Positioned[T], error) {
	pos, err := sink.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("positioned: %w", bsaerr.ErrIo)
	}
	if err := WritePOD(sink, value); err != nil {
		return nil, err
	}
	return &Positioned[T]{pos: pos}, nil
}

// Offset returns the sink position the placeholder occupies.
func (p *Positioned[T]) Offset() int64 {
	return p.pos
}

// Update seeks back to the placeholder, rewrites it with value, and returns
// the sink's cursor to wherever it was before Update was called.
func (p *Positioned[T]) Update(sink io.WriteSeeker, value T) error {
	cur, err := sink.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("positioned update: %w", bsaerr.ErrIo)
	}
	if _, err := sink.Seek(p.pos, io.SeekStart); err != nil {
		return fmt.Errorf("positioned update: %w", bsaerr.ErrIo)
	}
	if err := WritePOD(sink, value); err != nil {
		return err
	}
	if _, err := sink.Seek(cur, io.SeekStart); err != nil {
		return fmt.Errorf("positioned update: %w", bsaerr.ErrIo)
	}
	return nil
}
