package binary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWritePODRoundTrip(t *testing.T) {
	t.Run("uint32 little-endian", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WritePOD[uint32](&buf, 0x01020304))
		require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf.Bytes())

		got, err := ReadPOD[uint32](&buf)
		require.NoError(t, err)
		require.Equal(t, uint32(0x01020304), got)
	})

	t.Run("short read is BadData", func(t *testing.T) {
		buf := bytes.NewReader([]byte{0x01, 0x02})
		_, err := ReadPOD[uint32](buf)
		require.Error(t, err)
	})
}

func TestReadWriteMany(t *testing.T) {
	var buf bytes.Buffer
	values := []uint16{1, 2, 3, 0xFFFF}
	require.NoError(t, WriteMany(&buf, values))
	require.Equal(t, len(values)*2, buf.Len())

	got, err := ReadMany[uint16](&buf, len(values))
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestPositionedBackpatch(t *testing.T) {
	buf := bytes.NewBuffer(make([]byte, 0, 16))
	sink := &seekableBuffer{buf: buf}

	require.NoError(t, WritePOD[uint32](sink, 0xAAAAAAAA))
	placeholder, err := NewPositioned[uint32](sink)
	require.NoError(t, err)
	require.EqualValues(t, 4, placeholder.Offset())
	require.NoError(t, WritePOD[uint32](sink, 0xBBBBBBBB))

	require.NoError(t, placeholder.Update(sink, 0xCCCCCCCC))

	want := []byte{
		0xAA, 0xAA, 0xAA, 0xAA,
		0xCC, 0xCC, 0xCC, 0xCC,
		0xBB, 0xBB, 0xBB, 0xBB,
	}
	require.Equal(t, want, sink.buf.Bytes())
}

// seekableBuffer adapts a growing *bytes.Buffer to io.WriteSeeker for tests
// that need to backpatch already-written bytes.
type seekableBuffer struct {
	buf *bytes.Buffer
	pos int64
}

func (s *seekableBuffer) Write(p []byte) (int, error) {
	data := s.buf.Bytes()
	if int(s.pos) < len(data) {
		n := copy(data[s.pos:], p)
		s.pos += int64(n)
		if n < len(p) {
			s.buf.Write(p[n:])
			s.pos += int64(len(p) - n)
		}
		return len(p), nil
	}
	n, err := s.buf.Write(p)
	s.pos += int64(n)
	return n, err
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = offset
	case 1:
		s.pos += offset
	case 2:
		s.pos = int64(s.buf.Len()) + offset
	}
	return s.pos, nil
}
