package strcodec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBZStringRoundTrip(t *testing.T) {
	t.Run("empty string encodes as [1, 0]", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBZString(&buf, ""))
		require.Equal(t, []byte{1, 0}, buf.Bytes())

		got, err := ReadBZString(&buf)
		require.NoError(t, err)
		require.Equal(t, "", got)
	})

	t.Run("non-empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteBZString(&buf, "textures"))
		require.Equal(t, byte(9), buf.Bytes()[0]) // 8 chars + NUL
		require.Equal(t, SizeBZString("textures"), buf.Len())

		got, err := ReadBZString(&buf)
		require.NoError(t, err)
		require.Equal(t, "textures", got)
	})

	t.Run("missing terminator is BadData", func(t *testing.T) {
		buf := bytes.NewBuffer([]byte{2, 'a', 'b'})
		_, err := ReadBZString(buf)
		require.Error(t, err)
	})

	t.Run("payload too long is BadInput", func(t *testing.T) {
		err := WriteBZString(&bytes.Buffer{}, strings.Repeat("a", 255))
		require.Error(t, err)
	})
}

func TestBStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBString(&buf, `tex\f.dds`))
	require.Equal(t, byte(9), buf.Bytes()[0])

	got, err := ReadBString(&buf)
	require.NoError(t, err)
	require.Equal(t, `tex\f.dds`, got)
}

func TestZStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteZString(&buf, "b"))
	require.Equal(t, SizeZString("b"), buf.Len())

	got, err := ReadZString(&buf)
	require.NoError(t, err)
	require.Equal(t, "b", got)
}

func TestToLowerASCII(t *testing.T) {
	require.Equal(t, "textures/foo.dds", ToLowerASCII("TEXTURES/FOO.DDS"))
}
