package v10x

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/forgekit/bsa-kit/pkg/archive"
	"github.com/forgekit/bsa-kit/pkg/consts"
	"github.com/forgekit/bsa-kit/pkg/version"
	"github.com/stretchr/testify/require"
)

// tempSink gives WriteArchive a real io.ReadWriteSeeker, since the writer
// seeks backwards to backpatch placeholders.
func tempSink(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "v10x-*.bsa")
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func openReader(t *testing.T, f *os.File) (*Reader, Header) {
	t.Helper()
	_, err := f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	v, err := version.Read(f)
	require.NoError(t, err)
	require.Equal(t, version.TagV10X, v.Tag)

	variant, err := ForVersion(v.V10X)
	require.NoError(t, err)
	r, err := NewReader(f, variant, nil)
	require.NoError(t, err)
	return r, r.Header()
}

func TestS1V105Minimal(t *testing.T) {
	sink := tempSink(t)
	dirs := []archive.DirSource{
		archive.NewDirSource("a", archive.NewFileSource("b", archive.BytesSource([]byte{0, 0, 0, 0}))),
	}
	require.NoError(t, WriteArchive(sink, v105Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags,
	}, dirs, nil))

	reader, header := openReader(t, sink)
	require.EqualValues(t, consts.HeaderOffset, header.Offset)
	require.EqualValues(t, 1, header.DirCount)
	require.EqualValues(t, 1, header.FileCount)
	require.EqualValues(t, 2, header.TotalDirNameLength)
	require.EqualValues(t, 2, header.TotalFileNameLength)
	require.Equal(t, consts.DefaultArchiveFlags, header.ArchiveFlags)

	list, err := reader.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "a", list[0].Name)
	require.Len(t, list[0].Files, 1)
	require.Equal(t, "b", list[0].Files[0].Name)
	require.False(t, list[0].Files[0].Compressed)

	var out bytes.Buffer
	require.NoError(t, reader.Extract(list[0].Files[0], &out))
	require.Equal(t, []byte{0, 0, 0, 0}, out.Bytes())
}

func TestS2V104CompressionDefault(t *testing.T) {
	sink := tempSink(t)
	payload := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 64)
	dirs := []archive.DirSource{
		archive.NewDirSource("textures", archive.NewFileSource("a.dds", archive.BytesSource(payload))),
	}
	require.NoError(t, WriteArchive(sink, v104Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags | consts.CompressedArchive,
	}, dirs, nil))

	reader, header := openReader(t, sink)
	require.True(t, header.ArchiveFlags.Has(consts.CompressedArchive))

	list, err := reader.List()
	require.NoError(t, err)
	fe := list[0].Files[0]
	require.True(t, fe.Compressed)

	var out bytes.Buffer
	require.NoError(t, reader.Extract(fe, &out))
	require.Equal(t, payload, out.Bytes())
}

func TestS3V104PerFileOverride(t *testing.T) {
	sink := tempSink(t)
	payload := bytes.Repeat([]byte("repeat me please "), 32)
	dirs := []archive.DirSource{
		archive.NewDirSource("sound",
			archive.NewFileSource("plain.wav", archive.BytesSource([]byte{1, 2, 3, 4})),
			archive.NewFileSource("packed.wav", archive.BytesSource(payload)).WithCompressed(true),
		),
	}
	require.NoError(t, WriteArchive(sink, v104Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags, // archive default is uncompressed
	}, dirs, nil))

	reader, _ := openReader(t, sink)
	list, err := reader.List()
	require.NoError(t, err)
	require.Len(t, list[0].Files, 2)

	byName := map[string]archive.FileEntry{}
	for _, f := range list[0].Files {
		byName[f.Name] = f
	}

	require.False(t, byName["plain.wav"].Compressed)
	require.True(t, byName["packed.wav"].Compressed)

	var out bytes.Buffer
	require.NoError(t, reader.Extract(byName["plain.wav"], &out))
	require.Equal(t, []byte{1, 2, 3, 4}, out.Bytes())

	out.Reset()
	require.NoError(t, reader.Extract(byName["packed.wav"], &out))
	require.Equal(t, payload, out.Bytes())
}

func TestS4V105LZ4(t *testing.T) {
	sink := tempSink(t)
	payload := bytes.Repeat([]byte("lz4 frame round trip payload "), 128)
	dirs := []archive.DirSource{
		archive.NewDirSource("meshes", archive.NewFileSource("x.nif", archive.BytesSource(payload))),
	}
	require.NoError(t, WriteArchive(sink, v105Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags | consts.CompressedArchive,
	}, dirs, nil))

	reader, _ := openReader(t, sink)
	list, err := reader.List()
	require.NoError(t, err)
	fe := list[0].Files[0]
	require.True(t, fe.Compressed)

	var out bytes.Buffer
	require.NoError(t, reader.Extract(fe, &out))
	require.Equal(t, payload, out.Bytes())
}

func TestS5V105EmbedFileNames(t *testing.T) {
	sink := tempSink(t)
	dirs := []archive.DirSource{
		archive.NewDirSource("meshes", archive.NewFileSource("x.nif", archive.BytesSource([]byte("hello")))),
	}
	require.NoError(t, WriteArchive(sink, v105Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags | consts.EmbedFileNames,
	}, dirs, nil))

	reader, header := openReader(t, sink)
	require.True(t, header.ArchiveFlags.Has(consts.EmbedFileNames))

	list, err := reader.List()
	require.NoError(t, err)
	fe := list[0].Files[0]

	var out bytes.Buffer
	require.NoError(t, reader.Extract(fe, &out))
	require.Equal(t, "hello", out.String())
}

func TestDirOffsetConsistency(t *testing.T) {
	sink := tempSink(t)
	dirs := []archive.DirSource{
		archive.NewDirSource("a", archive.NewFileSource("1", archive.BytesSource([]byte{1}))),
		archive.NewDirSource("bb", archive.NewFileSource("2", archive.BytesSource([]byte{2, 2}))),
	}
	require.NoError(t, WriteArchive(sink, v105Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags,
	}, dirs, nil))

	reader, header := openReader(t, sink)
	// total_dir_name_length: len("a")+1 + len("bb")+1 == 2 + 3 == 5
	require.EqualValues(t, 5, header.TotalDirNameLength)

	list, err := reader.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "a", list[0].Name)
	require.Equal(t, "bb", list[1].Name)

	var out bytes.Buffer
	require.NoError(t, reader.Extract(list[0].Files[0], &out))
	require.Equal(t, []byte{1}, out.Bytes())

	out.Reset()
	require.NoError(t, reader.Extract(list[1].Files[0], &out))
	require.Equal(t, []byte{2, 2}, out.Bytes())
}

func TestRejectsXbox360Flags(t *testing.T) {
	sink := tempSink(t)
	dirs := []archive.DirSource{
		archive.NewDirSource("a", archive.NewFileSource("b", archive.BytesSource([]byte{0}))),
	}
	err := WriteArchive(sink, v105Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags | consts.Xbox360Archive,
	}, dirs, nil)
	require.Error(t, err)
}

func TestRejectsEmptyDirectory(t *testing.T) {
	sink := tempSink(t)
	dirs := []archive.DirSource{archive.NewDirSource("empty")}
	err := WriteArchive(sink, v105Variant{}, WriteOptions{
		ArchiveFlags: consts.DefaultArchiveFlags,
	}, dirs, nil)
	require.Error(t, err)
}
