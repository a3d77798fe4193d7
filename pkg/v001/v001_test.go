package v001

import (
	"bytes"
	"testing"

	"github.com/forgekit/bsa-kit/pkg/archive"
	"github.com/forgekit/bsa-kit/pkg/version"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	dirs := []archive.DirSource{
		archive.NewDirSource("meshes",
			archive.NewFileSource("x.nif", archive.BytesSource([]byte{1, 2, 3, 4})),
			archive.NewFileSource("y.nif", archive.BytesSource([]byte("hello world"))),
		),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, dirs, nil))

	r := bytes.NewReader(buf.Bytes())
	v, err := version.Read(r)
	require.NoError(t, err)
	require.Equal(t, version.V001(), v)

	reader, err := NewReader(r, nil)
	require.NoError(t, err)

	list, err := reader.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Files, 2)

	var byName = map[string]int{}
	for i, f := range list[0].Files {
		byName[f.Name] = i
	}

	var out bytes.Buffer
	require.NoError(t, reader.Extract(list[0].Files[byName[`meshes\x.nif`]], &out))
	require.Equal(t, []byte{1, 2, 3, 4}, out.Bytes())

	out.Reset()
	require.NoError(t, reader.Extract(list[0].Files[byName[`meshes\y.nif`]], &out))
	require.Equal(t, "hello world", out.String())
}
