package version

import (
	"bytes"
	"errors"
	"testing"

	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/stretchr/testify/require"
)

func TestWriteReadIdentity(t *testing.T) {
	versions := []Version{
		V001(),
		NewV10X(V103),
		NewV10X(V104),
		NewV10X(V105),
	}
	for _, v := range versions {
		t.Run(v.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, v))
			got, err := Read(&buf)
			require.NoError(t, err)
			require.Equal(t, v, got)
		})
	}
}

func TestReadUnknownVersion(t *testing.T) {
	// "BSA\0" followed by version 0.
	buf := bytes.NewReader([]byte{'B', 'S', 'A', 0, 0, 0, 0, 0})
	_, err := Read(buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, bsaerr.ErrUnknownVersion))
}

func TestReadUnknownMagic(t *testing.T) {
	buf := bytes.NewReader([]byte{'X', 'X', 'X', 'X'})
	_, err := Read(buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, bsaerr.ErrUnknownMagic))
}

func TestReadBA2IsUnsupported(t *testing.T) {
	buf := bytes.NewReader([]byte{'B', 'T', 'D', 'X', 1, 0, 0, 0})
	_, err := Read(buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, bsaerr.ErrUnsupportedVersion))
}

func TestVersionDisplay(t *testing.T) {
	require.Equal(t, "v100", V001().String())
	require.Equal(t, "v105", NewV10X(V105).String())
	require.Equal(t, "BA2 v012", NewV200(12).String())
}
