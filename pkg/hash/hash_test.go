package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestV10XStability(t *testing.T) {
	a := V10X(`textures\foo.dds`)
	b := V10X("textures/foo.dds")
	c := V10X("TEXTURES/FOO.DDS")

	require.Equal(t, a, b)
	require.Equal(t, a, c)
	require.NotZero(t, a)
}

func TestV10XDiffersByExtensionType(t *testing.T) {
	dds := V10X("foo.dds")
	txt := V10X("foo.txt")
	require.NotEqual(t, dds, txt)
}

func TestV001Stability(t *testing.T) {
	a := V001(`meshes\x\foo.nif`)
	b := V001("MESHES/X/FOO.NIF")
	require.Equal(t, a, b)
}

func TestNormalize(t *testing.T) {
	require.Equal(t, `textures\foo.dds`, Normalize("TEXTURES/foo.DDS"))
}
