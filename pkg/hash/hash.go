// Package hash implements the two archive name-hashing schemes: V001 for
// the Morrowind flat layout, and V10X for the v103/v104/v105 family. Both
// operate on lowercase, backslash-normalized names; the hash is the stable
// on-disk key, names are redundant metadata.
package hash

import (
	"strings"

	"github.com/forgekit/bsa-kit/pkg/strcodec"
)

// Hash is the 64-bit opaque archive key. Equality is byte equality.
type Hash uint64

const rollingMultiplier = 0x1003F

// extensionType maps known file extensions to a nonzero nibble that folds
// into the high nibble of hash1, matching the family of well-known
// extensions the original format singles out for a distinct hash class.
var extensionType = map[string]uint32{
	".kf":  1,
	".nif": 2,
	".dds": 3,
	".wav": 4,
	".adp": 5,
}

// Normalize lowercases the ASCII letters of a name (other bytes are left
// as they are) and converts forward slashes to the backslash separator the
// archive stores on disk.
func Normalize(name string) string {
	name = strings.ReplaceAll(name, "/", `\`)
	return strcodec.ToLowerASCII(name)
}

// V10X computes the v10X family name hash. name is normalized internally,
// so callers may pass either separator style or casing.
func V10X(name string) Hash {
	name = Normalize(name)

	stem, ext := splitExt(name)
	h1 := hash1(stem)
	h2 := hash2(ext)

	if t, ok := extensionType[ext]; ok {
		h1 = (h1 &^ 0xF0000000) | (t << 28)
	}

	return Hash(uint64(h2)<<32 | uint64(h1))
}

// V001 computes the v001 (Morrowind) name hash: a 32-bit rolling hash
// occupying the low 32 bits of the 64-bit value.
func V001(name string) Hash {
	name = Normalize(name)
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*rollingMultiplier + uint32(name[i])
	}
	return Hash(uint64(h))
}

func splitExt(name string) (stem, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// hash1 is the rolling polynomial over the stem: seeded from the last byte,
// the length, and the first byte, then folded over the interior bytes.
func hash1(stem string) uint32 {
	n := len(stem)
	if n == 0 {
		return 0
	}
	h := uint32(stem[n-1])
	h ^= uint32(n) << 16
	h ^= uint32(stem[0]) << 24
	for i := 1; i < n-1; i++ {
		h = h*rollingMultiplier + uint32(stem[i])
	}
	return h
}

// hash2 is a linear-congruence rolling hash over the extension.
func hash2(ext string) uint32 {
	var h uint32
	for i := 0; i < len(ext); i++ {
		h = h*rollingMultiplier + uint32(ext[i])
	}
	return h
}
