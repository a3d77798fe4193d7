// Package strcodec implements the three on-disk string encodings used
// across BSA variants: BZString, BString, and ZString.
package strcodec

import (
	"fmt"
	"io"
	"strings"

	"github.com/forgekit/bsa-kit/pkg/bsaerr"
)

// MaxPayload is the largest payload a single length byte can describe.
const MaxPayload = 255

// ToLowerASCII lowercases ASCII bytes only, matching the writer's
// locale-independent name normalization.
func ToLowerASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// ReadBZString reads a 1-byte-length, NUL-terminated string: the length
// byte includes the trailing NUL. An empty string is encoded as [1, 0].
func ReadBZString(src io.Reader) (string, error) {
	l, err := readLen(src, "bzstring")
	if err != nil {
		return "", err
	}
	if l == 0 {
		return "", fmt.Errorf("bzstring: zero length excludes required NUL: %w", bsaerr.ErrBadData)
	}
	buf := make([]byte, l)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("bzstring: short read: %w", bsaerr.ErrBadData)
	}
	if buf[l-1] != 0 {
		return "", fmt.Errorf("bzstring: missing trailing NUL: %w", bsaerr.ErrBadData)
	}
	return string(buf[:l-1]), nil
}

// WriteBZString writes s as a BZString, appending the trailing NUL.
func WriteBZString(sink io.Writer, s string) error {
	if len(s) > MaxPayload-1 {
		return fmt.Errorf("bzstring: payload %d exceeds max %d: %w", len(s), MaxPayload-1, bsaerr.ErrBadInput)
	}
	l := byte(len(s) + 1)
	if _, err := sink.Write([]byte{l}); err != nil {
		return fmt.Errorf("bzstring: %w", bsaerr.ErrIo)
	}
	if _, err := io.WriteString(sink, s); err != nil {
		return fmt.Errorf("bzstring: %w", bsaerr.ErrIo)
	}
	if _, err := sink.Write([]byte{0}); err != nil {
		return fmt.Errorf("bzstring: %w", bsaerr.ErrIo)
	}
	return nil
}

// SizeBZString returns the on-disk byte count of s as a BZString.
func SizeBZString(s string) int {
	return 1 + len(s) + 1
}

// ReadBString reads a 1-byte-length string with no trailing NUL.
func ReadBString(src io.Reader) (string, error) {
	l, err := readLen(src, "bstring")
	if err != nil {
		return "", err
	}
	buf := make([]byte, l)
	if l > 0 {
		if _, err := io.ReadFull(src, buf); err != nil {
			return "", fmt.Errorf("bstring: short read: %w", bsaerr.ErrBadData)
		}
	}
	return string(buf), nil
}

// WriteBString writes s as a BString.
func WriteBString(sink io.Writer, s string) error {
	if len(s) > MaxPayload {
		return fmt.Errorf("bstring: payload %d exceeds max %d: %w", len(s), MaxPayload, bsaerr.ErrBadInput)
	}
	if _, err := sink.Write([]byte{byte(len(s))}); err != nil {
		return fmt.Errorf("bstring: %w", bsaerr.ErrIo)
	}
	if _, err := io.WriteString(sink, s); err != nil {
		return fmt.Errorf("bstring: %w", bsaerr.ErrIo)
	}
	return nil
}

// SizeBString returns the on-disk byte count of s as a BString.
func SizeBString(s string) int {
	return 1 + len(s)
}

// ReadZString reads bytes up to and including the first NUL, returning the
// string without the terminator.
func ReadZString(src io.Reader) (string, error) {
	var b strings.Builder
	var c [1]byte
	for {
		if _, err := io.ReadFull(src, c[:]); err != nil {
			return "", fmt.Errorf("zstring: missing terminator: %w", bsaerr.ErrBadData)
		}
		if c[0] == 0 {
			return b.String(), nil
		}
		b.WriteByte(c[0])
	}
}

// WriteZString writes s followed by a NUL terminator.
func WriteZString(sink io.Writer, s string) error {
	if _, err := io.WriteString(sink, s); err != nil {
		return fmt.Errorf("zstring: %w", bsaerr.ErrIo)
	}
	if _, err := sink.Write([]byte{0}); err != nil {
		return fmt.Errorf("zstring: %w", bsaerr.ErrIo)
	}
	return nil
}

// SizeZString returns the on-disk byte count of s as a ZString, including
// the trailing NUL — this is what total_file_name_length accumulates.
func SizeZString(s string) int {
	return len(s) + 1
}

func readLen(src io.Reader, what string) (int, error) {
	var l [1]byte
	if _, err := io.ReadFull(src, l[:]); err != nil {
		return 0, fmt.Errorf("%s: short read: %w", what, bsaerr.ErrBadData)
	}
	return int(l[0]), nil
}
