package v10x

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/pierrec/lz4/v4"
)

// lz4Codec is the v105 compression pipeline: LZ4 frame format, matching
// the original format's lz4 crate usage.
type lz4Codec struct{}

func (lz4Codec) Compress(dst io.Writer, src io.Reader) (int64, error) {
	counter := &countingWriter{w: dst}
	zw := lz4.NewWriter(counter)
	if _, err := io.Copy(zw, src); err != nil {
		return 0, fmt.Errorf("v10x: lz4 compress: %w", bsaerr.ErrIo)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("v10x: lz4 compress: %w", bsaerr.ErrIo)
	}
	return counter.n, nil
}

func (lz4Codec) Uncompress(dst io.Writer, src io.Reader, uncompressedSize uint32) error {
	zr := lz4.NewReader(src)
	if _, err := io.CopyN(dst, zr, int64(uncompressedSize)); err != nil {
		return fmt.Errorf("v10x: lz4 decompress: %w", bsaerr.ErrBadData)
	}
	return nil
}
