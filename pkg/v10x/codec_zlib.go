package v10x

import (
	"fmt"
	"io"

	"github.com/forgekit/bsa-kit/pkg/bsaerr"
	"github.com/klauspost/compress/zlib"
)

// zlibCodec is the v103/v104 compression pipeline.
type zlibCodec struct{}

func (zlibCodec) Compress(dst io.Writer, src io.Reader) (int64, error) {
	counter := &countingWriter{w: dst}
	zw := zlib.NewWriter(counter)
	if _, err := io.Copy(zw, src); err != nil {
		return 0, fmt.Errorf("v10x: zlib compress: %w", bsaerr.ErrIo)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("v10x: zlib compress: %w", bsaerr.ErrIo)
	}
	return counter.n, nil
}

func (zlibCodec) Uncompress(dst io.Writer, src io.Reader, uncompressedSize uint32) error {
	zr, err := zlib.NewReader(src)
	if err != nil {
		return fmt.Errorf("v10x: zlib header: %w", bsaerr.ErrBadData)
	}
	defer zr.Close()
	if _, err := io.CopyN(dst, zr, int64(uncompressedSize)); err != nil {
		return fmt.Errorf("v10x: zlib decompress: %w", bsaerr.ErrBadData)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
