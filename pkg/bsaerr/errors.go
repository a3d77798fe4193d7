// Package bsaerr defines the sentinel error kinds propagated by the bsa-kit
// reader/writer. Call sites match a kind with errors.Is; context is attached
// by wrapping a sentinel with fmt.Errorf("...: %w", sentinel).
package bsaerr

import "errors"

var (
	// ErrUnknownMagic means the first 4 bytes of the source are not a
	// recognized archive magic number.
	ErrUnknownMagic = errors.New("bsa: unknown magic number")

	// ErrUnknownVersion means the magic was recognized but the numeric
	// version following it is not.
	ErrUnknownVersion = errors.New("bsa: unknown version")

	// ErrUnsupportedVersion means the version is recognized but this
	// library does not implement it (v200/BA2, or a v10X archive with
	// Xbox360Archive or XMemCodec set).
	ErrUnsupportedVersion = errors.New("bsa: unsupported version")

	// ErrBadData means the on-disk data is malformed: a short read, an
	// inconsistent offset or count, a missing string terminator, or a
	// decompression failure.
	ErrBadData = errors.New("bsa: malformed archive data")

	// ErrBadInput means the caller gave the writer something it cannot
	// encode: a name too long for a single length byte, or a directory
	// with zero files.
	ErrBadInput = errors.New("bsa: invalid writer input")

	// ErrIo wraps a failure from the underlying seekable source or sink
	// itself, as opposed to a structural problem with the archive.
	ErrIo = errors.New("bsa: i/o failure")
)
