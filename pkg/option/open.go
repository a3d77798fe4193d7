package option

import (
	"github.com/forgekit/bsa-kit/pkg/logging"
)

// ExtractionProgressCallback reports progress while a file is extracted.
type ExtractionProgressCallback func(
	currentFilename string,
	bytesTransferred int64,
	totalBytes int64,
	currentFileNumber int,
	totalFileCount int,
)

// OpenOptions configures Open.
type OpenOptions struct {
	// PreloadList eagerly builds and caches the directory tree on Open
	// instead of lazily on the first List call.
	PreloadList bool
	ExtractionProgressCallback ExtractionProgressCallback
	Logger                     *logging.Logger
}

type OpenOption func(*OpenOptions)

// WithExtractionProgress sets a progress callback invoked during Extract.
func WithExtractionProgress(callback ExtractionProgressCallback) OpenOption {
	return func(o *OpenOptions) {
		o.ExtractionProgressCallback = callback
	}
}

func WithLogger(logger *logging.Logger) OpenOption {
	return func(o *OpenOptions) {
		o.Logger = logger
	}
}

func WithPreloadList(preload bool) OpenOption {
	return func(o *OpenOptions) {
		o.PreloadList = preload
	}
}
