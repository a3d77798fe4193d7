package option

import (
	"github.com/forgekit/bsa-kit/pkg/consts"
	"github.com/forgekit/bsa-kit/pkg/logging"
	"github.com/forgekit/bsa-kit/pkg/version"
)

// CreateOptions configures WriteArchive.
type CreateOptions struct {
	// Variant selects which v10X sibling (or v001) to emit.
	Variant version.Version
	ArchiveFlags consts.ArchiveFlag
	FileFlags    consts.FileFlag
	Logger       *logging.Logger
}

// DefaultCreateOptions matches the reference writer's defaults: v105, both
// name tables included, no archive-wide compression.
func DefaultCreateOptions() CreateOptions {
	return CreateOptions{
		Variant:      version.NewV10X(version.V105),
		ArchiveFlags: consts.DefaultArchiveFlags,
	}
}

type CreateOption func(*CreateOptions)

func WithVariant(v version.Version) CreateOption {
	return func(o *CreateOptions) {
		o.Variant = v
	}
}

func WithArchiveFlags(flags consts.ArchiveFlag) CreateOption {
	return func(o *CreateOptions) {
		o.ArchiveFlags = flags
	}
}

func WithFileFlags(flags consts.FileFlag) CreateOption {
	return func(o *CreateOptions) {
		o.FileFlags = flags
	}
}

func WithCreateLogger(logger *logging.Logger) CreateOption {
	return func(o *CreateOptions) {
		o.Logger = logger
	}
}
