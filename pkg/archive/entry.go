// Package archive holds the directory/file tree types shared by every
// reader and writer: DirEntry/FileEntry describe what List returns,
// DirSource/FileSource describe what WriteArchive consumes.
package archive

import (
	"github.com/forgekit/bsa-kit/pkg/hash"
)

// FileEntry is one file as materialized by List. Name is empty when the
// archive was written without IncludeFileNames — Hash remains the stable
// key either way.
type FileEntry struct {
	Hash       hash.Hash
	Name       string
	Compressed bool
	Offset     uint32
	Size       uint32
}

// DirEntry is one directory as materialized by List.
type DirEntry struct {
	Hash  hash.Hash
	Name  string
	Files []FileEntry
}
