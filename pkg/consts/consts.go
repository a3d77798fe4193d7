// Package consts holds archive-format constants shared across the v001 and
// v10X codecs.
package consts

const (
	// HeaderOffset is the fixed byte offset of the v10X directory-record
	// table, always 36: 4 (magic) + 4 (version) + 28 (header body).
	HeaderOffset = 36

	// V001HeaderSize is the byte size of the v001 fixed header (magic,
	// hash_offset, file_count).
	V001HeaderSize = 12

	// V10XDirRecordSizeNarrow is the on-disk size of a v103/v104 directory
	// record (no padding around offset).
	V10XDirRecordSizeNarrow = 16

	// V10XDirRecordSizeWide is the on-disk size of a v105 directory record
	// (two 4-byte padding words around offset).
	V10XDirRecordSizeWide = 24

	// FileRecordSize is the on-disk size of a file record in every v10X
	// variant: name_hash (u64), size (u32), offset (u32).
	FileRecordSize = 16

	// CompressionOverrideBit is bit 30 of a FileRecord's size field.
	CompressionOverrideBit = 0x40000000

	// SizeMask strips the compression-override bit, leaving the real size.
	SizeMask = ^uint32(CompressionOverrideBit)
)

// ArchiveFlag is the v10X archive-wide option bitset.
type ArchiveFlag uint32

const (
	IncludeDirectoryNames      ArchiveFlag = 0x001
	IncludeFileNames           ArchiveFlag = 0x002
	CompressedArchive          ArchiveFlag = 0x004
	RetainDirectoryNames       ArchiveFlag = 0x008
	RetainFileNames            ArchiveFlag = 0x010
	RetainFileNameOffsets      ArchiveFlag = 0x020
	Xbox360Archive             ArchiveFlag = 0x040
	RetainStringsDuringStartup ArchiveFlag = 0x080
	EmbedFileNames             ArchiveFlag = 0x100
	XMemCodec                  ArchiveFlag = 0x200
)

// Has reports whether flag is set in f.
func (f ArchiveFlag) Has(flag ArchiveFlag) bool {
	return f&flag != 0
}

// FileFlag is purely metadata describing which kinds of assets an archive
// carries; it is passed through verbatim and never interpreted by the
// codec.
type FileFlag uint16

const (
	Meshes        FileFlag = 0x001
	Textures      FileFlag = 0x002
	Menus         FileFlag = 0x004
	Sounds        FileFlag = 0x008
	Voices        FileFlag = 0x010
	Shaders       FileFlag = 0x020
	Trees         FileFlag = 0x040
	Fonts         FileFlag = 0x080
	Miscellaneous FileFlag = 0x100
)

// DefaultArchiveFlags matches the reference writer's defaults: name tables
// for both directories and files, no compression.
const DefaultArchiveFlags = IncludeDirectoryNames | IncludeFileNames
