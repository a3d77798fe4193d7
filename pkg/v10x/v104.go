package v10x

import "github.com/forgekit/bsa-kit/pkg/version"

// v104Variant is Fallout 3 / New Vegas / TES5 (Skyrim LE): narrow dir
// records, zlib compression.
//
// Unlike some readers circulating for this format, v104 is not a stub:
// it runs the exact same header/dir-record/dir-content/file-name-pool
// protocol as v103 and v105, differing only in this layout and codec.
type v104Variant struct{}

func (v104Variant) Version() version.V10X         { return version.V104 }
func (v104Variant) DirRecordCodec() DirRecordCodec { return narrowDirRecordCodec{} }
func (v104Variant) Codec() Codec                   { return zlibCodec{} }
