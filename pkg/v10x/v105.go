package v10x

import "github.com/forgekit/bsa-kit/pkg/version"

// v105Variant is TES5 Special Edition / Fallout 4 era: wide dir records
// with double padding around offset, LZ4 frame compression.
type v105Variant struct{}

func (v105Variant) Version() version.V10X         { return version.V105 }
func (v105Variant) DirRecordCodec() DirRecordCodec { return wideDirRecordCodec{} }
func (v105Variant) Codec() Codec                   { return lz4Codec{} }
