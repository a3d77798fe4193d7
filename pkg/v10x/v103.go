package v10x

import "github.com/forgekit/bsa-kit/pkg/version"

// v103Variant is TES4 (Oblivion): narrow dir records, zlib compression.
type v103Variant struct{}

func (v103Variant) Version() version.V10X           { return version.V103 }
func (v103Variant) DirRecordCodec() DirRecordCodec   { return narrowDirRecordCodec{} }
func (v103Variant) Codec() Codec                     { return zlibCodec{} }
