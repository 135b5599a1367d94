package config

import "archive/zip"

//go:generate go tool go-enum --marshal --names --values

// Compression used when archive is packed back.
// ENUM(store, deflate)
type CompressionMethod int

// ZipMethod returns zip method identifier.
func (c CompressionMethod) ZipMethod() uint16 {
	switch c {
	case CompressionMethodStore:
		return zip.Store
	case CompressionMethodDeflate:
		return zip.Deflate
	default:
		// this should never happen
		panic("unsupported compression method requested")
	}
}
