// Package endian provides byte order utilities for the metacoder word layout.
//
// Every integer in a metacoder buffer (item counts and end offsets) is stored as
// an unsigned big-endian value right-aligned inside a 32-byte word, following
// the 256-bit word convention of contract ABIs. This package exposes the byte
// order through the EndianEngine interface so that word helpers can both
// decode in place and append without temporary allocations:
//
//	engine := endian.GetWordEngine()
//	buf = engine.AppendUint64(buf, value)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetWordEngine returns the engine used for count and offset words.
// Words are always big-endian, independent of the host byte order.
func GetWordEngine() EndianEngine {
	return GetBigEndianEngine()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
