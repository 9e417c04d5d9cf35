// Package endian provides byte order utilities for the FFA writer.
//
// The FFA container is little-endian throughout. EndianEngine combines
// ByteOrder and AppendByteOrder from encoding/binary so that fixed-size
// records can be written in place (PutUint32) and variable payloads can be
// appended (AppendUint16) through a single value.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint16(buf, uint16(size))
//	engine.PutUint32(header[12:16], endOffset)
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// AppendInt16 appends v as a two's-complement 16-bit value.
// Values outside the int16 range are truncated to their low 16 bits.
func AppendInt16(engine EndianEngine, b []byte, v int) []byte {
	return engine.AppendUint16(b, uint16(int16(v))) //nolint:gosec
}

// Int16 reads a two's-complement 16-bit value.
func Int16(engine EndianEngine, b []byte) int {
	return int(int16(engine.Uint16(b))) //nolint:gosec
}
