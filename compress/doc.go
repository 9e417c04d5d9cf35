// Package compress provides the codecs used for the optional distribution
// sidecar written next to an .ffa file.
//
// Every codec produces a self-describing stream that the matching command
// line tool can read back:
//
//	zstd   Zstandard frame (github.com/klauspost/compress/zstd)     .zst
//	s2     S2 stream (github.com/klauspost/compress/s2)             .s2
//	lz4    LZ4 frame (github.com/pierrec/lz4/v4)                     .lz4
//
// The .ffa file itself is never compressed; the target engine reads it raw.
package compress
