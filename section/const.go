package section

// Fixed record sizes of the FFA container, in bytes.
const (
	FileHeaderSize   = 16 // leading file header
	ChunkHeaderSize  = 32 // header at the start of every chunk
	ChunkTrailerSize = 16 // 0x77 marker at the end of every chunk
	BumpRecordSize   = 16 // one BUMP record per chunk
	PopRecordSize    = 12 // one POP record per chunk
	SnapRecordSize   = 16 // one SNAP record per chunk
	EndRecordSize    = 20 // single END record closing the file

	// SectionAlignment is the alignment of the BUMP section start.
	SectionAlignment = 4
)

const (
	// Filler is the byte used for chunk markers, trailers and alignment padding.
	Filler byte = 0x77

	// ChunkDataBase is the fixed base the chunk header pointers are relative to.
	ChunkDataBase = 0x18
	// ChunkHeaderTag is the constant stored in byte 13 of the chunk header.
	ChunkHeaderTag = 0x1E

	// FileVersion is the value of byte 4 of the file header.
	FileVersion = 0x01

	// BumpRecordKind is the second word of every BUMP record.
	BumpRecordKind = 0x02
	// BumpSecondaryDelta is the distance from a chunk start to the second BUMP pointer.
	BumpSecondaryDelta = 8

	// PopRecordFlag is byte 2 of every POP record.
	PopRecordFlag = 0x01
	// PopRecordTail is the little-endian word at bytes 8-11 of every POP record.
	PopRecordTail = 0x00000100

	// SnapRecordKind is the little-endian word at bytes 4-7 of every SNAP record.
	SnapRecordKind = 0x000A0001
	// SnapSecondaryDelta is the distance from a POP record to the second SNAP pointer.
	SnapSecondaryDelta = 2

	// EndRecordMagic is the little-endian word opening the END record (40 44 10 40).
	EndRecordMagic = 0x40104440
)
