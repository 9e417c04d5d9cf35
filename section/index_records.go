package section

import (
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/errs"
)

// BumpRecord points at one chunk.
//
//	0-3    zero
//	4-7    BumpRecordKind
//	8-11   chunk offset
//	12-15  chunk offset + 8
type BumpRecord struct {
	ChunkOffset uint32
}

// WriteToSlice writes the record at offset and returns the next position.
func (r BumpRecord) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+BumpRecordSize]
	engine.PutUint32(b[0:4], 0)
	engine.PutUint32(b[4:8], BumpRecordKind)
	engine.PutUint32(b[8:12], r.ChunkOffset)
	engine.PutUint32(b[12:16], r.ChunkOffset+BumpSecondaryDelta)

	return offset + BumpRecordSize
}

// ParseBumpRecord parses a BUMP record.
func ParseBumpRecord(data []byte, engine endian.EndianEngine) (BumpRecord, error) {
	if len(data) < BumpRecordSize {
		return BumpRecord{}, errs.ErrInvalidRecordSize
	}

	return BumpRecord{ChunkOffset: engine.Uint32(data[8:12])}, nil
}

// PopRecord carries the chunk index.
//
//	0-1    zero
//	2      PopRecordFlag
//	3      chunk index, low 8 bits
//	4-7    zero
//	8-11   PopRecordTail
type PopRecord struct {
	ChunkIndex uint8
}

// NewPopRecord creates the POP record of the zero-based chunk index.
func NewPopRecord(index int) PopRecord {
	return PopRecord{ChunkIndex: uint8(index & 0xFF)} //nolint:gosec
}

// WriteToSlice writes the record at offset and returns the next position.
func (r PopRecord) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+PopRecordSize]
	clear(b)
	b[2] = PopRecordFlag
	b[3] = r.ChunkIndex
	engine.PutUint32(b[8:12], PopRecordTail)

	return offset + PopRecordSize
}

// ParsePopRecord parses a POP record.
func ParsePopRecord(data []byte) (PopRecord, error) {
	if len(data) < PopRecordSize {
		return PopRecord{}, errs.ErrInvalidRecordSize
	}

	return PopRecord{ChunkIndex: data[3]}, nil
}

// SnapRecord ties a BUMP record to its POP record.
//
//	0-3    BUMP record offset
//	4-7    SnapRecordKind (01 00 0A 00)
//	8-11   POP record offset
//	12-15  POP record offset + 2
type SnapRecord struct {
	BumpOffset uint32
	PopOffset  uint32
}

// WriteToSlice writes the record at offset and returns the next position.
func (r SnapRecord) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+SnapRecordSize]
	engine.PutUint32(b[0:4], r.BumpOffset)
	engine.PutUint32(b[4:8], SnapRecordKind)
	engine.PutUint32(b[8:12], r.PopOffset)
	engine.PutUint32(b[12:16], r.PopOffset+SnapSecondaryDelta)

	return offset + SnapRecordSize
}

// ParseSnapRecord parses a SNAP record.
func ParseSnapRecord(data []byte, engine endian.EndianEngine) (SnapRecord, error) {
	if len(data) < SnapRecordSize {
		return SnapRecord{}, errs.ErrInvalidRecordSize
	}

	return SnapRecord{
		BumpOffset: engine.Uint32(data[0:4]),
		PopOffset:  engine.Uint32(data[8:12]),
	}, nil
}

// EndRecord closes the file and locates the SNAP and BUMP sections.
//
//	0-3    EndRecordMagic (40 44 10 40)
//	4-7    zero
//	8      chunk count, low 8 bits
//	9      zero
//	10     chunk count, low 8 bits
//	11     zero
//	12-15  SNAP section offset
//	16-19  BUMP section offset
type EndRecord struct {
	ChunkCount uint8
	SnapOffset uint32
	BumpOffset uint32
}

// WriteToSlice writes the record at offset and returns the next position.
func (r EndRecord) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+EndRecordSize]
	clear(b)
	engine.PutUint32(b[0:4], EndRecordMagic)
	b[8] = r.ChunkCount
	b[10] = r.ChunkCount
	engine.PutUint32(b[12:16], r.SnapOffset)
	engine.PutUint32(b[16:20], r.BumpOffset)

	return offset + EndRecordSize
}

// ParseEndRecord parses the END record.
func ParseEndRecord(data []byte, engine endian.EndianEngine) (EndRecord, error) {
	if len(data) < EndRecordSize {
		return EndRecord{}, errs.ErrInvalidRecordSize
	}

	return EndRecord{
		ChunkCount: data[8],
		SnapOffset: engine.Uint32(data[12:16]),
		BumpOffset: engine.Uint32(data[16:20]),
	}, nil
}
