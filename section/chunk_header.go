package section

import (
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/errs"
)

// ChunkHeader is the fixed 32-byte header opening every animation chunk.
//
// Layout (little-endian):
//
//	0-1    zero
//	2-3    frame count
//	4-7    77 77 77 77
//	8-9    frame count (repeated)
//	10     bone count, low 8 bits
//	11-12  zero
//	13     0x1E
//	14-15  zero
//	16-19  0x18
//	20-21  mode table size + 0x18, the start of the payload area
//	22-31  zero
type ChunkHeader struct {
	// FrameCount is the number of frames in the chunk.
	FrameCount uint16
	// BoneCount is the number of bones, stored modulo 256.
	BoneCount uint8
	// PayloadPointer locates the payload area relative to ChunkDataBase.
	PayloadPointer uint16
}

// NewChunkHeader creates the header of a chunk with the given dimensions.
func NewChunkHeader(frameCount int, boneCount int, modeTableSize int) ChunkHeader {
	return ChunkHeader{
		FrameCount:     uint16(frameCount),                    //nolint:gosec
		BoneCount:      uint8(boneCount & 0xFF),               //nolint:gosec
		PayloadPointer: uint16(modeTableSize + ChunkDataBase), //nolint:gosec
	}
}

// WriteToSlice writes the header at offset and returns the next position.
func (h ChunkHeader) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+ChunkHeaderSize]
	clear(b)

	engine.PutUint16(b[2:4], h.FrameCount)
	b[4], b[5], b[6], b[7] = Filler, Filler, Filler, Filler
	engine.PutUint16(b[8:10], h.FrameCount)
	b[10] = h.BoneCount
	b[13] = ChunkHeaderTag
	engine.PutUint32(b[16:20], ChunkDataBase)
	engine.PutUint16(b[20:22], h.PayloadPointer)

	return offset + ChunkHeaderSize
}

// ModeTableSize returns the mode table size implied by PayloadPointer.
func (h ChunkHeader) ModeTableSize() int {
	return int(h.PayloadPointer) - ChunkDataBase
}

// ParseChunkHeader parses a chunk header from the start of data.
func ParseChunkHeader(data []byte, engine endian.EndianEngine) (ChunkHeader, error) {
	if len(data) < ChunkHeaderSize {
		return ChunkHeader{}, errs.ErrInvalidHeaderSize
	}

	return ChunkHeader{
		FrameCount:     engine.Uint16(data[2:4]),
		BoneCount:      data[10],
		PayloadPointer: engine.Uint16(data[20:22]),
	}, nil
}

// AppendChunkTrailer appends the 16-byte 0x77 marker closing a chunk.
func AppendChunkTrailer(dst []byte) []byte {
	for range ChunkTrailerSize {
		dst = append(dst, Filler)
	}

	return dst
}
