package encoding

import (
	"github.com/arloliu/ffaconv/format"
	"github.com/arloliu/ffaconv/internal/bitstream"
)

const (
	ModeBits        = 2        // ModeBits is the width of one channel mode code.
	BoneTrailer     = 0b010101 // BoneTrailer closes every bone record.
	BoneTrailerBits = 6        // BoneTrailerBits is the width of BoneTrailer.

	// BoneRecordBits is the width of one bone record in the mode table.
	BoneRecordBits = format.ChannelCount*ModeBits + BoneTrailerBits
)

// ModeTable packs the per-bone mode records of a chunk.
//
// Bones must be added in ascending bone id order; the record order is the
// only link between the table and the payload area.
type ModeTable struct {
	w     *bitstream.Writer
	bones int
}

// NewModeTable creates a table sized for boneHint bones.
func NewModeTable(boneHint int) *ModeTable {
	return &ModeTable{
		w: bitstream.NewWriter((boneHint*BoneRecordBits + 7) / 8),
	}
}

// AddBone appends the 18-bit record of one bone.
func (t *ModeTable) AddBone(modes [format.ChannelCount]format.ChannelMode) {
	for _, m := range modes {
		t.w.WriteBits(uint64(m), ModeBits)
	}
	t.w.WriteBits(BoneTrailer, BoneTrailerBits)
	t.bones++
}

// Bones returns the number of records added.
func (t *ModeTable) Bones() int {
	return t.bones
}

// Bytes pads the bitstring to a whole byte, applies the wire shuffle and
// returns a new slice with the packed table.
//
// The shuffle runs in two stages over the MSB-first bitstring: first the two
// 2-bit halves of every 4-bit group are exchanged, then the two 4-bit halves
// of every 8-bit group. No bits may be added after Bytes.
func (t *ModeTable) Bytes() []byte {
	t.w.PadToByte()

	out := make([]byte, len(t.w.Bytes()))
	copy(out, t.w.Bytes())

	swapPairsInNibbles(out)
	swapNibbles(out)

	return out
}

// Size returns the packed table size in bytes.
func (t *ModeTable) Size() int {
	return (t.bones*BoneRecordBits + 7) / 8
}

func swapPairsInNibbles(b []byte) {
	for i, c := range b {
		b[i] = (c&0xCC)>>2 | (c&0x33)<<2
	}
}

func swapNibbles(b []byte) {
	for i, c := range b {
		b[i] = c<<4 | c>>4
	}
}
