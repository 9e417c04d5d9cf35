package section

import (
	"testing"

	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/errs"
	"github.com/stretchr/testify/require"
)

var le = endian.GetLittleEndianEngine()

func chunkHeaderBytes(h ChunkHeader) []byte {
	b := make([]byte, ChunkHeaderSize)
	h.WriteToSlice(b, 0, le)

	return b
}

func TestChunkHeader_WriteToSlice(t *testing.T) {
	h := NewChunkHeader(2, 1, 3)

	want := []byte{
		0x00, 0x00, 0x02, 0x00, 0x77, 0x77, 0x77, 0x77,
		0x02, 0x00, 0x01, 0x00, 0x00, 0x1E, 0x00, 0x00,
		0x18, 0x00, 0x00, 0x00, 0x1B, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	require.Equal(t, want, chunkHeaderBytes(h))
}

func TestChunkHeader_BoneCountWraps(t *testing.T) {
	h := NewChunkHeader(10, 300, 0)

	require.Equal(t, uint8(300&0xFF), h.BoneCount)
	require.Equal(t, byte(44), chunkHeaderBytes(h)[10])
}

func TestChunkHeader_WriteToSliceOverwritesGarbage(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = 0xEE
	}

	next := NewChunkHeader(35, 2, 5).WriteToSlice(data, 4, le)
	require.Equal(t, 4+ChunkHeaderSize, next)
	require.Equal(t, chunkHeaderBytes(NewChunkHeader(35, 2, 5)), data[4:next])
	require.Equal(t, []byte{0xEE, 0xEE, 0xEE, 0xEE}, data[36:40])
}

func TestParseChunkHeader(t *testing.T) {
	original := NewChunkHeader(35, 40, 90)

	parsed, err := ParseChunkHeader(chunkHeaderBytes(original), le)
	require.NoError(t, err)
	require.Equal(t, original, parsed)
	require.Equal(t, 90, parsed.ModeTableSize())

	_, err = ParseChunkHeader(make([]byte, 10), le)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestAppendChunkTrailer(t *testing.T) {
	out := AppendChunkTrailer([]byte{0x01})

	require.Len(t, out, 1+ChunkTrailerSize)
	for _, c := range out[1:] {
		require.Equal(t, Filler, c)
	}
}
