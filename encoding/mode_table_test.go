package encoding

import (
	"testing"

	"github.com/arloliu/ffaconv/format"
	"github.com/stretchr/testify/require"
)

func modes(ms ...format.ChannelMode) [format.ChannelCount]format.ChannelMode {
	var out [format.ChannelCount]format.ChannelMode
	copy(out[:], ms)

	return out
}

func TestModeTable_SingleBone(t *testing.T) {
	z, n := format.ModeZeroConstant, format.ModeNonZeroConstant

	table := NewModeTable(1)
	table.AddBone(modes(z, z, z, n, z, z))

	// bitstring 000000100000010101 + 000000 pad:
	//   00000010 00000101 01000000
	// stage 1 (2-bit halves of each nibble): 00001000 00000101 00010000
	// stage 2 (nibbles of each byte):        10000000 01010000 00000001
	require.Equal(t, []byte{0x80, 0x50, 0x01}, table.Bytes())
	require.Equal(t, 3, table.Size())
	require.Equal(t, 1, table.Bones())
}

func TestModeTable_AllVariable(t *testing.T) {
	v := format.ModeVariable

	table := NewModeTable(1)
	table.AddBone(modes(v, v, v, v, v, v))

	// 111111111111 010101 000000 -> FF F5 40, pair-reversed -> FF 5F 01
	require.Equal(t, []byte{0xFF, 0x5F, 0x01}, table.Bytes())
}

func TestModeTable_FourBonesIsByteAligned(t *testing.T) {
	z := format.ModeZeroConstant

	table := NewModeTable(4)
	for range 4 {
		table.AddBone(modes(z, z, z, z, z, z))
	}

	out := table.Bytes()
	require.Len(t, out, 9)
	require.Equal(t, table.Size(), len(out))
}

func TestModeTable_Empty(t *testing.T) {
	table := NewModeTable(0)
	require.Empty(t, table.Bytes())
	require.Equal(t, 0, table.Size())
}

func TestModeTable_SizeMatchesBytes(t *testing.T) {
	v := format.ModeVariable
	for bones := 1; bones <= 12; bones++ {
		table := NewModeTable(bones)
		for range bones {
			table.AddBone(modes(v, v, v, v, v, v))
		}
		require.Len(t, table.Bytes(), (bones*BoneRecordBits+7)/8, "bones %d", bones)
	}
}

func TestSwapStagesReversePairOrder(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := []byte{byte(c)}
		swapPairsInNibbles(b)
		swapNibbles(b)

		p3, p2, p1, p0 := c>>6&3, c>>4&3, c>>2&3, c&3
		want := byte(p0<<6 | p1<<4 | p2<<2 | p3)
		require.Equal(t, want, b[0], "byte %08b", c)
	}
}
