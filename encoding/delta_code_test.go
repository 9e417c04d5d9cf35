package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendDeltaCode_Examples(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"minus one", -1, []byte{0x7F}},
		{"short max", 63, []byte{0x3F}},
		{"short min", -64, []byte{0x40}},
		{"first long", 64, []byte{0xC0, 0x01}},
		{"hundred", 100, []byte{0xE4, 0x01}},
		{"minus sixty-five", -65, []byte{0xFF, 0xFE}},
		{"long max", 8191, []byte{0xFF, 0x7F}},
		{"long min", -8192, []byte{0xC0, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AppendDeltaCode(nil, tt.delta))
			require.Equal(t, len(tt.want), DeltaCodeLen(tt.delta))
		})
	}
}

func TestDeltaCode_ShortRoundTrip(t *testing.T) {
	for d := ShortDeltaMin; d <= ShortDeltaMax; d++ {
		code := AppendDeltaCode(nil, d)
		require.Len(t, code, 1, "delta %d", d)
		require.Zero(t, code[0]&0x80, "delta %d", d)

		got, n, ok := DecodeDeltaCode(code)
		require.True(t, ok)
		require.Equal(t, 1, n)
		require.Equal(t, d, got)
	}
}

func TestDeltaCode_LongRoundTrip(t *testing.T) {
	for d := LongDeltaMin; d <= LongDeltaMax; d++ {
		if d >= ShortDeltaMin && d <= ShortDeltaMax {
			continue
		}

		code := AppendDeltaCode(nil, d)
		require.Len(t, code, 2, "delta %d", d)
		require.Equal(t, byte(0xC0), code[0]&0xC0, "delta %d", d)

		got, n, ok := DecodeDeltaCode(code)
		require.True(t, ok)
		require.Equal(t, 2, n)
		require.Equal(t, d, got)
	}
}

func TestDeltaCode_Clamp(t *testing.T) {
	for _, d := range []int{8192, 10000, 1 << 20, -8193, -30000, -1 << 20} {
		require.Equal(t, AppendDeltaCode(nil, ClampDelta(d)), AppendDeltaCode(nil, d), "delta %d", d)
	}

	require.Equal(t, AppendDeltaCode(nil, 8191), AppendDeltaCode(nil, 9000))
	require.Equal(t, AppendDeltaCode(nil, -8192), AppendDeltaCode(nil, -9000))
	require.Equal(t, 8191, ClampDelta(40000))
	require.Equal(t, -8192, ClampDelta(-40000))
	require.Equal(t, 12, ClampDelta(12))
}

func TestDecodeDeltaCode_Invalid(t *testing.T) {
	_, _, ok := DecodeDeltaCode(nil)
	require.False(t, ok)

	_, _, ok = DecodeDeltaCode([]byte{0xC5})
	require.False(t, ok, "truncated long code")

	_, _, ok = DecodeDeltaCode([]byte{0x85})
	require.False(t, ok, "repeat byte is not a delta code")
}

func TestAppendRepeats(t *testing.T) {
	require.Empty(t, AppendRepeats(nil, 0))
	require.Equal(t, []byte{0x80}, AppendRepeats(nil, 1))
	require.Equal(t, []byte{0xBF}, AppendRepeats(nil, 64))
	require.Equal(t, []byte{0xBF, 0x80}, AppendRepeats(nil, 65))
	require.Equal(t, []byte{0xBF, 0xBF, 0x89}, AppendRepeats(nil, 138))

	for _, c := range AppendRepeats(nil, 1000) {
		require.True(t, IsRepeatByte(c))
		require.GreaterOrEqual(t, c, byte(0x80))
		require.LessOrEqual(t, c, byte(0xBF))
	}
	require.Equal(t, 10, RepeatCount(0x89))
}
