package section

import (
	"testing"

	"github.com/arloliu/ffaconv/errs"
	"github.com/stretchr/testify/require"
)

func TestBumpRecord(t *testing.T) {
	data := make([]byte, BumpRecordSize)
	next := BumpRecord{ChunkOffset: 16}.WriteToSlice(data, 0, le)

	require.Equal(t, BumpRecordSize, next)
	require.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
		0x10, 0x00, 0x00, 0x00, 0x18, 0x00, 0x00, 0x00,
	}, data)

	parsed, err := ParseBumpRecord(data, le)
	require.NoError(t, err)
	require.Equal(t, uint32(16), parsed.ChunkOffset)
}

func TestPopRecord(t *testing.T) {
	data := make([]byte, PopRecordSize)
	NewPopRecord(3).WriteToSlice(data, 0, le)

	require.Equal(t, []byte{
		0x00, 0x00, 0x01, 0x03, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x01, 0x00, 0x00,
	}, data)

	parsed, err := ParsePopRecord(data)
	require.NoError(t, err)
	require.Equal(t, uint8(3), parsed.ChunkIndex)

	require.Equal(t, uint8(4), NewPopRecord(260).ChunkIndex)
}

func TestSnapRecord(t *testing.T) {
	data := make([]byte, SnapRecordSize)
	SnapRecord{BumpOffset: 72, PopOffset: 88}.WriteToSlice(data, 0, le)

	require.Equal(t, []byte{
		0x48, 0x00, 0x00, 0x00, 0x01, 0x00, 0x0A, 0x00,
		0x58, 0x00, 0x00, 0x00, 0x5A, 0x00, 0x00, 0x00,
	}, data)

	parsed, err := ParseSnapRecord(data, le)
	require.NoError(t, err)
	require.Equal(t, SnapRecord{BumpOffset: 72, PopOffset: 88}, parsed)
}

func TestEndRecord(t *testing.T) {
	data := make([]byte, EndRecordSize)
	EndRecord{ChunkCount: 1, SnapOffset: 100, BumpOffset: 72}.WriteToSlice(data, 0, le)

	require.Equal(t, []byte{
		0x40, 0x44, 0x10, 0x40, 0x00, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x01, 0x00, 0x64, 0x00, 0x00, 0x00,
		0x48, 0x00, 0x00, 0x00,
	}, data)

	parsed, err := ParseEndRecord(data, le)
	require.NoError(t, err)
	require.Equal(t, EndRecord{ChunkCount: 1, SnapOffset: 100, BumpOffset: 72}, parsed)
}

func TestParseRecords_Short(t *testing.T) {
	_, err := ParseBumpRecord(nil, le)
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	_, err = ParsePopRecord(make([]byte, 11))
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	_, err = ParseSnapRecord(make([]byte, 15), le)
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)

	_, err = ParseEndRecord(make([]byte, 19), le)
	require.ErrorIs(t, err, errs.ErrInvalidRecordSize)
}
