package section

import (
	"testing"

	"github.com/arloliu/ffaconv/errs"
	"github.com/stretchr/testify/require"
)

func fileHeaderBytes(h FileHeader) []byte {
	b := make([]byte, FileHeaderSize)
	h.WriteToSlice(b, 0, le)

	return b
}

func TestFileHeader_WriteToSlice(t *testing.T) {
	h := FileHeader{EndOffset: 116}

	want := []byte{
		0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x74, 0x00, 0x00, 0x00,
	}
	require.Equal(t, want, fileHeaderBytes(h))
}

func TestParseFileHeader(t *testing.T) {
	parsed, err := ParseFileHeader(fileHeaderBytes(FileHeader{EndOffset: 0x01020304}), le)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), parsed.EndOffset)

	_, err = ParseFileHeader([]byte{0x00}, le)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}
