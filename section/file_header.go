package section

import (
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/errs"
)

// FileHeader is the 16-byte header at the start of an FFA file.
//
// Byte 4 holds FileVersion and bytes 12-15 the absolute offset of the END
// record. Every other byte is zero.
type FileHeader struct {
	EndOffset uint32
}

// WriteToSlice writes the header at offset and returns the next position.
func (h FileHeader) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	b := data[offset : offset+FileHeaderSize]
	clear(b)
	b[4] = FileVersion
	engine.PutUint32(b[12:16], h.EndOffset)

	return offset + FileHeaderSize
}

// ParseFileHeader parses the file header from the start of data.
func ParseFileHeader(data []byte, engine endian.EndianEngine) (FileHeader, error) {
	if len(data) < FileHeaderSize {
		return FileHeader{}, errs.ErrInvalidHeaderSize
	}

	return FileHeader{EndOffset: engine.Uint32(data[12:16])}, nil
}
