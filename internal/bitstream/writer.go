// Package bitstream implements an MSB-first bit buffer.
package bitstream

// Writer accumulates bits most-significant-first into a growable byte slice.
//
// Bits are staged in a 64-bit accumulator and flushed a byte at a time, so
// Bytes is only complete after PadToByte.
type Writer struct {
	buf      []byte
	bitBuf   uint64 // pending bits, right-aligned
	bitCount int    // number of pending bits in bitBuf (< 8 after every write)
}

// NewWriter creates a Writer with room for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// WriteBits appends the low width bits of value, most significant first.
// width must be in [0, 56].
func (w *Writer) WriteBits(value uint64, width int) {
	if width == 0 {
		return
	}

	value &= (1 << width) - 1
	w.bitBuf = (w.bitBuf << width) | value
	w.bitCount += width

	for w.bitCount >= 8 {
		shift := w.bitCount - 8
		w.buf = append(w.buf, byte(w.bitBuf>>shift))
		w.bitCount -= 8
		w.bitBuf &= (1 << w.bitCount) - 1
	}
}

// PadToByte appends zero bits up to the next byte boundary.
func (w *Writer) PadToByte() {
	if w.bitCount == 0 {
		return
	}
	w.WriteBits(0, 8-w.bitCount)
}

// Bytes returns the completed bytes. Pending bits of a partial byte are not included.
func (w *Writer) Bytes() []byte {
	return w.buf
}
