package encoding

const (
	ShortDeltaMin = -64   // ShortDeltaMin is the smallest delta stored in one byte.
	ShortDeltaMax = 63    // ShortDeltaMax is the largest delta stored in one byte.
	LongDeltaMin  = -8192 // LongDeltaMin is the smallest representable delta.
	LongDeltaMax  = 8191  // LongDeltaMax is the largest representable delta.

	longDeltaTag  = 0xC0 // top two bits of the first byte of a 2-byte code
	longDeltaBias = 1 << 14

	RepeatTag        = 0x80 // RepeatTag marks a run-length repeat byte (10rrrrrr).
	MaxRepeatPerByte = 64   // MaxRepeatPerByte is the number of repeats one repeat byte can cover.
)

// ClampDelta limits delta to the representable 14-bit signed range.
func ClampDelta(delta int) int {
	return max(LongDeltaMin, min(delta, LongDeltaMax))
}

// DeltaCodeLen returns the number of bytes AppendDeltaCode writes for delta.
func DeltaCodeLen(delta int) int {
	delta = ClampDelta(delta)
	if delta >= ShortDeltaMin && delta <= ShortDeltaMax {
		return 1
	}

	return 2
}

// AppendDeltaCode appends the 1- or 2-byte code of delta to dst.
// Out-of-range deltas are clamped first.
func AppendDeltaCode(dst []byte, delta int) []byte {
	delta = ClampDelta(delta)

	if delta >= ShortDeltaMin && delta <= ShortDeltaMax {
		return append(dst, byte(delta)&0x7F) //nolint:gosec
	}

	if delta < 0 {
		delta += longDeltaBias
	}

	return append(dst, longDeltaTag|byte(delta&0x3F), byte((delta>>6)&0xFF)) //nolint:gosec
}

// DecodeDeltaCode reads one delta code from the start of b.
//
// Returns the delta, the number of bytes consumed and false when b is empty,
// truncated or starts with a repeat byte.
func DecodeDeltaCode(b []byte) (int, int, bool) {
	if len(b) == 0 {
		return 0, 0, false
	}

	b0 := b[0]
	switch {
	case b0&0x80 == 0:
		v := int(b0 & 0x7F)
		if v > ShortDeltaMax {
			v -= 0x80
		}

		return v, 1, true
	case b0&longDeltaTag == longDeltaTag:
		if len(b) < 2 {
			return 0, 0, false
		}
		v := int(b0&0x3F) | int(b[1])<<6
		if v > LongDeltaMax {
			v -= longDeltaBias
		}

		return v, 2, true
	default:
		return 0, 0, false
	}
}

// IsRepeatByte reports whether c is a run-length repeat byte.
func IsRepeatByte(c byte) bool {
	return c&longDeltaTag == RepeatTag
}

// RepeatCount returns the number of repeats covered by the repeat byte c.
func RepeatCount(c byte) int {
	return int(c&0x3F) + 1
}

// AppendRepeats appends the repeat bytes covering n additional repeats of
// the previous delta code. Nothing is written for n <= 0.
func AppendRepeats(dst []byte, n int) []byte {
	for n > 0 {
		chunk := min(n, MaxRepeatPerByte)
		dst = append(dst, RepeatTag|byte(chunk-1)) //nolint:gosec
		n -= chunk
	}

	return dst
}
