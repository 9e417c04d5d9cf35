package encoding

import (
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/internal/pool"
)

// EmptyBlockSize is the size of a block with no samples: the size field alone.
const EmptyBlockSize = 2

// ChannelBlockEncoder builds the delta/RLE block of one channel of one chunk.
//
// Samples are streamed in with WriteSlice; equal consecutive deltas are
// folded as they arrive, so the encoder holds at most one pending run across
// calls. AppendTo finalizes the block (pad + size field) onto a caller buffer.
//
// Note: the encoder is not safe for concurrent use. Call Finish once to
// return its buffer to the pool.
type ChannelBlockEncoder struct {
	prev     int // accumulator, seeded at zero for every block
	runDelta int
	runLen   int
	buf      *pool.ByteBuffer
	engine   endian.EndianEngine
}

// NewChannelBlockEncoder creates an encoder writing sizes with engine.
func NewChannelBlockEncoder(engine endian.EndianEngine) *ChannelBlockEncoder {
	return &ChannelBlockEncoder{
		buf:    pool.GetChunkBuffer(),
		engine: engine,
	}
}

// WriteSlice adds every sample of values in order.
func (e *ChannelBlockEncoder) WriteSlice(values []int) {
	if len(values) == 0 {
		return
	}

	deltas, cleanup := pool.GetIntSlice(len(values))
	defer cleanup()

	prev := e.prev
	for i, v := range values {
		deltas[i] = v - prev
		prev = v
	}

	for i := 0; i < len(deltas); {
		if e.runLen > 0 && deltas[i] == e.runDelta {
			e.runLen++
			i++

			continue
		}

		e.flushRun()

		j := i + 1
		for j < len(deltas) && deltas[j] == deltas[i] {
			j++
		}
		e.runDelta = deltas[i]
		e.runLen = j - i
		i = j
	}

	e.prev = prev
}

func (e *ChannelBlockEncoder) flushRun() {
	if e.runLen == 0 {
		return
	}

	repeatBytes := (e.runLen - 1 + MaxRepeatPerByte - 1) / MaxRepeatPerByte
	e.buf.Grow(DeltaCodeLen(e.runDelta) + repeatBytes)
	e.buf.B = AppendDeltaCode(e.buf.B, e.runDelta)
	e.buf.B = AppendRepeats(e.buf.B, e.runLen-1)
	e.runLen = 0
}

// AppendTo appends the finished block to dst and returns the extended slice.
//
// The block is the little-endian total size, the delta/RLE payload and one
// zero pad byte when the payload length is odd. With no samples the block is
// exactly 0x02 0x00.
func (e *ChannelBlockEncoder) AppendTo(dst []byte) []byte {
	e.flushRun()

	payload := e.buf.Bytes()
	pad := len(payload) & 1
	size := EmptyBlockSize + len(payload) + pad

	dst = e.engine.AppendUint16(dst, uint16(size)) //nolint:gosec
	dst = append(dst, payload...)
	if pad != 0 {
		dst = append(dst, 0x00)
	}

	return dst
}

// Finish returns the internal buffer to the pool. The encoder must not be
// used afterwards.
func (e *ChannelBlockEncoder) Finish() {
	pool.PutChunkBuffer(e.buf)
	e.buf = nil
}

// AppendChannelBlock encodes values as one channel block and appends it to dst.
func AppendChannelBlock(dst []byte, values []int, engine endian.EndianEngine) []byte {
	enc := NewChannelBlockEncoder(engine)
	defer enc.Finish()

	enc.WriteSlice(values)

	return enc.AppendTo(dst)
}

// DecodeChannelBlock expands a channel block back to frames samples.
//
// Returns the samples and the block size read from the size field. The pad
// byte is indistinguishable from a zero delta, so decoding stops once frames
// samples have been produced.
func DecodeChannelBlock(b []byte, frames int, engine endian.EndianEngine) ([]int, int, error) {
	if len(b) < EmptyBlockSize {
		return nil, 0, errs.ErrTruncatedBlock
	}

	size := int(engine.Uint16(b))
	if size < EmptyBlockSize || size > len(b) {
		return nil, 0, errs.ErrTruncatedBlock
	}

	values := make([]int, 0, frames)
	payload := b[EmptyBlockSize:size]
	acc, delta := 0, 0
	haveDelta := false

	for pos := 0; pos < len(payload) && len(values) < frames; {
		c := payload[pos]
		if IsRepeatByte(c) {
			if !haveDelta {
				return nil, 0, errs.ErrTruncatedBlock
			}
			for n := RepeatCount(c); n > 0 && len(values) < frames; n-- {
				acc += delta
				values = append(values, acc)
			}
			pos++

			continue
		}

		d, n, ok := DecodeDeltaCode(payload[pos:])
		if !ok {
			return nil, 0, errs.ErrTruncatedBlock
		}
		delta, haveDelta = d, true
		acc += delta
		values = append(values, acc)
		pos += n
	}

	if len(values) < frames {
		return nil, 0, errs.ErrTruncatedBlock
	}

	return values, size, nil
}
