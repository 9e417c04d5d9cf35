package ffa

import (
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/internal/options"
	"github.com/arloliu/ffaconv/internal/trace"
	"github.com/arloliu/ffaconv/track"
)

// Encoder turns a track into FFA file bytes.
//
// An Encoder holds only configuration and may be reused for any number of
// tracks.
type Encoder struct {
	chunkSizes []int
	logger     *trace.Logger
	engine     endian.EndianEngine
}

// NewEncoder creates an encoder. WithChunkSizes is required.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{engine: endian.GetLittleEndianEngine()}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	if len(e.chunkSizes) == 0 {
		return nil, errs.ErrNoChunkSizes
	}

	return e, nil
}

// ChunkSizes returns a copy of the configured chunk lengths.
func (e *Encoder) ChunkSizes() []int {
	return append([]int(nil), e.chunkSizes...)
}

// Encode encodes t and returns the file bytes with their layout.
//
// Chunk windows follow the configured lengths over the lowest bone's frame
// count; lengths past the last frame produce no chunk. Each chunk restarts
// its delta accumulator at zero. Fails with errs.ErrNoChunks when no chunk
// was produced.
func (e *Encoder) Encode(t track.Track) ([]byte, Layout, error) {
	windows, err := track.PlanChunks(t.FrameCount(), e.chunkSizes)
	if err != nil {
		return nil, Layout{}, err
	}

	asm := NewAssembler(e.engine)
	for _, w := range windows {
		e.logger.Printf(" > Encoding Chunk #%d...", w.Index)

		chunk := EncodeChunk(t.Slice(w.Start, w.End), e.engine)
		if !asm.AddChunk(chunk) {
			e.logger.Println("   Chunk contains no data. Skipping.")
		}
	}

	if asm.ChunkCount() == 0 {
		return nil, Layout{}, errs.ErrNoChunks
	}

	data, layout, err := asm.Assemble()
	if err != nil {
		return nil, Layout{}, err
	}

	if layout.Padding > 0 {
		e.logger.Printf(" > Aligning sections: added %d byte(s) of 0x77 padding", layout.Padding)
	}

	return data, layout, nil
}
