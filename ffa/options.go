package ffa

import (
	"fmt"

	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/internal/options"
	"github.com/arloliu/ffaconv/internal/trace"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithLogger sets the progress logger. A nil logger is silent.
func WithLogger(logger *trace.Logger) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.logger = logger
	})
}

// WithChunkSizes sets the frame length of each chunk, in order. Every length
// must be positive.
func WithChunkSizes(sizes ...int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if len(sizes) == 0 {
			return errs.ErrNoChunkSizes
		}
		for i, size := range sizes {
			if size <= 0 {
				return fmt.Errorf("%w: chunk #%d has length %d", errs.ErrInvalidChunkSize, i+1, size)
			}
		}
		e.chunkSizes = append([]int(nil), sizes...)

		return nil
	})
}
