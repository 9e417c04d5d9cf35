package track

import (
	"fmt"

	"github.com/arloliu/ffaconv/errs"
)

// Window is the frame range [Start, End) of one planned chunk. End may lie
// past the last frame.
type Window struct {
	// Index is the 1-based position of the requested chunk length.
	Index int
	Start int
	End   int
}

// Len returns the number of frames in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// PlanChunks lays the requested chunk lengths over totalFrames frames.
//
// Windows are consumed sequentially. Planning stops at the first length that
// would start at or after totalFrames. Windows are never cut at totalFrames:
// a bone holding more frames than the reference keeps them in the last
// window, and Track.Slice clamps every series to its own length. Every length
// must be positive.
func PlanChunks(totalFrames int, sizes []int) ([]Window, error) {
	if len(sizes) == 0 {
		return nil, errs.ErrNoChunkSizes
	}

	for i, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: chunk #%d has length %d", errs.ErrInvalidChunkSize, i+1, size)
		}
	}

	windows := make([]Window, 0, len(sizes))
	start := 0
	for i, size := range sizes {
		if start >= totalFrames {
			break
		}

		end := start + size
		windows = append(windows, Window{Index: i + 1, Start: start, End: end})
		start = end
	}

	return windows, nil
}
