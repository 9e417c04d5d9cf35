package track

import (
	"fmt"
	"maps"
	"slices"

	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/format"
)

// BoneRecord holds the sample series of one bone, indexed by format.Channel.
type BoneRecord [format.ChannelCount][]int

// Append adds one frame. samples is indexed by format.Channel.
func (r *BoneRecord) Append(samples [format.ChannelCount]int) {
	for ch, v := range samples {
		r[ch] = append(r[ch], v)
	}
}

// Series returns the samples of channel c.
func (r *BoneRecord) Series(c format.Channel) []int {
	return r[c]
}

// FrameCount returns the length of the rotX series.
func (r *BoneRecord) FrameCount() int {
	return len(r[format.RotX])
}

// Track maps bone ids to their records.
//
// Map iteration order is random; everything that feeds the encoder goes
// through BoneIDs, which is sorted ascending.
type Track map[int]*BoneRecord

// AddFrame appends one frame of samples to bone id, creating the bone on
// first use.
func (t Track) AddFrame(id int, samples [format.ChannelCount]int) {
	rec, ok := t[id]
	if !ok {
		rec = &BoneRecord{}
		t[id] = rec
	}
	rec.Append(samples)
}

// BoneIDs returns the bone ids in ascending order.
func (t Track) BoneIDs() []int {
	return slices.Sorted(maps.Keys(t))
}

// BoneCount returns the number of bones.
func (t Track) BoneCount() int {
	return len(t)
}

// FrameCount returns the frame count of the lowest bone id, or 0 for an
// empty track.
func (t Track) FrameCount() int {
	if len(t) == 0 {
		return 0
	}

	return t[slices.Min(slices.Collect(maps.Keys(t)))].FrameCount()
}

// Validate reports the first bone, in ascending id order, whose channel
// lengths differ from each other or from FrameCount.
func (t Track) Validate() error {
	frames := t.FrameCount()
	for _, id := range t.BoneIDs() {
		rec := t[id]
		for _, ch := range format.Channels {
			if n := len(rec[ch]); n != frames {
				return fmt.Errorf("%w: bone %d %s has %d frames, want %d",
					errs.ErrFrameCountMismatch, id, ch, n, frames)
			}
		}
	}

	return nil
}

// Slice returns a track holding frames [start, end) of every bone.
//
// Series shorter than end are cut at their own length, so a bone may end up
// with fewer frames (or none) in the result. The returned series share their
// backing arrays with t.
func (t Track) Slice(start, end int) Track {
	out := make(Track, len(t))
	for id, rec := range t {
		var sliced BoneRecord
		for ch, series := range rec {
			lo, hi := min(start, len(series)), min(end, len(series))
			sliced[ch] = series[lo:hi:hi]
		}
		out[id] = &sliced
	}

	return out
}
