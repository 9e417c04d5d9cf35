// Package track holds the normalized in-memory form of a skeletal animation:
// per-bone integer sample series for the six fixed channels, plus the helpers
// that cut a track into the frame windows encoded as chunks.
package track
