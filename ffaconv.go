// Package ffaconv converts SMD skeletal animations into the FFA binary
// animation format.
//
// # Basic Usage
//
// Converting an SMD stream in memory:
//
//	import "github.com/arloliu/ffaconv"
//
//	f, _ := os.Open("walk.smd")
//	defer f.Close()
//
//	// Cut the animation into chunks of 10, 35 and 3 frames.
//	data, _ := ffaconv.Convert(f, 10, 35, 3)
//	os.WriteFile("walk.ffa", data, 0o644)
//
// Building a track by hand:
//
//	t := track.Track{}
//	var samples [format.ChannelCount]int
//	samples[format.PosX] = 100
//	t.AddFrame(1, samples)
//	t.AddFrame(1, samples)
//
//	encoder, _ := ffaconv.NewEncoder(ffa.WithChunkSizes(2))
//	data, layout, _ := encoder.Encode(t)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the smd and ffa
// packages. For file batches with sidecars and profiles use the convert
// package; for the individual wire pieces use encoding and section.
package ffaconv

import (
	"io"

	"github.com/arloliu/ffaconv/ffa"
	"github.com/arloliu/ffaconv/internal/hash"
	"github.com/arloliu/ffaconv/smd"
	"github.com/arloliu/ffaconv/track"
)

// NewEncoder creates an FFA encoder. ffa.WithChunkSizes is required.
func NewEncoder(opts ...ffa.EncoderOption) (*ffa.Encoder, error) {
	return ffa.NewEncoder(opts...)
}

// ParseSMD reads the skeleton section of an SMD stream with the default
// engine scales.
func ParseSMD(r io.Reader) (track.Track, error) {
	return smd.NewParser(smd.DefaultScales(), nil).Parse(r)
}

// Convert parses an SMD stream with the default scales and encodes it with
// the given chunk lengths.
func Convert(r io.Reader, chunkSizes ...int) ([]byte, error) {
	encoder, err := ffa.NewEncoder(ffa.WithChunkSizes(chunkSizes...))
	if err != nil {
		return nil, err
	}

	t, err := ParseSMD(r)
	if err != nil {
		return nil, err
	}

	data, _, err := encoder.Encode(t)

	return data, err
}

// Fingerprint returns the xxHash64 fingerprint of encoded FFA bytes, the value
// logged for every written file.
func Fingerprint(data []byte) uint64 {
	return hash.Fingerprint(data)
}
