// Package ffa encodes a track.Track into the FFA binary animation container.
//
// Encoding is a single forward pass. The track is cut into frame windows,
// every window becomes one chunk (header, packed mode table, payload area and
// trailer), and the Assembler lays the chunks out behind the file header and
// in front of the BUMP, POP, SNAP and END index sections:
//
//	encoder, err := ffa.NewEncoder(ffa.WithChunkSizes(10, 35, 3))
//	if err != nil {
//		return err
//	}
//
//	data, layout, err := encoder.Encode(t)
//
// All multi-byte fields are little-endian.
package ffa
