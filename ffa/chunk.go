package ffa

import (
	"github.com/arloliu/ffaconv/encoding"
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/format"
	"github.com/arloliu/ffaconv/internal/pool"
	"github.com/arloliu/ffaconv/section"
	"github.com/arloliu/ffaconv/track"
)

// EncodeChunk encodes the bones of one frame window as a chunk.
//
// Bones are visited in ascending id order and each bone's channels in wire
// order, for both the mode table and the payload area. The frame count comes
// from the lowest bone's rotX series. Returns nil when data holds no bones.
func EncodeChunk(data track.Track, engine endian.EndianEngine) []byte {
	ids := data.BoneIDs()
	if len(ids) == 0 {
		return nil
	}

	table := encoding.NewModeTable(len(ids))

	payload := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(payload)

	for _, id := range ids {
		rec := data[id]

		var modes [format.ChannelCount]format.ChannelMode
		for _, ch := range format.Channels {
			payload.B, modes[ch] = encoding.AppendChannel(payload.B, rec.Series(ch), engine)
		}
		table.AddBone(modes)
	}

	modeTable := table.Bytes()
	header := section.NewChunkHeader(data[ids[0]].FrameCount(), len(ids), len(modeTable))

	size := section.ChunkHeaderSize + len(modeTable) + payload.Len() + section.ChunkTrailerSize
	chunk := make([]byte, section.ChunkHeaderSize, size)
	header.WriteToSlice(chunk, 0, engine)
	chunk = append(chunk, modeTable...)
	chunk = append(chunk, payload.Bytes()...)

	return section.AppendChunkTrailer(chunk)
}
