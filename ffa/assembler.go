package ffa

import (
	"github.com/arloliu/ffaconv/endian"
	"github.com/arloliu/ffaconv/section"
)

// Assembler collects encoded chunks and lays them out as one FFA file.
//
// Note: the Assembler is not safe for concurrent use.
type Assembler struct {
	chunks [][]byte
	engine endian.EndianEngine
}

// NewAssembler creates an empty assembler.
func NewAssembler(engine endian.EndianEngine) *Assembler {
	return &Assembler{engine: engine}
}

// AddChunk appends an encoded chunk. Empty chunks are ignored and reported
// as not added.
func (a *Assembler) AddChunk(chunk []byte) bool {
	if len(chunk) == 0 {
		return false
	}
	a.chunks = append(a.chunks, chunk)

	return true
}

// ChunkCount returns the number of chunks added.
func (a *Assembler) ChunkCount() int {
	return len(a.chunks)
}

// Layout computes the file layout of the chunks added so far.
func (a *Assembler) Layout() (Layout, error) {
	sizes := make([]int, len(a.chunks))
	for i, c := range a.chunks {
		sizes[i] = len(c)
	}

	return NewLayout(sizes)
}

// Assemble writes the complete file.
//
// Every offset is taken from the Layout, so the file header, chunks and index
// sections are written once, front to back. Fails with errs.ErrNoChunks when
// no chunk was added.
func (a *Assembler) Assemble() ([]byte, Layout, error) {
	layout, err := a.Layout()
	if err != nil {
		return nil, Layout{}, err
	}

	data := make([]byte, layout.FileSize)

	offset := section.FileHeader{EndOffset: layout.EndOffset}.WriteToSlice(data, 0, a.engine)

	for _, c := range a.chunks {
		offset += copy(data[offset:], c)
	}
	for i := range layout.Padding {
		data[offset+i] = section.Filler
	}
	offset += layout.Padding

	for i := range a.chunks {
		offset = section.BumpRecord{ChunkOffset: layout.ChunkOffsets[i]}.WriteToSlice(data, offset, a.engine)
	}
	for i := range a.chunks {
		offset = section.NewPopRecord(i).WriteToSlice(data, offset, a.engine)
	}
	for i := range a.chunks {
		snap := section.SnapRecord{
			BumpOffset: layout.BumpRecordOffset(i),
			PopOffset:  layout.PopRecordOffset(i),
		}
		offset = snap.WriteToSlice(data, offset, a.engine)
	}

	end := section.EndRecord{
		ChunkCount: uint8(len(a.chunks) & 0xFF), //nolint:gosec
		SnapOffset: layout.SnapOffset,
		BumpOffset: layout.BumpOffset,
	}
	end.WriteToSlice(data, offset, a.engine)

	return data, layout, nil
}
