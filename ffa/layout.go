package ffa

import (
	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/section"
)

// Layout holds the absolute offsets of every part of an FFA file.
//
// It is computed from the chunk sizes alone, before any byte is written.
type Layout struct {
	// ChunkOffsets is the start of each chunk.
	ChunkOffsets []uint32
	// ChunkSizes is the size of each chunk; the last one includes Padding.
	ChunkSizes []int
	// Padding is the number of 0x77 bytes appended to the last chunk.
	Padding int

	BumpOffset uint32
	PopOffset  uint32
	SnapOffset uint32
	EndOffset  uint32

	// FileSize is the total size of the file.
	FileSize int
}

// NewLayout computes the layout of a file holding chunks of the given sizes,
// in order. It fails with errs.ErrNoChunks when sizes is empty.
func NewLayout(sizes []int) (Layout, error) {
	n := len(sizes)
	if n == 0 {
		return Layout{}, errs.ErrNoChunks
	}

	l := Layout{
		ChunkOffsets: make([]uint32, n),
		ChunkSizes:   make([]int, n),
	}
	copy(l.ChunkSizes, sizes)

	offset := section.FileHeaderSize
	for _, size := range sizes {
		offset += size
	}

	if rem := offset % section.SectionAlignment; rem != 0 {
		l.Padding = section.SectionAlignment - rem
		l.ChunkSizes[n-1] += l.Padding
	}

	offset = section.FileHeaderSize
	for i, size := range l.ChunkSizes {
		l.ChunkOffsets[i] = uint32(offset) //nolint:gosec
		offset += size
	}

	l.BumpOffset = uint32(offset)                                 //nolint:gosec
	l.PopOffset = l.BumpOffset + uint32(n*section.BumpRecordSize) //nolint:gosec
	l.SnapOffset = l.PopOffset + uint32(n*section.PopRecordSize)  //nolint:gosec
	l.EndOffset = l.SnapOffset + uint32(n*section.SnapRecordSize) //nolint:gosec
	l.FileSize = int(l.EndOffset) + section.EndRecordSize

	return l, nil
}

// ChunkCount returns the number of chunks.
func (l Layout) ChunkCount() int {
	return len(l.ChunkOffsets)
}

// BumpRecordOffset returns the offset of the BUMP record of chunk i.
func (l Layout) BumpRecordOffset(i int) uint32 {
	return l.BumpOffset + uint32(i*section.BumpRecordSize) //nolint:gosec
}

// PopRecordOffset returns the offset of the POP record of chunk i.
func (l Layout) PopRecordOffset(i int) uint32 {
	return l.PopOffset + uint32(i*section.PopRecordSize) //nolint:gosec
}

// SnapRecordOffset returns the offset of the SNAP record of chunk i.
func (l Layout) SnapRecordOffset(i int) uint32 {
	return l.SnapOffset + uint32(i*section.SnapRecordSize) //nolint:gosec
}
