package track

import (
	"testing"

	"github.com/arloliu/ffaconv/errs"
	"github.com/arloliu/ffaconv/format"
	"github.com/stretchr/testify/require"
)

func frame(v int) [format.ChannelCount]int {
	return [format.ChannelCount]int{v, v + 1, v + 2, v + 3, v + 4, v + 5}
}

func TestTrack_AddFrame(t *testing.T) {
	tr := Track{}
	tr.AddFrame(7, frame(0))
	tr.AddFrame(7, frame(10))
	tr.AddFrame(2, frame(100))

	require.Equal(t, 2, tr.BoneCount())
	require.Equal(t, []int{2, 7}, tr.BoneIDs())
	require.Equal(t, []int{0, 10}, tr[7].Series(format.RotX))
	require.Equal(t, []int{5, 15}, tr[7].Series(format.PosZ))
	require.Equal(t, 2, tr[7].FrameCount())
}

func TestTrack_FrameCountUsesLowestBone(t *testing.T) {
	tr := Track{}
	require.Equal(t, 0, tr.FrameCount())

	tr.AddFrame(5, frame(0))
	tr.AddFrame(5, frame(0))
	tr.AddFrame(5, frame(0))
	tr.AddFrame(3, frame(0))

	require.Equal(t, 1, tr.FrameCount())
}

func TestTrack_Validate(t *testing.T) {
	tr := Track{}
	tr.AddFrame(1, frame(0))
	tr.AddFrame(2, frame(0))
	require.NoError(t, tr.Validate())

	tr.AddFrame(2, frame(1))
	err := tr.Validate()
	require.ErrorIs(t, err, errs.ErrFrameCountMismatch)
	require.Contains(t, err.Error(), "bone 2")
}

func TestTrack_Slice(t *testing.T) {
	tr := Track{}
	for i := range 5 {
		tr.AddFrame(1, frame(i*10))
	}
	tr.AddFrame(2, frame(0))

	s := tr.Slice(1, 3)
	require.Equal(t, []int{10, 20}, s[1].Series(format.RotX))
	require.Empty(t, s[2].Series(format.RotX))
	require.Equal(t, 2, s.BoneCount())

	tail := tr.Slice(3, 100)
	require.Equal(t, []int{30, 40}, tail[1].Series(format.RotX))

	// Appending to a slice must not clobber the source.
	s[1][format.RotX] = append(s[1][format.RotX], -1)
	require.Equal(t, 30, tr[1].Series(format.RotX)[3])
}

func TestPlanChunks(t *testing.T) {
	tests := []struct {
		name  string
		total int
		sizes []int
		want  []Window
	}{
		{
			name:  "exact fit",
			total: 10,
			sizes: []int{4, 6},
			want:  []Window{{Index: 1, Start: 0, End: 4}, {Index: 2, Start: 4, End: 10}},
		},
		{
			name:  "last window runs past the end",
			total: 5,
			sizes: []int{3, 10},
			want:  []Window{{Index: 1, Start: 0, End: 3}, {Index: 2, Start: 3, End: 13}},
		},
		{
			name:  "trailing sizes never started",
			total: 2,
			sizes: []int{10, 35, 3},
			want:  []Window{{Index: 1, Start: 0, End: 10}},
		},
		{
			name:  "no frames",
			total: 0,
			sizes: []int{1},
			want:  []Window{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlanChunks(tt.total, tt.sizes)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPlanChunks_InvalidSizes(t *testing.T) {
	_, err := PlanChunks(10, nil)
	require.ErrorIs(t, err, errs.ErrNoChunkSizes)

	_, err = PlanChunks(10, []int{3, 0})
	require.ErrorIs(t, err, errs.ErrInvalidChunkSize)

	_, err = PlanChunks(10, []int{-1})
	require.ErrorIs(t, err, errs.ErrInvalidChunkSize)
}

func TestWindow_Len(t *testing.T) {
	require.Equal(t, 4, Window{Start: 3, End: 7}.Len())
}
