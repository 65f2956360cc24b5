package rectpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(sizes []Size) []int {
	out := make([]int, len(sizes))
	for i, s := range sizes {
		out[i] = s.ID
	}
	return out
}

func TestSortSizes(t *testing.T) {
	base := []Size{
		NewSizeID(0, 10, 10),
		NewSizeID(1, 30, 5),
		NewSizeID(2, 20, 20),
		NewSizeID(3, 5, 5),
	}
	tests := []struct {
		name    string
		compare SortFunc
		reverse bool
		want    []int
	}{
		{"area", SortArea, false, []int{2, 1, 0, 3}},
		{"area reversed", SortArea, true, []int{3, 0, 1, 2}},
		{"perimeter", SortPerimeter, false, []int{2, 1, 0, 3}},
		{"max side", SortMaxSide, false, []int{1, 2, 0, 3}},
		{"min side", SortMinSide, false, []int{2, 0, 1, 3}},
		{"diff", SortDiff, false, []int{1, 0, 2, 3}},
		{"none", nil, false, []int{0, 1, 2, 3}},
		{"none reversed", nil, true, []int{3, 2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := append([]Size(nil), base...)
			SortSizes(sizes, tt.compare, tt.reverse)
			assert.Equal(t, tt.want, ids(sizes))
		})
	}
}

func TestResolveSort(t *testing.T) {
	for _, name := range []string{"area", "Perimeter", "diff", "minside", "maxside", "ratio"} {
		fn, err := ResolveSort(name)
		require.NoError(t, err, name)
		assert.NotNil(t, fn, name)
	}

	fn, err := ResolveSort("none")
	require.NoError(t, err)
	assert.Nil(t, fn)

	_, err = ResolveSort("bogus")
	assert.ErrorIs(t, err, ErrUnknownSort)
}
