package idpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
)

func TestExpandSkipsMalformedRanges(t *testing.T) {
	ranges := []domain.IDRange{
		{Start: "100", End: "102"},
		{Start: "abc", End: "105"},
		{Start: "9", End: "7"},
		{Start: "", End: "3"},
		{Start: " 200 ", End: "200"},
	}

	assert.Equal(t, []string{"100", "101", "102", "200"}, Expand(ranges))
}

func TestExpandRejectsHugeRanges(t *testing.T) {
	assert.Empty(t, Expand([]domain.IDRange{{Start: "0", End: "100000"}}))
	assert.Len(t, Expand([]domain.IDRange{{Start: "1", End: "100000"}}), MaxRangeSize)
}

func TestExpandAtInt64Limits(t *testing.T) {
	assert.Equal(t,
		[]string{"9223372036854775805", "9223372036854775806", "9223372036854775807"},
		Expand([]domain.IDRange{{Start: "9223372036854775805", End: "9223372036854775807"}}))
	assert.Equal(t,
		[]string{"-9223372036854775808", "-9223372036854775807"},
		Expand([]domain.IDRange{{Start: "-9223372036854775808", End: "-9223372036854775807"}}))

	// end-start overflows int64 for these spans.
	assert.Empty(t, Expand([]domain.IDRange{{Start: "-9000000000000000000", End: "9000000000000000000"}}))
	assert.Empty(t, Expand([]domain.IDRange{{Start: "-9223372036854775808", End: "9223372036854775807"}}))
}

func TestAvailableIsSetDifference(t *testing.T) {
	cases := []struct {
		name   string
		ranges []domain.IDRange
		used   []string
		want   []string
	}{
		{
			name:   "nothing used",
			ranges: []domain.IDRange{{Start: "1", End: "3"}},
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "some used",
			ranges: []domain.IDRange{{Start: "1", End: "3"}, {Start: "10", End: "11"}},
			used:   []string{"2", "10"},
			want:   []string{"1", "3", "11"},
		},
		{
			name:   "used ids outside the ranges are ignored",
			ranges: []domain.IDRange{{Start: "5", End: "6"}},
			used:   []string{"99"},
			want:   []string{"5", "6"},
		},
		{
			name:   "malformed range contributes nothing",
			ranges: []domain.IDRange{{Start: "x", End: "y"}},
			want:   []string{},
		},
		{
			name:   "all used",
			ranges: []domain.IDRange{{Start: "1", End: "2"}},
			used:   []string{"1", "2"},
			want:   []string{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Available(tc.ranges, tc.used)
			assert.Equal(t, tc.want, got)
			for _, u := range tc.used {
				assert.NotContains(t, got, u)
			}
		})
	}
}

func TestPoolTake(t *testing.T) {
	p := NewPool([]domain.IDRange{{Start: "1", End: "3"}}, nil)
	require.Equal(t, 3, p.Len())

	assert.True(t, p.Take("2"))
	assert.False(t, p.Take("2"))
	assert.Equal(t, []string{"1", "3"}, p.IDs())
	assert.False(t, p.Contains("2"))
}

func TestPoolForEdit(t *testing.T) {
	p := ForEdit("4711")
	assert.Equal(t, []string{"4711"}, p.IDs())
}
