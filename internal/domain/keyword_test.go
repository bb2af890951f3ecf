package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordResultSet_TopN(t *testing.T) {
	rows := KeywordResultSet{
		{Query: "alpha", Clicks: 10, Impressions: 200, CTR: 0.05, Position: 5.0},
		{Query: "bravo", Clicks: 50, Impressions: 900, CTR: 0.055, Position: 1.0},
		{Query: "charlie", Clicks: 5, Impressions: 100, CTR: 0.05, Position: 9.0},
		{Query: "delta", Clicks: 20, Impressions: 400, CTR: 0.05, Position: 3.0},
	}

	tests := []struct {
		name     string
		key      SortKey
		n        int
		validate func(t *testing.T, result KeywordResultSet)
	}{
		{
			name: "position takes the smallest values ascending",
			key:  SortByPosition,
			n:    3,
			validate: func(t *testing.T, result KeywordResultSet) {
				assert.Len(t, result, 3)
				assert.Equal(t, []float64{1.0, 3.0, 5.0}, []float64{result[0].Position, result[1].Position, result[2].Position})
			},
		},
		{
			name: "clicks takes the largest values descending",
			key:  SortByClicks,
			n:    3,
			validate: func(t *testing.T, result KeywordResultSet) {
				assert.Len(t, result, 3)
				assert.Equal(t, []int{50, 20, 10}, []int{result[0].Clicks, result[1].Clicks, result[2].Clicks})
			},
		},
		{
			name: "n larger than the set returns everything",
			key:  SortByImpressions,
			n:    10,
			validate: func(t *testing.T, result KeywordResultSet) {
				assert.Len(t, result, 4)
				assert.Equal(t, "bravo", result[0].Query)
			},
		},
		{
			name: "non-positive n returns empty",
			key:  SortByClicks,
			n:    0,
			validate: func(t *testing.T, result KeywordResultSet) {
				assert.Empty(t, result)
			},
		},
		{
			name: "ctr ties keep arrival order",
			key:  SortByCTR,
			n:    4,
			validate: func(t *testing.T, result KeywordResultSet) {
				assert.Equal(t, "bravo", result[0].Query)
				// alpha, charlie and delta share the same CTR and must
				// stay in arrival order.
				assert.Equal(t, "alpha", result[1].Query)
				assert.Equal(t, "charlie", result[2].Query)
				assert.Equal(t, "delta", result[3].Query)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, rows.TopN(tt.key, tt.n))
		})
	}
}

func TestKeywordResultSet_TopN_DoesNotMutateReceiver(t *testing.T) {
	rows := KeywordResultSet{
		{Query: "alpha", Position: 5.0},
		{Query: "bravo", Position: 1.0},
	}

	_ = rows.TopN(SortByPosition, 2)

	assert.Equal(t, "alpha", rows[0].Query)
	assert.Equal(t, "bravo", rows[1].Query)
}

func TestKeywordResultSet_Search(t *testing.T) {
	rows := KeywordResultSet{
		{Query: "best running shoes", Clicks: 30},
		{Query: "Running Socks", Clicks: 10},
		{Query: "winter boots", Clicks: 5},
		{Query: "", Clicks: 2},
	}

	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "case-insensitive containment",
			term:     "RUNNING",
			expected: []string{"best running shoes", "Running Socks"},
		},
		{
			name:     "no matches",
			term:     "sandals",
			expected: []string{},
		},
		{
			name:     "empty term matches nothing",
			term:     "  ",
			expected: []string{},
		},
		{
			name:     "rows without a query never match",
			term:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := rows.Search(tt.term)
			assert.Equal(t, tt.expected, matches.Queries())
		})
	}
}

func TestSortKey_Valid(t *testing.T) {
	assert.True(t, SortByClicks.Valid())
	assert.True(t, SortByImpressions.Valid())
	assert.True(t, SortByCTR.Valid())
	assert.True(t, SortByPosition.Valid())
	assert.False(t, SortKey("spend").Valid())
	assert.False(t, SortKey("").Valid())
}
