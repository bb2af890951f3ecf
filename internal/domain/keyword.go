package domain

import (
	"sort"
	"strings"
)

// SortKey identifies which KeywordRow metric a table or chart is ordered by.
type SortKey string

const (
	SortByClicks      SortKey = "clicks"
	SortByImpressions SortKey = "impressions"
	SortByCTR         SortKey = "ctr"
	SortByPosition    SortKey = "position"
)

// Valid reports whether the key is one of the four supported metrics.
func (k SortKey) Valid() bool {
	switch k {
	case SortByClicks, SortByImpressions, SortByCTR, SortByPosition:
		return true
	}
	return false
}

// KeywordRow is one Search Analytics result tuple for a query string over a
// date range and filter set. CTR is the API-supplied clicks/impressions
// ratio in [0,1] and is never recomputed locally. Position is the average
// rank, 1.0 = top, so lower is better. Clicks and Impressions are int, the
// widest integer kind the dataframe loader maps to a numeric series.
type KeywordRow struct {
	Query       string  `json:"query" dataframe:"query"`
	Clicks      int     `json:"clicks" dataframe:"clicks"`
	Impressions int     `json:"impressions" dataframe:"impressions"`
	CTR         float64 `json:"ctr" dataframe:"ctr"`
	Position    float64 `json:"position" dataframe:"position"`
}

// KeywordResultSet is an ordered collection of rows for one
// (site, window, filters) combination. Row order is provider-defined.
type KeywordResultSet []KeywordRow

// Empty reports whether the provider returned no rows.
func (rs KeywordResultSet) Empty() bool {
	return len(rs) == 0
}

func (r KeywordRow) metric(key SortKey) float64 {
	switch key {
	case SortByClicks:
		return float64(r.Clicks)
	case SortByImpressions:
		return float64(r.Impressions)
	case SortByCTR:
		return r.CTR
	default:
		return r.Position
	}
}

// TopN selects the n best rows for the given sort key: the n smallest
// positions in ascending order, or the n largest values in descending
// order for every other metric. Ties keep the result set's arrival order;
// the secondary ordering is implementation-defined, not part of the
// contract.
func (rs KeywordResultSet) TopN(key SortKey, n int) KeywordResultSet {
	if n <= 0 || rs.Empty() {
		return KeywordResultSet{}
	}

	sorted := make(KeywordResultSet, len(rs))
	copy(sorted, rs)

	if key == SortByPosition {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Position < sorted[j].Position
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].metric(key) > sorted[j].metric(key)
		})
	}

	if n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted
}

// Search returns the rows whose query contains term, case-insensitively.
// Rows without a query never match, and an empty term matches nothing.
func (rs KeywordResultSet) Search(term string) KeywordResultSet {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return KeywordResultSet{}
	}

	matches := make(KeywordResultSet, 0)
	for _, row := range rs {
		if row.Query == "" {
			continue
		}

		if strings.Contains(strings.ToLower(row.Query), term) {
			matches = append(matches, row)
		}
	}

	return matches
}

// Queries returns the query strings in row order.
func (rs KeywordResultSet) Queries() []string {
	queries := make([]string, 0, len(rs))
	for _, row := range rs {
		queries = append(queries, row.Query)
	}
	return queries
}
