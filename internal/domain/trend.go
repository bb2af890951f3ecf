package domain

import (
	"sort"
	"time"
)

// TrendPoint is one calendar day of metrics for a single fixed keyword.
type TrendPoint struct {
	Date        time.Time `json:"date"`
	Clicks      int       `json:"clicks"`
	Impressions int       `json:"impressions"`
	CTR         float64   `json:"ctr"`
	Position    float64   `json:"position"`
}

// TrendSeries is the per-day series for one keyword, ascending by date.
type TrendSeries []TrendPoint

// SortByDate orders the series ascending in place.
func (s TrendSeries) SortByDate() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Date.Before(s[j].Date)
	})
}

// Empty reports whether the keyword produced no daily rows.
func (s TrendSeries) Empty() bool {
	return len(s) == 0
}
