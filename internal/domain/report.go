package domain

import (
	"fmt"
	"time"

	"github.com/vfg2006/search-insights-api/pkg/utils"
)

// ReportWindow is a closed calendar-date interval.
type ReportWindow struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// ReportWindows returns the primary window of the given length ending at
// today, and the comparison window immediately preceding it: equal length,
// no gap, no overlap. The policy is fixed trailing-adjacent, deliberately
// not weekday-aligned.
func ReportWindows(today time.Time, days int) (primary, comparison ReportWindow) {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	primaryStart := today.AddDate(0, 0, -days)
	comparisonStart := primaryStart.AddDate(0, 0, -days)

	primary = ReportWindow{Start: primaryStart, End: today}
	comparison = ReportWindow{Start: comparisonStart, End: primaryStart}
	return primary, comparison
}

// KeywordSummary holds the headline aggregates of one result set. AvgCTR is
// expressed in percentage points; the label fields carry the card-ready
// rendering (compact totals, 2-decimal percentage, 1-decimal rank) and are
// never used by the export path.
type KeywordSummary struct {
	TotalClicks      int     `json:"total_clicks"`
	TotalImpressions int     `json:"total_impressions"`
	AvgCTR           float64 `json:"avg_ctr"`
	AvgPosition      float64 `json:"avg_position"`

	ClicksLabel      string `json:"clicks_label"`
	ImpressionsLabel string `json:"impressions_label"`
	CTRLabel         string `json:"ctr_label"`
	PositionLabel    string `json:"position_label"`
}

// NewKeywordSummary fills the display labels from the raw aggregates.
func NewKeywordSummary(totalClicks, totalImpressions int, avgCTR, avgPosition float64) *KeywordSummary {
	return &KeywordSummary{
		TotalClicks:      totalClicks,
		TotalImpressions: totalImpressions,
		AvgCTR:           avgCTR,
		AvgPosition:      avgPosition,
		ClicksLabel:      utils.FormatCompactNumber(float64(totalClicks)),
		ImpressionsLabel: utils.FormatCompactNumber(float64(totalImpressions)),
		CTRLabel:         fmt.Sprintf("%.2f%%", avgCTR),
		PositionLabel:    fmt.Sprintf("%.1f", avgPosition),
	}
}

// MetricDelta is the period-over-period change of one headline metric.
// PercentChange follows the CalculateGrowth saturation policy.
type MetricDelta struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	PercentChange float64 `json:"percent_change"`
}

// SummaryDeltas carries one delta per headline metric. Position's
// PercentChange is sign-inverted so that a positive value always reads as
// an improvement: a rank moving down in number is a rank moving up in the
// results.
type SummaryDeltas struct {
	Clicks      MetricDelta `json:"clicks"`
	Impressions MetricDelta `json:"impressions"`
	CTR         MetricDelta `json:"ctr"`
	Position    MetricDelta `json:"position"`
}

// CompareSummaries derives the four deltas between two non-empty periods.
func CompareSummaries(current, previous *KeywordSummary) *SummaryDeltas {
	if current == nil || previous == nil {
		return nil
	}

	return &SummaryDeltas{
		Clicks: MetricDelta{
			Current:       float64(current.TotalClicks),
			Previous:      float64(previous.TotalClicks),
			PercentChange: CalculateGrowth(float64(current.TotalClicks), float64(previous.TotalClicks)),
		},
		Impressions: MetricDelta{
			Current:       float64(current.TotalImpressions),
			Previous:      float64(previous.TotalImpressions),
			PercentChange: CalculateGrowth(float64(current.TotalImpressions), float64(previous.TotalImpressions)),
		},
		CTR: MetricDelta{
			Current:       current.AvgCTR,
			Previous:      previous.AvgCTR,
			PercentChange: CalculateGrowth(current.AvgCTR, previous.AvgCTR),
		},
		Position: MetricDelta{
			Current:       current.AvgPosition,
			Previous:      previous.AvgPosition,
			PercentChange: -CalculateGrowth(current.AvgPosition, previous.AvgPosition),
		},
	}
}

// KeywordReport is one complete fetch-then-render cycle result. It is
// rebuilt from scratch on every load and replaces the previous report in
// the session wholesale.
type KeywordReport struct {
	Site             string           `json:"site"`
	Window           ReportWindow     `json:"window"`
	ComparisonWindow *ReportWindow    `json:"comparison_window,omitempty"`
	Summary          *KeywordSummary  `json:"summary,omitempty"`
	Deltas           *SummaryDeltas   `json:"deltas,omitempty"`
	SortBy           SortKey          `json:"sort_by"`
	TopKeywords      KeywordResultSet `json:"top_keywords"`
	TrendCandidates  []string         `json:"trend_candidates"`
	Rows             KeywordResultSet `json:"rows"`
	NoData           bool             `json:"no_data"`
	FetchedAt        time.Time        `json:"fetched_at"`
}

// KeywordSearchResult is the substring-search view over the last fetch.
type KeywordSearchResult struct {
	Term    string           `json:"term"`
	Matches KeywordResultSet `json:"matches"`
	Summary *KeywordSummary  `json:"summary,omitempty"`
}
