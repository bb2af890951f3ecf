package reporting

import (
	"github.com/vfg2006/search-insights-api/internal/domain"
)

// ReportParams is one dashboard load request after HTTP-level parsing.
// Zero values fall back to the configured defaults.
type ReportParams struct {
	Site     string
	Days     int
	RowLimit int
	SortBy   domain.SortKey
	Top      int
	Device   domain.FilterSelection
	Country  domain.FilterSelection
	Compare  bool
}

// Reporter drives the fetch-then-render cycle of the dashboard. Each
// load replaces the session's last report wholesale; search and export
// operate on that last report without refetching.
type Reporter interface {
	// ListSites returns the site properties the connected account can read.
	ListSites() []string

	// LoadReport fetches keyword rows for one site and window, aggregates
	// the headline metrics and, when requested, compares them against the
	// immediately preceding window of equal length.
	LoadReport(params ReportParams) (*domain.KeywordReport, error)

	// SearchKeywords runs a case-insensitive substring match over the rows
	// of the last loaded report.
	SearchKeywords(term string) (*domain.KeywordSearchResult, error)

	// KeywordTrend fetches the per-day series of one keyword.
	KeywordTrend(site, keyword string, days int) (domain.TrendSeries, error)

	// LastReport returns the last successful load, or nil before the first.
	LastReport() *domain.KeywordReport
}
