package reporting

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/pkg/utils"
)

var (
	ErrMissingSite    = errors.New("site is required")
	ErrMissingKeyword = errors.New("keyword is required")
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrNoReportLoaded = errors.New("no report loaded in this session")
)

type Service struct {
	cfg        *config.Config
	integrator gsc.GSCIntegrator
	session    *Session
	now        func() time.Time
}

func NewService(cfg *config.Config, integrator gsc.GSCIntegrator, session *Session) Reporter {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		session:    session,
		now:        time.Now,
	}
}

func (s *Service) ListSites() []string {
	return s.integrator.ListSites()
}

func (s *Service) LoadReport(params ReportParams) (*domain.KeywordReport, error) {
	if params.Site == "" {
		return nil, ErrMissingSite
	}

	if params.SortBy == "" {
		params.SortBy = domain.SortByClicks
	}
	if !params.SortBy.Valid() {
		return nil, ErrInvalidSortKey
	}

	if params.Days <= 0 {
		params.Days = s.cfg.Report.DefaultDays
	}
	if params.RowLimit <= 0 {
		params.RowLimit = s.cfg.Report.DefaultRowLimit
	}
	if params.Top <= 0 {
		params.Top = s.cfg.Report.DefaultTopN
	}

	primary, comparison := domain.ReportWindows(s.now(), params.Days)

	rows := s.integrator.QueryKeywords(params.Site, primary, params.RowLimit, params.Device, params.Country)

	report := &domain.KeywordReport{
		Site:      params.Site,
		Window:    primary,
		SortBy:    params.SortBy,
		Rows:      rows,
		FetchedAt: s.now(),
	}

	if rows.Empty() {
		report.NoData = true
		report.TopKeywords = domain.KeywordResultSet{}
		report.TrendCandidates = []string{}
		s.session.Store(report)

		logrus.WithFields(logrus.Fields{
			"site": params.Site,
			"days": params.Days,
		}).Info("report: no keyword rows for the requested window")

		return report, nil
	}

	report.Summary = Summarize(rows)
	report.TopKeywords = rows.TopN(params.SortBy, params.Top)
	report.TrendCandidates = rows.TopN(domain.SortByClicks, s.cfg.Report.TrendCandidates).Queries()

	// The comparison fetch is issued after the primary one completes,
	// never in parallel. An empty comparison set skips the deltas: there
	// is nothing meaningful to compare against.
	if params.Compare {
		prevRows := s.integrator.QueryKeywords(params.Site, comparison, params.RowLimit, params.Device, params.Country)
		if !prevRows.Empty() {
			report.ComparisonWindow = &comparison
			report.Deltas = domain.CompareSummaries(report.Summary, Summarize(prevRows))
		} else {
			logrus.WithFields(logrus.Fields{
				"site": params.Site,
				"days": params.Days,
			}).Info("report: comparison window returned no rows, skipping deltas")
		}
	}

	s.session.Store(report)

	logrus.WithFields(logrus.Fields{
		"site":    params.Site,
		"days":    params.Days,
		"rows":    len(rows),
		"sort_by": string(params.SortBy),
	}).Debug("report: successfully loaded keyword report")

	return report, nil
}

func (s *Service) SearchKeywords(term string) (*domain.KeywordSearchResult, error) {
	report := s.session.Last()
	if report == nil {
		return nil, ErrNoReportLoaded
	}

	matches := report.Rows.Search(term)

	result := &domain.KeywordSearchResult{
		Term:    term,
		Matches: matches,
	}

	if !matches.Empty() {
		result.Summary = Summarize(matches)
	}

	return result, nil
}

func (s *Service) KeywordTrend(site, keyword string, days int) (domain.TrendSeries, error) {
	if site == "" {
		return nil, ErrMissingSite
	}
	if keyword == "" {
		return nil, ErrMissingKeyword
	}
	if days <= 0 {
		days = s.cfg.Report.DefaultDays
	}

	window, _ := domain.ReportWindows(s.now(), days)

	return s.integrator.QueryTrend(site, keyword, window), nil
}

func (s *Service) LastReport() *domain.KeywordReport {
	return s.session.Last()
}

// Summarize derives the headline aggregates of a non-empty result set:
// clicks and impressions are summed, CTR is the plain mean of the
// per-row ratios scaled to percentage points, position is the plain
// mean of the per-row averages. CTR and position are deliberately not
// impression-weighted.
func Summarize(rows domain.KeywordResultSet) *domain.KeywordSummary {
	if rows.Empty() {
		return nil
	}

	df := dataframe.LoadStructs(rows)

	totalClicks := int(df.Col("clicks").Sum())
	totalImpressions := int(df.Col("impressions").Sum())
	avgCTR := utils.RoundWithTwoDecimalPlace(df.Col("ctr").Mean() * 100)
	avgPosition := df.Col("position").Mean()

	return domain.NewKeywordSummary(totalClicks, totalImpressions, avgCTR, avgPosition)
}
