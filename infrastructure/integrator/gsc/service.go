package gsc

import (
	"time"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/gscclient"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
)

// GSCIntegrator is the data-fetch capability the reporting layer
// consumes. Provider and transport failures never cross this boundary:
// they are logged and surfaced as empty results, so callers cannot
// distinguish "no data" from "query failed".
type GSCIntegrator interface {
	ListSites() []string
	QueryKeywords(siteURL string, window domain.ReportWindow, rowLimit int, device, country domain.FilterSelection) domain.KeywordResultSet
	QueryTrend(siteURL, keyword string, window domain.ReportWindow) domain.TrendSeries
}

type GSCService struct {
	cfg    *config.Config
	Client gscclient.Client
}

func New(cfg *config.Config, client gscclient.Client) GSCIntegrator {
	return &GSCService{
		cfg:    cfg,
		Client: client,
	}
}

// ListSites returns the site URLs the account can read. Failures
// produce an empty list.
func (s *GSCService) ListSites() []string {
	entries, err := s.Client.ListSites()
	if err != nil {
		logrus.WithField("error", err.Error()).Error("sites: failed to list site properties")
		return []string{}
	}

	sites := make([]string, 0, len(entries))
	for _, entry := range entries {
		sites = append(sites, entry.SiteURL)
	}

	return sites
}

// QueryKeywords fetches per-query keyword rows for one site and window.
func (s *GSCService) QueryKeywords(
	siteURL string,
	window domain.ReportWindow,
	rowLimit int,
	device, country domain.FilterSelection,
) domain.KeywordResultSet {
	request, err := gscdomain.NewQueryRequest(
		window.Start,
		window.End,
		[]string{gscdomain.DimensionQuery},
		rowLimit,
		device,
		country,
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site":  siteURL,
			"error": err.Error(),
		}).Error("keywords: failed to build query request")
		return domain.KeywordResultSet{}
	}

	resp, err := s.Client.QuerySearchAnalytics(siteURL, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site":       siteURL,
			"start_date": request.StartDate,
			"end_date":   request.EndDate,
			"error":      err.Error(),
		}).Error("keywords: failed to query search analytics")
		return domain.KeywordResultSet{}
	}

	rows := make(domain.KeywordResultSet, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		if len(row.Keys) == 0 {
			continue
		}

		rows = append(rows, domain.KeywordRow{
			Query:       row.Keys[0],
			Clicks:      int(row.Clicks),
			Impressions: int(row.Impressions),
			CTR:         row.CTR,
			Position:    row.Position,
		})
	}

	logrus.WithFields(logrus.Fields{
		"site": siteURL,
		"rows": len(rows),
	}).Debug("keywords: successfully queried search analytics")

	return rows
}

// QueryTrend fetches the per-day series of one keyword, ascending by date.
func (s *GSCService) QueryTrend(siteURL, keyword string, window domain.ReportWindow) domain.TrendSeries {
	request, err := gscdomain.NewTrendRequest(window.Start, window.End, keyword)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site":    siteURL,
			"keyword": keyword,
			"error":   err.Error(),
		}).Error("trend: failed to build trend request")
		return domain.TrendSeries{}
	}

	resp, err := s.Client.QuerySearchAnalytics(siteURL, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site":    siteURL,
			"keyword": keyword,
			"error":   err.Error(),
		}).Error("trend: failed to query search analytics")
		return domain.TrendSeries{}
	}

	series := make(domain.TrendSeries, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		if len(row.Keys) == 0 {
			continue
		}

		day, parseErr := time.Parse(time.DateOnly, row.Keys[0])
		if parseErr != nil {
			logrus.WithFields(logrus.Fields{
				"site":  siteURL,
				"value": row.Keys[0],
			}).Warn("trend: skipping row with unparseable date key")
			continue
		}

		series = append(series, domain.TrendPoint{
			Date:        day,
			Clicks:      int(row.Clicks),
			Impressions: int(row.Impressions),
			CTR:         row.CTR,
			Position:    row.Position,
		})
	}

	series.SortByDate()

	return series
}
