package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/domain"
	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/search-insights-api/pkg/apiErrors"
	"github.com/vfg2006/search-insights-api/pkg/log"
)

// GetKeywordReport loads the keyword report for one site: the primary
// window rows, headline aggregates, top-N selection and, when compare
// is set, the deltas against the preceding window of equal length.
func GetKeywordReport(cfg *config.Config, service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		site := query.Get("site")
		if site == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "site parameter is required", nil)
			return
		}

		days, err := parsePositiveInt(query.Get("days"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be a positive integer", nil)
			return
		}

		rowLimit, err := parsePositiveInt(query.Get("row_limit"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "row_limit must be a positive integer", nil)
			return
		}

		top, err := parsePositiveInt(query.Get("top"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "top must be a positive integer", nil)
			return
		}

		sortBy := domain.SortKey(query.Get("sort_by"))
		if sortBy != "" && !sortBy.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "sort_by must be one of clicks, impressions, ctr, position", nil)
			return
		}

		device := domain.ParseFilterSelection(query.Get("device"), cfg.Report.AllFilterLabels)
		if !device.IsAll() && !domain.ValidDeviceType(device.Value()) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "device must be one of mobile, desktop, tablet", nil)
			return
		}

		country := domain.ParseFilterSelection(query.Get("country"), cfg.Report.AllFilterLabels)
		if !country.IsAll() && !domain.ValidCountryCode(country.Value()) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "country must be an ISO 3166-1 alpha-3 code", nil)
			return
		}

		compare := query.Get("compare") == "true" || query.Get("compare") == "1"

		report, err := service.LoadReport(reporting.ReportParams{
			Site:     site,
			Days:     days,
			RowLimit: rowLimit,
			SortBy:   sortBy,
			Top:      top,
			Device:   device,
			Country:  country,
			Compare:  compare,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"site":  site,
				"error": err.Error(),
			}).Error("keywords: failed to load report")

			handleReportError(w, err)
			return
		}

		if report.NoData {
			logger.WithField("site", site).Info("keywords: report has no data for the requested window")
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"site":  site,
				"error": err.Error(),
			}).Error("keywords: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SearchKeywords runs a substring match over the rows of the last
// loaded report, without refetching from the provider.
func SearchKeywords(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		term := r.URL.Query().Get("q")

		result, err := service.SearchKeywords(term)
		if err != nil {
			logger.WithFields(log.Fields{
				"term":  term,
				"error": err.Error(),
			}).Warn("keywords: search failed")

			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithField("error", err.Error()).Error("keywords: failed to encode search response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type TrendResponse struct {
	Site    string             `json:"site"`
	Keyword string             `json:"keyword"`
	Points  domain.TrendSeries `json:"points"`
}

// GetKeywordTrend returns the daily series of one keyword.
func GetKeywordTrend(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		site := query.Get("site")
		keyword := query.Get("keyword")

		days, err := parsePositiveInt(query.Get("days"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days must be a positive integer", nil)
			return
		}

		series, err := service.KeywordTrend(site, keyword, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"site":    site,
				"keyword": keyword,
				"error":   err.Error(),
			}).Warn("keywords: failed to load trend")

			handleReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(TrendResponse{
			Site:    site,
			Keyword: keyword,
			Points:  series,
		}); err != nil {
			logger.WithField("error", err.Error()).Error("keywords: failed to encode trend response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// parsePositiveInt parses an optional positive integer parameter; empty
// input means "use the default" and returns zero.
func parsePositiveInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	if value <= 0 {
		return 0, errors.Errorf("value must be positive: %d", value)
	}

	return value, nil
}

func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrMissingSite):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "site parameter is required", nil)

	case errors.Is(err, reporting.ErrMissingKeyword):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "keyword parameter is required", nil)

	case errors.Is(err, reporting.ErrInvalidSortKey):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "sort_by must be one of clicks, impressions, ctr, position", nil)

	case errors.Is(err, reporting.ErrNoReportLoaded):
		apiErrors.WriteError(w, apiErrors.ErrNoReportLoaded, "load a report before using this endpoint", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal error", nil)
	}
}
