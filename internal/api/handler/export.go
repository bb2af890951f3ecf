package handler

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/search-insights-api/internal/usecases/exporting"
	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/search-insights-api/pkg/apiErrors"
	"github.com/vfg2006/search-insights-api/pkg/log"
)

// ExportKeywords serializes the rows of the last loaded report as a CSV
// or XLSX download. Export never refetches: it is a thin serialization
// step over the session's last fetch.
func ExportKeywords(reportService reporting.Reporter, exportService exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format := r.URL.Query().Get("format")

		report := reportService.LastReport()
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoReportLoaded, "load a report before exporting", nil)
			return
		}

		file, err := exportService.Export(format, report)
		if err != nil {
			if errors.Is(err, exporting.ErrNoRows) {
				apiErrors.WriteError(w, apiErrors.ErrNoExportData, "the last report has no rows to export", nil)
				return
			}

			logger.WithFields(log.Fields{
				"format": format,
				"error":  err.Error(),
			}).Error("export: failed to serialize report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to export report", nil)
			return
		}

		logger.WithFields(log.Fields{
			"format": format,
			"name":   file.Name,
			"bytes":  len(file.Content),
		}).Info("export: report serialized")

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		if _, err := w.Write(file.Content); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to write response")
		}
	})
}
