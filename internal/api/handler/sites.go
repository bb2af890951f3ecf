package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/search-insights-api/pkg/log"
)

type SiteListResponse struct {
	Sites []string `json:"sites"`
}

// ListSites returns the site properties the connected Search Console
// account can read. An empty list can mean either no properties or a
// provider failure, the distinction is not surfaced.
func ListSites(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sites := service.ListSites()

		logger.WithField("count", len(sites)).Debug("sites: listed site properties")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SiteListResponse{Sites: sites}); err != nil {
			logger.WithField("error", err.Error()).Error("sites: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
