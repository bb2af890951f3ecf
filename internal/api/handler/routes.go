package handler

import (
	"net/http"

	"github.com/vfg2006/search-insights-api/internal/api/handler/router"
	"github.com/vfg2006/search-insights-api/internal/config"
	"github.com/vfg2006/search-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/search-insights-api/internal/usecases/exporting"
	"github.com/vfg2006/search-insights-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Sites(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sites",
			Method:  http.MethodGet,
			Handler: ListSites(service),
		},
	}
}

func Keywords(cfg *config.Config, service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/keywords",
			Method:  http.MethodGet,
			Handler: GetKeywordReport(cfg, service),
		},
		{
			Path:    "/v1/keywords/search",
			Method:  http.MethodGet,
			Handler: SearchKeywords(service),
		},
		{
			Path:    "/v1/keywords/trend",
			Method:  http.MethodGet,
			Handler: GetKeywordTrend(service),
		},
	}
}

func Export(reportService reporting.Reporter, exportService exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export",
			Method:  http.MethodGet,
			Handler: ExportKeywords(reportService, exportService),
		},
	}
}
