package gscdomain

// ResponseSearchAnalytics mirrors the searchAnalytics/query response body.
type ResponseSearchAnalytics struct {
	Rows                    []APIRow `json:"rows"`
	ResponseAggregationType string   `json:"responseAggregationType,omitempty"`
}

// APIRow is one grouped row. Keys holds one value per requested
// dimension, in the order the dimensions were requested.
type APIRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// ResponseSiteList mirrors the sites list response body.
type ResponseSiteList struct {
	SiteEntry []SiteEntry `json:"siteEntry"`
}

type SiteEntry struct {
	SiteURL         string `json:"siteUrl"`
	PermissionLevel string `json:"permissionLevel"`
}
