package gscclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
)

// QuerySearchAnalytics posts a query body to the searchAnalytics/query
// endpoint of one site property.
func (c *GSCClient) QuerySearchAnalytics(siteURL string, request *gscdomain.SearchAnalyticsRequest) (*gscdomain.ResponseSearchAnalytics, error) {
	return c.querySearchAnalytics(siteURL, request, false)
}

func (c *GSCClient) querySearchAnalytics(siteURL string, request *gscdomain.SearchAnalyticsRequest, retried bool) (*gscdomain.ResponseSearchAnalytics, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("failed to validate access token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/sites/%s/searchAnalytics/query", c.Cfg.GSC.BaseURL, url.PathEscape(siteURL))

	payload, err := json.Marshal(request)
	if err != nil {
		logrus.WithError(err).Error("Failed to encode query request")
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Failed to create request")
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GSC.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Failed to execute request")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		// Retry exactly once with the renewed token.
		if errors.Is(err, ErrTokenRefreshed) {
			if retried {
				return nil, fmt.Errorf("request still unauthorized after a token refresh")
			}
			return c.querySearchAnalytics(siteURL, request, true)
		}
		return nil, err
	}

	var response gscdomain.ResponseSearchAnalytics
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Failed to decode JSON")
		return nil, err
	}

	return &response, nil
}
