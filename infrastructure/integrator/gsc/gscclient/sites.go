package gscclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
)

// ListSites fetches all site properties the authorized account can read.
func (c *GSCClient) ListSites() ([]gscdomain.SiteEntry, error) {
	return c.listSites(false)
}

func (c *GSCClient) listSites(retried bool) ([]gscdomain.SiteEntry, error) {
	if err := c.EnsureValidToken(); err != nil {
		return nil, fmt.Errorf("failed to validate access token: %w", err)
	}

	endpoint := fmt.Sprintf("%s/sites", c.Cfg.GSC.BaseURL)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.WithError(err).Error("Failed to create request")
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Cfg.GSC.AccessToken)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Failed to execute request")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		if errors.Is(err, ErrTokenRefreshed) {
			if retried {
				return nil, fmt.Errorf("request still unauthorized after a token refresh")
			}
			return c.listSites(true)
		}
		return nil, err
	}

	var response gscdomain.ResponseSiteList
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Failed to decode JSON")
		return nil, err
	}

	return response.SiteEntry, nil
}
