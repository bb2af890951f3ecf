package gscclient

import (
	"net/http"

	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/internal/config"
)

type Client interface {
	QuerySearchAnalytics(siteURL string, request *gscdomain.SearchAnalyticsRequest) (*gscdomain.ResponseSearchAnalytics, error)
	ListSites() ([]gscdomain.SiteEntry, error)
	RefreshToken() error
	EnsureValidToken() error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type GSCClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &GSCClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
	}
	return client
}

func (c *GSCClient) RefreshToken() error {
	return c.TokenManager.RefreshToken()
}

// EnsureValidToken refreshes the access token when it is missing or
// about to expire. Refresh is lazy and synchronous, there is no
// background timer.
func (c *GSCClient) EnsureValidToken() error {
	return c.TokenManager.EnsureValidToken()
}

// HandleResponse reads the HTTP response and checks for expired tokens.
func (c *GSCClient) HandleResponse(resp *http.Response) ([]byte, error) {
	return c.TokenManager.HandleResponse(resp)
}
