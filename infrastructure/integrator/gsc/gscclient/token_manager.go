package gscclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	gscdomain "github.com/vfg2006/search-insights-api/infrastructure/integrator/gsc/domain"
	"github.com/vfg2006/search-insights-api/internal/config"

	"github.com/sirupsen/logrus"
)

// ErrTokenRefreshed signals that an expired token was detected and
// renewed; the caller should retry the original request once.
var ErrTokenRefreshed = errors.New("access token expired and was refreshed, please retry")

// TokenManager manages Google OAuth access tokens. Refresh is always
// lazy: a token is renewed on first use or when a request reports it
// expired, never from a background timer.
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
	}
}

// RefreshToken trades the configured refresh token for a new access token.
func (tm *TokenManager) RefreshToken() error {
	return tm.refreshTokenInternal()
}

func (tm *TokenManager) refreshTokenInternal() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	logrus.Info("Refreshing Search Console access token...")
	tokenResponse, err := ExchangeRefreshToken(
		tm.cfg.GSC.RefreshToken,
		tm.cfg.GSC.ClientID,
		tm.cfg.GSC.ClientSecret,
		tm.cfg.GSC.TokenURL,
	)
	if err != nil {
		errMsg := err.Error()

		if strings.Contains(errMsg, "invalid_grant") {
			logrus.Error("The refresh token was revoked or expired. The OAuth consent flow must be run again")
			return fmt.Errorf("the refresh token is no longer valid and the application "+
				"must be reauthorized through the OAuth consent flow: %w", err)
		}

		logrus.Errorf("Failed to refresh access token: %v", err)
		return fmt.Errorf("failed to obtain a new access token: %w", err)
	}

	tm.cfg.GSC.AccessToken = tokenResponse.AccessToken
	tm.cfg.GSC.TokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)

	logrus.Infof("Access token updated. Expires at: %s",
		tm.cfg.GSC.TokenExpiresAt.Format(time.RFC3339))

	return nil
}

// EnsureValidToken refreshes the token when it is missing or expiring
// within the next minute.
func (tm *TokenManager) EnsureValidToken() error {
	if tm.cfg.GSC.AccessToken == "" {
		logrus.Info("No access token yet. Requesting one...")
		return tm.RefreshToken()
	}

	if time.Until(tm.cfg.GSC.TokenExpiresAt) < time.Minute {
		logrus.Info("Access token is about to expire. Refreshing...")
		return tm.RefreshToken()
	}

	return nil
}

// ParseErrorResponse attempts to parse a Google API error envelope.
func ParseErrorResponse(body []byte) (*gscdomain.ErrorResponse, error) {
	var errorResp gscdomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse reads the HTTP response body and checks for expired
// token errors.
func (tm *TokenManager) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return tm.handleErrorResponse(resp.StatusCode, body)
}

func (tm *TokenManager) handleErrorResponse(statusCode int, body []byte) ([]byte, error) {
	errorResp, parseErr := ParseErrorResponse(body)

	if parseErr == nil && errorResp.IsTokenExpired() {
		return tm.handleExpiredToken(errorResp)
	}

	if statusCode == http.StatusUnauthorized {
		return tm.handleExpiredToken(nil)
	}

	return nil, fmt.Errorf("API request failed. Status: %d, Body: %s", statusCode, string(body))
}

func (tm *TokenManager) handleExpiredToken(errorResp *gscdomain.ErrorResponse) ([]byte, error) {
	if errorResp != nil {
		logrus.Warnf("Expired token reported by the API. Code: %d, Status: %s",
			errorResp.Error.Code, errorResp.Error.Status)
	} else {
		logrus.Warn("Unauthorized response without a parseable error body, treating as expired token")
	}

	if refreshErr := tm.RefreshToken(); refreshErr != nil {
		if strings.Contains(refreshErr.Error(), "must be reauthorized") {
			return nil, fmt.Errorf("token expired permanently and requires manual reauthorization: %w", refreshErr)
		}
		return nil, fmt.Errorf("failed to refresh expired token: %w", refreshErr)
	}

	return nil, ErrTokenRefreshed
}
