package gscclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse represents the OAuth token endpoint response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ExchangeRefreshToken trades a long-lived refresh token for a fresh
// access token at the Google OAuth token endpoint.
func ExchangeRefreshToken(refreshToken, clientID, clientSecret, tokenURL string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token must not be empty")
	}

	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("client_id", clientID)
	form.Add("client_secret", clientSecret)
	form.Add("refresh_token", refreshToken)

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Post(tokenURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to call token endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Token refresh failed. Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("token refresh failed. Status: %d, Body: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned an empty access token")
	}

	logrus.Infof("Access token refreshed successfully. Expires in %s.", FormatDuration(tokenResp.ExpiresIn))

	return &tokenResp, nil
}

// FormatDuration renders a duration in seconds in a readable form.
func FormatDuration(seconds int64) string {
	duration := time.Duration(seconds) * time.Second
	hours := duration / time.Hour
	minutes := (duration % time.Hour) / time.Minute

	return fmt.Sprintf("%d hours and %d minutes", hours, minutes)
}

// CalculateTokenExpiration converts an expires_in window into an
// absolute deadline, shaved down so refresh happens before the real
// expiry.
func CalculateTokenExpiration(expiresIn int64) time.Time {
	buffer := int64(60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2
	}

	return time.Now().Add(time.Duration(safeExpiresIn) * time.Second)
}
