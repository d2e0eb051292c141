// Package ipinfo resolves client IPs to country codes via ipinfo.io.
package ipinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
)

const DefaultBaseURL = "https://ipinfo.io"

// Client calls the ipinfo.io JSON API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.GeoLocator = (*Client)(nil)

// NewClient creates a geolocation client. An empty baseURL selects the public
// endpoint.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// CountryForIP resolves ip to an ISO country code.
func (c *Client) CountryForIP(ctx context.Context, ip string) (string, error) {
	u := c.baseURL + "/" + url.PathEscape(ip) + "/json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build geolocation request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geolocation request failed: %w", apperrors.ErrUpstream)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geolocation provider returned %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	var body struct {
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode geolocation response: %w", apperrors.ErrUpstream)
	}
	if body.Country == "" {
		return "", fmt.Errorf("geolocation response has no country: %w", apperrors.ErrUpstream)
	}
	return body.Country, nil
}
