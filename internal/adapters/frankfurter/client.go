// Package frankfurter implements the market-data provider against the
// frankfurter.app public API (no key required).
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
)

const DefaultBaseURL = "https://api.frankfurter.app"

// Client calls the frankfurter.app REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

var _ portssvc.RateProvider = (*Client)(nil)

// NewClient creates a frankfurter client. An empty baseURL selects the public
// endpoint.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		now:        time.Now,
	}
}

type latestResponse struct {
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

type rangeResponse struct {
	Rates map[string]map[string]decimal.Decimal `json:"rates"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build rates request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rates request failed: %w", apperrors.ErrUpstream)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rates provider returned %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode rates response: %w", apperrors.ErrUpstream)
	}
	return nil
}

// LiveRates fetches the latest quotes from source into each requested
// currency, keyed by the concatenated pair code.
func (c *Client) LiveRates(ctx context.Context, source string, currencies []string) (*domain.LiveRates, error) {
	if len(currencies) == 0 {
		currencies = []string{"EUR", "GBP", "CAD", "JPY", "USD"}
	}
	query := url.Values{}
	query.Set("from", source)
	query.Set("to", strings.Join(currencies, ","))

	var body latestResponse
	if err := c.get(ctx, "/latest", query, &body); err != nil {
		return nil, err
	}
	if body.Rates == nil {
		return nil, fmt.Errorf("rates response has no rates field: %w", apperrors.ErrUpstream)
	}

	quotes := make(map[string]decimal.Decimal, len(body.Rates))
	for currency, rate := range body.Rates {
		quotes[source+currency] = rate
	}
	return &domain.LiveRates{
		Source:    source,
		Timestamp: body.Date,
		Quotes:    quotes,
	}, nil
}

// HistoricalRates fetches the trailing days of source->currency quotes as a
// date-ordered series.
func (c *Client) HistoricalRates(ctx context.Context, source, currency string, days int) ([]domain.RatePoint, error) {
	end := c.now().UTC().Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	query := url.Values{}
	query.Set("from", source)
	query.Set("to", currency)

	path := fmt.Sprintf("/%s..%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	var body rangeResponse
	if err := c.get(ctx, path, query, &body); err != nil {
		return nil, err
	}
	if body.Rates == nil {
		return nil, fmt.Errorf("rates response has no rates field: %w", apperrors.ErrUpstream)
	}

	points := make([]domain.RatePoint, 0, len(body.Rates))
	for day, quotes := range body.Rates {
		rate, ok := quotes[currency]
		if !ok {
			continue
		}
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, fmt.Errorf("rates response has malformed date %q: %w", day, apperrors.ErrUpstream)
		}
		points = append(points, domain.RatePoint{Date: date, Rate: rate})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}
