// Package goldprice implements the gold-quote provider against a Yahoo
// Finance chart-style API for the gold futures symbol.
package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	"github.com/zein-l/Currency-exchange-backend/internal/core/domain"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
)

const (
	DefaultBaseURL = "https://query1.finance.yahoo.com"

	// Gold futures, quoted in USD.
	symbol   = "GC=F"
	currency = "USD"
)

// Client calls the chart API for gold quotes.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

var _ portssvc.GoldProvider = (*Client)(nil)

// NewClient creates a gold quote client. An empty baseURL selects the public
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

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

func (c *Client) fetchCloses(ctx context.Context, query url.Values) ([]domain.RatePoint, error) {
	u := c.baseURL + "/v8/finance/chart/" + url.PathEscape(symbol) + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build gold quote request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gold quote request failed: %w", apperrors.ErrUpstream)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gold quote provider returned %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode gold quote response: %w", apperrors.ErrUpstream)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("gold quote response is empty: %w", apperrors.ErrUpstream)
	}

	result := body.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close
	points := make([]domain.RatePoint, 0, len(closes))
	for i, close := range closes {
		if close == nil || i >= len(result.Timestamp) {
			continue
		}
		points = append(points, domain.RatePoint{
			Date: time.Unix(result.Timestamp[i], 0).UTC(),
			Rate: decimal.NewFromFloat(*close).Round(2),
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("gold quote response has no closing prices: %w", apperrors.ErrUpstream)
	}
	return points, nil
}

// Spot returns the latest available closing price.
func (c *Client) Spot(ctx context.Context) (*domain.GoldQuote, error) {
	query := url.Values{}
	query.Set("range", "1d")
	query.Set("interval", "1d")

	points, err := c.fetchCloses(ctx, query)
	if err != nil {
		return nil, err
	}
	return &domain.GoldQuote{
		Symbol:   symbol,
		Currency: currency,
		Price:    points[len(points)-1].Rate,
	}, nil
}

// History returns daily closing prices for the trailing days.
func (c *Client) History(ctx context.Context, days int) (*domain.GoldHistory, error) {
	end := c.now().UTC()
	start := end.AddDate(0, 0, -days)

	query := url.Values{}
	query.Set("period1", strconv.FormatInt(start.Unix(), 10))
	query.Set("period2", strconv.FormatInt(end.Unix(), 10))
	query.Set("interval", "1d")

	points, err := c.fetchCloses(ctx, query)
	if err != nil {
		return nil, err
	}
	return &domain.GoldHistory{
		Symbol:    symbol,
		Currency:  currency,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Prices:    points,
	}, nil
}
