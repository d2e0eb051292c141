// Package classifier forwards banknote images to an external model-serving
// endpoint that returns a currency label.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/zein-l/Currency-exchange-backend/internal/apperrors"
	portssvc "github.com/zein-l/Currency-exchange-backend/internal/core/ports/services"
)

// Client calls the model-serving HTTP endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ portssvc.CurrencyRecognizer = (*Client)(nil)

// NewClient creates a recognition client for the given model-serving base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Recognize uploads the image as multipart form data and returns the
// predicted currency label.
func (c *Client) Recognize(ctx context.Context, filename string, image io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build recognition request: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("failed to read uploaded image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize recognition request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build recognition request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognition request failed: %w", apperrors.ErrUpstream)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recognition provider returned %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}

	var body struct {
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode recognition response: %w", apperrors.ErrUpstream)
	}
	if body.Currency == "" {
		return "", fmt.Errorf("recognition response has no label: %w", apperrors.ErrUpstream)
	}
	return body.Currency, nil
}
