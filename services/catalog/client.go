package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"showphaze/models"
	"showphaze/utils"
)

// Client is an HTTP client for the Showphaze position catalog. Each lookup is
// one GET against the fetchPositionByName endpoint; no state is retained
// between calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL. The timeout is
// applied per request by the underlying http.Client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// lookupResponse mirrors the catalog's response envelope.
type lookupResponse struct {
	Success bool                     `json:"success"`
	Data    []models.CatalogPosition `json:"data"`
}

// FetchPositionsByName looks up candidate positions for one free-text name.
// A non-2xx response or a transport error is returned as an error; an empty
// candidate list is a valid result.
func (c *Client) FetchPositionsByName(ctx context.Context, name string) ([]models.CatalogPosition, error) {
	logger := utils.GetLogger()

	endpoint := fmt.Sprintf("%s/api/v1/fetchPositionByName?name=%s", c.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to create request for %q: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("catalog lookup failed", zap.String("position", name), zap.Error(err))
		return nil, fmt.Errorf("catalog: lookup for %q failed: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("catalog returned non-OK status",
			zap.String("position", name), zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("catalog: lookup for %q returned status %d", name, resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode response for %q: %w", name, err)
	}

	return body.Data, nil
}
