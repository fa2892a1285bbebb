package shuron

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/ratelimit"
)

const VENDOR_SLUG = "shuron"

var ErrNoAPIKey = errors.New("no API key provided")

const listPageSize = 100

// listResponse is one page of the partner frames listing. Items stay raw
// maps so the persisted raw payload matches the wire payload.
type listResponse struct {
	Frames     []map[string]any `json:"frames"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
}

// Client defines the interface for shuron partner API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/shuron_client.go -package=mocks -mock_names=Client=MockShuronClient
type Client interface {
	// ListFrames fetches one page of the frames listing and returns the
	// page items plus the total page count
	ListFrames(ctx context.Context, page int) ([]map[string]any, int, error)

	// Ping verifies the API credentials
	Ping(ctx context.Context) error
}

// ShuronClient implements the shuron partner API client
type ShuronClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
}

// NewClient creates a new shuron partner API client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string) Client {
	return &ShuronClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
	}
}

func (c *ShuronClient) headers() http.Header {
	return http.Header{"X-Api-Key": []string{c.apiKey}}
}

// ListFrames fetches one page of the frames listing
func (c *ShuronClient) ListFrames(ctx context.Context, page int) ([]map[string]any, int, error) {
	if c.apiKey == "" {
		return nil, 0, ErrNoAPIKey
	}

	url := fmt.Sprintf("%s/frames?page=%d&per_page=%d", c.apiURL, page, listPageSize)

	response, err := ratelimit.Request(ctx, c.rateLimitProxy, VENDOR_SLUG, func(ctx context.Context) (*listResponse, error) {
		var out listResponse
		if err := c.httpClient.Get(ctx, url, c.headers(), &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to call shuron API: %w", err)
	}

	return response.Frames, response.TotalPages, nil
}

// Ping verifies the API credentials
func (c *ShuronClient) Ping(ctx context.Context) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	url := fmt.Sprintf("%s/ping", c.apiURL)

	_, err := ratelimit.Request(ctx, c.rateLimitProxy, VENDOR_SLUG, func(ctx context.Context) (map[string]any, error) {
		var out map[string]any
		err := c.httpClient.Get(ctx, url, c.headers(), &out)
		return out, err
	})
	if err != nil {
		return fmt.Errorf("failed to ping shuron API: %w", err)
	}
	return nil
}
