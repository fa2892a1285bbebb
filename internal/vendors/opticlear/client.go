package opticlear

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/ratelimit"
)

const VENDOR_SLUG = "opticlear"

var ErrNoToken = errors.New("no API token provided")

const listPageSize = 200

// listResponse is one cursor page of the lens catalog. Items stay raw maps
// so the persisted raw payload matches the wire payload.
type listResponse struct {
	Lenses     []map[string]any `json:"lenses"`
	NextCursor string           `json:"next_cursor"`
}

// Client defines the interface for opticlear API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/opticlear_client.go -package=mocks -mock_names=Client=MockOpticlearClient
type Client interface {
	// ListLenses fetches one cursor page of the lens catalog. An empty
	// cursor starts from the beginning; an empty returned cursor means the
	// last page.
	ListLenses(ctx context.Context, cursor string) ([]map[string]any, string, error)

	// Ping verifies the API credentials
	Ping(ctx context.Context) error
}

// OpticlearClient implements the opticlear lens catalog API client
type OpticlearClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	token          string
}

// NewClient creates a new opticlear API client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, token string) Client {
	return &OpticlearClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		token:          token,
	}
}

func (c *OpticlearClient) headers() http.Header {
	return http.Header{"Authorization": []string{"Bearer " + c.token}}
}

// ListLenses fetches one cursor page of the lens catalog
func (c *OpticlearClient) ListLenses(ctx context.Context, cursor string) ([]map[string]any, string, error) {
	if c.token == "" {
		return nil, "", ErrNoToken
	}

	endpoint := fmt.Sprintf("%s/lenses?limit=%d", c.apiURL, listPageSize)
	if cursor != "" {
		endpoint += "&cursor=" + url.QueryEscape(cursor)
	}

	response, err := ratelimit.Request(ctx, c.rateLimitProxy, VENDOR_SLUG, func(ctx context.Context) (*listResponse, error) {
		var out listResponse
		if err := c.httpClient.Get(ctx, endpoint, c.headers(), &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to call opticlear API: %w", err)
	}

	return response.Lenses, response.NextCursor, nil
}

// Ping verifies the API credentials
func (c *OpticlearClient) Ping(ctx context.Context) error {
	if c.token == "" {
		return ErrNoToken
	}

	endpoint := fmt.Sprintf("%s/ping", c.apiURL)

	_, err := ratelimit.Request(ctx, c.rateLimitProxy, VENDOR_SLUG, func(ctx context.Context) (map[string]any, error) {
		var out map[string]any
		err := c.httpClient.Get(ctx, endpoint, c.headers(), &out)
		return out, err
	})
	if err != nil {
		return fmt.Errorf("failed to ping opticlear API: %w", err)
	}
	return nil
}
