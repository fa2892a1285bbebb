package irisline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/ratelimit"
)

const VENDOR_SLUG = "irisline"

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string      `json:"query"`
	Variables     interface{} `json:"variables"`
	OperationName string      `json:"operationName"`
}

// graphqlError is one entry of the standard GraphQL errors array
type graphqlError struct {
	Message string `json:"message"`
}

// productsResponse represents the GraphQL response for the products query.
// Products stay raw maps so the persisted raw payload matches the wire
// payload.
type productsResponse struct {
	Data struct {
		Products []map[string]any `json:"products"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// pingResponse represents the GraphQL response for the ping query
type pingResponse struct {
	Data struct {
		Typename string `json:"__typename"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

// Client defines the interface for irisline GraphQL operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/irisline_client.go -package=mocks -mock_names=Client=MockIrislineClient
type Client interface {
	// ListProducts fetches the full contact lens catalog
	ListProducts(ctx context.Context) ([]map[string]any, error)

	// Ping verifies the GraphQL endpoint is reachable
	Ping(ctx context.Context) error
}

// IrislineClient implements the irisline GraphQL client
type IrislineClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	json           adapter.JSON
}

// NewClient creates a new irisline GraphQL client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, json adapter.JSON) Client {
	return &IrislineClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		json:           json,
	}
}

// ListProducts fetches the full contact lens catalog using GraphQL
func (c *IrislineClient) ListProducts(ctx context.Context) ([]map[string]any, error) {
	query := `query ListProducts {
  products(category: "contacts") {
    catalog_id
    line
    name
    variants {
      id
      sku
      power_min
      power_max
      base_curve
      diameter
      schedule
      pack_size
    }
    photos {
      url
      angle
      hero
    }
  }
}`

	request := GraphQLRequest{
		Query:         query,
		Variables:     nil,
		OperationName: "ListProducts",
	}

	requestBody, err := c.json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	response, err := ratelimit.Request(ctx, c.rateLimitProxy, VENDOR_SLUG, func(ctx context.Context) (*productsResponse, error) {
		responseBody, err := c.httpClient.Post(ctx, c.apiURL, "application/json", nil, bytes.NewReader(requestBody))
		if err != nil {
			return nil, fmt.Errorf("failed to call irisline API: %w", err)
		}

		var out productsResponse
		if err := c.json.Unmarshal(responseBody, &out); err != nil {
			return nil, fmt.Errorf("failed to unmarshal irisline response: %w", err)
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}

	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("irisline API returned error: %s", response.Errors[0].Message)
	}

	return response.Data.Products, nil
}

// Ping verifies the GraphQL endpoint is reachable
func (c *IrislineClient) Ping(ctx context.Context) error {
	request := GraphQLRequest{
		Query:         `query Ping { __typename }`,
		Variables:     nil,
		OperationName: "Ping",
	}

	requestBody, err := c.json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	response, err := ratelimit.Request(ctx, c.rateLimitProxy, VENDOR_SLUG, func(ctx context.Context) (*pingResponse, error) {
		responseBody, err := c.httpClient.Post(ctx, c.apiURL, "application/json", nil, bytes.NewReader(requestBody))
		if err != nil {
			return nil, fmt.Errorf("failed to call irisline API: %w", err)
		}

		var out pingResponse
		if err := c.json.Unmarshal(responseBody, &out); err != nil {
			return nil, fmt.Errorf("failed to unmarshal irisline response: %w", err)
		}
		return &out, nil
	})
	if err != nil {
		return err
	}

	if len(response.Errors) > 0 {
		return fmt.Errorf("irisline API returned error: %s", response.Errors[0].Message)
	}
	if response.Data.Typename == "" {
		return fmt.Errorf("irisline ping returned no data")
	}
	return nil
}
