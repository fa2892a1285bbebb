package irisline

import (
	"context"
	"fmt"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

const brandName = "IrisLine"

// contactRecord is one contact lens product from the GraphQL catalog
type contactRecord struct {
	CatalogID string           `json:"catalog_id"`
	Line      *string          `json:"line"`
	Name      *string          `json:"name"`
	Variants  []contactVariant `json:"variants"`
	Photos    []contactPhoto   `json:"photos"`
}

// contactVariant is one power range/base curve combination
type contactVariant struct {
	ID        string   `json:"id"`
	SKU       *string  `json:"sku"`
	PowerMin  *float64 `json:"power_min"`
	PowerMax  *float64 `json:"power_max"`
	BaseCurve *float64 `json:"base_curve"`
	Diameter  *float64 `json:"diameter"`
	Schedule  string   `json:"schedule"`
	PackSize  *int     `json:"pack_size"`
}

// contactPhoto is one product photo
type contactPhoto struct {
	URL   string  `json:"url"`
	Angle *string `json:"angle"`
	Hero  bool    `json:"hero"`
}

// Adapter normalizes irisline contact lens products and fetches the live
// catalog through the GraphQL endpoint.
type Adapter struct {
	client Client
	json   adapter.JSON
}

var (
	_ vendors.Adapter = (*Adapter)(nil)
	_ vendors.Fetcher = (*Adapter)(nil)
	_ vendors.Tester  = (*Adapter)(nil)
)

// NewAdapter creates a new irisline adapter
func NewAdapter(client Client, json adapter.JSON) *Adapter {
	return &Adapter{client: client, json: json}
}

func (a *Adapter) Slug() string {
	return VENDOR_SLUG
}

func (a *Adapter) Category() domain.Category {
	return domain.CategoryContacts
}

// FetchAll fetches the full contact lens catalog in one query
func (a *Adapter) FetchAll(ctx context.Context) ([]map[string]any, error) {
	items, err := a.client.ListProducts(ctx)
	if err != nil {
		return nil, &domain.ExecutionError{Vendor: VENDOR_SLUG, Op: "fetch", Err: err}
	}
	return items, nil
}

// TestConnection verifies the GraphQL endpoint is reachable
func (a *Adapter) TestConnection(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Normalize maps one GraphQL product to a canonical contacts product
func (a *Adapter) Normalize(raw map[string]any) (*domain.CanonicalProduct, error) {
	record, err := a.decode(raw)
	if err != nil {
		return nil, err
	}

	id := canonical.NormalizeString(record.CatalogID)
	if id == "" {
		return nil, &domain.InputValidationError{Vendor: VENDOR_SLUG, Reason: "missing catalog_id"}
	}
	if len(record.Variants) == 0 {
		return nil, &domain.InputValidationError{Vendor: VENDOR_SLUG, CatalogID: id, Reason: "no variants"}
	}

	name := id
	if record.Name != nil {
		if n := canonical.NormalizeString(*record.Name); n != "" {
			name = n
		}
	}
	model := id
	if record.Line != nil {
		if line := canonical.NormalizeString(*record.Line); line != "" {
			model = line
		}
	}

	variants := make([]domain.Variant, 0, len(record.Variants))
	for i, v := range record.Variants {
		if v.ID == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %d has no id", i),
			}
		}

		if v.PowerMin == nil || v.PowerMax == nil {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has no power range", v.ID),
			}
		}
		if *v.PowerMin > *v.PowerMax {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has inverted power range", v.ID),
			}
		}

		schedule := canonical.NormalizeSlug(v.Schedule)
		if schedule == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has no wear schedule", v.ID),
			}
		}

		if v.PackSize == nil {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has no pack size", v.ID),
			}
		}
		if *v.PackSize <= 0 {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has invalid pack size %d", v.ID, *v.PackSize),
			}
		}

		variants = append(variants, domain.Variant{
			ID:  v.ID,
			SKU: v.SKU,
			Contact: &domain.ContactAttributes{
				PowerMin:     *v.PowerMin,
				PowerMax:     *v.PowerMax,
				BaseCurve:    v.BaseCurve,
				DiameterMM:   v.Diameter,
				WearSchedule: schedule,
				PackSize:     *v.PackSize,
			},
		})
	}

	photos := make([]domain.Photo, 0, len(record.Photos))
	heroes := 0
	for i, p := range record.Photos {
		if p.URL == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("photo %d has no url", i),
			}
		}
		if p.Hero {
			heroes++
		}
		photos = append(photos, domain.Photo{
			URL:   p.URL,
			Angle: p.Angle,
			Hero:  p.Hero,
		})
	}
	if heroes > 1 {
		return nil, &domain.InputValidationError{
			Vendor:    VENDOR_SLUG,
			CatalogID: id,
			Reason:    fmt.Sprintf("catalog marks %d hero photos", heroes),
		}
	}

	return &domain.CanonicalProduct{
		CatalogID: id,
		Category:  domain.CategoryContacts,
		Brand:     brandName,
		Model:     model,
		Name:      name,
		Variants:  variants,
		Photos:    photos,
		Source: domain.Source{
			Supplier:   brandName,
			Confidence: domain.ConfidenceVerified,
		},
	}, nil
}

func (a *Adapter) decode(raw map[string]any) (*contactRecord, error) {
	data, err := a.json.Marshal(raw)
	if err != nil {
		return nil, &domain.ExecutionError{Vendor: VENDOR_SLUG, Op: "decode", Err: err}
	}

	var record contactRecord
	if err := a.json.Unmarshal(data, &record); err != nil {
		return nil, &domain.InputValidationError{
			Vendor: VENDOR_SLUG,
			Reason: fmt.Sprintf("malformed record: %v", err),
		}
	}
	return &record, nil
}
