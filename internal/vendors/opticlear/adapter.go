package opticlear

import (
	"context"
	"fmt"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

const brandName = "OptiClear"

// lensRecord is one lens catalog entry
type lensRecord struct {
	LensID   string        `json:"lens_id"`
	Series   *string       `json:"series"`
	Name     *string       `json:"name"`
	Variants []lensVariant `json:"variants"`
}

// lensVariant is one design/index/coating combination. The catalog is a
// spec sheet, so variants carry no photos or colors.
type lensVariant struct {
	ID       string   `json:"id"`
	SKU      *string  `json:"sku"`
	Design   string   `json:"design"`
	Index    *float64 `json:"index"`
	Coatings []string `json:"coatings"`
}

// Adapter normalizes opticlear lens catalog entries and fetches the live
// catalog through the cursor-paginated listing.
type Adapter struct {
	client Client
	json   adapter.JSON
}

var (
	_ vendors.Adapter = (*Adapter)(nil)
	_ vendors.Fetcher = (*Adapter)(nil)
	_ vendors.Tester  = (*Adapter)(nil)
)

// NewAdapter creates a new opticlear adapter
func NewAdapter(client Client, json adapter.JSON) *Adapter {
	return &Adapter{client: client, json: json}
}

func (a *Adapter) Slug() string {
	return VENDOR_SLUG
}

func (a *Adapter) Category() domain.Category {
	return domain.CategoryLenses
}

// FetchAll walks the cursor-paginated lens catalog until the cursor runs out
func (a *Adapter) FetchAll(ctx context.Context) ([]map[string]any, error) {
	var items []map[string]any
	cursor := ""
	for {
		pageItems, next, err := a.client.ListLenses(ctx, cursor)
		if err != nil {
			return nil, &domain.ExecutionError{Vendor: VENDOR_SLUG, Op: "fetch", Err: err}
		}

		items = append(items, pageItems...)
		if next == "" {
			break
		}
		cursor = next
	}
	return items, nil
}

// TestConnection verifies the API credentials
func (a *Adapter) TestConnection(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Normalize maps one lens catalog entry to a canonical lenses product
func (a *Adapter) Normalize(raw map[string]any) (*domain.CanonicalProduct, error) {
	record, err := a.decode(raw)
	if err != nil {
		return nil, err
	}

	id := canonical.NormalizeString(record.LensID)
	if id == "" {
		return nil, &domain.InputValidationError{Vendor: VENDOR_SLUG, Reason: "missing lens_id"}
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
	if record.Series != nil {
		if series := canonical.NormalizeString(*record.Series); series != "" {
			model = series
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

		design := canonical.NormalizeString(v.Design)
		if design == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has no design", v.ID),
			}
		}
		if v.Index == nil {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has no index", v.ID),
			}
		}
		if *v.Index <= 0 {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has invalid index %v", v.ID, *v.Index),
			}
		}

		var coatings []string
		for j, coating := range v.Coatings {
			c := canonical.NormalizeString(coating)
			if c == "" {
				return nil, &domain.InputValidationError{
					Vendor:    VENDOR_SLUG,
					CatalogID: id,
					Reason:    fmt.Sprintf("variant %q has an empty coating at %d", v.ID, j),
				}
			}
			coatings = append(coatings, c)
		}

		variants = append(variants, domain.Variant{
			ID:  v.ID,
			SKU: v.SKU,
			Lens: &domain.LensAttributes{
				Design:   design,
				Index:    *v.Index,
				Coatings: coatings,
			},
		})
	}

	return &domain.CanonicalProduct{
		CatalogID: id,
		Category:  domain.CategoryLenses,
		Brand:     brandName,
		Model:     model,
		Name:      name,
		Variants:  variants,
		Source: domain.Source{
			Supplier:   brandName,
			Confidence: domain.ConfidenceVerified,
		},
	}, nil
}

func (a *Adapter) decode(raw map[string]any) (*lensRecord, error) {
	data, err := a.json.Marshal(raw)
	if err != nil {
		return nil, &domain.ExecutionError{Vendor: VENDOR_SLUG, Op: "decode", Err: err}
	}

	var record lensRecord
	if err := a.json.Unmarshal(data, &record); err != nil {
		return nil, &domain.InputValidationError{
			Vendor: VENDOR_SLUG,
			Reason: fmt.Sprintf("malformed record: %v", err),
		}
	}
	return &record, nil
}
