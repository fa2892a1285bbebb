package shuron

import (
	"context"
	"fmt"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

const brandName = "SHURON"

// frameRecord is one frames listing entry
type frameRecord struct {
	ID       string         `json:"id"`
	Series   *string        `json:"series"`
	Name     *string        `json:"name"`
	Variants []frameVariant `json:"variants"`
	Photos   []framePhoto   `json:"photos"`
}

// frameVariant carries explicit millimeter measurements instead of the
// printed size label
type frameVariant struct {
	ID       string   `json:"id"`
	SKU      *string  `json:"sku"`
	Color    *string  `json:"color"`
	EyeSize  *float64 `json:"eye_size"`
	Bridge   *float64 `json:"bridge"`
	Temple   *float64 `json:"temple"`
	Material *string  `json:"material"`
}

// framePhoto is one listing photo
type framePhoto struct {
	URL   string  `json:"url"`
	Angle *string `json:"angle"`
	Color *string `json:"color"`
	Hero  bool    `json:"hero"`
}

// Adapter normalizes shuron partner API frames and fetches the live catalog
// through the paginated partner listing.
type Adapter struct {
	client Client
	json   adapter.JSON
}

var (
	_ vendors.Adapter = (*Adapter)(nil)
	_ vendors.Fetcher = (*Adapter)(nil)
	_ vendors.Tester  = (*Adapter)(nil)
)

// NewAdapter creates a new shuron adapter
func NewAdapter(client Client, json adapter.JSON) *Adapter {
	return &Adapter{client: client, json: json}
}

func (a *Adapter) Slug() string {
	return VENDOR_SLUG
}

func (a *Adapter) Category() domain.Category {
	return domain.CategoryFrames
}

// FetchAll walks the paginated frames listing until the last page
func (a *Adapter) FetchAll(ctx context.Context) ([]map[string]any, error) {
	var items []map[string]any
	for page := 1; ; page++ {
		pageItems, totalPages, err := a.client.ListFrames(ctx, page)
		if err != nil {
			return nil, &domain.ExecutionError{Vendor: VENDOR_SLUG, Op: "fetch", Err: err}
		}

		items = append(items, pageItems...)
		if page >= totalPages {
			break
		}
	}
	return items, nil
}

// TestConnection verifies the partner API credentials
func (a *Adapter) TestConnection(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Normalize maps one frames listing entry to a canonical frames product
func (a *Adapter) Normalize(raw map[string]any) (*domain.CanonicalProduct, error) {
	record, err := a.decode(raw)
	if err != nil {
		return nil, err
	}

	id := canonical.NormalizeString(record.ID)
	if id == "" {
		return nil, &domain.InputValidationError{Vendor: VENDOR_SLUG, Reason: "missing id"}
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

		measurements := 0
		for _, m := range []*float64{v.EyeSize, v.Bridge, v.Temple} {
			if m != nil {
				measurements++
			}
		}
		switch measurements {
		case 3:
			// complete triple
		case 0:
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has no measurements", v.ID),
			}
		default:
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: id,
				Reason:    fmt.Sprintf("variant %q has incomplete measurements", v.ID),
			}
		}

		variant := domain.Variant{
			ID:  v.ID,
			SKU: v.SKU,
			Frame: &domain.FrameAttributes{
				LensWidthMM: v.EyeSize,
				BridgeMM:    v.Bridge,
				TempleMM:    v.Temple,
				Material:    v.Material,
			},
		}
		if v.Color != nil {
			color := canonical.NormalizeString(*v.Color)
			variant.Color = &color
		}
		variants = append(variants, variant)
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
			URL:     p.URL,
			Angle:   p.Angle,
			ColorID: p.Color,
			Hero:    p.Hero,
		})
	}
	if heroes > 1 {
		return nil, &domain.InputValidationError{
			Vendor:    VENDOR_SLUG,
			CatalogID: id,
			Reason:    fmt.Sprintf("listing marks %d hero photos", heroes),
		}
	}

	return &domain.CanonicalProduct{
		CatalogID: id,
		Category:  domain.CategoryFrames,
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

func (a *Adapter) decode(raw map[string]any) (*frameRecord, error) {
	data, err := a.json.Marshal(raw)
	if err != nil {
		return nil, &domain.ExecutionError{Vendor: VENDOR_SLUG, Op: "decode", Err: err}
	}

	var record frameRecord
	if err := a.json.Unmarshal(data, &record); err != nil {
		return nil, &domain.InputValidationError{
			Vendor: VENDOR_SLUG,
			Reason: fmt.Sprintf("malformed record: %v", err),
		}
	}
	return &record, nil
}
