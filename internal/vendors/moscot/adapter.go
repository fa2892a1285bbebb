package moscot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

const VENDOR_SLUG = "moscot"

const brandName = "MOSCOT"

// feedItem is one product entry in a scraped moscot feed file
type feedItem struct {
	Style      string      `json:"style"`
	Collection *string     `json:"collection"`
	Title      *string     `json:"title"`
	Colors     []feedColor `json:"colors"`
	Images     []feedImage `json:"images"`
}

// feedColor is one colorway of a style
type feedColor struct {
	Name     string  `json:"name"`
	SKU      *string `json:"sku"`
	Size     *string `json:"size"`
	Material *string `json:"material"`
}

// feedImage is one scraped product image
type feedImage struct {
	Src   string  `json:"src"`
	Angle *string `json:"angle"`
	Color *string `json:"color"`
	Hero  bool    `json:"hero"`
}

// Adapter normalizes scraped moscot feed records into canonical frames
// products. The feed carries one record per style with its colorways.
type Adapter struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	feedURL    string
}

var (
	_ vendors.Adapter = (*Adapter)(nil)
	_ vendors.Tester  = (*Adapter)(nil)
)

// NewAdapter creates a new moscot adapter. feedURL is only used by the
// connectivity test; feed payloads reach Normalize through the feed loader.
func NewAdapter(httpClient adapter.HTTPClient, json adapter.JSON, feedURL string) *Adapter {
	return &Adapter{
		httpClient: httpClient,
		json:       json,
		feedURL:    feedURL,
	}
}

func (a *Adapter) Slug() string {
	return VENDOR_SLUG
}

func (a *Adapter) Category() domain.Category {
	return domain.CategoryFrames
}

// Normalize maps one scraped style record to a canonical frames product
func (a *Adapter) Normalize(raw map[string]any) (*domain.CanonicalProduct, error) {
	item, err := a.decode(raw)
	if err != nil {
		return nil, err
	}

	style := canonical.NormalizeString(item.Style)
	if style == "" {
		return nil, &domain.InputValidationError{Vendor: VENDOR_SLUG, Reason: "missing style"}
	}
	if len(item.Colors) == 0 {
		return nil, &domain.InputValidationError{Vendor: VENDOR_SLUG, CatalogID: style, Reason: "no colorways"}
	}

	name := style
	if item.Title != nil {
		if title := canonical.NormalizeString(*item.Title); title != "" {
			name = title
		}
	}

	variants := make([]domain.Variant, 0, len(item.Colors))
	for i, color := range item.Colors {
		colorName := canonical.NormalizeString(color.Name)
		if colorName == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: style,
				Reason:    fmt.Sprintf("colorway %d has no name", i),
			}
		}
		if color.Size == nil || canonical.NormalizeString(*color.Size) == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: style,
				Reason:    fmt.Sprintf("colorway %q has no size", colorName),
			}
		}

		label := canonical.NormalizeString(*color.Size)
		if !domain.ValidFrameSizeLabel(label) {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: style,
				Reason:    fmt.Sprintf("colorway %q has unparseable size %q", colorName, label),
			}
		}

		frame := &domain.FrameAttributes{
			SizeLabel: &label,
			Material:  color.Material,
		}
		if lens, bridge, temple, ok := canonical.ParseSizeLabel(label); ok {
			frame.LensWidthMM = &lens
			frame.BridgeMM = &bridge
			frame.TempleMM = &temple
		}

		id := fmt.Sprintf("%s-%s", style, colorName)
		if color.SKU != nil && *color.SKU != "" {
			id = *color.SKU
		}

		variants = append(variants, domain.Variant{
			ID:    id,
			SKU:   color.SKU,
			Color: &colorName,
			Frame: frame,
		})
	}

	photos := make([]domain.Photo, 0, len(item.Images))
	heroes := 0
	for i, img := range item.Images {
		if img.Src == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: style,
				Reason:    fmt.Sprintf("image %d has no src", i),
			}
		}
		if img.Hero {
			heroes++
		}
		photos = append(photos, domain.Photo{
			URL:     img.Src,
			Angle:   img.Angle,
			ColorID: img.Color,
			Hero:    img.Hero,
		})
	}
	if heroes > 1 {
		return nil, &domain.InputValidationError{
			Vendor:    VENDOR_SLUG,
			CatalogID: style,
			Reason:    fmt.Sprintf("feed marks %d hero images", heroes),
		}
	}

	model := style
	if item.Collection != nil {
		if collection := canonical.NormalizeString(*item.Collection); collection != "" {
			model = collection
		}
	}

	return &domain.CanonicalProduct{
		CatalogID: style,
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

// TestConnection verifies the scraped feed endpoint answers
func (a *Adapter) TestConnection(ctx context.Context) error {
	resp, err := a.httpClient.Head(ctx, a.feedURL, nil)
	if err != nil {
		return fmt.Errorf("failed to reach moscot feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("moscot feed returned status %d", resp.StatusCode)
	}
	return nil
}

func (a *Adapter) decode(raw map[string]any) (*feedItem, error) {
	data, err := a.json.Marshal(raw)
	if err != nil {
		return nil, &domain.ExecutionError{Vendor: VENDOR_SLUG, Op: "decode", Err: err}
	}

	var item feedItem
	if err := a.json.Unmarshal(data, &item); err != nil {
		return nil, &domain.InputValidationError{
			Vendor: VENDOR_SLUG,
			Reason: fmt.Sprintf("malformed record: %v", err),
		}
	}
	return &item, nil
}
