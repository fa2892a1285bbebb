package casewerk

import (
	"fmt"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

const VENDOR_SLUG = "casewerk"

const brandName = "CASEWERK"

// accessoryKinds maps the German feed type codes to canonical accessory kinds
var accessoryKinds = map[string]string{
	"etui":  "case",
	"tuch":  "cloth",
	"kette": "chain",
	"spray": "spray",
	"set":   "kit",
}

// feedItem is one article in a scraped casewerk feed file. The reseller
// exports German column names.
type feedItem struct {
	ArtikelNr   string        `json:"artikel_nr"`
	Bezeichnung *string       `json:"bezeichnung"`
	Serie       *string       `json:"serie"`
	Typ         string        `json:"typ"`
	Varianten   []feedVariant `json:"varianten"`
	Bilder      []string      `json:"bilder"`
}

// feedVariant is one purchasable variation of an article
type feedVariant struct {
	ID    string  `json:"id"`
	SKU   *string `json:"sku"`
	Farbe *string `json:"farbe"`
	Masse *string `json:"masse"`
}

// Adapter normalizes scraped casewerk feed records into canonical accessory
// products. The vendor has no reachable endpoint of its own, so the adapter
// implements no connectivity test.
type Adapter struct {
	json adapter.JSON
}

var _ vendors.Adapter = (*Adapter)(nil)

// NewAdapter creates a new casewerk adapter
func NewAdapter(json adapter.JSON) *Adapter {
	return &Adapter{json: json}
}

func (a *Adapter) Slug() string {
	return VENDOR_SLUG
}

func (a *Adapter) Category() domain.Category {
	return domain.CategoryAccessories
}

// Normalize maps one scraped article record to a canonical accessories product
func (a *Adapter) Normalize(raw map[string]any) (*domain.CanonicalProduct, error) {
	item, err := a.decode(raw)
	if err != nil {
		return nil, err
	}

	articleNr := canonical.NormalizeString(item.ArtikelNr)
	if articleNr == "" {
		return nil, &domain.InputValidationError{Vendor: VENDOR_SLUG, Reason: "missing artikel_nr"}
	}

	kind, ok := accessoryKinds[canonical.NormalizeSlug(item.Typ)]
	if !ok {
		return nil, &domain.InputValidationError{
			Vendor:    VENDOR_SLUG,
			CatalogID: articleNr,
			Reason:    fmt.Sprintf("unknown typ %q", item.Typ),
		}
	}

	if len(item.Varianten) == 0 {
		return nil, &domain.InputValidationError{
			Vendor:    VENDOR_SLUG,
			CatalogID: articleNr,
			Reason:    "no variants",
		}
	}

	name := articleNr
	if item.Bezeichnung != nil {
		if label := canonical.NormalizeString(*item.Bezeichnung); label != "" {
			name = label
		}
	}

	model := articleNr
	if item.Serie != nil {
		if series := canonical.NormalizeString(*item.Serie); series != "" {
			model = series
		}
	}

	variants := make([]domain.Variant, 0, len(item.Varianten))
	for i, v := range item.Varianten {
		if v.ID == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: articleNr,
				Reason:    fmt.Sprintf("variant %d has no id", i),
			}
		}

		variant := domain.Variant{
			ID:  v.ID,
			SKU: v.SKU,
			Accessory: &domain.AccessoryAttributes{
				Kind:       kind,
				Dimensions: v.Masse,
			},
		}
		if v.Farbe != nil {
			color := canonical.NormalizeString(*v.Farbe)
			variant.Color = &color
		}
		variants = append(variants, variant)
	}

	photos := make([]domain.Photo, 0, len(item.Bilder))
	for i, url := range item.Bilder {
		if url == "" {
			return nil, &domain.InputValidationError{
				Vendor:    VENDOR_SLUG,
				CatalogID: articleNr,
				Reason:    fmt.Sprintf("bild %d has no url", i),
			}
		}
		photos = append(photos, domain.Photo{URL: url, Hero: i == 0})
	}

	return &domain.CanonicalProduct{
		CatalogID: articleNr,
		Category:  domain.CategoryAccessories,
		Brand:     brandName,
		Model:     model,
		Name:      name,
		Variants:  variants,
		Photos:    photos,
		Source: domain.Source{
			Supplier:   brandName,
			Confidence: domain.ConfidenceManual,
		},
	}, nil
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
