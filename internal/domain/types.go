package domain

import (
	"fmt"
	"time"
)

// Category is the closed set of catalog categories
type Category string

const (
	CategoryFrames      Category = "frames"
	CategoryLenses      Category = "lenses"
	CategoryContacts    Category = "contacts"
	CategoryAccessories Category = "accessories"
)

// IsValidCategory checks if a category is one of the known values
func IsValidCategory(c Category) bool {
	return c == CategoryFrames ||
		c == CategoryLenses ||
		c == CategoryContacts ||
		c == CategoryAccessories
}

// Confidence describes how a product was linked to its supplier
type Confidence string

const (
	ConfidenceVerified Confidence = "verified"
	ConfidenceManual   Confidence = "manual"
	ConfidenceUnlinked Confidence = "unlinked"
)

// IsValidConfidence checks if a confidence value is one of the known values
func IsValidConfidence(c Confidence) bool {
	return c == ConfidenceVerified || c == ConfidenceManual || c == ConfidenceUnlinked
}

// SyncMode selects between a side-effect-free preview and a persisting run
type SyncMode string

const (
	ModeDryRun SyncMode = "dry_run"
	ModeApply  SyncMode = "apply"
)

// IsValidMode checks if a sync mode is one of the known values
func IsValidMode(m SyncMode) bool {
	return m == ModeDryRun || m == ModeApply
}

// RunStatus is the lifecycle state of a sync run record
type RunStatus string

const (
	RunStatusPending RunStatus = "pending"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// IntegrationKind describes how a vendor's raw batch is fetched
type IntegrationKind string

const (
	IntegrationScraper IntegrationKind = "scraper"
	IntegrationAPI     IntegrationKind = "api"
)

// AuthKind describes how an API-type integration authenticates
type AuthKind string

const (
	AuthNone   AuthKind = "none"
	AuthAPIKey AuthKind = "api_key"
	AuthBearer AuthKind = "bearer"
)

// CanonicalProduct is the vendor-agnostic normalized representation of one
// catalog entry. (vendor, CatalogID) uniquely identifies a logical product.
type CanonicalProduct struct {
	CatalogID string    `json:"catalog_id"` // vendor-stable identifier
	Category  Category  `json:"category"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Name      string    `json:"name"`
	Variants  []Variant `json:"variants"` // declared-ordered
	Photos    []Photo   `json:"photos,omitempty"`
	Source    Source    `json:"source"`
}

// Variant is one purchasable variation of a product. Exactly one of the
// category-specific attribute structs is set, matching the product category.
type Variant struct {
	ID    string  `json:"id"`
	SKU   *string `json:"sku,omitempty"`
	Color *string `json:"color,omitempty"`

	Frame     *FrameAttributes     `json:"frame,omitempty"`
	Lens      *LensAttributes      `json:"lens,omitempty"`
	Contact   *ContactAttributes   `json:"contact,omitempty"`
	Accessory *AccessoryAttributes `json:"accessory,omitempty"`
}

// AttributeCategory returns the category implied by the variant's set
// attribute struct, or an empty Category when none (or several) are set.
func (v *Variant) AttributeCategory() Category {
	var set []Category
	if v.Frame != nil {
		set = append(set, CategoryFrames)
	}
	if v.Lens != nil {
		set = append(set, CategoryLenses)
	}
	if v.Contact != nil {
		set = append(set, CategoryContacts)
	}
	if v.Accessory != nil {
		set = append(set, CategoryAccessories)
	}
	if len(set) != 1 {
		return ""
	}
	return set[0]
}

// FrameAttributes holds frame sizing. A variant must carry either the legacy
// size label (e.g. "46□24-145") or the full parsed measurement triple.
type FrameAttributes struct {
	SizeLabel   *string  `json:"size_label,omitempty"`
	LensWidthMM *float64 `json:"lens_width_mm,omitempty"`
	BridgeMM    *float64 `json:"bridge_mm,omitempty"`
	TempleMM    *float64 `json:"temple_mm,omitempty"`
	Material    *string  `json:"material,omitempty"`
}

// HasSize reports whether the variant carries usable sizing in either form
func (f *FrameAttributes) HasSize() bool {
	if f == nil {
		return false
	}
	if f.SizeLabel != nil && *f.SizeLabel != "" {
		return true
	}
	return f.LensWidthMM != nil && f.BridgeMM != nil && f.TempleMM != nil
}

// LensAttributes holds spectacle lens properties
type LensAttributes struct {
	Design   string   `json:"design"` // e.g. "single_vision", "progressive"
	Index    float64  `json:"index"`  // refractive index, e.g. 1.67
	Coatings []string `json:"coatings,omitempty"`
}

// ContactAttributes holds contact lens properties
type ContactAttributes struct {
	PowerMin     float64  `json:"power_min"`
	PowerMax     float64  `json:"power_max"`
	BaseCurve    *float64 `json:"base_curve,omitempty"`
	DiameterMM   *float64 `json:"diameter_mm,omitempty"`
	WearSchedule string   `json:"wear_schedule"` // e.g. "daily", "monthly"
	PackSize     int      `json:"pack_size"`
}

// AccessoryAttributes holds accessory properties
type AccessoryAttributes struct {
	Kind       string  `json:"kind"` // e.g. "case", "cloth", "chain"
	Dimensions *string `json:"dimensions,omitempty"`
}

// Photo is one product image
type Photo struct {
	URL     string  `json:"url"`
	Angle   *string `json:"angle,omitempty"`    // e.g. "front", "side"
	ColorID *string `json:"color_id,omitempty"` // associates the photo with a variant color
	Hero    bool    `json:"hero"`
}

// Source describes where a canonical product came from and how much the
// supplier link is trusted. LastSyncAt is volatile and excluded from hashing.
type Source struct {
	Supplier   string     `json:"supplier"`
	Confidence Confidence `json:"confidence"`
	LastSyncAt time.Time  `json:"last_sync_at"`
}

// BatchSourceKind identifies where a run's raw batch comes from
type BatchSourceKind string

const (
	BatchSourceInjected BatchSourceKind = "injected"
	BatchSourcePath     BatchSourceKind = "path"
	BatchSourceLive     BatchSourceKind = "live"
)

// BatchSource selects the raw-batch input for a sync run: an injected item
// list, a feed file path (local or minio://bucket/key), or a live fetch
// through the vendor's client. Exactly one must be set.
type BatchSource struct {
	Items      []map[string]any `json:"items,omitempty"`
	SourcePath string           `json:"source_path,omitempty"`
	Live       bool             `json:"live,omitempty"`
}

// Kind returns the batch source kind, or an error when the source is
// ambiguous or empty.
func (s BatchSource) Kind() (BatchSourceKind, error) {
	var kinds []BatchSourceKind
	if s.Items != nil {
		kinds = append(kinds, BatchSourceInjected)
	}
	if s.SourcePath != "" {
		kinds = append(kinds, BatchSourcePath)
	}
	if s.Live {
		kinds = append(kinds, BatchSourceLive)
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("batch source must set exactly one of items, source_path, live (got %d)", len(kinds))
	}
	return kinds[0], nil
}

// RunSummary is the result of one sync run, dry-run or apply
type RunSummary struct {
	DryRun     bool    `json:"dry_run"`
	Vendor     string  `json:"vendor"`
	SourcePath *string `json:"source_path,omitempty"`
	Total      int     `json:"total"`     // normalized items that entered the diff
	Created    int     `json:"created"`
	Updated    int     `json:"updated"`
	Removed    int     `json:"removed"`
	Unchanged  int     `json:"unchanged"`
	Skipped    int     `json:"skipped"` // raw items dropped by input validation
	DurationMS int64   `json:"duration_ms"`
	Hash       string  `json:"hash"` // order-independent batch hash
}

// ChangeType labels one item's outcome in a changefeed event
type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeRemoved ChangeType = "removed"
)

// ItemChangeEvent is published to the changefeed after a successful apply,
// one event per created/updated/removed item.
type ItemChangeEvent struct {
	Vendor    string     `json:"vendor"`
	CatalogID string     `json:"catalog_id"`
	Change    ChangeType `json:"change"`
	Hash      string     `json:"hash,omitempty"` // empty for removed items
	RunID     string     `json:"run_id"`
	Timestamp time.Time  `json:"timestamp"`
}
