package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/domain"
)

// hashView is the change-tracked projection of a CanonicalProduct. Every
// field the business wants change detection for must appear here; the
// volatile source.last_sync_at deliberately does not.
type hashView struct {
	CatalogID  string            `json:"catalog_id"`
	Category   domain.Category   `json:"category"`
	Brand      string            `json:"brand"`
	Model      string            `json:"model"`
	Name       string            `json:"name"`
	Variants   []domain.Variant  `json:"variants"` // declared-ordered, tracked as-is
	Photos     []domain.Photo    `json:"photos,omitempty"`
	Supplier   string            `json:"supplier"`
	Confidence domain.Confidence `json:"confidence"`
}

// Hasher computes deterministic content hashes over canonical products.
// Structurally equal products hash identically regardless of map key order or
// photo construction order; any tracked field change yields a new digest.
//
//go:generate mockgen -source=hasher.go -destination=../mocks/hasher.go -package=mocks -mock_names=Hasher=MockHasher
type Hasher interface {
	// HashProduct returns the lowercase hex SHA-256 digest of the product's
	// tracked fields (64 characters).
	HashProduct(p *domain.CanonicalProduct) (string, error)

	// HashBatch returns an order-independent digest over a set of item
	// hashes, used as the batch hash on VendorSyncState.
	HashBatch(itemHashes []string) string
}

type hasher struct {
	json adapter.JSON
	jcs  adapter.JCS
}

// NewHasher creates a hasher on top of the JSON and JCS seams
func NewHasher(json adapter.JSON, jcs adapter.JCS) Hasher {
	return &hasher{
		json: json,
		jcs:  jcs,
	}
}

// HashProduct marshals the tracked projection, canonicalizes it per RFC 8785
// and digests the canonical bytes.
func (h *hasher) HashProduct(p *domain.CanonicalProduct) (string, error) {
	if p == nil {
		return "", fmt.Errorf("cannot hash nil product")
	}

	view := buildHashView(p)

	data, err := h.json.Marshal(view)
	if err != nil {
		return "", fmt.Errorf("failed to marshal product: %w", err)
	}

	canonicalized, err := h.jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize product: %w", err)
	}

	sum := sha256.Sum256(canonicalized)
	return hex.EncodeToString(sum[:]), nil
}

// HashBatch sorts the item hashes before digesting, so the batch hash does
// not depend on feed order. Item hashes are fixed-width hex, so plain
// concatenation is unambiguous.
func (h *hasher) HashBatch(itemHashes []string) string {
	sorted := make([]string, len(itemHashes))
	copy(sorted, itemHashes)
	sort.Strings(sorted)

	sum := sha256.Sum256([]byte(strings.Join(sorted, "")))
	return hex.EncodeToString(sum[:])
}

// buildHashView projects a product onto its tracked fields. Strings are
// normalized so byte-level encoding differences between feeds do not read as
// catalog changes, and photos are sorted because photo order is not tracked.
func buildHashView(p *domain.CanonicalProduct) hashView {
	view := hashView{
		CatalogID:  p.CatalogID,
		Category:   p.Category,
		Brand:      NormalizeString(p.Brand),
		Model:      NormalizeString(p.Model),
		Name:       NormalizeString(p.Name),
		Variants:   p.Variants,
		Supplier:   p.Source.Supplier,
		Confidence: p.Source.Confidence,
	}

	if len(p.Photos) > 0 {
		photos := make([]domain.Photo, len(p.Photos))
		copy(photos, p.Photos)
		sort.SliceStable(photos, func(i, j int) bool {
			if photos[i].URL != photos[j].URL {
				return photos[i].URL < photos[j].URL
			}
			return deref(photos[i].Angle) < deref(photos[j].Angle)
		})
		view.Photos = photos
	}

	return view
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
