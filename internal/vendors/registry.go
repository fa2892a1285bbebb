package vendors

import (
	"context"
	"fmt"
	"sort"

	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
)

// Adapter maps one raw vendor record to exactly one canonical product.
// Adapters are pure functions of their input: no I/O, no clock, no
// shared state.
//
//go:generate mockgen -source=registry.go -destination=../mocks/vendors.go -package=mocks -mock_names=Adapter=MockVendorAdapter,Fetcher=MockVendorFetcher,Tester=MockVendorTester
type Adapter interface {
	// Slug returns the vendor slug the adapter serves
	Slug() string

	// Category returns the catalog category every product of this vendor
	// belongs to
	Category() domain.Category

	// Normalize maps one raw record to a canonical product, or fails with
	// a typed domain error
	Normalize(raw map[string]any) (*domain.CanonicalProduct, error)
}

// Fetcher is implemented by adapters whose vendor exposes a live API.
// FetchAll returns raw records so the persisted raw payload and the
// normalization path are identical for feed files and live fetches.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]map[string]any, error)
}

// Tester is implemented by adapters that can verify vendor connectivity.
// Adapters without it report not_implemented from the harness.
type Tester interface {
	TestConnection(ctx context.Context) error
}

// Registry resolves vendor slugs to their adapters. Built once at startup,
// read-only afterwards.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry builds a registry from the given adapters. A later adapter
// with the same slug replaces an earlier one.
func NewRegistry(adapters ...Adapter) *Registry {
	m := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		m[canonical.NormalizeSlug(a.Slug())] = a
	}
	return &Registry{adapters: m}
}

// Resolve returns the adapter for a vendor slug
func (r *Registry) Resolve(slug string) (Adapter, error) {
	a, ok := r.adapters[canonical.NormalizeSlug(slug)]
	if !ok {
		return nil, &domain.AdapterNotFoundError{Vendor: slug}
	}
	return a, nil
}

// Slugs returns the registered vendor slugs in sorted order
func (r *Registry) Slugs() []string {
	slugs := make([]string, 0, len(r.adapters))
	for slug := range r.adapters {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Normalize resolves the adapter for slug, maps the raw record, and enforces
// the canonical output invariants. Every product passes through
// domain.ValidateCanonicalProduct here, and the product category must match
// the adapter's declared category, so a buggy adapter cannot hand invalid
// output downstream.
func (r *Registry) Normalize(slug string, raw map[string]any) (*domain.CanonicalProduct, error) {
	a, err := r.Resolve(slug)
	if err != nil {
		return nil, err
	}

	product, err := a.Normalize(raw)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateCanonicalProduct(a.Slug(), product); err != nil {
		return nil, err
	}
	if product.Category != a.Category() {
		return nil, &domain.OutputValidationError{
			Vendor:    a.Slug(),
			CatalogID: product.CatalogID,
			Reason:    fmt.Sprintf("adapter declares category %s but produced %s", a.Category(), product.Category),
		}
	}

	return product, nil
}
