package vendors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

// fakeAdapter is a minimal adapter for registry tests
type fakeAdapter struct {
	slug      string
	category  domain.Category
	normalize func(raw map[string]any) (*domain.CanonicalProduct, error)
}

func (f *fakeAdapter) Slug() string              { return f.slug }
func (f *fakeAdapter) Category() domain.Category { return f.category }
func (f *fakeAdapter) Normalize(raw map[string]any) (*domain.CanonicalProduct, error) {
	return f.normalize(raw)
}

func validFramesProduct() *domain.CanonicalProduct {
	size := "46□24-145"
	return &domain.CanonicalProduct{
		CatalogID: "LEMTOSH",
		Category:  domain.CategoryFrames,
		Brand:     "MOSCOT",
		Model:     "LEMTOSH",
		Name:      "THE LEMTOSH",
		Variants: []domain.Variant{
			{
				ID:    "LEMTOSH-BLACK",
				Frame: &domain.FrameAttributes{SizeLabel: &size},
			},
		},
		Source: domain.Source{
			Supplier:   "MOSCOT",
			Confidence: domain.ConfidenceVerified,
		},
	}
}

func TestRegistry_Resolve(t *testing.T) {
	moscot := &fakeAdapter{slug: "moscot", category: domain.CategoryFrames}
	registry := vendors.NewRegistry(moscot)

	a, err := registry.Resolve("moscot")
	require.NoError(t, err)
	assert.Equal(t, "moscot", a.Slug())

	// Lookup is case-insensitive
	a, err = registry.Resolve(" MOSCOT ")
	require.NoError(t, err)
	assert.Equal(t, "moscot", a.Slug())
}

func TestRegistry_Resolve_Unknown(t *testing.T) {
	registry := vendors.NewRegistry(&fakeAdapter{slug: "moscot", category: domain.CategoryFrames})

	a, err := registry.Resolve("warby")
	assert.Nil(t, a)
	assert.Error(t, err)
	assert.True(t, domain.IsAdapterNotFound(err))
}

func TestRegistry_Slugs_Sorted(t *testing.T) {
	registry := vendors.NewRegistry(
		&fakeAdapter{slug: "shuron", category: domain.CategoryFrames},
		&fakeAdapter{slug: "casewerk", category: domain.CategoryAccessories},
		&fakeAdapter{slug: "moscot", category: domain.CategoryFrames},
	)

	assert.Equal(t, []string{"casewerk", "moscot", "shuron"}, registry.Slugs())
}

func TestRegistry_Normalize(t *testing.T) {
	moscot := &fakeAdapter{
		slug:     "moscot",
		category: domain.CategoryFrames,
		normalize: func(raw map[string]any) (*domain.CanonicalProduct, error) {
			return validFramesProduct(), nil
		},
	}
	registry := vendors.NewRegistry(moscot)

	product, err := registry.Normalize("moscot", map[string]any{"style": "LEMTOSH"})
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "LEMTOSH", product.CatalogID)
	assert.Equal(t, domain.CategoryFrames, product.Category)
}

func TestRegistry_Normalize_UnknownVendor(t *testing.T) {
	registry := vendors.NewRegistry()

	product, err := registry.Normalize("warby", map[string]any{})
	assert.Nil(t, product)
	assert.True(t, domain.IsAdapterNotFound(err))
}

func TestRegistry_Normalize_AdapterErrorPropagatesUntouched(t *testing.T) {
	inputErr := &domain.InputValidationError{Vendor: "moscot", Reason: "missing style"}
	moscot := &fakeAdapter{
		slug:     "moscot",
		category: domain.CategoryFrames,
		normalize: func(raw map[string]any) (*domain.CanonicalProduct, error) {
			return nil, inputErr
		},
	}
	registry := vendors.NewRegistry(moscot)

	product, err := registry.Normalize("moscot", map[string]any{})
	assert.Nil(t, product)
	assert.Equal(t, inputErr, err)
	assert.True(t, domain.IsInputValidation(err))
}

func TestRegistry_Normalize_EnforcesOutputInvariants(t *testing.T) {
	// An adapter returning a product with no variants cannot bypass central
	// validation.
	buggy := &fakeAdapter{
		slug:     "moscot",
		category: domain.CategoryFrames,
		normalize: func(raw map[string]any) (*domain.CanonicalProduct, error) {
			p := validFramesProduct()
			p.Variants = nil
			return p, nil
		},
	}
	registry := vendors.NewRegistry(buggy)

	product, err := registry.Normalize("moscot", map[string]any{})
	assert.Nil(t, product)
	assert.True(t, domain.IsOutputValidation(err))
}

func TestRegistry_Normalize_CategoryMismatch(t *testing.T) {
	// A valid frames product from an adapter that declares lenses is an
	// adapter bug.
	buggy := &fakeAdapter{
		slug:     "opticlear",
		category: domain.CategoryLenses,
		normalize: func(raw map[string]any) (*domain.CanonicalProduct, error) {
			return validFramesProduct(), nil
		},
	}
	registry := vendors.NewRegistry(buggy)

	product, err := registry.Normalize("opticlear", map[string]any{})
	assert.Nil(t, product)
	assert.True(t, domain.IsOutputValidation(err))
	assert.Contains(t, err.Error(), "declares category lenses but produced frames")
}
