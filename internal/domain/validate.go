package domain

import (
	"fmt"
	"regexp"
)

var sizeLabelRe = regexp.MustCompile(SIZE_LABEL_PATTERN)

// ValidFrameSizeLabel checks if s is a legacy size triple like "46□24-145"
func ValidFrameSizeLabel(s string) bool {
	return sizeLabelRe.MatchString(s)
}

// ValidateCanonicalProduct enforces the canonical output invariants on an
// adapter's product. Any violation is an OutputValidationError: it signals an
// adapter bug, so the caller must abort the run rather than drop the item.
func ValidateCanonicalProduct(vendor string, p *CanonicalProduct) error {
	if p == nil {
		return &OutputValidationError{Vendor: vendor, Reason: "nil product"}
	}

	fail := func(format string, args ...any) error {
		return &OutputValidationError{
			Vendor:    vendor,
			CatalogID: p.CatalogID,
			Reason:    fmt.Sprintf(format, args...),
		}
	}

	if p.CatalogID == "" {
		return fail("missing catalog id")
	}
	if !IsValidCategory(p.Category) {
		return fail("unknown category %q", p.Category)
	}
	if p.Name == "" {
		return fail("missing name")
	}
	if p.Brand == "" {
		return fail("missing brand")
	}
	if len(p.Variants) == 0 {
		return fail("product has no variants")
	}

	seenIDs := make(map[string]bool, len(p.Variants))
	seenSKUs := make(map[string]bool, len(p.Variants))
	for i, v := range p.Variants {
		if v.ID == "" {
			return fail("variant %d has no id", i)
		}
		if seenIDs[v.ID] {
			return fail("duplicate variant id %q", v.ID)
		}
		seenIDs[v.ID] = true

		if v.SKU != nil && *v.SKU != "" {
			if seenSKUs[*v.SKU] {
				return fail("duplicate variant sku %q", *v.SKU)
			}
			seenSKUs[*v.SKU] = true
		}

		if got := v.AttributeCategory(); got != p.Category {
			if got == "" {
				return fail("variant %q must set exactly the %s attributes", v.ID, p.Category)
			}
			return fail("variant %q carries %s attributes on a %s product", v.ID, got, p.Category)
		}

		switch p.Category {
		case CategoryFrames:
			if !v.Frame.HasSize() {
				return fail("frame variant %q has neither a size label nor parsed measurements", v.ID)
			}
		case CategoryLenses:
			if v.Lens.Design == "" {
				return fail("lens variant %q has no design", v.ID)
			}
			if v.Lens.Index <= 0 {
				return fail("lens variant %q has non-positive index %v", v.ID, v.Lens.Index)
			}
		case CategoryContacts:
			if v.Contact.PowerMin > v.Contact.PowerMax {
				return fail("contact variant %q has inverted power range", v.ID)
			}
			if v.Contact.WearSchedule == "" {
				return fail("contact variant %q has no wear schedule", v.ID)
			}
			if v.Contact.PackSize <= 0 {
				return fail("contact variant %q has non-positive pack size", v.ID)
			}
		case CategoryAccessories:
			if v.Accessory.Kind == "" {
				return fail("accessory variant %q has no kind", v.ID)
			}
		}
	}

	heroes := 0
	for i, ph := range p.Photos {
		if ph.URL == "" {
			return fail("photo %d has no url", i)
		}
		if ph.Hero {
			heroes++
		}
	}
	if heroes > 1 {
		return fail("product has %d hero photos", heroes)
	}

	if p.Source.Supplier == "" {
		return fail("missing source supplier")
	}
	if !IsValidConfidence(p.Source.Confidence) {
		return fail("unknown source confidence %q", p.Source.Confidence)
	}

	return nil
}
