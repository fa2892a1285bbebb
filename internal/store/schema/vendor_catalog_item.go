package schema

import (
	"time"

	"gorm.io/datatypes"
)

// VendorCatalogItem represents the vendor_catalog_items table - one row per
// (vendor, catalog_id) pairing the raw wire payload with its canonical form
type VendorCatalogItem struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Vendor is the owning vendor slug
	Vendor string `gorm:"column:vendor;not null;type:text;uniqueIndex:idx_vendor_catalog_items_vendor_catalog_id,priority:1"`
	// CatalogID is the vendor-scoped product identifier
	CatalogID string `gorm:"column:catalog_id;not null;type:text;uniqueIndex:idx_vendor_catalog_items_vendor_catalog_id,priority:2"`
	// Raw is the vendor wire payload exactly as fetched
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// Normalized is the canonical product derived from Raw
	Normalized datatypes.JSON `gorm:"column:normalized;not null;type:jsonb"`
	// ContentHash is the 64-char hex digest of the normalized payload; rows
	// never change without a hash change
	ContentHash string `gorm:"column:content_hash;not null;type:char(64);index:idx_vendor_catalog_items_content_hash"`
	// CreatedAt is the timestamp when this row was first written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VendorCatalogItem model
func (VendorCatalogItem) TableName() string {
	return "vendor_catalog_items"
}
