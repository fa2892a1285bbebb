package schema

import (
	"time"

	"gorm.io/datatypes"
)

// VendorSyncState represents the vendor_sync_state table - one row per vendor
// summarizing the last applied sync. Upserted inside the apply transaction and
// never touched by dry runs.
type VendorSyncState struct {
	// Vendor is the vendor slug (primary key, one row per vendor)
	Vendor string `gorm:"column:vendor;primaryKey;type:text"`
	// LastRunAt is the start timestamp of the last applied run
	LastRunAt time.Time `gorm:"column:last_run_at;not null;type:timestamptz"`
	// LastDurationMS is the wall-clock duration of the last applied run
	LastDurationMS int64 `gorm:"column:last_duration_ms;not null"`
	// TotalItems is the catalog size after the last applied run
	TotalItems int `gorm:"column:total_items;not null"`
	// LastBatchHash is the order-independent digest of the last applied batch
	LastBatchHash string `gorm:"column:last_batch_hash;not null;type:char(64)"`
	// LastSource describes where the last batch came from (jsonb descriptor)
	LastSource datatypes.JSON `gorm:"column:last_source;type:jsonb"`
	// LastError holds the last apply failure, nil after a clean run
	LastError *string `gorm:"column:last_error;type:text"`
	// LastActor identifies who triggered the last applied run
	LastActor string `gorm:"column:last_actor;not null;type:text"`
	// UpdatedAt is the timestamp when this row was last upserted
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VendorSyncState model
func (VendorSyncState) TableName() string {
	return "vendor_sync_state"
}
