package store

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lensport/catalog-sync-v2/internal/store/schema"
)

// CatalogItemInput is one catalog row to insert or rewrite during ApplyChangeset
type CatalogItemInput struct {
	CatalogID   string
	Raw         datatypes.JSON
	Normalized  datatypes.JSON
	ContentHash string
}

// SyncStateInput is the vendor_sync_state upsert written at the end of an apply
type SyncStateInput struct {
	LastRunAt      time.Time
	LastDurationMS int64
	TotalItems     int
	LastBatchHash  string
	LastSource     datatypes.JSON
	LastError      *string
	LastActor      string
}

// ApplyChangesetInput carries one apply transaction: created and updated rows,
// removed catalog ids, and the resulting sync state
type ApplyChangesetInput struct {
	Vendor  string
	Created []CatalogItemInput
	Updated []CatalogItemInput
	Removed []string
	State   SyncStateInput
}

// CreateSyncRunInput opens a pending run in the audit trail
type CreateSyncRunInput struct {
	RunID     string
	Vendor    string
	Mode      schema.RunMode
	Actor     string
	StartedAt time.Time
}

// FinalizeSyncRunInput closes a pending run with its outcome
type FinalizeSyncRunInput struct {
	RunID      string
	Status     schema.RunStatus
	FinishedAt time.Time
	DurationMS int64
	TotalItems int
	Summary    datatypes.JSON
	Error      *string
}

// UpsertVendorIntegrationInput creates or replaces a vendor's fetch configuration
type UpsertVendorIntegrationInput struct {
	Vendor     string
	Kind       schema.IntegrationKind
	SourcePath *string
	BaseURL    *string
	AuthKind   schema.AuthKind
	SecretEnv  *string
	Enabled    bool
}

// UpdateIntegrationTestResultInput records one connectivity test outcome
type UpdateIntegrationTestResultInput struct {
	Vendor   string
	TestedAt time.Time
	Ok       bool
	Error    *string
}
