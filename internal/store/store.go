package store

import (
	"context"

	"github.com/lensport/catalog-sync-v2/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetCatalogItemsByVendor retrieves all catalog items owned by a vendor
	GetCatalogItemsByVendor(ctx context.Context, vendor string) ([]*schema.VendorCatalogItem, error)
	// GetCatalogItemHashes retrieves the catalog_id to content_hash map for a vendor
	GetCatalogItemHashes(ctx context.Context, vendor string) (map[string]string, error)
	// ApplyChangeset persists a computed changeset and the sync state upsert
	// in a single transaction
	ApplyChangeset(ctx context.Context, input ApplyChangesetInput) error

	// CreateSyncRun appends a pending sync run to the audit trail
	CreateSyncRun(ctx context.Context, input CreateSyncRunInput) (*schema.VendorSyncRun, error)
	// FinalizeSyncRun transitions a pending run to success or failed; runs
	// finalize exactly once
	FinalizeSyncRun(ctx context.Context, input FinalizeSyncRunInput) error
	// GetSyncRunByID retrieves a sync run by its ULID
	GetSyncRunByID(ctx context.Context, runID string) (*schema.VendorSyncRun, error)
	// ListSyncRuns retrieves sync runs newest first, optionally filtered by vendor
	ListSyncRuns(ctx context.Context, vendor string, limit, offset int) ([]*schema.VendorSyncRun, uint64, error)

	// GetVendorSyncState retrieves the sync state row for a vendor
	GetVendorSyncState(ctx context.Context, vendor string) (*schema.VendorSyncState, error)

	// GetVendorIntegration retrieves the integration configuration for a vendor
	GetVendorIntegration(ctx context.Context, vendor string) (*schema.VendorIntegration, error)
	// ListVendorIntegrations retrieves integration configurations, optionally
	// only enabled ones
	ListVendorIntegrations(ctx context.Context, onlyEnabled bool) ([]*schema.VendorIntegration, error)
	// UpsertVendorIntegration creates or updates the integration configuration
	// for a vendor, preserving its test history
	UpsertVendorIntegration(ctx context.Context, input UpsertVendorIntegrationInput) (*schema.VendorIntegration, error)
	// UpdateIntegrationTestResult writes a connectivity test outcome back to
	// the integration row
	UpdateIntegrationTestResult(ctx context.Context, input UpdateIntegrationTestResultInput) error
}
