package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/lensport/catalog-sync-v2/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays
// below PostgreSQL's extended protocol limit of 65535 parameters per query.
// Each record consumes one parameter per inserted field; a fixed headroom
// covers GORM bookkeeping and conflict clause parameters.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// GetCatalogItemsByVendor retrieves all catalog items owned by a vendor
func (s *pgStore) GetCatalogItemsByVendor(ctx context.Context, vendor string) ([]*schema.VendorCatalogItem, error) {
	var items []*schema.VendorCatalogItem
	err := s.db.WithContext(ctx).
		Where("vendor = ?", vendor).
		Order("catalog_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog items: %w", err)
	}
	return items, nil
}

// GetCatalogItemHashes retrieves the catalog_id to content_hash map for a vendor
func (s *pgStore) GetCatalogItemHashes(ctx context.Context, vendor string) (map[string]string, error) {
	var rows []struct {
		CatalogID   string `gorm:"column:catalog_id"`
		ContentHash string `gorm:"column:content_hash"`
	}
	err := s.db.WithContext(ctx).
		Model(&schema.VendorCatalogItem{}).
		Select("catalog_id", "content_hash").
		Where("vendor = ?", vendor).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog item hashes: %w", err)
	}

	hashes := make(map[string]string, len(rows))
	for _, row := range rows {
		hashes[row.CatalogID] = row.ContentHash
	}
	return hashes, nil
}

// ApplyChangeset persists a computed changeset and the sync state upsert in a
// single transaction
func (s *pgStore) ApplyChangeset(ctx context.Context, input ApplyChangesetInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Batch insert created items
		if len(input.Created) > 0 {
			items := make([]schema.VendorCatalogItem, 0, len(input.Created))
			for _, c := range input.Created {
				items = append(items, schema.VendorCatalogItem{
					Vendor:      input.Vendor,
					CatalogID:   c.CatalogID,
					Raw:         c.Raw,
					Normalized:  c.Normalized,
					ContentHash: c.ContentHash,
				})
			}

			// VendorCatalogItem inserts 7 fields: vendor, catalog_id, raw,
			// normalized, content_hash, created_at, updated_at
			batchSize := calculateSafeBatchSize(len(items), 7)

			if err := tx.CreateInBatches(items, batchSize).Error; err != nil {
				return fmt.Errorf("failed to create catalog items: %w", err)
			}
		}

		// 2. Rewrite updated items row by row; a missing row means the diff
		// was computed against stale state
		for _, u := range input.Updated {
			result := tx.Model(&schema.VendorCatalogItem{}).
				Where("vendor = ? AND catalog_id = ?", input.Vendor, u.CatalogID).
				Updates(map[string]any{
					"raw":          u.Raw,
					"normalized":   u.Normalized,
					"content_hash": u.ContentHash,
					"updated_at":   gorm.Expr("now()"),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to update catalog item %s: %w", u.CatalogID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("catalog item %s/%s not found for update", input.Vendor, u.CatalogID)
			}
		}

		// 3. One bulk delete for removed items
		if len(input.Removed) > 0 {
			if err := tx.Where("vendor = ? AND catalog_id IN ?", input.Vendor, input.Removed).
				Delete(&schema.VendorCatalogItem{}).Error; err != nil {
				return fmt.Errorf("failed to remove catalog items: %w", err)
			}
		}

		// 4. Upsert the per-vendor sync state
		state := schema.VendorSyncState{
			Vendor:         input.Vendor,
			LastRunAt:      input.State.LastRunAt,
			LastDurationMS: input.State.LastDurationMS,
			TotalItems:     input.State.TotalItems,
			LastBatchHash:  input.State.LastBatchHash,
			LastSource:     input.State.LastSource,
			LastError:      input.State.LastError,
			LastActor:      input.State.LastActor,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "vendor"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"last_run_at", "last_duration_ms", "total_items",
				"last_batch_hash", "last_source", "last_error", "last_actor",
				"updated_at",
			}),
		}).Create(&state).Error; err != nil {
			return fmt.Errorf("failed to upsert sync state: %w", err)
		}

		return nil
	})
}

// CreateSyncRun appends a pending sync run to the audit trail
func (s *pgStore) CreateSyncRun(ctx context.Context, input CreateSyncRunInput) (*schema.VendorSyncRun, error) {
	run := schema.VendorSyncRun{
		RunID:     input.RunID,
		Vendor:    input.Vendor,
		Mode:      input.Mode,
		Status:    schema.RunStatusPending,
		Actor:     input.Actor,
		StartedAt: input.StartedAt,
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return nil, fmt.Errorf("failed to create sync run: %w", err)
	}
	return &run, nil
}

// FinalizeSyncRun transitions a pending run to success or failed. The status
// guard makes finalization exactly-once: a second call affects zero rows.
func (s *pgStore) FinalizeSyncRun(ctx context.Context, input FinalizeSyncRunInput) error {
	result := s.db.WithContext(ctx).
		Model(&schema.VendorSyncRun{}).
		Where("run_id = ? AND status = ?", input.RunID, schema.RunStatusPending).
		Updates(map[string]any{
			"status":      input.Status,
			"finished_at": input.FinishedAt,
			"duration_ms": input.DurationMS,
			"total_items": input.TotalItems,
			"summary":     input.Summary,
			"error":       input.Error,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finalize sync run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sync run %s is not pending", input.RunID)
	}
	return nil
}

// GetSyncRunByID retrieves a sync run by its ULID
func (s *pgStore) GetSyncRunByID(ctx context.Context, runID string) (*schema.VendorSyncRun, error) {
	var run schema.VendorSyncRun
	err := s.db.WithContext(ctx).Where("run_id = ?", runID).First(&run).Error
	if err == nil {
		return &run, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get sync run: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("run_id = ?", runID).
		First(&run).Error
	if err == nil {
		return &run, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get sync run: %w", err)
}

// ListSyncRuns retrieves sync runs newest first, optionally filtered by vendor
func (s *pgStore) ListSyncRuns(ctx context.Context, vendor string, limit, offset int) ([]*schema.VendorSyncRun, uint64, error) {
	if limit <= 0 {
		limit = 50
	}

	query := s.db.WithContext(ctx).Model(&schema.VendorSyncRun{})
	if vendor != "" {
		query = query.Where("vendor = ?", vendor)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sync runs: %w", err)
	}

	var runs []*schema.VendorSyncRun
	err := query.
		Order("started_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sync runs: %w", err)
	}

	return runs, uint64(total), nil
}

// GetVendorSyncState retrieves the sync state row for a vendor
func (s *pgStore) GetVendorSyncState(ctx context.Context, vendor string) (*schema.VendorSyncState, error) {
	var state schema.VendorSyncState
	err := s.db.WithContext(ctx).Where("vendor = ?", vendor).First(&state).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync state: %w", err)
	}
	return &state, nil
}

// GetVendorIntegration retrieves the integration configuration for a vendor
func (s *pgStore) GetVendorIntegration(ctx context.Context, vendor string) (*schema.VendorIntegration, error) {
	var integration schema.VendorIntegration
	err := s.db.WithContext(ctx).Where("vendor = ?", vendor).First(&integration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vendor integration: %w", err)
	}
	return &integration, nil
}

// ListVendorIntegrations retrieves integration configurations, optionally only
// enabled ones
func (s *pgStore) ListVendorIntegrations(ctx context.Context, onlyEnabled bool) ([]*schema.VendorIntegration, error) {
	query := s.db.WithContext(ctx)
	if onlyEnabled {
		query = query.Where("enabled = ?", true)
	}

	var integrations []*schema.VendorIntegration
	err := query.Order("vendor ASC").Find(&integrations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vendor integrations: %w", err)
	}
	return integrations, nil
}

// UpsertVendorIntegration creates or updates the integration configuration for
// a vendor. Test history columns are preserved across upserts.
func (s *pgStore) UpsertVendorIntegration(ctx context.Context, input UpsertVendorIntegrationInput) (*schema.VendorIntegration, error) {
	integration := schema.VendorIntegration{
		Vendor:     input.Vendor,
		Kind:       input.Kind,
		SourcePath: input.SourcePath,
		BaseURL:    input.BaseURL,
		AuthKind:   input.AuthKind,
		SecretEnv:  input.SecretEnv,
		Enabled:    input.Enabled,
	}
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "vendor"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"kind", "source_path", "base_url", "auth_kind", "secret_env",
			"enabled", "updated_at",
		}),
	}, clause.Returning{}).Create(&integration).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert vendor integration: %w", err)
	}
	return &integration, nil
}

// UpdateIntegrationTestResult writes a connectivity test outcome back to the
// integration row
func (s *pgStore) UpdateIntegrationTestResult(ctx context.Context, input UpdateIntegrationTestResultInput) error {
	result := s.db.WithContext(ctx).
		Model(&schema.VendorIntegration{}).
		Where("vendor = ?", input.Vendor).
		Updates(map[string]any{
			"last_test_at":    input.TestedAt,
			"last_test_ok":    input.Ok,
			"last_test_error": input.Error,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update integration test result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vendor integration %s not found", input.Vendor)
	}
	return nil
}
