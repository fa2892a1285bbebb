package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/diff"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/feeds"
	"github.com/lensport/catalog-sync-v2/internal/logger"
	"github.com/lensport/catalog-sync-v2/internal/messaging"
	"github.com/lensport/catalog-sync-v2/internal/store"
	"github.com/lensport/catalog-sync-v2/internal/store/schema"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

// SyncInput describes one requested sync run
type SyncInput struct {
	// Vendor is the vendor slug to sync
	Vendor string
	// Mode selects between dry-run and apply
	Mode domain.SyncMode
	// Source selects where the raw batch comes from
	Source domain.BatchSource
	// Actor identifies who triggered the run, recorded on the audit trail
	Actor string
}

// Syncer drives one vendor's catalog through
// fetch → normalize → diff → (report | apply)
//
//go:generate mockgen -source=syncer.go -destination=../mocks/syncer.go -package=mocks -mock_names=Syncer=MockSyncer
type Syncer interface {
	// Sync executes one run and returns its summary. Dry runs issue no
	// catalog mutations; both modes append an audit record.
	Sync(ctx context.Context, input SyncInput) (*domain.RunSummary, error)
}

type syncer struct {
	registry  *vendors.Registry
	store     store.Store
	loader    feeds.Loader
	hasher    canonical.Hasher
	publisher messaging.Publisher
	json      adapter.JSON
	clock     adapter.Clock
	locks     *vendorLocks
}

// NewSyncer creates a new sync orchestrator. publisher may be nil when no
// changefeed broker is configured.
func NewSyncer(
	registry *vendors.Registry,
	st store.Store,
	loader feeds.Loader,
	hasher canonical.Hasher,
	publisher messaging.Publisher,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) Syncer {
	return &syncer{
		registry:  registry,
		store:     st,
		loader:    loader,
		hasher:    hasher,
		publisher: publisher,
		json:      jsonAdapter,
		clock:     clock,
		locks:     newVendorLocks(),
	}
}

// sourceDescriptor is the jsonb snapshot of where a run's batch came from,
// stored on VendorSyncState
type sourceDescriptor struct {
	Kind  domain.BatchSourceKind `json:"kind"`
	Path  string                 `json:"path,omitempty"`
	Items int                    `json:"items,omitempty"`
}

// Sync executes one sync run end to end
func (s *syncer) Sync(ctx context.Context, input SyncInput) (*domain.RunSummary, error) {
	// Structural validation happens before the run record exists: a run with
	// an invalid mode or an ambiguous source is a caller mistake, not a sync
	// attempt against the vendor.
	if !domain.IsValidMode(input.Mode) {
		return nil, fmt.Errorf("invalid sync mode %q", input.Mode)
	}
	sourceKind, err := input.Source.Kind()
	if err != nil {
		return nil, err
	}

	vendor := canonical.NormalizeSlug(input.Vendor)
	startedAt := s.clock.Now().UTC()
	runID := ulid.MustNewDefault(startedAt).String()

	logger.InfoCtx(ctx, "Starting sync run",
		zap.String("run_id", runID),
		zap.String("vendor", vendor),
		zap.String("mode", string(input.Mode)),
		zap.String("source", string(sourceKind)),
		zap.String("actor", input.Actor),
	)

	// The audit record exists from the first moment of the run, so even an
	// unknown vendor slug leaves a retrievable failed attempt.
	if _, err := s.store.CreateSyncRun(ctx, store.CreateSyncRunInput{
		RunID:     runID,
		Vendor:    vendor,
		Mode:      runMode(input.Mode),
		Actor:     input.Actor,
		StartedAt: startedAt,
	}); err != nil {
		return nil, err
	}

	vendorAdapter, err := s.registry.Resolve(vendor)
	if err != nil {
		s.finalizeRun(ctx, runID, schema.RunStatusFailed, startedAt, 0, nil, err)
		return nil, err
	}

	// Applies for the same vendor queue behind a keyed lock so concurrent
	// runs cannot race each other's snapshot. Dry runs take no lock.
	if input.Mode == domain.ModeApply {
		lock := s.locks.forVendor(vendor)
		lock.Lock()
		defer lock.Unlock()
	}

	rawItems, sourcePath, err := s.resolveBatch(ctx, vendorAdapter, input.Source, sourceKind)
	if err != nil {
		s.finalizeRun(ctx, runID, schema.RunStatusFailed, startedAt, 0, nil, err)
		return nil, err
	}

	items, skipped, err := s.normalizeBatch(ctx, vendor, rawItems, startedAt)
	if err != nil {
		s.finalizeRun(ctx, runID, schema.RunStatusFailed, startedAt, 0, nil, err)
		return nil, err
	}

	persistedHashes, err := s.store.GetCatalogItemHashes(ctx, vendor)
	if err != nil {
		s.finalizeRun(ctx, runID, schema.RunStatusFailed, startedAt, 0, nil, err)
		return nil, err
	}
	persisted := make([]diff.PersistedItem, 0, len(persistedHashes))
	for catalogID, hash := range persistedHashes {
		persisted = append(persisted, diff.PersistedItem{CatalogID: catalogID, Hash: hash})
	}

	changeset := diff.Compute(items, persisted)

	itemHashes := make([]string, 0, len(changeset.Items))
	for _, item := range changeset.Items {
		itemHashes = append(itemHashes, item.Hash)
	}
	batchHash := s.hasher.HashBatch(itemHashes)

	durationMS := s.clock.Since(startedAt).Milliseconds()
	summary := &domain.RunSummary{
		DryRun:     input.Mode == domain.ModeDryRun,
		Vendor:     vendor,
		SourcePath: sourcePath,
		Total:      len(changeset.Items),
		Created:    changeset.Counts.Created,
		Updated:    changeset.Counts.Updated,
		Removed:    changeset.Counts.Removed,
		Unchanged:  changeset.Counts.Unchanged,
		Skipped:    skipped,
		DurationMS: durationMS,
		Hash:       batchHash,
	}

	if input.Mode == domain.ModeDryRun {
		s.finalizeRun(ctx, runID, schema.RunStatusSuccess, startedAt, summary.Total, summary, nil)
		logger.InfoCtx(ctx, "Dry run complete",
			zap.String("run_id", runID),
			zap.String("vendor", vendor),
			zap.Int("created", summary.Created),
			zap.Int("updated", summary.Updated),
			zap.Int("removed", summary.Removed),
			zap.Int("unchanged", summary.Unchanged),
			zap.Int("skipped", summary.Skipped),
		)
		return summary, nil
	}

	applyInput, err := s.buildApplyInput(vendor, input.Actor, startedAt, durationMS, batchHash, sourceKind, sourcePath, changeset)
	if err != nil {
		s.finalizeRun(ctx, runID, schema.RunStatusFailed, startedAt, summary.Total, nil, err)
		return nil, err
	}

	if err := s.store.ApplyChangeset(ctx, applyInput); err != nil {
		s.finalizeRun(ctx, runID, schema.RunStatusFailed, startedAt, summary.Total, nil, err)
		return nil, err
	}

	s.finalizeRun(ctx, runID, schema.RunStatusSuccess, startedAt, summary.Total, summary, nil)

	s.publishChanges(ctx, vendor, runID, changeset)

	logger.InfoCtx(ctx, "Sync run applied",
		zap.String("run_id", runID),
		zap.String("vendor", vendor),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("removed", summary.Removed),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("skipped", summary.Skipped),
		zap.Int64("duration_ms", summary.DurationMS),
	)

	return summary, nil
}

// resolveBatch returns the raw records for the requested source along with the
// resolved feed path for path sources
func (s *syncer) resolveBatch(ctx context.Context, vendorAdapter vendors.Adapter, source domain.BatchSource, kind domain.BatchSourceKind) ([]map[string]any, *string, error) {
	switch kind {
	case domain.BatchSourceInjected:
		return source.Items, nil, nil

	case domain.BatchSourcePath:
		rawItems, resolved, err := s.loader.Load(ctx, source.SourcePath)
		if err != nil {
			return nil, nil, err
		}
		return rawItems, &resolved, nil

	case domain.BatchSourceLive:
		fetcher, ok := vendorAdapter.(vendors.Fetcher)
		if !ok {
			return nil, nil, &domain.ExecutionError{
				Vendor: vendorAdapter.Slug(),
				Op:     "fetch",
				Err:    fmt.Errorf("vendor has no live fetch"),
			}
		}
		rawItems, err := fetcher.FetchAll(ctx)
		if err != nil {
			return nil, nil, err
		}
		return rawItems, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported batch source %q", kind)
	}
}

// normalizeBatch maps raw records to hashed diff items. Records failing input
// validation are dropped and counted; output validation and execution errors
// abort the batch.
func (s *syncer) normalizeBatch(ctx context.Context, vendor string, rawItems []map[string]any, syncedAt time.Time) ([]diff.Item, int, error) {
	items := make([]diff.Item, 0, len(rawItems))
	skipped := 0

	for i, raw := range rawItems {
		product, err := s.registry.Normalize(vendor, raw)
		if err != nil {
			if domain.IsInputValidation(err) {
				skipped++
				logger.WarnCtx(ctx, "Skipping invalid record",
					zap.String("vendor", vendor),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			return nil, 0, err
		}

		product.Source.LastSyncAt = syncedAt

		hash, err := s.hasher.HashProduct(product)
		if err != nil {
			return nil, 0, &domain.ExecutionError{Vendor: vendor, Op: "hash", Err: err}
		}

		items = append(items, diff.Item{
			CatalogID: product.CatalogID,
			Hash:      hash,
			Product:   product,
			Raw:       raw,
		})
	}

	return items, skipped, nil
}

// buildApplyInput marshals the changeset into the store's transactional input
func (s *syncer) buildApplyInput(vendor, actor string, startedAt time.Time, durationMS int64, batchHash string, sourceKind domain.BatchSourceKind, sourcePath *string, changeset diff.Changeset) (store.ApplyChangesetInput, error) {
	created, err := s.buildItemInputs(changeset.Created)
	if err != nil {
		return store.ApplyChangesetInput{}, err
	}
	updated, err := s.buildItemInputs(changeset.Updated)
	if err != nil {
		return store.ApplyChangesetInput{}, err
	}

	descriptor := sourceDescriptor{Kind: sourceKind}
	if sourcePath != nil {
		descriptor.Path = *sourcePath
	}
	if sourceKind == domain.BatchSourceInjected {
		descriptor.Items = len(changeset.Items)
	}
	lastSource, err := s.json.Marshal(descriptor)
	if err != nil {
		return store.ApplyChangesetInput{}, fmt.Errorf("failed to marshal source descriptor: %w", err)
	}

	return store.ApplyChangesetInput{
		Vendor:  vendor,
		Created: created,
		Updated: updated,
		Removed: changeset.Removed,
		State: store.SyncStateInput{
			LastRunAt:      startedAt,
			LastDurationMS: durationMS,
			TotalItems:     len(changeset.Items),
			LastBatchHash:  batchHash,
			LastSource:     lastSource,
			LastActor:      actor,
		},
	}, nil
}

// buildItemInputs marshals diff items into catalog item rows
func (s *syncer) buildItemInputs(items []diff.Item) ([]store.CatalogItemInput, error) {
	inputs := make([]store.CatalogItemInput, 0, len(items))
	for _, item := range items {
		raw, err := s.json.Marshal(item.Raw)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal raw payload for %s: %w", item.CatalogID, err)
		}
		normalized, err := s.json.Marshal(item.Product)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal normalized payload for %s: %w", item.CatalogID, err)
		}
		inputs = append(inputs, store.CatalogItemInput{
			CatalogID:   item.CatalogID,
			Raw:         raw,
			Normalized:  normalized,
			ContentHash: item.Hash,
		})
	}
	return inputs, nil
}

// finalizeRun transitions the audit record to its terminal status. Failures
// here are logged, not propagated: the run outcome is already decided and for
// applies the transaction already committed or rolled back.
func (s *syncer) finalizeRun(ctx context.Context, runID string, status schema.RunStatus, startedAt time.Time, totalItems int, summary *domain.RunSummary, runErr error) {
	input := store.FinalizeSyncRunInput{
		RunID:      runID,
		Status:     status,
		FinishedAt: s.clock.Now().UTC(),
		DurationMS: s.clock.Since(startedAt).Milliseconds(),
		TotalItems: totalItems,
	}

	if summary != nil {
		data, err := s.json.Marshal(summary)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal run summary: %w", err), zap.String("run_id", runID))
		} else {
			input.Summary = data
		}
	}

	if runErr != nil {
		msg := runErr.Error()
		input.Error = &msg
	}

	if err := s.store.FinalizeSyncRun(ctx, input); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("run_id", runID))
	}
}

// publishChanges emits one changefeed event per mutated item. The apply
// already committed, so publish failures are logged and never propagated.
func (s *syncer) publishChanges(ctx context.Context, vendor, runID string, changeset diff.Changeset) {
	if s.publisher == nil {
		return
	}

	timestamp := s.clock.Now().UTC()

	publish := func(catalogID string, change domain.ChangeType, hash string) {
		event := &domain.ItemChangeEvent{
			Vendor:    vendor,
			CatalogID: catalogID,
			Change:    change,
			Hash:      hash,
			RunID:     runID,
			Timestamp: timestamp,
		}
		if err := s.publisher.PublishItemChange(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish changefeed event",
				zap.String("vendor", vendor),
				zap.String("catalog_id", catalogID),
				zap.String("change", string(change)),
				zap.Error(err),
			)
		}
	}

	for _, item := range changeset.Created {
		publish(item.CatalogID, domain.ChangeCreated, item.Hash)
	}
	for _, item := range changeset.Updated {
		publish(item.CatalogID, domain.ChangeUpdated, item.Hash)
	}
	for _, catalogID := range changeset.Removed {
		publish(catalogID, domain.ChangeRemoved, "")
	}
}

// runMode converts the domain sync mode to its schema value
func runMode(m domain.SyncMode) schema.RunMode {
	if m == domain.ModeApply {
		return schema.RunModeApply
	}
	return schema.RunModeDryRun
}

// vendorLocks serializes applies per vendor. Mutexes are created on first use
// and kept for the process lifetime; the vendor set is small and fixed.
type vendorLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newVendorLocks() *vendorLocks {
	return &vendorLocks{locks: make(map[string]*sync.Mutex)}
}

// forVendor returns the mutex dedicated to a vendor, creating it on first use
func (v *vendorLocks) forVendor(vendor string) *sync.Mutex {
	v.mu.Lock()
	defer v.mu.Unlock()

	lock, ok := v.locks[vendor]
	if !ok {
		lock = &sync.Mutex{}
		v.locks[vendor] = lock
	}
	return lock
}
