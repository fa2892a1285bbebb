package syncer_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/logger"
	"github.com/lensport/catalog-sync-v2/internal/mocks"
	"github.com/lensport/catalog-sync-v2/internal/store"
	"github.com/lensport/catalog-sync-v2/internal/store/schema"
	"github.com/lensport/catalog-sync-v2/internal/syncer"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
	"github.com/lensport/catalog-sync-v2/internal/vendors/moscot"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var testStartedAt = time.Date(2025, 6, 12, 8, 30, 0, 0, time.UTC)

// testSyncerMocks contains all the mocks needed for testing the syncer
type testSyncerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	loader    *mocks.MockFeedLoader
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	syncer    syncer.Syncer
}

// setupTestSyncer wires a syncer with a real moscot adapter and hasher so
// normalization and hashing run for real; store, loader, publisher and clock
// are mocked.
func setupTestSyncer(t *testing.T) *testSyncerMocks {
	ctrl := gomock.NewController(t)

	tm := &testSyncerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		loader:    mocks.NewMockFeedLoader(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	registry := vendors.NewRegistry(
		moscot.NewAdapter(nil, adapter.NewJSON(), "https://moscot.test/feed.json"),
	)
	hasher := canonical.NewHasher(adapter.NewJSON(), adapter.NewJCS())

	tm.syncer = syncer.NewSyncer(
		registry,
		tm.store,
		tm.loader,
		hasher,
		tm.publisher,
		adapter.NewJSON(),
		tm.clock,
	)

	return tm
}

// tearDownTestSyncer cleans up the test mocks
func tearDownTestSyncer(mocks *testSyncerMocks) {
	mocks.ctrl.Finish()
}

// stubClock sets up the fixed run clock
func (tm *testSyncerMocks) stubClock() {
	tm.clock.EXPECT().Now().Return(testStartedAt).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(1200 * time.Millisecond).AnyTimes()
}

// expectCreateRun expects the pending audit record and hands back its run id
func (tm *testSyncerMocks) expectCreateRun(t *testing.T, vendor string, mode schema.RunMode) *string {
	var runID string
	tm.store.
		EXPECT().
		CreateSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateSyncRunInput) (*schema.VendorSyncRun, error) {
			assert.Equal(t, vendor, input.Vendor)
			assert.Equal(t, mode, input.Mode)
			assert.Len(t, input.RunID, 26)
			runID = input.RunID
			return &schema.VendorSyncRun{
				RunID:     input.RunID,
				Vendor:    input.Vendor,
				Mode:      input.Mode,
				Status:    schema.RunStatusPending,
				Actor:     input.Actor,
				StartedAt: input.StartedAt,
			}, nil
		})
	return &runID
}

// =============================================================================
// Fixtures - scraped moscot feed records
// =============================================================================

func lemtoshRecord() map[string]any {
	return map[string]any{
		"style":      "LEMTOSH",
		"title":      "The Lemtosh",
		"collection": "Originals",
		"colors": []any{
			map[string]any{
				"name":     "Tortoise",
				"sku":      "LEM-TOR-46",
				"size":     "46□24-145",
				"material": "Acetate",
			},
		},
		"images": []any{
			map[string]any{
				"src":   "https://cdn.moscot.test/lemtosh-front.jpg",
				"angle": "front",
				"hero":  true,
			},
		},
	}
}

func lemtoshRecordRevised() map[string]any {
	record := lemtoshRecord()
	record["colors"] = []any{
		map[string]any{
			"name":     "Tortoise",
			"sku":      "LEM-TOR-46",
			"size":     "46□24-145",
			"material": "Italian Acetate",
		},
	}
	return record
}

func miltzenRecord() map[string]any {
	return map[string]any{
		"style": "MILTZEN",
		"title": "The Miltzen",
		"colors": []any{
			map[string]any{
				"name": "Crystal",
				"size": "44□22-145",
			},
		},
	}
}

func invalidRecord() map[string]any {
	// No colorways: dropped by input validation
	return map[string]any{
		"style": "BROKEN",
	}
}

func staleHash(seed byte) string {
	return strings.Repeat(string(seed), 64)
}

// =============================================================================
// Dry run
// =============================================================================

func TestSyncer_Sync_DryRun(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	runID := tm.expectCreateRun(t, "moscot", schema.RunModeDryRun)

	// LEMTOSH persisted with a stale hash (update), CHARLIE persisted but
	// absent from the batch (removed), MILTZEN new (created)
	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{
			"LEMTOSH": staleHash('a'),
			"CHARLIE": staleHash('b'),
		}, nil)

	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, *runID, input.RunID)
			assert.Equal(t, schema.RunStatusSuccess, input.Status)
			assert.Equal(t, 2, input.TotalItems)
			assert.Nil(t, input.Error)
			require.NotNil(t, input.Summary)
			assert.Contains(t, string(input.Summary), `"dry_run":true`)
			assert.Contains(t, string(input.Summary), `"skipped":1`)
			return nil
		})

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeDryRun,
		Source: domain.BatchSource{Items: []map[string]any{
			lemtoshRecord(),
			miltzenRecord(),
			invalidRecord(),
		}},
		Actor: "ops@lensport.io",
	})
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.True(t, summary.DryRun)
	assert.Equal(t, "moscot", summary.Vendor)
	assert.Nil(t, summary.SourcePath)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Removed)
	assert.Equal(t, 0, summary.Unchanged)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, int64(1200), summary.DurationMS)
	assert.Len(t, summary.Hash, 64)
}

// =============================================================================
// Apply
// =============================================================================

func TestSyncer_Sync_ApplyCreates(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	runID := tm.expectCreateRun(t, "moscot", schema.RunModeApply)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)

	var applied store.ApplyChangesetInput
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			applied = input
			return nil
		})

	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, schema.RunStatusSuccess, input.Status)
			assert.Equal(t, testStartedAt, input.FinishedAt)
			return nil
		})

	var events []*domain.ItemChangeEvent
	tm.publisher.
		EXPECT().
		PublishItemChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.ItemChangeEvent) error {
			events = append(events, event)
			return nil
		}).
		Times(2)

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{
			lemtoshRecord(),
			miltzenRecord(),
		}},
		Actor: "scheduler",
	})
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.False(t, summary.DryRun)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Removed)

	// The changeset reached the store in one piece
	assert.Equal(t, "moscot", applied.Vendor)
	require.Len(t, applied.Created, 2)
	assert.Empty(t, applied.Updated)
	assert.Empty(t, applied.Removed)
	assert.Equal(t, "LEMTOSH", applied.Created[0].CatalogID)
	assert.Equal(t, "MILTZEN", applied.Created[1].CatalogID)
	assert.Len(t, applied.Created[0].ContentHash, 64)
	assert.Contains(t, string(applied.Created[0].Raw), `"style":"LEMTOSH"`)

	// The persisted normalized payload is the canonical product stamped with
	// the run time
	var product domain.CanonicalProduct
	require.NoError(t, adapter.NewJSON().Unmarshal(applied.Created[0].Normalized, &product))
	assert.Equal(t, "LEMTOSH", product.CatalogID)
	assert.Equal(t, domain.CategoryFrames, product.Category)
	assert.Equal(t, "MOSCOT", product.Brand)
	assert.Equal(t, testStartedAt, product.Source.LastSyncAt)

	// State snapshot matches the summary
	assert.Equal(t, testStartedAt, applied.State.LastRunAt)
	assert.Equal(t, int64(1200), applied.State.LastDurationMS)
	assert.Equal(t, 2, applied.State.TotalItems)
	assert.Equal(t, summary.Hash, applied.State.LastBatchHash)
	assert.Equal(t, "scheduler", applied.State.LastActor)
	assert.Nil(t, applied.State.LastError)
	assert.JSONEq(t, `{"kind":"injected","items":2}`, string(applied.State.LastSource))

	// One created event per new item
	require.Len(t, events, 2)
	for _, event := range events {
		assert.Equal(t, "moscot", event.Vendor)
		assert.Equal(t, domain.ChangeCreated, event.Change)
		assert.Equal(t, *runID, event.RunID)
		assert.Len(t, event.Hash, 64)
	}
}

func TestSyncer_Sync_ApplyUpdateAndRemove(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{
			"LEMTOSH": staleHash('a'),
			"CHARLIE": staleHash('b'),
		}, nil)

	var applied store.ApplyChangesetInput
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			applied = input
			return nil
		})

	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		Return(nil)

	var events []*domain.ItemChangeEvent
	tm.publisher.
		EXPECT().
		PublishItemChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.ItemChangeEvent) error {
			events = append(events, event)
			return nil
		}).
		Times(2)

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "scheduler",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Removed)
	assert.Equal(t, 0, summary.Unchanged)

	assert.Empty(t, applied.Created)
	require.Len(t, applied.Updated, 1)
	assert.Equal(t, "LEMTOSH", applied.Updated[0].CatalogID)
	assert.Equal(t, []string{"CHARLIE"}, applied.Removed)

	require.Len(t, events, 2)
	assert.Equal(t, domain.ChangeUpdated, events[0].Change)
	assert.Equal(t, "LEMTOSH", events[0].CatalogID)
	assert.Equal(t, domain.ChangeRemoved, events[1].Change)
	assert.Equal(t, "CHARLIE", events[1].CatalogID)
	assert.Empty(t, events[1].Hash)
}

func TestSyncer_Sync_ApplyIdempotence(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()

	// First apply persists LEMTOSH; capture the hash it computed
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)
	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)

	var persistedHash string
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			require.Len(t, input.Created, 1)
			persistedHash = input.Created[0].ContentHash
			return nil
		})
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishItemChange(gomock.Any(), gomock.Any()).Return(nil)

	first, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "scheduler",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	// Second apply of the identical batch: everything unchanged, the state
	// upsert still happens, no changefeed events
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)
	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{"LEMTOSH": persistedHash}, nil)

	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			assert.Empty(t, input.Created)
			assert.Empty(t, input.Updated)
			assert.Empty(t, input.Removed)
			assert.Equal(t, 1, input.State.TotalItems)
			return nil
		})
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)

	second, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "scheduler",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 0, second.Updated)
	assert.Equal(t, 0, second.Removed)
	assert.Equal(t, 1, second.Unchanged)
	assert.Equal(t, first.Hash, second.Hash)
}

func TestSyncer_Sync_RevisedRecordChangesHash(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()

	tm.expectCreateRun(t, "moscot", schema.RunModeApply)
	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)

	var persistedHash string
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			persistedHash = input.Created[0].ContentHash
			return nil
		})
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishItemChange(gomock.Any(), gomock.Any()).Return(nil)

	_, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "scheduler",
	})
	require.NoError(t, err)

	// A material change in the colorway must reclassify the item as updated
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)
	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{"LEMTOSH": persistedHash}, nil)

	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			require.Len(t, input.Updated, 1)
			assert.NotEqual(t, persistedHash, input.Updated[0].ContentHash)
			return nil
		})
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishItemChange(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecordRevised()}},
		Actor:  "scheduler",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Updated)
}

// =============================================================================
// Sources
// =============================================================================

func TestSyncer_Sync_PathSource(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)

	tm.loader.
		EXPECT().
		Load(gomock.Any(), "minio://feeds/moscot.json").
		Return([]map[string]any{lemtoshRecord()}, "minio://feeds/moscot.json", nil)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)

	var applied store.ApplyChangesetInput
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			applied = input
			return nil
		})
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishItemChange(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{SourcePath: "minio://feeds/moscot.json"},
		Actor:  "scheduler",
	})
	require.NoError(t, err)

	require.NotNil(t, summary.SourcePath)
	assert.Equal(t, "minio://feeds/moscot.json", *summary.SourcePath)
	assert.JSONEq(t, `{"kind":"path","path":"minio://feeds/moscot.json"}`, string(applied.State.LastSource))
}

func TestSyncer_Sync_LoaderError(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeDryRun)

	tm.loader.
		EXPECT().
		Load(gomock.Any(), "feeds/missing.json").
		Return(nil, "", assert.AnError)

	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, schema.RunStatusFailed, input.Status)
			require.NotNil(t, input.Error)
			assert.Equal(t, assert.AnError.Error(), *input.Error)
			return nil
		})

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeDryRun,
		Source: domain.BatchSource{SourcePath: "feeds/missing.json"},
		Actor:  "ops@lensport.io",
	})
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestSyncer_Sync_LiveFetchNotSupported(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeDryRun)

	// The moscot adapter is a feed scraper without a live client
	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, schema.RunStatusFailed, input.Status)
			require.NotNil(t, input.Error)
			assert.Contains(t, *input.Error, "no live fetch")
			return nil
		})

	_, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeDryRun,
		Source: domain.BatchSource{Live: true},
		Actor:  "ops@lensport.io",
	})
	require.Error(t, err)

	var execErr *domain.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "moscot", execErr.Vendor)
	assert.Equal(t, "fetch", execErr.Op)
}

// =============================================================================
// Failure handling
// =============================================================================

func TestSyncer_Sync_UnknownVendor(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "acme", schema.RunModeDryRun)

	// The failed attempt still leaves a finalized audit record
	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, schema.RunStatusFailed, input.Status)
			require.NotNil(t, input.Error)
			assert.Contains(t, *input.Error, "no adapter registered")
			return nil
		})

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "acme",
		Mode:   domain.ModeDryRun,
		Source: domain.BatchSource{Items: []map[string]any{}},
		Actor:  "ops@lensport.io",
	})
	assert.Nil(t, summary)
	assert.True(t, domain.IsAdapterNotFound(err))
}

func TestSyncer_Sync_InvalidMode(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	// No run record, no store calls
	_, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.SyncMode("rehearse"),
		Source: domain.BatchSource{Items: []map[string]any{}},
		Actor:  "ops@lensport.io",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sync mode")
}

func TestSyncer_Sync_AmbiguousSource(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	_, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeDryRun,
		Source: domain.BatchSource{
			Items: []map[string]any{},
			Live:  true,
		},
		Actor: "ops@lensport.io",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestSyncer_Sync_OutputValidationAborts(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	// An adapter that declares frames but emits a lenses product is a
	// contract violation and must abort the batch
	badAdapter := mocks.NewMockVendorAdapter(tm.ctrl)
	badAdapter.EXPECT().Slug().Return("brokenco").AnyTimes()
	badAdapter.EXPECT().Category().Return(domain.CategoryFrames).AnyTimes()
	badAdapter.
		EXPECT().
		Normalize(gomock.Any()).
		Return(&domain.CanonicalProduct{
			CatalogID: "L-1",
			Category:  domain.CategoryLenses,
			Brand:     "BrokenCo",
			Model:     "Series",
			Name:      "Series",
			Variants: []domain.Variant{{
				ID:   "V1",
				Lens: &domain.LensAttributes{Design: "single_vision", Index: 1.5},
			}},
			Source: domain.Source{Supplier: "BrokenCo", Confidence: domain.ConfidenceVerified},
		}, nil)

	registry := vendors.NewRegistry(badAdapter)
	hasher := canonical.NewHasher(adapter.NewJSON(), adapter.NewJCS())
	syncerInstance := syncer.NewSyncer(registry, tm.store, tm.loader, hasher, tm.publisher, adapter.NewJSON(), tm.clock)

	tm.stubClock()
	tm.expectCreateRun(t, "brokenco", schema.RunModeApply)

	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, schema.RunStatusFailed, input.Status)
			require.NotNil(t, input.Error)
			assert.Contains(t, *input.Error, "declares category frames")
			return nil
		})

	_, err := syncerInstance.Sync(context.Background(), syncer.SyncInput{
		Vendor: "brokenco",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{{"id": "L-1"}}},
		Actor:  "scheduler",
	})
	require.Error(t, err)
	assert.True(t, domain.IsOutputValidation(err))
}

func TestSyncer_Sync_StoreHashesError(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeDryRun)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(nil, assert.AnError)

	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, schema.RunStatusFailed, input.Status)
			return nil
		})

	_, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeDryRun,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "ops@lensport.io",
	})
	assert.Error(t, err)
}

func TestSyncer_Sync_ApplyChangesetError(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)

	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	// Rolled-back transaction still yields a retrievable failure record and
	// no changefeed events
	tm.store.
		EXPECT().
		FinalizeSyncRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.FinalizeSyncRunInput) error {
			assert.Equal(t, schema.RunStatusFailed, input.Status)
			require.NotNil(t, input.Error)
			assert.Equal(t, assert.AnError.Error(), *input.Error)
			return nil
		})

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "scheduler",
	})
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestSyncer_Sync_PublishFailureDoesNotFailRun(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		Return(nil)
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)

	tm.publisher.
		EXPECT().
		PublishItemChange(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "scheduler",
	})
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Created)
}

func TestSyncer_Sync_NilPublisher(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	registry := vendors.NewRegistry(
		moscot.NewAdapter(nil, adapter.NewJSON(), "https://moscot.test/feed.json"),
	)
	hasher := canonical.NewHasher(adapter.NewJSON(), adapter.NewJCS())
	syncerInstance := syncer.NewSyncer(registry, tm.store, tm.loader, hasher, nil, adapter.NewJSON(), tm.clock)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		Return(nil)
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := syncerInstance.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{lemtoshRecord()}},
		Actor:  "scheduler",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
}

func TestSyncer_Sync_DuplicateCatalogIDLastWins(t *testing.T) {
	tm := setupTestSyncer(t)
	defer tearDownTestSyncer(tm)

	tm.stubClock()
	tm.expectCreateRun(t, "moscot", schema.RunModeApply)

	tm.store.
		EXPECT().
		GetCatalogItemHashes(gomock.Any(), "moscot").
		Return(map[string]string{}, nil)

	var applied store.ApplyChangesetInput
	tm.store.
		EXPECT().
		ApplyChangeset(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.ApplyChangesetInput) error {
			applied = input
			return nil
		})
	tm.store.EXPECT().FinalizeSyncRun(gomock.Any(), gomock.Any()).Return(nil)
	tm.publisher.EXPECT().PublishItemChange(gomock.Any(), gomock.Any()).Return(nil)

	summary, err := tm.syncer.Sync(context.Background(), syncer.SyncInput{
		Vendor: "moscot",
		Mode:   domain.ModeApply,
		Source: domain.BatchSource{Items: []map[string]any{
			lemtoshRecord(),
			lemtoshRecordRevised(),
		}},
		Actor: "scheduler",
	})
	require.NoError(t, err)

	// Duplicate style: the revised record wins, one item total
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Created)
	require.Len(t, applied.Created, 1)
	assert.Contains(t, string(applied.Created[0].Raw), "Italian Acetate")
}
