package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/lensport/catalog-sync-v2/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// testContentHash derives a deterministic 64-char hex digest from a seed
func testContentHash(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// testRunID produces a 26-char run identifier from a sequence number
func testRunID(n int) string {
	return fmt.Sprintf("01JFAKERUN%016d", n)
}

// buildTestCatalogItem creates a catalog item input for a vendor
func buildTestCatalogItem(vendor, catalogID, model string) CatalogItemInput {
	raw := fmt.Sprintf(`{"style_id":%q,"name":%q}`, catalogID, model)
	normalized := fmt.Sprintf(
		`{"vendor":%q,"catalog_id":%q,"model":%q,"category":"frames"}`,
		vendor, catalogID, model,
	)
	return CatalogItemInput{
		CatalogID:   catalogID,
		Raw:         datatypes.JSON([]byte(raw)),
		Normalized:  datatypes.JSON([]byte(normalized)),
		ContentHash: testContentHash(vendor + catalogID + model),
	}
}

// buildTestSyncState creates a sync state input
func buildTestSyncState(totalItems int) SyncStateInput {
	return SyncStateInput{
		LastRunAt:      time.Now().UTC().Truncate(time.Millisecond),
		LastDurationMS: 1200,
		TotalItems:     totalItems,
		LastBatchHash:  testContentHash("batch"),
		LastSource:     datatypes.JSON([]byte(`{"mode":"live"}`)),
		LastActor:      "sync-runner",
	}
}

// =============================================================================
// Test: ApplyChangeset
// =============================================================================

func testApplyChangeset(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("unknown vendor yields empty results", func(t *testing.T) {
		items, err := store.GetCatalogItemsByVendor(ctx, "acme")
		require.NoError(t, err)
		assert.Empty(t, items)

		hashes, err := store.GetCatalogItemHashes(ctx, "acme")
		require.NoError(t, err)
		assert.Empty(t, hashes)
	})

	t.Run("create inserts items and upserts sync state", func(t *testing.T) {
		input := ApplyChangesetInput{
			Vendor: "moscot",
			Created: []CatalogItemInput{
				buildTestCatalogItem("moscot", "MILTZEN", "Miltzen"),
				buildTestCatalogItem("moscot", "LEMTOSH", "Lemtosh"),
			},
			State: buildTestSyncState(2),
		}

		err := store.ApplyChangeset(ctx, input)
		require.NoError(t, err)

		items, err := store.GetCatalogItemsByVendor(ctx, "moscot")
		require.NoError(t, err)
		require.Len(t, items, 2)
		// Items come back ordered by catalog_id
		assert.Equal(t, "LEMTOSH", items[0].CatalogID)
		assert.Equal(t, "MILTZEN", items[1].CatalogID)
		assert.Equal(t, "moscot", items[0].Vendor)
		assert.JSONEq(t, string(input.Created[1].Raw), string(items[0].Raw))
		assert.JSONEq(t, string(input.Created[1].Normalized), string(items[0].Normalized))

		hashes, err := store.GetCatalogItemHashes(ctx, "moscot")
		require.NoError(t, err)
		require.Len(t, hashes, 2)
		assert.Equal(t, input.Created[1].ContentHash, hashes["LEMTOSH"])
		assert.Equal(t, input.Created[0].ContentHash, hashes["MILTZEN"])

		state, err := store.GetVendorSyncState(ctx, "moscot")
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, 2, state.TotalItems)
		assert.Equal(t, "sync-runner", state.LastActor)
		assert.Nil(t, state.LastError)
	})

	t.Run("update rewrites payloads and hashes", func(t *testing.T) {
		updated := buildTestCatalogItem("moscot", "LEMTOSH", "Lemtosh Fold")
		err := store.ApplyChangeset(ctx, ApplyChangesetInput{
			Vendor:  "moscot",
			Updated: []CatalogItemInput{updated},
			State:   buildTestSyncState(2),
		})
		require.NoError(t, err)

		hashes, err := store.GetCatalogItemHashes(ctx, "moscot")
		require.NoError(t, err)
		assert.Equal(t, updated.ContentHash, hashes["LEMTOSH"])

		items, err := store.GetCatalogItemsByVendor(ctx, "moscot")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.JSONEq(t, string(updated.Normalized), string(items[0].Normalized))
	})

	t.Run("remove deletes items", func(t *testing.T) {
		err := store.ApplyChangeset(ctx, ApplyChangesetInput{
			Vendor:  "moscot",
			Removed: []string{"MILTZEN"},
			State:   buildTestSyncState(1),
		})
		require.NoError(t, err)

		items, err := store.GetCatalogItemsByVendor(ctx, "moscot")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "LEMTOSH", items[0].CatalogID)

		state, err := store.GetVendorSyncState(ctx, "moscot")
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, 1, state.TotalItems)
	})

	t.Run("update of missing item rolls back the whole changeset", func(t *testing.T) {
		err := store.ApplyChangeset(ctx, ApplyChangesetInput{
			Vendor: "moscot",
			Created: []CatalogItemInput{
				buildTestCatalogItem("moscot", "NEBB", "Nebb"),
			},
			Updated: []CatalogItemInput{
				buildTestCatalogItem("moscot", "GHOST", "Ghost"),
			},
			State: buildTestSyncState(3),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found for update")

		// The created item must not survive the rollback
		hashes, err := store.GetCatalogItemHashes(ctx, "moscot")
		require.NoError(t, err)
		_, ok := hashes["NEBB"]
		assert.False(t, ok)

		state, err := store.GetVendorSyncState(ctx, "moscot")
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, 1, state.TotalItems)
	})

	t.Run("duplicate create is rejected", func(t *testing.T) {
		err := store.ApplyChangeset(ctx, ApplyChangesetInput{
			Vendor: "moscot",
			Created: []CatalogItemInput{
				buildTestCatalogItem("moscot", "LEMTOSH", "Lemtosh"),
			},
			State: buildTestSyncState(2),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create catalog items")
	})

	t.Run("items are scoped per vendor", func(t *testing.T) {
		err := store.ApplyChangeset(ctx, ApplyChangesetInput{
			Vendor: "shuron",
			Created: []CatalogItemInput{
				buildTestCatalogItem("shuron", "RONSIR-ZYL", "Ronsir"),
			},
			State: buildTestSyncState(1),
		})
		require.NoError(t, err)

		moscotItems, err := store.GetCatalogItemsByVendor(ctx, "moscot")
		require.NoError(t, err)
		assert.Len(t, moscotItems, 1)

		shuronItems, err := store.GetCatalogItemsByVendor(ctx, "shuron")
		require.NoError(t, err)
		require.Len(t, shuronItems, 1)
		assert.Equal(t, "RONSIR-ZYL", shuronItems[0].CatalogID)
	})
}

// =============================================================================
// Test: CreateSyncRun
// =============================================================================

func testCreateSyncRun(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates a pending run", func(t *testing.T) {
		startedAt := time.Now().UTC().Truncate(time.Millisecond)
		run, err := store.CreateSyncRun(ctx, CreateSyncRunInput{
			RunID:     testRunID(1),
			Vendor:    "moscot",
			Mode:      schema.RunModeDryRun,
			Actor:     "ops@lensport.io",
			StartedAt: startedAt,
		})
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, schema.RunStatusPending, run.Status)
		assert.Equal(t, schema.RunModeDryRun, run.Mode)
		assert.Equal(t, "ops@lensport.io", run.Actor)
		assert.Nil(t, run.FinishedAt)
		assert.Nil(t, run.DurationMS)

		got, err := store.GetSyncRunByID(ctx, testRunID(1))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "moscot", got.Vendor)
		assert.Equal(t, schema.RunStatusPending, got.Status)
	})

	t.Run("duplicate run id is rejected", func(t *testing.T) {
		_, err := store.CreateSyncRun(ctx, CreateSyncRunInput{
			RunID:     testRunID(1),
			Vendor:    "shuron",
			Mode:      schema.RunModeApply,
			Actor:     "scheduler",
			StartedAt: time.Now().UTC(),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create sync run")
	})
}

// =============================================================================
// Test: FinalizeSyncRun
// =============================================================================

func testFinalizeSyncRun(t *testing.T, store Store) {
	ctx := context.Background()

	startedAt := time.Now().UTC().Truncate(time.Millisecond)
	_, err := store.CreateSyncRun(ctx, CreateSyncRunInput{
		RunID:     testRunID(10),
		Vendor:    "moscot",
		Mode:      schema.RunModeApply,
		Actor:     "scheduler",
		StartedAt: startedAt,
	})
	require.NoError(t, err)

	t.Run("finalizes a pending run", func(t *testing.T) {
		finishedAt := startedAt.Add(842 * time.Millisecond)
		err := store.FinalizeSyncRun(ctx, FinalizeSyncRunInput{
			RunID:      testRunID(10),
			Status:     schema.RunStatusSuccess,
			FinishedAt: finishedAt,
			DurationMS: 842,
			TotalItems: 12,
			Summary:    datatypes.JSON([]byte(`{"created":2,"updated":1,"removed":0,"unchanged":9}`)),
		})
		require.NoError(t, err)

		got, err := store.GetSyncRunByID(ctx, testRunID(10))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.RunStatusSuccess, got.Status)
		require.NotNil(t, got.FinishedAt)
		require.NotNil(t, got.DurationMS)
		assert.Equal(t, int64(842), *got.DurationMS)
		assert.Equal(t, 12, got.TotalItems)
		assert.JSONEq(t, `{"created":2,"updated":1,"removed":0,"unchanged":9}`, string(got.Summary))
	})

	t.Run("second finalize is rejected", func(t *testing.T) {
		err := store.FinalizeSyncRun(ctx, FinalizeSyncRunInput{
			RunID:      testRunID(10),
			Status:     schema.RunStatusFailed,
			FinishedAt: time.Now().UTC(),
			DurationMS: 1,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not pending")

		// The first outcome must stand
		got, err := store.GetSyncRunByID(ctx, testRunID(10))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.RunStatusSuccess, got.Status)
	})

	t.Run("finalizing an unknown run errors", func(t *testing.T) {
		err := store.FinalizeSyncRun(ctx, FinalizeSyncRunInput{
			RunID:      testRunID(999),
			Status:     schema.RunStatusSuccess,
			FinishedAt: time.Now().UTC(),
			DurationMS: 1,
		})
		require.Error(t, err)
	})

	t.Run("failed run records the error", func(t *testing.T) {
		_, err := store.CreateSyncRun(ctx, CreateSyncRunInput{
			RunID:     testRunID(11),
			Vendor:    "opticlear",
			Mode:      schema.RunModeApply,
			Actor:     "scheduler",
			StartedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		runErr := "fetch failed: connection refused"
		err = store.FinalizeSyncRun(ctx, FinalizeSyncRunInput{
			RunID:      testRunID(11),
			Status:     schema.RunStatusFailed,
			FinishedAt: time.Now().UTC(),
			DurationMS: 57,
			Error:      &runErr,
		})
		require.NoError(t, err)

		got, err := store.GetSyncRunByID(ctx, testRunID(11))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.RunStatusFailed, got.Status)
		require.NotNil(t, got.Error)
		assert.Equal(t, runErr, *got.Error)
	})
}

// =============================================================================
// Test: GetSyncRunByID
// =============================================================================

func testGetSyncRunByID(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns nil for unknown run", func(t *testing.T) {
		run, err := store.GetSyncRunByID(ctx, testRunID(404))
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("returns the run", func(t *testing.T) {
		startedAt := time.Now().UTC().Truncate(time.Millisecond)
		created, err := store.CreateSyncRun(ctx, CreateSyncRunInput{
			RunID:     testRunID(20),
			Vendor:    "irisline",
			Mode:      schema.RunModeDryRun,
			Actor:     "ops@lensport.io",
			StartedAt: startedAt,
		})
		require.NoError(t, err)

		got, err := store.GetSyncRunByID(ctx, testRunID(20))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, created.RunID, got.RunID)
		assert.Equal(t, "irisline", got.Vendor)
		assert.Equal(t, schema.RunModeDryRun, got.Mode)
	})
}

// =============================================================================
// Test: ListSyncRuns
// =============================================================================

func testListSyncRuns(t *testing.T, store Store) {
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	seed := []CreateSyncRunInput{
		{RunID: testRunID(30), Vendor: "moscot", Mode: schema.RunModeApply, Actor: "scheduler", StartedAt: base.Add(-2 * time.Hour)},
		{RunID: testRunID(31), Vendor: "moscot", Mode: schema.RunModeDryRun, Actor: "ops@lensport.io", StartedAt: base.Add(-time.Hour)},
		{RunID: testRunID(32), Vendor: "moscot", Mode: schema.RunModeApply, Actor: "scheduler", StartedAt: base},
		{RunID: testRunID(33), Vendor: "shuron", Mode: schema.RunModeApply, Actor: "scheduler", StartedAt: base.Add(-30 * time.Minute)},
	}
	for _, input := range seed {
		_, err := store.CreateSyncRun(ctx, input)
		require.NoError(t, err)
	}

	t.Run("lists newest first", func(t *testing.T) {
		runs, total, err := store.ListSyncRuns(ctx, "moscot", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, runs, 3)
		assert.Equal(t, testRunID(32), runs[0].RunID)
		assert.Equal(t, testRunID(31), runs[1].RunID)
		assert.Equal(t, testRunID(30), runs[2].RunID)
	})

	t.Run("paginates", func(t *testing.T) {
		runs, total, err := store.ListSyncRuns(ctx, "moscot", 2, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, runs, 2)

		runs, total, err = store.ListSyncRuns(ctx, "moscot", 2, 2)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		require.Len(t, runs, 1)
		assert.Equal(t, testRunID(30), runs[0].RunID)
	})

	t.Run("empty vendor lists all vendors", func(t *testing.T) {
		runs, total, err := store.ListSyncRuns(ctx, "", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), total)
		assert.Len(t, runs, 4)
	})

	t.Run("non-positive limit falls back to default", func(t *testing.T) {
		runs, total, err := store.ListSyncRuns(ctx, "moscot", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), total)
		assert.Len(t, runs, 3)
	})
}

// =============================================================================
// Test: GetVendorSyncState
// =============================================================================

func testGetVendorSyncState(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns nil when vendor never synced", func(t *testing.T) {
		state, err := store.GetVendorSyncState(ctx, "opticlear")
		require.NoError(t, err)
		assert.Nil(t, state)
	})

	t.Run("returns the upserted state", func(t *testing.T) {
		input := buildTestSyncState(0)
		err := store.ApplyChangeset(ctx, ApplyChangesetInput{
			Vendor: "irisline",
			State:  input,
		})
		require.NoError(t, err)

		state, err := store.GetVendorSyncState(ctx, "irisline")
		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, input.LastBatchHash, state.LastBatchHash)
		assert.Equal(t, input.LastActor, state.LastActor)
		assert.Equal(t, input.LastDurationMS, state.LastDurationMS)
		assert.JSONEq(t, string(input.LastSource), string(state.LastSource))
		assert.Nil(t, state.LastError)
	})

	t.Run("last error survives the round trip", func(t *testing.T) {
		syncErr := "normalize failed: record 3 missing style_id"
		input := buildTestSyncState(0)
		input.LastError = &syncErr
		err := store.ApplyChangeset(ctx, ApplyChangesetInput{
			Vendor: "irisline",
			State:  input,
		})
		require.NoError(t, err)

		state, err := store.GetVendorSyncState(ctx, "irisline")
		require.NoError(t, err)
		require.NotNil(t, state)
		require.NotNil(t, state.LastError)
		assert.Equal(t, syncErr, *state.LastError)
	})
}

// =============================================================================
// Test: VendorIntegrations
// =============================================================================

func testVendorIntegrations(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("list returns the seeded integrations in vendor order", func(t *testing.T) {
		integrations, err := store.ListVendorIntegrations(ctx, false)
		require.NoError(t, err)
		require.Len(t, integrations, 5)
		assert.Equal(t, "casewerk", integrations[0].Vendor)
		assert.Equal(t, "irisline", integrations[1].Vendor)
		assert.Equal(t, "moscot", integrations[2].Vendor)
		assert.Equal(t, "opticlear", integrations[3].Vendor)
		assert.Equal(t, "shuron", integrations[4].Vendor)
	})

	t.Run("get returns a seeded integration", func(t *testing.T) {
		integration, err := store.GetVendorIntegration(ctx, "moscot")
		require.NoError(t, err)
		require.NotNil(t, integration)
		assert.Equal(t, schema.IntegrationKindScraper, integration.Kind)
		assert.Equal(t, schema.AuthKindNone, integration.AuthKind)
		assert.True(t, integration.Enabled)
		assert.Nil(t, integration.LastTestAt)
	})

	t.Run("get returns nil for unknown vendor", func(t *testing.T) {
		integration, err := store.GetVendorIntegration(ctx, "acme")
		require.NoError(t, err)
		assert.Nil(t, integration)
	})

	t.Run("upsert creates a new integration", func(t *testing.T) {
		baseURL := "https://api.acme.test/v1"
		secretEnv := "ACME_API_KEY"
		integration, err := store.UpsertVendorIntegration(ctx, UpsertVendorIntegrationInput{
			Vendor:    "acme",
			Kind:      schema.IntegrationKindAPI,
			BaseURL:   &baseURL,
			AuthKind:  schema.AuthKindAPIKey,
			SecretEnv: &secretEnv,
			Enabled:   true,
		})
		require.NoError(t, err)
		require.NotNil(t, integration)
		assert.Equal(t, schema.IntegrationKindAPI, integration.Kind)
		require.NotNil(t, integration.BaseURL)
		assert.Equal(t, baseURL, *integration.BaseURL)
		assert.True(t, integration.Enabled)
		assert.Nil(t, integration.LastTestAt)
	})

	t.Run("upsert updates an existing integration", func(t *testing.T) {
		sourcePath := "minio://feeds/casewerk.json"
		integration, err := store.UpsertVendorIntegration(ctx, UpsertVendorIntegrationInput{
			Vendor:     "casewerk",
			Kind:       schema.IntegrationKindScraper,
			SourcePath: &sourcePath,
			AuthKind:   schema.AuthKindNone,
			Enabled:    false,
		})
		require.NoError(t, err)
		require.NotNil(t, integration)
		assert.False(t, integration.Enabled)
		require.NotNil(t, integration.SourcePath)
		assert.Equal(t, sourcePath, *integration.SourcePath)
	})

	t.Run("test result writeback", func(t *testing.T) {
		testedAt := time.Now().UTC().Truncate(time.Millisecond)
		err := store.UpdateIntegrationTestResult(ctx, UpdateIntegrationTestResultInput{
			Vendor:   "shuron",
			TestedAt: testedAt,
			Ok:       true,
		})
		require.NoError(t, err)

		integration, err := store.GetVendorIntegration(ctx, "shuron")
		require.NoError(t, err)
		require.NotNil(t, integration)
		require.NotNil(t, integration.LastTestAt)
		require.NotNil(t, integration.LastTestOk)
		assert.True(t, *integration.LastTestOk)
		assert.Nil(t, integration.LastTestError)
	})

	t.Run("failed test records the error", func(t *testing.T) {
		testErr := "HEAD request timed out"
		err := store.UpdateIntegrationTestResult(ctx, UpdateIntegrationTestResultInput{
			Vendor:   "moscot",
			TestedAt: time.Now().UTC(),
			Ok:       false,
			Error:    &testErr,
		})
		require.NoError(t, err)

		integration, err := store.GetVendorIntegration(ctx, "moscot")
		require.NoError(t, err)
		require.NotNil(t, integration)
		require.NotNil(t, integration.LastTestOk)
		assert.False(t, *integration.LastTestOk)
		require.NotNil(t, integration.LastTestError)
		assert.Equal(t, testErr, *integration.LastTestError)
	})

	t.Run("upsert preserves test history", func(t *testing.T) {
		baseURL := "https://partners.shuron.test/api/v2"
		secretEnv := "SHURON_API_KEY"
		integration, err := store.UpsertVendorIntegration(ctx, UpsertVendorIntegrationInput{
			Vendor:    "shuron",
			Kind:      schema.IntegrationKindAPI,
			BaseURL:   &baseURL,
			AuthKind:  schema.AuthKindAPIKey,
			SecretEnv: &secretEnv,
			Enabled:   true,
		})
		require.NoError(t, err)
		require.NotNil(t, integration)
		require.NotNil(t, integration.BaseURL)
		assert.Equal(t, baseURL, *integration.BaseURL)
		// Config changes must not erase the last connectivity test
		require.NotNil(t, integration.LastTestAt)
		require.NotNil(t, integration.LastTestOk)
		assert.True(t, *integration.LastTestOk)
	})

	t.Run("writeback for unknown vendor errors", func(t *testing.T) {
		err := store.UpdateIntegrationTestResult(ctx, UpdateIntegrationTestResultInput{
			Vendor:   "nonesuch",
			TestedAt: time.Now().UTC(),
			Ok:       true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("only enabled filter", func(t *testing.T) {
		all, err := store.ListVendorIntegrations(ctx, false)
		require.NoError(t, err)

		enabled, err := store.ListVendorIntegrations(ctx, true)
		require.NoError(t, err)
		// casewerk was disabled above
		assert.Len(t, enabled, len(all)-1)
		for _, integration := range enabled {
			assert.True(t, integration.Enabled)
			assert.NotEqual(t, "casewerk", integration.Vendor)
		}
	})
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ApplyChangeset", testApplyChangeset},
		{"CreateSyncRun", testCreateSyncRun},
		{"FinalizeSyncRun", testFinalizeSyncRun},
		{"GetSyncRunByID", testGetSyncRunByID},
		{"ListSyncRuns", testListSyncRuns},
		{"GetVendorSyncState", testGetVendorSyncState},
		{"VendorIntegrations", testVendorIntegrations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
