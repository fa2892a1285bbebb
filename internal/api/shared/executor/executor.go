package executor

import (
	"context"
	"fmt"

	"github.com/lensport/catalog-sync-v2/internal/api/shared/constants"
	"github.com/lensport/catalog-sync-v2/internal/api/shared/dto"
	apierrors "github.com/lensport/catalog-sync-v2/internal/api/shared/errors"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/harness"
	"github.com/lensport/catalog-sync-v2/internal/store"
	"github.com/lensport/catalog-sync-v2/internal/store/schema"
	"github.com/lensport/catalog-sync-v2/internal/syncer"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

// Executor is the interface for the API executor. It carries the business
// logic behind the REST handlers so the handlers stay thin.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Sync executes one sync run and returns its summary
	Sync(ctx context.Context, vendor string, mode domain.SyncMode, source domain.BatchSource, actor string) (*domain.RunSummary, error)

	// TestIntegration runs one vendor's connectivity test
	TestIntegration(ctx context.Context, vendor string, overrides harness.Overrides) (*harness.TestResult, error)

	// TestAllIntegrations tests every enabled integration concurrently
	TestAllIntegrations(ctx context.Context) (*harness.AllResult, error)

	// GetVendorState retrieves a vendor's last applied sync state
	GetVendorState(ctx context.Context, vendor string) (*dto.VendorStateResponse, error)

	// ListRuns retrieves a vendor's audit trail page, newest first
	ListRuns(ctx context.Context, vendor string, limit int, offset int) (*dto.RunListResponse, error)

	// GetRun retrieves a single sync run by its ULID
	GetRun(ctx context.Context, runID string) (*dto.SyncRunResponse, error)

	// UpsertIntegration creates or replaces a vendor's integration
	// configuration, preserving its test history
	UpsertIntegration(ctx context.Context, vendor string, req dto.UpsertIntegrationRequest) (*dto.IntegrationResponse, error)

	// ListVendors lists every registered vendor adapter together with its
	// stored configuration
	ListVendors(ctx context.Context) (*dto.VendorListResponse, error)
}

type executor struct {
	store    store.Store
	syncer   syncer.Syncer
	harness  harness.Harness
	registry *vendors.Registry
}

// NewExecutor creates a new API executor
func NewExecutor(st store.Store, sync syncer.Syncer, harn harness.Harness, registry *vendors.Registry) Executor {
	return &executor{store: st, syncer: sync, harness: harn, registry: registry}
}

func (e *executor) Sync(ctx context.Context, vendor string, mode domain.SyncMode, source domain.BatchSource, actor string) (*domain.RunSummary, error) {
	return e.syncer.Sync(ctx, syncer.SyncInput{
		Vendor: vendor,
		Mode:   mode,
		Source: source,
		Actor:  actor,
	})
}

func (e *executor) TestIntegration(ctx context.Context, vendor string, overrides harness.Overrides) (*harness.TestResult, error) {
	return e.harness.TestIntegration(ctx, vendor, overrides)
}

func (e *executor) TestAllIntegrations(ctx context.Context) (*harness.AllResult, error) {
	return e.harness.TestAll(ctx)
}

func (e *executor) GetVendorState(ctx context.Context, vendor string) (*dto.VendorStateResponse, error) {
	slug := canonical.NormalizeSlug(vendor)
	if _, err := e.registry.Resolve(slug); err != nil {
		return nil, err
	}

	state, err := e.store.GetVendorSyncState(ctx, slug)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sync state for %s: %v", slug, err))
	}
	if state == nil {
		return nil, nil
	}

	return dto.MapSyncStateToDTO(state), nil
}

func (e *executor) ListRuns(ctx context.Context, vendor string, limit int, offset int) (*dto.RunListResponse, error) {
	slug := canonical.NormalizeSlug(vendor)
	if _, err := e.registry.Resolve(slug); err != nil {
		return nil, err
	}

	// Use defaults if not provided
	if limit <= 0 {
		limit = constants.DEFAULT_RUNS_LIMIT
	}
	if offset < 0 {
		offset = constants.DEFAULT_OFFSET
	}

	runs, total, err := e.store.ListSyncRuns(ctx, slug, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list sync runs for %s: %v", slug, err))
	}

	response := &dto.RunListResponse{
		Runs:  dto.MapSyncRunsToDTO(runs),
		Total: total,
	}
	if next := uint64(offset) + uint64(len(runs)); next < total {
		response.Offset = &next
	}

	return response, nil
}

func (e *executor) GetRun(ctx context.Context, runID string) (*dto.SyncRunResponse, error) {
	run, err := e.store.GetSyncRunByID(ctx, runID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get sync run %s: %v", runID, err))
	}
	if run == nil {
		return nil, nil
	}

	return dto.MapSyncRunToDTO(run), nil
}

func (e *executor) UpsertIntegration(ctx context.Context, vendor string, req dto.UpsertIntegrationRequest) (*dto.IntegrationResponse, error) {
	slug := canonical.NormalizeSlug(vendor)
	if _, err := e.registry.Resolve(slug); err != nil {
		return nil, err
	}

	integration, err := e.store.UpsertVendorIntegration(ctx, store.UpsertVendorIntegrationInput{
		Vendor:     slug,
		Kind:       schema.IntegrationKind(req.Kind),
		SourcePath: req.SourcePath,
		BaseURL:    req.BaseURL,
		AuthKind:   req.AuthKindValue(),
		SecretEnv:  req.SecretEnv,
		Enabled:    req.EnabledValue(),
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to upsert integration for %s: %v", slug, err))
	}

	return dto.MapIntegrationToDTO(integration), nil
}

func (e *executor) ListVendors(ctx context.Context) (*dto.VendorListResponse, error) {
	integrations, err := e.store.ListVendorIntegrations(ctx, false)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list integrations: %v", err))
	}

	byVendor := make(map[string]*schema.VendorIntegration, len(integrations))
	for _, integration := range integrations {
		byVendor[integration.Vendor] = integration
	}

	slugs := e.registry.Slugs()
	out := make([]dto.VendorResponse, 0, len(slugs))
	for _, slug := range slugs {
		vendorAdapter, resolveErr := e.registry.Resolve(slug)
		if resolveErr != nil {
			continue
		}
		v := dto.VendorResponse{
			Slug:     slug,
			Category: string(vendorAdapter.Category()),
		}
		if integration, ok := byVendor[slug]; ok {
			kind := string(integration.Kind)
			v.Configured = true
			v.Enabled = integration.Enabled
			v.Kind = &kind
			v.LastTestAt = integration.LastTestAt
			v.LastTestOk = integration.LastTestOk
		}
		out = append(out, v)
	}

	return &dto.VendorListResponse{Vendors: out, Total: len(out)}, nil
}
