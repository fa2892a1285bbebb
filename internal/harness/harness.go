package harness

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/logger"
	"github.com/lensport/catalog-sync-v2/internal/store"
	"github.com/lensport/catalog-sync-v2/internal/store/schema"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
)

const (
	// WORKER_POOL_SIZE bounds how many vendors are tested concurrently
	WORKER_POOL_SIZE = 5

	// DEFAULT_VENDOR_TIMEOUT bounds a single vendor's connectivity check
	DEFAULT_VENDOR_TIMEOUT = 20 * time.Second
)

// TestResult is the outcome of one vendor's connectivity test
type TestResult struct {
	OK     bool   `json:"ok"`
	Vendor string `json:"vendor"`
	Meta   Meta   `json:"meta"`
}

// Meta describes what was tested and how it went
type Meta struct {
	Category   domain.Category        `json:"category"`
	Kind       schema.IntegrationKind `json:"kind"`
	BaseURL    *string                `json:"base_url,omitempty"`
	DurationMS int64                  `json:"duration_ms"`
	Error      string                 `json:"error,omitempty"`
}

// VendorFailure is one vendor's failure inside a test-all sweep
type VendorFailure struct {
	Slug  string `json:"slug"`
	Error string `json:"error"`
}

// AllResult aggregates a test-all sweep. The failure list order follows task
// completion and is not guaranteed.
type AllResult struct {
	Tested   int             `json:"tested"`
	Passed   int             `json:"passed"`
	Failed   int             `json:"failed"`
	Failures []VendorFailure `json:"failures"`
}

// Overrides adjusts one test invocation without touching the stored
// integration
type Overrides struct {
	// Timeout bounds the connectivity check; zero uses the configured default
	Timeout time.Duration
	// SkipRecord leaves the integration's test history unchanged
	SkipRecord bool
}

// Harness smoke-tests vendor integrations
//
//go:generate mockgen -source=harness.go -destination=../mocks/harness.go -package=mocks -mock_names=Harness=MockHarness
type Harness interface {
	// TestIntegration tests one vendor's connectivity. A failing check is a
	// result, not an error; errors are reserved for unknown, unconfigured, or
	// untestable vendors.
	TestIntegration(ctx context.Context, vendor string, overrides Overrides) (*TestResult, error)

	// TestAll tests every enabled integration with bounded concurrency. One
	// vendor's failure never prevents the others from being tested; failures
	// are captured in the result.
	TestAll(ctx context.Context) (*AllResult, error)
}

type harness struct {
	registry      *vendors.Registry
	store         store.Store
	clock         adapter.Clock
	vendorTimeout time.Duration
}

// NewHarness creates a new integration test harness
func NewHarness(registry *vendors.Registry, st store.Store, clock adapter.Clock, vendorTimeout time.Duration) Harness {
	if vendorTimeout <= 0 {
		vendorTimeout = DEFAULT_VENDOR_TIMEOUT
	}
	return &harness{
		registry:      registry,
		store:         st,
		clock:         clock,
		vendorTimeout: vendorTimeout,
	}
}

// TestIntegration tests one vendor's connectivity
func (h *harness) TestIntegration(ctx context.Context, vendor string, overrides Overrides) (*TestResult, error) {
	slug := canonical.NormalizeSlug(vendor)

	vendorAdapter, err := h.registry.Resolve(slug)
	if err != nil {
		return nil, &domain.VendorNotConfiguredError{Vendor: slug}
	}

	integration, err := h.store.GetVendorIntegration(ctx, slug)
	if err != nil {
		return nil, err
	}
	if integration == nil || !integration.Enabled {
		return nil, &domain.VendorNotConfiguredError{Vendor: slug}
	}

	tester, ok := vendorAdapter.(vendors.Tester)
	if !ok {
		return nil, fmt.Errorf("vendor %s: %w", slug, domain.ErrTestNotImplemented)
	}

	timeout := overrides.Timeout
	if timeout <= 0 {
		timeout = h.vendorTimeout
	}

	start := h.clock.Now()
	testErr := h.runTest(ctx, tester, timeout)
	durationMS := h.clock.Since(start).Milliseconds()

	result := &TestResult{
		OK:     testErr == nil,
		Vendor: slug,
		Meta: Meta{
			Category:   vendorAdapter.Category(),
			Kind:       integration.Kind,
			BaseURL:    integration.BaseURL,
			DurationMS: durationMS,
		},
	}
	if testErr != nil {
		result.Meta.Error = testErr.Error()
	}

	if !overrides.SkipRecord {
		h.recordOutcome(ctx, slug, testErr)
	}

	logger.InfoCtx(ctx, "Integration test finished",
		zap.String("vendor", slug),
		zap.Bool("ok", result.OK),
		zap.Int64("duration_ms", durationMS),
	)

	return result, nil
}

// TestAll tests every enabled integration with bounded concurrency
func (h *harness) TestAll(ctx context.Context) (*AllResult, error) {
	integrations, err := h.store.ListVendorIntegrations(ctx, true)
	if err != nil {
		return nil, err
	}

	result := &AllResult{Failures: []VendorFailure{}}
	if len(integrations) == 0 {
		return result, nil
	}

	logger.InfoCtx(ctx, "Testing vendor integrations",
		zap.Int("count", len(integrations)),
		zap.Int("worker_pool_size", WORKER_POOL_SIZE),
		zap.Duration("vendor_timeout", h.vendorTimeout),
	)

	var tested, passed, failed atomic.Int32

	var mu sync.Mutex
	failures := make([]VendorFailure, 0)

	pool := pond.NewPool(
		WORKER_POOL_SIZE,
		pond.WithQueueSize(len(integrations)),
		pond.WithContext(ctx),
	)

	for _, integration := range integrations {
		slug := integration.Vendor
		pool.Submit(func() {
			testErr := h.testOne(ctx, slug)
			tested.Add(1)
			if testErr == nil {
				passed.Add(1)
				return
			}
			failed.Add(1)
			mu.Lock()
			failures = append(failures, VendorFailure{Slug: slug, Error: testErr.Error()})
			mu.Unlock()
		})
	}

	pool.StopAndWait()

	result.Tested = int(tested.Load())
	result.Passed = int(passed.Load())
	result.Failed = int(failed.Load())
	result.Failures = failures

	logger.InfoCtx(ctx, "Integration test sweep completed",
		zap.Int("tested", result.Tested),
		zap.Int("passed", result.Passed),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

// testOne runs one vendor's check inside a test-all sweep and records the
// outcome on its integration row
func (h *harness) testOne(ctx context.Context, slug string) error {
	vendorAdapter, err := h.registry.Resolve(slug)
	if err != nil {
		h.recordOutcome(ctx, slug, err)
		return err
	}

	tester, ok := vendorAdapter.(vendors.Tester)
	if !ok {
		h.recordOutcome(ctx, slug, domain.ErrTestNotImplemented)
		return domain.ErrTestNotImplemented
	}

	err = h.runTest(ctx, tester, h.vendorTimeout)
	h.recordOutcome(ctx, slug, err)
	return err
}

// runTest bounds one connectivity check so a hung vendor cannot block the
// caller past the timeout, even when the tester ignores cancellation
func (h *harness) runTest(ctx context.Context, tester vendors.Tester, timeout time.Duration) error {
	testCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- tester.TestConnection(testCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-testCtx.Done():
		return testCtx.Err()
	}
}

// recordOutcome writes one test result back to the integration row. Failures
// here are logged, not propagated: the test outcome is already decided.
func (h *harness) recordOutcome(ctx context.Context, slug string, testErr error) {
	input := store.UpdateIntegrationTestResultInput{
		Vendor:   slug,
		TestedAt: h.clock.Now().UTC(),
		Ok:       testErr == nil,
	}
	if testErr != nil {
		msg := testErr.Error()
		input.Error = &msg
	}

	if err := h.store.UpdateIntegrationTestResult(ctx, input); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("vendor", slug))
	}
}
