package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/config"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/feeds"
	"github.com/lensport/catalog-sync-v2/internal/harness"
	"github.com/lensport/catalog-sync-v2/internal/logger"
	"github.com/lensport/catalog-sync-v2/internal/messaging"
	"github.com/lensport/catalog-sync-v2/internal/providers/jetstream"
	"github.com/lensport/catalog-sync-v2/internal/ratelimit"
	"github.com/lensport/catalog-sync-v2/internal/store"
	"github.com/lensport/catalog-sync-v2/internal/syncer"
	"github.com/lensport/catalog-sync-v2/internal/vendors"
	"github.com/lensport/catalog-sync-v2/internal/vendors/casewerk"
	"github.com/lensport/catalog-sync-v2/internal/vendors/irisline"
	"github.com/lensport/catalog-sync-v2/internal/vendors/moscot"
	"github.com/lensport/catalog-sync-v2/internal/vendors/opticlear"
	"github.com/lensport/catalog-sync-v2/internal/vendors/shuron"
)

var (
	configFile string
	envPath    string

	syncVendor     string
	syncMode       string
	syncSourcePath string
	syncLive       bool
	syncActor      string
)

var rootCmd = &cobra.Command{
	Use:   "sync-runner",
	Short: "Vendor catalog sync runner",
	Long: `sync-runner executes vendor catalog sync and integration test runs
without the HTTP surface, for cron jobs and operators.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a catalog sync for one vendor",
	Long: `Run a catalog sync for one vendor against a feed file or the live
vendor API. Dry-run reports the diff without touching the catalog.

Examples:
  # Report what a moscot feed drop would change
  sync-runner sync --vendor moscot --source-path feeds/moscot.json

  # Apply a live pull from the opticlear API
  sync-runner sync --vendor opticlear --live --mode apply --actor cron`,
	RunE: runSync,
}

var testAllCmd = &cobra.Command{
	Use:   "test-all",
	Short: "Test connectivity for every enabled vendor integration",
	Long: `Test connectivity for every enabled vendor integration and record the
outcome on each integration. Exits non-zero when any vendor fails, so cron
can alert on it.`,
	RunE: runTestAll,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "", "path to the directory containing .env files")

	syncCmd.Flags().StringVar(&syncVendor, "vendor", "", "vendor slug to sync")
	syncCmd.Flags().StringVar(&syncMode, "mode", string(domain.ModeDryRun), "run mode: dry_run or apply")
	syncCmd.Flags().StringVar(&syncSourcePath, "source-path", "", "feed file path or minio:// URI")
	syncCmd.Flags().BoolVar(&syncLive, "live", false, "fetch live from the vendor API instead of a feed file")
	syncCmd.Flags().StringVar(&syncActor, "actor", "cron", "actor recorded on the run")
	_ = syncCmd.MarkFlagRequired("vendor")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(testAllCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runtime holds the wired components shared by the sync and test-all commands.
type runtime struct {
	dataStore    store.Store
	registry     *vendors.Registry
	vendorSyncer syncer.Syncer
	testHarness  harness.Harness
	closers      []func()
}

func (r *runtime) close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

func newRuntime(ctx context.Context) (*runtime, error) {
	config.ChdirRepoRoot()

	cfg, err := config.LoadSyncRunnerConfig(configFile, envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sync-runner",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	rt := &runtime{}
	rt.closers = append(rt.closers, func() { logger.Flush(2 * time.Second) })

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.ReadHost != "" {
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.Database.ReadDSN())},
		})); err != nil {
			return nil, fmt.Errorf("failed to register read replica: %w", err)
		}
	}

	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime); err != nil {
		return nil, fmt.Errorf("failed to configure database connection pool: %w", err)
	}

	rt.dataStore = store.NewPGStore(db)

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	fileSystem := adapter.NewFileSystem()
	httpClient := adapter.NewHTTPClient(cfg.Sync.HTTPTimeout)

	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter proxy: %w", err)
	}
	rt.closers = append(rt.closers, func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Warn("Failed to close rate limiter proxy", zap.Error(err))
		}
	})

	rt.registry = vendors.NewRegistry(
		moscot.NewAdapter(httpClient, jsonAdapter, cfg.Vendors.MoscotFeedURL),
		shuron.NewAdapter(
			shuron.NewClient(httpClient, rateLimitProxy, cfg.Vendors.ShuronURL, cfg.Vendors.ShuronAPIKey),
			jsonAdapter),
		opticlear.NewAdapter(
			opticlear.NewClient(httpClient, rateLimitProxy, cfg.Vendors.OpticlearURL, cfg.Vendors.OpticlearToken),
			jsonAdapter),
		irisline.NewAdapter(
			irisline.NewClient(httpClient, rateLimitProxy, cfg.Vendors.IrislineURL, jsonAdapter),
			jsonAdapter),
		casewerk.NewAdapter(jsonAdapter),
	)

	var feedStorage feeds.Storage
	if cfg.ObjectStore.Endpoint != "" {
		feedStorage, err = feeds.NewStorage(cfg.ObjectStore)
		if err != nil {
			return nil, fmt.Errorf("failed to create object store client: %w", err)
		}
	}
	feedLoader := feeds.NewLoader(fileSystem, feedStorage, jsonAdapter)

	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		rt.closers = append(rt.closers, publisher.Close)
	} else {
		logger.WarnCtx(ctx, "NATS not configured, changefeed publishing disabled")
	}

	hasher := canonical.NewHasher(jsonAdapter, jcsAdapter)
	rt.vendorSyncer = syncer.NewSyncer(rt.registry, rt.dataStore, feedLoader, hasher, publisher, jsonAdapter, clock)
	rt.testHarness = harness.NewHarness(rt.registry, rt.dataStore, clock, cfg.Harness.VendorTimeout)

	return rt, nil
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	logger.InfoCtx(ctx, "Starting vendor sync",
		zap.String("vendor", syncVendor),
		zap.String("mode", syncMode),
		zap.String("source_path", syncSourcePath),
		zap.Bool("live", syncLive),
		zap.String("actor", syncActor))

	summary, err := rt.vendorSyncer.Sync(ctx, syncer.SyncInput{
		Vendor: syncVendor,
		Mode:   domain.SyncMode(syncMode),
		Source: domain.BatchSource{
			SourcePath: syncSourcePath,
			Live:       syncLive,
		},
		Actor: syncActor,
	})
	if err != nil {
		return fmt.Errorf("sync failed for vendor %s: %w", syncVendor, err)
	}

	logger.InfoCtx(ctx, "Vendor sync finished",
		zap.String("vendor", summary.Vendor),
		zap.Bool("dry_run", summary.DryRun),
		zap.Int("total", summary.Total),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("removed", summary.Removed),
		zap.Int("unchanged", summary.Unchanged),
		zap.Int("skipped", summary.Skipped),
		zap.Int64("duration_ms", summary.DurationMS),
		zap.String("hash", summary.Hash))

	return nil
}

func runTestAll(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rt, err := newRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.close()

	logger.InfoCtx(ctx, "Starting integration test sweep")

	result, err := rt.testHarness.TestAll(ctx)
	if err != nil {
		return fmt.Errorf("integration test sweep failed: %w", err)
	}

	logger.InfoCtx(ctx, "Integration test sweep finished",
		zap.Int("tested", result.Tested),
		zap.Int("passed", result.Passed),
		zap.Int("failed", result.Failed))

	for _, failure := range result.Failures {
		logger.WarnCtx(ctx, "Vendor integration test failed",
			zap.String("vendor", failure.Slug),
			zap.String("error", failure.Error))
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d vendor integrations failed", result.Failed, result.Tested)
	}

	return nil
}
