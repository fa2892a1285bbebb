package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/lensport/catalog-sync-v2/internal/adapter"
	"github.com/lensport/catalog-sync-v2/internal/api/middleware"
	"github.com/lensport/catalog-sync-v2/internal/api/server"
	"github.com/lensport/catalog-sync-v2/internal/canonical"
	"github.com/lensport/catalog-sync-v2/internal/config"
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

func main() {
	configFile := flag.String("config", "", "path to configuration file")
	envPath := flag.String("env", "", "path to the directory containing .env files")
	flag.Parse()

	config.ChdirRepoRoot()

	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Environment:     cfg.Environment,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	}); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	logger.InfoCtx(ctx, "Starting catalog sync API server",
		zap.String("environment", cfg.Environment),
		zap.Bool("debug", cfg.Debug))

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	if cfg.Database.ReadHost != "" {
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.Database.ReadDSN())},
		})); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered database read replica",
			zap.String("read_host", cfg.Database.ReadHost))
	}

	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure database connection pool", zap.Error(err))
	}

	dataStore := store.NewPGStore(db)

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	jcsAdapter := adapter.NewJCS()
	fileSystem := adapter.NewFileSystem()
	httpClient := adapter.NewHTTPClient(cfg.Sync.HTTPTimeout)

	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter proxy", zap.Error(err))
	}
	defer func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Warn("Failed to close rate limiter proxy", zap.Error(err))
		}
	}()

	registry := vendors.NewRegistry(
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
			logger.FatalCtx(ctx, "Failed to create object store client", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to object store",
			zap.String("endpoint", cfg.ObjectStore.Endpoint))
	} else {
		logger.WarnCtx(ctx, "Object store not configured, feed sources using minio:// will fail")
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
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS",
			zap.String("url", cfg.NATS.URL),
			zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, changefeed publishing disabled")
	}

	hasher := canonical.NewHasher(jsonAdapter, jcsAdapter)
	vendorSyncer := syncer.NewSyncer(registry, dataStore, feedLoader, hasher, publisher, jsonAdapter, clock)
	testHarness := harness.NewHarness(registry, dataStore, clock, cfg.Harness.VendorTimeout)

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, dataStore, vendorSyncer, testHarness, registry)

	errCh := make(chan error, 1)
	go func() {
		logger.InfoCtx(ctx, "API server listening",
			zap.String("host", cfg.Server.Host),
			zap.Int("port", cfg.Server.Port))
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "http-server"))
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}
