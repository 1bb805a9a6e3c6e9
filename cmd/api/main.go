package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/api/middleware"
	"github.com/firstbreaklabs/steam-intel/internal/api/rest"
	"github.com/firstbreaklabs/steam-intel/internal/api/server"
	"github.com/firstbreaklabs/steam-intel/internal/collector"
	"github.com/firstbreaklabs/steam-intel/internal/config"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/providers/jetstream"
	"github.com/firstbreaklabs/steam-intel/internal/providers/steamspy"
	"github.com/firstbreaklabs/steam-intel/internal/providers/storefront"
	"github.com/firstbreaklabs/steam-intel/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Steam Intel API")

	// Connect to database
	db, err := connectDB(cfg.Database.DSN())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Connect to NATS for manual collect triggers
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: "steam-intel-api",
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer publisher.Close()
	if err := publisher.EnsureStream(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to ensure trigger stream", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Steam-facing clients
	httpClient := adapter.NewHTTPClient(cfg.Steam.HTTPTimeout)
	clock := adapter.NewClock()
	steamSpy := steamspy.NewClient(httpClient, cfg.Steam.SteamSpyURL)
	steamStore := storefront.NewClient(httpClient, cfg.Steam.StoreURL, cfg.Steam.WebAPIURL)

	// The portfolio collector doubles as the on-demand fetcher behind the
	// analyze endpoint.
	fetcher := collector.NewPortfolioCollector(dataStore, steamSpy, clock, cfg.Publisher.GameAppIDs)
	importer := collector.NewRevenueImporter(dataStore)

	handler := rest.NewHandler(dataStore, fetcher, importer, steamStore, publisher, clock)

	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			APIKeys: cfg.Auth.APIKeys,
		},
	}, handler)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

// connectDB dials Postgres with exponential backoff so the server survives
// database startup ordering in containerized deploys
func connectDB(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	operation := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		return err
	}
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return db, nil
}
