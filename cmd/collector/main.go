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
	"github.com/firstbreaklabs/steam-intel/internal/collector"
	"github.com/firstbreaklabs/steam-intel/internal/config"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/providers/partner"
	"github.com/firstbreaklabs/steam-intel/internal/providers/steamspy"
	"github.com/firstbreaklabs/steam-intel/internal/providers/storefront"
	"github.com/firstbreaklabs/steam-intel/internal/scheduler"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/trigger"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadCollectorConfig(*configFile, *envPath)
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
			"service": "collector",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Steam Intel collector")

	// Connect to database
	db, err := connectDB(cfg.Database.DSN())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	dataStore := store.NewPGStore(db)

	// Steam-facing clients
	httpClient := adapter.NewHTTPClient(cfg.Steam.HTTPTimeout)
	clock := adapter.NewClock()
	steamSpy := steamspy.NewClient(httpClient, cfg.Steam.SteamSpyURL)
	steamStore := storefront.NewClient(httpClient, cfg.Steam.StoreURL, cfg.Steam.WebAPIURL)
	partnerClient := partner.NewClient(httpClient, cfg.Steam.PartnerURL, cfg.Steam.PartnerAPIKey)

	// Register collectors
	sched := scheduler.New(scheduler.Config{
		PoolSize:  cfg.Worker.PoolSize,
		QueueSize: cfg.Worker.QueueSize,
	}, dataStore, clock)

	sched.Register(collector.NewPortfolioCollector(dataStore, steamSpy, clock, cfg.Publisher.GameAppIDs), cfg.Jobs.PortfolioInterval, true)
	sched.Register(collector.NewTopSellersCollector(dataStore, steamStore, clock), cfg.Jobs.MarketInterval, false)
	sched.Register(collector.NewGenreTrendsCollector(dataStore, steamSpy, clock), cfg.Jobs.GenreInterval, false)
	sched.Register(collector.NewCorrelationCollector(dataStore, clock), cfg.Jobs.CorrelationInterval, false)
	sched.Register(collector.NewUpcomingCollector(dataStore, steamStore), cfg.Jobs.UpcomingInterval, false)
	sched.Register(collector.NewPartnerFinancialsCollector(
		dataStore, partnerClient, clock,
		cfg.Publisher.Name, cfg.Jobs.RevenueBackfillDays, cfg.Steam.PartnerEnabled(),
	), cfg.Jobs.RevenueInterval, false)

	logger.InfoCtx(ctx, "Registered collector jobs", zap.Strings("jobs", sched.Jobs()))

	// Connect the manual trigger consumer
	consumer, err := trigger.NewConsumer(trigger.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		ConsumerName:   cfg.NATS.ConsumerName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: "steam-intel-collector",
		AckWaitTimeout: cfg.NATS.AckWait,
		MaxDeliver:     cfg.NATS.MaxDeliver,
	}, adapter.NewNatsJetStream(), sched, adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	defer consumer.Close()

	errCh := make(chan error, 2)
	go func() {
		if err := sched.Start(ctx); err != nil {
			errCh <- err
		}
	}()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "collector"))
	}

	cancel()
	sched.Stop()

	logger.Info("Collector stopped")
}

// connectDB dials Postgres with exponential backoff so the daemon survives
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
