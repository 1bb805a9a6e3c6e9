package main

import (
	"flag"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/config"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	dir        = flag.String("dir", "db/migrations", "Path to migration files")
)

func main() {
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug: cfg.Debug,
		Tags: map[string]string{
			"service": "migrate",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	db, err := goose.OpenDBWithDriver("pgx", cfg.Database.DSN())
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Running migrations",
		zap.String("command", command),
		zap.String("dir", *dir),
	)

	switch command {
	case "up":
		err = goose.Up(db, *dir)
	case "down":
		err = goose.Down(db, *dir)
	case "status":
		err = goose.Status(db, *dir)
	default:
		logger.Fatal("Unknown migrate command", zap.String("command", command))
	}
	if err != nil {
		logger.Fatal("Migration failed", zap.Error(err), zap.String("command", command))
	}

	logger.Info("Migrations complete", zap.String("command", command))
}
