package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// SteamConfig holds Steam-side API endpoints and credentials
type SteamConfig struct {
	SteamSpyURL   string        `mapstructure:"steamspy_url"`
	StoreURL      string        `mapstructure:"store_url"`
	WebAPIURL     string        `mapstructure:"webapi_url"`
	PartnerURL    string        `mapstructure:"partner_url"`
	APIKey        string        `mapstructure:"api_key"`
	PartnerAPIKey string        `mapstructure:"partner_api_key"` // empty disables the partner financials sync
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
}

// PartnerEnabled reports whether partner financial syncing is configured
func (c *SteamConfig) PartnerEnabled() bool {
	return c.PartnerAPIKey != ""
}

// PublisherConfig identifies the portfolio being tracked
type PublisherConfig struct {
	Name       string `mapstructure:"name"`
	GameAppIDs []int  `mapstructure:"game_app_ids"`
}

// JobsConfig holds per-collector scheduling intervals
type JobsConfig struct {
	PortfolioInterval    time.Duration `mapstructure:"portfolio_interval"`
	MarketInterval       time.Duration `mapstructure:"market_interval"`
	GenreInterval        time.Duration `mapstructure:"genre_interval"`
	CorrelationInterval  time.Duration `mapstructure:"correlation_interval"`
	UpcomingInterval     time.Duration `mapstructure:"upcoming_interval"`
	RevenueInterval      time.Duration `mapstructure:"revenue_interval"`
	RevenueBackfillDays  int           `mapstructure:"revenue_backfill_days"` // 0 syncs every changed date
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	PoolSize  int `mapstructure:"pool_size"`
	QueueSize int `mapstructure:"queue_size"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig    `mapstructure:"server"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Auth       AuthConfig      `mapstructure:"auth"`
	Steam      SteamConfig     `mapstructure:"steam"`
	Publisher  PublisherConfig `mapstructure:"publisher"`
}

// CollectorConfig holds configuration for the collector daemon
type CollectorConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	NATS       NATSConfig      `mapstructure:"nats"`
	Steam      SteamConfig     `mapstructure:"steam"`
	Publisher  PublisherConfig `mapstructure:"publisher"`
	Jobs       JobsConfig      `mapstructure:"jobs"`
	Worker     WorkerConfig    `mapstructure:"worker"`
}

// MigrateConfig holds configuration for the migrate binary
type MigrateConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setSteamDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 60)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadCollectorConfig loads configuration for the collector daemon
func LoadCollectorConfig(configFile string, envPath string) (*CollectorConfig, error) {
	v := configureViper("collector", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setNATSDefaults(v)
	setSteamDefaults(v)
	v.SetDefault("nats.consumer_name", "collector")
	v.SetDefault("jobs.portfolio_interval", "6h")
	v.SetDefault("jobs.market_interval", "24h")
	v.SetDefault("jobs.genre_interval", "24h")
	v.SetDefault("jobs.correlation_interval", "24h")
	v.SetDefault("jobs.upcoming_interval", "12h")
	v.SetDefault("jobs.revenue_interval", "24h")
	v.SetDefault("worker.pool_size", 4)
	v.SetDefault("worker.queue_size", 16)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config CollectorConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadMigrateConfig loads configuration for the migrate binary
func LoadMigrateConfig(configFile string, envPath string) (*MigrateConfig, error) {
	v := configureViper("migrate", configFile, envPath)

	setDatabaseDefaults(v)

	if err := readInConfig(v); err != nil {
		return nil, err
	}

	var config MigrateConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
}

func setNATSDefaults(v *viper.Viper) {
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "COLLECT_TRIGGERS")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 1)
}

func setSteamDefaults(v *viper.Viper) {
	v.SetDefault("steam.steamspy_url", "https://steamspy.com/api.php")
	v.SetDefault("steam.store_url", "https://store.steampowered.com/api")
	v.SetDefault("steam.webapi_url", "https://api.steampowered.com")
	v.SetDefault("steam.partner_url", "https://partner.steam-api.com")
	v.SetDefault("steam.http_timeout", "30s")
}

func readInConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper sets up a viper instance for a given service
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load .env files first so explicit env always wins over files
	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("config/")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("STEAMINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)

	return v
}

// bindAllEnvVars explicitly binds all known configuration keys so that
// AutomaticEnv works for nested keys that never appear in a config file
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		// Base
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Steam
		"steam.steamspy_url",
		"steam.store_url",
		"steam.webapi_url",
		"steam.partner_url",
		"steam.api_key",
		"steam.partner_api_key",
		"steam.http_timeout",
		// Publisher
		"publisher.name",
		"publisher.game_app_ids",
		// Jobs
		"jobs.portfolio_interval",
		"jobs.market_interval",
		"jobs.genre_interval",
		"jobs.correlation_interval",
		"jobs.upcoming_interval",
		"jobs.revenue_interval",
		"jobs.revenue_backfill_days",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.api_keys",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
