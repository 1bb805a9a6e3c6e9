package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollectorConfigDefaults(t *testing.T) {
	cfg, err := LoadCollectorConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 6*time.Hour, cfg.Jobs.PortfolioInterval)
	assert.Equal(t, 24*time.Hour, cfg.Jobs.MarketInterval)
	assert.Equal(t, 24*time.Hour, cfg.Jobs.GenreInterval)
	assert.Equal(t, 24*time.Hour, cfg.Jobs.CorrelationInterval)
	assert.Equal(t, 12*time.Hour, cfg.Jobs.UpcomingInterval)
	assert.Equal(t, 24*time.Hour, cfg.Jobs.RevenueInterval)
	assert.Equal(t, "https://steamspy.com/api.php", cfg.Steam.SteamSpyURL)
	assert.Equal(t, "https://partner.steam-api.com", cfg.Steam.PartnerURL)
	assert.Equal(t, 30*time.Second, cfg.Steam.HTTPTimeout)
	assert.Equal(t, 4, cfg.Worker.PoolSize)
	assert.False(t, cfg.Steam.PartnerEnabled())
}

func TestLoadAPIConfigEnvOverride(t *testing.T) {
	t.Setenv("STEAMINTEL_SERVER_PORT", "9999")
	t.Setenv("STEAMINTEL_DATABASE_HOST", "db.internal")
	t.Setenv("STEAMINTEL_STEAM_PARTNER_API_KEY", "secret")

	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Steam.PartnerEnabled())
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "steam",
		Password: "secret",
		DBName:   "steam_intel",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=steam password=secret dbname=steam_intel sslmode=disable",
		cfg.DSN())
}
