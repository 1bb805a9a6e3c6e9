package rest

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/collector"
	"github.com/firstbreaklabs/steam-intel/internal/messaging"
	"github.com/firstbreaklabs/steam-intel/internal/providers/storefront"
	"github.com/firstbreaklabs/steam-intel/internal/store"
)

// newsCacheTTL bounds how long a proxied news payload is served before the
// Steam Web API is asked again
const newsCacheTTL = 5 * time.Minute

// newsCacheSize caps the number of distinct (app, count) news payloads kept
const newsCacheSize = 256

// GameFetcher pulls fresh SteamSpy stats for one app on demand, used when an
// analysis request names a game we have never snapshotted
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler,GameFetcher=MockGameFetcher
type GameFetcher interface {
	CollectGame(ctx context.Context, appID int) error
}

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// GetPortfolioSummary retrieves tracked portfolio games with their latest
	// snapshots and portfolio-wide totals
	// GET /api/v1/portfolio
	GetPortfolioSummary(c *gin.Context)

	// GetGameStats retrieves one game's latest snapshot
	// GET /api/v1/portfolio/:app_id
	GetGameStats(c *gin.Context)

	// GetGameHistory retrieves one game's daily snapshot history
	// GET /api/v1/portfolio/:app_id/history?period=<n>d
	GetGameHistory(c *gin.Context)

	// GetGameWow compares one game's latest snapshot against roughly a week ago
	// GET /api/v1/portfolio/:app_id/wow
	GetGameWow(c *gin.Context)

	// ListGenreStats retrieves every genre's latest market aggregate
	// GET /api/v1/market/genres
	ListGenreStats(c *gin.Context)

	// GetGenreStats retrieves one genre's latest market aggregate
	// GET /api/v1/market/genres/:genre
	GetGenreStats(c *gin.Context)

	// GetGenreScore retrieves one genre's latest opportunity score
	// GET /api/v1/market/genres/:genre/score
	GetGenreScore(c *gin.Context)

	// GetTrendingGenres ranks genres by week-over-week CCU change
	// GET /api/v1/market/trending
	GetTrendingGenres(c *gin.Context)

	// GetTopSellers retrieves the latest storefront ranking for a category
	// GET /api/v1/market/top-sellers?category=<category>
	GetTopSellers(c *gin.Context)

	// GetHeatmap retrieves the genre opportunity heat map
	// GET /api/v1/market/heatmap
	GetHeatmap(c *gin.Context)

	// GetEnhancedHeatmap retrieves the heat map with velocity, pricing,
	// release pressure, and upcoming release context per genre
	// GET /api/v1/market/heatmap/enhanced
	GetEnhancedHeatmap(c *gin.Context)

	// GetHeatmapHistory retrieves monthly score averages per genre
	// GET /api/v1/market/heatmap/history?months=<n>
	GetHeatmapHistory(c *gin.Context)

	// GetGenreTrends retrieves weekly CCU movement for one or all genres
	// GET /api/v1/market/trends?genre=<genre>&weeks=<n>
	GetGenreTrends(c *gin.Context)

	// GetTagCombos retrieves the latest tag pair correlation snapshot
	// GET /api/v1/market/tag-combos?limit=<n>
	GetTagCombos(c *gin.Context)

	// GetUpcomingReleases retrieves tracked unreleased apps by hype score
	// GET /api/v1/market/upcoming?genre=<genre>&limit=<n>
	GetUpcomingReleases(c *gin.Context)

	// ListGenreScores retrieves every genre's full score row for the latest date
	// GET /api/v1/market/scores/all
	ListGenreScores(c *gin.Context)

	// AnalyzeGame scores an arbitrary Steam app against current market data,
	// fetching it on demand when it has never been snapshotted
	// POST /api/v1/analyze/game
	AnalyzeGame(c *gin.Context)

	// FindComparableGames retrieves games sharing tags with a probe set
	// POST /api/v1/analyze/comparable
	FindComparableGames(c *gin.Context)

	// GetRevenueSummary aggregates actual revenue per game over a period
	// GET /api/v1/revenue/summary?period=<n>d
	GetRevenueSummary(c *gin.Context)

	// GetGameRevenue retrieves one game's revenue periods
	// GET /api/v1/revenue/:app_id?period=<n>d
	GetGameRevenue(c *gin.Context)

	// UploadRevenueCSV imports a Steamworks financial report CSV
	// POST /api/v1/revenue/upload
	UploadRevenueCSV(c *gin.Context)

	// GetGameNews proxies recent Steam news for an app, with caching
	// GET /api/v1/steam/news/:app_id?count=<n>
	GetGameNews(c *gin.Context)

	// TriggerCollection publishes an out-of-schedule collect trigger
	// POST /api/v1/admin/collect/:job
	TriggerCollection(c *gin.Context)

	// ListCollectionRuns retrieves recent collector run audit rows
	// GET /api/v1/admin/runs?limit=<n>
	ListCollectionRuns(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store     store.Store
	fetcher   GameFetcher
	importer  *collector.RevenueImporter
	steam     storefront.Client
	publisher messaging.Publisher
	clock     adapter.Clock
	newsCache *expirable.LRU[string, json.RawMessage]
}

// NewHandler creates a new REST API handler
func NewHandler(
	s store.Store,
	fetcher GameFetcher,
	importer *collector.RevenueImporter,
	steam storefront.Client,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Handler {
	return &handler{
		store:     s,
		fetcher:   fetcher,
		importer:  importer,
		steam:     steam,
		publisher: publisher,
		clock:     clock,
		newsCache: expirable.NewLRU[string, json.RawMessage](newsCacheSize, nil, newsCacheTTL),
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "steam-intel-api",
	})
}

// dateString formats a snapshot date for responses
func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// dateStringPtr formats an optional date for responses
func dateStringPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := dateString(*t)
	return &s
}

// timestampPtr formats an optional instant as RFC 3339
func timestampPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// round1 rounds to one decimal place for percentage-style fields
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places for correlation strengths
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
