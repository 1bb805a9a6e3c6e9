package store

import (
	"context"
	"time"

	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

// RevenueFilter narrows revenue record queries
type RevenueFilter struct {
	// AppID limits results to one app when non-zero
	AppID int
	// From and To bound period_start (inclusive) when non-zero
	From time.Time
	To   time.Time
	// Source limits results to one ingestion source when non-empty
	Source schema.RevenueSource
}

// RevenueTotals is an aggregate of revenue records for one app
type RevenueTotals struct {
	AppID      int    `gorm:"column:app_id"`
	Name       string `gorm:"column:name"`
	GrossCents int64  `gorm:"column:gross_cents"`
	NetCents   int64  `gorm:"column:net_cents"`
	UnitsSold  int64  `gorm:"column:units_sold"`
	Refunds    int64  `gorm:"column:refunds"`
	Periods    int64  `gorm:"column:periods"`
}

// ComparableGame is a game whose tag list intersects a probe set, carrying
// its latest snapshot counters
type ComparableGame struct {
	AppID       int            `gorm:"column:app_id"`
	Name        string         `gorm:"column:name"`
	Tags        datatypes.JSON `gorm:"column:tags"`
	PriceCents  int            `gorm:"column:price_cents"`
	CCU         int            `gorm:"column:ccu"`
	OwnersMin   int64          `gorm:"column:owners_min"`
	OwnersMax   int64          `gorm:"column:owners_max"`
	ReviewScore int            `gorm:"column:review_score"`
}

// Store defines the interface for database operations
type Store interface {
	// UpsertGame creates or updates a game keyed by app_id
	UpsertGame(ctx context.Context, game *schema.Game) error
	// GetGameByAppID retrieves a game by its Steam app ID
	GetGameByAppID(ctx context.Context, appID int) (*schema.Game, error)
	// ListPortfolioGames retrieves all games flagged as portfolio members
	ListPortfolioGames(ctx context.Context) ([]schema.Game, error)
	// ListGameAppIDs retrieves the app IDs of every tracked game
	ListGameAppIDs(ctx context.Context) ([]int, error)

	// UpsertGameSnapshot creates or replaces the daily snapshot for an app
	UpsertGameSnapshot(ctx context.Context, snapshot *schema.GameSnapshot) error
	// GetLatestGameSnapshot retrieves the most recent snapshot for an app
	GetLatestGameSnapshot(ctx context.Context, appID int) (*schema.GameSnapshot, error)
	// GetGameSnapshotHistory retrieves snapshots for an app since a date, oldest first
	GetGameSnapshotHistory(ctx context.Context, appID int, since time.Time) ([]schema.GameSnapshot, error)
	// GetGameSnapshotBefore retrieves the newest snapshot for an app dated on
	// or before cutoff
	GetGameSnapshotBefore(ctx context.Context, appID int, cutoff time.Time) (*schema.GameSnapshot, error)
	// ListComparableGames retrieves games sharing at least one tag with the
	// probe set, each paired with its latest snapshot, highest CCU first
	ListComparableGames(ctx context.Context, tags []string, limit int) ([]ComparableGame, error)

	// ReplaceGenreSnapshot atomically replaces the aggregate and per-game rows
	// for one genre on one date
	ReplaceGenreSnapshot(ctx context.Context, snapshot *schema.GenreSnapshot, games []schema.GenreGame) error
	// GetGenreSnapshot retrieves one genre's aggregate for an exact date, with games
	GetGenreSnapshot(ctx context.Context, genre string, date time.Time) (*schema.GenreSnapshot, error)
	// GetLatestGenreSnapshot retrieves the most recent aggregate for a genre, with games
	GetLatestGenreSnapshot(ctx context.Context, genre string) (*schema.GenreSnapshot, error)
	// ListGenreSnapshotsOn retrieves every genre aggregate for one date
	ListGenreSnapshotsOn(ctx context.Context, date time.Time) ([]schema.GenreSnapshot, error)
	// ListLatestGenreSnapshots retrieves every genre's aggregate for the
	// newest snapshot date, highest total CCU first
	ListLatestGenreSnapshots(ctx context.Context) ([]schema.GenreSnapshot, error)
	// ListGenreSnapshotsSince retrieves every genre's aggregates since a date,
	// oldest first
	ListGenreSnapshotsSince(ctx context.Context, since time.Time) ([]schema.GenreSnapshot, error)
	// GetGenreSnapshotInWindow retrieves the newest aggregate for a genre whose
	// date falls in [from, to]
	GetGenreSnapshotInWindow(ctx context.Context, genre string, from, to time.Time) (*schema.GenreSnapshot, error)
	// GetGenreSnapshotHistory retrieves a genre's aggregates since a date,
	// oldest first, without per-game rows
	GetGenreSnapshotHistory(ctx context.Context, genre string, since time.Time) ([]schema.GenreSnapshot, error)
	// ListGenreGamesOn retrieves every per-game row across all genre snapshots
	// for one date
	ListGenreGamesOn(ctx context.Context, date time.Time) ([]schema.GenreGame, error)

	// UpsertGenreScore creates or replaces the daily score row for a genre
	UpsertGenreScore(ctx context.Context, score *schema.GenreScore) error
	// GetLatestGenreScores retrieves every genre's score for the newest scored date
	GetLatestGenreScores(ctx context.Context) ([]schema.GenreScore, error)
	// GetLatestGenreScore retrieves the most recent score row for one genre
	GetLatestGenreScore(ctx context.Context, genre string) (*schema.GenreScore, error)
	// GetGenreScoreHistory retrieves a genre's scores since a date, oldest first
	GetGenreScoreHistory(ctx context.Context, genre string, since time.Time) ([]schema.GenreScore, error)
	// ListGenreScoresSince retrieves every genre's scores since a date, oldest first
	ListGenreScoresSince(ctx context.Context, since time.Time) ([]schema.GenreScore, error)

	// UpsertTagCorrelation creates or replaces the daily row for a tag pair
	UpsertTagCorrelation(ctx context.Context, correlation *schema.TagCorrelation) error
	// GetLatestTagCorrelations retrieves every pair's row for the newest date
	GetLatestTagCorrelations(ctx context.Context) ([]schema.TagCorrelation, error)

	// ReplaceTopSellers atomically replaces one category's ranking for one date
	ReplaceTopSellers(ctx context.Context, category string, date time.Time, rows []schema.TopSellersSnapshot) error
	// GetLatestTopSellers retrieves the newest ranking for a category, rank order
	GetLatestTopSellers(ctx context.Context, category string) ([]schema.TopSellersSnapshot, error)

	// UpsertUpcomingRelease creates or updates an upcoming release keyed by app_id
	UpsertUpcomingRelease(ctx context.Context, release *schema.UpcomingRelease) error
	// ListUpcomingReleases retrieves upcoming releases ordered by hype score
	// descending; releases dated before cutoff are excluded unless cutoff is zero
	ListUpcomingReleases(ctx context.Context, cutoff time.Time, limit int) ([]schema.UpcomingRelease, error)

	// ReplaceRevenueRecords atomically replaces all records for one app, period
	// start, and source with the provided rows
	ReplaceRevenueRecords(ctx context.Context, appID int, periodStart time.Time, source schema.RevenueSource, records []schema.RevenueRecord) error
	// ListRevenueRecords retrieves revenue records matching the filter, newest period first
	ListRevenueRecords(ctx context.Context, filter RevenueFilter) ([]schema.RevenueRecord, error)
	// GetRevenueTotalsByGame aggregates revenue per app across all periods
	GetRevenueTotalsByGame(ctx context.Context, filter RevenueFilter) ([]RevenueTotals, error)

	// CreateCollectionRun records the start of a collector execution
	CreateCollectionRun(ctx context.Context, run *schema.CollectionRun) error
	// FinishCollectionRun marks a run completed or failed
	FinishCollectionRun(ctx context.Context, id string, status schema.RunStatus, itemsProcessed int, errMsg string) error
	// ListRecentCollectionRuns retrieves the newest runs, most recent first
	ListRecentCollectionRuns(ctx context.Context, limit int) ([]schema.CollectionRun, error)

	SyncCursorStore
}
