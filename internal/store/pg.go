package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// UpsertGame creates or updates a game keyed by app_id
func (s *pgStore) UpsertGame(ctx context.Context, game *schema.Game) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "app_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "developer", "publisher", "genre", "tags", "is_portfolio", "release_date", "updated_at",
		}),
	}).Create(game).Error
	if err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}
	return nil
}

// GetGameByAppID retrieves a game by its Steam app ID
func (s *pgStore) GetGameByAppID(ctx context.Context, appID int) (*schema.Game, error) {
	var game schema.Game
	err := s.db.WithContext(ctx).Where("app_id = ?", appID).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

// ListPortfolioGames retrieves all games flagged as portfolio members
func (s *pgStore) ListPortfolioGames(ctx context.Context) ([]schema.Game, error) {
	var games []schema.Game
	err := s.db.WithContext(ctx).
		Where("is_portfolio = ?", true).
		Order("app_id ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio games: %w", err)
	}
	return games, nil
}

// ListGameAppIDs retrieves the app IDs of every tracked game
func (s *pgStore) ListGameAppIDs(ctx context.Context) ([]int, error) {
	var appIDs []int
	err := s.db.WithContext(ctx).
		Model(&schema.Game{}).
		Order("app_id ASC").
		Pluck("app_id", &appIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list game app ids: %w", err)
	}
	return appIDs, nil
}

// UpsertGameSnapshot creates or replaces the daily snapshot for an app
func (s *pgStore) UpsertGameSnapshot(ctx context.Context, snapshot *schema.GameSnapshot) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "app_id"}, {Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"price_cents", "initial_price_cents", "discount_pct",
			"owners_min", "owners_max", "ccu",
			"positive_reviews", "negative_reviews", "review_score",
			"average_forever", "average_2weeks",
		}),
	}).Create(snapshot).Error
	if err != nil {
		return fmt.Errorf("failed to upsert game snapshot: %w", err)
	}
	return nil
}

// GetLatestGameSnapshot retrieves the most recent snapshot for an app
func (s *pgStore) GetLatestGameSnapshot(ctx context.Context, appID int) (*schema.GameSnapshot, error) {
	var snapshot schema.GameSnapshot
	err := s.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("snapshot_date DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest game snapshot: %w", err)
	}
	return &snapshot, nil
}

// GetGameSnapshotHistory retrieves snapshots for an app since a date, oldest first
func (s *pgStore) GetGameSnapshotHistory(ctx context.Context, appID int, since time.Time) ([]schema.GameSnapshot, error) {
	var snapshots []schema.GameSnapshot
	err := s.db.WithContext(ctx).
		Where("app_id = ? AND snapshot_date >= ?", appID, since).
		Order("snapshot_date ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get game snapshot history: %w", err)
	}
	return snapshots, nil
}

// GetGameSnapshotBefore retrieves the newest snapshot for an app dated on
// or before cutoff
func (s *pgStore) GetGameSnapshotBefore(ctx context.Context, appID int, cutoff time.Time) (*schema.GameSnapshot, error) {
	var snapshot schema.GameSnapshot
	err := s.db.WithContext(ctx).
		Where("app_id = ? AND snapshot_date <= ?", appID, cutoff).
		Order("snapshot_date DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game snapshot before cutoff: %w", err)
	}
	return &snapshot, nil
}

// ListComparableGames retrieves games sharing at least one tag with the
// probe set, each paired with its latest snapshot, highest CCU first
func (s *pgStore) ListComparableGames(ctx context.Context, tags []string, limit int) ([]ComparableGame, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}

	var rows []ComparableGame
	err := s.db.WithContext(ctx).Raw(`
		SELECT g.app_id, g.name, g.tags, s.price_cents, s.ccu,
		       s.owners_min, s.owners_max, s.review_score
		FROM games g
		JOIN LATERAL (
			SELECT price_cents, ccu, owners_min, owners_max, review_score
			FROM game_snapshots
			WHERE game_snapshots.app_id = g.app_id
			ORDER BY snapshot_date DESC
			LIMIT 1
		) s ON true
		WHERE jsonb_typeof(g.tags) = 'array' AND EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(g.tags) AS tag
			WHERE tag IN ?
		)
		ORDER BY s.ccu DESC
		LIMIT ?`, tags, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comparable games: %w", err)
	}
	return rows, nil
}

// ReplaceGenreSnapshot atomically replaces the aggregate and per-game rows
// for one genre on one date
func (s *pgStore) ReplaceGenreSnapshot(ctx context.Context, snapshot *schema.GenreSnapshot, games []schema.GenreGame) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Drop any existing aggregate for the (genre, date); genre_games rows
		// cascade with it
		err := tx.Where("genre = ? AND snapshot_date = ?", snapshot.Genre, snapshot.SnapshotDate).
			Delete(&schema.GenreSnapshot{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete existing genre snapshot: %w", err)
		}

		if err := tx.Create(snapshot).Error; err != nil {
			return fmt.Errorf("failed to create genre snapshot: %w", err)
		}

		if len(games) == 0 {
			return nil
		}

		for i := range games {
			games[i].GenreSnapshotID = snapshot.ID
		}
		if err := tx.CreateInBatches(games, 500).Error; err != nil {
			return fmt.Errorf("failed to create genre games: %w", err)
		}

		return nil
	})
}

// GetGenreSnapshot retrieves one genre's aggregate for an exact date, with games
func (s *pgStore) GetGenreSnapshot(ctx context.Context, genre string, date time.Time) (*schema.GenreSnapshot, error) {
	var snapshot schema.GenreSnapshot
	err := s.db.WithContext(ctx).
		Preload("Games", func(db *gorm.DB) *gorm.DB { return db.Order("rank ASC") }).
		Where("genre = ? AND snapshot_date = ?", genre, date).
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get genre snapshot: %w", err)
	}
	return &snapshot, nil
}

// GetLatestGenreSnapshot retrieves the most recent aggregate for a genre, with games
func (s *pgStore) GetLatestGenreSnapshot(ctx context.Context, genre string) (*schema.GenreSnapshot, error) {
	var snapshot schema.GenreSnapshot
	err := s.db.WithContext(ctx).
		Preload("Games", func(db *gorm.DB) *gorm.DB { return db.Order("rank ASC") }).
		Where("genre = ?", genre).
		Order("snapshot_date DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest genre snapshot: %w", err)
	}
	return &snapshot, nil
}

// ListGenreSnapshotsOn retrieves every genre aggregate for one date
func (s *pgStore) ListGenreSnapshotsOn(ctx context.Context, date time.Time) ([]schema.GenreSnapshot, error) {
	var snapshots []schema.GenreSnapshot
	err := s.db.WithContext(ctx).
		Where("snapshot_date = ?", date).
		Order("genre ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list genre snapshots: %w", err)
	}
	return snapshots, nil
}

// ListLatestGenreSnapshots retrieves every genre's aggregate for the newest
// snapshot date, highest total CCU first
func (s *pgStore) ListLatestGenreSnapshots(ctx context.Context) ([]schema.GenreSnapshot, error) {
	var snapshots []schema.GenreSnapshot
	err := s.db.WithContext(ctx).
		Where("snapshot_date = (?)", s.db.Model(&schema.GenreSnapshot{}).Select("MAX(snapshot_date)")).
		Order("total_ccu DESC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list latest genre snapshots: %w", err)
	}
	return snapshots, nil
}

// ListGenreSnapshotsSince retrieves every genre's aggregates since a date,
// oldest first
func (s *pgStore) ListGenreSnapshotsSince(ctx context.Context, since time.Time) ([]schema.GenreSnapshot, error) {
	var snapshots []schema.GenreSnapshot
	err := s.db.WithContext(ctx).
		Where("snapshot_date >= ?", since).
		Order("snapshot_date ASC, genre ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list genre snapshots since date: %w", err)
	}
	return snapshots, nil
}

// GetGenreSnapshotInWindow retrieves the newest aggregate for a genre whose
// date falls in [from, to]
func (s *pgStore) GetGenreSnapshotInWindow(ctx context.Context, genre string, from, to time.Time) (*schema.GenreSnapshot, error) {
	var snapshot schema.GenreSnapshot
	err := s.db.WithContext(ctx).
		Where("genre = ? AND snapshot_date >= ? AND snapshot_date <= ?", genre, from, to).
		Order("snapshot_date DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get genre snapshot in window: %w", err)
	}
	return &snapshot, nil
}

// GetGenreSnapshotHistory retrieves a genre's aggregates since a date,
// oldest first, without per-game rows
func (s *pgStore) GetGenreSnapshotHistory(ctx context.Context, genre string, since time.Time) ([]schema.GenreSnapshot, error) {
	var snapshots []schema.GenreSnapshot
	err := s.db.WithContext(ctx).
		Where("genre = ? AND snapshot_date >= ?", genre, since).
		Order("snapshot_date ASC").
		Find(&snapshots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get genre snapshot history: %w", err)
	}
	return snapshots, nil
}

// ListGenreGamesOn retrieves every per-game row across all genre snapshots
// for one date
func (s *pgStore) ListGenreGamesOn(ctx context.Context, date time.Time) ([]schema.GenreGame, error) {
	var games []schema.GenreGame
	err := s.db.WithContext(ctx).
		Joins("JOIN genre_snapshots ON genre_snapshots.id = genre_games.genre_snapshot_id").
		Where("genre_snapshots.snapshot_date = ?", date).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list genre games: %w", err)
	}
	return games, nil
}

// UpsertGenreScore creates or replaces the daily score row for a genre
func (s *pgStore) UpsertGenreScore(ctx context.Context, score *schema.GenreScore) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "genre"}, {Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"hotness", "saturation", "success", "timing", "velocity",
			"competition", "revenue_potential", "discoverability",
			"overall", "trend", "recommendation",
		}),
	}).Create(score).Error
	if err != nil {
		return fmt.Errorf("failed to upsert genre score: %w", err)
	}
	return nil
}

// GetLatestGenreScores retrieves every genre's score for the newest scored date
func (s *pgStore) GetLatestGenreScores(ctx context.Context) ([]schema.GenreScore, error) {
	var scores []schema.GenreScore
	err := s.db.WithContext(ctx).
		Where("snapshot_date = (?)", s.db.Model(&schema.GenreScore{}).Select("MAX(snapshot_date)")).
		Order("overall DESC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest genre scores: %w", err)
	}
	return scores, nil
}

// GetLatestGenreScore retrieves the most recent score row for one genre
func (s *pgStore) GetLatestGenreScore(ctx context.Context, genre string) (*schema.GenreScore, error) {
	var score schema.GenreScore
	err := s.db.WithContext(ctx).
		Where("genre = ?", genre).
		Order("snapshot_date DESC").
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest genre score: %w", err)
	}
	return &score, nil
}

// GetGenreScoreHistory retrieves a genre's scores since a date, oldest first
func (s *pgStore) GetGenreScoreHistory(ctx context.Context, genre string, since time.Time) ([]schema.GenreScore, error) {
	var scores []schema.GenreScore
	err := s.db.WithContext(ctx).
		Where("genre = ? AND snapshot_date >= ?", genre, since).
		Order("snapshot_date ASC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get genre score history: %w", err)
	}
	return scores, nil
}

// ListGenreScoresSince retrieves every genre's scores since a date, oldest first
func (s *pgStore) ListGenreScoresSince(ctx context.Context, since time.Time) ([]schema.GenreScore, error) {
	var scores []schema.GenreScore
	err := s.db.WithContext(ctx).
		Where("snapshot_date >= ?", since).
		Order("snapshot_date ASC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list genre scores: %w", err)
	}
	return scores, nil
}

// UpsertTagCorrelation creates or replaces the daily row for a tag pair
func (s *pgStore) UpsertTagCorrelation(ctx context.Context, correlation *schema.TagCorrelation) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tag_a"}, {Name: "tag_b"}, {Name: "snapshot_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"count_a", "count_b", "co_occurrence", "strength", "combined_ccu",
			"avg_review_score", "avg_price_cents", "top_games",
		}),
	}).Create(correlation).Error
	if err != nil {
		return fmt.Errorf("failed to upsert tag correlation: %w", err)
	}
	return nil
}

// GetLatestTagCorrelations retrieves every pair's row for the newest date
func (s *pgStore) GetLatestTagCorrelations(ctx context.Context) ([]schema.TagCorrelation, error) {
	var correlations []schema.TagCorrelation
	err := s.db.WithContext(ctx).
		Where("snapshot_date = (?)", s.db.Model(&schema.TagCorrelation{}).Select("MAX(snapshot_date)")).
		Order("combined_ccu DESC").
		Find(&correlations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest tag correlations: %w", err)
	}
	return correlations, nil
}

// ReplaceTopSellers atomically replaces one category's ranking for one date
func (s *pgStore) ReplaceTopSellers(ctx context.Context, category string, date time.Time, rows []schema.TopSellersSnapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("category = ? AND snapshot_date = ?", category, date).
			Delete(&schema.TopSellersSnapshot{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete existing top sellers: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("failed to create top sellers: %w", err)
		}

		return nil
	})
}

// GetLatestTopSellers retrieves the newest ranking for a category, rank order
func (s *pgStore) GetLatestTopSellers(ctx context.Context, category string) ([]schema.TopSellersSnapshot, error) {
	var rows []schema.TopSellersSnapshot
	err := s.db.WithContext(ctx).
		Where("category = ? AND snapshot_date = (?)", category,
			s.db.Model(&schema.TopSellersSnapshot{}).Select("MAX(snapshot_date)").Where("category = ?", category)).
		Order("rank ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest top sellers: %w", err)
	}
	return rows, nil
}

// UpsertUpcomingRelease creates or updates an upcoming release keyed by app_id
func (s *pgStore) UpsertUpcomingRelease(ctx context.Context, release *schema.UpcomingRelease) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "app_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "release_date", "release_date_raw", "genres", "tags",
			"developers", "publishers", "price_cents", "has_demo",
			"hype_score", "source", "updated_at",
		}),
	}).Create(release).Error
	if err != nil {
		return fmt.Errorf("failed to upsert upcoming release: %w", err)
	}
	return nil
}

// ListUpcomingReleases retrieves upcoming releases ordered by hype score
// descending; releases dated before cutoff are excluded unless cutoff is zero
func (s *pgStore) ListUpcomingReleases(ctx context.Context, cutoff time.Time, limit int) ([]schema.UpcomingRelease, error) {
	query := s.db.WithContext(ctx).Model(&schema.UpcomingRelease{})
	if !cutoff.IsZero() {
		// Keep undated releases; "Coming soon" entries are still upcoming
		query = query.Where("release_date IS NULL OR release_date >= ?", cutoff)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var releases []schema.UpcomingRelease
	err := query.Order("hype_score DESC, app_id ASC").Find(&releases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming releases: %w", err)
	}
	return releases, nil
}

// ReplaceRevenueRecords atomically replaces all records for one app, period
// start, and source with the provided rows
func (s *pgStore) ReplaceRevenueRecords(ctx context.Context, appID int, periodStart time.Time, source schema.RevenueSource, records []schema.RevenueRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("app_id = ? AND period_start = ? AND source = ?", appID, periodStart, source).
			Delete(&schema.RevenueRecord{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete existing revenue records: %w", err)
		}

		if len(records) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(records, 500).Error; err != nil {
			return fmt.Errorf("failed to create revenue records: %w", err)
		}

		return nil
	})
}

// ListRevenueRecords retrieves revenue records matching the filter, newest period first
func (s *pgStore) ListRevenueRecords(ctx context.Context, filter RevenueFilter) ([]schema.RevenueRecord, error) {
	query := s.db.WithContext(ctx).Model(&schema.RevenueRecord{})
	query = applyRevenueFilter(query, filter)

	var records []schema.RevenueRecord
	err := query.Order("period_start DESC, app_id ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue records: %w", err)
	}
	return records, nil
}

// GetRevenueTotalsByGame aggregates revenue per app across all periods
func (s *pgStore) GetRevenueTotalsByGame(ctx context.Context, filter RevenueFilter) ([]RevenueTotals, error) {
	query := s.db.WithContext(ctx).Model(&schema.RevenueRecord{}).
		Select(`revenue_records.app_id,
			COALESCE(MAX(games.name), '') AS name,
			SUM(revenue_records.gross_cents) AS gross_cents,
			SUM(revenue_records.net_cents) AS net_cents,
			SUM(revenue_records.units_sold) AS units_sold,
			SUM(revenue_records.refunds) AS refunds,
			COUNT(*) AS periods`).
		Joins("LEFT JOIN games ON games.app_id = revenue_records.app_id").
		Group("revenue_records.app_id")
	query = applyRevenueFilter(query, filter)

	var totals []RevenueTotals
	err := query.Order("gross_cents DESC").Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue totals: %w", err)
	}
	return totals, nil
}

func applyRevenueFilter(query *gorm.DB, filter RevenueFilter) *gorm.DB {
	if filter.AppID != 0 {
		query = query.Where("revenue_records.app_id = ?", filter.AppID)
	}
	if !filter.From.IsZero() {
		query = query.Where("revenue_records.period_start >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("revenue_records.period_start <= ?", filter.To)
	}
	if filter.Source != "" {
		query = query.Where("revenue_records.source = ?", filter.Source)
	}
	return query
}

// CreateCollectionRun records the start of a collector execution
func (s *pgStore) CreateCollectionRun(ctx context.Context, run *schema.CollectionRun) error {
	err := s.db.WithContext(ctx).Create(run).Error
	if err != nil {
		return fmt.Errorf("failed to create collection run: %w", err)
	}
	return nil
}

// FinishCollectionRun marks a run completed or failed
func (s *pgStore) FinishCollectionRun(ctx context.Context, id string, status schema.RunStatus, itemsProcessed int, errMsg string) error {
	now := time.Now().UTC()
	err := s.db.WithContext(ctx).Model(&schema.CollectionRun{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          status,
			"items_processed": itemsProcessed,
			"error":           errMsg,
			"finished_at":     &now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to finish collection run: %w", err)
	}
	return nil
}

// ListRecentCollectionRuns retrieves the newest runs, most recent first
func (s *pgStore) ListRecentCollectionRuns(ctx context.Context, limit int) ([]schema.CollectionRun, error) {
	if limit <= 0 {
		limit = 50
	}

	var runs []schema.CollectionRun
	err := s.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collection runs: %w", err)
	}
	return runs, nil
}

// GetSyncHighwatermark retrieves the partner sync highwatermark for a publisher
func (s *pgStore) GetSyncHighwatermark(ctx context.Context, publisher string) (string, error) {
	return NewSyncCursorStore(s.db).GetSyncHighwatermark(ctx, publisher)
}

// SetSyncHighwatermark stores the partner sync highwatermark for a publisher
func (s *pgStore) SetSyncHighwatermark(ctx context.Context, publisher string, highwatermark string) error {
	return NewSyncCursorStore(s.db).SetSyncHighwatermark(ctx, publisher, highwatermark)
}
