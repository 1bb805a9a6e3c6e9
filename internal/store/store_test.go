package store

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestGame(appID int, name string, portfolio bool) *schema.Game {
	return &schema.Game{
		AppID:       appID,
		Name:        name,
		Developer:   "Test Studio",
		Publisher:   "Test Publisher",
		Genre:       "Action, Indie",
		Tags:        datatypes.JSON([]byte(`{"Roguelike": 120, "Action": 80}`)),
		IsPortfolio: portfolio,
	}
}

func buildTestGameSnapshot(appID int, date time.Time, ccu int) *schema.GameSnapshot {
	return &schema.GameSnapshot{
		AppID:           appID,
		SnapshotDate:    date,
		PriceCents:      1999,
		OwnersMin:       100000,
		OwnersMax:       200000,
		CCU:             ccu,
		PositiveReviews: 900,
		NegativeReviews: 100,
		ReviewScore:     90,
	}
}

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// Tests
// =============================================================================

func testGames(t *testing.T, s Store) {
	ctx := context.Background()

	game := buildTestGame(440, "Team Fortress 2", false)
	require.NoError(t, s.UpsertGame(ctx, game))

	got, err := s.GetGameByAppID(ctx, 440)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Team Fortress 2", got.Name)
	assert.False(t, got.IsPortfolio)

	// Upserting the same app_id updates in place
	game2 := buildTestGame(440, "Team Fortress 2 Classic", true)
	require.NoError(t, s.UpsertGame(ctx, game2))

	got, err = s.GetGameByAppID(ctx, 440)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Team Fortress 2 Classic", got.Name)
	assert.True(t, got.IsPortfolio)

	// Missing apps return nil without error
	missing, err := s.GetGameByAppID(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testListPortfolioGames(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.UpsertGame(ctx, buildTestGame(100, "Portfolio A", true)))
	require.NoError(t, s.UpsertGame(ctx, buildTestGame(200, "Market Game", false)))
	require.NoError(t, s.UpsertGame(ctx, buildTestGame(300, "Portfolio B", true)))

	games, err := s.ListPortfolioGames(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, 100, games[0].AppID)
	assert.Equal(t, 300, games[1].AppID)

	appIDs, err := s.ListGameAppIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{100, 200, 300}, appIDs)
}

func testGameSnapshots(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.UpsertGame(ctx, buildTestGame(440, "TF2", true)))

	day1 := testDate(2026, 8, 1)
	day2 := testDate(2026, 8, 2)

	require.NoError(t, s.UpsertGameSnapshot(ctx, buildTestGameSnapshot(440, day1, 50000)))
	require.NoError(t, s.UpsertGameSnapshot(ctx, buildTestGameSnapshot(440, day2, 60000)))

	// Same day collection replaces the earlier counters
	replaced := buildTestGameSnapshot(440, day2, 65000)
	require.NoError(t, s.UpsertGameSnapshot(ctx, replaced))

	latest, err := s.GetLatestGameSnapshot(ctx, 440)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 65000, latest.CCU)
	assert.Equal(t, day2, latest.SnapshotDate.UTC())

	history, err := s.GetGameSnapshotHistory(ctx, 440, day1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 50000, history[0].CCU)
	assert.Equal(t, 65000, history[1].CCU)

	// No snapshots yet for an unknown app
	none, err := s.GetLatestGameSnapshot(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func testGenreSnapshots(t *testing.T, s Store) {
	ctx := context.Background()
	day := testDate(2026, 8, 10)

	snapshot := &schema.GenreSnapshot{
		Genre:            "Roguelike",
		SnapshotDate:     day,
		GameCount:        150,
		TotalCCU:         250000,
		MedianPriceCents: 1499,
		AvgReviewScore:   84.2,
	}
	games := []schema.GenreGame{
		{AppID: 1001, Name: "Top Rogue", Rank: 1, CCU: 90000, EstRevenueCents: 500000000},
		{AppID: 1002, Name: "Second Rogue", Rank: 2, CCU: 40000, EstRevenueCents: 100000000},
	}
	require.NoError(t, s.ReplaceGenreSnapshot(ctx, snapshot, games))

	got, err := s.GetGenreSnapshot(ctx, "Roguelike", day)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 150, got.GameCount)
	require.Len(t, got.Games, 2)
	assert.Equal(t, "Top Rogue", got.Games[0].Name)

	// Replacing the same (genre, date) drops the old per-game rows
	snapshot2 := &schema.GenreSnapshot{
		Genre:        "Roguelike",
		SnapshotDate: day,
		GameCount:    151,
		TotalCCU:     260000,
	}
	require.NoError(t, s.ReplaceGenreSnapshot(ctx, snapshot2, []schema.GenreGame{
		{AppID: 1003, Name: "New Rogue", Rank: 1, CCU: 95000},
	}))

	got, err = s.GetLatestGenreSnapshot(ctx, "Roguelike")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 151, got.GameCount)
	require.Len(t, got.Games, 1)
	assert.Equal(t, "New Rogue", got.Games[0].Name)

	// Per-game rows for a date span every genre collected that day
	require.NoError(t, s.ReplaceGenreSnapshot(ctx, &schema.GenreSnapshot{
		Genre:        "Horror",
		SnapshotDate: day,
		GameCount:    1,
	}, []schema.GenreGame{
		{AppID: 2001, Name: "Scary Game", Rank: 1, CCU: 7000},
	}))
	dayGames, err := s.ListGenreGamesOn(ctx, day)
	require.NoError(t, err)
	assert.Len(t, dayGames, 2)
}

func testGenreSnapshotWindow(t *testing.T, s Store) {
	ctx := context.Background()

	for _, day := range []time.Time{testDate(2026, 8, 1), testDate(2026, 8, 3), testDate(2026, 8, 9)} {
		require.NoError(t, s.ReplaceGenreSnapshot(ctx, &schema.GenreSnapshot{
			Genre:        "Horror",
			SnapshotDate: day,
			TotalCCU:     int64(day.Day()) * 1000,
		}, nil))
	}

	// Window [Aug 1, Aug 5] picks the newest match, Aug 3
	got, err := s.GetGenreSnapshotInWindow(ctx, "Horror", testDate(2026, 8, 1), testDate(2026, 8, 5))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3000), got.TotalCCU)

	// Empty window returns nil without error
	none, err := s.GetGenreSnapshotInWindow(ctx, "Horror", testDate(2026, 8, 4), testDate(2026, 8, 8))
	require.NoError(t, err)
	assert.Nil(t, none)

	all, err := s.ListGenreSnapshotsOn(ctx, testDate(2026, 8, 9))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Horror", all[0].Genre)

	history, err := s.GetGenreSnapshotHistory(ctx, "Horror", testDate(2026, 8, 2))
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(3000), history[0].TotalCCU)
}

func testGenreScores(t *testing.T, s Store) {
	ctx := context.Background()
	day1 := testDate(2026, 8, 1)
	day2 := testDate(2026, 8, 2)

	require.NoError(t, s.UpsertGenreScore(ctx, &schema.GenreScore{
		Genre: "Roguelike", SnapshotDate: day1, Overall: 70,
		Trend: schema.TrendStable, Recommendation: schema.RecommendationNiche,
	}))
	require.NoError(t, s.UpsertGenreScore(ctx, &schema.GenreScore{
		Genre: "Roguelike", SnapshotDate: day2, Overall: 75,
		Trend: schema.TrendRising, Recommendation: schema.RecommendationGrowing,
	}))
	require.NoError(t, s.UpsertGenreScore(ctx, &schema.GenreScore{
		Genre: "Horror", SnapshotDate: day2, Overall: 82,
		Trend: schema.TrendSurging, Recommendation: schema.RecommendationHot,
	}))

	// Latest returns only day2 rows, highest overall first
	latest, err := s.GetLatestGenreScores(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "Horror", latest[0].Genre)
	assert.Equal(t, "Roguelike", latest[1].Genre)

	// Re-scoring the same day overwrites
	require.NoError(t, s.UpsertGenreScore(ctx, &schema.GenreScore{
		Genre: "Horror", SnapshotDate: day2, Overall: 85,
		Trend: schema.TrendSurging, Recommendation: schema.RecommendationHot,
	}))
	latest, err = s.GetLatestGenreScores(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.InDelta(t, 85, latest[0].Overall, 0.001)

	history, err := s.GetGenreScoreHistory(ctx, "Roguelike", day1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.InDelta(t, 70, history[0].Overall, 0.001)

	everyGenre, err := s.ListGenreScoresSince(ctx, day1)
	require.NoError(t, err)
	assert.Len(t, everyGenre, 3)
}

func testTagCorrelations(t *testing.T, s Store) {
	ctx := context.Background()
	day := testDate(2026, 8, 15)

	require.NoError(t, s.UpsertTagCorrelation(ctx, &schema.TagCorrelation{
		TagA: "Roguelike", TagB: "Deckbuilder", SnapshotDate: day,
		CountA: 100, CountB: 40, CoOccurrence: 30, Strength: 0.75, CombinedCCU: 120000,
	}))
	require.NoError(t, s.UpsertTagCorrelation(ctx, &schema.TagCorrelation{
		TagA: "Horror", TagB: "Co-op", SnapshotDate: day,
		CountA: 200, CountB: 150, CoOccurrence: 60, Strength: 0.4, CombinedCCU: 80000,
	}))

	latest, err := s.GetLatestTagCorrelations(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "Roguelike", latest[0].TagA)

	// Same pair, same day overwrites
	require.NoError(t, s.UpsertTagCorrelation(ctx, &schema.TagCorrelation{
		TagA: "Roguelike", TagB: "Deckbuilder", SnapshotDate: day,
		CountA: 101, CountB: 41, CoOccurrence: 31, Strength: 0.756, CombinedCCU: 125000,
	}))
	latest, err = s.GetLatestTagCorrelations(ctx)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, 31, latest[0].CoOccurrence)
}

func testTopSellers(t *testing.T, s Store) {
	ctx := context.Background()
	day := testDate(2026, 8, 20)

	rows := []schema.TopSellersSnapshot{
		{Category: "top_sellers", SnapshotDate: day, Rank: 1, AppID: 1001, Name: "Hit Game", FinalPriceCents: 5999},
		{Category: "top_sellers", SnapshotDate: day, Rank: 2, AppID: 1002, Name: "Runner Up", FinalPriceCents: 2999, DiscountPct: 25},
	}
	require.NoError(t, s.ReplaceTopSellers(ctx, "top_sellers", day, rows))

	got, err := s.GetLatestTopSellers(ctx, "top_sellers")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Rank)
	assert.Equal(t, "Hit Game", got[0].Name)

	// Re-collection replaces the whole ranking
	require.NoError(t, s.ReplaceTopSellers(ctx, "top_sellers", day, []schema.TopSellersSnapshot{
		{Category: "top_sellers", SnapshotDate: day, Rank: 1, AppID: 1003, Name: "New Leader"},
	}))
	got, err = s.GetLatestTopSellers(ctx, "top_sellers")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New Leader", got[0].Name)

	// Other categories are untouched
	other, err := s.GetLatestTopSellers(ctx, "new_releases")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func testUpcomingReleases(t *testing.T, s Store) {
	ctx := context.Background()

	oct := testDate(2026, 10, 15)
	require.NoError(t, s.UpsertUpcomingRelease(ctx, &schema.UpcomingRelease{
		AppID: 2001, Name: "Dated Release", ReleaseDate: &oct, ReleaseDateRaw: "15 Oct, 2026", HypeScore: 80,
	}))
	require.NoError(t, s.UpsertUpcomingRelease(ctx, &schema.UpcomingRelease{
		AppID: 2002, Name: "Coming Soon", ReleaseDateRaw: "Coming soon", HypeScore: 55,
	}))
	past := testDate(2026, 1, 1)
	require.NoError(t, s.UpsertUpcomingRelease(ctx, &schema.UpcomingRelease{
		AppID: 2003, Name: "Already Out", ReleaseDate: &past, ReleaseDateRaw: "1 Jan, 2026", HypeScore: 90,
	}))

	// Cutoff drops the dated past release but keeps undated entries
	releases, err := s.ListUpcomingReleases(ctx, testDate(2026, 8, 1), 0)
	require.NoError(t, err)
	require.Len(t, releases, 2)
	assert.Equal(t, "Dated Release", releases[0].Name)
	assert.Equal(t, "Coming Soon", releases[1].Name)

	// Re-discovery updates in place
	require.NoError(t, s.UpsertUpcomingRelease(ctx, &schema.UpcomingRelease{
		AppID: 2002, Name: "Coming Soon", ReleaseDateRaw: "Q4 2026", HypeScore: 65,
	}))
	releases, err = s.ListUpcomingReleases(ctx, time.Time{}, 1)
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, "Already Out", releases[0].Name)
}

func testRevenueRecords(t *testing.T, s Store) {
	ctx := context.Background()
	require.NoError(t, s.UpsertGame(ctx, buildTestGame(3001, "Revenue Game", true)))

	period := testDate(2026, 7, 1)
	records := []schema.RevenueRecord{
		{
			AppID: 3001, PeriodStart: period, PeriodEnd: testDate(2026, 7, 1),
			GrossCents: 150000, NetCents: 105000, UnitsSold: 75,
			Source: schema.RevenueSourcePartnerAPI, Granularity: schema.RevenueGranularityDaily,
		},
	}
	require.NoError(t, s.ReplaceRevenueRecords(ctx, 3001, period, schema.RevenueSourcePartnerAPI, records))

	// Re-sync replaces the group
	require.NoError(t, s.ReplaceRevenueRecords(ctx, 3001, period, schema.RevenueSourcePartnerAPI, []schema.RevenueRecord{
		{
			AppID: 3001, PeriodStart: period, PeriodEnd: testDate(2026, 7, 1),
			GrossCents: 160000, NetCents: 112000, UnitsSold: 80, Refunds: 2,
			Source: schema.RevenueSourcePartnerAPI, Granularity: schema.RevenueGranularityDaily,
		},
	}))

	// A CSV import for the same period coexists
	require.NoError(t, s.ReplaceRevenueRecords(ctx, 3001, period, schema.RevenueSourceCSVUpload, []schema.RevenueRecord{
		{
			AppID: 3001, PeriodStart: period, PeriodEnd: testDate(2026, 7, 31),
			GrossCents: 4000000, NetCents: 2800000, UnitsSold: 2000,
			Source: schema.RevenueSourceCSVUpload, Granularity: schema.RevenueGranularityMonthly,
		},
	}))

	all, err := s.ListRevenueRecords(ctx, RevenueFilter{AppID: 3001})
	require.NoError(t, err)
	require.Len(t, all, 2)

	partnerOnly, err := s.ListRevenueRecords(ctx, RevenueFilter{AppID: 3001, Source: schema.RevenueSourcePartnerAPI})
	require.NoError(t, err)
	require.Len(t, partnerOnly, 1)
	assert.Equal(t, int64(160000), partnerOnly[0].GrossCents)

	totals, err := s.GetRevenueTotalsByGame(ctx, RevenueFilter{})
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, 3001, totals[0].AppID)
	assert.Equal(t, "Revenue Game", totals[0].Name)
	assert.Equal(t, int64(4160000), totals[0].GrossCents)
	assert.Equal(t, int64(2080), totals[0].UnitsSold)
	assert.Equal(t, int64(2), totals[0].Periods)
}

func testCollectionRuns(t *testing.T, s Store) {
	ctx := context.Background()

	id := ulid.Make().String()
	run := &schema.CollectionRun{
		ID:        id,
		Job:       "portfolio",
		StartedAt: time.Now().UTC(),
		Status:    schema.RunStatusRunning,
	}
	require.NoError(t, s.CreateCollectionRun(ctx, run))

	require.NoError(t, s.FinishCollectionRun(ctx, id, schema.RunStatusCompleted, 42, ""))

	runs, err := s.ListRecentCollectionRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, schema.RunStatusCompleted, runs[0].Status)
	assert.Equal(t, 42, runs[0].ItemsProcessed)
	assert.NotNil(t, runs[0].FinishedAt)

	// Failed run retains its error message
	id2 := ulid.Make().String()
	require.NoError(t, s.CreateCollectionRun(ctx, &schema.CollectionRun{
		ID: id2, Job: "genres", StartedAt: time.Now().UTC(), Status: schema.RunStatusRunning,
	}))
	require.NoError(t, s.FinishCollectionRun(ctx, id2, schema.RunStatusFailed, 3, "steamspy timeout"))

	runs, err = s.ListRecentCollectionRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "steamspy timeout", runs[0].Error)
}

func testSyncHighwatermark(t *testing.T, s Store) {
	ctx := context.Background()

	// Missing key reads as the initial token
	hwm, err := s.GetSyncHighwatermark(ctx, "firstbreak")
	require.NoError(t, err)
	assert.Equal(t, "0", hwm)

	require.NoError(t, s.SetSyncHighwatermark(ctx, "firstbreak", "17234598"))

	hwm, err = s.GetSyncHighwatermark(ctx, "firstbreak")
	require.NoError(t, err)
	assert.Equal(t, "17234598", hwm)

	// Advancing overwrites
	require.NoError(t, s.SetSyncHighwatermark(ctx, "firstbreak", "17240001"))
	hwm, err = s.GetSyncHighwatermark(ctx, "firstbreak")
	require.NoError(t, err)
	assert.Equal(t, "17240001", hwm)
}

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Games", testGames},
		{"ListPortfolioGames", testListPortfolioGames},
		{"GameSnapshots", testGameSnapshots},
		{"GenreSnapshots", testGenreSnapshots},
		{"GenreSnapshotWindow", testGenreSnapshotWindow},
		{"GenreScores", testGenreScores},
		{"TagCorrelations", testTagCorrelations},
		{"TopSellers", testTopSellers},
		{"UpcomingReleases", testUpcomingReleases},
		{"RevenueRecords", testRevenueRecords},
		{"CollectionRuns", testCollectionRuns},
		{"SyncHighwatermark", testSyncHighwatermark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, s)
		})
	}
}
