package collector

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/providers/steamspy"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// genreSweepDelay spaces the per-tag SteamSpy sweeps
const genreSweepDelay = 1500 * time.Millisecond

// genreGameSampleSize caps the per-game rows stored per genre snapshot
const genreGameSampleSize = 100

// GenreTrendsCollector sweeps every tracked tag on SteamSpy, stores daily
// market aggregates, then scores each genre relative to the rest
type GenreTrendsCollector struct {
	store    store.Store
	steamspy steamspy.Client
	clock    adapter.Clock
	limiter  *rate.Limiter
}

// NewGenreTrendsCollector creates a new genre trends collector
func NewGenreTrendsCollector(s store.Store, client steamspy.Client, clock adapter.Clock) *GenreTrendsCollector {
	return &GenreTrendsCollector{
		store:    s,
		steamspy: client,
		clock:    clock,
		limiter:  rate.NewLimiter(rate.Every(genreSweepDelay), 1),
	}
}

// Name returns the job name used for audit rows and manual triggers
func (c *GenreTrendsCollector) Name() string {
	return "genres"
}

// Collect sweeps every tracked genre and runs the scoring pass over the
// snapshots collected today
func (c *GenreTrendsCollector) Collect(ctx context.Context) (int, error) {
	records := 0
	for _, genre := range TrackedGenres {
		if err := c.limiter.Wait(ctx); err != nil {
			return records, err
		}

		if err := c.collectGenre(ctx, genre); err != nil {
			logger.Error(err, zap.String("genre", genre))
			continue
		}
		records++
	}

	if err := c.scoreGenres(ctx); err != nil {
		return records, err
	}

	return records, nil
}

func (c *GenreTrendsCollector) collectGenre(ctx context.Context, genre string) error {
	apps, err := c.steamspy.TagGames(ctx, genre)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		logger.Warn("no data for genre", zap.String("genre", genre))
		return nil
	}

	snapshot, games := c.aggregate(genre, apps)
	return c.store.ReplaceGenreSnapshot(ctx, snapshot, games)
}

// aggregate reduces one tag sweep into the daily snapshot and its per-game sample
func (c *GenreTrendsCollector) aggregate(genre string, apps map[int]*steamspy.App) (*schema.GenreSnapshot, []schema.GenreGame) {
	games := make([]*steamspy.App, 0, len(apps))
	for _, app := range apps {
		games = append(games, app)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].CCU > games[j].CCU })

	gameCount := len(games)
	var totalCCU, totalOwners, totalRevenue int64
	var reviewScores, reviewCounts, pricesNonzero []int
	earlyAccessCount := 0
	tagCounts := map[string]int{}
	dist := [6]int{} // free, <5, 5-10, 10-20, 20-30, 30+

	for _, g := range games {
		totalCCU += int64(g.CCU)

		if total := g.Positive + g.Negative; total > 0 {
			reviewScores = append(reviewScores, g.ReviewScore())
			reviewCounts = append(reviewCounts, total)
		}

		totalOwners += g.OwnersMid()

		price := g.PriceCents()
		if price > 0 {
			pricesNonzero = append(pricesNonzero, price)
		}
		switch {
		case price == 0:
			dist[0]++
		case price < 500:
			dist[1]++
		case price < 1000:
			dist[2]++
		case price < 2000:
			dist[3]++
		case price < 3000:
			dist[4]++
		default:
			dist[5]++
		}

		for tag := range g.Tags {
			tagCounts[tag]++
		}
		if _, ok := g.Tags["Early Access"]; ok {
			earlyAccessCount++
		}

		// Boxleiter-style estimate, halved to account for discounts
		totalRevenue += int64(float64(g.OwnersMid()) * float64(price) * 0.5)
	}

	avgCCU := 0
	if gameCount > 0 {
		avgCCU = int(totalCCU) / gameCount
	}
	avgReviewScore := 0
	if len(reviewScores) > 0 {
		sum := 0
		for _, s := range reviewScores {
			sum += s
		}
		avgReviewScore = sum / len(reviewScores)
	}
	avgPrice, medianPrice := 0, 0
	if len(pricesNonzero) > 0 {
		sum := 0
		for _, p := range pricesNonzero {
			sum += p
		}
		avgPrice = sum / len(pricesNonzero)
		medianPrice = medianInt(pricesNonzero)
	}
	earlyAccessPct := 0.0
	if gameCount > 0 {
		earlyAccessPct = math.Round(float64(earlyAccessCount) / float64(gameCount) * 100)
	}

	snapshot := &schema.GenreSnapshot{
		Genre:                genre,
		SnapshotDate:         c.clock.Today(),
		GameCount:            gameCount,
		TotalCCU:             totalCCU,
		MedianPriceCents:     medianPrice,
		AvgPriceCents:        avgPrice,
		PriceFree:            dist[0],
		PriceUnder5:          dist[1],
		Price5To10:           dist[2],
		Price10To20:          dist[3],
		Price20To30:          dist[4],
		PriceOver30:          dist[5],
		AvgCCU:               avgCCU,
		AvgReviewScore:       float64(avgReviewScore),
		MedianReviewCount:    medianInt(reviewCounts),
		EarlyAccessCount:     earlyAccessCount,
		EarlyAccessPct:       earlyAccessPct,
		TopTags:              topTagsJSON(tagCounts, genre),
		TopGames:             topGamesJSON(games),
		TotalOwnersEstimate:  totalOwners,
		TotalEstRevenueCents: totalRevenue,
	}

	sample := games
	if len(sample) > genreGameSampleSize {
		sample = sample[:genreGameSampleSize]
	}
	rows := make([]schema.GenreGame, 0, len(sample))
	for i, g := range sample {
		ownersMin, ownersMax := steamspy.ParseOwnersRange(g.Owners)
		tags, _ := json.Marshal(g.Tags.Names())
		rows = append(rows, schema.GenreGame{
			AppID:           g.AppID,
			Name:            g.Name,
			Rank:            i + 1,
			PriceCents:      g.PriceCents(),
			DiscountPct:     g.DiscountPct(),
			CCU:             g.CCU,
			OwnersMin:       ownersMin,
			OwnersMax:       ownersMax,
			OwnersMid:       g.OwnersMid(),
			EstRevenueCents: int64(float64(g.OwnersMid()) * float64(g.PriceCents()) * 0.5),
			PositiveReviews: g.Positive,
			NegativeReviews: g.Negative,
			ReviewScore:     g.ReviewScore(),
			Tags:            datatypes.JSON(tags),
			IsEarlyAccess:   g.Tags.Has("Early Access"),
		})
	}

	return snapshot, rows
}

// scoreGenres computes relative scores across every snapshot collected today
func (c *GenreTrendsCollector) scoreGenres(ctx context.Context) error {
	today := c.clock.Today()
	weekAgo := today.AddDate(0, 0, -7)

	current, err := c.store.ListGenreSnapshotsOn(ctx, today)
	if err != nil {
		return err
	}
	if len(current) == 0 {
		return nil
	}

	sc := buildScoreContext(current)
	for i := range current {
		snap := &current[i]
		previous, err := c.store.GetGenreSnapshotInWindow(ctx, snap.Genre, weekAgo.AddDate(0, 0, -1), weekAgo)
		if err != nil {
			return err
		}

		if err := c.store.UpsertGenreScore(ctx, computeGenreScore(snap, previous, sc)); err != nil {
			return err
		}
	}

	logger.Info("scored genres", zap.Int("count", len(current)))
	return nil
}

// medianInt returns the median of values, averaging the two middles for even
// lengths. Returns 0 for an empty slice.
func medianInt(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// topTagsJSON ranks co-occurring tags, excluding the swept genre itself
func topTagsJSON(tagCounts map[string]int, genre string) datatypes.JSON {
	type tagCount struct {
		Tag   string `json:"tag"`
		Count int    `json:"count"`
	}
	ranked := make([]tagCount, 0, len(tagCounts))
	for tag, count := range tagCounts {
		if tag == genre {
			continue
		}
		ranked = append(ranked, tagCount{Tag: tag, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	payload, _ := json.Marshal(ranked)
	return datatypes.JSON(payload)
}

// topGamesJSON captures the ten highest-CCU apps for display without joins
func topGamesJSON(sorted []*steamspy.App) datatypes.JSON {
	type topGame struct {
		AppID    int    `json:"app_id"`
		Name     string `json:"name"`
		CCU      int    `json:"ccu"`
		Owners   string `json:"owners"`
		Positive int    `json:"positive"`
		Negative int    `json:"negative"`
		Price    int    `json:"price"`
	}
	limit := len(sorted)
	if limit > 10 {
		limit = 10
	}
	top := make([]topGame, 0, limit)
	for _, g := range sorted[:limit] {
		top = append(top, topGame{
			AppID:    g.AppID,
			Name:     g.Name,
			CCU:      g.CCU,
			Owners:   g.Owners,
			Positive: g.Positive,
			Negative: g.Negative,
			Price:    g.PriceCents(),
		})
	}
	payload, _ := json.Marshal(top)
	return datatypes.JSON(payload)
}
