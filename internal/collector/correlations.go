package collector

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// CorrelationCollector analyzes tag co-occurrence over the per-game rows the
// genre sweep stored today. It issues no external calls.
type CorrelationCollector struct {
	store store.Store
	clock adapter.Clock
}

// NewCorrelationCollector creates a new tag correlation collector
func NewCorrelationCollector(s store.Store, clock adapter.Clock) *CorrelationCollector {
	return &CorrelationCollector{store: s, clock: clock}
}

// Name returns the job name used for audit rows and manual triggers
func (c *CorrelationCollector) Name() string {
	return "correlations"
}

// taggedGame is one app's merged view across every genre sweep that listed it
type taggedGame struct {
	AppID       int
	Name        string
	CCU         int
	ReviewScore int
	PriceCents  int
	Tags        map[string]struct{}
}

func (g *taggedGame) hasTag(tag string) bool {
	if _, ok := g.Tags[tag]; ok {
		return true
	}
	for t := range g.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Collect merges today's genre game rows per app and upserts one correlation
// row per catalogued pair with nonzero co-occurrence
func (c *CorrelationCollector) Collect(ctx context.Context) (int, error) {
	today := c.clock.Today()

	rows, err := c.store.ListGenreGamesOn(ctx, today)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		logger.Warn("no genre games for today, skipping correlation analysis")
		return 0, nil
	}

	games := mergeGenreGames(rows)
	logger.Info("loaded games for correlation analysis", zap.Int("count", len(games)))

	records := 0
	for _, pair := range TagPairs {
		correlation := analyzeTagPair(pair, games, today)
		if correlation == nil {
			continue
		}
		if err := c.store.UpsertTagCorrelation(ctx, correlation); err != nil {
			logger.Error(err, zap.String("tag_a", pair.A), zap.String("tag_b", pair.B))
			continue
		}
		records++
	}

	return records, nil
}

// mergeGenreGames folds duplicate app rows from different genre sweeps into
// one game each; tag sets union, CCU takes the maximum observed
func mergeGenreGames(rows []schema.GenreGame) map[int]*taggedGame {
	games := make(map[int]*taggedGame)
	for _, row := range rows {
		var tags []string
		if len(row.Tags) > 0 {
			_ = json.Unmarshal(row.Tags, &tags)
		}

		game, ok := games[row.AppID]
		if !ok {
			game = &taggedGame{
				AppID:       row.AppID,
				Name:        row.Name,
				CCU:         row.CCU,
				ReviewScore: row.ReviewScore,
				PriceCents:  row.PriceCents,
				Tags:        make(map[string]struct{}, len(tags)),
			}
			games[row.AppID] = game
		} else if row.CCU > game.CCU {
			game.CCU = row.CCU
		}
		for _, t := range tags {
			game.Tags[t] = struct{}{}
		}
	}
	return games
}

// analyzeTagPair computes one pair's co-occurrence metrics; nil when no game
// carries both tags
func analyzeTagPair(pair TagPair, games map[int]*taggedGame, date time.Time) *schema.TagCorrelation {
	var common []*taggedGame
	countA, countB := 0, 0

	for _, game := range games {
		hasA := game.hasTag(pair.A)
		hasB := game.hasTag(pair.B)
		if hasA {
			countA++
		}
		if hasB {
			countB++
		}
		if hasA && hasB {
			common = append(common, game)
		}
	}

	if len(common) == 0 {
		return nil
	}

	var combinedCCU int64
	var reviewSum, reviewN, priceSum, priceN int
	for _, g := range common {
		combinedCCU += int64(g.CCU)
		if g.ReviewScore > 0 {
			reviewSum += g.ReviewScore
			reviewN++
		}
		if g.PriceCents > 0 {
			priceSum += g.PriceCents
			priceN++
		}
	}
	avgReview := 0.0
	if reviewN > 0 {
		avgReview = float64(reviewSum / reviewN)
	}
	avgPrice := 0
	if priceN > 0 {
		avgPrice = priceSum / priceN
	}

	minCount := countA
	if countB < minCount {
		minCount = countB
	}
	strength := 0.0
	if minCount > 0 {
		strength = float64(len(common)) / float64(minCount)
	}

	sort.Slice(common, func(i, j int) bool { return common[i].CCU > common[j].CCU })
	limit := len(common)
	if limit > 5 {
		limit = 5
	}
	type topGame struct {
		AppID       int    `json:"app_id"`
		Name        string `json:"name"`
		CCU         int    `json:"ccu"`
		ReviewScore int    `json:"review_score"`
	}
	top := make([]topGame, 0, limit)
	for _, g := range common[:limit] {
		top = append(top, topGame{AppID: g.AppID, Name: g.Name, CCU: g.CCU, ReviewScore: g.ReviewScore})
	}
	topJSON, _ := json.Marshal(top)

	return &schema.TagCorrelation{
		TagA:           pair.A,
		TagB:           pair.B,
		SnapshotDate:   date,
		CountA:         countA,
		CountB:         countB,
		CoOccurrence:   len(common),
		Strength:       strength,
		CombinedCCU:    combinedCCU,
		AvgReviewScore: avgReview,
		AvgPriceCents:  avgPrice,
		TopGames:       datatypes.JSON(topJSON),
	}
}
