package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

func snapshotFor(genre string, ccu int64, games int, revenue int64) *schema.GenreSnapshot {
	return &schema.GenreSnapshot{
		Genre:                genre,
		SnapshotDate:         time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		GameCount:            games,
		TotalCCU:             ccu,
		AvgReviewScore:       80,
		MedianReviewCount:    500,
		Releases30d:          0,
		TotalEstRevenueCents: revenue,
	}
}

func TestBuildScoreContext(t *testing.T) {
	sc := buildScoreContext([]schema.GenreSnapshot{
		*snapshotFor("Roguelike", 50000, 800, 4_000_000_00),
		*snapshotFor("Horror", 120000, 400, 9_000_000_00),
		*snapshotFor("Farming Sim", 8000, 1200, 1_000_000_00),
	})

	assert.Equal(t, int64(120000), sc.maxCCU)
	assert.Equal(t, 1200, sc.maxGames)
	assert.Equal(t, int64(9_000_000_00), sc.maxRevenue)
}

func TestComputeGenreScore_Components(t *testing.T) {
	sc := scoreContext{maxCCU: 100000, maxGames: 1000, maxRevenue: 10_000_000_00}

	current := snapshotFor("Roguelike", 50000, 400, 5_000_000_00)
	previous := snapshotFor("Roguelike", 40000, 390, 4_500_000_00)

	score := computeGenreScore(current, previous, sc)

	assert.Equal(t, 50.0, score.Hotness)
	assert.Equal(t, 40.0, score.Saturation)
	assert.Equal(t, 80.0, score.Success)
	assert.Equal(t, 60.0, score.Timing)
	// (50000-40000)/40000 = 25%
	assert.Equal(t, 25.0, score.Velocity)
	assert.Equal(t, 40.0, score.Competition)
	assert.Equal(t, 50.0, score.RevenuePotential)
	assert.Equal(t, 70.0, score.Discoverability)
	// .30*50 + .25*80 + .20*60 + .15*50 + .10*75 = 62
	assert.Equal(t, 62.0, score.Overall)
	assert.Equal(t, schema.TrendRising, score.Trend)
	assert.Equal(t, schema.RecommendationHot, score.Recommendation)
}

func TestComputeGenreScore_NoPreviousSnapshot(t *testing.T) {
	sc := scoreContext{maxCCU: 100000, maxGames: 1000, maxRevenue: 10_000_000_00}

	score := computeGenreScore(snapshotFor("Horror", 30000, 700, 2_000_000_00), nil, sc)

	assert.Equal(t, 0.0, score.Velocity)
	assert.Equal(t, schema.TrendStable, score.Trend)
}

func TestComputeGenreScore_ZeroMaximaFallBackToMidpoint(t *testing.T) {
	score := computeGenreScore(snapshotFor("Lovecraftian", 0, 0, 0), nil, scoreContext{})

	assert.Equal(t, 50.0, score.Hotness)
	assert.Equal(t, 50.0, score.Saturation)
	assert.Equal(t, 50.0, score.RevenuePotential)
}

func TestComputeGenreScore_SuccessDefaultsWithoutReviews(t *testing.T) {
	current := snapshotFor("Sokoban", 1000, 50, 100_000_00)
	current.AvgReviewScore = 0

	score := computeGenreScore(current, nil, scoreContext{maxCCU: 10000, maxGames: 100, maxRevenue: 1_000_000_00})

	assert.Equal(t, 50.0, score.Success)
}

func TestComputeGenreScore_DiscoverabilitySteps(t *testing.T) {
	sc := scoreContext{maxCCU: 10000, maxGames: 100, maxRevenue: 1_000_000_00}

	tests := []struct {
		medianReviews int
		expected      float64
	}{
		{10, 30},
		{49, 30},
		{50, 50},
		{199, 50},
		{200, 70},
		{999, 70},
		{1000, 90},
		{25000, 90},
		// A missing median is treated as mid-pack, not hard-to-find
		{0, 50},
	}

	for _, tc := range tests {
		current := snapshotFor("Horror", 5000, 50, 500_000_00)
		current.MedianReviewCount = tc.medianReviews
		score := computeGenreScore(current, nil, sc)
		assert.Equal(t, tc.expected, score.Discoverability, "median %d", tc.medianReviews)
	}
}

func TestComputeGenreScore_TrendThresholds(t *testing.T) {
	sc := scoreContext{maxCCU: 100000, maxGames: 1000, maxRevenue: 10_000_000_00}

	tests := []struct {
		name        string
		previousCCU int64
		currentCCU  int64
		trend       schema.Trend
	}{
		{"rising at +10", 100000 / 2, 55000, schema.TrendRising},
		{"stable just under +10", 10000, 10900, schema.TrendStable},
		{"stable flat", 10000, 10000, schema.TrendStable},
		{"stable just above -10", 10000, 9100, schema.TrendStable},
		{"declining at -10", 10000, 9000, schema.TrendDeclining},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			current := snapshotFor("Roguelike", tc.currentCCU, 400, 1_000_000_00)
			previous := snapshotFor("Roguelike", tc.previousCCU, 400, 1_000_000_00)
			score := computeGenreScore(current, previous, sc)
			assert.Equal(t, tc.trend, score.Trend)
		})
	}
}

func TestComputeGenreScore_RecommendationBranches(t *testing.T) {
	sc := scoreContext{maxCCU: 100000, maxGames: 1000, maxRevenue: 10_000_000_00}

	t.Run("declining", func(t *testing.T) {
		current := snapshotFor("Horror", 8000, 800, 500_000_00)
		current.AvgReviewScore = 60
		previous := snapshotFor("Horror", 10000, 800, 500_000_00)
		score := computeGenreScore(current, previous, sc)
		assert.Equal(t, schema.RecommendationDeclining, score.Recommendation)
	})

	t.Run("saturated", func(t *testing.T) {
		current := snapshotFor("Indie", 10000, 900, 500_000_00)
		current.AvgReviewScore = 60
		score := computeGenreScore(current, nil, sc)
		assert.Equal(t, schema.RecommendationSaturated, score.Recommendation)
	})

	t.Run("niche", func(t *testing.T) {
		current := snapshotFor("Sokoban", 500, 50, 50_000_00)
		current.AvgReviewScore = 60
		score := computeGenreScore(current, nil, sc)
		assert.Equal(t, schema.RecommendationNiche, score.Recommendation)
	})

	t.Run("growing on velocity alone", func(t *testing.T) {
		current := snapshotFor("Farming Sim", 10600, 900, 500_000_00)
		current.AvgReviewScore = 60
		previous := snapshotFor("Farming Sim", 10000, 900, 500_000_00)
		score := computeGenreScore(current, previous, sc)
		assert.Equal(t, schema.RecommendationGrowing, score.Recommendation)
	})
}

func TestMedianInt(t *testing.T) {
	assert.Equal(t, 0, medianInt(nil))
	assert.Equal(t, 7, medianInt([]int{7}))
	assert.Equal(t, 5, medianInt([]int{9, 1, 5}))
	// Even length averages the two middle values
	assert.Equal(t, 4, medianInt([]int{1, 3, 5, 9}))
}
