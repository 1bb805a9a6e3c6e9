package collector

import (
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// scoreContext carries the cross-genre maxima one scoring pass normalizes against
type scoreContext struct {
	maxCCU     int64
	maxGames   int
	maxRevenue int64
}

func buildScoreContext(snapshots []schema.GenreSnapshot) scoreContext {
	var sc scoreContext
	for _, s := range snapshots {
		if s.TotalCCU > sc.maxCCU {
			sc.maxCCU = s.TotalCCU
		}
		if s.GameCount > sc.maxGames {
			sc.maxGames = s.GameCount
		}
		if s.TotalEstRevenueCents > sc.maxRevenue {
			sc.maxRevenue = s.TotalEstRevenueCents
		}
	}
	return sc
}

// computeGenreScore derives the daily score row for one genre. previous is
// the newest snapshot from roughly a week ago, nil when none exists.
func computeGenreScore(current *schema.GenreSnapshot, previous *schema.GenreSnapshot, sc scoreContext) *schema.GenreScore {
	hotness := 50.0
	if sc.maxCCU > 0 {
		hotness = minf(100, float64(int(float64(current.TotalCCU)/float64(sc.maxCCU)*100)))
	}

	saturation := 50.0
	if sc.maxGames > 0 {
		saturation = minf(100, float64(int(float64(current.GameCount)/float64(sc.maxGames)*100)))
	}

	success := current.AvgReviewScore
	if success == 0 {
		success = 50
	}

	timing := 100 - saturation

	velocity := 0.0
	if previous != nil && previous.TotalCCU > 0 {
		velocity = float64(int(float64(current.TotalCCU-previous.TotalCCU) / float64(previous.TotalCCU) * 100))
	}

	competition := minf(100, saturation+float64(current.Releases30d))

	revenuePotential := 50.0
	if sc.maxRevenue > 0 {
		revenuePotential = minf(100, float64(int(float64(current.TotalEstRevenueCents)/float64(sc.maxRevenue)*100)))
	}

	// Fewer reviews means new games in the genre struggle to surface
	medianReviews := current.MedianReviewCount
	if medianReviews == 0 {
		medianReviews = 100
	}
	var discoverability float64
	switch {
	case medianReviews < 50:
		discoverability = 30
	case medianReviews < 200:
		discoverability = 50
	case medianReviews < 1000:
		discoverability = 70
	default:
		discoverability = 90
	}

	trend := schema.TrendStable
	switch {
	case velocity >= 10:
		trend = schema.TrendRising
	case velocity <= -10:
		trend = schema.TrendDeclining
	}

	// Velocity is shifted into 0-100 for the weighted average
	velocityNorm := minf(100, maxf(0, velocity+50))
	overall := float64(int(hotness*0.30 + success*0.25 + timing*0.20 + revenuePotential*0.15 + velocityNorm*0.10))

	var recommendation schema.Recommendation
	switch {
	case velocity >= 15 && saturation < 50:
		recommendation = schema.RecommendationHot
	case velocity >= 5 || (overall >= 65 && saturation < 60):
		recommendation = schema.RecommendationGrowing
	case velocity <= -10:
		recommendation = schema.RecommendationDeclining
	case saturation >= 70:
		recommendation = schema.RecommendationSaturated
	default:
		recommendation = schema.RecommendationNiche
	}

	return &schema.GenreScore{
		Genre:            current.Genre,
		SnapshotDate:     current.SnapshotDate,
		Hotness:          hotness,
		Saturation:       saturation,
		Success:          success,
		Timing:           timing,
		Velocity:         velocity,
		Competition:      competition,
		RevenuePotential: revenuePotential,
		Discoverability:  discoverability,
		Overall:          overall,
		Trend:            trend,
		Recommendation:   recommendation,
	}
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
