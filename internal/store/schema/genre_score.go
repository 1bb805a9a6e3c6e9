package schema

import "time"

// Trend labels the recent direction of a genre's total CCU
type Trend string

const (
	TrendSurging   Trend = "surging"
	TrendRising    Trend = "rising"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
	TrendCrashing  Trend = "crashing"
)

// Recommendation labels a genre for portfolio decision-making
type Recommendation string

const (
	RecommendationHot       Recommendation = "hot"
	RecommendationGrowing   Recommendation = "growing"
	RecommendationDeclining Recommendation = "declining"
	RecommendationSaturated Recommendation = "saturated"
	RecommendationNiche     Recommendation = "niche"
)

// GenreScore represents the genre_scores table - the derived opportunity
// scoring for one genre on one day. All component scores are 0-100.
type GenreScore struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Genre is the SteamSpy genre name being scored
	Genre string `gorm:"column:genre;not null;type:text;uniqueIndex:idx_genre_scores_genre_date,priority:1"`
	// SnapshotDate is the UTC date the underlying aggregates were collected
	SnapshotDate time.Time `gorm:"column:snapshot_date;not null;type:date;uniqueIndex:idx_genre_scores_genre_date,priority:2;index:idx_genre_scores_date"`
	// Hotness is this genre's total CCU relative to the hottest genre today
	Hotness float64 `gorm:"column:hotness;not null;default:0"`
	// Saturation is this genre's game count relative to the most crowded genre
	Saturation float64 `gorm:"column:saturation;not null;default:0"`
	// Success is the genre's average review score
	Success float64 `gorm:"column:success;not null;default:0"`
	// Timing is the inverse of saturation
	Timing float64 `gorm:"column:timing;not null;default:0"`
	// Velocity is the percent change in total CCU against roughly a week ago
	Velocity float64 `gorm:"column:velocity;not null;default:0"`
	// Competition combines saturation with recent release pressure, capped at 100
	Competition float64 `gorm:"column:competition;not null;default:0"`
	// RevenuePotential relates the genre's estimated revenue to its crowding
	RevenuePotential float64 `gorm:"column:revenue_potential;not null;default:0"`
	// Discoverability steps down as the genre gets more crowded
	Discoverability float64 `gorm:"column:discoverability;not null;default:0"`
	// Overall is the weighted composite of the component scores
	Overall float64 `gorm:"column:overall;not null;default:0"`
	// Trend labels the CCU direction derived from velocity
	Trend Trend `gorm:"column:trend;not null;type:text;default:'stable'"`
	// Recommendation is the portfolio guidance label
	Recommendation Recommendation `gorm:"column:recommendation;not null;type:text;default:'niche'"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the GenreScore model
func (GenreScore) TableName() string {
	return "genre_scores"
}
