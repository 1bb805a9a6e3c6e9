package schema

import "time"

// GameSnapshot represents the game_snapshots table - one row per app per day,
// capturing SteamSpy counters at collection time. The daily uniqueness means
// re-running a collection on the same day overwrites rather than duplicates.
type GameSnapshot struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AppID is the Steam application ID
	AppID int `gorm:"column:app_id;not null;uniqueIndex:idx_game_snapshots_app_date,priority:1;index:idx_game_snapshots_app_id"`
	// SnapshotDate is the UTC collection date (midnight-truncated)
	SnapshotDate time.Time `gorm:"column:snapshot_date;not null;type:date;uniqueIndex:idx_game_snapshots_app_date,priority:2;index:idx_game_snapshots_date"`
	// PriceCents is the current price in US cents
	PriceCents int `gorm:"column:price_cents;not null;default:0"`
	// InitialPriceCents is the pre-discount price in US cents
	InitialPriceCents int `gorm:"column:initial_price_cents;not null;default:0"`
	// DiscountPct is the active discount percentage
	DiscountPct int `gorm:"column:discount_pct;not null;default:0"`
	// OwnersMin and OwnersMax bound the SteamSpy ownership estimate
	OwnersMin int64 `gorm:"column:owners_min;not null;default:0"`
	OwnersMax int64 `gorm:"column:owners_max;not null;default:0"`
	// CCU is the peak concurrent user count for yesterday
	CCU int `gorm:"column:ccu;not null;default:0"`
	// PositiveReviews and NegativeReviews are lifetime review counts
	PositiveReviews int `gorm:"column:positive_reviews;not null;default:0"`
	NegativeReviews int `gorm:"column:negative_reviews;not null;default:0"`
	// ReviewScore is positive/(positive+negative) as a rounded 0-100 percentage
	ReviewScore int `gorm:"column:review_score;not null;default:0"`
	// AverageForever and Average2Weeks are average playtime in minutes
	AverageForever int `gorm:"column:average_forever;not null;default:0"`
	Average2Weeks  int `gorm:"column:average_2weeks;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the GameSnapshot model
func (GameSnapshot) TableName() string {
	return "game_snapshots"
}
