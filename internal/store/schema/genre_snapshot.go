package schema

import (
	"time"

	"gorm.io/datatypes"
)

// GenreSnapshot represents the genre_snapshots table - daily market aggregates
// computed over every app SteamSpy returns for one tracked genre
type GenreSnapshot struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Genre is the SteamSpy genre name this aggregate covers
	Genre string `gorm:"column:genre;not null;type:text;uniqueIndex:idx_genre_snapshots_genre_date,priority:1"`
	// SnapshotDate is the UTC collection date (midnight-truncated)
	SnapshotDate time.Time `gorm:"column:snapshot_date;not null;type:date;uniqueIndex:idx_genre_snapshots_genre_date,priority:2;index:idx_genre_snapshots_date"`
	// GameCount is the number of apps returned for the genre
	GameCount int `gorm:"column:game_count;not null;default:0"`
	// TotalCCU sums peak concurrent users across the genre
	TotalCCU int64 `gorm:"column:total_ccu;not null;default:0"`
	// MedianPriceCents and AvgPriceCents summarize pricing in US cents
	MedianPriceCents int `gorm:"column:median_price_cents;not null;default:0"`
	AvgPriceCents    int `gorm:"column:avg_price_cents;not null;default:0"`
	// Price distribution bucket counts
	PriceFree    int `gorm:"column:price_free;not null;default:0"`
	PriceUnder5  int `gorm:"column:price_under_5;not null;default:0"`
	Price5To10   int `gorm:"column:price_5_to_10;not null;default:0"`
	Price10To20  int `gorm:"column:price_10_to_20;not null;default:0"`
	Price20To30  int `gorm:"column:price_20_to_30;not null;default:0"`
	PriceOver30  int `gorm:"column:price_over_30;not null;default:0"`
	// AvgCCU is the integer mean of peak concurrent users per app
	AvgCCU int `gorm:"column:avg_ccu;not null;default:0"`
	// AvgReviewScore is the mean review percentage across scored apps
	AvgReviewScore float64 `gorm:"column:avg_review_score;not null;default:0"`
	// MedianReviewCount is the median total review count across the genre
	MedianReviewCount int `gorm:"column:median_review_count;not null;default:0"`
	// EarlyAccessCount and EarlyAccessPct track apps carrying the Early Access tag
	EarlyAccessCount int     `gorm:"column:early_access_count;not null;default:0"`
	EarlyAccessPct   float64 `gorm:"column:early_access_pct;not null;default:0"`
	// TopTags lists the ten most co-occurring tags with counts
	TopTags datatypes.JSON `gorm:"column:top_tags;type:jsonb"`
	// TopGames lists the ten highest-CCU apps for quick display
	TopGames datatypes.JSON `gorm:"column:top_games;type:jsonb"`
	// TotalOwnersEstimate sums the owner-range midpoints across the genre
	TotalOwnersEstimate int64 `gorm:"column:total_owners_estimate;not null;default:0"`
	// TotalEstRevenueCents sums the estimated lifetime revenue across the genre
	TotalEstRevenueCents int64 `gorm:"column:total_est_revenue_cents;not null;default:0"`
	// Releases30d and Releases90d count apps released in the trailing windows
	Releases30d int       `gorm:"column:releases_30d;not null;default:0"`
	Releases90d int       `gorm:"column:releases_90d;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`

	// Associations
	Games []GenreGame `gorm:"foreignKey:GenreSnapshotID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the GenreSnapshot model
func (GenreSnapshot) TableName() string {
	return "genre_snapshots"
}

// GenreGame represents the genre_games table - per-app rows under one genre
// snapshot, ranked by peak concurrent users
type GenreGame struct {
	ID              int64 `gorm:"column:id;primaryKey;autoIncrement"`
	GenreSnapshotID int64 `gorm:"column:genre_snapshot_id;not null;index"`
	// AppID is the Steam application ID
	AppID int    `gorm:"column:app_id;not null"`
	Name  string `gorm:"column:name;not null;type:text"`
	// Rank is the 1-based position within the genre ordered by peak CCU
	Rank        int   `gorm:"column:rank;not null"`
	PriceCents  int   `gorm:"column:price_cents;not null;default:0"`
	DiscountPct int   `gorm:"column:discount_pct;not null;default:0"`
	CCU         int   `gorm:"column:ccu;not null;default:0"`
	OwnersMin   int64 `gorm:"column:owners_min;not null;default:0"`
	OwnersMax   int64 `gorm:"column:owners_max;not null;default:0"`
	OwnersMid   int64 `gorm:"column:owners_mid;not null;default:0"`
	// EstRevenueCents is the Boxleiter estimate: owners midpoint times price times 0.5
	EstRevenueCents int64 `gorm:"column:est_revenue_cents;not null;default:0"`
	PositiveReviews int   `gorm:"column:positive_reviews;not null;default:0"`
	NegativeReviews int   `gorm:"column:negative_reviews;not null;default:0"`
	ReviewScore     int   `gorm:"column:review_score;not null;default:0"`
	// Tags is the app's full SteamSpy tag list, consumed by the tag
	// correlation pass which reuses genre rows instead of refetching
	Tags datatypes.JSON `gorm:"column:tags;type:jsonb"`
	// IsEarlyAccess mirrors the Early Access tag membership
	IsEarlyAccess bool `gorm:"column:is_early_access;not null;default:false"`
}

// TableName specifies the table name for the GenreGame model
func (GenreGame) TableName() string {
	return "genre_games"
}
