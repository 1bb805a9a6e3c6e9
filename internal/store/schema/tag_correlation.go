package schema

import (
	"time"

	"gorm.io/datatypes"
)

// TagCorrelation represents the tag_correlations table - daily co-occurrence
// statistics for one curated tag pair
type TagCorrelation struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TagA and TagB are the pair members, stored in the curated pair order
	TagA string `gorm:"column:tag_a;not null;type:text;uniqueIndex:idx_tag_correlations_pair_date,priority:1"`
	TagB string `gorm:"column:tag_b;not null;type:text;uniqueIndex:idx_tag_correlations_pair_date,priority:2"`
	// SnapshotDate is the UTC collection date (midnight-truncated)
	SnapshotDate time.Time `gorm:"column:snapshot_date;not null;type:date;uniqueIndex:idx_tag_correlations_pair_date,priority:3;index:idx_tag_correlations_date"`
	// CountA and CountB are how many apps carry each tag individually
	CountA int `gorm:"column:count_a;not null;default:0"`
	CountB int `gorm:"column:count_b;not null;default:0"`
	// CoOccurrence is how many apps carry both tags
	CoOccurrence int `gorm:"column:co_occurrence;not null;default:0"`
	// Strength is co-occurrence divided by the smaller individual count
	Strength float64 `gorm:"column:strength;not null;default:0"`
	// CombinedCCU sums peak CCU across all apps carrying both tags
	CombinedCCU int64 `gorm:"column:combined_ccu;not null;default:0"`
	// AvgReviewScore and AvgPriceCents average over co-tagged apps with
	// nonzero values
	AvgReviewScore float64 `gorm:"column:avg_review_score;not null;default:0"`
	AvgPriceCents  int     `gorm:"column:avg_price_cents;not null;default:0"`
	// TopGames lists up to five co-tagged apps ordered by CCU
	TopGames  datatypes.JSON `gorm:"column:top_games;type:jsonb"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the TagCorrelation model
func (TagCorrelation) TableName() string {
	return "tag_correlations"
}
