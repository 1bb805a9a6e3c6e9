package schema

import "time"

// TopSellersSnapshot represents the top_sellers_snapshots table - daily
// rankings captured from the storefront featured categories feed
type TopSellersSnapshot struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Category is the storefront category key (e.g. "top_sellers", "new_releases")
	Category string `gorm:"column:category;not null;type:text;uniqueIndex:idx_top_sellers_cat_date_rank,priority:1"`
	// SnapshotDate is the UTC collection date (midnight-truncated)
	SnapshotDate time.Time `gorm:"column:snapshot_date;not null;type:date;uniqueIndex:idx_top_sellers_cat_date_rank,priority:2;index:idx_top_sellers_date"`
	// Rank is the 1-based position within the category feed
	Rank  int    `gorm:"column:rank;not null;uniqueIndex:idx_top_sellers_cat_date_rank,priority:3"`
	AppID int    `gorm:"column:app_id;not null"`
	Name  string `gorm:"column:name;not null;type:text"`
	// FinalPriceCents is the price after discount, in US cents
	FinalPriceCents int `gorm:"column:final_price_cents;not null;default:0"`
	// DiscountPct is the active discount percentage
	DiscountPct int       `gorm:"column:discount_pct;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the TopSellersSnapshot model
func (TopSellersSnapshot) TableName() string {
	return "top_sellers_snapshots"
}
