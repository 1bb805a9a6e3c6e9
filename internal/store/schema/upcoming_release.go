package schema

import (
	"time"

	"gorm.io/datatypes"
)

const (
	// UpcomingSourceFeatured marks rows built from the coming-soon listing
	// alone, when the store detail fetch failed
	UpcomingSourceFeatured = "steam_featured"
	// UpcomingSourceStoreAPI marks rows enriched from the store detail page
	UpcomingSourceStoreAPI = "steam_api"
)

// UpcomingRelease represents the upcoming_releases table - unreleased apps
// discovered via the storefront coming-soon feed, with a derived hype score
type UpcomingRelease struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AppID is the Steam application ID
	AppID int    `gorm:"column:app_id;not null;uniqueIndex"`
	Name  string `gorm:"column:name;not null;type:text"`
	// ReleaseDate is the parsed release date; nil when the raw string could
	// not be interpreted (e.g. "Coming soon", "TBA")
	ReleaseDate *time.Time `gorm:"column:release_date;index"`
	// ReleaseDateRaw is the storefront's original release date string
	ReleaseDateRaw string `gorm:"column:release_date_raw;type:text"`
	// Genres is the genre description list from the store detail page
	Genres datatypes.JSON `gorm:"column:genres;type:jsonb"`
	// Tags merges store category descriptions with genre descriptions
	Tags       datatypes.JSON `gorm:"column:tags;type:jsonb"`
	Developers datatypes.JSON `gorm:"column:developers;type:jsonb"`
	Publishers datatypes.JSON `gorm:"column:publishers;type:jsonb"`
	// PriceCents is the announced price when known (0 for unpriced/free)
	PriceCents int `gorm:"column:price_cents;not null;default:0"`
	// HasDemo reports whether a playable demo is listed
	HasDemo bool `gorm:"column:has_demo;not null;default:false"`
	// HypeScore is the 0-100 interest estimate
	HypeScore int `gorm:"column:hype_score;not null;default:0"`
	// Source records which feed produced the row: the bare coming-soon
	// listing or the full store detail page
	Source    string    `gorm:"column:source;not null;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the UpcomingRelease model
func (UpcomingRelease) TableName() string {
	return "upcoming_releases"
}
