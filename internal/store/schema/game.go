package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Game represents the games table - one row per Steam app we have ever observed,
// whether from the tracked portfolio or from market-wide genre sweeps
type Game struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AppID is the Steam application ID
	AppID int `gorm:"column:app_id;not null;uniqueIndex"`
	// Name is the app's display name as reported by SteamSpy or the store
	Name string `gorm:"column:name;not null;type:text"`
	// Developer is a comma-separated developer list
	Developer string `gorm:"column:developer;type:text"`
	// Publisher is a comma-separated publisher list
	Publisher string `gorm:"column:publisher;type:text"`
	// Genre is the comma-separated genre list from SteamSpy
	Genre string `gorm:"column:genre;type:text"`
	// Tags lists SteamSpy tag names, most voted first
	Tags datatypes.JSON `gorm:"column:tags;type:jsonb"`
	// IsPortfolio marks apps belonging to the tracked publisher portfolio
	IsPortfolio bool `gorm:"column:is_portfolio;not null;default:false"`
	// ReleaseDate is the store release date when known
	ReleaseDate *time.Time `gorm:"column:release_date"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Associations
	Snapshots      []GameSnapshot  `gorm:"foreignKey:AppID;references:AppID;constraint:OnDelete:CASCADE"`
	RevenueRecords []RevenueRecord `gorm:"foreignKey:AppID;references:AppID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Game model
func (Game) TableName() string {
	return "games"
}
