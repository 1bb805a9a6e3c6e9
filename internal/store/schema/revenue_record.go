package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RevenueSource identifies where a revenue record came from
type RevenueSource string

const (
	// RevenueSourcePartnerAPI marks rows synced from the Steamworks partner API
	RevenueSourcePartnerAPI RevenueSource = "partner_api"
	// RevenueSourceCSVUpload marks rows imported from a Steamworks report CSV
	RevenueSourceCSVUpload RevenueSource = "csv_upload"
)

// RevenueGranularity identifies the period length of a revenue record
type RevenueGranularity string

const (
	RevenueGranularityDaily   RevenueGranularity = "daily"
	RevenueGranularityMonthly RevenueGranularity = "monthly"
)

// RevenueRecord represents the revenue_records table - actual (not estimated)
// sales figures per app per reporting period. Partner syncs replace whole
// (app, period_start) groups, so there is no uniqueness across sources.
type RevenueRecord struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AppID is the Steam application ID the revenue belongs to
	AppID int `gorm:"column:app_id;not null;index:idx_revenue_records_app_period,priority:1"`
	// PeriodStart and PeriodEnd bound the reporting period (inclusive)
	PeriodStart time.Time `gorm:"column:period_start;not null;type:date;index:idx_revenue_records_app_period,priority:2"`
	PeriodEnd   time.Time `gorm:"column:period_end;not null;type:date"`
	// GrossCents and NetCents are revenue in US cents; TaxCents is the net
	// tax reported by the partner API, zero for CSV imports
	GrossCents int64 `gorm:"column:gross_cents;not null;default:0"`
	NetCents   int64 `gorm:"column:net_cents;not null;default:0"`
	TaxCents   int64 `gorm:"column:tax_cents;not null;default:0"`
	// UnitsSold and Refunds are unit counts for the period
	UnitsSold int `gorm:"column:units_sold;not null;default:0"`
	Refunds   int `gorm:"column:refunds;not null;default:0"`
	// CountryBreakdown maps country code to gross cents
	CountryBreakdown datatypes.JSON `gorm:"column:country_breakdown;type:jsonb"`
	// PlatformBreakdown maps platform name to units sold
	PlatformBreakdown datatypes.JSON `gorm:"column:platform_breakdown;type:jsonb"`
	// Source records how the row entered the system
	Source RevenueSource `gorm:"column:source;not null;type:text"`
	// Granularity records the period length
	Granularity RevenueGranularity `gorm:"column:granularity;not null;type:text"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the RevenueRecord model
func (RevenueRecord) TableName() string {
	return "revenue_records"
}
