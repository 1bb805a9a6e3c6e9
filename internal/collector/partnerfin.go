package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/providers/partner"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// partnerCallDelay spaces partner API calls
const partnerCallDelay = 200 * time.Millisecond

// partnerPageCap bounds the cursor loop per report date
const partnerPageCap = 1000

// partnerDateLayout is the partner API's slash-separated report date format
const partnerDateLayout = "2006/01/02"

// PartnerFinancialsCollector incrementally syncs real sales figures from the
// Steamworks partner financial reports API. Access requires Valve whitelisting
// the caller's IP; a missing key skips the job without failing it.
type PartnerFinancialsCollector struct {
	store        store.Store
	partner      partner.Client
	clock        adapter.Clock
	limiter      *rate.Limiter
	publisher    string
	backfillDays int
	keyPresent   bool
}

// NewPartnerFinancialsCollector creates a new partner financials collector
func NewPartnerFinancialsCollector(s store.Store, client partner.Client, clock adapter.Clock, publisher string, backfillDays int, keyPresent bool) *PartnerFinancialsCollector {
	return &PartnerFinancialsCollector{
		store:        s,
		partner:      client,
		clock:        clock,
		limiter:      rate.NewLimiter(rate.Every(partnerCallDelay), 1),
		publisher:    publisher,
		backfillDays: backfillDays,
		keyPresent:   keyPresent,
	}
}

// Name returns the job name used for audit rows and manual triggers
func (c *PartnerFinancialsCollector) Name() string {
	return "revenue"
}

// Collect fetches every changed report date since the stored highwatermark
// and replaces the affected (app, period) revenue rows
func (c *PartnerFinancialsCollector) Collect(ctx context.Context) (int, error) {
	if !c.keyPresent {
		logger.Warn("no partner API key configured, skipping revenue collection")
		return 0, nil
	}

	appIDs, err := c.store.ListGameAppIDs(ctx)
	if err != nil {
		return 0, err
	}
	known := make(map[int]struct{}, len(appIDs))
	for _, id := range appIDs {
		known[id] = struct{}{}
	}
	logger.Info("loaded game mappings", zap.Int("count", len(known)))

	highwatermark, err := c.store.GetSyncHighwatermark(ctx, c.publisher)
	if err != nil {
		return 0, err
	}
	logger.Info("starting partner sync", zap.String("highwatermark", highwatermark))

	changed, err := c.partner.GetChangedDates(ctx, highwatermark)
	if err != nil {
		return 0, err
	}
	logger.Info("found dates with changes", zap.Int("count", len(changed.Dates)))

	dates := changed.Dates
	if c.backfillDays > 0 {
		cutoff := c.clock.Today().AddDate(0, 0, -c.backfillDays).Format(partnerDateLayout)
		filtered := dates[:0]
		for _, d := range dates {
			if d >= cutoff {
				filtered = append(filtered, d)
			}
		}
		dates = filtered
	}

	// A failed date is logged and skipped; the new highwatermark is still
	// persisted so the next run does not refetch already-synced dates
	records := 0
	failed := 0
	for i, reportDate := range dates {
		logger.Info("processing report date",
			zap.String("date", reportDate),
			zap.Int("index", i+1),
			zap.Int("total", len(dates)))

		count, err := c.collectDate(ctx, reportDate, known)
		records += count
		if err != nil {
			logger.Error(fmt.Errorf("failed to sync report date %s: %w", reportDate, err))
			failed++
		}
	}

	if err := c.store.SetSyncHighwatermark(ctx, c.publisher, changed.Highwatermark); err != nil {
		return records, err
	}

	if failed > 0 {
		logger.Warn("partner sync finished with errors",
			zap.Int("failed_dates", failed),
			zap.Int("total_dates", len(dates)))
	}

	return records, nil
}

// collectDate fetches one report date's full sales rows and replaces the
// per-app revenue records for that period
func (c *PartnerFinancialsCollector) collectDate(ctx context.Context, reportDate string, known map[int]struct{}) (int, error) {
	period, err := time.Parse(partnerDateLayout, reportDate)
	if err != nil {
		return 0, fmt.Errorf("failed to parse report date: %w", err)
	}

	rows, err := c.fetchAllPages(ctx, reportDate)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	aggregates := aggregateSales(rows)

	count := 0
	for appID, agg := range aggregates {
		// Revenue rows only exist for tracked games
		if _, ok := known[appID]; !ok {
			continue
		}
		countryJSON, _ := json.Marshal(agg.ByCountry)
		platformJSON, _ := json.Marshal(agg.ByPlatform)

		record := schema.RevenueRecord{
			AppID:             appID,
			PeriodStart:       period,
			PeriodEnd:         period,
			GrossCents:        agg.GrossCents,
			NetCents:          agg.NetCents,
			TaxCents:          agg.TaxCents,
			UnitsSold:         agg.UnitsSold,
			Refunds:           agg.Refunds,
			CountryBreakdown:  datatypes.JSON(countryJSON),
			PlatformBreakdown: datatypes.JSON(platformJSON),
			Source:            schema.RevenueSourcePartnerAPI,
			Granularity:       schema.RevenueGranularityDaily,
		}

		err := c.store.ReplaceRevenueRecords(ctx, appID, period, schema.RevenueSourcePartnerAPI, []schema.RevenueRecord{record})
		if err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// fetchAllPages follows the cursor until max_id stops advancing
func (c *PartnerFinancialsCollector) fetchAllPages(ctx context.Context, reportDate string) ([]partner.SaleRow, error) {
	var rows []partner.SaleRow
	cursor := "0"

	for page := 0; page < partnerPageCap; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		salesPage, err := c.partner.GetDetailedSales(ctx, reportDate, cursor)
		if err != nil {
			return nil, err
		}

		rows = append(rows, salesPage.Results...)
		if salesPage.MaxID == cursor {
			break
		}
		cursor = salesPage.MaxID
	}

	return rows, nil
}

// salesAggregate is one app's summed figures for a report date
type salesAggregate struct {
	GrossCents int64
	NetCents   int64
	TaxCents   int64
	UnitsSold  int
	Refunds    int
	ByCountry  map[string]*countryAggregate
	ByPlatform map[string]int
}

type countryAggregate struct {
	RevenueCents int64 `json:"revenue_cents"`
	Units        int   `json:"units"`
}

// aggregateSales sums sale rows per app, excluding retail key activations
func aggregateSales(rows []partner.SaleRow) map[int]*salesAggregate {
	aggregates := make(map[int]*salesAggregate)

	for i := range rows {
		row := &rows[i]
		if row.PackageSaleType == "Retail" {
			continue
		}
		appID := row.GameAppID()
		if appID == 0 {
			continue
		}

		agg, ok := aggregates[appID]
		if !ok {
			agg = &salesAggregate{
				ByCountry:  make(map[string]*countryAggregate),
				ByPlatform: make(map[string]int),
			}
			aggregates[appID] = agg
		}

		sold := row.GrossUnitsSold
		returned := row.GrossUnitsReturned
		if returned < 0 {
			returned = -returned
		}

		agg.GrossCents += row.GrossCents()
		agg.NetCents += row.NetCents()
		agg.TaxCents += row.TaxCents()
		agg.UnitsSold += sold
		agg.Refunds += returned

		country := row.CountryCode
		if country == "" {
			country = "XX"
		}
		cagg, ok := agg.ByCountry[country]
		if !ok {
			cagg = &countryAggregate{}
			agg.ByCountry[country] = cagg
		}
		cagg.RevenueCents += row.GrossCents()
		cagg.Units += sold

		platform := row.Platform
		if platform == "" {
			platform = "Unknown"
		}
		agg.ByPlatform[platform] += sold
	}

	return aggregates
}
