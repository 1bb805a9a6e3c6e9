package collector

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// csvDateLayout is the period date format in Steamworks report exports
const csvDateLayout = "2006-01-02"

// RevenueImporter ingests manually downloaded Steamworks financial report
// CSVs, the fallback path when partner API access is not whitelisted
type RevenueImporter struct {
	store store.Store
}

// NewRevenueImporter creates a new revenue CSV importer
func NewRevenueImporter(s store.Store) *RevenueImporter {
	return &RevenueImporter{store: s}
}

// Import parses a Steamworks report CSV and replaces the matching revenue
// records. Returns the number of records written.
func (im *RevenueImporter) Import(ctx context.Context, content []byte) (int, error) {
	records, err := ParseSteamworksCSV(content)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range records {
		record := &records[i]
		err := im.store.ReplaceRevenueRecords(ctx, record.AppID, record.PeriodStart, schema.RevenueSourceCSVUpload, []schema.RevenueRecord{*record})
		if err != nil {
			return count, err
		}
		count++
	}

	logger.Info("imported revenue records", zap.Int("count", count))
	return count, nil
}

// ParseSteamworksCSV parses a Steamworks financial report export. The content
// must sniff as CSV or plain text; binary uploads are rejected before parsing.
func ParseSteamworksCSV(content []byte) ([]schema.RevenueRecord, error) {
	kind := mimetype.Detect(content)
	if !kind.Is("text/csv") && !kind.Is("text/plain") {
		return nil, fmt.Errorf("unsupported content type %s, expected CSV", kind.String())
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"App ID", "Period Start", "Period End", "Gross Revenue", "Net Revenue", "Units Sold"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required CSV column %q", required)
		}
	}

	var records []schema.RevenueRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		appID, err := strconv.Atoi(field("App ID"))
		if err != nil {
			return nil, fmt.Errorf("invalid App ID %q: %w", field("App ID"), err)
		}
		periodStart, err := time.Parse(csvDateLayout, field("Period Start"))
		if err != nil {
			return nil, fmt.Errorf("invalid Period Start %q: %w", field("Period Start"), err)
		}
		periodEnd, err := time.Parse(csvDateLayout, field("Period End"))
		if err != nil {
			return nil, fmt.Errorf("invalid Period End %q: %w", field("Period End"), err)
		}

		records = append(records, schema.RevenueRecord{
			AppID:       appID,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			GrossCents:  dollarsToCents(field("Gross Revenue")),
			NetCents:    dollarsToCents(field("Net Revenue")),
			UnitsSold:   atoiOrZero(field("Units Sold")),
			Refunds:     atoiOrZero(field("Refunds")),
			Source:      schema.RevenueSourceCSVUpload,
			Granularity: schema.RevenueGranularityMonthly,
		})
	}

	return records, nil
}

// dollarsToCents converts a decimal dollar string without rounding through float64
func dollarsToCents(s string) int64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0
	}
	return d.Mul(decimal.NewFromInt(100)).IntPart()
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
