package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstbreaklabs/steam-intel/internal/mocks"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

const sampleReportCSV = `App ID,Period Start,Period End,Gross Revenue,Net Revenue,Units Sold,Refunds
1669980,2026-07-01,2026-07-31,"12,345.67",8641.97,2100,34
2210460,2026-07-01,2026-07-31,980.50,686.35,120,2
`

func TestParseSteamworksCSV(t *testing.T) {
	records, err := ParseSteamworksCSV([]byte(sampleReportCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, 1669980, first.AppID)
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), first.PeriodStart)
	assert.Equal(t, time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC), first.PeriodEnd)
	assert.Equal(t, int64(1234567), first.GrossCents)
	assert.Equal(t, int64(864197), first.NetCents)
	assert.Equal(t, 2100, first.UnitsSold)
	assert.Equal(t, 34, first.Refunds)
	assert.Equal(t, schema.RevenueSourceCSVUpload, first.Source)
	assert.Equal(t, schema.RevenueGranularityMonthly, first.Granularity)

	assert.Equal(t, int64(98050), records[1].GrossCents)
}

func TestParseSteamworksCSV_MissingColumn(t *testing.T) {
	content := "App ID,Period Start,Period End,Gross Revenue,Units Sold\n440,2026-07-01,2026-07-31,100.00,10\n"

	_, err := ParseSteamworksCSV([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required CSV column "Net Revenue"`)
}

func TestParseSteamworksCSV_RejectsBinaryContent(t *testing.T) {
	content := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x01}

	_, err := ParseSteamworksCSV(content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestParseSteamworksCSV_InvalidAppID(t *testing.T) {
	content := "App ID,Period Start,Period End,Gross Revenue,Net Revenue,Units Sold\nnot-a-number,2026-07-01,2026-07-31,100.00,70.00,10\n"

	_, err := ParseSteamworksCSV([]byte(content))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid App ID")
}

func TestParseSteamworksCSV_OptionalRefundsColumn(t *testing.T) {
	content := "App ID,Period Start,Period End,Gross Revenue,Net Revenue,Units Sold\n440,2026-07-01,2026-07-31,100.00,70.00,10\n"

	records, err := ParseSteamworksCSV([]byte(content))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0, records[0].Refunds)
}

func TestRevenueImporter_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	importer := NewRevenueImporter(mockStore)

	ctx := context.Background()
	july := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	mockStore.EXPECT().
		ReplaceRevenueRecords(ctx, 1669980, july, schema.RevenueSourceCSVUpload, gomock.Len(1)).
		Return(nil).
		Times(1)
	mockStore.EXPECT().
		ReplaceRevenueRecords(ctx, 2210460, july, schema.RevenueSourceCSVUpload, gomock.Len(1)).
		Return(nil).
		Times(1)

	count, err := importer.Import(ctx, []byte(sampleReportCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRevenueImporter_Import_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	importer := NewRevenueImporter(mockStore)

	ctx := context.Background()

	mockStore.EXPECT().
		ReplaceRevenueRecords(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused")).
		Times(1)

	count, err := importer.Import(ctx, []byte(sampleReportCSV))
	require.Error(t, err)
	assert.Equal(t, 0, count)
}

func TestRevenueImporter_Import_BadContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	importer := NewRevenueImporter(mockStore)

	count, err := importer.Import(context.Background(), []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
	require.Error(t, err)
	assert.Equal(t, 0, count)
}
