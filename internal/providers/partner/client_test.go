package partner_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/mocks"
	"github.com/firstbreaklabs/steam-intel/internal/providers/partner"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestClient_GetChangedDates_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := partner.NewClient(mockHTTPClient, "https://partner.steam-api.com", "test-key")

	ctx := context.Background()
	payload := `{"response": {"dates": ["2026/08/25", "2026/08/26"], "result_highwatermark": "17240001"}}`

	expectedURL := "https://partner.steam-api.com/IPartnerFinancialsService/GetChangedDatesForPartner/v001/?key=test-key&highwatermark=0"
	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			return json.Unmarshal([]byte(payload), result)
		}).
		Times(1)

	got, err := client.GetChangedDates(ctx, "0")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, []string{"2026/08/25", "2026/08/26"}, got.Dates)
	assert.Equal(t, "17240001", got.Highwatermark)
}

func TestClient_GetChangedDates_KeepsHighwatermarkWhenOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := partner.NewClient(mockHTTPClient, "https://partner.steam-api.com", "test-key")

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			return json.Unmarshal([]byte(`{"response": {"dates": []}}`), result)
		}).
		Times(1)

	got, err := client.GetChangedDates(ctx, "17234598")
	require.NoError(t, err)
	assert.Empty(t, got.Dates)
	assert.Equal(t, "17234598", got.Highwatermark)
}

func TestClient_GetDetailedSales_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := partner.NewClient(mockHTTPClient, "https://partner.steam-api.com", "test-key")

	ctx := context.Background()
	payload := `{
		"response": {
			"results": [
				{
					"appid": 1669980,
					"package_sale_type": "Sale",
					"gross_sales_usd": "1234.56",
					"net_sales_usd": "864.19",
					"net_tax_usd": "98.77",
					"gross_units_sold": 100,
					"gross_units_returned": -3,
					"country_code": "US",
					"platform": "windows"
				}
			],
			"app_info": [{"appid": 1669980, "app_name": "Dungeon Clawler"}],
			"country_info": [{"country_code": "US", "country_name": "United States", "region": "North America"}],
			"max_id": "42"
		}
	}`

	expectedURL := "https://partner.steam-api.com/IPartnerFinancialsService/GetDetailedSales/v001/?key=test-key&date=2026%2F08%2F25&highwatermark_id=0"
	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, result interface{}) error {
			return json.Unmarshal([]byte(payload), result)
		}).
		Times(1)

	page, err := client.GetDetailedSales(ctx, "2026/08/25", "0")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)

	row := page.Results[0]
	assert.Equal(t, 1669980, row.GameAppID())
	assert.Equal(t, int64(123456), row.GrossCents())
	assert.Equal(t, int64(86419), row.NetCents())
	assert.Equal(t, int64(9877), row.TaxCents())
	assert.Equal(t, "42", page.MaxID)
	assert.Equal(t, "Dungeon Clawler", page.AppInfo[0].AppName)
}

func TestClient_GetDetailedSales_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := partner.NewClient(mockHTTPClient, "https://partner.steam-api.com", "bad-key")

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any()).
		Return(errors.New("unexpected status code 403")).
		Times(1)

	page, err := client.GetDetailedSales(ctx, "2026/08/25", "0")
	require.Error(t, err)
	assert.Nil(t, page)
}

func TestSaleRow_GameAppID_PrefersPrimary(t *testing.T) {
	row := partner.SaleRow{AppID: 2000, PrimaryAppID: 1669980}
	assert.Equal(t, 1669980, row.GameAppID())

	row = partner.SaleRow{AppID: 2000}
	assert.Equal(t, 2000, row.GameAppID())
}
