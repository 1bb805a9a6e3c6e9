package partner

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
)

// SaleRow is one line item in a detailed sales report. Monetary amounts are
// decimal strings in USD.
type SaleRow struct {
	AppID              int    `json:"appid"`
	PrimaryAppID       int    `json:"primary_appid"`
	PackageSaleType    string `json:"package_sale_type"`
	GrossSalesUSD      string `json:"gross_sales_usd"`
	NetSalesUSD        string `json:"net_sales_usd"`
	NetTaxUSD          string `json:"net_tax_usd"`
	GrossUnitsSold     int    `json:"gross_units_sold"`
	GrossUnitsReturned int    `json:"gross_units_returned"`
	CountryCode        string `json:"country_code"`
	Platform           string `json:"platform"`
}

// GameAppID resolves the app the row belongs to, preferring the primary app
// when the sale covers a bundle or package
func (r *SaleRow) GameAppID() int {
	if r.PrimaryAppID != 0 {
		return r.PrimaryAppID
	}
	return r.AppID
}

// GrossCents returns the gross sales amount in US cents
func (r *SaleRow) GrossCents() int64 {
	return usdToCents(r.GrossSalesUSD)
}

// NetCents returns the net sales amount in US cents
func (r *SaleRow) NetCents() int64 {
	return usdToCents(r.NetSalesUSD)
}

// TaxCents returns the net tax amount in US cents
func (r *SaleRow) TaxCents() int64 {
	return usdToCents(r.NetTaxUSD)
}

func usdToCents(s string) int64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.Mul(decimal.NewFromInt(100)).IntPart()
}

// AppInfo maps an app ID to its display name in a sales report
type AppInfo struct {
	AppID   int    `json:"appid"`
	AppName string `json:"app_name"`
}

// CountryInfo describes one country referenced by a sales report
type CountryInfo struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Region      string `json:"region"`
}

// SalesPage is one cursor page of a detailed sales report
type SalesPage struct {
	Results     []SaleRow     `json:"results"`
	AppInfo     []AppInfo     `json:"app_info"`
	CountryInfo []CountryInfo `json:"country_info"`
	MaxID       string        `json:"max_id"`
}

// ChangedDates is the set of report dates with changes since a highwatermark
type ChangedDates struct {
	Dates         []string `json:"dates"`
	Highwatermark string   `json:"result_highwatermark"`
}

type changedDatesResponse struct {
	Response ChangedDates `json:"response"`
}

type salesPageResponse struct {
	Response SalesPage `json:"response"`
}

// Client defines the interface for Steam partner financials client operations
// to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/partner_client.go -package=mocks -mock_names=Client=MockPartnerClient
type Client interface {
	// GetChangedDates lists report dates changed since the given highwatermark.
	// Dates use "/" separators (e.g. "2026/08/25").
	GetChangedDates(ctx context.Context, highwatermark string) (*ChangedDates, error)
	// GetDetailedSales fetches one cursor page of the detailed sales report for
	// a date; callers advance highwatermarkID to MaxID until it stops moving
	GetDetailedSales(ctx context.Context, date, highwatermarkID string) (*SalesPage, error)
}

// PartnerClient implements the Steam partner financials client
type PartnerClient struct {
	httpClient adapter.HTTPClient
	apiBaseURL string
	apiKey     string
}

// NewClient creates a new Steam partner financials client
func NewClient(httpClient adapter.HTTPClient, apiBaseURL, apiKey string) Client {
	return &PartnerClient{
		httpClient: httpClient,
		apiBaseURL: apiBaseURL,
		apiKey:     apiKey,
	}
}

// GetChangedDates lists report dates changed since the given highwatermark
func (c *PartnerClient) GetChangedDates(ctx context.Context, highwatermark string) (*ChangedDates, error) {
	reqURL := fmt.Sprintf("%s/IPartnerFinancialsService/GetChangedDatesForPartner/v001/?key=%s&highwatermark=%s",
		c.apiBaseURL, url.QueryEscape(c.apiKey), url.QueryEscape(highwatermark))

	var response changedDatesResponse
	if err := c.httpClient.Get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call partner changed dates API: %w", err)
	}

	if response.Response.Highwatermark == "" {
		response.Response.Highwatermark = highwatermark
	}

	return &response.Response, nil
}

// GetDetailedSales fetches one cursor page of the detailed sales report for a date
func (c *PartnerClient) GetDetailedSales(ctx context.Context, date, highwatermarkID string) (*SalesPage, error) {
	reqURL := fmt.Sprintf("%s/IPartnerFinancialsService/GetDetailedSales/v001/?key=%s&date=%s&highwatermark_id=%s",
		c.apiBaseURL, url.QueryEscape(c.apiKey), url.QueryEscape(date), url.QueryEscape(highwatermarkID))

	var response salesPageResponse
	if err := c.httpClient.Get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call partner detailed sales API: %w", err)
	}

	if response.Response.MaxID == "" {
		response.Response.MaxID = highwatermarkID
	}

	return &response.Response, nil
}
