package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
)

// FeaturedItem is one entry in a featured category listing. Prices are in US
// cents and already reflect any active discount.
type FeaturedItem struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	FinalPrice      int    `json:"final_price"`
	OriginalPrice   int    `json:"original_price"`
	DiscountPercent int    `json:"discount_percent"`
}

// FeaturedCategory is a named listing from the featured categories feed
type FeaturedCategory struct {
	Items []FeaturedItem `json:"items"`
}

// FeaturedCategories is the storefront featured categories response
type FeaturedCategories struct {
	Specials    FeaturedCategory `json:"specials"`
	ComingSoon  FeaturedCategory `json:"coming_soon"`
	TopSellers  FeaturedCategory `json:"top_sellers"`
	NewReleases FeaturedCategory `json:"new_releases"`
}

// ReleaseDate is the storefront release date block
type ReleaseDate struct {
	ComingSoon bool   `json:"coming_soon"`
	Date       string `json:"date"`
}

// Descriptor is a genre or category entry on a store detail page. Genre IDs
// arrive as strings, category IDs as numbers, so the ID field stays loose.
type Descriptor struct {
	ID          json.Number `json:"id"`
	Description string      `json:"description"`
}

// PriceOverview is the storefront price block, in the request currency's cents
type PriceOverview struct {
	Initial         int `json:"initial"`
	Final           int `json:"final"`
	DiscountPercent int `json:"discount_percent"`
}

// AppDetail is the data block of a store appdetails response
type AppDetail struct {
	Name          string           `json:"name"`
	IsFree        bool             `json:"is_free"`
	ReleaseDate   ReleaseDate      `json:"release_date"`
	Genres        []Descriptor     `json:"genres"`
	Categories    []Descriptor     `json:"categories"`
	Developers    []string         `json:"developers"`
	Publishers    []string         `json:"publishers"`
	PriceOverview *PriceOverview   `json:"price_overview"`
	Screenshots   []json.RawMessage `json:"screenshots"`
	Movies        []json.RawMessage `json:"movies"`
	Demos         []json.RawMessage `json:"demos"`
}

type appDetailsEntry struct {
	Success bool       `json:"success"`
	Data    *AppDetail `json:"data"`
}

// Client defines the interface for Steam storefront client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/storefront_client.go -package=mocks -mock_names=Client=MockStorefrontClient
type Client interface {
	// FeaturedCategories fetches the storefront's featured category listings
	FeaturedCategories(ctx context.Context) (*FeaturedCategories, error)
	// AppDetails fetches one app's store page detail; returns nil when the
	// storefront reports no data for the app
	AppDetails(ctx context.Context, appID int) (*AppDetail, error)
	// NewsForApp fetches recent news items for an app via the Steam Web API,
	// returned as the raw upstream payload
	NewsForApp(ctx context.Context, appID, count int) (json.RawMessage, error)
}

// StorefrontClient implements the Steam storefront client
type StorefrontClient struct {
	httpClient    adapter.HTTPClient
	storeBaseURL  string
	webAPIBaseURL string
}

// NewClient creates a new Steam storefront client
func NewClient(httpClient adapter.HTTPClient, storeBaseURL, webAPIBaseURL string) Client {
	return &StorefrontClient{
		httpClient:    httpClient,
		storeBaseURL:  storeBaseURL,
		webAPIBaseURL: webAPIBaseURL,
	}
}

// FeaturedCategories fetches the storefront's featured category listings
func (c *StorefrontClient) FeaturedCategories(ctx context.Context) (*FeaturedCategories, error) {
	reqURL := fmt.Sprintf("%s/featuredcategories/", c.storeBaseURL)

	var response FeaturedCategories
	if err := c.httpClient.Get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call featured categories API: %w", err)
	}

	return &response, nil
}

// AppDetails fetches one app's store page detail; returns nil when the
// storefront reports no data for the app
func (c *StorefrontClient) AppDetails(ctx context.Context, appID int) (*AppDetail, error) {
	reqURL := fmt.Sprintf("%s/appdetails?appids=%d&cc=us&l=english", c.storeBaseURL, appID)

	var response map[string]appDetailsEntry
	if err := c.httpClient.Get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call appdetails API: %w", err)
	}

	entry, ok := response[strconv.Itoa(appID)]
	if !ok || !entry.Success || entry.Data == nil {
		return nil, nil
	}

	return entry.Data, nil
}

// NewsForApp fetches recent news items for an app via the Steam Web API,
// returned as the raw upstream payload
func (c *StorefrontClient) NewsForApp(ctx context.Context, appID, count int) (json.RawMessage, error) {
	reqURL := fmt.Sprintf("%s/ISteamNews/GetNewsForApp/v2/?appid=%d&count=%d&maxlength=0&format=json",
		c.webAPIBaseURL, appID, count)

	var payload json.RawMessage
	if err := c.httpClient.Get(ctx, reqURL, &payload); err != nil {
		return nil, fmt.Errorf("failed to call Steam news API: %w", err)
	}

	return payload, nil
}
