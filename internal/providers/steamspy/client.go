package steamspy

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
)

// TagMap holds an app's tag vote counts. SteamSpy serializes an empty tag set
// as a JSON array instead of an object, so decoding needs to accept both.
type TagMap map[string]int

// UnmarshalJSON implements json.Unmarshaler
func (m *TagMap) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") || trimmed == "null" {
		*m = TagMap{}
		return nil
	}
	var tags map[string]int
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*m = tags
	return nil
}

// Names returns the tag names ordered by descending vote count
func (m TagMap) Names() []string {
	type kv struct {
		name  string
		votes int
	}
	pairs := make([]kv, 0, len(m))
	for name, votes := range m {
		pairs = append(pairs, kv{name, votes})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].votes > pairs[j].votes })
	names := make([]string, len(pairs))
	for i, p := range pairs {
		names[i] = p.name
	}
	return names
}

// Has reports case-insensitive tag membership
func (m TagMap) Has(tag string) bool {
	for name := range m {
		if strings.EqualFold(name, tag) {
			return true
		}
	}
	return false
}

// App represents one app's row in a SteamSpy response. Price fields are
// strings of US cents, owners is a range string like "1,000,000 .. 2,000,000".
type App struct {
	AppID          int    `json:"appid"`
	Name           string `json:"name"`
	Developer      string `json:"developer"`
	Publisher      string `json:"publisher"`
	Genre          string `json:"genre"`
	Positive       int    `json:"positive"`
	Negative       int    `json:"negative"`
	Owners         string `json:"owners"`
	AverageForever int    `json:"average_forever"`
	Average2Weeks  int    `json:"average_2weeks"`
	MedianForever  int    `json:"median_forever"`
	Median2Weeks   int    `json:"median_2weeks"`
	CCU            int    `json:"ccu"`
	Price          string `json:"price"`
	InitialPrice   string `json:"initialprice"`
	Discount       string `json:"discount"`
	Tags           TagMap `json:"tags"`
}

// PriceCents returns the current price in US cents
func (a *App) PriceCents() int {
	return parseCents(a.Price)
}

// InitialPriceCents returns the pre-discount price in US cents
func (a *App) InitialPriceCents() int {
	return parseCents(a.InitialPrice)
}

// DiscountPct returns the current discount percentage
func (a *App) DiscountPct() int {
	return parseCents(a.Discount)
}

// ReviewScore returns the positive review percentage rounded to the nearest
// integer, 0 when unreviewed
func (a *App) ReviewScore() int {
	total := a.Positive + a.Negative
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(a.Positive) / float64(total) * 100))
}

func parseCents(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// ParseOwnersRange parses a SteamSpy owners range string into its bounds.
// Malformed input yields (0, 0).
func ParseOwnersRange(owners string) (int64, int64) {
	parts := strings.Split(owners, "..")
	if len(parts) != 2 {
		return 0, 0
	}
	min := parseOwnersNumber(parts[0])
	max := parseOwnersNumber(parts[1])
	return min, max
}

func parseOwnersNumber(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// OwnersMid returns the midpoint of the app's owners range
func (a *App) OwnersMid() int64 {
	min, max := ParseOwnersRange(a.Owners)
	return (min + max) / 2
}

// Client defines the interface for SteamSpy client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/steamspy_client.go -package=mocks -mock_names=Client=MockSteamSpyClient
type Client interface {
	// AppDetails fetches one app's stats; returns nil when SteamSpy has no data
	AppDetails(ctx context.Context, appID int) (*App, error)
	// TagGames fetches every app SteamSpy lists under a tag, keyed by app ID
	TagGames(ctx context.Context, tag string) (map[int]*App, error)
}

// SteamSpyClient implements the SteamSpy API client
type SteamSpyClient struct {
	httpClient adapter.HTTPClient
	apiBaseURL string
}

// NewClient creates a new SteamSpy client
func NewClient(httpClient adapter.HTTPClient, apiBaseURL string) Client {
	return &SteamSpyClient{
		httpClient: httpClient,
		apiBaseURL: apiBaseURL,
	}
}

// AppDetails fetches one app's stats; returns nil when SteamSpy has no data
func (c *SteamSpyClient) AppDetails(ctx context.Context, appID int) (*App, error) {
	reqURL := fmt.Sprintf("%s?request=appdetails&appid=%d", c.apiBaseURL, appID)

	var app App
	if err := c.httpClient.Get(ctx, reqURL, &app); err != nil {
		return nil, fmt.Errorf("failed to call SteamSpy API: %w", err)
	}

	// SteamSpy answers unknown apps with a row that has no name
	if app.Name == "" {
		return nil, nil
	}

	return &app, nil
}

// TagGames fetches every app SteamSpy lists under a tag, keyed by app ID
func (c *SteamSpyClient) TagGames(ctx context.Context, tag string) (map[int]*App, error) {
	reqURL := fmt.Sprintf("%s?request=tag&tag=%s", c.apiBaseURL, url.QueryEscape(tag))

	var raw map[string]*App
	if err := c.httpClient.Get(ctx, reqURL, &raw); err != nil {
		return nil, fmt.Errorf("failed to call SteamSpy API: %w", err)
	}

	apps := make(map[int]*App, len(raw))
	for key, app := range raw {
		if app == nil {
			continue
		}
		appID, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		if app.AppID == 0 {
			app.AppID = appID
		}
		apps[appID] = app
	}

	return apps, nil
}
