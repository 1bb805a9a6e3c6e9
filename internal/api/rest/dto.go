package rest

import "encoding/json"

// GameStats is the current view of one game, joined from the game row and
// its latest snapshot
type GameStats struct {
	AppID            int     `json:"app_id"`
	Name             string  `json:"name"`
	Developer        string  `json:"developer,omitempty"`
	ReleaseDate      *string `json:"release_date"`
	Price            float64 `json:"price"`
	OwnersMin        int64   `json:"owners_min"`
	OwnersMax        int64   `json:"owners_max"`
	CCU              int     `json:"ccu"`
	ReviewsPositive  int     `json:"reviews_positive"`
	ReviewsNegative  int     `json:"reviews_negative"`
	ReviewScore      int     `json:"review_score"`
	AvgPlaytimeHours float64 `json:"avg_playtime_hours"`
	SnapshotDate     string  `json:"snapshot_date"`
}

// PortfolioSummary is the response for GET /portfolio
type PortfolioSummary struct {
	TotalGames     int         `json:"total_games"`
	TotalCCU       int         `json:"total_ccu"`
	TotalReviews   int         `json:"total_reviews"`
	AvgReviewScore float64     `json:"avg_review_score"`
	Games          []GameStats `json:"games"`
}

// HistoryPoint is a single day in a game's snapshot history
type HistoryPoint struct {
	Date            string `json:"date"`
	CCU             int    `json:"ccu"`
	ReviewsPositive int    `json:"reviews_positive"`
	ReviewsNegative int    `json:"reviews_negative"`
	ReviewScore     int    `json:"review_score"`
}

// WowMetric compares one counter against roughly a week ago
type WowMetric struct {
	Current   int      `json:"current"`
	Previous  *int     `json:"previous"`
	ChangePct *float64 `json:"change_pct,omitempty"`
	Change    *int     `json:"change,omitempty"`
}

// WowReviews tracks review volume over the week
type WowReviews struct {
	Current     int  `json:"current"`
	NewThisWeek *int `json:"new_this_week"`
}

// WeekOverWeek is the response for GET /portfolio/:app_id/wow
type WeekOverWeek struct {
	AppID        int        `json:"app_id"`
	CurrentDate  string     `json:"current_date"`
	PreviousDate *string    `json:"previous_date"`
	CCU          WowMetric  `json:"ccu"`
	Reviews      WowReviews `json:"reviews"`
	ReviewScore  WowMetric  `json:"review_score"`
}

// GenreStats is the response row for GET /market/genres
type GenreStats struct {
	Genre          string          `json:"genre"`
	GameCount      int             `json:"game_count"`
	TotalCCU       int64           `json:"total_ccu"`
	AvgCCU         int             `json:"avg_ccu"`
	AvgReviewScore float64         `json:"avg_review_score"`
	TopGames       json.RawMessage `json:"top_games"`
	SnapshotDate   string          `json:"snapshot_date"`
}

// GenreScoreView is the response for GET /market/genres/:genre/score
type GenreScoreView struct {
	Genre           string `json:"genre"`
	HotnessScore    int    `json:"hotness_score"`
	SaturationScore int    `json:"saturation_score"`
	SuccessScore    int    `json:"success_rate_score"`
	TimingScore     int    `json:"timing_score"`
	OverallScore    int    `json:"overall_score"`
	Recommendation  string `json:"recommendation"`
	ScoreDate       string `json:"score_date"`
}

// TrendingGenre is a row in the GET /market/trending response
type TrendingGenre struct {
	Genre       string  `json:"genre"`
	CurrentCCU  int64   `json:"current_ccu"`
	PreviousCCU int64   `json:"previous_ccu"`
	ChangePct   float64 `json:"change_pct"`
	Direction   string  `json:"direction"`
}

// TopSellerEntry is one ranked row in a category snapshot
type TopSellerEntry struct {
	Rank            int    `json:"rank"`
	AppID           int    `json:"app_id"`
	Name            string `json:"name"`
	FinalPriceCents int    `json:"final_price_cents"`
	DiscountPct     int    `json:"discount_pct"`
}

// TopSellers is the response for GET /market/top-sellers
type TopSellers struct {
	Category     string           `json:"category"`
	SnapshotDate string           `json:"snapshot_date"`
	Rankings     []TopSellerEntry `json:"rankings"`
}

// HeatmapGenre is one cell of the basic genre heat map
type HeatmapGenre struct {
	Genre          string          `json:"genre"`
	Hotness        int             `json:"hotness"`
	Saturation     int             `json:"saturation"`
	SuccessRate    int             `json:"success_rate"`
	Timing         int             `json:"timing"`
	Overall        int             `json:"overall"`
	Recommendation string          `json:"recommendation"`
	TotalCCU       int64           `json:"total_ccu"`
	GameCount      int             `json:"game_count"`
	AvgReviewScore float64         `json:"avg_review_score"`
	TopGames       json.RawMessage `json:"top_games"`
}

// Heatmap is the response for GET /market/heatmap
type Heatmap struct {
	Genres       []HeatmapGenre `json:"genres"`
	SnapshotDate *string        `json:"snapshot_date"`
}

// UpcomingTeaser is a compressed upcoming release used inside the enhanced
// heat map
type UpcomingTeaser struct {
	Name            string  `json:"name"`
	ExpectedRelease *string `json:"expected_release"`
	HypeScore       int     `json:"hype_score"`
}

// PriceDistribution exposes the genre price bucket counts
type PriceDistribution struct {
	Free   int `json:"free"`
	Under5 int `json:"under_5"`
	From5  int `json:"5_to_10"`
	From10 int `json:"10_to_20"`
	From20 int `json:"20_to_30"`
	Over30 int `json:"over_30"`
}

// EnhancedHeatmapGenre is one cell of the enhanced genre heat map
type EnhancedHeatmapGenre struct {
	Genre          string `json:"genre"`
	Hotness        int    `json:"hotness"`
	Saturation     int    `json:"saturation"`
	SuccessRate    int    `json:"success_rate"`
	Timing         int    `json:"timing"`
	Overall        int    `json:"overall"`
	Recommendation string `json:"recommendation"`

	GrowthVelocity   float64 `json:"growth_velocity"`
	TrendDirection   string  `json:"trend_direction"`
	CompetitionScore int     `json:"competition_score"`
	RevenuePotential int     `json:"revenue_potential"`
	Discoverability  int     `json:"discoverability"`

	AvgPriceCents     int               `json:"avg_price_cents"`
	MedianPriceCents  int               `json:"median_price_cents"`
	PriceDistribution PriceDistribution `json:"price_distribution"`

	ReleasesLast30d int     `json:"releases_last_30d"`
	ReleasesLast90d int     `json:"releases_last_90d"`
	EarlyAccessPct  float64 `json:"early_access_pct"`

	TotalCCU                int64   `json:"total_ccu"`
	GameCount               int     `json:"game_count"`
	RevenueEstimateMillions float64 `json:"revenue_estimate_millions"`

	UpcomingReleasesCount int              `json:"upcoming_releases_count"`
	TopUpcoming           []UpcomingTeaser `json:"top_upcoming"`

	TopTags  json.RawMessage `json:"top_tags"`
	TopGames json.RawMessage `json:"top_games"`
}

// EnhancedHeatmap is the response for GET /market/heatmap/enhanced
type EnhancedHeatmap struct {
	Genres       []EnhancedHeatmapGenre `json:"genres"`
	SnapshotDate *string                `json:"snapshot_date"`
}

// HeatmapHistoryGenre is a genre's monthly score average
type HeatmapHistoryGenre struct {
	Genre          string  `json:"genre"`
	Hotness        int     `json:"hotness"`
	Saturation     int     `json:"saturation"`
	Overall        int     `json:"overall"`
	Recommendation string  `json:"recommendation"`
	GrowthVelocity float64 `json:"growth_velocity"`
	TrendDirection string  `json:"trend_direction"`
}

// HeatmapHistoryMonth groups genre averages for one calendar month
type HeatmapHistoryMonth struct {
	Month  string                `json:"month"`
	Genres []HeatmapHistoryGenre `json:"genres"`
}

// HeatmapHistory is the response for GET /market/heatmap/history
type HeatmapHistory struct {
	History []HeatmapHistoryMonth `json:"history"`
}

// TrendWeek is one week of genre CCU movement
type TrendWeek struct {
	WeekStart    string  `json:"week_start"`
	TotalCCU     int64   `json:"total_ccu"`
	GameCount    int     `json:"game_count"`
	CCUChangePct float64 `json:"ccu_change_pct"`
	TrendLabel   string  `json:"trend_label"`
}

// GenreTrends is the response for GET /market/trends?genre=
type GenreTrends struct {
	Genre        string      `json:"genre"`
	Weeks        []TrendWeek `json:"weeks"`
	OverallTrend string      `json:"overall_trend"`
}

// AllTrends is the response for GET /market/trends without a genre filter
type AllTrends struct {
	Genres map[string][]TrendWeek `json:"genres"`
}

// TagCombo is one profitable tag pairing
type TagCombo struct {
	Tags                []string        `json:"tags"`
	GameCount           int             `json:"game_count"`
	TotalCCU            int64           `json:"total_ccu"`
	AvgReviewScore      float64         `json:"avg_review_score"`
	AvgPriceCents       int             `json:"avg_price_cents"`
	CorrelationStrength float64         `json:"correlation_strength"`
	TopGames            json.RawMessage `json:"top_games"`
}

// TagCombos is the response for GET /market/tag-combos
type TagCombos struct {
	Combinations []TagCombo `json:"combinations"`
	SnapshotDate *string    `json:"snapshot_date"`
}

// UpcomingReleaseView is one row in GET /market/upcoming
type UpcomingReleaseView struct {
	AppID            int             `json:"app_id"`
	Name             string          `json:"name"`
	Developers       json.RawMessage `json:"developers"`
	Publishers       json.RawMessage `json:"publishers"`
	ExpectedRelease  *string         `json:"expected_release"`
	ReleaseDateRaw   string          `json:"release_date_raw"`
	Genres           json.RawMessage `json:"genres"`
	Tags             json.RawMessage `json:"tags"`
	PriceCents       int             `json:"price_cents"`
	HasDemo          bool            `json:"has_demo"`
	HypeScore        int             `json:"hype_score"`
}

// UpcomingReleases is the response for GET /market/upcoming
type UpcomingReleases struct {
	Releases   []UpcomingReleaseView `json:"releases"`
	TotalCount int                   `json:"total_count"`
}

// GenreScoreFull is one row in GET /market/scores/all
type GenreScoreFull struct {
	Genre                 string  `json:"genre"`
	HotnessScore          int     `json:"hotness_score"`
	SaturationScore       int     `json:"saturation_score"`
	SuccessScore          int     `json:"success_rate_score"`
	TimingScore           int     `json:"timing_score"`
	OverallScore          int     `json:"overall_score"`
	Recommendation        string  `json:"recommendation"`
	GrowthVelocity        float64 `json:"growth_velocity"`
	TrendDirection        string  `json:"trend_direction"`
	CompetitionScore      int     `json:"competition_score"`
	RevenuePotentialScore int     `json:"revenue_potential_score"`
	DiscoverabilityScore  int     `json:"discoverability_score"`
	ScoreDate             string  `json:"score_date"`
}

// AnalyzeGameRequest is the body for POST /analyze/game
type AnalyzeGameRequest struct {
	AppID int `json:"app_id" binding:"required"`
}

// ComparableRequest is the body for POST /analyze/comparable
type ComparableRequest struct {
	Tags     []string `json:"tags" binding:"required"`
	PriceMin *float64 `json:"price_min"`
	PriceMax *float64 `json:"price_max"`
}

// GenreScoreBrief is a game's tag scored against current genre data
type GenreScoreBrief struct {
	Genre          string `json:"genre"`
	Hotness        int    `json:"hotness"`
	Saturation     int    `json:"saturation"`
	Overall        int    `json:"overall"`
	Recommendation string `json:"recommendation"`
}

// ComparableGameView is one game sharing tags with the analyzed title
type ComparableGameView struct {
	AppID       int      `json:"app_id"`
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	TagOverlap  int      `json:"tag_overlap"`
	CCU         int      `json:"ccu"`
	Owners      string   `json:"owners"`
	ReviewScore int      `json:"review_score"`
	Price       float64  `json:"price"`
}

// GameAnalysis is the response for POST /analyze/game
type GameAnalysis struct {
	AppID     int      `json:"app_id"`
	Name      string   `json:"name"`
	Developer string   `json:"developer,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	Price     float64  `json:"price"`
	Genres    []string `json:"genres"`
	Tags      []string `json:"tags"`

	OwnersEstimate   string  `json:"owners_estimate"`
	CCU              int     `json:"ccu"`
	AvgPlaytimeHours float64 `json:"avg_playtime_hours"`
	ReviewScore      int     `json:"review_score"`
	TotalReviews     int     `json:"total_reviews"`

	GenreScores     []GenreScoreBrief    `json:"genre_scores"`
	ComparableGames []ComparableGameView `json:"comparable_games"`

	MarketFitScore int    `json:"market_fit_score"`
	Assessment     string `json:"assessment"`
}

// RevenueByGame is one game's aggregate inside the revenue summary
type RevenueByGame struct {
	AppID      int    `json:"app_id"`
	Name       string `json:"name"`
	GrossCents int64  `json:"gross_cents"`
	NetCents   int64  `json:"net_cents"`
	Units      int64  `json:"units"`
}

// RevenueSummary is the response for GET /revenue/summary
type RevenueSummary struct {
	TotalGrossCents int64           `json:"total_gross_cents"`
	TotalNetCents   int64           `json:"total_net_cents"`
	TotalUnits      int64           `json:"total_units"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	ByGame          []RevenueByGame `json:"by_game"`
}

// RevenuePeriod is one reporting period of a game's revenue
type RevenuePeriod struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Granularity string `json:"granularity"`
	Source      string `json:"source"`
	GrossCents  int64  `json:"gross_cents"`
	NetCents    int64  `json:"net_cents"`
	Units       int    `json:"units"`
	Refunds     int    `json:"refunds"`
}

// GameRevenue is the response for GET /revenue/:app_id
type GameRevenue struct {
	AppID           int             `json:"app_id"`
	Name            string          `json:"name"`
	TotalGrossCents int64           `json:"total_gross_cents"`
	TotalNetCents   int64           `json:"total_net_cents"`
	TotalUnits      int64           `json:"total_units"`
	Periods         []RevenuePeriod `json:"periods"`
}

// UploadResult is the response for POST /revenue/upload
type UploadResult struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// CollectionRunView is one audit row in GET /admin/runs
type CollectionRunView struct {
	ID             string  `json:"id"`
	Job            string  `json:"job"`
	Status         string  `json:"status"`
	ItemsProcessed int     `json:"items_processed"`
	StartedAt      string  `json:"started_at"`
	FinishedAt     *string `json:"finished_at"`
	Error          string  `json:"error,omitempty"`
}

// TriggerResult is the response for POST /admin/collect/:job
type TriggerResult struct {
	TriggerID string `json:"trigger_id"`
	Job       string `json:"job"`
	Status    string `json:"status"`
}
