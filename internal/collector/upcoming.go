package collector

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/providers/storefront"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// storeDetailDelay spaces the per-app store detail fetches
const storeDetailDelay = 500 * time.Millisecond

// gameplayCategories maps storefront category IDs to gameplay-relevant
// pseudo-tags; the rest (controller support, cloud saves) carry no signal
var gameplayCategories = map[int]string{
	1:  "Multi-player",
	2:  "Single-player",
	9:  "Co-op",
	20: "MMO",
	24: "Local Co-op",
	27: "Cross-Platform",
	36: "Online Co-op",
	37: "Local Multi-player",
	38: "Online PvP",
}

// hypePublishers are indie publishers whose involvement signals market interest
var hypePublishers = map[string]struct{}{
	"devolver digital":      {},
	"raw fury":              {},
	"team17":                {},
	"annapurna interactive": {},
}

// hotGenreFragments boost the hype score when a genre description contains one
var hotGenreFragments = []string{"roguelike", "roguelite", "deck builder", "survival", "horror"}

var (
	yearPattern    = regexp.MustCompile(`20\d{2}`)
	quarterPattern = regexp.MustCompile(`Q([1-4])`)
)

// UpcomingCollector discovers unreleased apps from the storefront coming-soon
// feed and enriches each with store page detail and a derived hype score
type UpcomingCollector struct {
	store      store.Store
	storefront storefront.Client
	limiter    *rate.Limiter
}

// NewUpcomingCollector creates a new upcoming releases collector
func NewUpcomingCollector(s store.Store, client storefront.Client) *UpcomingCollector {
	return &UpcomingCollector{
		store:      s,
		storefront: client,
		limiter:    rate.NewLimiter(rate.Every(storeDetailDelay), 1),
	}
}

// Name returns the job name used for audit rows and manual triggers
func (c *UpcomingCollector) Name() string {
	return "upcoming"
}

// Collect walks the coming-soon feed and upserts one row per app
func (c *UpcomingCollector) Collect(ctx context.Context) (int, error) {
	featured, err := c.storefront.FeaturedCategories(ctx)
	if err != nil {
		return 0, err
	}

	items := featured.ComingSoon.Items
	logger.Info("found coming soon items", zap.Int("count", len(items)))

	records := 0
	for _, item := range items {
		if item.ID == 0 {
			continue
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return records, err
		}

		if err := c.processItem(ctx, item); err != nil {
			logger.Error(err, zap.Int("app_id", item.ID))
			continue
		}
		records++
	}

	return records, nil
}

func (c *UpcomingCollector) processItem(ctx context.Context, item storefront.FeaturedItem) error {
	detail, err := c.storefront.AppDetails(ctx, item.ID)
	if err != nil {
		// Detail fetch failures degrade to the listing data
		logger.Debug("could not get details for app", zap.Int("app_id", item.ID), zap.Error(err))
		detail = nil
	}

	var release *schema.UpcomingRelease
	if detail == nil {
		price := item.FinalPrice
		if price == 0 {
			price = item.OriginalPrice
		}
		release = &schema.UpcomingRelease{
			AppID:      item.ID,
			Name:       item.Name,
			PriceCents: price,
			HypeScore:  50,
			Source:     schema.UpcomingSourceFeatured,
		}
	} else {
		release = buildRelease(item.ID, detail)
	}

	if err := c.store.UpsertUpcomingRelease(ctx, release); err != nil {
		return err
	}

	logger.Info("processed upcoming release", zap.String("name", release.Name), zap.Int("app_id", item.ID))
	return nil
}

// buildRelease assembles the row from a store detail page
func buildRelease(appID int, detail *storefront.AppDetail) *schema.UpcomingRelease {
	genres := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genres = append(genres, g.Description)
	}
	genresJSON, _ := json.Marshal(genres)

	tags := extractCategoryTags(detail.Categories)
	tagsJSON, _ := json.Marshal(tags)
	devsJSON, _ := json.Marshal(detail.Developers)
	pubsJSON, _ := json.Marshal(detail.Publishers)

	price := 0
	if detail.PriceOverview != nil {
		price = detail.PriceOverview.Initial
	}

	return &schema.UpcomingRelease{
		AppID:          appID,
		Name:           detail.Name,
		ReleaseDate:    ParseReleaseDate(detail.ReleaseDate),
		ReleaseDateRaw: detail.ReleaseDate.Date,
		Genres:         datatypes.JSON(genresJSON),
		Tags:           datatypes.JSON(tagsJSON),
		Developers:     datatypes.JSON(devsJSON),
		Publishers:     datatypes.JSON(pubsJSON),
		PriceCents:     price,
		HasDemo:        len(detail.Demos) > 0,
		HypeScore:      HypeScore(detail),
		Source:         schema.UpcomingSourceStoreAPI,
	}
}

// ParseReleaseDate interprets the storefront's loose release date strings.
// Returns nil when no date can be derived ("Coming soon", "TBA").
func ParseReleaseDate(info storefront.ReleaseDate) *time.Time {
	dateStr := info.Date

	if dateStr == "" || info.ComingSoon {
		// Heuristics for "Q1 2026", "2026" and similar announcements
		yearMatch := yearPattern.FindString(dateStr)
		if yearMatch == "" {
			return nil
		}
		year, _ := strconv.Atoi(yearMatch)

		if quarterMatch := quarterPattern.FindStringSubmatch(dateStr); quarterMatch != nil {
			quarter, _ := strconv.Atoi(quarterMatch[1])
			// Middle of the quarter
			t := time.Date(year, time.Month((quarter-1)*3+2), 15, 0, 0, 0, 0, time.UTC)
			return &t
		}

		// Year only, assume mid-year
		t := time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
		return &t
	}

	formats := []string{
		"Jan 2, 2006",
		"2 Jan, 2006",
		"January 2, 2006",
		"2006-01-02",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}

	return nil
}

// extractCategoryTags keeps gameplay-relevant category descriptions as tags
func extractCategoryTags(categories []storefront.Descriptor) []string {
	tags := []string{}
	for _, cat := range categories {
		id, err := cat.ID.Int64()
		if err != nil {
			continue
		}
		if tag, ok := gameplayCategories[int(id)]; ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HypeScore estimates 0-100 interest from store page signals
func HypeScore(detail *storefront.AppDetail) int {
	score := 50

	// Media presence reads as production polish
	if len(detail.Screenshots) > 0 {
		score += 5
	}
	if len(detail.Movies) > 0 {
		score += 10
	}

	// Shipping a demo pre-release signals confidence
	if len(detail.Demos) > 0 {
		score += 15
	}

	if len(detail.Publishers) > 0 {
		if _, ok := hypePublishers[strings.ToLower(detail.Publishers[0])]; ok {
			score += 20
		}
	}

	for _, g := range detail.Genres {
		genre := strings.ToLower(g.Description)
		matched := false
		for _, hot := range hotGenreFragments {
			if strings.Contains(genre, hot) {
				score += 10
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}
