package collector

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/providers/steamspy"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// steamSpyDelay spaces SteamSpy calls; the API throttles aggressively
const steamSpyDelay = 1200 * time.Millisecond

// maxGameTags bounds the tag list stored on a game record
const maxGameTags = 20

// PortfolioCollector snapshots SteamSpy stats for the tracked portfolio apps
type PortfolioCollector struct {
	store    store.Store
	steamspy steamspy.Client
	clock    adapter.Clock
	limiter  *rate.Limiter
	appIDs   []int
}

// NewPortfolioCollector creates a new portfolio collector
func NewPortfolioCollector(s store.Store, client steamspy.Client, clock adapter.Clock, appIDs []int) *PortfolioCollector {
	return &PortfolioCollector{
		store:    s,
		steamspy: client,
		clock:    clock,
		limiter:  rate.NewLimiter(rate.Every(steamSpyDelay), 1),
		appIDs:   appIDs,
	}
}

// Name returns the job name used for audit rows and manual triggers
func (c *PortfolioCollector) Name() string {
	return "portfolio"
}

// Collect fetches SteamSpy stats for each portfolio app and upserts the
// game record plus today's snapshot
func (c *PortfolioCollector) Collect(ctx context.Context) (int, error) {
	if len(c.appIDs) == 0 {
		logger.Warn("no portfolio app IDs configured")
		return 0, nil
	}

	records := 0
	for _, appID := range c.appIDs {
		if err := c.limiter.Wait(ctx); err != nil {
			return records, err
		}

		if err := c.collectGame(ctx, appID, true); err != nil {
			logger.Error(err, zap.Int("app_id", appID))
			continue
		}
		records++
	}

	return records, nil
}

// CollectGame fetches SteamSpy stats for one app on demand. The portfolio
// flag on an existing game row is preserved.
func (c *PortfolioCollector) CollectGame(ctx context.Context, appID int) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	existing, err := c.store.GetGameByAppID(ctx, appID)
	if err != nil {
		return err
	}
	portfolio := existing != nil && existing.IsPortfolio

	return c.collectGame(ctx, appID, portfolio)
}

func (c *PortfolioCollector) collectGame(ctx context.Context, appID int, portfolio bool) error {
	app, err := c.steamspy.AppDetails(ctx, appID)
	if err != nil {
		return err
	}
	if app == nil {
		logger.Warn("no SteamSpy data for app", zap.Int("app_id", appID))
		return nil
	}

	if err := c.ensureGame(ctx, appID, app, portfolio); err != nil {
		return err
	}

	ownersMin, ownersMax := steamspy.ParseOwnersRange(app.Owners)
	snapshot := &schema.GameSnapshot{
		AppID:             appID,
		SnapshotDate:      c.clock.Today(),
		PriceCents:        app.PriceCents(),
		InitialPriceCents: app.InitialPriceCents(),
		DiscountPct:       app.DiscountPct(),
		OwnersMin:         ownersMin,
		OwnersMax:         ownersMax,
		CCU:               app.CCU,
		PositiveReviews:   app.Positive,
		NegativeReviews:   app.Negative,
		ReviewScore:       app.ReviewScore(),
		AverageForever:    app.AverageForever,
		Average2Weeks:     app.Average2Weeks,
	}
	if err := c.store.UpsertGameSnapshot(ctx, snapshot); err != nil {
		return err
	}

	logger.Info("collected snapshot",
		zap.String("name", app.Name),
		zap.Int("app_id", appID),
		zap.Int("ccu", app.CCU))
	return nil
}

// ensureGame creates the game record on first observation. Existing records
// are only touched to backfill fields an earlier observation left empty.
func (c *PortfolioCollector) ensureGame(ctx context.Context, appID int, app *steamspy.App, portfolio bool) error {
	existing, err := c.store.GetGameByAppID(ctx, appID)
	if err != nil {
		return err
	}

	if existing == nil {
		tags, err := marshalGameTags(app.Tags)
		if err != nil {
			return err
		}
		return c.store.UpsertGame(ctx, &schema.Game{
			AppID:       appID,
			Name:        app.Name,
			Developer:   app.Developer,
			Publisher:   app.Publisher,
			Genre:       app.Genre,
			Tags:        tags,
			IsPortfolio: portfolio,
		})
	}

	changed := false
	if existing.Developer == "" && app.Developer != "" {
		existing.Developer = app.Developer
		changed = true
	}
	if existing.Publisher == "" && app.Publisher != "" {
		existing.Publisher = app.Publisher
		changed = true
	}
	if existing.Genre == "" && app.Genre != "" {
		existing.Genre = app.Genre
		changed = true
	}
	if emptyTags(existing.Tags) && len(app.Tags) > 0 {
		tags, err := marshalGameTags(app.Tags)
		if err != nil {
			return err
		}
		existing.Tags = tags
		changed = true
	}
	if !changed {
		return nil
	}
	return c.store.UpsertGame(ctx, existing)
}

// marshalGameTags encodes tag names most voted first, capped at maxGameTags
func marshalGameTags(tags steamspy.TagMap) (datatypes.JSON, error) {
	names := tags.Names()
	if len(names) > maxGameTags {
		names = names[:maxGameTags]
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func emptyTags(tags datatypes.JSON) bool {
	s := string(tags)
	return s == "" || s == "[]" || s == "null"
}
