package collector

import (
	"context"

	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/adapter"
	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/providers/storefront"
	"github.com/firstbreaklabs/steam-intel/internal/store"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// topSellersLimit caps the ranked rows stored per category
const topSellersLimit = 50

// TopSellersCollector snapshots the storefront featured category rankings
type TopSellersCollector struct {
	store      store.Store
	storefront storefront.Client
	clock      adapter.Clock
}

// NewTopSellersCollector creates a new top sellers collector
func NewTopSellersCollector(s store.Store, client storefront.Client, clock adapter.Clock) *TopSellersCollector {
	return &TopSellersCollector{store: s, storefront: client, clock: clock}
}

// Name returns the job name used for audit rows and manual triggers
func (c *TopSellersCollector) Name() string {
	return "market"
}

// Collect replaces today's ranking snapshot for each featured category
func (c *TopSellersCollector) Collect(ctx context.Context) (int, error) {
	featured, err := c.storefront.FeaturedCategories(ctx)
	if err != nil {
		return 0, err
	}

	today := c.clock.Today()
	categories := []struct {
		name  string
		items []storefront.FeaturedItem
	}{
		{"specials", featured.Specials.Items},
		{"top_sellers", featured.TopSellers.Items},
		{"new_releases", featured.NewReleases.Items},
		{"coming_soon", featured.ComingSoon.Items},
	}

	records := 0
	for _, category := range categories {
		items := category.items
		if len(items) > topSellersLimit {
			items = items[:topSellersLimit]
		}

		rows := make([]schema.TopSellersSnapshot, 0, len(items))
		for i, item := range items {
			rows = append(rows, schema.TopSellersSnapshot{
				Category:        category.name,
				SnapshotDate:    today,
				Rank:            i + 1,
				AppID:           item.ID,
				Name:            item.Name,
				FinalPriceCents: item.FinalPrice,
				DiscountPct:     item.DiscountPercent,
			})
		}

		if err := c.store.ReplaceTopSellers(ctx, category.name, today, rows); err != nil {
			logger.Error(err, zap.String("category", category.name))
			continue
		}
		records += len(rows)
	}

	return records, nil
}
