package collector

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstbreaklabs/steam-intel/internal/mocks"
	"github.com/firstbreaklabs/steam-intel/internal/providers/storefront"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

func TestParseReleaseDate_ExactFormats(t *testing.T) {
	tests := []struct {
		raw      string
		expected time.Time
	}{
		{"Oct 3, 2026", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
		{"3 Oct, 2026", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
		{"October 3, 2026", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
		{"2026-10-03", time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		got := ParseReleaseDate(storefront.ReleaseDate{Date: tc.raw})
		require.NotNil(t, got, "raw %q", tc.raw)
		assert.Equal(t, tc.expected, *got, "raw %q", tc.raw)
	}
}

func TestParseReleaseDate_Announcements(t *testing.T) {
	tests := []struct {
		raw      string
		expected *time.Time
	}{
		{"Q1 2027", timePtr(time.Date(2027, 2, 15, 0, 0, 0, 0, time.UTC))},
		{"Q3 2026", timePtr(time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))},
		{"Q4 2026", timePtr(time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC))},
		{"2027", timePtr(time.Date(2027, 6, 15, 0, 0, 0, 0, time.UTC))},
		{"Coming soon", nil},
		{"TBA", nil},
		{"", nil},
	}

	for _, tc := range tests {
		got := ParseReleaseDate(storefront.ReleaseDate{Date: tc.raw, ComingSoon: true})
		if tc.expected == nil {
			assert.Nil(t, got, "raw %q", tc.raw)
			continue
		}
		require.NotNil(t, got, "raw %q", tc.raw)
		assert.Equal(t, *tc.expected, *got, "raw %q", tc.raw)
	}
}

func TestParseReleaseDate_ComingSoonOverridesExactDate(t *testing.T) {
	// While the coming_soon flag is set the store shows announcement text,
	// so a parseable-looking date still goes through the heuristics
	got := ParseReleaseDate(storefront.ReleaseDate{Date: "Q2 2026", ComingSoon: true})
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC), *got)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestHypeScore_Baseline(t *testing.T) {
	assert.Equal(t, 50, HypeScore(&storefront.AppDetail{}))
}

func TestHypeScore_Composition(t *testing.T) {
	detail := &storefront.AppDetail{
		Screenshots: []json.RawMessage{[]byte(`{}`)},
		Movies:      []json.RawMessage{[]byte(`{}`)},
		Demos:       []json.RawMessage{[]byte(`{}`)},
		Publishers:  []string{"Devolver Digital"},
		Genres: []storefront.Descriptor{
			{Description: "Action Roguelike"},
		},
	}

	// 50 + 5 screenshots + 10 movies + 15 demo + 20 publisher + 10 genre = 110, capped
	assert.Equal(t, 100, HypeScore(detail))
}

func TestHypeScore_GenreBonusAppliedOnce(t *testing.T) {
	detail := &storefront.AppDetail{
		Genres: []storefront.Descriptor{
			{Description: "Roguelite"},
			{Description: "Survival"},
			{Description: "Horror"},
		},
	}

	assert.Equal(t, 60, HypeScore(detail))
}

func TestHypeScore_PublisherMatchIsFirstOnly(t *testing.T) {
	detail := &storefront.AppDetail{
		Publishers: []string{"Some Label", "Raw Fury"},
	}

	// Only the primary publisher counts
	assert.Equal(t, 50, HypeScore(detail))
}

func TestBuildRelease(t *testing.T) {
	detail := &storefront.AppDetail{
		Name: "Cathedral of Rust",
		ReleaseDate: storefront.ReleaseDate{
			ComingSoon: true,
			Date:       "Q4 2026",
		},
		Genres: []storefront.Descriptor{
			{Description: "Indie"},
			{Description: "Horror"},
		},
		Categories: []storefront.Descriptor{
			{ID: json.Number("2"), Description: "Single-player"},
			{ID: json.Number("23"), Description: "Steam Cloud"},
			{ID: json.Number("9"), Description: "Co-op"},
		},
		Developers:    []string{"Rust Belt Games"},
		Publishers:    []string{"Raw Fury"},
		PriceOverview: &storefront.PriceOverview{Initial: 2499, Final: 2499},
		Demos:         []json.RawMessage{[]byte(`{}`)},
	}

	release := buildRelease(2210460, detail)

	assert.Equal(t, 2210460, release.AppID)
	assert.Equal(t, "Cathedral of Rust", release.Name)
	require.NotNil(t, release.ReleaseDate)
	assert.Equal(t, time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC), *release.ReleaseDate)
	assert.Equal(t, "Q4 2026", release.ReleaseDateRaw)
	assert.JSONEq(t, `["Indie","Horror"]`, string(release.Genres))
	// Non-gameplay categories are dropped
	assert.JSONEq(t, `["Single-player","Co-op"]`, string(release.Tags))
	assert.JSONEq(t, `["Rust Belt Games"]`, string(release.Developers))
	assert.JSONEq(t, `["Raw Fury"]`, string(release.Publishers))
	assert.Equal(t, 2499, release.PriceCents)
	assert.True(t, release.HasDemo)
	// 50 + 15 demo + 20 publisher + 10 genre = 95
	assert.Equal(t, 95, release.HypeScore)
	assert.Equal(t, schema.UpcomingSourceStoreAPI, release.Source)
}

func TestUpcomingCollector_DetailFailureFallsBackToListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockStorefront := mocks.NewMockStorefrontClient(ctrl)

	collector := NewUpcomingCollector(mockStore, mockStorefront)

	ctx := context.Background()
	featured := &storefront.FeaturedCategories{}
	featured.ComingSoon.Items = []storefront.FeaturedItem{
		{ID: 2210460, Name: "Cathedral of Rust", FinalPrice: 0, OriginalPrice: 2499},
	}

	mockStorefront.EXPECT().FeaturedCategories(ctx).Return(featured, nil).Times(1)
	mockStorefront.EXPECT().AppDetails(ctx, 2210460).Return(nil, errors.New("rate limited")).Times(1)

	mockStore.EXPECT().
		UpsertUpcomingRelease(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, release *schema.UpcomingRelease) error {
			assert.Equal(t, 2210460, release.AppID)
			assert.Equal(t, "Cathedral of Rust", release.Name)
			assert.Equal(t, 2499, release.PriceCents)
			assert.Equal(t, 50, release.HypeScore)
			assert.Equal(t, schema.UpcomingSourceFeatured, release.Source)
			return nil
		}).
		Times(1)

	count, err := collector.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
