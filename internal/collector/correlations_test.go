package collector

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

func genreGameRow(appID int, name string, ccu int, tags string) schema.GenreGame {
	return schema.GenreGame{
		AppID:       appID,
		Name:        name,
		CCU:         ccu,
		ReviewScore: 90,
		PriceCents:  1999,
		Tags:        datatypes.JSON(tags),
	}
}

func TestMergeGenreGames(t *testing.T) {
	rows := []schema.GenreGame{
		genreGameRow(646570, "Slay the Spire", 12000, `["Roguelike","Deck Building"]`),
		// Same app from another genre sweep, lower CCU, extra tag
		genreGameRow(646570, "Slay the Spire", 11000, `["Card Game"]`),
		genreGameRow(1092790, "Inscryption", 4000, `["Horror","Deck Building"]`),
	}

	games := mergeGenreGames(rows)
	require.Len(t, games, 2)

	sts := games[646570]
	assert.Equal(t, 12000, sts.CCU)
	assert.Len(t, sts.Tags, 3)
	assert.True(t, sts.hasTag("Card Game"))
	assert.True(t, sts.hasTag("roguelike"))
}

func TestMergeGenreGames_KeepsMaxCCUFromLaterRow(t *testing.T) {
	rows := []schema.GenreGame{
		genreGameRow(646570, "Slay the Spire", 9000, `["Roguelike"]`),
		genreGameRow(646570, "Slay the Spire", 12000, `["Deck Building"]`),
	}

	games := mergeGenreGames(rows)
	assert.Equal(t, 12000, games[646570].CCU)
}

func TestAnalyzeTagPair(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	games := mergeGenreGames([]schema.GenreGame{
		genreGameRow(1, "A", 10000, `["Roguelike","Deck Building"]`),
		genreGameRow(2, "B", 6000, `["Roguelike","Deck Building"]`),
		genreGameRow(3, "C", 2000, `["Roguelike"]`),
		genreGameRow(4, "D", 500, `["Deck Building"]`),
		genreGameRow(5, "E", 100, `["Horror"]`),
	})

	correlation := analyzeTagPair(TagPair{A: "Roguelike", B: "Deck Building"}, games, date)
	require.NotNil(t, correlation)

	assert.Equal(t, "Roguelike", correlation.TagA)
	assert.Equal(t, date, correlation.SnapshotDate)
	assert.Equal(t, 3, correlation.CountA)
	assert.Equal(t, 3, correlation.CountB)
	assert.Equal(t, 2, correlation.CoOccurrence)
	// 2 common over min(3, 3)
	assert.InDelta(t, 0.6667, correlation.Strength, 0.001)
	assert.Equal(t, int64(16000), correlation.CombinedCCU)
	assert.Equal(t, 90.0, correlation.AvgReviewScore)
	assert.Equal(t, 1999, correlation.AvgPriceCents)
	assert.JSONEq(t, `[
		{"app_id": 1, "name": "A", "ccu": 10000, "review_score": 90},
		{"app_id": 2, "name": "B", "ccu": 6000, "review_score": 90}
	]`, string(correlation.TopGames))
}

func TestAnalyzeTagPair_NoCoOccurrence(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	games := mergeGenreGames([]schema.GenreGame{
		genreGameRow(1, "A", 10000, `["Roguelike"]`),
		genreGameRow(2, "B", 6000, `["Farming Sim"]`),
	})

	assert.Nil(t, analyzeTagPair(TagPair{A: "Roguelike", B: "Farming Sim"}, games, date))
}

func TestAnalyzeTagPair_CaseInsensitiveMembership(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	games := mergeGenreGames([]schema.GenreGame{
		genreGameRow(1, "A", 10000, `["roguelike","deck building"]`),
	})

	correlation := analyzeTagPair(TagPair{A: "Roguelike", B: "Deck Building"}, games, date)
	require.NotNil(t, correlation)
	assert.Equal(t, 1, correlation.CoOccurrence)
	assert.Equal(t, 1.0, correlation.Strength)
}

func TestAnalyzeTagPair_TopGamesCapAtFive(t *testing.T) {
	date := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	rows := make([]schema.GenreGame, 0, 7)
	for i := 1; i <= 7; i++ {
		rows = append(rows, genreGameRow(i, "G", i*1000, `["Horror","Survival"]`))
	}
	games := mergeGenreGames(rows)

	correlation := analyzeTagPair(TagPair{A: "Horror", B: "Survival"}, games, date)
	require.NotNil(t, correlation)
	assert.Equal(t, 7, correlation.CoOccurrence)

	var top []map[string]interface{}
	require.NoError(t, json.Unmarshal(correlation.TopGames, &top))
	require.Len(t, top, 5)
	// Ordered by CCU descending
	assert.Equal(t, float64(7000), top[0]["ccu"])
	assert.Equal(t, float64(3000), top[4]["ccu"])
}
