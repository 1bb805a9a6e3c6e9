package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// decodeTags decodes a stored tag list; the collector writes them most
// voted first
func decodeTags(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil
	}
	return tags
}

// splitGenres splits the comma-separated SteamSpy genre list
func splitGenres(genre string) []string {
	if genre == "" {
		return []string{}
	}
	parts := strings.Split(genre, ",")
	genres := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			genres = append(genres, trimmed)
		}
	}
	return genres
}

// formatOwners renders an owner range like "500,000 - 1,000,000"
func formatOwners(min, max int64) string {
	return groupDigits(min) + " - " + groupDigits(max)
}

// groupDigits inserts thousands separators into a non-negative count
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// AnalyzeGame scores an arbitrary Steam app against current market data,
// fetching it on demand when it has never been snapshotted
func (h *handler) AnalyzeGame(c *gin.Context) {
	var req AnalyzeGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	game, snap, err := h.loadGameWithSnapshot(ctx, req.AppID)
	if err != nil {
		respondInternalError(c, err, "Failed to analyze game", zap.Int("app_id", req.AppID))
		return
	}
	if game == nil || snap == nil {
		respondNotFound(c, "Could not fetch game data")
		return
	}

	tags := decodeTags(game.Tags)
	topTags := tags
	if len(topTags) > 5 {
		topTags = topTags[:5]
	}

	genreScores := make([]GenreScoreBrief, 0, len(topTags))
	for _, tag := range topTags {
		score, err := h.store.GetLatestGenreScore(ctx, tag)
		if err != nil {
			respondInternalError(c, err, "Failed to analyze game", zap.Int("app_id", req.AppID))
			return
		}
		if score == nil {
			continue
		}
		genreScores = append(genreScores, GenreScoreBrief{
			Genre:          tag,
			Hotness:        int(score.Hotness),
			Saturation:     int(score.Saturation),
			Overall:        int(score.Overall),
			Recommendation: string(score.Recommendation),
		})
	}

	comparable, err := h.findComparable(ctx, topTags, req.AppID)
	if err != nil {
		respondInternalError(c, err, "Failed to analyze game", zap.Int("app_id", req.AppID))
		return
	}

	avgGenreScore := 50.0
	if len(genreScores) > 0 {
		sum := 0
		for _, gs := range genreScores {
			sum += gs.Overall
		}
		avgGenreScore = float64(sum) / float64(len(genreScores))
	}
	reviewFactor := snap.ReviewScore
	if reviewFactor > 100 {
		reviewFactor = 100
	}
	marketFit := int((avgGenreScore + float64(reviewFactor)) / 2)

	c.JSON(http.StatusOK, GameAnalysis{
		AppID:            game.AppID,
		Name:             game.Name,
		Developer:        game.Developer,
		Publisher:        game.Publisher,
		Price:            float64(snap.PriceCents) / 100,
		Genres:           splitGenres(game.Genre),
		Tags:             tags,
		OwnersEstimate:   formatOwners(snap.OwnersMin, snap.OwnersMax),
		CCU:              snap.CCU,
		AvgPlaytimeHours: round1(float64(snap.AverageForever) / 60),
		ReviewScore:      snap.ReviewScore,
		TotalReviews:     snap.PositiveReviews + snap.NegativeReviews,
		GenreScores:      genreScores,
		ComparableGames:  comparable,
		MarketFitScore:   marketFit,
		Assessment:       buildAssessment(marketFit, snap.ReviewScore, snap.CCU, genreScores),
	})
}

// loadGameWithSnapshot fetches the game row and latest snapshot, pulling the
// app from SteamSpy once when either is missing
func (h *handler) loadGameWithSnapshot(ctx context.Context, appID int) (*schema.Game, *schema.GameSnapshot, error) {
	game, err := h.store.GetGameByAppID(ctx, appID)
	if err != nil {
		return nil, nil, err
	}
	snap, err := h.store.GetLatestGameSnapshot(ctx, appID)
	if err != nil {
		return nil, nil, err
	}
	if game != nil && snap != nil {
		return game, snap, nil
	}

	if err := h.fetcher.CollectGame(ctx, appID); err != nil {
		// Fetch failures surface as not-found rather than 500: most are
		// unknown app IDs SteamSpy has nothing for.
		logger.Warn("On-demand game fetch failed", zap.Int("app_id", appID), zap.Error(err))
		return nil, nil, nil
	}

	game, err = h.store.GetGameByAppID(ctx, appID)
	if err != nil {
		return nil, nil, err
	}
	snap, err = h.store.GetLatestGameSnapshot(ctx, appID)
	if err != nil {
		return nil, nil, err
	}
	return game, snap, nil
}

// FindComparableGames retrieves games sharing tags with a probe set
func (h *handler) FindComparableGames(c *gin.Context) {
	var req ComparableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	comparable, err := h.findComparable(c.Request.Context(), req.Tags, 0)
	if err != nil {
		respondInternalError(c, err, "Failed to find comparable games")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparable_games": comparable})
}

// findComparable retrieves games overlapping the probe tags, ranked by how
// many probe tags they share
func (h *handler) findComparable(ctx context.Context, tags []string, excludeAppID int) ([]ComparableGameView, error) {
	if len(tags) == 0 {
		return []ComparableGameView{}, nil
	}

	rows, err := h.store.ListComparableGames(ctx, tags, 10)
	if err != nil {
		return nil, err
	}

	probe := make(map[string]bool, len(tags))
	for _, tag := range tags {
		probe[tag] = true
	}

	comparable := make([]ComparableGameView, 0, len(rows))
	for _, row := range rows {
		if excludeAppID != 0 && row.AppID == excludeAppID {
			continue
		}

		rowTags := decodeTags(row.Tags)
		overlap := 0
		for _, tag := range rowTags {
			if probe[tag] {
				overlap++
			}
		}
		if len(rowTags) > 5 {
			rowTags = rowTags[:5]
		}
		if rowTags == nil {
			rowTags = []string{}
		}

		comparable = append(comparable, ComparableGameView{
			AppID:       row.AppID,
			Name:        row.Name,
			Tags:        rowTags,
			TagOverlap:  overlap,
			CCU:         row.CCU,
			Owners:      formatOwners(row.OwnersMin, row.OwnersMax),
			ReviewScore: row.ReviewScore,
			Price:       float64(row.PriceCents) / 100,
		})
	}

	sort.SliceStable(comparable, func(i, j int) bool {
		return comparable[i].TagOverlap > comparable[j].TagOverlap
	})
	return comparable, nil
}

// buildAssessment renders the human-readable verdict for an analyzed game
func buildAssessment(marketFit, reviewScore, ccu int, genreScores []GenreScoreBrief) string {
	var parts []string

	switch {
	case marketFit >= 70:
		parts = append(parts, "Strong market fit based on genre trends.")
	case marketFit >= 50:
		parts = append(parts, "Moderate market fit.")
	default:
		parts = append(parts, "Challenging market positioning.")
	}

	switch {
	case reviewScore >= 80:
		parts = append(parts, "Excellent player reception.")
	case reviewScore >= 70:
		parts = append(parts, "Positive player reviews.")
	case reviewScore >= 50:
		parts = append(parts, "Mixed reviews - room for improvement.")
	default:
		parts = append(parts, "Review score indicates significant player concerns.")
	}

	switch {
	case ccu >= 1000:
		parts = append(parts, "Strong active player base.")
	case ccu >= 100:
		parts = append(parts, "Healthy concurrent player count.")
	case ccu >= 10:
		parts = append(parts, "Modest active player base.")
	default:
		parts = append(parts, "Low current player activity.")
	}

	var hot []string
	for _, gs := range genreScores {
		if gs.Recommendation == string(schema.RecommendationHot) {
			hot = append(hot, gs.Genre)
		}
	}
	if len(hot) > 0 {
		if len(hot) > 3 {
			hot = hot[:3]
		}
		parts = append(parts, "Tags in hot genres: "+strings.Join(hot, ", ")+".")
	}

	return strings.Join(parts, " ")
}
