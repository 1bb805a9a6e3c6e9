package rest

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// gameStatsFrom joins a game row with one of its snapshots
func gameStatsFrom(game *schema.Game, snap *schema.GameSnapshot) GameStats {
	return GameStats{
		AppID:            game.AppID,
		Name:             game.Name,
		Developer:        game.Developer,
		ReleaseDate:      dateStringPtr(game.ReleaseDate),
		Price:            float64(snap.PriceCents) / 100,
		OwnersMin:        snap.OwnersMin,
		OwnersMax:        snap.OwnersMax,
		CCU:              snap.CCU,
		ReviewsPositive:  snap.PositiveReviews,
		ReviewsNegative:  snap.NegativeReviews,
		ReviewScore:      snap.ReviewScore,
		AvgPlaytimeHours: round1(float64(snap.AverageForever) / 60),
		SnapshotDate:     dateString(snap.SnapshotDate),
	}
}

// GetPortfolioSummary retrieves tracked portfolio games with their latest
// snapshots and portfolio-wide totals
func (h *handler) GetPortfolioSummary(c *gin.Context) {
	ctx := c.Request.Context()

	games, err := h.store.ListPortfolioGames(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to load portfolio")
		return
	}

	summary := PortfolioSummary{
		TotalGames: len(games),
		Games:      make([]GameStats, 0, len(games)),
	}

	scored := 0
	scoreSum := 0
	for i := range games {
		snap, err := h.store.GetLatestGameSnapshot(ctx, games[i].AppID)
		if err != nil {
			respondInternalError(c, err, "Failed to load portfolio", zap.Int("app_id", games[i].AppID))
			return
		}
		if snap == nil {
			continue
		}

		stats := gameStatsFrom(&games[i], snap)
		summary.Games = append(summary.Games, stats)
		summary.TotalCCU += stats.CCU
		summary.TotalReviews += stats.ReviewsPositive + stats.ReviewsNegative
		if stats.ReviewScore > 0 {
			scored++
			scoreSum += stats.ReviewScore
		}
	}

	if scored > 0 {
		summary.AvgReviewScore = round1(float64(scoreSum) / float64(scored))
	}

	sort.Slice(summary.Games, func(i, j int) bool {
		return summary.Games[i].CCU > summary.Games[j].CCU
	})

	c.JSON(http.StatusOK, summary)
}

// GetGameStats retrieves one game's latest snapshot
func (h *handler) GetGameStats(c *gin.Context) {
	appID, err := parseAppID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	game, err := h.store.GetGameByAppID(ctx, appID)
	if err != nil {
		respondInternalError(c, err, "Failed to load game")
		return
	}
	if game == nil {
		respondNotFound(c, "Game not found")
		return
	}

	snap, err := h.store.GetLatestGameSnapshot(ctx, appID)
	if err != nil {
		respondInternalError(c, err, "Failed to load game stats")
		return
	}
	if snap == nil {
		respondNotFound(c, "No stats available")
		return
	}

	c.JSON(http.StatusOK, gameStatsFrom(game, snap))
}

// GetGameHistory retrieves one game's daily snapshot history
func (h *handler) GetGameHistory(c *gin.Context) {
	appID, err := parseAppID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	days, err := parsePeriodDays(c, "period", 30)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	game, err := h.store.GetGameByAppID(ctx, appID)
	if err != nil {
		respondInternalError(c, err, "Failed to load game")
		return
	}
	if game == nil {
		respondNotFound(c, "Game not found")
		return
	}

	since := h.clock.Today().AddDate(0, 0, -days)
	snaps, err := h.store.GetGameSnapshotHistory(ctx, appID, since)
	if err != nil {
		respondInternalError(c, err, "Failed to load game history")
		return
	}

	history := make([]HistoryPoint, 0, len(snaps))
	for _, snap := range snaps {
		history = append(history, HistoryPoint{
			Date:            dateString(snap.SnapshotDate),
			CCU:             snap.CCU,
			ReviewsPositive: snap.PositiveReviews,
			ReviewsNegative: snap.NegativeReviews,
			ReviewScore:     snap.ReviewScore,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"app_id":  appID,
		"name":    game.Name,
		"history": history,
	})
}

// GetGameWow compares one game's latest snapshot against roughly a week ago
func (h *handler) GetGameWow(c *gin.Context) {
	appID, err := parseAppID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()

	current, err := h.store.GetLatestGameSnapshot(ctx, appID)
	if err != nil {
		respondInternalError(c, err, "Failed to load game stats")
		return
	}
	if current == nil {
		respondNotFound(c, "No stats available")
		return
	}

	cutoff := current.SnapshotDate.AddDate(0, 0, -7)
	previous, err := h.store.GetGameSnapshotBefore(ctx, appID, cutoff)
	if err != nil {
		respondInternalError(c, err, "Failed to load game stats")
		return
	}

	wow := WeekOverWeek{
		AppID:       appID,
		CurrentDate: dateString(current.SnapshotDate),
		CCU:         WowMetric{Current: current.CCU},
		Reviews:     WowReviews{Current: current.PositiveReviews + current.NegativeReviews},
		ReviewScore: WowMetric{Current: current.ReviewScore},
	}

	if previous != nil {
		prevDate := dateString(previous.SnapshotDate)
		wow.PreviousDate = &prevDate

		prevCCU := previous.CCU
		wow.CCU.Previous = &prevCCU
		if prevCCU > 0 {
			pct := round1(float64(current.CCU-prevCCU) / float64(prevCCU) * 100)
			wow.CCU.ChangePct = &pct
		}

		prevReviews := previous.PositiveReviews + previous.NegativeReviews
		newReviews := wow.Reviews.Current - prevReviews
		wow.Reviews.NewThisWeek = &newReviews

		prevScore := previous.ReviewScore
		wow.ReviewScore.Previous = &prevScore
		change := current.ReviewScore - prevScore
		wow.ReviewScore.Change = &change
	}

	c.JSON(http.StatusOK, wow)
}
