package rest

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/firstbreaklabs/steam-intel/internal/store/schema"
)

// genreStatsFrom maps a genre aggregate row to its response shape
func genreStatsFrom(snap *schema.GenreSnapshot) GenreStats {
	return GenreStats{
		Genre:          snap.Genre,
		GameCount:      snap.GameCount,
		TotalCCU:       snap.TotalCCU,
		AvgCCU:         snap.AvgCCU,
		AvgReviewScore: round1(snap.AvgReviewScore),
		TopGames:       json.RawMessage(snap.TopGames),
		SnapshotDate:   dateString(snap.SnapshotDate),
	}
}

// ListGenreStats retrieves every genre's latest market aggregate
func (h *handler) ListGenreStats(c *gin.Context) {
	snaps, err := h.store.ListLatestGenreSnapshots(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to load genre stats")
		return
	}

	genres := make([]GenreStats, 0, len(snaps))
	for i := range snaps {
		genres = append(genres, genreStatsFrom(&snaps[i]))
	}

	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

// GetGenreStats retrieves one genre's latest market aggregate
func (h *handler) GetGenreStats(c *gin.Context) {
	genre := c.Param("genre")
	if genre == "" {
		respondBadRequest(c, "Genre is required")
		return
	}

	snap, err := h.store.GetLatestGenreSnapshot(c.Request.Context(), genre)
	if err != nil {
		respondInternalError(c, err, "Failed to load genre stats")
		return
	}
	if snap == nil {
		c.JSON(http.StatusOK, GenreStats{Genre: genre, TopGames: json.RawMessage("[]")})
		return
	}

	c.JSON(http.StatusOK, genreStatsFrom(snap))
}

// GetGenreScore retrieves one genre's latest opportunity score. Genres that
// have never been scored report neutral 50s.
func (h *handler) GetGenreScore(c *gin.Context) {
	genre := c.Param("genre")
	if genre == "" {
		respondBadRequest(c, "Genre is required")
		return
	}

	score, err := h.store.GetLatestGenreScore(c.Request.Context(), genre)
	if err != nil {
		respondInternalError(c, err, "Failed to load genre score")
		return
	}
	if score == nil {
		c.JSON(http.StatusOK, GenreScoreView{
			Genre:           genre,
			HotnessScore:    50,
			SaturationScore: 50,
			SuccessScore:    50,
			TimingScore:     50,
			OverallScore:    50,
			Recommendation:  "unknown",
		})
		return
	}

	c.JSON(http.StatusOK, GenreScoreView{
		Genre:           score.Genre,
		HotnessScore:    int(score.Hotness),
		SaturationScore: int(score.Saturation),
		SuccessScore:    int(score.Success),
		TimingScore:     int(score.Timing),
		OverallScore:    int(score.Overall),
		Recommendation:  string(score.Recommendation),
		ScoreDate:       dateString(score.SnapshotDate),
	})
}

// GetTrendingGenres ranks genres by week-over-week CCU change
func (h *handler) GetTrendingGenres(c *gin.Context) {
	ctx := c.Request.Context()

	snaps, err := h.store.ListLatestGenreSnapshots(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to load trending genres")
		return
	}

	trending := make([]TrendingGenre, 0, len(snaps))
	for i := range snaps {
		snap := &snaps[i]
		weekAgo := snap.SnapshotDate.AddDate(0, 0, -7)
		previous, err := h.store.GetGenreSnapshotInWindow(ctx, snap.Genre, weekAgo.AddDate(0, 0, -1), weekAgo)
		if err != nil {
			respondInternalError(c, err, "Failed to load trending genres")
			return
		}
		if previous == nil || previous.TotalCCU == 0 {
			continue
		}

		pct := round1(float64(snap.TotalCCU-previous.TotalCCU) / float64(previous.TotalCCU) * 100)
		direction := "flat"
		switch {
		case pct >= 1:
			direction = "up"
		case pct <= -1:
			direction = "down"
		}

		trending = append(trending, TrendingGenre{
			Genre:       snap.Genre,
			CurrentCCU:  snap.TotalCCU,
			PreviousCCU: previous.TotalCCU,
			ChangePct:   pct,
			Direction:   direction,
		})
	}

	sort.Slice(trending, func(i, j int) bool {
		return trending[i].ChangePct > trending[j].ChangePct
	})

	c.JSON(http.StatusOK, gin.H{"trending": trending})
}

// GetTopSellers retrieves the latest storefront ranking for a category
func (h *handler) GetTopSellers(c *gin.Context) {
	category := c.DefaultQuery("category", "top_sellers")
	if !validTopSellerCategories[category] {
		respondValidationError(c, "unknown category "+category)
		return
	}

	rows, err := h.store.GetLatestTopSellers(c.Request.Context(), category)
	if err != nil {
		respondInternalError(c, err, "Failed to load top sellers")
		return
	}

	result := TopSellers{
		Category: category,
		Rankings: make([]TopSellerEntry, 0, len(rows)),
	}
	if len(rows) > 0 {
		result.SnapshotDate = dateString(rows[0].SnapshotDate)
	}
	for _, row := range rows {
		result.Rankings = append(result.Rankings, TopSellerEntry{
			Rank:            row.Rank,
			AppID:           row.AppID,
			Name:            row.Name,
			FinalPriceCents: row.FinalPriceCents,
			DiscountPct:     row.DiscountPct,
		})
	}

	c.JSON(http.StatusOK, result)
}

// GetHeatmap retrieves the genre opportunity heat map
func (h *handler) GetHeatmap(c *gin.Context) {
	ctx := c.Request.Context()

	scores, err := h.store.GetLatestGenreScores(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to load heatmap")
		return
	}
	if len(scores) == 0 {
		c.JSON(http.StatusOK, Heatmap{Genres: []HeatmapGenre{}})
		return
	}

	scoreDate := scores[0].SnapshotDate
	snaps, err := h.store.ListGenreSnapshotsOn(ctx, scoreDate)
	if err != nil {
		respondInternalError(c, err, "Failed to load heatmap")
		return
	}
	byGenre := make(map[string]*schema.GenreSnapshot, len(snaps))
	for i := range snaps {
		byGenre[snaps[i].Genre] = &snaps[i]
	}

	heatmap := Heatmap{
		Genres:       make([]HeatmapGenre, 0, len(scores)),
		SnapshotDate: dateStringPtr(&scoreDate),
	}
	for _, score := range scores {
		cell := HeatmapGenre{
			Genre:          score.Genre,
			Hotness:        int(score.Hotness),
			Saturation:     int(score.Saturation),
			SuccessRate:    int(score.Success),
			Timing:         int(score.Timing),
			Overall:        int(score.Overall),
			Recommendation: string(score.Recommendation),
			TopGames:       json.RawMessage("[]"),
		}
		if snap := byGenre[score.Genre]; snap != nil {
			cell.TotalCCU = snap.TotalCCU
			cell.GameCount = snap.GameCount
			cell.AvgReviewScore = round1(snap.AvgReviewScore)
			if len(snap.TopGames) > 0 {
				cell.TopGames = json.RawMessage(snap.TopGames)
			}
		}
		heatmap.Genres = append(heatmap.Genres, cell)
	}

	c.JSON(http.StatusOK, heatmap)
}

// upcomingByGenre buckets tracked upcoming releases under each of their
// listed genres
func upcomingByGenre(releases []schema.UpcomingRelease) map[string][]schema.UpcomingRelease {
	buckets := make(map[string][]schema.UpcomingRelease)
	for _, release := range releases {
		var genres []string
		if len(release.Genres) > 0 {
			if err := json.Unmarshal(release.Genres, &genres); err != nil {
				continue
			}
		}
		for _, genre := range genres {
			buckets[genre] = append(buckets[genre], release)
		}
	}
	return buckets
}

// GetEnhancedHeatmap retrieves the heat map with velocity, pricing, release
// pressure, and upcoming release context per genre
func (h *handler) GetEnhancedHeatmap(c *gin.Context) {
	ctx := c.Request.Context()

	scores, err := h.store.GetLatestGenreScores(ctx)
	if err != nil {
		respondInternalError(c, err, "Failed to load heatmap")
		return
	}
	if len(scores) == 0 {
		c.JSON(http.StatusOK, EnhancedHeatmap{Genres: []EnhancedHeatmapGenre{}})
		return
	}

	scoreDate := scores[0].SnapshotDate
	snaps, err := h.store.ListGenreSnapshotsOn(ctx, scoreDate)
	if err != nil {
		respondInternalError(c, err, "Failed to load heatmap")
		return
	}
	byGenre := make(map[string]*schema.GenreSnapshot, len(snaps))
	for i := range snaps {
		byGenre[snaps[i].Genre] = &snaps[i]
	}

	releases, err := h.store.ListUpcomingReleases(ctx, h.clock.Today(), 0)
	if err != nil {
		respondInternalError(c, err, "Failed to load heatmap")
		return
	}
	upcoming := upcomingByGenre(releases)

	heatmap := EnhancedHeatmap{
		Genres:       make([]EnhancedHeatmapGenre, 0, len(scores)),
		SnapshotDate: dateStringPtr(&scoreDate),
	}
	for _, score := range scores {
		cell := EnhancedHeatmapGenre{
			Genre:            score.Genre,
			Hotness:          int(score.Hotness),
			Saturation:       int(score.Saturation),
			SuccessRate:      int(score.Success),
			Timing:           int(score.Timing),
			Overall:          int(score.Overall),
			Recommendation:   string(score.Recommendation),
			GrowthVelocity:   round1(score.Velocity),
			TrendDirection:   string(score.Trend),
			CompetitionScore: int(score.Competition),
			RevenuePotential: int(score.RevenuePotential),
			Discoverability:  int(score.Discoverability),
			TopUpcoming:      []UpcomingTeaser{},
			TopTags:          json.RawMessage("[]"),
			TopGames:         json.RawMessage("[]"),
		}

		if snap := byGenre[score.Genre]; snap != nil {
			cell.AvgPriceCents = snap.AvgPriceCents
			cell.MedianPriceCents = snap.MedianPriceCents
			cell.PriceDistribution = PriceDistribution{
				Free:   snap.PriceFree,
				Under5: snap.PriceUnder5,
				From5:  snap.Price5To10,
				From10: snap.Price10To20,
				From20: snap.Price20To30,
				Over30: snap.PriceOver30,
			}
			cell.ReleasesLast30d = snap.Releases30d
			cell.ReleasesLast90d = snap.Releases90d
			cell.EarlyAccessPct = round1(snap.EarlyAccessPct)
			cell.TotalCCU = snap.TotalCCU
			cell.GameCount = snap.GameCount
			cell.RevenueEstimateMillions = round1(float64(snap.TotalEstRevenueCents) / 100 / 1_000_000)
			if len(snap.TopTags) > 0 {
				cell.TopTags = json.RawMessage(snap.TopTags)
			}
			if len(snap.TopGames) > 0 {
				cell.TopGames = json.RawMessage(snap.TopGames)
			}
		}

		// The store orders upcoming releases by hype, so the head of each
		// bucket is already the most anticipated.
		bucket := upcoming[score.Genre]
		cell.UpcomingReleasesCount = len(bucket)
		for i := 0; i < len(bucket) && i < 3; i++ {
			cell.TopUpcoming = append(cell.TopUpcoming, UpcomingTeaser{
				Name:            bucket[i].Name,
				ExpectedRelease: dateStringPtr(bucket[i].ReleaseDate),
				HypeScore:       bucket[i].HypeScore,
			})
		}

		heatmap.Genres = append(heatmap.Genres, cell)
	}

	c.JSON(http.StatusOK, heatmap)
}

// GetHeatmapHistory retrieves monthly score averages per genre
func (h *handler) GetHeatmapHistory(c *gin.Context) {
	months, err := parseIntQuery(c, "months", 6, 24)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	since := h.clock.Today().AddDate(0, -months, 0)
	scores, err := h.store.ListGenreScoresSince(c.Request.Context(), since)
	if err != nil {
		respondInternalError(c, err, "Failed to load heatmap history")
		return
	}

	type bucket struct {
		hotness    int
		saturation int
		overall    int
		count      int
		latest     schema.GenreScore
	}
	buckets := make(map[string]map[string]*bucket)
	monthKeys := make([]string, 0)

	for _, score := range scores {
		month := score.SnapshotDate.Format("2006-01")
		genres, ok := buckets[month]
		if !ok {
			genres = make(map[string]*bucket)
			buckets[month] = genres
			monthKeys = append(monthKeys, month)
		}
		b, ok := genres[score.Genre]
		if !ok {
			b = &bucket{}
			genres[score.Genre] = b
		}
		b.hotness += int(score.Hotness)
		b.saturation += int(score.Saturation)
		b.overall += int(score.Overall)
		b.count++
		if score.SnapshotDate.After(b.latest.SnapshotDate) {
			b.latest = score
		}
	}

	sort.Strings(monthKeys)

	history := HeatmapHistory{History: make([]HeatmapHistoryMonth, 0, len(monthKeys))}
	for _, month := range monthKeys {
		entry := HeatmapHistoryMonth{Month: month}
		for genre, b := range buckets[month] {
			entry.Genres = append(entry.Genres, HeatmapHistoryGenre{
				Genre:          genre,
				Hotness:        b.hotness / b.count,
				Saturation:     b.saturation / b.count,
				Overall:        b.overall / b.count,
				Recommendation: string(b.latest.Recommendation),
				GrowthVelocity: round1(b.latest.Velocity),
				TrendDirection: string(b.latest.Trend),
			})
		}
		sort.Slice(entry.Genres, func(i, j int) bool {
			return entry.Genres[i].Overall > entry.Genres[j].Overall
		})
		history.History = append(history.History, entry)
	}

	c.JSON(http.StatusOK, history)
}

// mondayOf truncates a date to the Monday starting its ISO week
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// trendLabelFor classifies a week's CCU change percentage
func trendLabelFor(pct float64) string {
	switch {
	case pct >= 20:
		return "surging"
	case pct >= 10:
		return "growing"
	case pct <= -20:
		return "crashing"
	case pct <= -10:
		return "declining"
	default:
		return "stable"
	}
}

// buildTrendWeeks condenses a genre's daily aggregates into one row per ISO
// week, using the newest snapshot inside each week
func buildTrendWeeks(snaps []schema.GenreSnapshot) []TrendWeek {
	var order []time.Time
	latest := make(map[time.Time]schema.GenreSnapshot)

	for _, snap := range snaps {
		start := mondayOf(snap.SnapshotDate)
		existing, ok := latest[start]
		if !ok {
			order = append(order, start)
		}
		if !ok || snap.SnapshotDate.After(existing.SnapshotDate) {
			latest[start] = snap
		}
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	weeks := make([]TrendWeek, 0, len(order))
	var prevCCU int64
	for i, start := range order {
		snap := latest[start]
		week := TrendWeek{
			WeekStart:  dateString(start),
			TotalCCU:   snap.TotalCCU,
			GameCount:  snap.GameCount,
			TrendLabel: "stable",
		}
		if i > 0 && prevCCU > 0 {
			week.CCUChangePct = round1(float64(snap.TotalCCU-prevCCU) / float64(prevCCU) * 100)
			week.TrendLabel = trendLabelFor(week.CCUChangePct)
		}
		prevCCU = snap.TotalCCU
		weeks = append(weeks, week)
	}
	return weeks
}

// overallTrendFor averages the newest three weekly changes into a direction
func overallTrendFor(weeks []TrendWeek) string {
	if len(weeks) == 0 {
		return "stable"
	}
	n := 3
	if len(weeks) < n {
		n = len(weeks)
	}
	sum := 0.0
	for _, week := range weeks[len(weeks)-n:] {
		sum += week.CCUChangePct
	}
	avg := sum / float64(n)
	switch {
	case avg >= 10:
		return "rising"
	case avg <= -10:
		return "declining"
	default:
		return "stable"
	}
}

// GetGenreTrends retrieves weekly CCU movement for one or all genres
func (h *handler) GetGenreTrends(c *gin.Context) {
	weeks, err := parseIntQuery(c, "weeks", 12, 52)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	since := h.clock.Today().AddDate(0, 0, -7*weeks)

	if genre := c.Query("genre"); genre != "" {
		snaps, err := h.store.GetGenreSnapshotHistory(ctx, genre, since)
		if err != nil {
			respondInternalError(c, err, "Failed to load genre trends")
			return
		}
		trendWeeks := buildTrendWeeks(snaps)
		c.JSON(http.StatusOK, GenreTrends{
			Genre:        genre,
			Weeks:        trendWeeks,
			OverallTrend: overallTrendFor(trendWeeks),
		})
		return
	}

	snaps, err := h.store.ListGenreSnapshotsSince(ctx, since)
	if err != nil {
		respondInternalError(c, err, "Failed to load genre trends")
		return
	}

	byGenre := make(map[string][]schema.GenreSnapshot)
	for _, snap := range snaps {
		byGenre[snap.Genre] = append(byGenre[snap.Genre], snap)
	}

	all := AllTrends{Genres: make(map[string][]TrendWeek, len(byGenre))}
	for genre, genreSnaps := range byGenre {
		all.Genres[genre] = buildTrendWeeks(genreSnaps)
	}

	c.JSON(http.StatusOK, all)
}

// GetTagCombos retrieves the latest tag pair correlation snapshot
func (h *handler) GetTagCombos(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit", 20, MAX_LIMIT)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	rows, err := h.store.GetLatestTagCorrelations(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to load tag combinations")
		return
	}

	combos := TagCombos{Combinations: make([]TagCombo, 0, limit)}
	if len(rows) > 0 {
		combos.SnapshotDate = dateStringPtr(&rows[0].SnapshotDate)
	}
	for i := 0; i < len(rows) && i < limit; i++ {
		row := rows[i]
		topGames := json.RawMessage("[]")
		if len(row.TopGames) > 0 {
			topGames = json.RawMessage(row.TopGames)
		}
		combos.Combinations = append(combos.Combinations, TagCombo{
			Tags:                []string{row.TagA, row.TagB},
			GameCount:           row.CoOccurrence,
			TotalCCU:            row.CombinedCCU,
			AvgReviewScore:      round1(row.AvgReviewScore),
			AvgPriceCents:       row.AvgPriceCents,
			CorrelationStrength: round2(row.Strength),
			TopGames:            topGames,
		})
	}

	c.JSON(http.StatusOK, combos)
}

// GetUpcomingReleases retrieves tracked unreleased apps by hype score
func (h *handler) GetUpcomingReleases(c *gin.Context) {
	limit, err := parseIntQuery(c, "limit", 20, MAX_LIMIT)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	genre := c.Query("genre")

	releases, err := h.store.ListUpcomingReleases(c.Request.Context(), h.clock.Today(), 0)
	if err != nil {
		respondInternalError(c, err, "Failed to load upcoming releases")
		return
	}

	matched := make([]schema.UpcomingRelease, 0, len(releases))
	for _, release := range releases {
		if genre != "" && !releaseHasGenre(&release, genre) {
			continue
		}
		matched = append(matched, release)
	}

	result := UpcomingReleases{
		Releases:   make([]UpcomingReleaseView, 0, limit),
		TotalCount: len(matched),
	}
	for i := 0; i < len(matched) && i < limit; i++ {
		release := matched[i]
		result.Releases = append(result.Releases, UpcomingReleaseView{
			AppID:           release.AppID,
			Name:            release.Name,
			Developers:      rawOrEmptyList(release.Developers),
			Publishers:      rawOrEmptyList(release.Publishers),
			ExpectedRelease: dateStringPtr(release.ReleaseDate),
			ReleaseDateRaw:  release.ReleaseDateRaw,
			Genres:          rawOrEmptyList(release.Genres),
			Tags:            rawOrEmptyList(release.Tags),
			PriceCents:      release.PriceCents,
			HasDemo:         release.HasDemo,
			HypeScore:       release.HypeScore,
		})
	}

	c.JSON(http.StatusOK, result)
}

// releaseHasGenre reports whether an upcoming release lists the genre,
// case-insensitively
func releaseHasGenre(release *schema.UpcomingRelease, genre string) bool {
	if len(release.Genres) == 0 {
		return false
	}
	var genres []string
	if err := json.Unmarshal(release.Genres, &genres); err != nil {
		return false
	}
	for _, g := range genres {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// rawOrEmptyList passes a stored jsonb list through, defaulting to []
func rawOrEmptyList(raw []byte) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("[]")
	}
	return json.RawMessage(raw)
}

// ListGenreScores retrieves every genre's full score row for the latest date
func (h *handler) ListGenreScores(c *gin.Context) {
	scores, err := h.store.GetLatestGenreScores(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to load genre scores")
		return
	}

	rows := make([]GenreScoreFull, 0, len(scores))
	for _, score := range scores {
		rows = append(rows, GenreScoreFull{
			Genre:                 score.Genre,
			HotnessScore:          int(score.Hotness),
			SaturationScore:       int(score.Saturation),
			SuccessScore:          int(score.Success),
			TimingScore:           int(score.Timing),
			OverallScore:          int(score.Overall),
			Recommendation:        string(score.Recommendation),
			GrowthVelocity:        round1(score.Velocity),
			TrendDirection:        string(score.Trend),
			CompetitionScore:      int(score.Competition),
			RevenuePotentialScore: int(score.RevenuePotential),
			DiscoverabilityScore:  int(score.Discoverability),
			ScoreDate:             dateString(score.SnapshotDate),
		})
	}

	c.JSON(http.StatusOK, gin.H{"scores": rows})
}
