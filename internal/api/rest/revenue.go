package rest

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/store"
)

// GetRevenueSummary aggregates actual revenue per game over a period
func (h *handler) GetRevenueSummary(c *gin.Context) {
	days, err := parsePeriodDays(c, "period", 30)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	today := h.clock.Today()
	from := today.AddDate(0, 0, -days)

	totals, err := h.store.GetRevenueTotalsByGame(c.Request.Context(), store.RevenueFilter{From: from})
	if err != nil {
		respondInternalError(c, err, "Failed to load revenue summary")
		return
	}

	summary := RevenueSummary{
		PeriodStart: dateString(from),
		PeriodEnd:   dateString(today),
		ByGame:      make([]RevenueByGame, 0, len(totals)),
	}
	for _, row := range totals {
		summary.TotalGrossCents += row.GrossCents
		summary.TotalNetCents += row.NetCents
		summary.TotalUnits += row.UnitsSold
		summary.ByGame = append(summary.ByGame, RevenueByGame{
			AppID:      row.AppID,
			Name:       row.Name,
			GrossCents: row.GrossCents,
			NetCents:   row.NetCents,
			Units:      row.UnitsSold,
		})
	}

	c.JSON(http.StatusOK, summary)
}

// GetGameRevenue retrieves one game's revenue periods
func (h *handler) GetGameRevenue(c *gin.Context) {
	appID, err := parseAppID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	days, err := parsePeriodDays(c, "period", 90)
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

	from := h.clock.Today().AddDate(0, 0, -days)
	records, err := h.store.ListRevenueRecords(ctx, store.RevenueFilter{AppID: appID, From: from})
	if err != nil {
		respondInternalError(c, err, "Failed to load game revenue")
		return
	}

	revenue := GameRevenue{
		AppID:   appID,
		Name:    game.Name,
		Periods: make([]RevenuePeriod, 0, len(records)),
	}
	for _, record := range records {
		revenue.TotalGrossCents += record.GrossCents
		revenue.TotalNetCents += record.NetCents
		revenue.TotalUnits += int64(record.UnitsSold)
		revenue.Periods = append(revenue.Periods, RevenuePeriod{
			PeriodStart: dateString(record.PeriodStart),
			PeriodEnd:   dateString(record.PeriodEnd),
			Granularity: string(record.Granularity),
			Source:      string(record.Source),
			GrossCents:  record.GrossCents,
			NetCents:    record.NetCents,
			Units:       record.UnitsSold,
			Refunds:     record.Refunds,
		})
	}

	c.JSON(http.StatusOK, revenue)
}

// UploadRevenueCSV imports a Steamworks financial report CSV
func (h *handler) UploadRevenueCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "Missing file upload", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondBadRequest(c, "Unreadable file upload", err.Error())
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		respondInternalError(c, err, "Failed to read upload", zap.String("filename", fileHeader.Filename))
		return
	}

	imported, err := h.importer.Import(c.Request.Context(), content)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, UploadResult{
		Imported: imported,
		Message:  fmt.Sprintf("Imported %d revenue rows from %s", imported, fileHeader.Filename),
	})
}
