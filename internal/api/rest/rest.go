package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/firstbreaklabs/steam-intel/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes (all require an API key)
	v1 := router.Group("/api/v1", middleware.APIKeyAuth(authCfg))
	{
		// Portfolio endpoints
		v1.GET("/portfolio", handler.GetPortfolioSummary)
		v1.GET("/portfolio/:app_id", handler.GetGameStats)
		v1.GET("/portfolio/:app_id/history", handler.GetGameHistory)
		v1.GET("/portfolio/:app_id/wow", handler.GetGameWow)

		// Market intelligence endpoints
		v1.GET("/market/genres", handler.ListGenreStats)
		v1.GET("/market/genres/:genre", handler.GetGenreStats)
		v1.GET("/market/genres/:genre/score", handler.GetGenreScore)
		v1.GET("/market/trending", handler.GetTrendingGenres)
		v1.GET("/market/top-sellers", handler.GetTopSellers)
		v1.GET("/market/heatmap", handler.GetHeatmap)
		v1.GET("/market/heatmap/enhanced", handler.GetEnhancedHeatmap)
		v1.GET("/market/heatmap/history", handler.GetHeatmapHistory)
		v1.GET("/market/trends", handler.GetGenreTrends)
		v1.GET("/market/tag-combos", handler.GetTagCombos)
		v1.GET("/market/upcoming", handler.GetUpcomingReleases)
		v1.GET("/market/scores/all", handler.ListGenreScores)

		// Ad-hoc analysis endpoints
		v1.POST("/analyze/game", handler.AnalyzeGame)
		v1.POST("/analyze/comparable", handler.FindComparableGames)

		// Revenue endpoints
		v1.GET("/revenue/summary", handler.GetRevenueSummary)
		v1.GET("/revenue/:app_id", handler.GetGameRevenue)
		v1.POST("/revenue/upload", handler.UploadRevenueCSV)

		// Steam news proxy
		v1.GET("/steam/news/:app_id", handler.GetGameNews)

		// Admin endpoints
		v1.POST("/admin/collect/:job", handler.TriggerCollection)
		v1.GET("/admin/runs", handler.ListCollectionRuns)
	}
}
