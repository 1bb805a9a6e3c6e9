package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetGameNews proxies recent Steam news for an app. Payloads are cached
// briefly so dashboard refreshes do not hammer the Steam Web API.
func (h *handler) GetGameNews(c *gin.Context) {
	appID, err := parseAppID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	count, err := parseIntQuery(c, "count", 10, MAX_NEWS_COUNT)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	cacheKey := strconv.Itoa(appID) + ":" + strconv.Itoa(count)
	if payload, ok := h.newsCache.Get(cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	payload, err := h.steam.NewsForApp(c.Request.Context(), appID, count)
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch news from Steam", zap.Int("app_id", appID))
		return
	}

	h.newsCache.Add(cacheKey, payload)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
