package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	MAX_LIMIT      = 100
	MAX_NEWS_COUNT = 100
)

// parsePeriodDays parses a "<n>d" period query value into a day count
func parsePeriodDays(c *gin.Context, name string, defaultDays int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultDays, nil
	}

	if !strings.HasSuffix(raw, "d") {
		return 0, fmt.Errorf("invalid period %q, expected a value like \"30d\"", raw)
	}

	days, err := strconv.Atoi(strings.TrimSuffix(raw, "d"))
	if err != nil || days <= 0 {
		return 0, fmt.Errorf("invalid period %q, expected a value like \"30d\"", raw)
	}

	return days, nil
}

// parseIntQuery parses a positive integer query value with a default and cap
func parseIntQuery(c *gin.Context, name string, defaultValue, max int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q, expected an integer", name, raw)
	}
	if value <= 0 {
		return defaultValue, nil
	}
	if max > 0 && value > max {
		return max, nil
	}
	return value, nil
}

// parseAppID parses the :app_id path parameter
func parseAppID(c *gin.Context) (int, error) {
	raw := c.Param("app_id")
	appID, err := strconv.Atoi(raw)
	if err != nil || appID <= 0 {
		return 0, fmt.Errorf("invalid app_id %q", raw)
	}
	return appID, nil
}

// validTopSellerCategories are the storefront feed keys we snapshot
var validTopSellerCategories = map[string]bool{
	"top_sellers":  true,
	"specials":     true,
	"new_releases": true,
	"coming_soon":  true,
}
