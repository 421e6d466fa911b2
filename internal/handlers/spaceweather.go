// spaceweather.go handles the NASA space weather endpoints.
//
// GET  /api/v1/space-weather — Recent DONKI events (cached 10 minutes)
// POST /api/v1/space-weather/trending — AI reading topics from the events
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/cache"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/spaceweather"
)

const spaceWeatherCacheKey = "spaceweather:report"

// GetSpaceWeather returns the last 30 days of space weather events.
// GET /api/v1/space-weather
//
// DONKI is slow and rate limited (DEMO_KEY allows 30 req/hour), so the
// report is cached for 10 minutes and shared across all users.
func (h *Handler) GetSpaceWeather(c *gin.Context) {
	ctx := c.Request.Context()

	var report spaceweather.Report
	if h.Cache.GetJSON(ctx, spaceWeatherCacheKey, &report) {
		c.JSON(http.StatusOK, report)
		return
	}

	fresh, err := h.SpaceWeather.Fetch(ctx)
	if err != nil {
		log.Printf("❌ Space weather fetch failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "upstream_error",
			Message: "Space weather data is currently unavailable",
			Code:    http.StatusBadGateway,
		})
		return
	}

	if err := h.Cache.SetJSON(ctx, spaceWeatherCacheKey, fresh, cache.SpaceWeatherTTL); err != nil {
		log.Printf("⚠️  Failed to cache space weather: %v", err)
	}

	c.JSON(http.StatusOK, fresh)
}

// GetTrendingTopics turns the current space weather report into five
// suggested reading topics via the AI gateway.
// POST /api/v1/space-weather/trending
func (h *Handler) GetTrendingTopics(c *gin.Context) {
	ctx := c.Request.Context()

	var report spaceweather.Report
	if !h.Cache.GetJSON(ctx, spaceWeatherCacheKey, &report) {
		fresh, err := h.SpaceWeather.Fetch(ctx)
		if err != nil {
			log.Printf("❌ Space weather fetch failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "upstream_error",
				Message: "Space weather data is currently unavailable",
				Code:    http.StatusBadGateway,
			})
			return
		}
		report = *fresh
		if err := h.Cache.SetJSON(ctx, spaceWeatherCacheKey, fresh, cache.SpaceWeatherTTL); err != nil {
			log.Printf("⚠️  Failed to cache space weather: %v", err)
		}
	}

	topics, err := h.AI.TrendingTopics(ctx, report.Summarize())
	if err != nil {
		log.Printf("❌ Trending topics generation failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "ai_error",
			Message: "Failed to generate trending topics",
			Code:    http.StatusBadGateway,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
