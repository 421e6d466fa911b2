// leaderboard.go handles the ranked board endpoints.
//
// GET /api/v1/leaderboard — Composite score (achievements/books/clicks)
// GET /api/v1/leaderboard/daily-pages — Pages read since midnight UTC
// GET /api/v1/leaderboard/weekly-keywords — Keyword clicks in the last 7d
// GET /api/v1/leaderboard/collectors — Unlocked badge counts
//
// All boards are cached in Redis for 60 seconds; they aggregate across
// every user and are the hottest read path in the app.
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/cache"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/leaderboard"
)

// GetLeaderboard returns the composite top-10 board.
// GET /api/v1/leaderboard
func (h *Handler) GetLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	var board []models.LeaderboardEntry
	if h.Cache.GetJSON(ctx, "leaderboard:composite", &board) {
		c.JSON(http.StatusOK, board)
		return
	}

	stats, err := h.DB.ListUserStats(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}
	achievementOwners, err := h.DB.ListAchievementOwners(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}
	bookOwners, err := h.DB.ListBookOwners(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}
	names, err := h.DB.ListUserNames(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}

	board = leaderboard.Compose(stats, achievementOwners, bookOwners, names)
	if board == nil {
		board = []models.LeaderboardEntry{}
	}

	if err := h.Cache.SetJSON(ctx, "leaderboard:composite", board, cache.LeaderboardTTL); err != nil {
		log.Printf("⚠️  Failed to cache leaderboard: %v", err)
	}

	c.JSON(http.StatusOK, board)
}

// GetDailyPagesBoard ranks users by pages read since midnight UTC.
// GET /api/v1/leaderboard/daily-pages
func (h *Handler) GetDailyPagesBoard(c *gin.Context) {
	ctx := c.Request.Context()

	var board []models.ScoreboardEntry
	if h.Cache.GetJSON(ctx, "leaderboard:daily-pages", &board) {
		c.JSON(http.StatusOK, board)
		return
	}

	rows, err := h.DB.ListProgressSince(ctx, time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		h.leaderboardError(c, err)
		return
	}
	names, err := h.DB.ListUserNames(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}

	pairs := make([]leaderboard.Pair, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, leaderboard.Pair{UserID: r.UserID, Value: r.PagesRead})
	}
	board = h.finishScoreboard(ctx, "leaderboard:daily-pages", pairs, names)

	c.JSON(http.StatusOK, board)
}

// GetWeeklyKeywordsBoard ranks users by keyword clicks over the last week.
// GET /api/v1/leaderboard/weekly-keywords
func (h *Handler) GetWeeklyKeywordsBoard(c *gin.Context) {
	ctx := c.Request.Context()

	var board []models.ScoreboardEntry
	if h.Cache.GetJSON(ctx, "leaderboard:weekly-keywords", &board) {
		c.JSON(http.StatusOK, board)
		return
	}

	rows, err := h.DB.ListUserStatsSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		h.leaderboardError(c, err)
		return
	}
	names, err := h.DB.ListUserNames(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}

	pairs := make([]leaderboard.Pair, 0, len(rows))
	for _, r := range rows {
		pairs = append(pairs, leaderboard.Pair{UserID: r.UserID, Value: r.KeywordClicks})
	}
	board = h.finishScoreboard(ctx, "leaderboard:weekly-keywords", pairs, names)

	c.JSON(http.StatusOK, board)
}

// GetCollectorsBoard ranks users by unlocked badge count.
// GET /api/v1/leaderboard/collectors
func (h *Handler) GetCollectorsBoard(c *gin.Context) {
	ctx := c.Request.Context()

	var board []models.ScoreboardEntry
	if h.Cache.GetJSON(ctx, "leaderboard:collectors", &board) {
		c.JSON(http.StatusOK, board)
		return
	}

	owners, err := h.DB.ListAchievementOwners(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}
	names, err := h.DB.ListUserNames(ctx)
	if err != nil {
		h.leaderboardError(c, err)
		return
	}

	pairs := make([]leaderboard.Pair, 0, len(owners))
	for _, userID := range owners {
		pairs = append(pairs, leaderboard.Pair{UserID: userID, Value: 1})
	}
	board = h.finishScoreboard(ctx, "leaderboard:collectors", pairs, names)

	c.JSON(http.StatusOK, board)
}

func (h *Handler) finishScoreboard(ctx context.Context, key string, pairs []leaderboard.Pair, names map[string]string) []models.ScoreboardEntry {
	board := leaderboard.Scoreboard(pairs, names)
	if board == nil {
		board = []models.ScoreboardEntry{}
	}
	if err := h.Cache.SetJSON(ctx, key, board, cache.LeaderboardTTL); err != nil {
		log.Printf("⚠️  Failed to cache %s: %v", key, err)
	}
	return board
}

func (h *Handler) leaderboardError(c *gin.Context, err error) {
	log.Printf("❌ Failed to build leaderboard: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database_error",
		Message: "Failed to build leaderboard",
		Code:    http.StatusInternalServerError,
	})
}
