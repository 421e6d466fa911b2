// achievements.go handles the badge evaluation endpoint.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/middleware"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/achievements"
)

// GetAchievements evaluates the user's badges from live counts and
// resynchronizes the persisted unlock rows for any newly earned badge.
// GET /api/v1/achievements
//
// Earned state is always derived fresh — the stored rows only contribute
// the unlock timestamps. That keeps the response correct even if unlock
// writes were ever missed.
func (h *Handler) GetAchievements(c *gin.Context) {
	user := middleware.GetUser(c)
	ctx := c.Request.Context()

	bookCount, err := h.DB.CountBooksByUser(ctx, user.ID)
	if err != nil {
		log.Printf("❌ Failed to count books: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to evaluate achievements",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	stats, err := h.DB.GetUserStats(ctx, user.ID)
	if err != nil {
		log.Printf("❌ Failed to load stats: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to evaluate achievements",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	badges := achievements.Evaluate(achievements.Counts{
		Books:         bookCount,
		KeywordClicks: stats.KeywordClicks,
		HubbleClicks:  stats.HubbleClicks,
		ChandraClicks: stats.ChandraClicks,
		WebbClicks:    stats.WebbClicks,
	})

	// Insert-only resync; ON CONFLICT DO NOTHING makes this idempotent.
	for _, badgeType := range achievements.EarnedTypes(badges) {
		if err := h.DB.UnlockAchievement(ctx, user.ID, badgeType); err != nil {
			log.Printf("⚠️  Failed to persist unlock %s: %v", badgeType, err)
		}
	}

	unlocked, err := h.DB.ListAchievementsByUser(ctx, user.ID)
	if err != nil {
		log.Printf("❌ Failed to list unlocks: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to evaluate achievements",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if unlocked == nil {
		unlocked = []models.UserAchievement{}
	}

	c.JSON(http.StatusOK, models.AchievementsResponse{
		Badges:   badges,
		Unlocked: unlocked,
	})
}
