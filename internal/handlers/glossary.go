// glossary.go handles glossary lookups and keyword-click tracking.
//
// GET  /api/v1/glossary — Full built-in vocabulary
// GET  /api/v1/glossary/:term — One entry by (normalized) term
// POST /api/v1/stats/keyword-click — Record a click, return entry + stats
// GET  /api/v1/stats — Current user counters
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/middleware"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/glossary"
)

// ListGlossary returns the full built-in vocabulary.
// GET /api/v1/glossary
func (h *Handler) ListGlossary(c *gin.Context) {
	c.JSON(http.StatusOK, glossary.All())
}

// GetGlossaryEntry looks up one term. Matching is forgiving: accents,
// case and punctuation are stripped before lookup.
// GET /api/v1/glossary/:term
func (h *Handler) GetGlossaryEntry(c *gin.Context) {
	term := c.Param("term")
	entry, found := glossary.Lookup(term)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "No glossary entry for this term",
			Code:    http.StatusNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// RecordKeywordClick counts a keyword click and resolves the term.
// POST /api/v1/stats/keyword-click
//
// Every click counts, even for terms outside the glossary — the counter
// rewards curiosity, and the Found flag tells the UI whether it has a
// definition to show. Telescope names additionally bump their family
// counter for the hunter badges.
func (h *Handler) RecordKeywordClick(c *gin.Context) {
	user := middleware.GetUser(c)

	var req models.KeywordClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "A term is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	telescope := glossary.TelescopeFamily(req.Term)

	stats, err := h.DB.IncrementKeywordClick(c.Request.Context(), user.ID, telescope)
	if err != nil {
		log.Printf("❌ Failed to record keyword click: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to record click",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	resp := models.KeywordClickResponse{
		Telescope: telescope,
		Stats:     *stats,
	}
	if entry, found := glossary.Lookup(req.Term); found {
		resp.Found = true
		resp.Entry = &entry
	}

	c.JSON(http.StatusOK, resp)
}

// GetStats returns the user's current interaction counters.
// GET /api/v1/stats
func (h *Handler) GetStats(c *gin.Context) {
	user := middleware.GetUser(c)

	stats, err := h.DB.GetUserStats(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Failed to load stats: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load stats",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
