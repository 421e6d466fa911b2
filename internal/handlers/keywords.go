// keywords.go handles keyword extraction HTTP endpoints.
//
// GET  /api/v1/books/:id/keywords — Stored keywords plus analysis status
// GET  /api/v1/books/:id/keywords/preview — On-the-fly local extraction
// GET  /api/v1/keywords — Local extraction across the whole library
// POST /api/v1/books/:id/keywords/analyze — Queue AI analysis for one book
// POST /api/v1/keywords/analyze-all — Queue AI analysis for every book
package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/middleware"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/keywords"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/worker"
)

// GetBookKeywords returns the stored keyword set and its analysis status.
// GET /api/v1/books/:id/keywords
func (h *Handler) GetBookKeywords(c *gin.Context) {
	book, ok := h.bookForUser(c)
	if !ok {
		return
	}

	rows, err := h.DB.ListBookKeywords(c.Request.Context(), book.ID)
	if err != nil {
		log.Printf("❌ Failed to list keywords: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list keywords",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if rows == nil {
		rows = []models.BookKeyword{}
	}

	analysis, err := h.DB.GetKeywordAnalysis(c.Request.Context(), book.ID)
	if err != nil {
		log.Printf("❌ Failed to load analysis status: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load analysis status",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keywords": rows,
		"analysis": analysis, // null when the book was never analyzed
	})
}

// PreviewKeywords runs a local extraction strategy over the book text
// without touching stored keywords.
// GET /api/v1/books/:id/keywords/preview?strategy=static|frequency
func (h *Handler) PreviewKeywords(c *gin.Context) {
	book, ok := h.bookForUser(c)
	if !ok {
		return
	}

	extractor, strategy, ok := extractorFromQuery(c)
	if !ok {
		return
	}

	terms := extractor.Extract(book.Title + " " + book.Content)
	if terms == nil {
		terms = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"strategy": strategy,
		"keywords": terms,
	})
}

// LibraryKeywords runs a local extraction strategy across the caller's
// whole library at once: titles, authors and content pooled, so frequency
// ranking reflects the library rather than any single book.
// GET /api/v1/keywords?strategy=static|frequency
func (h *Handler) LibraryKeywords(c *gin.Context) {
	user := middleware.GetUser(c)

	extractor, strategy, ok := extractorFromQuery(c)
	if !ok {
		return
	}

	books, err := h.DB.ListBooksByUser(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Failed to list books: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list books",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	var pooled strings.Builder
	for _, book := range books {
		pooled.WriteString(book.Title)
		pooled.WriteByte(' ')
		if book.Author != nil {
			pooled.WriteString(*book.Author)
			pooled.WriteByte(' ')
		}
		pooled.WriteString(book.Content)
		pooled.WriteByte('\n')
	}

	terms := extractor.Extract(pooled.String())
	if terms == nil {
		terms = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"strategy": strategy,
		"keywords": terms,
	})
}

// extractorFromQuery resolves the ?strategy= param, writing the 400 itself
// on an unknown value.
func extractorFromQuery(c *gin.Context) (keywords.Extractor, string, bool) {
	strategy := c.DefaultQuery("strategy", "frequency")
	switch strategy {
	case "static":
		return keywords.StaticExtractor{}, strategy, true
	case "frequency":
		return keywords.FrequencyExtractor{}, strategy, true
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_strategy",
		Message: "strategy must be 'static' or 'frequency'",
		Code:    http.StatusBadRequest,
	})
	return nil, "", false
}

// AnalyzeBook queues AI keyword analysis for one book.
// POST /api/v1/books/:id/keywords/analyze
func (h *Handler) AnalyzeBook(c *gin.Context) {
	book, ok := h.bookForUser(c)
	if !ok {
		return
	}

	if err := h.DB.UpsertKeywordAnalysis(c.Request.Context(), book.ID, models.AnalysisPending, "", ""); err != nil {
		log.Printf("❌ Failed to mark analysis pending: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to queue analysis",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.Worker.Submit(worker.Job{
		BookID:    book.ID,
		Type:      worker.JobKeywordAnalysis,
		CreatedAt: time.Now(),
	}); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error:   "queue_full",
			Message: "Analysis queue is full; try again later",
			Code:    http.StatusServiceUnavailable,
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"book_id": book.ID,
		"status":  models.AnalysisPending,
	})
}

// AnalyzeAllBooks queues AI keyword analysis for every book in the user's
// library. One failed enqueue does not abort the batch.
// POST /api/v1/keywords/analyze-all
func (h *Handler) AnalyzeAllBooks(c *gin.Context) {
	user := middleware.GetUser(c)

	books, err := h.DB.ListBooksByUser(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Failed to list books: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list books",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	queued := 0
	for _, book := range books {
		if err := h.DB.UpsertKeywordAnalysis(c.Request.Context(), book.ID, models.AnalysisPending, "", ""); err != nil {
			log.Printf("⚠️  Failed to mark %s pending: %v", book.ID, err)
			continue
		}
		if err := h.Worker.Submit(worker.Job{
			BookID:    book.ID,
			Type:      worker.JobKeywordAnalysis,
			CreatedAt: time.Now(),
		}); err != nil {
			log.Printf("⚠️  Failed to queue analysis for %s: %v", book.ID, err)
			continue
		}
		queued++
	}

	c.JSON(http.StatusAccepted, gin.H{
		"queued": queued,
		"total":  len(books),
	})
}
