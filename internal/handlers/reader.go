// reader.go handles the reading view and progress tracking endpoints.
//
// GET  /api/v1/books/:id/reader — Paginated content plus current position
// POST /api/v1/books/:id/progress — Record a page navigation
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/middleware"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/pagination"
)

// GetReaderView returns everything the reader UI needs to open a book:
// paginated text (or a PDF view URL) and the user's saved position.
// GET /api/v1/books/:id/reader
func (h *Handler) GetReaderView(c *gin.Context) {
	user := middleware.GetUser(c)
	book, ok := h.bookForUser(c)
	if !ok {
		return
	}

	view := models.ReaderView{
		Book:       *book,
		TotalPages: book.TotalPages,
	}

	switch book.BookType {
	case models.BookTypeText:
		view.Pages = pagination.SplitIntoPages(book.Content)
		// Word-based pagination is the source of truth for text books;
		// the stored estimate can drift from it.
		view.TotalPages = len(view.Pages)
	case models.BookTypePDF:
		if book.FileKey != nil {
			url, _, err := h.Store.PresignGet(c.Request.Context(), *book.FileKey)
			if err != nil {
				log.Printf("⚠️  Presign failed for %s: %v", *book.FileKey, err)
				url = h.Store.PublicURL(*book.FileKey)
			}
			view.ViewURL = url
		}
	}

	progress, err := h.DB.GetProgress(c.Request.Context(), user.ID, book.ID)
	if err != nil {
		log.Printf("❌ Failed to load progress: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load reading progress",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	tracker := pagination.NewTracker(view.TotalPages)
	if progress != nil {
		tracker.CurrentPage = progress.CurrentPage
		tracker.PagesRead = progress.PagesRead
	}
	view.CurrentPage = tracker.CurrentPage
	view.PagesRead = tracker.PagesRead

	c.JSON(http.StatusOK, view)
}

// UpdateProgress records a page navigation.
// POST /api/v1/books/:id/progress
//
// Rejects pages outside [1, total_pages] with 422 and leaves the stored
// position untouched. pages_read never decreases, so jumping back to an
// earlier page keeps credit for the furthest page reached.
func (h *Handler) UpdateProgress(c *gin.Context) {
	user := middleware.GetUser(c)
	book, ok := h.bookForUser(c)
	if !ok {
		return
	}

	var req models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body must be JSON with a page number",
			Code:    http.StatusBadRequest,
		})
		return
	}

	totalPages := book.TotalPages
	if book.BookType == models.BookTypeText {
		totalPages = pagination.PageCount(book.Content)
	}
	tracker := pagination.NewTracker(totalPages)
	if !tracker.GoToPage(req.Page) {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "page_out_of_range",
			Message: "Page must be between 1 and the book's total pages",
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}

	progress, err := h.DB.UpsertProgress(c.Request.Context(), user.ID, book.ID, tracker.CurrentPage)
	if err != nil {
		log.Printf("❌ Failed to record progress: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to record progress",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, progress)
}
