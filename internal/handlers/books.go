// books.go handles library book HTTP endpoints.
//
// POST   /api/v1/books — Create a text book from pasted content
// POST   /api/v1/books/upload — Upload a PDF book
// GET    /api/v1/books — List the user's library with reading progress
// GET    /api/v1/books/:id — Get one book
// DELETE /api/v1/books/:id — Remove a book
// GET    /api/v1/books/:id/view-url — Presigned URL for a PDF book
package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cosmos-reader/cosmos-reader-api/internal/middleware"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
	pdfservice "github.com/cosmos-reader/cosmos-reader-api/internal/services/pdf"
	"github.com/cosmos-reader/cosmos-reader-api/internal/services/worker"
)

// maxPDFSize is the max upload size for PDF books (50MB).
const maxPDFSize = 50 << 20 // 50MB

// textPageCharEstimate approximates pages from raw character count when a
// text book is created without an explicit page count (roughly one page
// per 2000 characters, minimum 1).
const textPageCharEstimate = 2000

// CreateTextBook creates a book from pasted text content.
// POST /api/v1/books
func (h *Handler) CreateTextBook(c *gin.Context) {
	user := middleware.GetUser(c)

	var req models.CreateTextBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Title and content are required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Stored total_pages is a display estimate; the reader recomputes the
	// real count from word-based pagination on every view.
	totalPages := req.TotalPages
	if totalPages <= 0 {
		totalPages = (len(req.Content) + textPageCharEstimate - 1) / textPageCharEstimate
		if totalPages < 1 {
			totalPages = 1
		}
	}

	book := &models.Book{
		UserID:     user.ID,
		Title:      req.Title,
		Content:    req.Content,
		TotalPages: totalPages,
		BookType:   models.BookTypeText,
	}
	if req.Author != "" {
		author := req.Author
		book.Author = &author
	}

	if err := h.DB.CreateBook(c.Request.Context(), book); err != nil {
		log.Printf("❌ Failed to create book: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to create book",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	h.enqueueKeywordAnalysis(c, book.ID)

	c.JSON(http.StatusCreated, book)
}

// UploadPDFBook handles PDF book upload.
// POST /api/v1/books/upload
//
// Accepts multipart upload with field name "file" plus optional "title"
// and "author" form fields. The file is stored in object storage; only
// the page count and extracted text stay in the database.
func (h *Handler) UploadPDFBook(c *gin.Context) {
	user := middleware.GetUser(c)

	// Limit request body size
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPDFSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "No PDF file provided. Upload a file with the field name 'file'. Max size: 50MB.",
			Code:    http.StatusBadRequest,
		})
		return
	}
	defer file.Close()

	// Validate file extension
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".pdf" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_file_type",
			Message: fmt.Sprintf("Unsupported file format '%s'. Only .pdf files are accepted.", ext),
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Go Pattern: io.ReadAll reads the entire reader into a byte slice.
	// For PDFs up to 50MB this is fine — the pdf library needs random access.
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "read_error",
			Message: "Failed to read uploaded file",
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Validate PDF magic bytes
	if !pdfservice.Validate(data) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_pdf",
			Message: "The uploaded file does not appear to be a valid PDF",
			Code:    http.StatusBadRequest,
		})
		return
	}

	info, err := pdfservice.Inspect(data)
	if err != nil {
		log.Printf("❌ PDF inspection failed for %s: %v", header.Filename, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_pdf",
			Message: "Failed to read PDF structure: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	// Store the original under a per-user prefix
	key := fmt.Sprintf("%s/%s.pdf", user.ID, uuid.New().String())
	if err := h.Store.Put(c.Request.Context(), key, bytes.NewReader(data), int64(len(data)), "application/pdf"); err != nil {
		log.Printf("❌ Failed to store PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "storage_error",
			Message: "Failed to store uploaded file",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = strings.TrimSuffix(header.Filename, ext)
	}

	book := &models.Book{
		UserID:     user.ID,
		Title:      title,
		Content:    info.Text,
		FileKey:    &key,
		TotalPages: info.PageCount,
		BookType:   models.BookTypePDF,
	}
	if author := c.PostForm("author"); author != "" {
		book.Author = &author
	}

	if err := h.DB.CreateBook(c.Request.Context(), book); err != nil {
		log.Printf("❌ Failed to create book: %v", err)
		// Best effort: don't leave an orphaned object behind
		if delErr := h.Store.Delete(c.Request.Context(), key); delErr != nil {
			log.Printf("⚠️  Failed to clean up object %s: %v", key, delErr)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to create book",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	h.enqueueKeywordAnalysis(c, book.ID)

	c.JSON(http.StatusCreated, book)
}

// ListBooks returns the user's library with embedded reading progress.
// GET /api/v1/books
func (h *Handler) ListBooks(c *gin.Context) {
	user := middleware.GetUser(c)

	books, err := h.DB.ListBooksWithProgress(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Failed to list books: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to list books",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if books == nil {
		books = []models.BookWithProgress{}
	}

	c.JSON(http.StatusOK, books)
}

// GetBook returns a single book owned by the user.
// GET /api/v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	book, ok := h.bookForUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book, its progress and keywords, and (best effort)
// its stored PDF.
// DELETE /api/v1/books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	user := middleware.GetUser(c)
	id := c.Param("id")

	book, err := h.DB.GetBook(c.Request.Context(), id)
	if err != nil || book.UserID != user.ID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Book not found",
			Code:    http.StatusNotFound,
		})
		return
	}

	if err := h.DB.DeleteBook(c.Request.Context(), id, user.ID); err != nil {
		log.Printf("❌ Failed to delete book %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to delete book",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	// The database row is gone; a leaked object is only wasted space.
	if book.FileKey != nil {
		if err := h.Store.Delete(c.Request.Context(), *book.FileKey); err != nil {
			log.Printf("⚠️  Failed to delete object %s: %v", *book.FileKey, err)
		}
	}

	c.Status(http.StatusNoContent)
}

// GetViewURL returns a presigned URL for reading a PDF book.
// GET /api/v1/books/:id/view-url
func (h *Handler) GetViewURL(c *gin.Context) {
	book, ok := h.bookForUser(c)
	if !ok {
		return
	}
	if book.FileKey == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "not_a_pdf",
			Message: "This book has no stored file; read it through the reader endpoint",
			Code:    http.StatusBadRequest,
		})
		return
	}

	url, expires, err := h.Store.PresignGet(c.Request.Context(), *book.FileKey)
	if err != nil {
		log.Printf("⚠️  Presign failed for %s, falling back to public URL: %v", *book.FileKey, err)
		c.JSON(http.StatusOK, models.ViewURLResponse{
			URL:    h.Store.PublicURL(*book.FileKey),
			Signed: false,
		})
		return
	}

	c.JSON(http.StatusOK, models.ViewURLResponse{
		URL:       url,
		Signed:    true,
		ExpiresAt: &expires,
	})
}

// bookForUser loads the :id book and enforces ownership, writing the 404
// itself so callers can simply return on !ok.
func (h *Handler) bookForUser(c *gin.Context) (*models.Book, bool) {
	user := middleware.GetUser(c)

	book, err := h.DB.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil || book.UserID != user.ID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Book not found",
			Code:    http.StatusNotFound,
		})
		return nil, false
	}
	return book, true
}

// enqueueKeywordAnalysis marks a book pending and submits the background
// job. Queue-full is logged, not surfaced — the user can re-trigger
// analysis later.
func (h *Handler) enqueueKeywordAnalysis(c *gin.Context, bookID string) {
	if err := h.DB.UpsertKeywordAnalysis(c.Request.Context(), bookID, models.AnalysisPending, "", ""); err != nil {
		log.Printf("⚠️  Failed to mark analysis pending for %s: %v", bookID, err)
	}
	if err := h.Worker.Submit(worker.Job{
		BookID:    bookID,
		Type:      worker.JobKeywordAnalysis,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Printf("⚠️  Failed to queue keyword analysis for %s: %v", bookID, err)
	}
}
