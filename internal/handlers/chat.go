// chat.go handles the reading assistant endpoints.
//
// GET  /api/v1/chat — Session + message history (optional ?book_id=)
// POST /api/v1/chat — Send a message, get the assistant's reply
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cosmos-reader/cosmos-reader-api/internal/middleware"
	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// historyLimit caps how many past messages are replayed to the model.
const historyLimit = 20

// GetChat returns the user's session and message history for the given
// book context (or the general session without book_id).
// GET /api/v1/chat?book_id=...
func (h *Handler) GetChat(c *gin.Context) {
	user := middleware.GetUser(c)
	ctx := c.Request.Context()

	bookID := h.chatBookID(c)
	if c.IsAborted() {
		return
	}

	session, err := h.DB.GetOrCreateChatSession(ctx, user.ID, bookID)
	if err != nil {
		log.Printf("❌ Failed to load chat session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load chat session",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	messages, err := h.DB.ListChatMessages(ctx, session.ID, 50)
	if err != nil {
		log.Printf("❌ Failed to list chat messages: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load chat history",
			Code:    http.StatusInternalServerError,
		})
		return
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Session:  *session,
		Messages: messages,
	})
}

// SendChatMessage stores the user's message, calls the assistant and
// stores + returns the reply. When book_id is set, the book's text is
// passed to the model as context.
// POST /api/v1/chat
func (h *Handler) SendChatMessage(c *gin.Context) {
	user := middleware.GetUser(c)
	ctx := c.Request.Context()

	var req models.CreateChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "A message is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var bookID *string
	bookContext := ""
	if req.BookID != "" {
		book, err := h.DB.GetBook(ctx, req.BookID)
		if err != nil || book.UserID != user.ID {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Book not found",
				Code:    http.StatusNotFound,
			})
			return
		}
		bookID = &book.ID
		bookContext = book.Title + "\n\n" + book.Content
	}

	session, err := h.DB.GetOrCreateChatSession(ctx, user.ID, bookID)
	if err != nil {
		log.Printf("❌ Failed to load chat session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load chat session",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	history, err := h.DB.ListChatMessages(ctx, session.ID, historyLimit)
	if err != nil {
		log.Printf("❌ Failed to load chat history: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to load chat history",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	userMsg := &models.ChatMessage{
		SessionID: session.ID,
		Role:      "user",
		Content:   req.Message,
	}
	if err := h.DB.CreateChatMessage(ctx, userMsg); err != nil {
		log.Printf("❌ Failed to store message: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "Failed to store message",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	reply, model, err := h.AI.Chat(ctx, history, req.Message, bookContext)
	if err != nil {
		log.Printf("❌ Assistant reply failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "ai_error",
			Message: "The assistant is unavailable right now",
			Code:    http.StatusBadGateway,
		})
		return
	}

	assistantMsg := &models.ChatMessage{
		SessionID: session.ID,
		Role:      "assistant",
		Content:   reply,
		ModelUsed: model,
	}
	if err := h.DB.CreateChatMessage(ctx, assistantMsg); err != nil {
		// The reply exists; losing the stored copy is not worth a 500.
		log.Printf("⚠️  Failed to store assistant reply: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"message": assistantMsg,
	})
}

// chatBookID parses the optional book_id query param and enforces
// ownership, aborting with an error response on a bad ID.
func (h *Handler) chatBookID(c *gin.Context) *string {
	raw := c.Query("book_id")
	if raw == "" {
		return nil
	}

	user := middleware.GetUser(c)
	book, err := h.DB.GetBook(c.Request.Context(), raw)
	if err != nil || book.UserID != user.ID {
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Book not found",
			Code:    http.StatusNotFound,
		})
		return nil
	}
	return &book.ID
}
