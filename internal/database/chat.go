// chat.go contains assistant chat session and message queries.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// GetOrCreateChatSession finds or creates the user's chat session for the
// given book context (nil bookID = the general assistant session).
func (db *DB) GetOrCreateChatSession(ctx context.Context, userID string, bookID *string) (*models.ChatSession, error) {
	var session models.ChatSession
	var err error

	if bookID != nil {
		err = db.GetContext(ctx, &session,
			`SELECT * FROM chat_sessions WHERE user_id = $1 AND book_id = $2`,
			userID, *bookID)
	} else {
		err = db.GetContext(ctx, &session,
			`SELECT * FROM chat_sessions WHERE user_id = $1 AND book_id IS NULL`,
			userID)
	}

	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to fetch chat session: %w", err)
	}

	query := `
		INSERT INTO chat_sessions (user_id, book_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	if err := db.QueryRowContext(ctx, query, userID, bookID).
		Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	session.UserID = userID
	session.BookID = bookID

	return &session, nil
}

// ListChatMessages returns the newest limit messages for a session,
// ordered oldest first so they replay chronologically. Fetching newest
// keeps long conversations from pinning the window to their opening turns.
func (db *DB) ListChatMessages(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var messages []models.ChatMessage
	err := db.SelectContext(ctx, &messages,
		`SELECT * FROM chat_messages WHERE session_id = $1 ORDER BY created_at DESC LIMIT $2`,
		sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return oldestFirst(messages), nil
}

// oldestFirst reverses a newest-first message slice in place.
func oldestFirst(messages []models.ChatMessage) []models.ChatMessage {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages
}

// CreateChatMessage inserts a chat message and bumps the session timestamp.
func (db *DB) CreateChatMessage(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (session_id, role, content, model_used)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	if err := db.QueryRowContext(ctx, query,
		msg.SessionID, msg.Role, msg.Content, msg.ModelUsed,
	).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}

	_, _ = db.ExecContext(ctx,
		`UPDATE chat_sessions SET updated_at = NOW() WHERE id = $1`,
		msg.SessionID)
	return nil
}
