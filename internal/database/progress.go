// progress.go contains reading progress queries.
//
// The pages_read column is a monotonic high-water-mark. The upsert below
// enforces that with GREATEST at the database, so a concurrent page turn
// from a second tab can never regress progress — the only safeguard the
// system needs against racing handlers.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// GetProgress retrieves the progress row for a (user, book) pair.
// Returns (nil, nil) when the user has not started the book yet.
func (db *DB) GetProgress(ctx context.Context, userID, bookID string) (*models.ReadingProgress, error) {
	var rp models.ReadingProgress
	err := db.GetContext(ctx, &rp,
		`SELECT * FROM reading_progress WHERE user_id = $1 AND book_id = $2`,
		userID, bookID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	return &rp, nil
}

// UpsertProgress records a page navigation: one atomic insert-or-update
// keyed on (user_id, book_id). pages_read only ever goes up.
func (db *DB) UpsertProgress(ctx context.Context, userID, bookID string, page int) (*models.ReadingProgress, error) {
	var rp models.ReadingProgress
	query := `
		INSERT INTO reading_progress (user_id, book_id, current_page, pages_read, last_read_at)
		VALUES ($1, $2, $3, $3, NOW())
		ON CONFLICT (user_id, book_id) DO UPDATE
		SET current_page = EXCLUDED.current_page,
		    pages_read   = GREATEST(reading_progress.pages_read, EXCLUDED.current_page),
		    last_read_at = NOW()
		RETURNING *`

	if err := db.GetContext(ctx, &rp, query, userID, bookID, page); err != nil {
		return nil, fmt.Errorf("failed to record progress: %w", err)
	}
	return &rp, nil
}

// ListProgressSince returns progress rows touched at or after the cutoff,
// used by the daily-pages leaderboard.
func (db *DB) ListProgressSince(ctx context.Context, since time.Time) ([]models.ReadingProgress, error) {
	var rows []models.ReadingProgress
	err := db.SelectContext(ctx, &rows,
		`SELECT * FROM reading_progress WHERE last_read_at >= $1`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return rows, nil
}
