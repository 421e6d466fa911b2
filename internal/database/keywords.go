// keywords.go contains AI keyword analysis queries.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// UpsertKeywordAnalysis sets the analysis status for a book (one row per
// book, replaced on each run).
func (db *DB) UpsertKeywordAnalysis(ctx context.Context, bookID string, status models.AnalysisStatus, errMsg, modelUsed string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO book_keyword_analyses (book_id, status, error_message, model_used, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (book_id) DO UPDATE
		SET status = EXCLUDED.status,
		    error_message = EXCLUDED.error_message,
		    model_used = EXCLUDED.model_used,
		    updated_at = NOW()`,
		bookID, status, errMsg, modelUsed)
	if err != nil {
		return fmt.Errorf("failed to upsert keyword analysis: %w", err)
	}
	return nil
}

// GetKeywordAnalysis returns the analysis status row for a book, or
// (nil, nil) when the book has never been analyzed.
func (db *DB) GetKeywordAnalysis(ctx context.Context, bookID string) (*models.KeywordAnalysis, error) {
	var ka models.KeywordAnalysis
	err := db.GetContext(ctx, &ka,
		`SELECT * FROM book_keyword_analyses WHERE book_id = $1`, bookID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword analysis: %w", err)
	}
	return &ka, nil
}

// ReplaceBookKeywords swaps the stored keyword set for a book in one
// transaction, so readers never observe a half-written extraction.
func (db *DB) ReplaceBookKeywords(ctx context.Context, bookID string, keywords []models.BookKeyword) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // No-op after a successful Commit

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM book_keywords WHERE book_id = $1`, bookID); err != nil {
		return fmt.Errorf("failed to clear keywords: %w", err)
	}

	for _, kw := range keywords {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO book_keywords (book_id, keyword, definition, category, example, source)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			bookID, kw.Keyword, kw.Definition, kw.Category, kw.Example, kw.Source)
		if err != nil {
			return fmt.Errorf("failed to insert keyword %q: %w", kw.Keyword, err)
		}
	}

	return tx.Commit()
}

// ListBookKeywords returns the stored keywords for a book, alphabetically.
func (db *DB) ListBookKeywords(ctx context.Context, bookID string) ([]models.BookKeyword, error) {
	var rows []models.BookKeyword
	err := db.SelectContext(ctx, &rows,
		`SELECT * FROM book_keywords WHERE book_id = $1 ORDER BY keyword ASC`, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list keywords: %w", err)
	}
	return rows, nil
}
