// books.go contains library book queries.
package database

import (
	"context"
	"fmt"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// CreateBook inserts a new book record.
func (db *DB) CreateBook(ctx context.Context, b *models.Book) error {
	query := `
		INSERT INTO books (user_id, title, author, content, file_key, total_pages, book_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return db.QueryRowContext(ctx, query,
		b.UserID, b.Title, b.Author, b.Content, b.FileKey, b.TotalPages, b.BookType,
	).Scan(&b.ID, &b.CreatedAt)
}

// GetBook retrieves a single book by ID.
func (db *DB) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	err := db.GetContext(ctx, &b, `SELECT * FROM books WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListBooksWithProgress returns a user's library with the reading progress
// embedded via LEFT JOIN, mirroring the select-with-join the UI performs.
func (db *DB) ListBooksWithProgress(ctx context.Context, userID string) ([]models.BookWithProgress, error) {
	var books []models.BookWithProgress
	err := db.SelectContext(ctx, &books, `
		SELECT b.*, rp.current_page, rp.pages_read, rp.last_read_at
		FROM books b
		LEFT JOIN reading_progress rp
		  ON rp.book_id = b.id AND rp.user_id = b.user_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// ListBooksByUser returns all of a user's books (no progress join).
func (db *DB) ListBooksByUser(ctx context.Context, userID string) ([]models.Book, error) {
	var books []models.Book
	err := db.SelectContext(ctx, &books,
		`SELECT * FROM books WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// CountBooksByUser returns how many books a user owns (drives library badges).
func (db *DB) CountBooksByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM books WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// ListBookOwners returns the user_id of every book row — one element per
// book — for leaderboard aggregation.
func (db *DB) ListBookOwners(ctx context.Context) ([]string, error) {
	var owners []string
	err := db.SelectContext(ctx, &owners, `SELECT user_id FROM books`)
	if err != nil {
		return nil, fmt.Errorf("failed to list book owners: %w", err)
	}
	return owners, nil
}

// DeleteBook removes a book owned by the given user.
// Progress, keywords and analysis rows cascade at the schema level.
func (db *DB) DeleteBook(ctx context.Context, id, userID string) error {
	result, err := db.ExecContext(ctx,
		`DELETE FROM books WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("book not found")
	}
	return nil
}
