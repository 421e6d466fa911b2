// users.go contains user account queries.
package database

import (
	"context"
	"fmt"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// CreateUser inserts a new user and fills in the generated ID and timestamp.
func (db *DB) CreateUser(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Name).
		Scan(&u.ID, &u.CreatedAt)
}

// GetUserByEmail retrieves a user by email (used during login).
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := db.GetContext(ctx, &u, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByID retrieves a user by ID (used by the JWT middleware).
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := db.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return &u, nil
}

// ListUserNames returns a user_id -> display name map for leaderboard rows.
func (db *DB) ListUserNames(ctx context.Context) (map[string]string, error) {
	rows := []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}{}
	if err := db.SelectContext(ctx, &rows, `SELECT id, name FROM users`); err != nil {
		return nil, fmt.Errorf("failed to list user names: %w", err)
	}
	names := make(map[string]string, len(rows))
	for _, r := range rows {
		names[r.ID] = r.Name
	}
	return names, nil
}
