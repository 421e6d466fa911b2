// stats.go contains keyword-click counter queries.
//
// Counters use single-statement atomic upsert-increments. The UI fires a
// click per glossary interaction; fetch-then-write here would under-count
// with two tabs open, so the increment lives at the data-store boundary.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// Telescope counter column names, validated before interpolation.
var telescopeColumns = map[string]string{
	"hubble":  "hubble_clicks",
	"chandra": "chandra_clicks",
	"webb":    "webb_clicks",
}

// IncrementKeywordClick bumps the user's keyword click counter by one and,
// when telescope names a known family, the matching telescope counter too.
// Returns the updated row.
func (db *DB) IncrementKeywordClick(ctx context.Context, userID, telescope string) (*models.UserStats, error) {
	col, ok := telescopeColumns[telescope]

	var stats models.UserStats
	var err error
	if ok {
		// Sprintf is safe here: col comes from the fixed map above.
		query := fmt.Sprintf(`
			INSERT INTO user_stats (user_id, keyword_clicks, %[1]s, updated_at)
			VALUES ($1, 1, 1, NOW())
			ON CONFLICT (user_id) DO UPDATE
			SET keyword_clicks = user_stats.keyword_clicks + 1,
			    %[1]s = user_stats.%[1]s + 1,
			    updated_at = NOW()
			RETURNING *`, col)
		err = db.GetContext(ctx, &stats, query, userID)
	} else {
		query := `
			INSERT INTO user_stats (user_id, keyword_clicks, updated_at)
			VALUES ($1, 1, NOW())
			ON CONFLICT (user_id) DO UPDATE
			SET keyword_clicks = user_stats.keyword_clicks + 1,
			    updated_at = NOW()
			RETURNING *`
		err = db.GetContext(ctx, &stats, query, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment keyword click: %w", err)
	}
	return &stats, nil
}

// GetUserStats retrieves the counters for one user. A user with no clicks
// yet gets a zero-valued row rather than an error.
func (db *DB) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	var stats models.UserStats
	err := db.GetContext(ctx, &stats,
		`SELECT * FROM user_stats WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.UserStats{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user stats: %w", err)
	}
	return &stats, nil
}

// ListUserStats returns every counter row (leaderboard input).
func (db *DB) ListUserStats(ctx context.Context) ([]models.UserStats, error) {
	var rows []models.UserStats
	if err := db.SelectContext(ctx, &rows, `SELECT * FROM user_stats`); err != nil {
		return nil, fmt.Errorf("failed to list user stats: %w", err)
	}
	return rows, nil
}

// ListUserStatsSince returns counter rows updated at or after the cutoff,
// used by the weekly-keywords leaderboard.
func (db *DB) ListUserStatsSince(ctx context.Context, since time.Time) ([]models.UserStats, error) {
	var rows []models.UserStats
	err := db.SelectContext(ctx, &rows,
		`SELECT * FROM user_stats WHERE updated_at >= $1`, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list user stats: %w", err)
	}
	return rows, nil
}
