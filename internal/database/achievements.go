// achievements.go contains unlocked-badge queries.
//
// These rows are a display cache of the derived badge booleans. The
// evaluator recomputes "earned" from live counts on every view; this table
// only remembers when a badge first unlocked. Rows are inserted, never
// deleted.
package database

import (
	"context"
	"fmt"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// ListAchievementsByUser returns a user's unlocked badges.
func (db *DB) ListAchievementsByUser(ctx context.Context, userID string) ([]models.UserAchievement, error) {
	var rows []models.UserAchievement
	err := db.SelectContext(ctx, &rows,
		`SELECT * FROM user_achievements WHERE user_id = $1 ORDER BY unlocked_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return rows, nil
}

// ListAchievementOwners returns the user_id of every unlocked-badge row —
// one element per badge — for leaderboard aggregation.
func (db *DB) ListAchievementOwners(ctx context.Context) ([]string, error) {
	var owners []string
	if err := db.SelectContext(ctx, &owners, `SELECT user_id FROM user_achievements`); err != nil {
		return nil, fmt.Errorf("failed to list achievement owners: %w", err)
	}
	return owners, nil
}

// UnlockAchievement records a badge as unlocked, once. Re-unlocking is a
// no-op thanks to ON CONFLICT DO NOTHING — resynchronization can call this
// safely for every earned badge.
func (db *DB) UnlockAchievement(ctx context.Context, userID, badgeType string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO user_achievements (user_id, badge_type)
		VALUES ($1, $2)
		ON CONFLICT (user_id, badge_type) DO NOTHING`,
		userID, badgeType)
	if err != nil {
		return fmt.Errorf("failed to unlock achievement: %w", err)
	}
	return nil
}
