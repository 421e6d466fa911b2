// Package leaderboard composes ranked boards from per-user counts.
//
// The composite board scores achievements at 100 points, books at 50 and
// keyword clicks at 2. All boards are deterministic: ties break by user ID
// ascending so repeated requests render identical rankings.
package leaderboard

import (
	"sort"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// Score weights for the composite board.
const (
	PointsPerAchievement  = 100
	PointsPerBook         = 50
	PointsPerKeywordClick = 2
)

// TopN is how many rows each board returns.
const TopN = 10

// Score computes the composite score from raw counts.
func Score(achievements, books, keywordClicks int) int {
	return achievements*PointsPerAchievement + books*PointsPerBook + keywordClicks*PointsPerKeywordClick
}

// Compose builds the composite leaderboard.
//
// stats carries keyword click counts; achievementOwners and bookOwners
// hold one user ID per unlocked badge / owned book. A user appears on the
// board when seen in any of the three sources, so a reader with books but
// no clicks still ranks. names maps user ID to display name; unknown users
// render with an empty name rather than being dropped.
func Compose(stats []models.UserStats, achievementOwners, bookOwners []string, names map[string]string) []models.LeaderboardEntry {
	byUser := make(map[string]*models.LeaderboardEntry)
	entry := func(userID string) *models.LeaderboardEntry {
		if e, ok := byUser[userID]; ok {
			return e
		}
		e := &models.LeaderboardEntry{UserID: userID, Name: names[userID]}
		byUser[userID] = e
		return e
	}

	for _, s := range stats {
		entry(s.UserID).KeywordClicks = s.KeywordClicks
	}
	for _, userID := range achievementOwners {
		entry(userID).Achievements++
	}
	for _, userID := range bookOwners {
		entry(userID).Books++
	}

	board := make([]models.LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		e.TotalScore = Score(e.Achievements, e.Books, e.KeywordClicks)
		board = append(board, *e)
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].TotalScore != board[j].TotalScore {
			return board[i].TotalScore > board[j].TotalScore
		}
		return board[i].UserID < board[j].UserID
	})
	if len(board) > TopN {
		board = board[:TopN]
	}
	return board
}

// Scoreboard ranks users by a single summed metric: pass one (userID,
// value) pair per contributing row and pairs for the same user are summed.
// Used for the daily pages, weekly clicks and collector boards.
func Scoreboard(pairs []Pair, names map[string]string) []models.ScoreboardEntry {
	totals := make(map[string]int)
	for _, p := range pairs {
		totals[p.UserID] += p.Value
	}

	board := make([]models.ScoreboardEntry, 0, len(totals))
	for userID, value := range totals {
		if value <= 0 {
			continue
		}
		board = append(board, models.ScoreboardEntry{
			UserID: userID,
			Name:   names[userID],
			Value:  value,
		})
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].Value != board[j].Value {
			return board[i].Value > board[j].Value
		}
		return board[i].UserID < board[j].UserID
	})
	if len(board) > TopN {
		board = board[:TopN]
	}
	return board
}

// Pair is one (user, value) contribution to a Scoreboard.
type Pair struct {
	UserID string
	Value  int
}
