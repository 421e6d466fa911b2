package leaderboard

import (
	"fmt"
	"testing"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

func TestScore(t *testing.T) {
	// 2 achievements + 3 books + 12 clicks = 200 + 150 + 24.
	if got := Score(2, 3, 12); got != 374 {
		t.Errorf("Score(2, 3, 12) = %d, want 374", got)
	}
	if got := Score(0, 0, 0); got != 0 {
		t.Errorf("Score(0, 0, 0) = %d, want 0", got)
	}
}

func TestComposeMergesSources(t *testing.T) {
	stats := []models.UserStats{{UserID: "u1", KeywordClicks: 12}}
	achievements := []string{"u1", "u1"}
	books := []string{"u1", "u1", "u1", "u2"}
	names := map[string]string{"u1": "Ada", "u2": "Grace"}

	board := Compose(stats, achievements, books, names)
	if len(board) != 2 {
		t.Fatalf("got %d entries, want 2", len(board))
	}

	top := board[0]
	if top.UserID != "u1" || top.Name != "Ada" {
		t.Fatalf("top entry = %+v, want u1/Ada", top)
	}
	if top.Achievements != 2 || top.Books != 3 || top.KeywordClicks != 12 {
		t.Errorf("u1 counts = %+v", top)
	}
	if top.TotalScore != 374 {
		t.Errorf("u1 score = %d, want 374", top.TotalScore)
	}

	// u2 only appears in the book source but still ranks.
	if board[1].UserID != "u2" || board[1].TotalScore != 50 {
		t.Errorf("u2 entry = %+v, want score 50", board[1])
	}
}

func TestComposeTieBreaksByUserID(t *testing.T) {
	// Same score for everyone; order must be user ID ascending.
	books := []string{"u3", "u1", "u2"}
	board := Compose(nil, nil, books, nil)

	want := []string{"u1", "u2", "u3"}
	for i, w := range want {
		if board[i].UserID != w {
			t.Errorf("position %d = %s, want %s", i, board[i].UserID, w)
		}
	}
}

func TestComposeTruncatesToTopN(t *testing.T) {
	var stats []models.UserStats
	for i := 0; i < 25; i++ {
		stats = append(stats, models.UserStats{
			UserID:        fmt.Sprintf("u%02d", i),
			KeywordClicks: i,
		})
	}

	board := Compose(stats, nil, nil, nil)
	if len(board) != TopN {
		t.Fatalf("got %d entries, want %d", len(board), TopN)
	}
	if board[0].UserID != "u24" {
		t.Errorf("top entry = %s, want u24", board[0].UserID)
	}
	for i := 1; i < len(board); i++ {
		if board[i].TotalScore > board[i-1].TotalScore {
			t.Errorf("board not sorted at %d", i)
		}
	}
}

func TestComposeEmpty(t *testing.T) {
	if board := Compose(nil, nil, nil, nil); len(board) != 0 {
		t.Errorf("empty inputs produced %d entries", len(board))
	}
}

func TestScoreboardSumsPerUser(t *testing.T) {
	pairs := []Pair{
		{UserID: "u1", Value: 3},
		{UserID: "u2", Value: 5},
		{UserID: "u1", Value: 4},
	}
	board := Scoreboard(pairs, map[string]string{"u1": "Ada", "u2": "Grace"})

	if len(board) != 2 {
		t.Fatalf("got %d entries, want 2", len(board))
	}
	if board[0].UserID != "u1" || board[0].Value != 7 {
		t.Errorf("top = %+v, want u1 with 7", board[0])
	}
	if board[1].UserID != "u2" || board[1].Value != 5 {
		t.Errorf("second = %+v, want u2 with 5", board[1])
	}
}

func TestScoreboardDropsZeroValues(t *testing.T) {
	board := Scoreboard([]Pair{{UserID: "u1", Value: 0}}, nil)
	if len(board) != 0 {
		t.Errorf("zero-value user ranked: %+v", board)
	}
}
