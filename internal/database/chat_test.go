package database

import (
	"testing"
	"time"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

func TestOldestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	newestFirst := []models.ChatMessage{
		{ID: "m3", CreatedAt: base.Add(2 * time.Minute)},
		{ID: "m2", CreatedAt: base.Add(1 * time.Minute)},
		{ID: "m1", CreatedAt: base},
	}

	got := oldestFirst(newestFirst)
	for i, want := range []string{"m1", "m2", "m3"} {
		if got[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, want)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Errorf("messages not chronological at %d", i)
		}
	}
}

func TestOldestFirstDegenerate(t *testing.T) {
	if got := oldestFirst(nil); len(got) != 0 {
		t.Errorf("nil slice grew to %v", got)
	}
	single := oldestFirst([]models.ChatMessage{{ID: "only"}})
	if len(single) != 1 || single[0].ID != "only" {
		t.Errorf("single message mangled: %v", single)
	}
}
