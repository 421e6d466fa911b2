// Package achievements evaluates gamification badges from live counts.
//
// Badges are derived, not stored: given the current book count, keyword
// click count and per-telescope clicks, Evaluate produces the full badge
// set with earned flags and progress. The persisted user_achievements rows
// only record when each badge first unlocked.
package achievements

import "github.com/cosmos-reader/cosmos-reader-api/internal/models"

// Badge type identifiers, stored in user_achievements.badge_type.
const (
	BadgeReader        = "reader"
	BadgeScholar       = "scholar"
	BadgeMaster        = "master"
	BadgeKeywordBronze = "keyword_bronze"
	BadgeKeywordSilver = "keyword_silver"
	BadgeKeywordGold   = "keyword_gold"
	BadgeHubbleHunter  = "hubble_hunter"
	BadgeChandraHunter = "chandra_hunter"
	BadgeWebbHunter    = "webb_hunter"
	BadgeCollector     = "collector"
)

// TelescopeHunterThreshold is the per-telescope click count that unlocks a
// hunter badge.
const TelescopeHunterThreshold = 5

// Counts are the inputs to badge evaluation.
type Counts struct {
	Books         int
	KeywordClicks int
	HubbleClicks  int
	ChandraClicks int
	WebbClicks    int
}

// Evaluate derives the full badge set from current counts. The returned
// slice is always the same length and order, so clients can render a
// stable grid.
func Evaluate(c Counts) []models.Badge {
	badges := []models.Badge{
		thresholdBadge(BadgeReader, "Reader", "Add your first book to the library", c.Books, 1),
		thresholdBadge(BadgeScholar, "Scholar", "Build a library of 5 books", c.Books, 5),
		thresholdBadge(BadgeMaster, "Master", "Build a library of 10 books", c.Books, 10),
		thresholdBadge(BadgeKeywordBronze, "Word Explorer", "Click 10 keywords while reading", c.KeywordClicks, 10),
		thresholdBadge(BadgeKeywordSilver, "Word Hunter", "Click 25 keywords while reading", c.KeywordClicks, 25),
		thresholdBadge(BadgeKeywordGold, "Word Champion", "Click 50 keywords while reading", c.KeywordClicks, 50),
		thresholdBadge(BadgeHubbleHunter, "Hubble Hunter", "Spot Hubble 5 times in your reading", c.HubbleClicks, TelescopeHunterThreshold),
		thresholdBadge(BadgeChandraHunter, "Chandra Hunter", "Spot Chandra 5 times in your reading", c.ChandraClicks, TelescopeHunterThreshold),
		thresholdBadge(BadgeWebbHunter, "Webb Hunter", "Spot the James Webb telescope 5 times", c.WebbClicks, TelescopeHunterThreshold),
	}

	// Collector unlocks once all six library and keyword badges are earned.
	// Telescope hunters are a bonus family and don't gate it.
	earned := 0
	for _, b := range badges[:6] {
		if b.Earned {
			earned++
		}
	}
	badges = append(badges, models.Badge{
		Type:        BadgeCollector,
		Title:       "Collector",
		Description: "Earn every library and keyword badge",
		Earned:      earned == 6,
		Threshold:   6,
		Progress:    earned,
	})

	return badges
}

func thresholdBadge(typ, title, desc string, count, threshold int) models.Badge {
	progress := count
	if progress > threshold {
		progress = threshold
	}
	return models.Badge{
		Type:        typ,
		Title:       title,
		Description: desc,
		Earned:      count >= threshold,
		Threshold:   threshold,
		Progress:    progress,
	}
}

// EarnedTypes returns the badge_type of every earned badge, for
// resynchronizing the persisted unlock rows.
func EarnedTypes(badges []models.Badge) []string {
	var types []string
	for _, b := range badges {
		if b.Earned {
			types = append(types, b.Type)
		}
	}
	return types
}
