package achievements

import "testing"

func earnedSet(c Counts) map[string]bool {
	set := map[string]bool{}
	for _, b := range Evaluate(c) {
		if b.Earned {
			set[b.Type] = true
		}
	}
	return set
}

func TestEvaluateNoActivity(t *testing.T) {
	if got := earnedSet(Counts{}); len(got) != 0 {
		t.Errorf("fresh user earned badges: %v", got)
	}
}

func TestEvaluateBookThresholds(t *testing.T) {
	tests := []struct {
		books int
		want  []string
	}{
		{0, nil},
		{1, []string{BadgeReader}},
		{4, []string{BadgeReader}},
		{5, []string{BadgeReader, BadgeScholar}},
		{10, []string{BadgeReader, BadgeScholar, BadgeMaster}},
		{99, []string{BadgeReader, BadgeScholar, BadgeMaster}},
	}

	for _, tt := range tests {
		got := earnedSet(Counts{Books: tt.books})
		if len(got) != len(tt.want) {
			t.Errorf("books=%d: earned %v, want %v", tt.books, got, tt.want)
			continue
		}
		for _, w := range tt.want {
			if !got[w] {
				t.Errorf("books=%d: missing %s", tt.books, w)
			}
		}
	}
}

func TestEvaluateKeywordThresholds(t *testing.T) {
	tests := []struct {
		clicks int
		want   int // number of keyword badges earned
	}{
		{9, 0},
		{10, 1},
		{25, 2},
		{49, 2},
		{50, 3},
	}
	for _, tt := range tests {
		got := earnedSet(Counts{KeywordClicks: tt.clicks})
		n := 0
		for _, typ := range []string{BadgeKeywordBronze, BadgeKeywordSilver, BadgeKeywordGold} {
			if got[typ] {
				n++
			}
		}
		if n != tt.want {
			t.Errorf("clicks=%d: %d keyword badges earned, want %d", tt.clicks, n, tt.want)
		}
	}
}

func TestEvaluateTelescopeHunters(t *testing.T) {
	got := earnedSet(Counts{HubbleClicks: 5, ChandraClicks: 4, WebbClicks: 6})
	if !got[BadgeHubbleHunter] {
		t.Error("hubble hunter not earned at 5 clicks")
	}
	if got[BadgeChandraHunter] {
		t.Error("chandra hunter earned at 4 clicks")
	}
	if !got[BadgeWebbHunter] {
		t.Error("webb hunter not earned at 6 clicks")
	}
}

func TestEvaluateCollector(t *testing.T) {
	almost := Counts{Books: 10, KeywordClicks: 49}
	if earnedSet(almost)[BadgeCollector] {
		t.Error("collector earned with keyword gold missing")
	}

	full := Counts{Books: 10, KeywordClicks: 50}
	if !earnedSet(full)[BadgeCollector] {
		t.Error("collector not earned with all library and keyword badges unlocked")
	}

	// Telescope hunters don't gate collector.
	if earnedSet(full)[BadgeHubbleHunter] {
		t.Error("hubble hunter earned with zero clicks")
	}
}

func TestEvaluateProgressCapped(t *testing.T) {
	for _, b := range Evaluate(Counts{Books: 100, KeywordClicks: 500}) {
		if b.Progress > b.Threshold {
			t.Errorf("badge %s progress %d exceeds threshold %d", b.Type, b.Progress, b.Threshold)
		}
	}
}

func TestEvaluateStableShape(t *testing.T) {
	a := Evaluate(Counts{})
	b := Evaluate(Counts{Books: 50, KeywordClicks: 50, HubbleClicks: 50, ChandraClicks: 50, WebbClicks: 50})
	if len(a) != len(b) {
		t.Fatalf("badge set size varies: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Type != b[i].Type {
			t.Errorf("badge order varies at %d: %s vs %s", i, a[i].Type, b[i].Type)
		}
	}
}

func TestEarnedTypes(t *testing.T) {
	types := EarnedTypes(Evaluate(Counts{Books: 5}))
	want := map[string]bool{BadgeReader: true, BadgeScholar: true}
	if len(types) != len(want) {
		t.Fatalf("got %v, want reader+scholar", types)
	}
	for _, typ := range types {
		if !want[typ] {
			t.Errorf("unexpected earned type %s", typ)
		}
	}
}
