package pagination

import (
	"strings"
	"testing"
)

// repeatWords builds a string of n whitespace-separated words.
func repeatWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func TestSplitIntoPages(t *testing.T) {
	tests := []struct {
		name      string
		words     int
		wantPages int
		wantLast  int // words on the final page
	}{
		{"single word", 1, 1, 1},
		{"exactly one page", 300, 1, 300},
		{"one word over", 301, 2, 1},
		{"two and a bit pages", 650, 3, 50},
		{"exact multiple", 900, 3, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := SplitIntoPages(repeatWords(tt.words))
			if len(pages) != tt.wantPages {
				t.Fatalf("got %d pages, want %d", len(pages), tt.wantPages)
			}
			last := strings.Fields(pages[len(pages)-1])
			if len(last) != tt.wantLast {
				t.Errorf("final page has %d words, want %d", len(last), tt.wantLast)
			}
			for i, p := range pages[:len(pages)-1] {
				if got := len(strings.Fields(p)); got != WordsPerPage {
					t.Errorf("page %d has %d words, want %d", i+1, got, WordsPerPage)
				}
			}
		})
	}
}

func TestSplitIntoPagesEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t  \n"} {
		pages := SplitIntoPages(text)
		if len(pages) != 1 {
			t.Fatalf("SplitIntoPages(%q) returned %d pages, want 1", text, len(pages))
		}
		if pages[0] != text {
			t.Errorf("SplitIntoPages(%q) page content = %q, want the original text", text, pages[0])
		}
	}
}

func TestSplitIntoPagesPreservesWords(t *testing.T) {
	text := "The aurora glowed green over the magnetosphere while satellites drifted past"
	pages := SplitIntoPages(text)
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	joined := strings.Join(strings.Fields(pages[0]), " ")
	if joined != text {
		t.Errorf("words not preserved: got %q", joined)
	}
}

func TestPageCountMatchesSplit(t *testing.T) {
	for _, n := range []int{0, 1, 299, 300, 301, 650, 900, 1234} {
		text := repeatWords(n)
		if got, want := PageCount(text), len(SplitIntoPages(text)); got != want {
			t.Errorf("PageCount for %d words = %d, SplitIntoPages produced %d", n, got, want)
		}
	}
}

func TestNewTrackerFreshState(t *testing.T) {
	tr := NewTracker(5)
	if tr.CurrentPage != 1 {
		t.Errorf("fresh tracker current page = %d, want 1", tr.CurrentPage)
	}
	if tr.PagesRead != 0 {
		t.Errorf("fresh tracker credited %d pages before any navigation", tr.PagesRead)
	}

	tr.GoToPage(1)
	if tr.PagesRead != 1 {
		t.Errorf("visiting page 1 credited %d pages, want 1", tr.PagesRead)
	}
}

func TestTrackerGoToPage(t *testing.T) {
	tr := NewTracker(10)

	if !tr.GoToPage(5) {
		t.Fatal("GoToPage(5) rejected a valid page")
	}
	if tr.CurrentPage != 5 || tr.PagesRead != 5 {
		t.Fatalf("after GoToPage(5): current=%d pagesRead=%d", tr.CurrentPage, tr.PagesRead)
	}

	// Jumping back moves the cursor but keeps the high-water-mark.
	if !tr.GoToPage(2) {
		t.Fatal("GoToPage(2) rejected a valid page")
	}
	if tr.CurrentPage != 2 {
		t.Errorf("current page = %d, want 2", tr.CurrentPage)
	}
	if tr.PagesRead != 5 {
		t.Errorf("pages read dropped to %d after jumping back, want 5", tr.PagesRead)
	}
}

func TestTrackerRejectsOutOfRange(t *testing.T) {
	tr := NewTracker(3)
	tr.GoToPage(2)

	for _, n := range []int{0, -1, 4, 100} {
		if tr.GoToPage(n) {
			t.Errorf("GoToPage(%d) accepted an out-of-range page", n)
		}
	}
	if tr.CurrentPage != 2 || tr.PagesRead != 2 {
		t.Errorf("tracker changed by rejected moves: current=%d pagesRead=%d", tr.CurrentPage, tr.PagesRead)
	}
}

func TestTrackerComplete(t *testing.T) {
	tr := NewTracker(3)
	if tr.Complete() {
		t.Error("fresh tracker reported complete")
	}
	tr.GoToPage(3)
	if !tr.Complete() {
		t.Error("tracker on final page not complete")
	}
	tr.GoToPage(1)
	if !tr.Complete() {
		t.Error("completion lost after jumping back")
	}
}
