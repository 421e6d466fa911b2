// Package pagination splits book text into fixed-size pages and tracks
// reader position.
//
// Pages are word-based: whitespace-delimited tokens grouped 300 to a page.
// This keeps page boundaries stable for a given text regardless of how the
// client renders it.
package pagination

import "strings"

// WordsPerPage is the fixed page size for text books.
const WordsPerPage = 300

// SplitIntoPages breaks text into pages of WordsPerPage words each.
// Text with no words (empty or all whitespace) still yields a single page
// holding the original text, so every book has at least one page to show.
func SplitIntoPages(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	pages := make([]string, 0, (len(words)+WordsPerPage-1)/WordsPerPage)
	for start := 0; start < len(words); start += WordsPerPage {
		end := start + WordsPerPage
		if end > len(words) {
			end = len(words)
		}
		pages = append(pages, strings.Join(words[start:end], " "))
	}
	return pages
}

// PageCount returns the number of pages text paginates into, minimum 1.
func PageCount(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 1
	}
	return (words + WordsPerPage - 1) / WordsPerPage
}

// Tracker holds a reader's position within one book.
//
// CurrentPage is 1-based. PagesRead is a high-water-mark: the furthest page
// ever visited. Jumping backwards moves CurrentPage but never lowers
// PagesRead.
type Tracker struct {
	TotalPages  int
	CurrentPage int
	PagesRead   int
}

// NewTracker starts a tracker at page 1 of a book with totalPages pages.
// No pages are credited until the first navigation, matching a stored
// progress row that does not exist yet; GoToPage(1) credits the first page.
func NewTracker(totalPages int) *Tracker {
	if totalPages < 1 {
		totalPages = 1
	}
	return &Tracker{TotalPages: totalPages, CurrentPage: 1}
}

// GoToPage moves the reader to page n. Out-of-range targets are rejected
// and leave the tracker unchanged; the return value reports whether the
// move happened.
func (t *Tracker) GoToPage(n int) bool {
	if n < 1 || n > t.TotalPages {
		return false
	}
	t.CurrentPage = n
	if n > t.PagesRead {
		t.PagesRead = n
	}
	return true
}

// Complete reports whether the reader has visited the final page.
func (t *Tracker) Complete() bool {
	return t.PagesRead >= t.TotalPages
}
