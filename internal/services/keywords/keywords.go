// Package keywords extracts candidate vocabulary terms from book text.
//
// Two local strategies are provided. StaticExtractor scans for the known
// glossary vocabulary; FrequencyExtractor surfaces the most frequent
// content words of the text itself. The AI-backed extraction lives in the
// ai package and falls back to FrequencyExtractor when the gateway is
// unavailable.
package keywords

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cosmos-reader/cosmos-reader-api/internal/services/glossary"
)

// Extractor produces an alphabetically sorted, deduplicated keyword list
// from raw book text.
type Extractor interface {
	Extract(text string) []string
}

// StaticExtractor matches text against the fixed glossary vocabulary.
type StaticExtractor struct{}

// Extract returns every glossary term whose normalized form appears as a
// substring of the normalized text. Results are sorted alphabetically.
func (StaticExtractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	// Normalize word by word so term boundaries survive; a single
	// whole-text normalization would glue adjacent words together and
	// create false substring matches.
	normWords := make([]string, 0, 64)
	for _, w := range strings.Fields(text) {
		if n := glossary.Normalize(w); n != "" {
			normWords = append(normWords, n)
		}
	}
	haystack := " " + strings.Join(normWords, " ") + " "

	var found []string
	for _, term := range glossary.Vocabulary() {
		if strings.Contains(haystack, term) {
			found = append(found, term)
		}
	}
	sort.Strings(found)
	return found
}

// MaxFrequencyKeywords caps how many terms FrequencyExtractor returns.
const MaxFrequencyKeywords = 50

// stopwords holds common English and Portuguese words excluded from
// frequency extraction.
var stopwords = map[string]bool{
	// English
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"from": true, "they": true, "have": true, "were": true, "been": true,
	"their": true, "which": true, "would": true, "there": true, "when": true,
	"what": true, "about": true, "into": true, "more": true, "other": true,
	"some": true, "could": true, "them": true, "than": true, "then": true,
	"these": true, "also": true, "after": true, "where": true, "over": true,
	"such": true, "only": true, "most": true, "very": true, "like": true,
	"just": true, "because": true, "through": true, "during": true,
	"before": true, "between": true, "under": true, "while": true,
	// Portuguese
	"para": true, "como": true, "mais": true, "pela": true, "pelo": true,
	"este": true, "esta": true, "esse": true, "essa": true, "isso": true,
	"aqui": true, "quando": true, "onde": true, "porque": true, "entre": true,
	"sobre": true, "depois": true, "antes": true, "muito": true, "pode": true,
	"seus": true, "suas": true, "pelos": true, "pelas": true, "também": true,
	"tambem": true, "então": true, "entao": true, "assim": true, "ainda": true,
}

// FrequencyExtractor surfaces the most frequent content words of the text.
type FrequencyExtractor struct{}

// Extract tokenizes text (keeping accented letters), drops short words,
// stopwords and purely numeric tokens, then keeps the
// MaxFrequencyKeywords most frequent terms. Mixed alphanumerics like
// "apollo11" count as content words. The result is sorted alphabetically.
func (FrequencyExtractor) Extract(text string) []string {
	counts := make(map[string]int)
	for _, tok := range tokenize(text) {
		if len([]rune(tok)) <= 3 {
			continue
		}
		if stopwords[tok] {
			continue
		}
		if isNumeric(tok) {
			continue
		}
		counts[tok]++
	}
	if len(counts) == 0 {
		return nil
	}

	terms := make([]string, 0, len(counts))
	for t := range counts {
		terms = append(terms, t)
	}
	// Rank by frequency, alphabetical among ties, then truncate.
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > MaxFrequencyKeywords {
		terms = terms[:MaxFrequencyKeywords]
	}
	sort.Strings(terms)
	return terms
}

// tokenize lowercases text and splits it into letter runs, preserving
// accented characters so Portuguese words stay intact.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
