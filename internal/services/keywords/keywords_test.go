package keywords

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

func TestStaticExtractorFindsGlossaryTerms(t *testing.T) {
	text := "The AURORA danced above the ionosphere while a satélite crossed the sky."
	got := StaticExtractor{}.Extract(text)

	want := map[string]bool{"aurora": true, "ionosphere": true, "satelite": true}
	for _, term := range got {
		if !want[term] {
			t.Errorf("unexpected term %q", term)
		}
		delete(want, term)
	}
	for term := range want {
		t.Errorf("missing term %q", term)
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("result not sorted: %v", got)
	}
}

func TestStaticExtractorEmptyText(t *testing.T) {
	if got := (StaticExtractor{}).Extract(""); got != nil {
		t.Errorf("Extract(\"\") = %v, want nil", got)
	}
}

func TestStaticExtractorNoMatches(t *testing.T) {
	got := StaticExtractor{}.Extract("nothing here matches the vocabulary at all")
	if len(got) != 0 {
		t.Errorf("got %v, want no terms", got)
	}
}

func TestFrequencyExtractorFilters(t *testing.T) {
	text := "aurora aurora aurora the the the and sun sol 2024 19570 magnetosfera magnetosfera"
	got := FrequencyExtractor{}.Extract(text)

	for _, term := range got {
		switch term {
		case "the", "and":
			t.Errorf("stopword %q survived", term)
		case "sun", "sol":
			t.Errorf("short word %q survived", term)
		case "2024", "19570":
			t.Errorf("numeric token %q survived", term)
		}
	}

	found := map[string]bool{}
	for _, term := range got {
		found[term] = true
	}
	if !found["aurora"] || !found["magnetosfera"] {
		t.Errorf("content words missing from %v", got)
	}
}

func TestFrequencyExtractorKeepsAlphanumerics(t *testing.T) {
	// Only all-digit tokens are numeric; mission names like "apollo11"
	// are content words.
	got := (FrequencyExtractor{}).Extract("apollo11 apollo11 apollo11 landing landing landing")

	found := map[string]bool{}
	for _, term := range got {
		found[term] = true
	}
	if !found["apollo11"] {
		t.Errorf("alphanumeric token lost: %v", got)
	}
	if !found["landing"] {
		t.Errorf("content word lost: %v", got)
	}
}

func TestFrequencyExtractorKeepsAccents(t *testing.T) {
	got := FrequencyExtractor{}.Extract("radiação radiação radiação atinge satélites")
	found := map[string]bool{}
	for _, term := range got {
		found[term] = true
	}
	if !found["radiação"] {
		t.Errorf("accented token lost: %v", got)
	}
}

func TestFrequencyExtractorCapsAndSorts(t *testing.T) {
	// 60 distinct words; rarer words appear once, frequent words three
	// times, so the cap keeps the frequent ones.
	var b strings.Builder
	for i := 0; i < 60; i++ {
		word := fmt.Sprintf("word%c%c", 'a'+i/26, 'a'+i%26)
		reps := 1
		if i < MaxFrequencyKeywords {
			reps = 3
		}
		for r := 0; r < reps; r++ {
			b.WriteString(word)
			b.WriteByte(' ')
		}
	}

	got := FrequencyExtractor{}.Extract(b.String())
	if len(got) != MaxFrequencyKeywords {
		t.Fatalf("got %d terms, want %d", len(got), MaxFrequencyKeywords)
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("result not sorted alphabetically")
	}
	for _, term := range got {
		idx := int(term[4]-'a')*26 + int(term[5]-'a')
		if idx >= MaxFrequencyKeywords {
			t.Errorf("low-frequency term %q beat a frequent one into the cap", term)
		}
	}
}

func TestFrequencyExtractorEmpty(t *testing.T) {
	if got := (FrequencyExtractor{}).Extract("a an to 12 the"); len(got) != 0 {
		t.Errorf("got %v, want no terms", got)
	}
}
