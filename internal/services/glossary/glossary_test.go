package glossary

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Radiação!", "radiacao"},
		{"radiacao", "radiacao"},
		{"RADIAÇÃO", "radiacao"},
		{"  aurora, ", "aurora"},
		{"Satélite", "satelite"},
		{"ionosphere's", "ionospheres"},
		{"COSMIC-RAY", "cosmicray"},
		{"123", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookupAccentVariantsShareEntry(t *testing.T) {
	// All spellings of the same Portuguese word resolve to one entry.
	variants := []string{"Radiação!", "radiacao", "RADIAÇÃO", "radiaçao"}

	first, ok := Lookup(variants[0])
	if !ok {
		t.Fatalf("Lookup(%q) found nothing", variants[0])
	}
	for _, v := range variants[1:] {
		entry, ok := Lookup(v)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", v)
			continue
		}
		if entry.Term != first.Term {
			t.Errorf("Lookup(%q) = %q, want %q", v, entry.Term, first.Term)
		}
	}
}

func TestLookupUnknownTerm(t *testing.T) {
	if _, ok := Lookup("spaghetti"); ok {
		t.Error("Lookup found an entry for an unknown term")
	}
}

func TestLookupEnglishAndPortuguese(t *testing.T) {
	tests := []struct {
		term     string
		wantTerm string
	}{
		{"Aurora", "Aurora"},
		{"magnetosphere", "Magnetosphere"},
		{"Magnetosfera", "Magnetosfera"},
		{"satellite", "Satellite"},
		{"satélite", "Satélite"},
		{"atmosfera", "Atmosfera"},
	}
	for _, tt := range tests {
		entry, ok := Lookup(tt.term)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", tt.term)
			continue
		}
		if entry.Term != tt.wantTerm {
			t.Errorf("Lookup(%q).Term = %q, want %q", tt.term, entry.Term, tt.wantTerm)
		}
	}
}

func TestTelescopeFamily(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"Hubble", "hubble"},
		{"hubble telescope", "hubble"},
		{"Chandra", "chandra"},
		{"JWST", "webb"},
		{"Webb", "webb"},
		{"James Webb", "webb"},
		{"james webb space telescope", "webb"},
		{"aurora", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TelescopeFamily(tt.term); got != tt.want {
			t.Errorf("TelescopeFamily(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestAllSortedAndComplete(t *testing.T) {
	all := All()
	vocab := Vocabulary()
	if len(all) != len(vocab) {
		t.Fatalf("All returned %d entries, Vocabulary %d keys", len(all), len(vocab))
	}
	for i := 1; i < len(vocab); i++ {
		if vocab[i-1] >= vocab[i] {
			t.Fatalf("vocabulary not sorted: %q before %q", vocab[i-1], vocab[i])
		}
	}
	for _, k := range vocab {
		if Normalize(k) != k {
			t.Errorf("vocabulary key %q is not in normalized form", k)
		}
	}
}
