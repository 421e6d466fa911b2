// Package glossary provides the built-in space-science vocabulary and the
// term normalization used to match clicked words against it.
//
// The vocabulary is bilingual: Portuguese spellings normalize to the same
// key as their English counterparts wherever the stripped forms coincide,
// and get their own entries where they do not.
package glossary

import (
	"sort"
	"strings"
	"unicode"

	"github.com/cosmos-reader/cosmos-reader-api/internal/models"
)

// Normalize folds a clicked term to its lookup key: accents removed,
// lowercased, everything outside a-z stripped. "Radiação!", "radiacao" and
// "RADIAÇÃO" all produce "radiacao".
func Normalize(term string) string {
	var b strings.Builder
	b.Grow(len(term))
	for _, r := range strings.ToLower(term) {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// accentFold maps the accented letters that appear in Portuguese space
// vocabulary to their base letters. A full Unicode decomposition pass is
// overkill for a fixed bilingual glossary.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n',
}

// entries is keyed by normalized term.
var entries = map[string]models.GlossaryEntry{
	"ionosphere": {
		Term:       "Ionosphere",
		Definition: "The layer of Earth's upper atmosphere ionized by solar radiation, reflecting radio waves and hosting auroras.",
		Category:   "atmosphere",
	},
	"ionosfera": {
		Term:       "Ionosfera",
		Definition: "A camada superior da atmosfera terrestre ionizada pela radiação solar, que reflete ondas de rádio.",
		Category:   "atmosphere",
	},
	"aurora": {
		Term:       "Aurora",
		Definition: "Colorful light displays near the poles, produced when charged solar particles collide with atmospheric gases.",
		Category:   "phenomena",
	},
	"magnetosphere": {
		Term:       "Magnetosphere",
		Definition: "The region around Earth dominated by its magnetic field, shielding the planet from the solar wind.",
		Category:   "magnetism",
	},
	"magnetosfera": {
		Term:       "Magnetosfera",
		Definition: "A região ao redor da Terra dominada pelo seu campo magnético, que protege o planeta do vento solar.",
		Category:   "magnetism",
	},
	"radiation": {
		Term:       "Radiation",
		Definition: "Energy traveling as waves or particles, such as the X-rays and charged particles released by solar flares.",
		Category:   "physics",
	},
	"radiacao": {
		Term:       "Radiação",
		Definition: "Energia que viaja em forma de ondas ou partículas, como os raios X liberados por explosões solares.",
		Category:   "physics",
	},
	"satellite": {
		Term:       "Satellite",
		Definition: "An object orbiting a planet, natural like the Moon or artificial like weather and communication spacecraft.",
		Category:   "spacecraft",
	},
	"satelite": {
		Term:       "Satélite",
		Definition: "Um objeto em órbita de um planeta, natural como a Lua ou artificial como os satélites de comunicação.",
		Category:   "spacecraft",
	},
	"solar": {
		Term:       "Solar",
		Definition: "Relating to the Sun, the star whose flares and wind drive space weather around Earth.",
		Category:   "sun",
	},
	"cosmic": {
		Term:       "Cosmic",
		Definition: "Relating to the wider universe beyond Earth, as in cosmic rays arriving from distant galaxies.",
		Category:   "universe",
	},
	"cosmico": {
		Term:       "Cósmico",
		Definition: "Relativo ao universo além da Terra, como os raios cósmicos vindos de galáxias distantes.",
		Category:   "universe",
	},
	"atmosphere": {
		Term:       "Atmosphere",
		Definition: "The envelope of gases surrounding a planet, protecting Earth's surface from radiation and meteoroids.",
		Category:   "atmosphere",
	},
	"atmosfera": {
		Term:       "Atmosfera",
		Definition: "A camada de gases que envolve um planeta, protegendo a superfície da Terra da radiação.",
		Category:   "atmosphere",
	},
}

// Lookup returns the glossary entry for a raw (unnormalized) term.
func Lookup(term string) (models.GlossaryEntry, bool) {
	entry, ok := entries[Normalize(term)]
	return entry, ok
}

// All returns every glossary entry, sorted by normalized key.
func All() []models.GlossaryEntry {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]models.GlossaryEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, entries[k])
	}
	return out
}

// Vocabulary returns the normalized keys, for extractors that scan text
// against known terms.
func Vocabulary() []string {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TelescopeFamily maps a clicked term to the telescope counter it belongs
// to: "hubble", "chandra" or "webb" (JWST counts as Webb). Empty string
// means the term is not a telescope name.
func TelescopeFamily(term string) string {
	t := strings.ToLower(strings.TrimFunc(term, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != ' '
	}))
	switch {
	case strings.Contains(t, "hubble"):
		return "hubble"
	case strings.Contains(t, "chandra"):
		return "chandra"
	case strings.Contains(t, "jwst"), strings.Contains(t, "webb"), strings.Contains(t, "james webb"):
		return "webb"
	}
	return ""
}
