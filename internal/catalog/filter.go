package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// fuzzyMinRunes is the shortest query that also gets typo-tolerant name matching.
const fuzzyMinRunes = 4

// Filter returns the apps matching query, preserving order. A blank query
// matches everything. Matching is case-insensitive over the name, category
// label and short description; longer queries also match a name word that is
// one edit away.
func Filter(apps []App, query string) []App {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]App(nil), apps...)
	}
	var out []App
	for _, a := range apps {
		if matches(a, q) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a App, q string) bool {
	if strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Category.Label()), q) ||
		strings.Contains(strings.ToLower(a.ShortDescription), q) {
		return true
	}
	if utf8.RuneCountInString(q) < fuzzyMinRunes {
		return false
	}
	for _, word := range strings.Fields(strings.ToLower(a.Name)) {
		if levenshtein.ComputeDistance(word, q) <= 1 {
			return true
		}
	}
	return false
}
