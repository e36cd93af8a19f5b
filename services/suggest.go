package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Normalize folds a search term to lowercase ASCII so "Sīgiriya" and
// "sigiriya" compare equal.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// Suggest returns a "did you mean" candidate from names for a query that
// matched nothing, or "" when nothing is close enough. Closeness is capped
// at half the query length in edits.
func Suggest(names []string, query string) string {
	query = Normalize(query)
	if query == "" || len(names) == 0 {
		return ""
	}

	normalized := make([]string, len(names))
	byNormalized := make(map[string]string, len(names))
	for i, name := range names {
		n := Normalize(name)
		normalized[i] = n
		if _, seen := byNormalized[n]; !seen {
			byNormalized[n] = name
		}
	}

	cm := closestmatch.New(normalized, []int{2, 3, 4})
	best := cm.Closest(query)
	if best == "" {
		return ""
	}

	distance := levenshtein.DistanceForStrings([]rune(query), []rune(best), levenshtein.DefaultOptions)
	if distance > len(query)/2 {
		return ""
	}

	return byNormalized[best]
}
