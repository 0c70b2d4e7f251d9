package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeQuery lowercases, trims and strips accents from a search
// query so "Pipí" and "pipi" hit the same cache entry and index lookup.
func NormalizeQuery(query string) string {
	stripped, _, err := transform.String(accentStripper, query)
	if err != nil {
		stripped = query
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
