// Package merge joins station records from two XML feeds by comparing
// normalized station names.
package merge

import (
	"strings"
)

// nameReplacer strips parentheses, turns hyphens into spaces and folds
// typographic apostrophes to ASCII.
var nameReplacer = strings.NewReplacer(
	"(", "",
	")", "",
	"-", " ",
	"’", "'",
	"‘", "'",
)

// DisplayName cleans a station name for presentation: the same rewriting as
// Normalize without the case folding.
func DisplayName(name string) string {
	return strings.TrimSpace(nameReplacer.Replace(name))
}

// Normalize canonicalizes a station name for cross-feed comparison.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	return strings.ToLower(DisplayName(name))
}
