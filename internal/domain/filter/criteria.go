// Package filter composes brand predicates and produces stably ordered
// result sets. Predicates AND together; an absent, empty, or unrecognized
// predicate means "no constraint", never an error.
package filter

import (
	"strings"
	"unicode"
)

// Criteria is the set of supplied predicates. Zero value matches all.
type Criteria struct {
	// Category restricts to brands tagged with this category slug
	// (compared post alias-resolution).
	Category string `form:"category"`

	// Brand restricts to one brand identity (post alias-resolution).
	Brand string `form:"brand"`

	// Letter restricts to labels starting with this letter,
	// case-insensitive, exact match only. No locale folding beyond
	// simple case.
	Letter string `form:"letter"`

	// Search is a case-insensitive substring test against the display
	// label only, deliberately narrow to keep results predictable.
	Search string `form:"q"`

	// Style restricts to brands carrying this style tag.
	Style string `form:"style"`
}

// letterConstraint normalizes the letter predicate. It returns the
// lowercase letter and true when the predicate constrains the result;
// anything that is not a single letter is no constraint.
func letterConstraint(s string) (rune, bool) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return 0, false
	}
	return unicode.ToLower(runes[0]), true
}

// matchesLetter tests the first character of a label against a normalized
// letter constraint.
func matchesLetter(label string, letter rune) bool {
	for _, r := range label {
		return unicode.ToLower(r) == letter
	}
	return false
}

// matchesSearch tests a case-insensitive substring against a label.
func matchesSearch(label, query string) bool {
	return strings.Contains(strings.ToLower(label), strings.ToLower(query))
}
