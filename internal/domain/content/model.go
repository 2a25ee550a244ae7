// Package content selects localized text blocks for catalog entities.
// The site copy is Polish-first; English is the only alternate locale.
package content

import (
	"golang.org/x/text/language"
)

// Locale identifies one of the two recognized locales. No other locale
// is recognized; anything else maps to the default.
type Locale string

const (
	LocalePL Locale = "pl" // default
	LocaleEN Locale = "en" // alternate
)

// DefaultLocale returns the default locale.
func DefaultLocale() Locale {
	return LocalePL
}

var matcher = language.NewMatcher([]language.Tag{
	language.Polish,
	language.English,
})

// ParseLocale maps a requested locale string onto the closed enum.
// BCP 47 variants of English (en-GB, en-US) match the alternate locale;
// everything else, including the empty string, falls back to the default.
func ParseLocale(s string) Locale {
	if s == "" {
		return LocalePL
	}
	_, index, conf := matcher.Match(language.Make(s))
	if conf == language.No {
		return LocalePL
	}
	if index == 1 {
		return LocaleEN
	}
	return LocalePL
}

// Text holds the localized paragraphs for one entity.
type Text struct {
	// Slug is the owning entity identity (may be an alias spelling)
	Slug string `json:"slug"`

	// Polish is the default-locale block
	Polish []string `json:"pl,omitempty"`

	// English is the alternate-locale block, used only when non-empty
	English []string `json:"en,omitempty"`
}
