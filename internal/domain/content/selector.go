package content

import (
	"strings"

	"arredo/internal/domain/alias"
)

// Selector returns the best available text block for an entity and a
// requested locale. Fallback is silent: a missing translation yields the
// default-locale block, and only an entity with no text in any locale
// yields an empty result. Callers omit the section then; they never crash.
type Selector struct {
	repo    Repository
	aliases *alias.Resolver
}

// NewSelector creates a new locale content selector.
func NewSelector(repo Repository, aliases *alias.Resolver) *Selector {
	return &Selector{repo: repo, aliases: aliases}
}

// Paragraphs returns the ordered paragraphs for an entity in the requested
// locale, applying the documented fallback.
func (s *Selector) Paragraphs(slug string, loc Locale) []string {
	var rec *Text
	for _, v := range s.aliases.Variants(slug) {
		if t, ok := s.repo.Get(v); ok {
			rec = t
			break
		}
	}
	if rec == nil {
		return []string{}
	}

	if loc == LocaleEN && hasContent(rec.English) {
		return append([]string(nil), rec.English...)
	}
	if hasContent(rec.Polish) {
		return append([]string(nil), rec.Polish...)
	}
	// Requested locale may still have text even when the default does not.
	if hasContent(rec.English) {
		return append([]string(nil), rec.English...)
	}
	return []string{}
}

// hasContent reports whether a block exists and is non-empty. A block of
// blank paragraphs counts as absent.
func hasContent(block []string) bool {
	for _, p := range block {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}
