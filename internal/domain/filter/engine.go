package filter

import (
	"sort"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"arredo/internal/domain/alias"
	"arredo/internal/domain/catalogs/brand"
)

// Engine filters and orders the merged brand set. The canonical order
// (tier asc, explicit sort order asc, Polish collation of label) is
// computed once at construction; every query is a pure read after that,
// so concurrent use needs no coordination.
type Engine struct {
	aliases *alias.Resolver
	sorted  []brand.View
}

// NewEngine creates a new filter engine over the brand service's merged
// views. The collator is only used here; collators are not safe for
// concurrent use.
func NewEngine(brands *brand.Service, aliases *alias.Resolver) *Engine {
	views := brands.List()

	coll := collate.New(language.Polish)
	sort.SliceStable(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return coll.CompareString(a.Label, b.Label) < 0
	})

	return &Engine{aliases: aliases, sorted: views}
}

// Sorted returns the full brand set in canonical order.
func (e *Engine) Sorted() []brand.View {
	return append([]brand.View(nil), e.sorted...)
}

// Brands returns the subset satisfying the logical AND of all supplied
// predicates, in canonical order. No predicates means the full set.
func (e *Engine) Brands(c Criteria) []brand.View {
	out := []brand.View{}
	for _, v := range e.sorted {
		if e.matches(v, c) {
			out = append(out, v)
		}
	}
	return out
}

// Footer returns the brands flagged for the footer strip, in canonical order.
func (e *Engine) Footer() []brand.View {
	out := []brand.View{}
	for _, v := range e.sorted {
		if v.Footer {
			out = append(out, v)
		}
	}
	return out
}

// Letters returns the distinct first letters of brand labels in canonical
// order, lowercased, for the A-Z navigation index.
func (e *Engine) Letters() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, v := range e.sorted {
		l, ok := firstLetter(v.Label)
		if !ok {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Styles returns the distinct style tags in order of first appearance.
func (e *Engine) Styles() []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, v := range e.sorted {
		for _, s := range v.Styles {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

func (e *Engine) matches(v brand.View, c Criteria) bool {
	if c.Category != "" && !e.hasCategory(v, c.Category) {
		return false
	}
	if c.Brand != "" && !e.aliases.Same(v.Slug, c.Brand) {
		return false
	}
	if letter, ok := letterConstraint(c.Letter); ok && !matchesLetter(v.Label, letter) {
		return false
	}
	if c.Search != "" && !matchesSearch(v.Label, c.Search) {
		return false
	}
	if c.Style != "" && !v.HasStyle(c.Style) {
		return false
	}
	return true
}

// hasCategory compares against the canonical membership set.
func (e *Engine) hasCategory(v brand.View, categorySlug string) bool {
	want := e.aliases.Resolve(categorySlug)
	for _, m := range v.Categories {
		if e.aliases.Resolve(m) == want {
			return true
		}
	}
	return false
}

func firstLetter(label string) (string, bool) {
	for _, r := range label {
		return string(unicode.ToLower(r)), true
	}
	return "", false
}
