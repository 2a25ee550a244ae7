// Package alias reconciles slug spellings across independently maintained
// registries. The legacy site calls the same brand "scic" in navigation and
// "scic-italia" in the content registry; every cross-registry join goes
// through the resolver so both spellings reach one entity.
package alias

import (
	"sort"

	"arredo/internal/core/apperror"
)

// Resolver maps registry slugs to one canonical identity per entity.
// Lookup is case-sensitive and exact-match only. Unknown slugs resolve
// to themselves, so callers degrade gracefully instead of crashing.
type Resolver struct {
	canonical map[string]string   // alias -> canonical slug
	variants  map[string][]string // canonical slug -> known alias spellings
}

// NewResolver builds a Resolver from an alias table (alias -> canonical).
// The table is versioned configuration data reviewed alongside the
// registries it reconciles. Chained aliases (an alias pointing at another
// alias) and self-mappings are configuration errors.
func NewResolver(table map[string]string) (*Resolver, error) {
	r := &Resolver{
		canonical: make(map[string]string, len(table)),
		variants:  make(map[string][]string),
	}

	for a, c := range table {
		if a == "" || c == "" {
			return nil, apperror.NewConfig("alias table entry with empty slug")
		}
		if a == c {
			return nil, apperror.NewConfig("alias maps to itself").
				WithDetail("slug", a)
		}
		r.canonical[a] = c
	}

	// A canonical target must not itself be an alias; two hops would make
	// resolution order-dependent.
	for a, c := range r.canonical {
		if _, ok := r.canonical[c]; ok {
			return nil, apperror.NewConfig("alias chain detected").
				WithDetail("alias", a).
				WithDetail("target", c)
		}
		r.variants[c] = append(r.variants[c], a)
	}

	// Deterministic variant order regardless of map iteration.
	for c := range r.variants {
		sort.Strings(r.variants[c])
	}

	return r, nil
}

// Resolve returns the canonical identity for a slug from any registry.
// Total function: slugs without an alias entry are their own canonical id.
func (r *Resolver) Resolve(slug string) string {
	if c, ok := r.canonical[slug]; ok {
		return c
	}
	return slug
}

// Same reports whether two slugs identify the same entity.
func (r *Resolver) Same(a, b string) bool {
	return r.Resolve(a) == r.Resolve(b)
}

// Variants returns every known spelling of an entity: the canonical slug
// first, then its aliases. Used when probing registries that may key a
// record under either spelling.
func (r *Resolver) Variants(slug string) []string {
	c := r.Resolve(slug)
	out := make([]string, 0, 1+len(r.variants[c]))
	out = append(out, c)
	out = append(out, r.variants[c]...)
	return out
}
