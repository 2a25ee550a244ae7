package media

import (
	"arredo/internal/domain/alias"
)

// PlaceholderURL is the terminal fallback hero. It is served inline from
// static assets and never requires a network request.
const PlaceholderURL = "/static/img/placeholder-brand.jpg"

// Chain resolves images by walking a fixed-priority list of sources:
// photo set, then legacy registry, then the placeholder. Both operations
// are total; the placeholder guarantees a hero always exists.
type Chain struct {
	repo    Repository
	aliases *alias.Resolver
}

// NewChain creates a new image resolution chain.
func NewChain(repo Repository, aliases *alias.Resolver) *Chain {
	return &Chain{repo: repo, aliases: aliases}
}

// Hero returns the hero image URL for an entity. First match wins:
// photo-set hero, legacy hero, placeholder.
func (c *Chain) Hero(slug string) string {
	for _, v := range c.aliases.Variants(slug) {
		if set, ok := c.repo.PhotoSet(v); ok && set.Hero != "" {
			return set.Hero
		}
	}
	for _, v := range c.aliases.Variants(slug) {
		if set, ok := c.repo.LegacySet(v); ok && set.Hero != "" {
			return set.Hero
		}
	}
	return PlaceholderURL
}

// Gallery returns every verified gallery URL for an entity in
// source-priority order (photo set first, then legacy), deduplicated by
// exact URL equality with first-seen order preserved. An empty gallery is
// valid and distinct from a missing hero.
func (c *Chain) Gallery(slug string) []string {
	seen := make(map[string]struct{})
	out := []string{}

	appendURLs := func(urls []string) {
		for _, u := range urls {
			if u == "" {
				continue
			}
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}

	for _, v := range c.aliases.Variants(slug) {
		if set, ok := c.repo.PhotoSet(v); ok {
			appendURLs(set.Gallery)
		}
	}
	for _, v := range c.aliases.Variants(slug) {
		if set, ok := c.repo.LegacySet(v); ok {
			appendURLs(set.Gallery)
		}
	}

	return out
}

// Logo returns the brand logo URL or empty string when no registry
// defines one. Missing logos are degraded content, not errors.
func (c *Chain) Logo(slug string) string {
	for _, v := range c.aliases.Variants(slug) {
		if set, ok := c.repo.PhotoSet(v); ok && set.Logo != "" {
			return set.Logo
		}
	}
	for _, v := range c.aliases.Variants(slug) {
		if set, ok := c.repo.LegacySet(v); ok && set.Logo != "" {
			return set.Logo
		}
	}
	return ""
}
