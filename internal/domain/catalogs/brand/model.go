// Package brand provides the Brand catalog: the furniture houses the
// retailer represents. Two registries describe brands. The navigation
// registry is canonical for identity and ordering (tier, sort order,
// footer flag, memberships); the content registry carries the editorial
// profile (display name, SEO fields, FAQ) under its own slug spelling.
package brand

import (
	"regexp"

	"arredo/internal/core/apperror"
)

var slugRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Tier is a brand's priority class for display ordering.
type Tier int

const (
	TierPremium    Tier = 1 // full-range design houses, shown first
	TierSpecialist Tier = 2 // single-category manufacturers
)

// Brand is a navigation-registry record.
type Brand struct {
	// Slug is the canonical identifier, unique within the registry
	Slug string `json:"slug"`

	// Label is the display label
	Label string `json:"label"`

	// Tier is the priority class (premium=1, specialist=2)
	Tier Tier `json:"tier"`

	// SortOrder is the explicit position within the tier
	SortOrder int `json:"sortOrder"`

	// Footer marks brands shown in the footer strip
	Footer bool `json:"footer"`

	// LegacyURL is the source page on the legacy site
	LegacyURL string `json:"legacyUrl,omitempty"`

	// ProductCount is informational only, never authoritative for filtering
	ProductCount int `json:"productCount"`

	// Categories are category memberships by slug (pre alias-resolution)
	Categories []string `json:"categories"`

	// Styles are style tags (nowoczesny, klasyczny, glamour, ...)
	Styles []string `json:"styles,omitempty"`

	// ExternalURL is the manufacturer's own site
	ExternalURL string `json:"externalUrl,omitempty"`
}

// Validate checks record invariants.
func (b *Brand) Validate() error {
	if !slugRE.MatchString(b.Slug) {
		return apperror.NewValidation("slug must be lowercase ASCII, hyphen-separated").
			WithDetail("field", "slug").
			WithDetail("value", b.Slug)
	}
	if b.Label == "" {
		return apperror.NewValidation("label is required").
			WithDetail("field", "label").
			WithDetail("slug", b.Slug)
	}
	if b.Tier != TierPremium && b.Tier != TierSpecialist {
		return apperror.NewValidation("invalid tier").
			WithDetail("field", "tier").
			WithDetail("slug", b.Slug).
			WithDetail("value", int(b.Tier))
	}
	return nil
}

// HasStyle reports raw style-tag membership.
func (b *Brand) HasStyle(tag string) bool {
	for _, s := range b.Styles {
		if s == tag {
			return true
		}
	}
	return false
}

// FAQItem is one question/answer pair on a brand profile.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Profile is a content-registry record. Its slug may be an alias spelling
// of the navigation slug; joins go through the alias resolver.
type Profile struct {
	Slug           string    `json:"slug"`
	DisplayName    string    `json:"displayName"`
	SEOTitle       string    `json:"seoTitle,omitempty"`
	SEODescription string    `json:"seoDescription,omitempty"`
	FAQ            []FAQItem `json:"faq,omitempty"`
}

// Validate checks record invariants.
func (p *Profile) Validate() error {
	if !slugRE.MatchString(p.Slug) {
		return apperror.NewValidation("slug must be lowercase ASCII, hyphen-separated").
			WithDetail("field", "slug").
			WithDetail("value", p.Slug)
	}
	return nil
}

// View is the merged read model served to consumers. Merge precedence is
// fixed: the content profile wins display fields, the navigation registry
// wins ordering fields. Label holds the profile display name when the
// profile defines one.
type View struct {
	Brand

	SEOTitle       string    `json:"seoTitle,omitempty"`
	SEODescription string    `json:"seoDescription,omitempty"`
	FAQ            []FAQItem `json:"faq,omitempty"`
}
