// Package product provides the Product catalog. Products are leaf records:
// they reference their owning brand and category by slug and do not own
// images beyond what the image registries supply.
package product

import (
	"regexp"

	"arredo/internal/core/apperror"
)

var slugRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Product is a catalog record.
type Product struct {
	// Slug is the canonical identifier, unique within the registry
	Slug string `json:"slug"`

	// Name is the display name
	Name string `json:"name"`

	// Brand is the owning brand slug
	Brand string `json:"brand"`

	// Category is the owning category slug
	Category string `json:"category"`

	// LegacyURL is the source page on the legacy site
	LegacyURL string `json:"legacyUrl,omitempty"`
}

// Validate checks record invariants.
func (p *Product) Validate() error {
	if !slugRE.MatchString(p.Slug) {
		return apperror.NewValidation("slug must be lowercase ASCII, hyphen-separated").
			WithDetail("field", "slug").
			WithDetail("value", p.Slug)
	}
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name").
			WithDetail("slug", p.Slug)
	}
	if p.Brand == "" {
		return apperror.NewValidation("owning brand is required").
			WithDetail("field", "brand").
			WithDetail("slug", p.Slug)
	}
	if p.Category == "" {
		return apperror.NewValidation("owning category is required").
			WithDetail("field", "category").
			WithDetail("slug", p.Slug)
	}
	return nil
}
