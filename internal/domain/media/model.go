// Package media resolves hero and gallery images for catalog entities.
// Two registries supply images: curated photo sets (richest source) and
// the legacy verified image registry. Every URL in either registry was
// checked by hand; nothing is ever guessed from a naming pattern.
package media

// ImageSet holds the verified images for one entity.
type ImageSet struct {
	// Slug is the owning entity identity (may be an alias spelling)
	Slug string `json:"slug"`

	// Hero is the lead image URL
	Hero string `json:"hero,omitempty"`

	// Gallery is the ordered list of gallery URLs
	Gallery []string `json:"gallery,omitempty"`

	// Logo is the brand logo URL
	Logo string `json:"logo,omitempty"`
}
