// Package category provides the Category catalog (sofy, kuchnie, szafy, ...).
package category

import (
	"regexp"

	"arredo/internal/core/apperror"
)

var slugRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// NavGroup places a category in one of the fixed navigation sections.
type NavGroup string

const (
	GroupFurniture   NavGroup = "meble"       // living and bedroom furniture
	GroupKitchens    NavGroup = "kuchnie"     // kitchen systems
	GroupAccessories NavGroup = "dodatki"     // lighting, rugs, accessories
)

// Groups returns the navigation groups in display order.
func Groups() []NavGroup {
	return []NavGroup{GroupFurniture, GroupKitchens, GroupAccessories}
}

func isValidGroup(g NavGroup) bool {
	switch g {
	case GroupFurniture, GroupKitchens, GroupAccessories:
		return true
	}
	return false
}

// Category is a catalog record.
type Category struct {
	// Slug is the canonical identifier, unique within the registry
	Slug string `json:"slug"`

	// Label is the display label
	Label string `json:"label"`

	// Parent is the parent category slug. Current data has none, but the
	// field is preserved for future nesting.
	Parent *string `json:"parent,omitempty"`

	// Group is the navigation section
	Group NavGroup `json:"group"`

	// SortOrder is the explicit position within the group
	SortOrder int `json:"sortOrder"`

	// ProductCount is informational only
	ProductCount int `json:"productCount"`
}

// Validate checks record invariants.
func (c *Category) Validate() error {
	if !slugRE.MatchString(c.Slug) {
		return apperror.NewValidation("slug must be lowercase ASCII, hyphen-separated").
			WithDetail("field", "slug").
			WithDetail("value", c.Slug)
	}
	if c.Label == "" {
		return apperror.NewValidation("label is required").
			WithDetail("field", "label").
			WithDetail("slug", c.Slug)
	}
	if !isValidGroup(c.Group) {
		return apperror.NewValidation("unknown navigation group").
			WithDetail("field", "group").
			WithDetail("slug", c.Slug).
			WithDetail("value", string(c.Group))
	}
	return nil
}

// IsRoot returns true if the category has no parent.
func (c *Category) IsRoot() bool {
	return c.Parent == nil || *c.Parent == ""
}
