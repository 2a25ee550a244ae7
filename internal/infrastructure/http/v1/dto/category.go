package dto

import (
	"arredo/internal/domain/catalogs/category"
)

// CategoryResponse is the category projection.
type CategoryResponse struct {
	Slug         string  `json:"slug"`
	Label        string  `json:"label"`
	Parent       *string `json:"parent,omitempty"`
	Group        string  `json:"group"`
	SortOrder    int     `json:"sortOrder"`
	ProductCount int     `json:"productCount"`
}

// FromCategory converts a catalog record.
func FromCategory(c category.Category) CategoryResponse {
	return CategoryResponse{
		Slug:         c.Slug,
		Label:        c.Label,
		Parent:       c.Parent,
		Group:        string(c.Group),
		SortOrder:    c.SortOrder,
		ProductCount: c.ProductCount,
	}
}

// CategoryGroupResponse is one navigation section with its categories.
type CategoryGroupResponse struct {
	Group      string             `json:"group"`
	Categories []CategoryResponse `json:"categories"`
}
