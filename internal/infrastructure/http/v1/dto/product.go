package dto

import (
	"arredo/internal/domain/catalogs/product"
)

// ProductResponse is the product projection.
type ProductResponse struct {
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Category  string `json:"category"`
	LegacyURL string `json:"legacyUrl,omitempty"`
}

// FromProduct converts a catalog record.
func FromProduct(p product.Product) ProductResponse {
	return ProductResponse{
		Slug:      p.Slug,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		LegacyURL: p.LegacyURL,
	}
}
