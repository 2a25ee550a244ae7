package dto

import (
	"arredo/internal/domain/catalogs/brand"
)

// BrandResponse is the list-level brand projection.
type BrandResponse struct {
	Slug         string   `json:"slug"`
	Label        string   `json:"label"`
	Tier         int      `json:"tier"`
	SortOrder    int      `json:"sortOrder"`
	Footer       bool     `json:"footer"`
	ProductCount int      `json:"productCount"`
	Categories   []string `json:"categories"`
	Styles       []string `json:"styles,omitempty"`
	ExternalURL  string   `json:"externalUrl,omitempty"`
	Hero         string   `json:"hero"`
}

// FromBrandView converts a merged view to the list projection.
func FromBrandView(v brand.View, hero string) BrandResponse {
	return BrandResponse{
		Slug:         v.Slug,
		Label:        v.Label,
		Tier:         int(v.Tier),
		SortOrder:    v.SortOrder,
		Footer:       v.Footer,
		ProductCount: v.ProductCount,
		Categories:   v.Categories,
		Styles:       v.Styles,
		ExternalURL:  v.ExternalURL,
		Hero:         hero,
	}
}

// FAQResponse is one question/answer pair.
type FAQResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BrandDetailResponse is the full brand page projection.
type BrandDetailResponse struct {
	BrandResponse

	SEOTitle       string        `json:"seoTitle,omitempty"`
	SEODescription string        `json:"seoDescription,omitempty"`
	FAQ            []FAQResponse `json:"faq,omitempty"`

	// Description holds the localized paragraphs; empty means the
	// caller omits the section.
	Description []string `json:"description"`

	Gallery []string `json:"gallery"`
	Logo    string   `json:"logo,omitempty"`
}

// FromBrandDetail converts a merged view plus resolved media and text.
func FromBrandDetail(v brand.View, hero, logo string, gallery, description []string) BrandDetailResponse {
	resp := BrandDetailResponse{
		BrandResponse:  FromBrandView(v, hero),
		SEOTitle:       v.SEOTitle,
		SEODescription: v.SEODescription,
		Description:    description,
		Gallery:        gallery,
		Logo:           logo,
	}
	for _, f := range v.FAQ {
		resp.FAQ = append(resp.FAQ, FAQResponse{Question: f.Question, Answer: f.Answer})
	}
	return resp
}

// BrandListResponse wraps the filtered brand list with navigation facets.
type BrandListResponse struct {
	Items      []BrandResponse `json:"items"`
	TotalCount int             `json:"totalCount"`
	Letters    []string        `json:"letters"`
	Styles     []string        `json:"styles"`
}

// ImagesResponse carries the resolved image chain output.
type ImagesResponse struct {
	Hero    string   `json:"hero"`
	Gallery []string `json:"gallery"`
	Logo    string   `json:"logo,omitempty"`
}
