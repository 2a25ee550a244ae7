package handlers

import (
	"github.com/gin-gonic/gin"

	"arredo/internal/domain/catalogs/category"
	"arredo/internal/infrastructure/http/v1/dto"
)

// CategoryHandler serves category queries.
type CategoryHandler struct {
	*BaseHandler
	categories *category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(base *BaseHandler, categories *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, categories: categories}
}

// List handles the grouped navigation listing. Groups appear in display
// order; empty groups are omitted.
// GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	grouped := h.categories.ByGroup()

	groups := make([]dto.CategoryGroupResponse, 0, len(grouped))
	for _, g := range category.Groups() {
		list, ok := grouped[g]
		if !ok {
			continue
		}
		items := make([]dto.CategoryResponse, 0, len(list))
		for _, cat := range list {
			items = append(items, dto.FromCategory(cat))
		}
		groups = append(groups, dto.CategoryGroupResponse{
			Group:      string(g),
			Categories: items,
		})
	}

	h.OK(c, groups)
}

// Get handles single category lookup.
// GET /api/v1/categories/:slug
func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.categories.Get(c.Param("slug"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCategory(*cat))
}
