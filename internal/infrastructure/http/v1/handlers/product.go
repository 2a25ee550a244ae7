package handlers

import (
	"github.com/gin-gonic/gin"

	"arredo/internal/domain/catalogs/product"
	"arredo/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves product queries.
type ProductHandler struct {
	*BaseHandler
	products *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, products *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, products: products}
}

// Get handles single product lookup.
// GET /api/v1/products/:slug
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.products.Get(c.Param("slug"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProduct(*p))
}
