package handlers

import (
	"github.com/gin-gonic/gin"

	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/product"
	"arredo/internal/domain/content"
	"arredo/internal/domain/filter"
	"arredo/internal/domain/media"
	"arredo/internal/infrastructure/http/v1/dto"
)

// BrandHandler serves brand queries.
type BrandHandler struct {
	*BaseHandler
	brands   *brand.Service
	products *product.Service
	engine   *filter.Engine
	images   *media.Chain
	texts    *content.Selector
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(
	base *BaseHandler,
	brands *brand.Service,
	products *product.Service,
	engine *filter.Engine,
	images *media.Chain,
	texts *content.Selector,
) *BrandHandler {
	return &BrandHandler{
		BaseHandler: base,
		brands:      brands,
		products:    products,
		engine:      engine,
		images:      images,
		texts:       texts,
	}
}

// List handles brand listing with optional predicates.
// GET /api/v1/brands?category=&brand=&letter=&q=&style=
func (h *BrandHandler) List(c *gin.Context) {
	var criteria filter.Criteria
	if !h.BindQuery(c, &criteria) {
		return
	}

	views := h.engine.Brands(criteria)
	items := make([]dto.BrandResponse, 0, len(views))
	for _, v := range views {
		items = append(items, dto.FromBrandView(v, h.images.Hero(v.Slug)))
	}

	h.OK(c, dto.BrandListResponse{
		Items:      items,
		TotalCount: len(items),
		Letters:    h.engine.Letters(),
		Styles:     h.engine.Styles(),
	})
}

// Get handles single brand lookup.
// GET /api/v1/brands/:slug?locale=
func (h *BrandHandler) Get(c *gin.Context) {
	slug := c.Param("slug")

	v, err := h.brands.Get(slug)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromBrandDetail(
		*v,
		h.images.Hero(v.Slug),
		h.images.Logo(v.Slug),
		h.images.Gallery(v.Slug),
		h.texts.Paragraphs(v.Slug, h.Locale(c)),
	))
}

// Images handles the resolved image chain for a brand. Always 200: the
// placeholder guarantees a hero even for unknown slugs.
// GET /api/v1/brands/:slug/images
func (h *BrandHandler) Images(c *gin.Context) {
	slug := c.Param("slug")

	h.OK(c, dto.ImagesResponse{
		Hero:    h.images.Hero(slug),
		Gallery: h.images.Gallery(slug),
		Logo:    h.images.Logo(slug),
	})
}

// Products handles the product list of one brand.
// GET /api/v1/brands/:slug/products
func (h *BrandHandler) Products(c *gin.Context) {
	slug := c.Param("slug")

	if _, err := h.brands.Get(slug); err != nil {
		h.Error(c, err)
		return
	}

	list := h.products.ListByBrand(slug)
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}

	h.OK(c, dto.ListResponse[dto.ProductResponse]{
		Items:      items,
		TotalCount: len(items),
	})
}

// Footer handles the footer brand strip.
// GET /api/v1/brands/footer
func (h *BrandHandler) Footer(c *gin.Context) {
	views := h.engine.Footer()
	items := make([]dto.BrandResponse, 0, len(views))
	for _, v := range views {
		items = append(items, dto.FromBrandView(v, h.images.Hero(v.Slug)))
	}

	h.OK(c, dto.ListResponse[dto.BrandResponse]{
		Items:      items,
		TotalCount: len(items),
	})
}
