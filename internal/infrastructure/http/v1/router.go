// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/category"
	"arredo/internal/domain/catalogs/product"
	"arredo/internal/domain/content"
	"arredo/internal/domain/filter"
	"arredo/internal/domain/media"
	"arredo/internal/infrastructure/http/v1/handlers"
	"arredo/internal/infrastructure/http/v1/middleware"
	"arredo/internal/infrastructure/storage/registry"
	"arredo/pkg/logger"
)

// RouterConfig holds router dependencies. Everything is built once at
// startup over the immutable registry store; handlers are pure reads.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	// Store is the loaded registry store (for health reporting)
	Store *registry.Store

	// Brands provides merged brand lookups
	Brands *brand.Service

	// Categories provides category lookups and grouping
	Categories *category.Service

	// Products provides product lookups
	Products *product.Service

	// Filter is the brand filter/sort engine
	Filter *filter.Engine

	// Images resolves the image fallback chain
	Images *media.Chain

	// Texts selects localized content
	Texts *content.Selector
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Store)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	api := router.Group("/api/v1")
	{
		baseHandler := handlers.NewBaseHandler()

		brandHandler := handlers.NewBrandHandler(
			baseHandler, cfg.Brands, cfg.Products, cfg.Filter, cfg.Images, cfg.Texts,
		)
		brands := api.Group("/brands")
		{
			brands.GET("", brandHandler.List)
			brands.GET("/footer", brandHandler.Footer)
			brands.GET("/:slug", brandHandler.Get)
			brands.GET("/:slug/images", brandHandler.Images)
			brands.GET("/:slug/products", brandHandler.Products)
		}

		categoryHandler := handlers.NewCategoryHandler(baseHandler, cfg.Categories)
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:slug", categoryHandler.Get)
		}

		productHandler := handlers.NewProductHandler(baseHandler, cfg.Products)
		api.GET("/products/:slug", productHandler.Get)
	}

	return router
}
