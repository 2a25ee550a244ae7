// Package main is the entry point for the arredo catalog API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arredo/internal/config"
	"arredo/internal/domain/alias"
	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/category"
	"arredo/internal/domain/catalogs/product"
	"arredo/internal/domain/content"
	"arredo/internal/domain/filter"
	"arredo/internal/domain/media"
	v1 "arredo/internal/infrastructure/http/v1"
	"arredo/internal/infrastructure/storage/registry"
	"arredo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Info("starting arredo catalog server")

	// --- Registry Store ---
	// Loaded exactly once per process; the reference is shared read-only.
	// A configuration error here is fatal: the process must not start
	// with inconsistent canonical data.
	store, err := registry.Load()
	if err != nil {
		log.Fatalw("failed to load registry snapshots", "error", err)
	}
	log.Infow("registry store loaded", "counts", store.Counts())

	// --- Slug Alias Resolver ---
	resolver, err := alias.NewResolver(store.AliasTable())
	if err != nil {
		log.Fatalw("invalid alias table", "error", err)
	}

	// --- Catalog services ---
	brandService := brand.NewService(registry.NewBrandRepo(store), resolver)
	categoryService := category.NewService(registry.NewCategoryRepo(store), resolver)
	productService := product.NewService(registry.NewProductRepo(store), resolver)
	imageChain := media.NewChain(registry.NewMediaRepo(store), resolver)
	textSelector := content.NewSelector(registry.NewContentRepo(store), resolver)
	filterEngine := filter.NewEngine(brandService, resolver)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:     log,
		Store:      store,
		Brands:     brandService,
		Categories: categoryService,
		Products:   productService,
		Filter:     filterEngine,
		Images:     imageChain,
		Texts:      textSelector,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
