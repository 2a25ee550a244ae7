// Package main extracts registry snapshots from the legacy site.
// Output goes to the configured directory for manual review; it is not
// wired into the embedded data automatically.
package main

import (
	"context"
	"fmt"
	"os"

	"arredo/internal/config"
	"arredo/internal/extract"
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

	ctx := context.Background()
	log.Infow("starting extraction", "base_url", cfg.Extract.BaseURL)

	client := extract.NewClient(cfg.Extract)
	defer client.Close()
	parser := extract.NewParser()

	brandHTML, err := client.Page(ctx, "/marki.html")
	if err != nil {
		log.Fatalw("failed to fetch brand list", "error", err)
	}
	brands, err := parser.ParseBrandList(brandHTML)
	if err != nil {
		log.Fatalw("failed to parse brand list", "error", err)
	}
	log.Infow("brands extracted", "count", len(brands))

	navHTML, err := client.Page(ctx, "/")
	if err != nil {
		log.Fatalw("failed to fetch navigation", "error", err)
	}
	categories, err := parser.ParseCategoryNav(navHTML)
	if err != nil {
		log.Fatalw("failed to parse category nav", "error", err)
	}
	log.Infow("categories extracted", "count", len(categories))

	if err := extract.WriteSnapshot(cfg.Extract.OutputDir, "brands.json", "draft", brands); err != nil {
		log.Fatalw("failed to write brands snapshot", "error", err)
	}
	if err := extract.WriteSnapshot(cfg.Extract.OutputDir, "categories.json", "draft", categories); err != nil {
		log.Fatalw("failed to write categories snapshot", "error", err)
	}

	log.Infow("extraction complete", "output_dir", cfg.Extract.OutputDir)
}
