// Package registry implements the Registry Store: immutable, read-only
// collections of catalog records loaded exactly once at startup from flat,
// versioned snapshots. Construction fails fast on a duplicate slug within
// one registry; that is a data-integrity violation, not a runtime
// condition to recover from.
package registry

import (
	"arredo/internal/core/apperror"
	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/category"
	"arredo/internal/domain/catalogs/product"
	"arredo/internal/domain/content"
	"arredo/internal/domain/media"
)

// Store holds one ordered collection per entity kind. All records are
// constructed at initialization and never mutated; concurrent read access
// is safe without coordination. The Store exclusively owns the records;
// accessors hand out copies.
type Store struct {
	brands     []brand.Brand
	profiles   []brand.Profile
	categories []category.Category
	products   []product.Product
	photoSets  []media.ImageSet
	legacySets []media.ImageSet
	texts      []content.Text

	brandIndex    map[string]int
	profileIndex  map[string]int
	categoryIndex map[string]int
	productIndex  map[string]int
	photoIndex    map[string]int
	legacyIndex   map[string]int
	textIndex     map[string]int

	aliases map[string]string
	meta    map[string]Meta
}

// Meta is the snapshot annotation carried by each registry file.
type Meta struct {
	Version    string `json:"version"`
	Provenance string `json:"provenance"`
}

// Config carries the decoded registry collections into the Store.
type Config struct {
	Brands     []brand.Brand
	Profiles   []brand.Profile
	Categories []category.Category
	Products   []product.Product
	PhotoSets  []media.ImageSet
	LegacySets []media.ImageSet
	Texts      []content.Text
	Aliases    map[string]string
	Meta       map[string]Meta
}

// NewStore validates the collections and builds the per-registry indexes.
// Returns a configuration error on the first duplicate slug or malformed
// record; the process must not start with inconsistent canonical data.
func NewStore(cfg Config) (*Store, error) {
	s := &Store{
		brands:     cfg.Brands,
		profiles:   cfg.Profiles,
		categories: cfg.Categories,
		products:   cfg.Products,
		photoSets:  cfg.PhotoSets,
		legacySets: cfg.LegacySets,
		texts:      cfg.Texts,
		aliases:    cfg.Aliases,
		meta:       cfg.Meta,
	}
	if s.aliases == nil {
		s.aliases = map[string]string{}
	}
	if s.meta == nil {
		s.meta = map[string]Meta{}
	}

	var err error

	s.brandIndex, err = index("brands", len(s.brands), func(i int) (string, error) {
		return s.brands[i].Slug, s.brands[i].Validate()
	})
	if err != nil {
		return nil, err
	}

	s.profileIndex, err = index("brand_profiles", len(s.profiles), func(i int) (string, error) {
		return s.profiles[i].Slug, s.profiles[i].Validate()
	})
	if err != nil {
		return nil, err
	}

	s.categoryIndex, err = index("categories", len(s.categories), func(i int) (string, error) {
		return s.categories[i].Slug, s.categories[i].Validate()
	})
	if err != nil {
		return nil, err
	}

	s.productIndex, err = index("products", len(s.products), func(i int) (string, error) {
		return s.products[i].Slug, s.products[i].Validate()
	})
	if err != nil {
		return nil, err
	}

	s.photoIndex, err = index("photo_sets", len(s.photoSets), func(i int) (string, error) {
		return s.photoSets[i].Slug, nil
	})
	if err != nil {
		return nil, err
	}

	s.legacyIndex, err = index("legacy_images", len(s.legacySets), func(i int) (string, error) {
		return s.legacySets[i].Slug, nil
	})
	if err != nil {
		return nil, err
	}

	s.textIndex, err = index("content", len(s.texts), func(i int) (string, error) {
		return s.texts[i].Slug, nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// index builds slug -> position for one registry, rejecting duplicates
// and records that fail their own validation.
func index(registryName string, n int, at func(int) (string, error)) (map[string]int, error) {
	idx := make(map[string]int, n)
	for i := 0; i < n; i++ {
		slug, err := at(i)
		if err != nil {
			if appErr, ok := apperror.AsAppError(err); ok {
				return nil, apperror.NewConfig("malformed record in registry").
					WithDetail("registry", registryName).
					WithDetail("record", i).
					WithCause(appErr)
			}
			return nil, err
		}
		if slug == "" {
			return nil, apperror.NewConfig("record with empty slug").
				WithDetail("registry", registryName).
				WithDetail("record", i)
		}
		if _, dup := idx[slug]; dup {
			return nil, apperror.NewConfig("duplicate slug within registry").
				WithDetail("registry", registryName).
				WithDetail("slug", slug)
		}
		idx[slug] = i
	}
	return idx, nil
}

// AliasTable returns a copy of the alias table snapshot.
func (s *Store) AliasTable() map[string]string {
	out := make(map[string]string, len(s.aliases))
	for k, v := range s.aliases {
		out[k] = v
	}
	return out
}

// Snapshots returns the per-registry snapshot annotations.
func (s *Store) Snapshots() map[string]Meta {
	out := make(map[string]Meta, len(s.meta))
	for k, v := range s.meta {
		out[k] = v
	}
	return out
}

// Counts returns per-registry record counts, for readiness reporting.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		"brands":         len(s.brands),
		"brand_profiles": len(s.profiles),
		"categories":     len(s.categories),
		"products":       len(s.products),
		"photo_sets":     len(s.photoSets),
		"legacy_images":  len(s.legacySets),
		"content":        len(s.texts),
	}
}
