package registry

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"arredo/internal/core/apperror"
	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/category"
	"arredo/internal/domain/catalogs/product"
	"arredo/internal/domain/content"
	"arredo/internal/domain/media"
)

// Snapshot file names. Each file is a flat, versioned registry snapshot
// annotated with its provenance; the engine treats the content as opaque
// input and performs no validation against the live source.
const (
	fileBrands     = "data/brands.json"
	fileProfiles   = "data/brand_profiles.json"
	fileCategories = "data/categories.json"
	fileProducts   = "data/products.json"
	filePhotoSets  = "data/photo_sets.json"
	fileLegacy     = "data/legacy_images.json"
	fileContent    = "data/content.json"
	fileAliases    = "data/aliases.json"
)

//go:embed data/*.json
var snapshotFS embed.FS

// envelope is the common snapshot shape: annotation plus records.
type envelope[T any] struct {
	Meta
	Records []T `json:"records"`
}

// aliasEnvelope is the alias table snapshot shape.
type aliasEnvelope struct {
	Meta
	Aliases map[string]string `json:"aliases"`
}

// Load builds the Store from the embedded snapshots. Called exactly once
// per process; the returned reference is shared read-only.
func Load() (*Store, error) {
	return LoadFS(snapshotFS)
}

// LoadFS builds the Store from snapshots in an arbitrary filesystem.
// Tests use it with fixture directories.
func LoadFS(fsys fs.FS) (*Store, error) {
	cfg := Config{Meta: map[string]Meta{}}

	brands, err := decode[brand.Brand](fsys, fileBrands, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.Brands = brands

	profiles, err := decode[brand.Profile](fsys, fileProfiles, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.Profiles = profiles

	categories, err := decode[category.Category](fsys, fileCategories, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.Categories = categories

	products, err := decode[product.Product](fsys, fileProducts, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.Products = products

	photoSets, err := decode[media.ImageSet](fsys, filePhotoSets, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.PhotoSets = photoSets

	legacySets, err := decode[media.ImageSet](fsys, fileLegacy, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.LegacySets = legacySets

	texts, err := decode[content.Text](fsys, fileContent, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.Texts = texts

	aliases, err := decodeAliases(fsys, fileAliases, cfg.Meta)
	if err != nil {
		return nil, err
	}
	cfg.Aliases = aliases

	return NewStore(cfg)
}

// decode reads one snapshot file and records its annotation under the
// file's registry name.
func decode[T any](fsys fs.FS, name string, meta map[string]Meta) ([]T, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, apperror.NewConfig("missing registry snapshot").
			WithDetail("file", name).
			WithCause(err)
	}

	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperror.NewConfig("malformed registry snapshot").
			WithDetail("file", name).
			WithCause(fmt.Errorf("decode: %w", err))
	}

	meta[name] = env.Meta
	return env.Records, nil
}

func decodeAliases(fsys fs.FS, name string, meta map[string]Meta) (map[string]string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, apperror.NewConfig("missing registry snapshot").
			WithDetail("file", name).
			WithCause(err)
	}

	var env aliasEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperror.NewConfig("malformed registry snapshot").
			WithDetail("file", name).
			WithCause(fmt.Errorf("decode: %w", err))
	}

	meta[name] = env.Meta
	return env.Aliases, nil
}
