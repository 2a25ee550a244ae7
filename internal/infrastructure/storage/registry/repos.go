package registry

import (
	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/category"
	"arredo/internal/domain/catalogs/product"
	"arredo/internal/domain/content"
	"arredo/internal/domain/media"
)

// Per-entity repositories over the shared Store, mirroring the domain
// Repository interfaces. Each hands out copies so callers never hold a
// reference into the Store's collections.

// BrandRepo implements brand.Repository.
type BrandRepo struct {
	store *Store
}

// NewBrandRepo creates a brand repository over the store.
func NewBrandRepo(store *Store) *BrandRepo {
	return &BrandRepo{store: store}
}

// List returns all navigation records in registry order.
func (r *BrandRepo) List() []brand.Brand {
	return append([]brand.Brand(nil), r.store.brands...)
}

// Get retrieves a navigation record by exact slug.
func (r *BrandRepo) Get(slug string) (*brand.Brand, bool) {
	i, ok := r.store.brandIndex[slug]
	if !ok {
		return nil, false
	}
	b := r.store.brands[i]
	return &b, true
}

// GetProfile retrieves a content profile by exact slug.
func (r *BrandRepo) GetProfile(slug string) (*brand.Profile, bool) {
	i, ok := r.store.profileIndex[slug]
	if !ok {
		return nil, false
	}
	p := r.store.profiles[i]
	return &p, true
}

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	store *Store
}

// NewCategoryRepo creates a category repository over the store.
func NewCategoryRepo(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

// List returns all categories in registry order.
func (r *CategoryRepo) List() []category.Category {
	return append([]category.Category(nil), r.store.categories...)
}

// Get retrieves a category by exact slug.
func (r *CategoryRepo) Get(slug string) (*category.Category, bool) {
	i, ok := r.store.categoryIndex[slug]
	if !ok {
		return nil, false
	}
	c := r.store.categories[i]
	return &c, true
}

// ProductRepo implements product.Repository.
type ProductRepo struct {
	store *Store
}

// NewProductRepo creates a product repository over the store.
func NewProductRepo(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// List returns all products in registry order.
func (r *ProductRepo) List() []product.Product {
	return append([]product.Product(nil), r.store.products...)
}

// Get retrieves a product by exact slug.
func (r *ProductRepo) Get(slug string) (*product.Product, bool) {
	i, ok := r.store.productIndex[slug]
	if !ok {
		return nil, false
	}
	p := r.store.products[i]
	return &p, true
}

// MediaRepo implements media.Repository.
type MediaRepo struct {
	store *Store
}

// NewMediaRepo creates a media repository over the store.
func NewMediaRepo(store *Store) *MediaRepo {
	return &MediaRepo{store: store}
}

// PhotoSet retrieves the curated photo set by exact slug.
func (r *MediaRepo) PhotoSet(slug string) (*media.ImageSet, bool) {
	i, ok := r.store.photoIndex[slug]
	if !ok {
		return nil, false
	}
	set := r.store.photoSets[i]
	set.Gallery = append([]string(nil), set.Gallery...)
	return &set, true
}

// LegacySet retrieves the legacy verified image set by exact slug.
func (r *MediaRepo) LegacySet(slug string) (*media.ImageSet, bool) {
	i, ok := r.store.legacyIndex[slug]
	if !ok {
		return nil, false
	}
	set := r.store.legacySets[i]
	set.Gallery = append([]string(nil), set.Gallery...)
	return &set, true
}

// ContentRepo implements content.Repository.
type ContentRepo struct {
	store *Store
}

// NewContentRepo creates a content repository over the store.
func NewContentRepo(store *Store) *ContentRepo {
	return &ContentRepo{store: store}
}

// Get retrieves the text record by exact slug.
func (r *ContentRepo) Get(slug string) (*content.Text, bool) {
	i, ok := r.store.textIndex[slug]
	if !ok {
		return nil, false
	}
	t := r.store.texts[i]
	t.Polish = append([]string(nil), t.Polish...)
	t.English = append([]string(nil), t.English...)
	return &t, true
}
