package product

import (
	"arredo/internal/core/apperror"
	"arredo/internal/domain/alias"
)

// Service provides product lookups.
type Service struct {
	repo    Repository
	aliases *alias.Resolver
}

// NewService creates a new Product service.
func NewService(repo Repository, aliases *alias.Resolver) *Service {
	return &Service{repo: repo, aliases: aliases}
}

// Get returns a product by exact slug, or not-found. Product slugs are not
// aliased; only their brand reference goes through the resolver.
func (s *Service) Get(slug string) (*Product, error) {
	p, ok := s.repo.Get(slug)
	if !ok {
		return nil, apperror.NewNotFound("product", slug)
	}
	out := *p
	return &out, nil
}

// ListByBrand returns products owned by a brand, matched on canonical
// identity, in registry order.
func (s *Service) ListByBrand(brandSlug string) []Product {
	want := s.aliases.Resolve(brandSlug)
	var out []Product
	for _, p := range s.repo.List() {
		if s.aliases.Resolve(p.Brand) == want {
			out = append(out, p)
		}
	}
	return out
}
