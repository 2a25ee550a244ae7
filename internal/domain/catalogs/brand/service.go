package brand

import (
	"arredo/internal/core/apperror"
	"arredo/internal/domain/alias"
)

// Service provides merged brand lookups across the navigation and content
// registries. Pure reads over data fixed at initialization.
type Service struct {
	repo    Repository
	aliases *alias.Resolver
}

// NewService creates a new Brand service.
func NewService(repo Repository, aliases *alias.Resolver) *Service {
	return &Service{repo: repo, aliases: aliases}
}

// Get returns the merged view for a slug from any registry, or not-found.
// The navigation registry is authoritative for existence: an entity with a
// content profile but no navigation record is not served.
func (s *Service) Get(slug string) (*View, error) {
	canonical := s.aliases.Resolve(slug)

	nav, ok := s.repo.Get(canonical)
	if !ok {
		return nil, apperror.NewNotFound("brand", slug)
	}

	v := s.merge(*nav)
	return &v, nil
}

// List returns merged views for every brand in registry order.
func (s *Service) List() []View {
	records := s.repo.List()
	views := make([]View, 0, len(records))
	for _, b := range records {
		views = append(views, s.merge(b))
	}
	return views
}

// Resolver exposes the alias resolver for collaborators that join on
// brand identity.
func (s *Service) Resolver() *alias.Resolver {
	return s.aliases
}

// merge joins a navigation record with its content profile, probing every
// known spelling of the slug. Display fields come from the profile when it
// defines them; ordering fields always come from the navigation record.
func (s *Service) merge(b Brand) View {
	v := View{Brand: b}

	for _, slug := range s.aliases.Variants(b.Slug) {
		p, ok := s.repo.GetProfile(slug)
		if !ok {
			continue
		}
		if p.DisplayName != "" {
			v.Label = p.DisplayName
		}
		v.SEOTitle = p.SEOTitle
		v.SEODescription = p.SEODescription
		if len(p.FAQ) > 0 {
			v.FAQ = append([]FAQItem(nil), p.FAQ...)
		}
		break
	}

	return v
}
