package category

import (
	"sort"

	"arredo/internal/core/apperror"
	"arredo/internal/domain/alias"
)

// Service provides category lookups and navigation grouping.
type Service struct {
	repo    Repository
	aliases *alias.Resolver
}

// NewService creates a new Category service.
func NewService(repo Repository, aliases *alias.Resolver) *Service {
	return &Service{repo: repo, aliases: aliases}
}

// Get returns a category by slug from any registry, or not-found.
func (s *Service) Get(slug string) (*Category, error) {
	c, ok := s.repo.Get(s.aliases.Resolve(slug))
	if !ok {
		return nil, apperror.NewNotFound("category", slug)
	}
	out := *c
	return &out, nil
}

// ByGroup returns categories keyed by navigation group, each list ordered
// by explicit sort order. Equal sort orders keep registry order.
func (s *Service) ByGroup() map[NavGroup][]Category {
	grouped := make(map[NavGroup][]Category, len(Groups()))
	for _, c := range s.repo.List() {
		grouped[c.Group] = append(grouped[c.Group], c)
	}
	for g := range grouped {
		list := grouped[g]
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].SortOrder < list[j].SortOrder
		})
	}
	return grouped
}
