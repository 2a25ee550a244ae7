package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arredo/internal/core/apperror"
	"arredo/internal/domain/alias"
)

type fakeRepo []Product

func (r fakeRepo) List() []Product {
	return append([]Product(nil), r...)
}

func (r fakeRepo) Get(slug string) (*Product, bool) {
	for _, p := range r {
		if p.Slug == slug {
			out := p
			return &out, true
		}
	}
	return nil, false
}

func testService(t *testing.T) *Service {
	t.Helper()

	aliases, err := alias.NewResolver(map[string]string{
		"scic-italia": "scic",
	})
	require.NoError(t, err)

	repo := fakeRepo{
		{Slug: "sofa-3200", Name: "Sofa 3200", Brand: "vibieffe", Category: "sofy"},
		// brand referenced under the alias spelling
		{Slug: "kuchnia-mediterraneum", Name: "Mediterraneum", Brand: "scic-italia", Category: "kuchnie"},
		{Slug: "kuchnia-livigno", Name: "Livigno", Brand: "scic", Category: "kuchnie"},
	}

	return NewService(repo, aliases)
}

func TestService_Get(t *testing.T) {
	s := testService(t)

	p, err := s.Get("sofa-3200")
	require.NoError(t, err)
	assert.Equal(t, "Sofa 3200", p.Name)

	_, err = s.Get("brak")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_ListByBrand(t *testing.T) {
	s := testService(t)

	t.Run("matches on canonical identity", func(t *testing.T) {
		got := s.ListByBrand("scic")
		require.Len(t, got, 2)
		assert.Equal(t, "kuchnia-mediterraneum", got[0].Slug)
		assert.Equal(t, "kuchnia-livigno", got[1].Slug)
	})

	t.Run("alias spelling finds the same set", func(t *testing.T) {
		assert.Equal(t, s.ListByBrand("scic"), s.ListByBrand("scic-italia"))
	})

	t.Run("brand without products", func(t *testing.T) {
		assert.Empty(t, s.ListByBrand("poliform"))
	})
}
