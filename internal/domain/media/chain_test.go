package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arredo/internal/domain/alias"
)

type fakeRepo struct {
	photo  map[string]ImageSet
	legacy map[string]ImageSet
}

func (r *fakeRepo) PhotoSet(slug string) (*ImageSet, bool) {
	if set, ok := r.photo[slug]; ok {
		return &set, true
	}
	return nil, false
}

func (r *fakeRepo) LegacySet(slug string) (*ImageSet, bool) {
	if set, ok := r.legacy[slug]; ok {
		return &set, true
	}
	return nil, false
}

func testChain(t *testing.T) *Chain {
	t.Helper()

	aliases, err := alias.NewResolver(map[string]string{
		"scic-italia": "scic",
	})
	require.NoError(t, err)

	repo := &fakeRepo{
		photo: map[string]ImageSet{
			"visionnaire": {
				Slug:    "visionnaire",
				Hero:    "/img/visionnaire/hero.jpg",
				Gallery: []string{"/img/visionnaire/01.jpg", "/img/visionnaire/02.jpg"},
				Logo:    "/img/visionnaire/logo.svg",
			},
			// keyed under the alias spelling, looked up via the canonical slug
			"scic-italia": {
				Slug: "scic-italia",
				Hero: "/img/scic/kuchnia.jpg",
			},
			"vibieffe": {
				Slug:    "vibieffe",
				Gallery: []string{"/img/vibieffe/sofa.jpg"},
			},
		},
		legacy: map[string]ImageSet{
			"giorgetti": {
				Slug:    "giorgetti",
				Hero:    "/archiwum/giorgetti/salon.jpg",
				Gallery: []string{"/archiwum/giorgetti/01.jpg"},
			},
			"visionnaire": {
				Slug: "visionnaire",
				Gallery: []string{
					"/img/visionnaire/02.jpg",
					"/archiwum/visionnaire/salon.jpg",
				},
			},
			"vibieffe": {
				Slug: "vibieffe",
				Hero: "/archiwum/vibieffe/hero.jpg",
			},
		},
	}

	return NewChain(repo, aliases)
}

func TestChain_Hero(t *testing.T) {
	chain := testChain(t)

	t.Run("photo set wins", func(t *testing.T) {
		assert.Equal(t, "/img/visionnaire/hero.jpg", chain.Hero("visionnaire"))
	})

	t.Run("legacy hero when photo set has none", func(t *testing.T) {
		assert.Equal(t, "/archiwum/giorgetti/salon.jpg", chain.Hero("giorgetti"))
	})

	t.Run("photo set without hero falls through to legacy", func(t *testing.T) {
		assert.Equal(t, "/archiwum/vibieffe/hero.jpg", chain.Hero("vibieffe"))
	})

	t.Run("placeholder when nothing matches", func(t *testing.T) {
		assert.Equal(t, PlaceholderURL, chain.Hero("nieznana-marka"))
	})

	t.Run("alias spelling reaches the same record", func(t *testing.T) {
		assert.Equal(t, "/img/scic/kuchnia.jpg", chain.Hero("scic"))
		assert.Equal(t, "/img/scic/kuchnia.jpg", chain.Hero("scic-italia"))
	})
}

func TestChain_Gallery(t *testing.T) {
	chain := testChain(t)

	t.Run("photo set before legacy, duplicates dropped", func(t *testing.T) {
		got := chain.Gallery("visionnaire")
		assert.Equal(t, []string{
			"/img/visionnaire/01.jpg",
			"/img/visionnaire/02.jpg",
			"/archiwum/visionnaire/salon.jpg",
		}, got)
	})

	t.Run("legacy-only gallery", func(t *testing.T) {
		assert.Equal(t, []string{"/archiwum/giorgetti/01.jpg"}, chain.Gallery("giorgetti"))
	})

	t.Run("empty gallery is an empty slice, not nil", func(t *testing.T) {
		got := chain.Gallery("nieznana-marka")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestChain_Logo(t *testing.T) {
	chain := testChain(t)

	assert.Equal(t, "/img/visionnaire/logo.svg", chain.Logo("visionnaire"))
	assert.Equal(t, "", chain.Logo("giorgetti"))
	assert.Equal(t, "", chain.Logo("nieznana-marka"))
}
