package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arredo/internal/domain/alias"
	"arredo/internal/domain/catalogs/brand"
)

type fakeRepo []brand.Brand

func (r fakeRepo) List() []brand.Brand {
	return append([]brand.Brand(nil), r...)
}

func (r fakeRepo) Get(slug string) (*brand.Brand, bool) {
	for _, b := range r {
		if b.Slug == slug {
			out := b
			return &out, true
		}
	}
	return nil, false
}

func (r fakeRepo) GetProfile(slug string) (*brand.Profile, bool) {
	return nil, false
}

// Registry order is deliberately shuffled; the engine must impose the
// canonical order regardless.
func testEngine(t *testing.T) *Engine {
	t.Helper()

	aliases, err := alias.NewResolver(map[string]string{
		"scic-italia": "scic",
	})
	require.NoError(t, err)

	repo := fakeRepo{
		{Slug: "vibieffe", Label: "Vibieffe", Tier: brand.TierSpecialist, SortOrder: 10,
			Categories: []string{"sofy"}, Styles: []string{"nowoczesny"}},
		{Slug: "scic", Label: "SCIC", Tier: brand.TierPremium, SortOrder: 60, Footer: true,
			Categories: []string{"kuchnie"}, Styles: []string{"nowoczesny", "klasyczny"}},
		{Slug: "valcucine", Label: "Valcucine", Tier: brand.TierSpecialist, SortOrder: 20,
			Categories: []string{"kuchnie"}, Styles: []string{"nowoczesny"}},
		// same tier and sort order: Polish collation decides, Ł before M
		{Slug: "mebel-lux", Label: "Mebel Lux", Tier: brand.TierSpecialist, SortOrder: 30,
			Categories: []string{"szafy"}},
		{Slug: "lado", Label: "Łado", Tier: brand.TierSpecialist, SortOrder: 30,
			Categories: []string{"szafy"}},
		{Slug: "visionnaire", Label: "Visionnaire", Tier: brand.TierPremium, SortOrder: 10, Footer: true,
			Categories: []string{"sofy", "lozka"}, Styles: []string{"glamour"}},
	}

	return NewEngine(brand.NewService(repo, aliases), aliases)
}

func TestEngine_Sorted(t *testing.T) {
	e := testEngine(t)

	slugs := func(views []brand.View) []string {
		out := make([]string, 0, len(views))
		for _, v := range views {
			out = append(out, v.Slug)
		}
		return out
	}

	t.Run("tier, sort order, then Polish collation", func(t *testing.T) {
		assert.Equal(t, []string{
			"visionnaire", "scic",
			"vibieffe", "valcucine", "lado", "mebel-lux",
		}, slugs(e.Sorted()))
	})

	t.Run("no predicates returns the full set in canonical order", func(t *testing.T) {
		assert.Equal(t, slugs(e.Sorted()), slugs(e.Brands(Criteria{})))
	})
}

func TestEngine_Brands(t *testing.T) {
	e := testEngine(t)

	t.Run("category predicate", func(t *testing.T) {
		got := e.Brands(Criteria{Category: "kuchnie"})
		require.Len(t, got, 2)
		assert.Equal(t, "scic", got[0].Slug)
		assert.Equal(t, "valcucine", got[1].Slug)
	})

	t.Run("brand predicate resolves aliases", func(t *testing.T) {
		got := e.Brands(Criteria{Brand: "scic-italia"})
		require.Len(t, got, 1)
		assert.Equal(t, "scic", got[0].Slug)
	})

	t.Run("letter predicate is case-insensitive", func(t *testing.T) {
		upper := e.Brands(Criteria{Letter: "V"})
		lower := e.Brands(Criteria{Letter: "v"})
		assert.Equal(t, upper, lower)
		require.Len(t, upper, 3)
		assert.Equal(t, "visionnaire", upper[0].Slug)
	})

	t.Run("letter predicate handles Polish letters", func(t *testing.T) {
		got := e.Brands(Criteria{Letter: "Ł"})
		require.Len(t, got, 1)
		assert.Equal(t, "lado", got[0].Slug)
	})

	t.Run("malformed letter means no constraint", func(t *testing.T) {
		assert.Len(t, e.Brands(Criteria{Letter: "ab"}), 6)
		assert.Len(t, e.Brands(Criteria{Letter: "7"}), 6)
	})

	t.Run("search is a substring test on the label", func(t *testing.T) {
		got := e.Brands(Criteria{Search: "cuc"})
		require.Len(t, got, 1)
		assert.Equal(t, "valcucine", got[0].Slug)
	})

	t.Run("style predicate", func(t *testing.T) {
		got := e.Brands(Criteria{Style: "nowoczesny"})
		require.Len(t, got, 3)
		assert.Equal(t, "scic", got[0].Slug)
	})

	t.Run("predicates AND together", func(t *testing.T) {
		got := e.Brands(Criteria{Category: "kuchnie", Letter: "v"})
		require.Len(t, got, 1)
		assert.Equal(t, "valcucine", got[0].Slug)
	})

	t.Run("empty intersection is an empty slice", func(t *testing.T) {
		got := e.Brands(Criteria{Category: "sofy", Style: "klasyczny"})
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestEngine_Footer(t *testing.T) {
	e := testEngine(t)

	got := e.Footer()
	require.Len(t, got, 2)
	assert.Equal(t, "visionnaire", got[0].Slug)
	assert.Equal(t, "scic", got[1].Slug)
}

func TestEngine_Letters(t *testing.T) {
	e := testEngine(t)

	// distinct first letters in canonical order, lowercased
	assert.Equal(t, []string{"v", "s", "ł", "m"}, e.Letters())
}

func TestEngine_Styles(t *testing.T) {
	e := testEngine(t)

	assert.Equal(t, []string{"glamour", "nowoczesny", "klasyczny"}, e.Styles())
}
