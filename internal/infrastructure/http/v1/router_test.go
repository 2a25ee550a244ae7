package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arredo/internal/domain/alias"
	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/category"
	"arredo/internal/domain/catalogs/product"
	"arredo/internal/domain/content"
	"arredo/internal/domain/filter"
	"arredo/internal/domain/media"
	"arredo/internal/infrastructure/http/v1/dto"
	"arredo/internal/infrastructure/storage/registry"
	"arredo/pkg/logger"
)

// testRouter assembles the full stack over the embedded registry, the
// same wiring the server performs at startup.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := registry.Load()
	require.NoError(t, err)

	aliases, err := alias.NewResolver(store.AliasTable())
	require.NoError(t, err)

	log, err := logger.New(logger.Config{Level: "error"})
	require.NoError(t, err)

	brands := brand.NewService(registry.NewBrandRepo(store), aliases)

	return NewRouter(RouterConfig{
		Logger:     log,
		Store:      store,
		Brands:     brands,
		Categories: category.NewService(registry.NewCategoryRepo(store), aliases),
		Products:   product.NewService(registry.NewProductRepo(store), aliases),
		Filter:     filter.NewEngine(brands, aliases),
		Images:     media.NewChain(registry.NewMediaRepo(store), aliases),
		Texts:      content.NewSelector(registry.NewContentRepo(store), aliases),
	})
}

func get(t *testing.T, router http.Handler, path string, out any) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t)

	assert.Equal(t, http.StatusOK, get(t, router, "/health/live", nil))
	assert.Equal(t, http.StatusOK, get(t, router, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, get(t, router, "/health/info", nil))
}

func TestBrandList(t *testing.T) {
	router := testRouter(t)

	t.Run("no predicates returns everything in canonical order", func(t *testing.T) {
		var resp dto.BrandListResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands", &resp))

		require.NotEmpty(t, resp.Items)
		assert.Equal(t, len(resp.Items), resp.TotalCount)
		assert.Equal(t, "visionnaire", resp.Items[0].Slug)
		assert.NotEmpty(t, resp.Letters)
		assert.NotEmpty(t, resp.Styles)

		for i := 1; i < len(resp.Items); i++ {
			prev, cur := resp.Items[i-1], resp.Items[i]
			assert.LessOrEqual(t, prev.Tier, cur.Tier)
			if prev.Tier == cur.Tier {
				assert.LessOrEqual(t, prev.SortOrder, cur.SortOrder)
			}
		}
	})

	t.Run("category predicate", func(t *testing.T) {
		var resp dto.BrandListResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands?category=kuchnie", &resp))

		require.NotEmpty(t, resp.Items)
		for _, item := range resp.Items {
			assert.Contains(t, item.Categories, "kuchnie")
		}
	})

	t.Run("letter and search predicates compose", func(t *testing.T) {
		var resp dto.BrandListResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands?letter=v&q=cucine", &resp))

		require.NotEmpty(t, resp.Items)
		for _, item := range resp.Items {
			assert.Equal(t, byte('V'), item.Label[0])
		}
	})

	t.Run("unknown style matches nothing", func(t *testing.T) {
		var resp dto.BrandListResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands?style=nieistniejacy", &resp))
		assert.Zero(t, resp.TotalCount)
		assert.NotNil(t, resp.Items)
	})
}

func TestBrandGet(t *testing.T) {
	router := testRouter(t)

	t.Run("alias spelling serves the canonical merged record", func(t *testing.T) {
		var byAlias, byCanonical dto.BrandDetailResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/scic-italia", &byAlias))
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/scic", &byCanonical))

		assert.Equal(t, byCanonical, byAlias)
		assert.Equal(t, "scic", byAlias.Slug)
		assert.Equal(t, "SCIC Italia", byAlias.Label)
		assert.NotEmpty(t, byAlias.Description)
	})

	t.Run("locale switches the description", func(t *testing.T) {
		var pl, en dto.BrandDetailResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/visionnaire", &pl))
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/visionnaire?locale=en", &en))

		require.NotEmpty(t, pl.Description)
		require.NotEmpty(t, en.Description)
		assert.NotEqual(t, pl.Description, en.Description)
	})

	t.Run("unknown brand is 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/brands/nieznana-marka", nil))
	})
}

func TestBrandImages(t *testing.T) {
	router := testRouter(t)

	t.Run("unknown slug still resolves a hero", func(t *testing.T) {
		var resp dto.ImagesResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/nieznana-marka/images", &resp))

		assert.Equal(t, media.PlaceholderURL, resp.Hero)
		assert.NotNil(t, resp.Gallery)
		assert.Empty(t, resp.Gallery)
	})

	t.Run("legacy registry supplies heroes the photo sets lack", func(t *testing.T) {
		var resp dto.ImagesResponse
		require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/giorgetti/images", &resp))

		assert.NotEmpty(t, resp.Hero)
		assert.NotEqual(t, media.PlaceholderURL, resp.Hero)
	})
}

func TestBrandProducts(t *testing.T) {
	router := testRouter(t)

	var resp dto.ListResponse[dto.ProductResponse]
	require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/scic/products", &resp))

	require.NotEmpty(t, resp.Items)
	assert.Equal(t, len(resp.Items), resp.TotalCount)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/brands/nieznana-marka/products", nil))
}

func TestBrandFooter(t *testing.T) {
	router := testRouter(t)

	var resp dto.ListResponse[dto.BrandResponse]
	require.Equal(t, http.StatusOK, get(t, router, "/api/v1/brands/footer", &resp))

	require.NotEmpty(t, resp.Items)
	for _, item := range resp.Items {
		assert.True(t, item.Footer, "brand %s not flagged for footer", item.Slug)
	}
}

func TestCategoryEndpoints(t *testing.T) {
	router := testRouter(t)

	assert.Equal(t, http.StatusOK, get(t, router, "/api/v1/categories", nil))

	var resp dto.CategoryResponse
	require.Equal(t, http.StatusOK, get(t, router, "/api/v1/categories/sofy", &resp))
	assert.Equal(t, "sofy", resp.Slug)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/categories/brak", nil))
}

func TestProductEndpoints(t *testing.T) {
	router := testRouter(t)

	var resp dto.ProductResponse
	require.Equal(t, http.StatusOK, get(t, router, "/api/v1/products/vibieffe-fly", &resp))
	assert.Equal(t, "vibieffe", resp.Brand)

	assert.Equal(t, http.StatusNotFound, get(t, router, "/api/v1/products/brak", nil))
}
