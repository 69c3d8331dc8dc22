package storefront_routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	category_cache "github.com/durable-fastener/durable-cms-backend/cache"
	"github.com/durable-fastener/durable-cms-backend/catalog"
	"github.com/durable-fastener/durable-cms-backend/models"
	"github.com/durable-fastener/durable-cms-backend/services"
	"github.com/durable-fastener/durable-cms-backend/testutil"
)

func newStorefront(t *testing.T) (*gin.Engine, *services.Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := services.New(services.Deps{
		DB:    testutil.NewDB(t),
		Cache: category_cache.New(category_cache.TTL),
	})
	router := gin.New()
	SetupStorefrontRoutes(router.Group("/api/v1"), s)
	return router, s
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func seedCatalogue(t *testing.T, s *services.Services) {
	t.Helper()
	ctx := context.Background()

	fasteners, err := s.Categories.CreateCategory(ctx, "Fasteners")
	require.NoError(t, err)
	screws, err := s.Categories.CreateSubCategory(ctx, fasteners.ID, "Screws")
	require.NoError(t, err)

	_, err = s.Products.Create(ctx, models.ProductRequest{
		Name:        "Drywall Screw",
		Category:    "Fasteners",
		SubCategory: screws.ID.String(),
		Sizes:       []catalog.SizeRow{{Diameter: "3.5", Length: "25"}, {Diameter: "3.5", Length: "35"}},
		Finishes:    []catalog.FinishRow{{Name: "Black Phosphate"}},
	})
	require.NoError(t, err)
	_, err = s.Products.Create(ctx, models.ProductRequest{Name: "Pipe Elbow", Category: "Fittings"})
	require.NoError(t, err)
}

func TestGetProductsResolvesCategoryToken(t *testing.T) {
	router, s := newStorefront(t)
	seedCatalogue(t, s)

	w := get(router, "/api/v1/products?category=Screws")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data models.ProductListResponse `json:"data"`
		Meta models.Pagination          `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Products, 1)
	assert.Equal(t, "drywall-screw", resp.Data.Products[0].Slug)
	assert.Equal(t, "screws", resp.Data.CategoryToken)
	require.NotNil(t, resp.Data.Resolved)
	assert.Equal(t, catalog.LevelSubCategory, resp.Data.Resolved.Level)
	assert.Equal(t, services.ProductsPerPage, resp.Meta.Limit)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestGetProductOptions(t *testing.T) {
	router, s := newStorefront(t)
	seedCatalogue(t, s)

	w := get(router, "/api/v1/products/drywall-screw/options?diameter=3.5&length=35&finish=Zinc")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data catalog.Options `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"3.5"}, resp.Data.Diameters)
	assert.Equal(t, []string{"25", "35"}, resp.Data.Lengths)
	assert.Equal(t, catalog.Selection{Diameter: "3.5", Length: "35"}, resp.Data.Selected)

	w = get(router, "/api/v1/products/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadDatasheet(t *testing.T) {
	router, s := newStorefront(t)
	seedCatalogue(t, s)

	w := get(router, "/api/v1/products/drywall-screw/datasheet")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "drywall-screw-datasheet.pdf")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestFinderWithoutModelUsesKeywords(t *testing.T) {
	router, s := newStorefront(t)
	seedCatalogue(t, s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/finder", strings.NewReader(`{"query":"elbow"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []services.Recommendation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 85.0, resp.Data[0].MatchScore)
}

func TestCreateEnquiryValidates(t *testing.T) {
	router, _ := newStorefront(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/enquiries", strings.NewReader(`{"first_name":"Asha","email":"not-an-email","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLimiterGuardsPublicWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := services.New(services.Deps{
		DB:    testutil.NewDB(t),
		Cache: category_cache.New(category_cache.TTL),
	})

	var limited []string
	deny := func(c *gin.Context) {
		limited = append(limited, c.FullPath())
		c.AbortWithStatus(http.StatusTooManyRequests)
	}
	router := gin.New()
	SetupStorefrontRoutes(router.Group("/api/v1"), s, deny)

	for _, path := range []string{"/api/v1/finder", "/api/v1/enquiries"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, strings.NewReader("{}")))
		assert.Equal(t, http.StatusTooManyRequests, w.Code, path)
	}
	assert.Equal(t, http.StatusOK, get(router, "/api/v1/categories").Code)
	assert.Equal(t, []string{"/api/v1/finder", "/api/v1/enquiries"}, limited)
}
