package cms_routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func newAdminRouter(t *testing.T) (*gin.Engine, *services.Services) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	jwtSvc, err := services.NewJWTService("test-secret")
	require.NoError(t, err)
	s := services.New(services.Deps{DB: db, Cache: category_cache.New(category_cache.TTL), JWT: jwtSvc})

	router := gin.New()
	admin := router.Group("/api/v1/admin")
	protected := SetupAdminRoutes(admin, db, s)
	SetupCategoryRoutes(protected, s)
	SetupProductRoutes(protected, s)
	SetupJobRoutes(protected, s)
	SetupContentRoutes(protected, s)
	return router, s
}

func do(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, s *services.Services, role string) string {
	t.Helper()
	_, err := s.Auth.CreateAdmin(context.Background(), "ops@durable.test", "Ops", "correct-horse", role)
	require.NoError(t, err)

	w := do(router, http.MethodPost, "/api/v1/admin/login", "", models.AdminLoginRequest{
		Email:    "ops@durable.test",
		Password: "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data models.AdminLoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newAdminRouter(t)

	w := do(router, http.MethodGet, "/api/v1/admin/categories", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodGet, "/api/v1/admin/categories", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	router, s := newAdminRouter(t)
	_, err := s.Auth.CreateAdmin(context.Background(), "ops@durable.test", "Ops", "correct-horse", models.AdminRoleEditor)
	require.NoError(t, err)

	w := do(router, http.MethodPost, "/api/v1/admin/login", "", models.AdminLoginRequest{
		Email:    "ops@durable.test",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCategoryIsLogged(t *testing.T) {
	router, s := newAdminRouter(t)
	token := login(t, router, s, models.AdminRoleSuperAdmin)

	w := do(router, http.MethodPost, "/api/v1/admin/categories", token, models.CategoryRequest{Name: "Fasteners"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data models.Category `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do(router, http.MethodPost, "/api/v1/admin/categories/"+created.Data.ID.String()+"/sub-categories", token, models.CategoryRequest{Name: "Screws"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(router, http.MethodPost, "/api/v1/admin/categories/not-a-uuid/sub-categories", token, models.CategoryRequest{Name: "Bolts"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	logs, page, err := s.Activity.List(context.Background(), services.ActivityLogFilter{ResourceType: models.ResourceTypeCategory})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)

	var success []models.ActivityLogResponse
	for _, l := range logs {
		if l.Status == models.StatusSuccess {
			success = append(success, l)
		}
	}
	require.Len(t, success, 2)
	names := []string{success[0].ResourceName, success[1].ResourceName}
	assert.ElementsMatch(t, []string{"Fasteners", "Screws"}, names)
}

func TestActivityLogsNeedSuperAdmin(t *testing.T) {
	router, s := newAdminRouter(t)
	token := login(t, router, s, models.AdminRoleEditor)

	w := do(router, http.MethodGet, "/api/v1/admin/activity-logs", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(router, http.MethodGet, "/api/v1/admin/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogoutEndsSession(t *testing.T) {
	router, s := newAdminRouter(t)
	token := login(t, router, s, models.AdminRoleEditor)

	w := do(router, http.MethodPost, "/api/v1/admin/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(router, http.MethodGet, "/api/v1/admin/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubCategoriesForProductForm(t *testing.T) {
	router, s := newAdminRouter(t)
	token := login(t, router, s, models.AdminRoleEditor)

	fasteners, err := s.Categories.CreateCategory(context.Background(), "Fasteners")
	require.NoError(t, err)
	_, err = s.Categories.CreateSubCategory(context.Background(), fasteners.ID, "Screws")
	require.NoError(t, err)
	_, err = s.Categories.CreateSubCategory(context.Background(), fasteners.ID, "Bolts")
	require.NoError(t, err)

	w := do(router, http.MethodGet, "/api/v1/admin/categories/sub-categories?category=Fasteners", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Data []catalog.SubCategoryNode `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Bolts", resp.Data[0].Name)
	assert.Equal(t, "Screws", resp.Data[1].Name)

	w = do(router, http.MethodGet, "/api/v1/admin/categories/sub-categories?category=fasteners", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)

	w = do(router, http.MethodGet, "/api/v1/admin/categories/sub-categories", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
