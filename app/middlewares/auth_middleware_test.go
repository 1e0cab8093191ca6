package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/Alok-CS-2022/import-export-site/app/utils/renderer"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func okHandler(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareRequiredRejectsMissingToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	repo := &stubUserRepo{}

	called := false
	handler := AuthMiddleware(tokens, repo, renderer.New(), true)(okHandler(t, &called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/my-orders", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddlewareOptionalPassesAnonymous(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	repo := &stubUserRepo{}

	called := false
	handler := AuthMiddleware(tokens, repo, renderer.New(), false)(okHandler(t, &called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/inquiry", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestAuthMiddlewareOptionalStillRejectsBadToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	repo := &stubUserRepo{}

	called := false
	handler := AuthMiddleware(tokens, repo, renderer.New(), false)(okHandler(t, &called))

	req := httptest.NewRequest(http.MethodPost, "/api/inquiry", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthMiddlewareResolvesUserOntoContext(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	admin := &models.User{ID: "u-1", Email: "owner@example.com", Role: models.RoleAdmin}
	repo := &stubUserRepo{users: map[string]*models.User{"u-1": admin}}

	token, err := tokens.Generate(admin)
	require.NoError(t, err)

	var seen *models.User
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(tokens, repo, renderer.New(), true)(inner)

	req := httptest.NewRequest(http.MethodGet, "/api/my-orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u-1", seen.ID)
}

func TestAdminMiddlewareBlocksNonAdmin(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	customer := &models.User{ID: "u-2", Email: "shopper@example.com", Role: models.RoleCustomer}
	repo := &stubUserRepo{users: map[string]*models.User{"u-2": customer}}

	token, err := tokens.Generate(customer)
	require.NoError(t, err)

	called := false
	rnd := renderer.New()
	handler := AuthMiddleware(tokens, repo, rnd, true)(AdminMiddleware(rnd)(okHandler(t, &called)))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	tokens := services.NewTokenService("test-secret")
	admin := &models.User{ID: "u-1", Email: "owner@example.com", Role: models.RoleAdmin}
	repo := &stubUserRepo{users: map[string]*models.User{"u-1": admin}}

	token, err := tokens.Generate(admin)
	require.NoError(t, err)

	called := false
	rnd := renderer.New()
	handler := AuthMiddleware(tokens, repo, rnd, true)(AdminMiddleware(rnd)(okHandler(t, &called)))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}
