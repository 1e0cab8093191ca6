package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/Alok-CS-2022/import-export-site/app/utils/renderer"
)

type stubProductRepo struct {
	active   []models.Product
	featured []models.Product
	newest   []models.Product
	err      error
}

func (s *stubProductRepo) GetActive(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	return s.active, s.err
}

func (s *stubProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.active, s.err
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	for i := range s.active {
		if s.active[i].ID == id {
			return &s.active[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubProductRepo) GetFeatured(ctx context.Context, limit int) ([]models.Product, error) {
	return s.featured, s.err
}

func (s *stubProductRepo) GetNewest(ctx context.Context, limit int) ([]models.Product, error) {
	return s.newest, s.err
}

func (s *stubProductRepo) Create(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProductRepo) Update(ctx context.Context, product *models.Product) error { return nil }
func (s *stubProductRepo) Delete(ctx context.Context, id string) error               { return nil }

type stubCategoryRepo struct {
	active []models.Category
	err    error
}

func (s *stubCategoryRepo) Create(ctx context.Context, category *models.Category) error { return nil }
func (s *stubCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return nil, nil
}
func (s *stubCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.active, s.err
}
func (s *stubCategoryRepo) GetActive(ctx context.Context) ([]models.Category, error) {
	return s.active, s.err
}
func (s *stubCategoryRepo) Update(ctx context.Context, category *models.Category) error { return nil }
func (s *stubCategoryRepo) Delete(ctx context.Context, id string) error                 { return nil }

func decodeProducts(t *testing.T, rec *httptest.ResponseRecorder) []models.Product {
	t.Helper()
	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	return products
}

func TestFeaturedFallsBackToNewest(t *testing.T) {
	repo := &stubProductRepo{
		featured: nil,
		newest:   []models.Product{{ID: "p9", Name: "New Arrival"}},
	}
	h := NewCatalogHandler(repo, &stubCategoryRepo{}, renderer.New())

	rec := httptest.NewRecorder()
	h.FeaturedProducts(rec, httptest.NewRequest(http.MethodGet, "/api/featured-products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeProducts(t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "New Arrival", products[0].Name)
}

func TestListProductsServesSamplesWhenStoreDown(t *testing.T) {
	repo := &stubProductRepo{err: errors.New("connection refused")}
	h := NewCatalogHandler(repo, &stubCategoryRepo{}, renderer.New())

	rec := httptest.NewRecorder()
	h.ListProducts(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	// Degraded mode still answers 200 with the sample catalog.
	require.Equal(t, http.StatusOK, rec.Code)
	products := decodeProducts(t, rec)
	assert.NotEmpty(t, products)
}

func TestListCategoriesServesSamplesWhenStoreDown(t *testing.T) {
	h := NewCatalogHandler(&stubProductRepo{}, &stubCategoryRepo{err: errors.New("connection refused")}, renderer.New())

	rec := httptest.NewRecorder()
	h.ListCategories(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var categories []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.NotEmpty(t, categories)
}

func TestGetProductNotFound(t *testing.T) {
	h := NewCatalogHandler(&stubProductRepo{}, &stubCategoryRepo{}, renderer.New())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/products/missing", nil), map[string]string{"id": "missing"})
	rec := httptest.NewRecorder()
	h.GetProduct(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
