package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

const defaultFeaturedLimit = 5

type CatalogHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewCatalogHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, rnd *render.Render) *CatalogHandler {
	return &CatalogHandler{productRepo: productRepo, categoryRepo: categoryRepo, render: rnd}
}

// ListProducts serves the public catalog. When the store is down it
// answers with the built-in sample set so the page never comes up
// empty; that degraded mode is logged, not hidden.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Keyword:  r.URL.Query().Get("q"),
		Sort:     r.URL.Query().Get("sort"),
	}

	products, err := h.productRepo.GetActive(r.Context(), filter)
	if err != nil {
		log.Printf("ListProducts: store unavailable, serving sample products: %v", err)
		_ = h.render.JSON(w, http.StatusOK, sampleProducts())
		return
	}

	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		log.Printf("GetProduct: error fetching product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("ListCategories: store unavailable, serving sample categories: %v", err)
		_ = h.render.JSON(w, http.StatusOK, sampleCategories())
		return
	}

	_ = h.render.JSON(w, http.StatusOK, categories)
}

// FeaturedProducts lists flagged products by display order. When
// nothing is flagged it falls back to the newest products so the
// homepage spotlight always has content.
func (h *CatalogHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	limit := cast.ToInt(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}

	products, err := h.productRepo.GetFeatured(r.Context(), limit)
	if err != nil {
		log.Printf("FeaturedProducts: store unavailable, serving sample products: %v", err)
		_ = h.render.JSON(w, http.StatusOK, sampleProducts())
		return
	}

	if len(products) == 0 {
		products, err = h.productRepo.GetNewest(r.Context(), limit)
		if err != nil {
			log.Printf("FeaturedProducts: fallback listing failed, serving sample products: %v", err)
			_ = h.render.JSON(w, http.StatusOK, sampleProducts())
			return
		}
	}

	_ = h.render.JSON(w, http.StatusOK, products)
}

func price(v float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(v), Valid: true}
}

func strptr(s string) *string {
	return &s
}

// Sample data served when the table store is unreachable. Mirrors the
// seeded catalog so the storefront still renders something sensible.
func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Hand-Hammered Singing Bowl", Price: price(450), CategoryID: strptr("singing-bowls"), Description: "Ancient resonance for healing and meditation.", ImageURL: "https://images.unsplash.com/photo-1599458319801-443b73259966?w=800&q=80", IsActive: true},
		{ID: "2", Name: "Mandala Thangka Painting", Price: price(1200), CategoryID: strptr("thangkas"), Description: "Intricate spiritual geometry on cotton canvas.", ImageURL: "https://images.unsplash.com/photo-1610701596007-11502861dcfa?w=800&q=80", IsActive: true},
		{ID: "3", Name: "Gilded Buddha Statue", Price: price(2800), CategoryID: strptr("statues"), Description: "Hand-carved Shakyamuni Buddha with gold leaf.", ImageURL: "https://images.unsplash.com/photo-1544735716-392fe2489ffa?w=800&q=80", IsActive: true},
		{ID: "4", Name: "Turquoise Silver Ring", Price: price(150), CategoryID: strptr("jewelry"), Description: "Ethnic jewelry from the heart of Kathmandu.", ImageURL: "https://images.unsplash.com/photo-1626014303757-646637e90952?w=800&q=80", IsActive: true},
	}
}

func sampleCategories() []models.Category {
	return []models.Category{
		{ID: "singing-bowls", Name: "Singing Bowls", Slug: "singing-bowls", IsActive: true},
		{ID: "thangkas", Name: "Thangka Art", Slug: "thangkas", IsActive: true},
		{ID: "statues", Name: "Buddha Statues", Slug: "statues", IsActive: true},
		{ID: "jewelry", Name: "Artisan Jewelry", Slug: "jewelry", IsActive: true},
	}
}
