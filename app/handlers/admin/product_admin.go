package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateProductRequest struct {
	Name         string              `json:"name" validate:"required"`
	Description  string              `json:"description"`
	Price        decimal.NullDecimal `json:"price"`
	ImageURL     string              `json:"image_url" validate:"omitempty,url"`
	CategoryID   *string             `json:"category_id"`
	DisplayOrder int                 `json:"display_order"`
	IsActive     *bool               `json:"is_active"`
	IsFeatured   bool                `json:"is_featured"`
}

type UpdateProductRequest struct {
	ID           string               `json:"id" validate:"required"`
	Name         *string              `json:"name"`
	Description  *string              `json:"description"`
	Price        *decimal.NullDecimal `json:"price"`
	ImageURL     *string              `json:"image_url" validate:"omitempty,url"`
	CategoryID   *string              `json:"category_id"`
	DisplayOrder *int                 `json:"display_order"`
	IsActive     *bool                `json:"is_active"`
	IsFeatured   *bool                `json:"is_featured"`
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Admin.ListProducts: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		CategoryID:   req.CategoryID,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
		IsFeatured:   req.IsFeatured,
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("Admin.CreateProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if req.ID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Product ID required"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		log.Printf("Admin.UpdateProduct: error fetching product %s: %v", req.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.DisplayOrder != nil {
		product.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("Admin.UpdateProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Product ID required"})
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("Admin.DeleteProduct: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Product deleted"})
}
