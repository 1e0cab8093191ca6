package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/models"
)

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	ID           string  `json:"id" validate:"required"`
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url" validate:"omitempty,url"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *AdminHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Admin.ListCategories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = helpers.GenerateSlug(req.Name)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	category := &models.Category{
		Name:         req.Name,
		Slug:         slug,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}

	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		log.Printf("Admin.CreateCategory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, category)
}

func (h *AdminHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if req.ID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Category ID is required for update"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), req.ID)
	if err != nil {
		log.Printf("Admin.UpdateCategory: error fetching category %s: %v", req.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
		return
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.ImageURL != nil {
		category.ImageURL = *req.ImageURL
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("Admin.UpdateCategory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, category)
}

// DeleteCategory cascade-nulls product references before removing the
// row; the repository enforces the ordering.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Category ID is required for delete"})
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), id); err != nil {
		log.Printf("Admin.DeleteCategory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
