package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/models"
)

type CreateBlogStoryRequest struct {
	Title        string `json:"title" validate:"required,min=3"`
	Description  string `json:"description" validate:"required,min=10"`
	ImageURL     string `json:"image_url" validate:"required,url"`
	Category     string `json:"category"`
	IsFeatured   bool   `json:"is_featured"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateBlogStoryRequest struct {
	ID           string  `json:"id" validate:"required"`
	Title        *string `json:"title" validate:"omitempty,min=3"`
	Description  *string `json:"description" validate:"omitempty,min=10"`
	ImageURL     *string `json:"image_url" validate:"omitempty,url"`
	Category     *string `json:"category"`
	IsFeatured   *bool   `json:"is_featured"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (h *AdminHandler) ListBlogStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.blogRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Admin.ListBlogStories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, stories)
}

func (h *AdminHandler) CreateBlogStory(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogStoryRequest
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

	story := &models.BlogStory{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Category:     req.Category,
		IsFeatured:   req.IsFeatured,
		DisplayOrder: req.DisplayOrder,
		IsActive:     active,
	}

	if err := h.blogRepo.Create(r.Context(), story); err != nil {
		log.Printf("Admin.CreateBlogStory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, story)
}

func (h *AdminHandler) UpdateBlogStory(w http.ResponseWriter, r *http.Request) {
	var req UpdateBlogStoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if req.ID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Blog story ID required"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	story, err := h.blogRepo.GetByID(r.Context(), req.ID)
	if err != nil {
		log.Printf("Admin.UpdateBlogStory: error fetching story %s: %v", req.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if story == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Blog story not found"})
		return
	}

	if req.Title != nil {
		story.Title = *req.Title
	}
	if req.Description != nil {
		story.Description = *req.Description
	}
	if req.ImageURL != nil {
		story.ImageURL = *req.ImageURL
	}
	if req.Category != nil {
		story.Category = *req.Category
	}
	if req.IsFeatured != nil {
		story.IsFeatured = *req.IsFeatured
	}
	if req.DisplayOrder != nil {
		story.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		story.IsActive = *req.IsActive
	}

	if err := h.blogRepo.Update(r.Context(), story); err != nil {
		log.Printf("Admin.UpdateBlogStory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, story)
}

func (h *AdminHandler) DeleteBlogStory(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Blog story ID required"})
		return
	}

	if err := h.blogRepo.Delete(r.Context(), id); err != nil {
		log.Printf("Admin.DeleteBlogStory: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Blog story deleted successfully"})
}
