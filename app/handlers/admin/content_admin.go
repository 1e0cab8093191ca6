package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/middlewares"
	"github.com/Alok-CS-2022/import-export-site/app/models"
)

type HeroContent struct {
	Title      string `json:"title" validate:"required,max=200"`
	Subtitle   string `json:"subtitle" validate:"max=500"`
	ButtonText string `json:"buttonText" validate:"max=50"`
	ButtonLink string `json:"buttonLink" validate:"omitempty,url"`
}

type SEOContent struct {
	MetaTitle       string `json:"metaTitle" validate:"required,max=60"`
	MetaDescription string `json:"metaDescription" validate:"required,max=160"`
	Keywords        string `json:"keywords" validate:"max=500"`
}

type Testimonial struct {
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook" validate:"omitempty,url"`
	Twitter   string `json:"twitter" validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
}

// UpdateContentRequest is the typed shape of the singleton document.
// Every region is optional: a partial document stores only the regions
// it names, and the read-side merge fills the rest from defaults.
type UpdateContentRequest struct {
	Hero            *HeroContent   `json:"hero,omitempty"`
	WhyChooseUs     models.JSONMap `json:"whyChooseUs,omitempty"`
	Stats           models.JSONMap `json:"stats,omitempty"`
	SEO             *SEOContent    `json:"seo,omitempty"`
	Testimonials    []Testimonial  `json:"testimonials,omitempty" validate:"omitempty,max=20,dive"`
	BlogStories     []interface{}  `json:"blogStories,omitempty"`
	Social          *SocialLinks   `json:"social,omitempty"`
	Footer          models.JSONMap `json:"footer,omitempty"`
	Branding        models.JSONMap `json:"branding,omitempty"`
	HimalayanSlider []interface{}  `json:"himalayanSlider,omitempty"`
	Categories      []interface{}  `json:"categories,omitempty"`
}

func (h *AdminHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	content, err := h.contentRepo.Get(r.Context())
	if err != nil {
		log.Printf("Admin.GetContent: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error fetching content", "message": err.Error()})
		return
	}
	if content == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "No content published yet"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": content})
}

func (h *AdminHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	doc, err := contentDocument(&req)
	if err != nil {
		log.Printf("Admin.UpdateContent: failed to build document: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to build content document"})
		return
	}

	updatedBy := ""
	if user := middlewares.UserFromContext(r.Context()); user != nil {
		updatedBy = user.Email
	}

	stored, err := h.contentRepo.Upsert(r.Context(), doc, updatedBy)
	if err != nil {
		log.Printf("Admin.UpdateContent: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error updating content", "message": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Content updated successfully",
		"data":    stored,
	})
}

// contentDocument flattens the typed request into the stored JSON
// document, keeping only the regions the request actually carried.
func contentDocument(req *UpdateContentRequest) (models.JSONMap, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	doc := models.JSONMap{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
