package handlers

import (
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/unrolled/render"
)

type BlogHandler struct {
	blogRepo repositories.BlogRepository
	render   *render.Render
}

func NewBlogHandler(blogRepo repositories.BlogRepository, rnd *render.Render) *BlogHandler {
	return &BlogHandler{blogRepo: blogRepo, render: rnd}
}

func (h *BlogHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.blogRepo.GetActive(r.Context())
	if err != nil {
		log.Printf("ListStories: error listing blog stories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, stories)
}
