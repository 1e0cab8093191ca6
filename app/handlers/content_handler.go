package handlers

import (
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/unrolled/render"
)

type ContentHandler struct {
	resolver *services.ContentResolver
	render   *render.Render
}

func NewContentHandler(resolver *services.ContentResolver, rnd *render.Render) *ContentHandler {
	return &ContentHandler{resolver: resolver, render: rnd}
}

// GetContent serves the merged site content document. The resolver
// guarantees every region has a value, so this never errors: worst
// case the caller gets the built-in defaults.
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, h.resolver.Resolve(r.Context()))
}
