package handlers

import (
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/middlewares"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	inquiryRepo repositories.InquiryRepository
	render      *render.Render
}

func NewOrderHandler(inquiryRepo repositories.InquiryRepository, rnd *render.Render) *OrderHandler {
	return &OrderHandler{inquiryRepo: inquiryRepo, render: rnd}
}

// MyOrders lists the authenticated shopper's inquiries, newest first.
// The route is mounted behind the required-auth middleware.
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())
	if user == nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	orders, err := h.inquiryRepo.GetByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("MyOrders: error listing orders for user %s: %v", user.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, orders)
}
