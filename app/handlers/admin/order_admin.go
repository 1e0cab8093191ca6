package admin

import (
	"encoding/json"
	"log"
	"net/http"
)

type UpdateOrderStatusRequest struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.inquiryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("Admin.ListOrders: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus is the only admin mutation on orders: inquiries
// are never edited or deleted, their status just moves.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if req.ID == "" || req.Status == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Missing id or status"})
		return
	}

	if err := h.inquiryRepo.UpdateStatus(r.Context(), req.ID, req.Status); err != nil {
		log.Printf("Admin.UpdateOrderStatus: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	updated, err := h.inquiryRepo.GetByID(r.Context(), req.ID)
	if err != nil {
		log.Printf("Admin.UpdateOrderStatus: error reloading order %s: %v", req.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if updated == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, updated)
}
