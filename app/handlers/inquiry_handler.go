package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/middlewares"
	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type InquiryRequest struct {
	CustomerName  string              `json:"customer_name" validate:"required"`
	CustomerEmail string              `json:"customer_email" validate:"required,email"`
	CustomerPhone string              `json:"customer_phone"`
	ProductName   string              `json:"product_name"`
	Message       string              `json:"message" validate:"required"`
	Items         string              `json:"items"`
	TotalAmount   decimal.NullDecimal `json:"total_amount"`
}

type InquiryHandler struct {
	inquirySvc  *services.InquiryService
	validator   *validator.Validate
	render      *render.Render
	requireAuth bool
}

func NewInquiryHandler(inquirySvc *services.InquiryService, validate *validator.Validate, rnd *render.Render, requireAuth bool) *InquiryHandler {
	return &InquiryHandler{inquirySvc: inquirySvc, validator: validate, render: rnd, requireAuth: requireAuth}
}

// SubmitInquiry validates and stores one inquiry row. Authentication
// is optional by default (INQUIRY_REQUIRE_AUTH flips it): an absent
// token means an anonymous inquiry, but a token that fails to resolve
// rejects the whole request upstream in the auth middleware.
func (h *InquiryHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	user := middlewares.UserFromContext(r.Context())
	if h.requireAuth && user == nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized: No token provided"})
		return
	}

	var req InquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	productName := req.ProductName
	if productName == "" {
		productName = "General Inquiry"
	}

	inquiry := &models.Inquiry{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ProductName:   productName,
		Message:       req.Message,
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		Status:        models.InquiryStatusPending,
	}
	if user != nil {
		inquiry.UserID = &user.ID
	}

	if err := h.inquirySvc.Submit(r.Context(), inquiry); err != nil {
		log.Printf("SubmitInquiry: failed to store inquiry: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Inquiry submitted successfully"})
}
