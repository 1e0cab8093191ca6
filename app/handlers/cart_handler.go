package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/Alok-CS-2022/import-export-site/app/cart"
	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/middlewares"
	"github.com/Alok-CS-2022/import-export-site/app/models"
	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type AddItemRequest struct {
	ProductID string              `json:"product_id" validate:"required"`
	Name      string              `json:"name" validate:"required"`
	Price     decimal.NullDecimal `json:"price"`
	Image     string              `json:"image"`
}

type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone"`
	Message       string `json:"message"`
}

type CartHandler struct {
	sessions   *cart.SessionStore
	inquirySvc *services.InquiryService
	validator  *validator.Validate
	render     *render.Render
}

func NewCartHandler(sessions *cart.SessionStore, inquirySvc *services.InquiryService, validate *validator.Validate, rnd *render.Render) *CartHandler {
	return &CartHandler{sessions: sessions, inquirySvc: inquirySvc, validator: validate, render: rnd}
}

type cartResponse struct {
	Items    []cart.Item     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Count    int             `json:"count"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, status int, c *cart.Cart) {
	_ = h.render.JSON(w, status, cartResponse{
		Items:    c.Items,
		Subtotal: c.Subtotal(),
		Count:    c.Count(),
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respondCart(w, http.StatusOK, h.sessions.Load(r))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	c := h.sessions.Load(r)
	c.Add(req.ProductID, req.Name, req.Price, req.Image)

	if err := h.sessions.Save(w, r, c); err != nil {
		log.Printf("AddItem: failed to save cart: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
		return
	}

	h.respondCart(w, http.StatusOK, c)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var req UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}

	c := h.sessions.Load(r)
	c.UpdateQuantity(productID, req.Quantity)

	if err := h.sessions.Save(w, r, c); err != nil {
		log.Printf("UpdateItem: failed to save cart: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
		return
	}

	h.respondCart(w, http.StatusOK, c)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	c := h.sessions.Load(r)
	c.Remove(productID)

	if err := h.sessions.Save(w, r, c); err != nil {
		log.Printf("RemoveItem: failed to save cart: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save cart"})
		return
	}

	h.respondCart(w, http.StatusOK, c)
}

// Checkout turns the cart into an inquiry row and clears the cart on
// success. The cart contents go along as a JSON snapshot, the way the
// shopper saw them.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	c := h.sessions.Load(r)
	if c.IsEmpty() {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
		return
	}

	items, err := json.Marshal(c.Items)
	if err != nil {
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to snapshot cart"})
		return
	}

	message := req.Message
	if message == "" {
		message = buildCheckoutMessage(c)
	}

	inquiry := &models.Inquiry{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ProductName:   "Checkout - Multiple Items",
		Message:       message,
		Items:         string(items),
		TotalAmount:   decimal.NullDecimal{Decimal: c.Subtotal(), Valid: true},
		Status:        models.InquiryStatusPending,
	}
	if user := middlewares.UserFromContext(r.Context()); user != nil {
		inquiry.UserID = &user.ID
	}

	if err := h.inquirySvc.Submit(r.Context(), inquiry); err != nil {
		log.Printf("Checkout: failed to store inquiry: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	c.Clear()
	if err := h.sessions.Save(w, r, c); err != nil {
		log.Printf("Checkout: failed to clear cart after submission: %v", err)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Inquiry submitted successfully"})
}

func buildCheckoutMessage(c *cart.Cart) string {
	usd := accounting.Accounting{Symbol: "$", Precision: 2}

	var lines []string
	for _, item := range c.Items {
		lineTotal := "custom pricing"
		if item.Price.Valid {
			lineTotal = usd.FormatMoneyDecimal(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		lines = append(lines, fmt.Sprintf("%s (x%d) - %s", item.Name, item.Quantity, lineTotal))
	}

	return fmt.Sprintf("I would like to purchase the following items:\n\n%s\n\nTotal: %s",
		strings.Join(lines, "\n"), usd.FormatMoneyDecimal(c.Subtotal()))
}
