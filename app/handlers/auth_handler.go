package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Alok-CS-2022/import-export-site/app/helpers"
	"github.com/Alok-CS-2022/import-export-site/app/repositories"
	"github.com/Alok-CS-2022/import-export-site/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthHandler struct {
	userRepo  repositories.UserRepositoryImpl
	tokens    *services.TokenService
	validator *validator.Validate
	render    *render.Render
}

func NewAuthHandler(userRepo repositories.UserRepositoryImpl, tokens *services.TokenService, validate *validator.Validate, rnd *render.Render) *AuthHandler {
	return &AuthHandler{userRepo: userRepo, tokens: tokens, validator: validate, render: rnd}
}

// Login checks credentials against the users table and returns a
// signed bearer token carrying the role claim.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": helpers.FirstValidationError(err)})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Login: error finding user %s: %v", req.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if user == nil || !helpers.PasswordCompare(user.Password, []byte(req.Password)) {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]interface{}{
			"success": false,
			"error":   "Invalid credentials",
		})
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		log.Printf("Login: failed to sign token for user %s: %v", user.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create session"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user": map[string]string{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
