package handlers

import (
	"net/http"

	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// AuthHandler handles accounts, profiles, verification and settings
type AuthHandler struct {
	userService *services.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the user and a bearer token
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	user, token, err := h.userService.Register(req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		respondAppError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("User registered")
	respondJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	user, token, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
}

// GetProfile handles GET /api/v1/profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.userService.Get(userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// SaveProfile handles POST /api/v1/profile
func (h *AuthHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var profile models.Profile
	if err := decodeJSON(r, &profile); err != nil {
		respondAppError(w, err)
		return
	}
	if err := h.userService.SaveProfile(userID, profile); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Profile saved successfully!"})
}

// VerificationRequest is the student verification payload
type VerificationRequest struct {
	Institution   string `json:"institution" validate:"required"`
	StudentNumber string `json:"student_number" validate:"required"`
}

// SubmitVerification handles POST /api/v1/verification
func (h *AuthHandler) SubmitVerification(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req VerificationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}
	if err := h.userService.SubmitVerification(userID, req.Institution, req.StudentNumber); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Verification approved! You now have full access.",
		"status":  "approved",
	})
}

// VerificationStatus handles GET /api/v1/verification/status
func (h *AuthHandler) VerificationStatus(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	status, verified, err := h.userService.VerificationStatus(userID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"status": status, "verified": verified})
}

// GetSettings handles GET /api/v1/settings
func (h *AuthHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	respondJSON(w, http.StatusOK, h.userService.GetSettings(userID))
}

// UpdateSettings handles POST /api/v1/settings
func (h *AuthHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var settings models.Settings
	if err := decodeJSON(r, &settings); err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.userService.UpdateSettings(userID, settings))
}
