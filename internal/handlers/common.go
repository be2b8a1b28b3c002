package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"careerhub-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// respondError sends an error response with a fixed message
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondAppError maps an application error to its status code. Unexpected
// errors are logged and masked.
func respondAppError(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		respondJSON(w, appErr.StatusCode(), ErrorResponse{Error: appErr.Message})
		return
	}
	log.Error().Err(err).Msg("Unexpected error")
	respondError(w, "Internal server error", http.StatusInternalServerError)
}

// decodeJSON decodes and validates a request body
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperror.NewValidation("Invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		return apperror.NewValidation(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return "Please fill in all fields"
		case "email":
			return "Please enter a valid email address"
		case "min":
			return "Password must be at least " + fe.Param() + " characters"
		}
	}
	return "Invalid request"
}
