package handlers

import (
	"net/http"

	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/services"
)

// NotificationHandler handles notification requests
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	notifications, unread := h.notificationService.List(userID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkReadRequest selects notifications to mark read; empty means all
type MarkReadRequest struct {
	IDs []string `json:"ids"`
}

// MarkRead handles POST /api/v1/notifications/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req MarkReadRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	h.notificationService.MarkRead(userID, req.IDs)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
