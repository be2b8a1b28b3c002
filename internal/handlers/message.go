package handlers

import (
	"net/http"
	"strings"
	"time"

	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// MessageHandler handles private messaging requests
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Conversations handles GET /api/v1/messages/conversations
func (h *MessageHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	respondJSON(w, http.StatusOK, h.messageService.ListConversations(userID))
}

// Fetch handles GET /api/v1/messages/{user_id}
func (h *MessageHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	otherUserID := chi.URLParam(r, "user_id")

	messages, peer, err := h.messageService.Fetch(userID, otherUserID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"messages":   messages,
		"other_user": peer,
	})
}

// SendRequest is the message payload
type SendRequest struct {
	Content string `json:"content"`
}

// Send handles POST /api/v1/messages/{user_id}
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	otherUserID := chi.URLParam(r, "user_id")

	var req SendRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	message, err := h.messageService.Send(userID, otherUserID, strings.TrimSpace(req.Content), time.Now())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, message)
}

// UnreadCount handles GET /api/v1/messages/unread-count
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	respondJSON(w, http.StatusOK, map[string]int{"count": h.messageService.UnreadCount(userID)})
}
