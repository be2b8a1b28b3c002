package services

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

// MessageService handles private messaging between users
type MessageService struct {
	messages      *repository.MessageRepository
	users         *repository.UserRepository
	settings      *repository.SettingsRepository
	moderator     *Moderator
	notifications *NotificationService
	maxLength     int
	newID         func() string
}

// NewMessageService creates a new message service
func NewMessageService(
	messages *repository.MessageRepository,
	users *repository.UserRepository,
	settings *repository.SettingsRepository,
	moderator *Moderator,
	notifications *NotificationService,
	maxLength int,
) *MessageService {
	return &MessageService{
		messages:      messages,
		users:         users,
		settings:      settings,
		moderator:     moderator,
		notifications: notifications,
		maxLength:     maxLength,
		newID:         newContentID,
	}
}

// ConversationID returns the symmetric conversation key for two users
func (s *MessageService) ConversationID(userA, userB string) string {
	return repository.ConversationID(userA, userB)
}

// Send stores a message to the receiver and notifies them with a short
// preview. Rejected when the receiver has disabled messages, when the
// content is empty or over the length limit, or on moderation failure.
func (s *MessageService) Send(senderID, receiverID, content string, now time.Time) (*models.Message, error) {
	if _, err := s.users.GetByID(receiverID); err != nil {
		return nil, err
	}
	if !s.settings.Get(receiverID).ReceiveMessages {
		return nil, apperror.NewForbidden("This user has disabled private messages")
	}
	if content == "" {
		return nil, apperror.NewValidation("Message cannot be empty")
	}
	if utf8.RuneCountInString(content) > s.maxLength {
		return nil, apperror.NewValidation(fmt.Sprintf("Message too long (max %d characters)", s.maxLength))
	}
	if err := s.moderator.Check(content); err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:         s.newID(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  now,
	}
	s.messages.Append(message)

	senderName := s.users.DisplayName(senderID)
	preview := fmt.Sprintf("New message from %s: %s...", senderName, truncateRunes(content, 30))
	s.notifications.Notify(receiverID, "message", preview, senderID, "")

	return message, nil
}

// Peer identifies the other participant of a conversation as shown to the
// viewer.
type Peer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// Fetch returns the full conversation with the other user, oldest first.
// Fetching marks messages addressed to userID as read.
func (s *MessageService) Fetch(userID, otherUserID string) ([]*models.Message, Peer, error) {
	other, err := s.users.GetByID(otherUserID)
	if err != nil {
		return nil, Peer{}, err
	}
	peer := Peer{
		ID:       other.ID,
		Name:     s.users.DisplayName(other.ID),
		Verified: other.Verified,
	}
	return s.messages.Fetch(userID, otherUserID), peer, nil
}

// ConversationSummary is one inbox row
type ConversationSummary struct {
	ID                string    `json:"id"`
	OtherUserID       string    `json:"other_user_id"`
	OtherUserName     string    `json:"other_user_name"`
	OtherUserVerified bool      `json:"other_user_verified"`
	LastMessage       string    `json:"last_message"`
	LastMessageTime   time.Time `json:"last_message_time"`
	UnreadCount       int       `json:"unread_count"`
}

// ListConversations returns the user's inbox, newest activity first
func (s *MessageService) ListConversations(userID string) []ConversationSummary {
	states := s.messages.Conversations(userID)
	out := make([]ConversationSummary, 0, len(states))
	for _, state := range states {
		summary := ConversationSummary{
			ID:              state.ID,
			OtherUserID:     state.OtherUserID,
			OtherUserName:   s.users.DisplayName(state.OtherUserID),
			LastMessage:     previewText(state.LastMessage.Content, 50),
			LastMessageTime: state.LastMessage.CreatedAt,
			UnreadCount:     state.Unread,
		}
		if other, err := s.users.GetByID(state.OtherUserID); err == nil {
			summary.OtherUserVerified = other.Verified
		}
		out = append(out, summary)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].LastMessageTime.After(out[j].LastMessageTime) })
	return out
}

// UnreadCount returns total unread messages for the user
func (s *MessageService) UnreadCount(userID string) int {
	return s.messages.UnreadCount(userID)
}

// previewText clips s to n characters with an ellipsis only when clipped
func previewText(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return truncateRunes(s, n) + "..."
}
