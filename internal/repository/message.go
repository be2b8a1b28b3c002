package repository

import (
	"sort"
	"strings"
	"sync"

	"careerhub-backend/internal/models"
)

// ConversationID derives the conversation key for two users. The pair is
// sorted before joining, so the key is the same regardless of argument
// order. User IDs are UUIDs and never contain the separator.
func ConversationID(userA, userB string) string {
	pair := []string{userA, userB}
	sort.Strings(pair)
	return strings.Join(pair, "_")
}

// ConversationState is the raw per-conversation data for one participant
type ConversationState struct {
	ID          string
	OtherUserID string
	LastMessage *models.Message
	Unread      int
}

// MessageRepository is the in-memory private message store, keyed by
// conversation. Message lists are append-only and chronological. Readers
// return detached copies; Read flags flip on the stored structs only.
type MessageRepository struct {
	mu            sync.RWMutex
	conversations map[string][]*models.Message
}

// NewMessageRepository creates a new message repository
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		conversations: make(map[string][]*models.Message),
	}
}

// Append adds a message to its conversation
func (r *MessageRepository) Append(m *models.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	convID := ConversationID(m.SenderID, m.ReceiverID)
	msg := *m
	r.conversations[convID] = append(r.conversations[convID], &msg)
}

// Fetch returns the full conversation between the two users, oldest first.
// Every message addressed to userID is marked read; read receipts are
// implicit on fetch.
func (r *MessageRepository) Fetch(userID, otherUserID string) []*models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := r.conversations[ConversationID(userID, otherUserID)]
	out := make([]*models.Message, len(messages))
	for i, m := range messages {
		if m.ReceiverID == userID {
			m.Read = true
		}
		cp := *m
		out[i] = &cp
	}
	return out
}

// UnreadCount returns the total number of unread messages addressed to the
// user across all conversations.
func (r *MessageRepository) UnreadCount(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for convID, messages := range r.conversations {
		if !participant(convID, userID) {
			continue
		}
		for _, m := range messages {
			if m.ReceiverID == userID && !m.Read {
				total++
			}
		}
	}
	return total
}

// Conversations returns the state of every non-empty conversation the user
// participates in, unsorted.
func (r *MessageRepository) Conversations(userID string) []ConversationState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ConversationState, 0)
	for convID, messages := range r.conversations {
		if !participant(convID, userID) || len(messages) == 0 {
			continue
		}
		last := *messages[len(messages)-1]
		state := ConversationState{
			ID:          convID,
			OtherUserID: otherParticipant(convID, userID),
			LastMessage: &last,
		}
		for _, m := range messages {
			if m.ReceiverID == userID && !m.Read {
				state.Unread++
			}
		}
		out = append(out, state)
	}
	return out
}

func participant(convID, userID string) bool {
	for _, id := range strings.Split(convID, "_") {
		if id == userID {
			return true
		}
	}
	return false
}

func otherParticipant(convID, userID string) string {
	for _, id := range strings.Split(convID, "_") {
		if id != userID {
			return id
		}
	}
	return userID
}
