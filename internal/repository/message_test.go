package repository

import (
	"testing"
	"time"

	"careerhub-backend/internal/models"
)

func TestFetchReturnsDetachedMessages(t *testing.T) {
	r := NewMessageRepository()
	r.Append(&models.Message{ID: "m1", SenderID: "a", ReceiverID: "b", Content: "hi", CreatedAt: time.Now()})

	// The sender's view before the receiver reads.
	senderView := r.Fetch("a", "b")
	if len(senderView) != 1 || senderView[0].Read {
		t.Fatalf("expected one unread message, got %+v", senderView)
	}

	// The receiver reading must not flip the earlier snapshot.
	r.Fetch("b", "a")
	if senderView[0].Read {
		t.Errorf("earlier snapshot changed after receiver read")
	}
	if r.UnreadCount("b") != 0 {
		t.Errorf("receiver fetch should mark the stored message read")
	}
}

func TestAppendDoesNotAliasCallerStruct(t *testing.T) {
	r := NewMessageRepository()
	m := &models.Message{ID: "m1", SenderID: "a", ReceiverID: "b", Content: "hi"}
	r.Append(m)

	r.Fetch("b", "a")
	if m.Read {
		t.Errorf("caller's struct must stay untouched")
	}
}
