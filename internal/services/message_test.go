package services

import (
	"strings"
	"testing"
	"time"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

func TestConversationIDIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"alice", "bob"},
		{"bob", "alice"},
		{"9f3c", "0a1b"},
	}
	for _, p := range pairs {
		a := repository.ConversationID(p[0], p[1])
		b := repository.ConversationID(p[1], p[0])
		if a != b {
			t.Errorf("ConversationID(%s,%s)=%s != ConversationID(%s,%s)=%s", p[0], p[1], a, p[1], p[0], b)
		}
	}
}

func TestSendMessageLengthLimit(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	env.addUser("u2", "Ben", false)
	now := time.Now()

	if _, err := env.messages.Send("u1", "u2", strings.Repeat("a", 1001), now); !apperror.IsKind(err, apperror.Validation) {
		t.Errorf("1001-character message should be rejected, got %v", err)
	}
	if _, err := env.messages.Send("u1", "u2", strings.Repeat("a", 1000), now); err != nil {
		t.Errorf("1000-character message should be accepted: %v", err)
	}
	if _, err := env.messages.Send("u1", "u2", "", now); !apperror.IsKind(err, apperror.Validation) {
		t.Errorf("empty message should be rejected, got %v", err)
	}
}

func TestSendMessageRespectsReceiverSettings(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	env.addUser("u2", "Ben", false)

	env.settings.Set("u2", models.Settings{ReceiveMessages: false})
	if _, err := env.messages.Send("u1", "u2", "hello", time.Now()); !apperror.IsKind(err, apperror.Forbidden) {
		t.Errorf("message to a user with messaging disabled should be forbidden, got %v", err)
	}

	env.settings.Set("u2", models.Settings{ReceiveMessages: true})
	if _, err := env.messages.Send("u1", "u2", "hello", time.Now()); err != nil {
		t.Errorf("message should succeed after re-enabling: %v", err)
	}
}

func TestSendMessageModeration(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	env.addUser("u2", "Ben", false)

	if _, err := env.messages.Send("u1", "u2", "需要代写吗", time.Now()); !apperror.IsKind(err, apperror.ModerationRejected) {
		t.Errorf("prohibited content should be rejected, got %v", err)
	}
}

func TestFetchMarksMessagesRead(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	env.addUser("u2", "Ben", false)
	now := time.Now()

	for _, text := range []string{"hi", "how are you"} {
		if _, err := env.messages.Send("u1", "u2", text, now); err != nil {
			t.Fatalf("send failed: %v", err)
		}
	}
	if got := env.messages.UnreadCount("u2"); got != 2 {
		t.Fatalf("expected 2 unread, got %d", got)
	}
	// The sender has nothing unread.
	if got := env.messages.UnreadCount("u1"); got != 0 {
		t.Errorf("sender should have 0 unread, got %d", got)
	}

	messages, peer, err := env.messages.Fetch("u2", "u1")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if peer.ID != "u1" || peer.Name != "Alex" {
		t.Errorf("expected peer u1/Alex, got %s/%s", peer.ID, peer.Name)
	}

	if got := env.messages.UnreadCount("u2"); got != 0 {
		t.Errorf("fetch should mark messages read, %d unread left", got)
	}
}

func TestFetchUsesDisplayNameFallback(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	env.addUser("u2", "", false)

	if _, err := env.messages.Send("u2", "u1", "hello", time.Now()); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	_, peer, err := env.messages.Fetch("u1", "u2")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	// Profile-less users get the generic display name, same as everywhere else.
	if peer.Name != "User" {
		t.Errorf("expected fallback name User, got %q", peer.Name)
	}
}

func TestSendMessageNotifiesReceiver(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	env.addUser("u2", "Ben", false)

	if _, err := env.messages.Send("u1", "u2", "are you free for coffee", time.Now()); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	notifs, unread := env.notifications.List("u2")
	if len(notifs) != 1 || unread != 1 {
		t.Fatalf("expected 1 unread notification, got %d (%d unread)", len(notifs), unread)
	}
	if notifs[0].Type != "message" || !strings.Contains(notifs[0].Content, "Alex") {
		t.Errorf("unexpected notification: %+v", notifs[0])
	}
}

func TestListConversations(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	env.addUser("u2", "Ben", false)
	env.addUser("u3", "Cleo", true)
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	if _, err := env.messages.Send("u2", "u1", "older conversation", base); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := env.messages.Send("u3", "u1", strings.Repeat("长", 60), base.Add(time.Hour)); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	convs := env.messages.ListConversations("u1")
	if len(convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(convs))
	}
	// Newest activity first.
	if convs[0].OtherUserID != "u3" {
		t.Errorf("expected u3 first, got %s", convs[0].OtherUserID)
	}
	if !convs[0].OtherUserVerified {
		t.Errorf("u3 should be flagged verified")
	}
	if convs[0].UnreadCount != 1 {
		t.Errorf("expected 1 unread, got %d", convs[0].UnreadCount)
	}
	// Long previews are clipped with an ellipsis.
	if !strings.HasSuffix(convs[0].LastMessage, "...") {
		t.Errorf("expected clipped preview, got %q", convs[0].LastMessage)
	}
}
