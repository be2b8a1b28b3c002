package services

import (
	"fmt"
	"testing"

	"careerhub-backend/internal/repository"
)

func TestNotificationOrderAndCap(t *testing.T) {
	repo := repository.NewNotificationRepository(100)
	svc := NewNotificationService(repo)

	for i := 0; i < 105; i++ {
		svc.Notify("u1", "comment", fmt.Sprintf("event %d", i), "u2", "")
	}

	all, _ := repo.List("u1", 0)
	if len(all) != 100 {
		t.Fatalf("expected 100 retained notifications, got %d", len(all))
	}
	// Most recent first; the oldest five were evicted.
	if all[0].Content != "event 104" {
		t.Errorf("expected newest first, got %q", all[0].Content)
	}
	if all[99].Content != "event 5" {
		t.Errorf("expected oldest retained to be event 5, got %q", all[99].Content)
	}

	// The service page-caps listings.
	page, unread := svc.List("u1")
	if len(page) != 50 {
		t.Errorf("expected a 50-item page, got %d", len(page))
	}
	if unread != 100 {
		t.Errorf("unread should count the whole list, got %d", unread)
	}
}

func TestMarkReadSpecificAndAll(t *testing.T) {
	repo := repository.NewNotificationRepository(100)
	svc := NewNotificationService(repo)

	a := svc.Notify("u1", "like", "first", "u2", "")
	svc.Notify("u1", "like", "second", "u2", "")
	svc.Notify("u1", "like", "third", "u2", "")

	svc.MarkRead("u1", []string{a.ID})
	_, unread := svc.List("u1")
	if unread != 2 {
		t.Errorf("expected 2 unread after marking one, got %d", unread)
	}

	// Empty slice means mark everything.
	svc.MarkRead("u1", nil)
	_, unread = svc.List("u1")
	if unread != 0 {
		t.Errorf("expected 0 unread after mark-all, got %d", unread)
	}
}
