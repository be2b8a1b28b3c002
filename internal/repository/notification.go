package repository

import (
	"sync"

	"careerhub-backend/internal/models"
)

// NotificationRepository is the in-memory notification store. Each
// recipient's list is most-recent-first and capped; the oldest entries are
// evicted on insert. Listings return detached copies so marking read never
// touches a struct a caller already holds.
type NotificationRepository struct {
	mu     sync.RWMutex
	cap    int
	byUser map[string][]*models.Notification
}

// NewNotificationRepository creates a notification repository keeping at
// most cap notifications per recipient.
func NewNotificationRepository(cap int) *NotificationRepository {
	return &NotificationRepository{
		cap:    cap,
		byUser: make(map[string][]*models.Notification),
	}
}

// Push inserts a notification at the head of the recipient's list and
// truncates to the cap.
func (r *NotificationRepository) Push(recipientID string, n *models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *n
	list := append([]*models.Notification{&cp}, r.byUser[recipientID]...)
	if len(list) > r.cap {
		list = list[:r.cap]
	}
	r.byUser[recipientID] = list
}

// List returns up to limit notifications, newest first, and the unread
// count across the whole list.
func (r *NotificationRepository) List(recipientID string, limit int) ([]*models.Notification, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byUser[recipientID]
	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	out := make([]*models.Notification, len(list))
	for i, n := range list {
		cp := *n
		out[i] = &cp
	}
	return out, unread
}

// MarkRead flips read on notifications matching ids. An empty ids slice
// marks everything read.
func (r *NotificationRepository) MarkRead(recipientID string, ids []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for _, n := range r.byUser[recipientID] {
		if len(wanted) == 0 || wanted[n.ID] {
			n.Read = true
		}
	}
}
