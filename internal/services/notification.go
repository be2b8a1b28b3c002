package services

import (
	"time"

	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

const notificationPageLimit = 50

// NotificationService creates and serves pull-based notifications. Callers
// must not notify a user about their own action; the self check happens at
// the call sites that know both parties.
type NotificationService struct {
	notifications *repository.NotificationRepository
	newID         func() string
	now           func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications *repository.NotificationRepository) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		newID:         newContentID,
		now:           time.Now,
	}
}

// Notify stores a notification for the recipient. postID may be empty for
// notifications not tied to a post.
func (s *NotificationService) Notify(recipientID, notifType, content, sourceUserID, postID string) *models.Notification {
	n := &models.Notification{
		ID:           s.newID(),
		Type:         notifType,
		Content:      content,
		SourceUserID: sourceUserID,
		PostID:       postID,
		CreatedAt:    s.now(),
	}
	s.notifications.Push(recipientID, n)
	return n
}

// List returns the recipient's notifications, newest first, page-capped,
// with the unread count.
func (s *NotificationService) List(userID string) ([]*models.Notification, int) {
	return s.notifications.List(userID, notificationPageLimit)
}

// MarkRead marks the given notifications read; an empty slice marks all
func (s *NotificationService) MarkRead(userID string, ids []string) {
	s.notifications.MarkRead(userID, ids)
}
