package repository

import (
	"sync"

	"careerhub-backend/internal/models"
)

// SettingsRepository is the in-memory user settings store. Users without an
// entry get the defaults (messages enabled).
type SettingsRepository struct {
	mu     sync.RWMutex
	byUser map[string]models.Settings
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		byUser: make(map[string]models.Settings),
	}
}

// Get returns the user's settings, defaulting receive_messages to true
func (r *SettingsRepository) Get(userID string) models.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if s, ok := r.byUser[userID]; ok {
		return s
	}
	return models.Settings{ReceiveMessages: true}
}

// Set replaces the user's settings
func (r *SettingsRepository) Set(userID string, s models.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[userID] = s
}
