package repository

import (
	"sync"

	"careerhub-backend/internal/models"
)

// AchievementRepository is the in-memory achievement store. Records are
// created lazily on first qualifying action. Mutations run through Update so
// the read-modify-write happens in one critical section.
type AchievementRepository struct {
	mu     sync.RWMutex
	byUser map[string]*models.Achievement
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository() *AchievementRepository {
	return &AchievementRepository{
		byUser: make(map[string]*models.Achievement),
	}
}

// Update applies fn to the user's achievement record under the store lock,
// creating the record if absent, and returns a snapshot of the result.
func (r *AchievementRepository) Update(userID string, fn func(a *models.Achievement)) models.Achievement {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byUser[userID]
	if !ok {
		a = &models.Achievement{UserID: userID, Badges: []string{}}
		r.byUser[userID] = a
	}
	fn(a)
	return snapshot(a)
}

// Get returns a snapshot of the user's achievement record, or an empty
// record if none exists yet.
func (r *AchievementRepository) Get(userID string) models.Achievement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byUser[userID]
	if !ok {
		return models.Achievement{UserID: userID, Badges: []string{}}
	}
	return snapshot(a)
}

// All returns snapshots of every achievement record
func (r *AchievementRepository) All() []models.Achievement {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Achievement, 0, len(r.byUser))
	for _, a := range r.byUser {
		out = append(out, snapshot(a))
	}
	return out
}

func snapshot(a *models.Achievement) models.Achievement {
	cp := *a
	cp.Badges = append([]string{}, a.Badges...)
	return cp
}
