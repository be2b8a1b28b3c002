package repository

import (
	"strings"
	"sync"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
)

// UserRepository is the in-memory user store. Email is the natural lookup
// key; ID is the stable reference used by every other entity. Lookups return
// detached copies, never the stored structs.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

// NewUserRepository creates a new user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

// Create stores a new user. Emails are unique.
func (r *UserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return apperror.NewConflict("Email already registered. Please login.")
	}
	u := *user
	r.byEmail[key] = &u
	r.byID[u.ID] = &u
	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperror.NewNotFound("Account not registered. Please sign up first.")
	}
	cp := *user
	return &cp, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("User not found")
	}
	cp := *user
	return &cp, nil
}

// DisplayName returns the user's profile name, or a generic fallback.
func (r *UserRepository) DisplayName(id string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if user, ok := r.byID[id]; ok && user.Profile.Name != "" {
		return user.Profile.Name
	}
	return "User"
}

// SaveProfile replaces the user's profile fields
func (r *UserRepository) SaveProfile(id string, profile models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return apperror.NewNotFound("User not found")
	}
	user.Profile = profile
	user.ProfileCompleted = profile.Name != ""
	return nil
}

// SetVerified marks the user as verified with the given status
func (r *UserRepository) SetVerified(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return apperror.NewNotFound("User not found")
	}
	user.Verified = true
	user.VerificationStatus = status
	return nil
}
