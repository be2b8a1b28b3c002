package repository

import "sync"

// FavoriteRepository is the in-memory favorite store. A reverse index
// (post -> users) is kept alongside the forward map so a post delete purges
// favorites without scanning every user.
type FavoriteRepository struct {
	mu     sync.RWMutex
	byUser map[string]map[string]bool
	byPost map[string]map[string]bool
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{
		byUser: make(map[string]map[string]bool),
		byPost: make(map[string]map[string]bool),
	}
}

// Toggle flips the favorite state and returns the new state
func (r *FavoriteRepository) Toggle(userID, postID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byUser[userID][postID] {
		delete(r.byUser[userID], postID)
		delete(r.byPost[postID], userID)
		return false
	}
	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[string]bool)
	}
	if r.byPost[postID] == nil {
		r.byPost[postID] = make(map[string]bool)
	}
	r.byUser[userID][postID] = true
	r.byPost[postID][userID] = true
	return true
}

// Has reports whether the user has favorited the post
func (r *FavoriteRepository) Has(userID, postID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byUser[userID][postID]
}

// List returns the set of post IDs the user has favorited
func (r *FavoriteRepository) List(userID string) map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]bool, len(r.byUser[userID]))
	for postID := range r.byUser[userID] {
		out[postID] = true
	}
	return out
}

// RemovePost purges the post from every user's favorite set
func (r *FavoriteRepository) RemovePost(postID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for userID := range r.byPost[postID] {
		delete(r.byUser[userID], postID)
	}
	delete(r.byPost, postID)
}
