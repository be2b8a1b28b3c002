package repository

import "sync"

const tagHistoryLimit = 10

// TagHistoryRepository remembers each user's recently used custom tags,
// newest first, deduplicated, capped.
type TagHistoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]string
}

// NewTagHistoryRepository creates a new tag history repository
func NewTagHistoryRepository() *TagHistoryRepository {
	return &TagHistoryRepository{byUser: make(map[string][]string)}
}

// Add records custom tags for the user, skipping ones already remembered
func (r *TagHistoryRepository) Add(userID string, tags []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.byUser[userID]
	for _, tag := range tags {
		if !containsTag(history, tag) {
			history = append([]string{tag}, history...)
		}
	}
	if len(history) > tagHistoryLimit {
		history = history[:tagHistoryLimit]
	}
	r.byUser[userID] = history
}

// List returns the user's tag history, newest first
func (r *TagHistoryRepository) List(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.byUser[userID]...)
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
