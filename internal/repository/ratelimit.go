package repository

import (
	"fmt"
	"sync"
	"time"

	"careerhub-backend/internal/apperror"
)

// startOfDay returns midnight of the day containing t, in t's location. The
// day boundary is recomputed from the supplied time on every check, never
// cached.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LikeRecordRepository tracks the most recent like per (user, post) pair.
// It backs the once-per-post-per-day rule and the daily like cap. An unlike
// deletes the entry outright.
type LikeRecordRepository struct {
	mu         sync.Mutex
	dailyLimit int
	byUser     map[string]map[string]time.Time
}

// NewLikeRecordRepository creates a like record repository with the given
// daily cap.
func NewLikeRecordRepository(dailyLimit int) *LikeRecordRepository {
	return &LikeRecordRepository{
		dailyLimit: dailyLimit,
		byUser:     make(map[string]map[string]time.Time),
	}
}

// CanLike reports whether the user may like the post right now. Denied when
// the post was already liked today, or when today's like count has reached
// the daily cap.
func (r *LikeRecordRepository) CanLike(userID, postID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.byUser[userID]
	today := startOfDay(now)

	if last, ok := records[postID]; ok && !last.Before(today) {
		return apperror.NewRateLimited("Today's like, cannot be repeated")
	}

	todayLikes := 0
	for _, ts := range records {
		if !ts.Before(today) {
			todayLikes++
		}
	}
	if todayLikes >= r.dailyLimit {
		return apperror.NewRateLimited(fmt.Sprintf("Daily like limit reached (%d/day)", r.dailyLimit))
	}
	return nil
}

// Record stores the like timestamp for the pair
func (r *LikeRecordRepository) Record(userID, postID string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byUser[userID] == nil {
		r.byUser[userID] = make(map[string]time.Time)
	}
	r.byUser[userID][postID] = now
}

// Clear unconditionally removes the stored timestamp for the pair. Unlike is
// never rate limited, and clearing resets the daily lock for that post.
func (r *LikeRecordRepository) Clear(userID, postID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser[userID], postID)
}

// CompanyVoteRepository tracks the most recent company vote per
// (company, user) pair, enforcing one vote per company per user per day.
// There is no cap on the number of distinct companies voted.
type CompanyVoteRepository struct {
	mu        sync.Mutex
	byCompany map[string]map[string]time.Time
}

// NewCompanyVoteRepository creates a company vote repository
func NewCompanyVoteRepository() *CompanyVoteRepository {
	return &CompanyVoteRepository{
		byCompany: make(map[string]map[string]time.Time),
	}
}

// CanVote reports whether the user may vote for the company right now
func (r *CompanyVoteRepository) CanVote(userID, companyID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if last, ok := r.byCompany[companyID][userID]; ok && !last.Before(startOfDay(now)) {
		return apperror.NewRateLimited("You already voted for this company today")
	}
	return nil
}

// Record stores the vote timestamp for the pair
func (r *CompanyVoteRepository) Record(userID, companyID string, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byCompany[companyID] == nil {
		r.byCompany[companyID] = make(map[string]time.Time)
	}
	r.byCompany[companyID][userID] = now
}
