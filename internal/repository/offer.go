package repository

import (
	"sort"
	"sync"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
)

// OfferRepository is the in-memory offer showcase store, newest-first.
// Listings return detached copies.
type OfferRepository struct {
	mu     sync.RWMutex
	offers []*models.Offer
	byID   map[string]*models.Offer
}

// NewOfferRepository creates a new offer repository
func NewOfferRepository() *OfferRepository {
	return &OfferRepository{byID: make(map[string]*models.Offer)}
}

// Create prepends an offer to the showcase
func (r *OfferRepository) Create(offer *models.Offer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o := *offer
	r.offers = append([]*models.Offer{&o}, r.offers...)
	r.byID[o.ID] = &o
}

// List returns offers, optionally restricted to the given company IDs and
// sorted by "likes" or "recent".
func (r *OfferRepository) List(companyIDs map[string]bool, sortBy string) []*models.Offer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Offer, 0, len(r.offers))
	for _, o := range r.offers {
		if companyIDs != nil && !companyIDs[o.CompanyID] {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	switch sortBy {
	case "likes":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// Like increments the offer's like count
func (r *OfferRepository) Like(id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.byID[id]
	if !ok {
		return 0, apperror.NewNotFound("Offer not found")
	}
	o.Likes++
	return o.Likes, nil
}

// Count returns the number of offers in the showcase
func (r *OfferRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.offers)
}
