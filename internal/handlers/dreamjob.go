package handlers

import (
	"net/http"
	"time"

	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const leaderboardLimit = 20

// DreamJobHandler handles company ranking, offer showcase and achievements
type DreamJobHandler struct {
	dreamJobService    *services.DreamJobService
	achievementService *services.AchievementService
}

// NewDreamJobHandler creates a new dream job handler
func NewDreamJobHandler(dreamJobService *services.DreamJobService, achievementService *services.AchievementService) *DreamJobHandler {
	return &DreamJobHandler{
		dreamJobService:    dreamJobService,
		achievementService: achievementService,
	}
}

// Companies handles GET /api/v1/dream-jobs/companies
func (h *DreamJobHandler) Companies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dreamJobService.Companies())
}

// VoteCompany handles POST /api/v1/dream-jobs/companies/{company_id}/vote
func (h *DreamJobHandler) VoteCompany(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	companyID := chi.URLParam(r, "company_id")

	votes, err := h.dreamJobService.VoteCompany(userID, companyID, time.Now())
	if err != nil {
		respondAppError(w, err)
		return
	}

	log.Info().Str("company_id", companyID).Str("user_id", userID).Msg("Company vote cast")
	respondJSON(w, http.StatusOK, map[string]int{"votes": votes})
}

// Offers handles GET /api/v1/dream-jobs/offers
func (h *DreamJobHandler) Offers(w http.ResponseWriter, r *http.Request) {
	industry := r.URL.Query().Get("industry")
	sortBy := r.URL.Query().Get("sort")
	respondJSON(w, http.StatusOK, h.dreamJobService.Offers(industry, sortBy))
}

// SubmitOffer handles POST /api/v1/dream-jobs/offers
func (h *DreamJobHandler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req services.SubmitOfferRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	offer, err := h.dreamJobService.SubmitOffer(userID, req)
	if err != nil {
		respondAppError(w, err)
		return
	}

	log.Info().Str("offer_id", offer.ID).Str("user_id", userID).Msg("Offer shared")
	respondJSON(w, http.StatusCreated, offer)
}

// LikeOffer handles POST /api/v1/dream-jobs/offers/{offer_id}/like
func (h *DreamJobHandler) LikeOffer(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offer_id")

	likes, err := h.dreamJobService.LikeOffer(offerID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

// Achievements handles GET /api/v1/dream-jobs/achievements
func (h *DreamJobHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	achievements, details := h.achievementService.Get(userID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"achievements":  achievements,
		"badge_details": details,
		"all_badges":    services.BadgeCatalog,
	})
}

// Leaderboard handles GET /api/v1/dream-jobs/leaderboard
func (h *DreamJobHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.achievementService.Leaderboard(leaderboardLimit))
}

// Stats handles GET /api/v1/dream-jobs/stats
func (h *DreamJobHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.dreamJobService.GetStats())
}
