package services

import (
	"sort"

	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

// ActionType classifies a points-earning action
type ActionType string

const (
	// ActionVote is a dream-company vote
	ActionVote ActionType = "vote"
	// ActionOffer is an offer shared to the showcase
	ActionOffer ActionType = "offer"
)

// Badge describes a one-time-awardable achievement with a fixed point bonus
type Badge struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Desc   string `json:"desc"`
	Points int    `json:"points"`
}

// BadgeCatalog maps badge IDs to their display data and bonuses
var BadgeCatalog = map[string]Badge{
	"first_vote":      {Name: "First Vote", Icon: "star", Desc: "Cast your first vote", Points: 10},
	"voter_10":        {Name: "Active Voter", Icon: "fire", Desc: "Cast 10 votes", Points: 50},
	"voter_50":        {Name: "Super Voter", Icon: "trophy", Desc: "Cast 50 votes", Points: 200},
	"offer_shared":    {Name: "Offer Sharer", Icon: "gift", Desc: "Share your first offer", Points: 100},
	"verified_offer":  {Name: "Verified Winner", Icon: "check-circle", Desc: "Share a verified offer", Points: 150},
	"top_contributor": {Name: "Top Contributor", Icon: "award", Desc: "Reach 500 points", Points: 0},
}

const topContributorThreshold = 500

// AchievementService is the points and badge engine. Points and badges are
// monotonic; no action removes a badge or reduces points. The engine does
// not deduplicate logical events, that is the caller's responsibility.
type AchievementService struct {
	achievements *repository.AchievementRepository
	users        *repository.UserRepository
}

// NewAchievementService creates a new achievement service
func NewAchievementService(achievements *repository.AchievementRepository, users *repository.UserRepository) *AchievementService {
	return &AchievementService{achievements: achievements, users: users}
}

// Award adds points for an action and applies badge bookkeeping, creating
// the achievement record lazily. Vote thresholds are exact-equality checks:
// the counter moves by exactly one per call, so each threshold is crossed
// exactly once and re-crossing never re-awards.
func (s *AchievementService) Award(userID string, points int, action ActionType) models.Achievement {
	return s.achievements.Update(userID, func(a *models.Achievement) {
		a.Points += points

		switch action {
		case ActionVote:
			a.VotesCast++
			if a.VotesCast == 1 && !a.HasBadge("first_vote") {
				grant(a, "first_vote")
			} else if a.VotesCast == 10 && !a.HasBadge("voter_10") {
				grant(a, "voter_10")
			} else if a.VotesCast == 50 && !a.HasBadge("voter_50") {
				grant(a, "voter_50")
			}
		case ActionOffer:
			a.OffersShared++
			if !a.HasBadge("offer_shared") {
				grant(a, "offer_shared")
			}
		}

		if a.Points >= topContributorThreshold && !a.HasBadge("top_contributor") {
			grant(a, "top_contributor")
		}
	})
}

// AwardVerifiedOffer grants the verified-offer badge and its bonus, once.
// Invoked on offer submission when the acting user is verified; the bonus
// sits outside the generic Award flow.
func (s *AchievementService) AwardVerifiedOffer(userID string) models.Achievement {
	return s.achievements.Update(userID, func(a *models.Achievement) {
		if !a.HasBadge("verified_offer") {
			grant(a, "verified_offer")
		}
		if a.Points >= topContributorThreshold && !a.HasBadge("top_contributor") {
			grant(a, "top_contributor")
		}
	})
}

func grant(a *models.Achievement, badgeID string) {
	a.Badges = append(a.Badges, badgeID)
	a.Points += BadgeCatalog[badgeID].Points
}

// BadgeDetail pairs a badge ID with its catalog entry
type BadgeDetail struct {
	ID string `json:"id"`
	Badge
}

// Get returns the user's achievement record with badge details
func (s *AchievementService) Get(userID string) (models.Achievement, []BadgeDetail) {
	a := s.achievements.Get(userID)
	details := make([]BadgeDetail, 0, len(a.Badges))
	for _, id := range a.Badges {
		if badge, ok := BadgeCatalog[id]; ok {
			details = append(details, BadgeDetail{ID: id, Badge: badge})
		}
	}
	return a, details
}

// LeaderboardEntry is one row of the contributor leaderboard
type LeaderboardEntry struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Points       int    `json:"points"`
	Badges       int    `json:"badges"`
	VotesCast    int    `json:"votes_cast"`
	OffersShared int    `json:"offers_shared"`
}

// Leaderboard returns the top contributors by points
func (s *AchievementService) Leaderboard(limit int) []LeaderboardEntry {
	all := s.achievements.All()
	entries := make([]LeaderboardEntry, 0, len(all))
	for _, a := range all {
		entries = append(entries, LeaderboardEntry{
			UserID:       a.UserID,
			Name:         s.users.DisplayName(a.UserID),
			Points:       a.Points,
			Badges:       len(a.Badges),
			VotesCast:    a.VotesCast,
			OffersShared: a.OffersShared,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Points > entries[j].Points })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
