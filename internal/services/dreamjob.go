package services

import (
	"sync"
	"time"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

const (
	companyVotePoints = 5
	offerSharePoints  = 50
)

// DreamJobService handles the dream-company ranking and the offer showcase.
// Its mutex serializes the vote sequence (rate-limit check, vote count,
// points) so a user cannot slip two same-day votes past the check.
type DreamJobService struct {
	mu           sync.Mutex
	companies    *repository.CompanyRepository
	offers       *repository.OfferRepository
	votes        *repository.CompanyVoteRepository
	users        *repository.UserRepository
	moderator    *Moderator
	achievements *AchievementService
	now          func() time.Time
	newID        func() string
}

// NewDreamJobService creates a new dream job service
func NewDreamJobService(
	companies *repository.CompanyRepository,
	offers *repository.OfferRepository,
	votes *repository.CompanyVoteRepository,
	users *repository.UserRepository,
	moderator *Moderator,
	achievements *AchievementService,
) *DreamJobService {
	return &DreamJobService{
		companies:    companies,
		offers:       offers,
		votes:        votes,
		users:        users,
		moderator:    moderator,
		achievements: achievements,
		now:          time.Now,
		newID:        newContentID,
	}
}

// Companies returns the ranking sorted by votes
func (s *DreamJobService) Companies() []*models.Company {
	return s.companies.List()
}

// VoteCompany casts a daily-limited vote for a company and awards the base
// vote points plus any badge bonuses.
func (s *DreamJobService) VoteCompany(userID, companyID string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.votes.CanVote(userID, companyID, now); err != nil {
		return 0, err
	}
	votes, err := s.companies.AddVote(companyID)
	if err != nil {
		return 0, err
	}
	s.votes.Record(userID, companyID, now)
	s.achievements.Award(userID, companyVotePoints, ActionVote)
	return votes, nil
}

// SubmitOfferRequest carries the fields of a new showcase offer
type SubmitOfferRequest struct {
	Company   string `json:"company" validate:"required"`
	Position  string `json:"position" validate:"required"`
	Salary    string `json:"salary"`
	Location  string `json:"location"`
	OfferDate string `json:"offer_date"`
	Anonymous bool   `json:"anonymous"`
}

// SubmitOffer moderates and stores a new offer, awards the share points,
// and grants the verified-offer badge when the sharer is verified.
func (s *DreamJobService) SubmitOffer(userID string, req SubmitOfferRequest) (*models.Offer, error) {
	if req.Company == "" || req.Position == "" {
		return nil, apperror.NewValidation("Company and position are required")
	}
	if err := s.moderator.Check(req.Company + " " + req.Position + " " + req.Salary); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	salary := req.Salary
	if salary == "" {
		salary = "Not disclosed"
	}
	location := req.Location
	if location == "" {
		location = "Hong Kong"
	}
	authorName := "Anonymous"
	if !req.Anonymous {
		authorName = s.users.DisplayName(userID)
	}
	university := user.Profile.Institution
	if university == "" {
		university = "HK University"
	}

	offer := &models.Offer{
		ID:         s.newID(),
		UserID:     userID,
		AuthorName: authorName,
		Company:    req.Company,
		CompanyID:  s.companies.FindIDByName(req.Company),
		Position:   req.Position,
		Salary:     salary,
		Location:   location,
		OfferDate:  req.OfferDate,
		Anonymous:  req.Anonymous,
		Verified:   user.Verified,
		University: university,
		CreatedAt:  s.now(),
	}
	s.offers.Create(offer)

	s.achievements.Award(userID, offerSharePoints, ActionOffer)
	if user.Verified {
		s.achievements.AwardVerifiedOffer(userID)
	}
	return offer, nil
}

// Offers returns showcase offers with an optional industry filter and sort
// order ("recent" or "likes").
func (s *DreamJobService) Offers(industry, sortBy string) []*models.Offer {
	var companyIDs map[string]bool
	if industry != "" {
		companyIDs = s.companies.IDsByIndustry(industry)
	}
	return s.offers.List(companyIDs, sortBy)
}

// LikeOffer increments an offer's like count. Offer likes are not rate
// limited.
func (s *DreamJobService) LikeOffer(offerID string) (int, error) {
	return s.offers.Like(offerID)
}

// Stats summarizes the dream jobs section
type Stats struct {
	TotalVotes     int `json:"total_votes"`
	TotalCompanies int `json:"total_companies"`
	TotalOffers    int `json:"total_offers"`
}

// GetStats returns overall dream jobs statistics
func (s *DreamJobService) GetStats() Stats {
	return Stats{
		TotalVotes:     s.companies.TotalVotes(),
		TotalCompanies: len(s.companies.List()),
		TotalOffers:    s.offers.Count(),
	}
}
