package services

import (
	"testing"
	"time"

	"careerhub-backend/internal/apperror"
)

func TestVoteCompanyDailyLimit(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)

	if _, err := env.dreamJobs.VoteCompany("u1", "hsbc", now); err != nil {
		t.Fatalf("first vote failed: %v", err)
	}
	if _, err := env.dreamJobs.VoteCompany("u1", "hsbc", now.Add(time.Hour)); !apperror.IsKind(err, apperror.RateLimited) {
		t.Errorf("same-day repeat should be rate limited, got %v", err)
	}
	// A different company the same day is fine.
	if _, err := env.dreamJobs.VoteCompany("u1", "google", now.Add(time.Hour)); err != nil {
		t.Errorf("vote for a different company failed: %v", err)
	}
	if _, err := env.dreamJobs.VoteCompany("u1", "unknown", now); !apperror.IsKind(err, apperror.NotFound) {
		t.Errorf("vote for missing company should be not found, got %v", err)
	}
}

func TestVotingStreakEarnsVoterBadges(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)
	day := time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)

	// One vote for the same company on each of ten distinct days.
	for i := 0; i < 10; i++ {
		if _, err := env.dreamJobs.VoteCompany("u1", "hsbc", day.AddDate(0, 0, i)); err != nil {
			t.Fatalf("vote on day %d failed: %v", i, err)
		}
	}

	a := env.achievementRepo.Get("u1")
	if a.VotesCast != 10 {
		t.Errorf("expected votes_cast=10, got %d", a.VotesCast)
	}
	if !a.HasBadge("first_vote") || !a.HasBadge("voter_10") {
		t.Errorf("expected first_vote and voter_10, got %v", a.Badges)
	}
	// base 10x5 + first_vote 10 + voter_10 50
	if a.Points != 110 {
		t.Errorf("expected 110 points, got %d", a.Points)
	}
}

func TestSubmitOfferAwardsPointsAndBadges(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", true)

	offer, err := env.dreamJobs.SubmitOffer("u1", SubmitOfferRequest{
		Company:  "google",
		Position: "Software Engineer",
		Salary:   "HK$45,000",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if offer.CompanyID != "google" {
		t.Errorf("company name should resolve case-insensitively, got %q", offer.CompanyID)
	}
	if !offer.Verified {
		t.Errorf("offer from a verified user should be flagged verified")
	}

	a := env.achievementRepo.Get("u1")
	if !a.HasBadge("offer_shared") || !a.HasBadge("verified_offer") {
		t.Errorf("expected offer_shared and verified_offer, got %v", a.Badges)
	}
	// base 50 + offer_shared 100 + verified_offer 150
	if a.Points != 300 {
		t.Errorf("expected 300 points, got %d", a.Points)
	}
}

func TestSubmitOfferValidationAndModeration(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)

	if _, err := env.dreamJobs.SubmitOffer("u1", SubmitOfferRequest{Position: "Analyst"}); !apperror.IsKind(err, apperror.Validation) {
		t.Errorf("missing company should fail validation, got %v", err)
	}
	if _, err := env.dreamJobs.SubmitOffer("u1", SubmitOfferRequest{Company: "代写公司", Position: "x"}); !apperror.IsKind(err, apperror.ModerationRejected) {
		t.Errorf("prohibited content should be rejected, got %v", err)
	}
}

func TestOffersFilterAndSort(t *testing.T) {
	env := newTestEnv()
	env.addUser("u1", "Alex", false)

	first, err := env.dreamJobs.SubmitOffer("u1", SubmitOfferRequest{Company: "Google", Position: "SWE"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := env.dreamJobs.SubmitOffer("u1", SubmitOfferRequest{Company: "HSBC", Position: "Analyst"}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := env.dreamJobs.LikeOffer(first.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	tech := env.dreamJobs.Offers("technology", "")
	if len(tech) != 1 || tech[0].ID != first.ID {
		t.Errorf("industry filter failed: %v", tech)
	}

	byLikes := env.dreamJobs.Offers("", "likes")
	if len(byLikes) != 2 || byLikes[0].ID != first.ID {
		t.Errorf("likes sort failed")
	}
}

func TestCompanyRankingSortedByVotes(t *testing.T) {
	env := newTestEnv()

	companies := env.dreamJobs.Companies()
	for i := 1; i < len(companies); i++ {
		if companies[i-1].Votes < companies[i].Votes {
			t.Fatalf("ranking not sorted at index %d", i)
		}
	}
}
