package repository

import (
	"sort"
	"strings"
	"sync"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
)

// defaultCompanies seeds the dream-company ranking.
var defaultCompanies = []models.Company{
	{ID: "hsbc", Name: "HSBC", Industry: "Finance", Votes: 98, Logo: "H", Description: "Hong Kong's premier banking institution", OfferCount: 15, SalaryRange: "HK$25,000 - 50,000", HiringStatus: "active"},
	{ID: "jpmorgan", Name: "J.P. Morgan", Industry: "Finance", Votes: 87, Logo: "J", Description: "Global leader in investment banking", OfferCount: 12, SalaryRange: "HK$40,000 - 80,000", HiringStatus: "active", Trending: true},
	{ID: "google", Name: "Google", Industry: "Technology", Votes: 76, Logo: "G", Description: "World-leading technology company", OfferCount: 8, SalaryRange: "HK$45,000 - 90,000", HiringStatus: "active", Trending: true},
	{ID: "mckinsey", Name: "McKinsey & Company", Industry: "Consulting", Votes: 64, Logo: "M", Description: "Top-tier management consulting firm", OfferCount: 6, SalaryRange: "HK$50,000 - 85,000", HiringStatus: "active"},
	{ID: "bytedance", Name: "ByteDance", Industry: "Technology", Votes: 52, Logo: "B", Description: "Fast-growing technology company", OfferCount: 10, SalaryRange: "HK$35,000 - 70,000", HiringStatus: "active", Trending: true},
	{ID: "pwc", Name: "PwC", Industry: "Accounting", Votes: 43, Logo: "P", Description: "Big Four professional services network", OfferCount: 20, SalaryRange: "HK$18,000 - 35,000", HiringStatus: "active"},
	{ID: "cathay", Name: "Cathay Pacific", Industry: "Aviation", Votes: 31, Logo: "C", Description: "Hong Kong's flagship airline", OfferCount: 5, SalaryRange: "HK$20,000 - 45,000", HiringStatus: "active"},
	{ID: "hkgov", Name: "HK Government", Industry: "Public Sector", Votes: 29, Logo: "G", Description: "Civil service and public administration", OfferCount: 25, SalaryRange: "HK$30,000 - 60,000", HiringStatus: "active"},
}

// CompanyRepository is the in-memory dream-company store
type CompanyRepository struct {
	mu        sync.RWMutex
	companies []*models.Company
	byID      map[string]*models.Company
}

// NewCompanyRepository creates a company repository seeded with the default
// ranking.
func NewCompanyRepository() *CompanyRepository {
	r := &CompanyRepository{byID: make(map[string]*models.Company)}
	for i := range defaultCompanies {
		c := defaultCompanies[i]
		r.companies = append(r.companies, &c)
		r.byID[c.ID] = &c
	}
	return r
}

// List returns copies of all companies sorted by votes descending
func (r *CompanyRepository) List() []*models.Company {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Company, len(r.companies))
	for i, c := range r.companies {
		cp := *c
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Votes > out[j].Votes })
	return out
}

// Get retrieves a copy of a company by ID
func (r *CompanyRepository) Get(id string) (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("Company not found")
	}
	cp := *c
	return &cp, nil
}

// AddVote increments the company's vote count
func (r *CompanyRepository) AddVote(id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return 0, apperror.NewNotFound("Company not found")
	}
	c.Votes++
	return c.Votes, nil
}

// FindIDByName resolves a company ID by case-insensitive name match
func (r *CompanyRepository) FindIDByName(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.companies {
		if strings.EqualFold(c.Name, name) {
			return c.ID
		}
	}
	return ""
}

// IDsByIndustry returns the IDs of companies in the given industry,
// case-insensitive.
func (r *CompanyRepository) IDsByIndustry(industry string) map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]bool)
	for _, c := range r.companies {
		if strings.EqualFold(c.Industry, industry) {
			out[c.ID] = true
		}
	}
	return out
}

// TotalVotes returns the sum of votes across all companies
func (r *CompanyRepository) TotalVotes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, c := range r.companies {
		total += c.Votes
	}
	return total
}
