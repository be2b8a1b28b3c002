package models

import "time"

// User represents a registered user
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	Profile            Profile   `json:"profile"`
	ProfileCompleted   bool      `json:"profile_completed"`
	Verified           bool      `json:"verified"`
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}

// Profile holds the user-editable profile fields
type Profile struct {
	Name             string `json:"name"`
	Gender           string `json:"gender"`
	Age              string `json:"age"`
	Education        string `json:"education"`
	Major            string `json:"major"`
	EmploymentStatus string `json:"employment_status"`
	Institution      string `json:"institution"`
}

// Settings holds per-user preferences consumed by the messaging layer
type Settings struct {
	ReceiveMessages bool `json:"receive_messages"`
}

// Post represents an experience-sharing post. LikedBy and VotedBy are kept
// in lockstep with Likes and Votes; they only change together.
type Post struct {
	ID             string          `json:"id"`
	AuthorID       string          `json:"author_id"`
	Author         string          `json:"author"`
	AuthorVerified bool            `json:"author_verified"`
	Anonymous      bool            `json:"anonymous"`
	University     string          `json:"university"`
	Faculty        string          `json:"faculty"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	Category       string          `json:"category"`
	Tags           []string        `json:"tags"`
	CustomTags     []string        `json:"custom_tags"`
	Likes          int             `json:"likes"`
	LikedBy        map[string]bool `json:"-"`
	Votes          int             `json:"votes"`
	VotedBy        map[string]bool `json:"-"`
	IsDreamJob     bool            `json:"is_dream_job"`
	Comments       []*Comment      `json:"comments"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Comment is a first-level comment on a post
type Comment struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	Author         string    `json:"author"`
	AuthorVerified bool      `json:"author_verified"`
	Content        string    `json:"content"`
	Replies        []*Reply  `json:"replies"`
	CreatedAt      time.Time `json:"created_at"`
}

// Reply is a second-level comment. Replies cannot be replied to.
type Reply struct {
	ID             string    `json:"id"`
	AuthorID       string    `json:"author_id"`
	Author         string    `json:"author"`
	AuthorVerified bool      `json:"author_verified"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// Achievement tracks a user's gamification state. Points and Badges only
// ever grow.
type Achievement struct {
	UserID       string   `json:"user_id"`
	Badges       []string `json:"badges"`
	Points       int      `json:"points"`
	VotesCast    int      `json:"votes_cast"`
	OffersShared int      `json:"offers_shared"`
}

// HasBadge reports whether the badge has already been awarded.
func (a *Achievement) HasBadge(id string) bool {
	for _, b := range a.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// Notification is a stored, pull-based notification
type Notification struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Content      string    `json:"content"`
	SourceUserID string    `json:"source_user_id"`
	PostID       string    `json:"post_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

// Message is a private message between two users
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

// Company is a dream-company ranking entry
type Company struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	Votes        int    `json:"votes"`
	Logo         string `json:"logo"`
	Description  string `json:"description"`
	OfferCount   int    `json:"offer_count"`
	SalaryRange  string `json:"salary_range"`
	HiringStatus string `json:"hiring_status"`
	Trending     bool   `json:"trending"`
}

// Offer is an entry in the offer showcase
type Offer struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Company    string    `json:"company"`
	CompanyID  string    `json:"company_id,omitempty"`
	Position   string    `json:"position"`
	Salary     string    `json:"salary"`
	Location   string    `json:"location"`
	OfferDate  string    `json:"offer_date"`
	Anonymous  bool      `json:"anonymous"`
	Verified   bool      `json:"verified"`
	University string    `json:"university"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}
