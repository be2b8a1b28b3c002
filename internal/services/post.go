package services

import (
	"fmt"
	"regexp"
	"sync"
	"time"
	"unicode/utf8"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

const (
	maxSystemTags = 3
	maxCustomTags = 2
)

// customTagPattern allows Chinese characters, English letters and digits.
var customTagPattern = regexp.MustCompile("^[a-zA-Z0-9一-龥]+$")

// PostService handles the post lifecycle and its engagement actions. The
// service mutex serializes read-modify-write sequences that span the post
// store and the like records, so two concurrent likes cannot both pass the
// rate-limit check or both observe a stale liked set.
type PostService struct {
	mu             sync.Mutex
	posts          *repository.PostRepository
	likes          *repository.LikeRecordRepository
	favorites      *repository.FavoriteRepository
	tags           *repository.TagHistoryRepository
	users          *repository.UserRepository
	moderator      *Moderator
	notifications  *NotificationService
	replyMaxLength int
	now            func() time.Time
	newID          func() string
}

// NewPostService creates a new post service
func NewPostService(
	posts *repository.PostRepository,
	likes *repository.LikeRecordRepository,
	favorites *repository.FavoriteRepository,
	tags *repository.TagHistoryRepository,
	users *repository.UserRepository,
	moderator *Moderator,
	notifications *NotificationService,
	replyMaxLength int,
) *PostService {
	return &PostService{
		posts:          posts,
		likes:          likes,
		favorites:      favorites,
		tags:           tags,
		users:          users,
		moderator:      moderator,
		notifications:  notifications,
		replyMaxLength: replyMaxLength,
		now:            time.Now,
		newID:          newContentID,
	}
}

// CreatePostRequest carries the fields of a new post
type CreatePostRequest struct {
	Title      string   `json:"title" validate:"required"`
	Content    string   `json:"content" validate:"required"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CustomTags []string `json:"custom_tags"`
	Anonymous  bool     `json:"anonymous"`
	University string   `json:"university"`
	Faculty    string   `json:"faculty"`
}

// Create moderates and stores a new post. At most three system tags are
// kept; custom tags are validated individually and invalid ones dropped.
func (s *PostService) Create(userID string, req CreatePostRequest) (*models.Post, error) {
	if err := s.moderator.Check(req.Title + " " + req.Content); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	customTags := make([]string, 0, maxCustomTags)
	for _, tag := range req.CustomTags {
		if len(customTags) == maxCustomTags {
			break
		}
		if ValidateCustomTag(tag) == nil {
			customTags = append(customTags, tag)
		}
	}
	if len(customTags) > 0 {
		s.tags.Add(userID, customTags)
	}

	tags := req.Tags
	if len(tags) > maxSystemTags {
		tags = tags[:maxSystemTags]
	}

	author := "Anonymous"
	if !req.Anonymous {
		author = s.users.DisplayName(userID)
	}

	category := req.Category
	if category == "" {
		category = "career_advice"
	}

	post := &models.Post{
		ID:             s.newID(),
		AuthorID:       userID,
		Author:         author,
		AuthorVerified: user.Verified,
		Anonymous:      req.Anonymous,
		University:     req.University,
		Faculty:        req.Faculty,
		Title:          req.Title,
		Content:        req.Content,
		Category:       category,
		Tags:           tags,
		CustomTags:     customTags,
		LikedBy:        make(map[string]bool),
		VotedBy:        make(map[string]bool),
		IsDreamJob:     category == "dream_job",
		Comments:       []*models.Comment{},
		CreatedAt:      s.now(),
	}
	s.posts.Create(post)
	return post, nil
}

// ValidateCustomTag checks a custom tag: 2-10 characters, Chinese, English
// or digits only.
func ValidateCustomTag(tag string) error {
	n := utf8.RuneCountInString(tag)
	if n < 2 || n > 10 {
		return apperror.NewValidation("Tag must be 2-10 characters")
	}
	if !customTagPattern.MatchString(tag) {
		return apperror.NewValidation("Tag can only contain Chinese, English, or numbers")
	}
	return nil
}

// PostView is a post enriched with viewer-specific flags
type PostView struct {
	*models.Post
	UserLiked     bool `json:"user_liked"`
	UserFavorited bool `json:"user_favorited"`
}

// List returns the feed for a viewer, optionally filtered
func (s *PostService) List(viewerID, category, tag string) []PostView {
	posts := s.posts.List(category, tag)
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.view(viewerID, p))
	}
	return out
}

// ListDream returns dream-job posts sorted by votes for the leaderboard
func (s *PostService) ListDream(viewerID string) []PostView {
	posts := s.posts.ListDream()
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, s.view(viewerID, p))
	}
	return out
}

func (s *PostService) view(viewerID string, p *models.Post) PostView {
	v := PostView{Post: p}
	if viewerID != "" {
		liked, _ := s.posts.HasLiked(p.ID, viewerID)
		v.UserLiked = liked
		v.UserFavorited = s.favorites.Has(viewerID, p.ID)
	}
	return v
}

// LikeResult reports the post's like count and the viewer's new state
type LikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// Like toggles the user's like on a post. An existing like is removed and
// its rate-limit record cleared, which resets the daily lock for that post;
// a new like must pass the once-per-day and daily-cap checks first.
func (s *PostService) Like(userID, postID string, now time.Time) (*LikeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked, err := s.posts.HasLiked(postID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		likes, err := s.posts.Unlike(postID, userID)
		if err != nil {
			return nil, err
		}
		s.likes.Clear(userID, postID)
		return &LikeResult{Likes: likes, Liked: false}, nil
	}

	if err := s.likes.CanLike(userID, postID, now); err != nil {
		return nil, err
	}
	likes, err := s.posts.Like(postID, userID)
	if err != nil {
		return nil, err
	}
	s.likes.Record(userID, postID, now)
	return &LikeResult{Likes: likes, Liked: true}, nil
}

// VoteDream casts a one-time vote on a dream-job post
func (s *PostService) VoteDream(userID, postID string) (int, error) {
	return s.posts.VoteDream(postID, userID)
}

// AddComment moderates and appends a comment, notifying the post author
// unless they are the commenter.
func (s *PostService) AddComment(userID, postID, content string, anonymous bool) (*models.Comment, error) {
	if err := s.moderator.Check(content); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:             s.newID(),
		AuthorID:       userID,
		Author:         commentAuthor(s.users, userID, anonymous),
		AuthorVerified: user.Verified,
		Content:        content,
		Replies:        []*models.Reply{},
		CreatedAt:      s.now(),
	}
	postAuthorID, err := s.posts.AddComment(postID, comment)
	if err != nil {
		return nil, err
	}

	if postAuthorID != "" && postAuthorID != userID {
		preview := fmt.Sprintf("New comment on your post: %s...", truncateRunes(content, 50))
		s.notifications.Notify(postAuthorID, "comment", preview, userID, postID)
	}
	return comment, nil
}

// AddReply moderates and appends a reply to a comment, notifying the
// comment author unless they are the replier. Replies have their own length
// cap, independent of the message limit.
func (s *PostService) AddReply(userID, postID, commentID, content string, anonymous bool) (*models.Reply, error) {
	if utf8.RuneCountInString(content) > s.replyMaxLength {
		return nil, apperror.NewValidation(fmt.Sprintf("Reply must be %d characters or less", s.replyMaxLength))
	}
	if err := s.moderator.Check(content); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	reply := &models.Reply{
		ID:             s.newID(),
		AuthorID:       userID,
		Author:         commentAuthor(s.users, userID, anonymous),
		AuthorVerified: user.Verified,
		Content:        content,
		CreatedAt:      s.now(),
	}
	commentAuthorID, err := s.posts.AddReply(postID, commentID, reply)
	if err != nil {
		return nil, err
	}

	if commentAuthorID != "" && commentAuthorID != userID {
		preview := fmt.Sprintf("New reply to your comment: %s...", truncateRunes(content, 50))
		s.notifications.Notify(commentAuthorID, "reply", preview, userID, postID)
	}
	return reply, nil
}

func commentAuthor(users *repository.UserRepository, userID string, anonymous bool) string {
	if anonymous {
		return "Anonymous"
	}
	return users.DisplayName(userID)
}

// Delete removes a post. Only the author may delete it; the post is purged
// from every user's favorite set so favorites never reference a deleted
// post.
func (s *PostService) Delete(postID, requesterID string) error {
	post, err := s.posts.Get(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return apperror.NewForbidden("You can only delete your own posts")
	}
	if err := s.posts.Delete(postID); err != nil {
		return err
	}
	s.favorites.RemovePost(postID)
	return nil
}

// ToggleFavorite flips the favorite state of a post for the user. No rate
// limit, no notification.
func (s *PostService) ToggleFavorite(userID, postID string) (bool, error) {
	if _, err := s.posts.Get(postID); err != nil {
		return false, err
	}
	return s.favorites.Toggle(userID, postID), nil
}

// Favorites returns the user's favorited posts in feed order
func (s *PostService) Favorites(userID string) []PostView {
	favIDs := s.favorites.List(userID)
	out := make([]PostView, 0, len(favIDs))
	for _, p := range s.posts.List("", "") {
		if favIDs[p.ID] {
			out = append(out, s.view(userID, p))
		}
	}
	return out
}

// TagHistory returns the user's recently used custom tags
func (s *PostService) TagHistory(userID string) []string {
	return s.tags.List(userID)
}
