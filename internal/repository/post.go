package repository

import (
	"sort"
	"sync"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
)

// PostRepository is the in-memory post store. The feed is kept newest-first.
// Every mutation that touches a counter and its membership set does both
// under one lock so readers never see them disagree. Readers return detached
// copies; the stored structs are never handed out, so encoding a result
// cannot observe a later mutation.
type PostRepository struct {
	mu    sync.RWMutex
	posts []*models.Post
	byID  map[string]*models.Post
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.Tags = append([]string(nil), p.Tags...)
	cp.CustomTags = append([]string(nil), p.CustomTags...)
	cp.LikedBy = make(map[string]bool, len(p.LikedBy))
	for id := range p.LikedBy {
		cp.LikedBy[id] = true
	}
	cp.VotedBy = make(map[string]bool, len(p.VotedBy))
	for id := range p.VotedBy {
		cp.VotedBy[id] = true
	}
	// Reply structs are never mutated once stored, so their pointers can be
	// shared; comments grow replies and must be copied.
	cp.Comments = make([]*models.Comment, len(p.Comments))
	for i, c := range p.Comments {
		cc := *c
		cc.Replies = append([]*models.Reply(nil), c.Replies...)
		cp.Comments[i] = &cc
	}
	return &cp
}

// NewPostRepository creates a new post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{
		byID: make(map[string]*models.Post),
	}
}

// Create prepends a post to the feed. The store keeps its own copy, never
// the caller's struct.
func (r *PostRepository) Create(post *models.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := clonePost(post)
	r.posts = append([]*models.Post{p}, r.posts...)
	r.byID[p.ID] = p
}

// Get retrieves a copy of a post by ID
func (r *PostRepository) Get(id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("Post not found")
	}
	return clonePost(post), nil
}

// List returns the feed newest-first, optionally filtered by category and tag.
// A tag matches either a system tag or a custom tag.
func (r *PostRepository) List(category, tag string) []*models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if category != "" && p.Category != category {
			continue
		}
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		out = append(out, clonePost(p))
	}
	return out
}

func hasTag(p *models.Post, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	for _, t := range p.CustomTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ListDream returns dream-job posts sorted by votes descending
func (r *PostRepository) ListDream() []*models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Post, 0)
	for _, p := range r.posts {
		if p.IsDreamJob {
			out = append(out, clonePost(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Votes > out[j].Votes })
	return out
}

// Delete removes a post from the feed
func (r *PostRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperror.NewNotFound("Post not found")
	}
	delete(r.byID, id)
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			break
		}
	}
	return nil
}

// HasLiked reports whether the user currently likes the post
func (r *PostRepository) HasLiked(postID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.byID[postID]
	if !ok {
		return false, apperror.NewNotFound("Post not found")
	}
	return post.LikedBy[userID], nil
}

// Like adds the user to the post's liked set. Adding twice is a no-op, so
// the likes count always equals the set size.
func (r *PostRepository) Like(postID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[postID]
	if !ok {
		return 0, apperror.NewNotFound("Post not found")
	}
	if !post.LikedBy[userID] {
		post.LikedBy[userID] = true
		post.Likes++
	}
	return post.Likes, nil
}

// Unlike removes the user from the post's liked set
func (r *PostRepository) Unlike(postID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[postID]
	if !ok {
		return 0, apperror.NewNotFound("Post not found")
	}
	if post.LikedBy[userID] {
		delete(post.LikedBy, userID)
		post.Likes--
	}
	return post.Likes, nil
}

// VoteDream casts a dream-job vote. A user votes a given post at most once,
// ever; the vote is only valid for posts in the dream-job category.
func (r *PostRepository) VoteDream(postID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[postID]
	if !ok {
		return 0, apperror.NewNotFound("Post not found")
	}
	if !post.IsDreamJob {
		return 0, apperror.NewValidation("This post is not in Dream Job category")
	}
	if post.VotedBy[userID] {
		return 0, apperror.NewConflict("You already voted for this post")
	}
	post.VotedBy[userID] = true
	post.Votes++
	return post.Votes, nil
}

// AddComment appends a comment and returns the post author's ID so the
// caller can notify them.
func (r *PostRepository) AddComment(postID string, comment *models.Comment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[postID]
	if !ok {
		return "", apperror.NewNotFound("Post not found")
	}
	cc := *comment
	cc.Replies = append([]*models.Reply(nil), comment.Replies...)
	post.Comments = append(post.Comments, &cc)
	return post.AuthorID, nil
}

// AddReply appends a reply to a comment and returns the comment author's ID.
// Nesting stops here; replies cannot be replied to.
func (r *PostRepository) AddReply(postID, commentID string, reply *models.Reply) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.byID[postID]
	if !ok {
		return "", apperror.NewNotFound("Post not found")
	}
	for _, comment := range post.Comments {
		if comment.ID == commentID {
			comment.Replies = append(comment.Replies, reply)
			return comment.AuthorID, nil
		}
	}
	return "", apperror.NewNotFound("Comment not found")
}
