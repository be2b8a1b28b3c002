package handlers

import (
	"net/http"
	"time"

	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PostHandler handles post, comment, favorite and dream-post requests
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List handles GET /api/v1/posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r.Context())
	category := r.URL.Query().Get("category")
	tag := r.URL.Query().Get("tag")

	respondJSON(w, http.StatusOK, h.postService.List(viewerID, category, tag))
}

// ListDream handles GET /api/v1/dream-jobs/posts
func (h *PostHandler) ListDream(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.GetUserID(r.Context())
	respondJSON(w, http.StatusOK, h.postService.ListDream(viewerID))
}

// Create handles POST /api/v1/posts
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req services.CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	post, err := h.postService.Create(userID, req)
	if err != nil {
		respondAppError(w, err)
		return
	}

	log.Info().Str("post_id", post.ID).Str("user_id", userID).Msg("Post created")
	respondJSON(w, http.StatusCreated, post)
}

// Like handles POST /api/v1/posts/{post_id}/like
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	result, err := h.postService.Like(userID, postID, time.Now())
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// VoteDream handles POST /api/v1/posts/{post_id}/vote
func (h *PostHandler) VoteDream(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	votes, err := h.postService.VoteDream(userID, postID)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"votes": votes})
}

// CommentRequest is the comment and reply payload
type CommentRequest struct {
	Content   string `json:"content" validate:"required"`
	Anonymous bool   `json:"anonymous"`
}

// AddComment handles POST /api/v1/posts/{post_id}/comments
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	var req CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	comment, err := h.postService.AddComment(userID, postID, req.Content, req.Anonymous)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

// AddReply handles POST /api/v1/posts/{post_id}/comments/{comment_id}/replies
func (h *PostHandler) AddReply(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")
	commentID := chi.URLParam(r, "comment_id")

	var req CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondAppError(w, err)
		return
	}

	reply, err := h.postService.AddReply(userID, postID, commentID, req.Content, req.Anonymous)
	if err != nil {
		respondAppError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, reply)
}

// Delete handles DELETE /api/v1/posts/{post_id}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	if err := h.postService.Delete(postID, userID); err != nil {
		respondAppError(w, err)
		return
	}

	log.Info().Str("post_id", postID).Str("user_id", userID).Msg("Post deleted")
	respondJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

// ToggleFavorite handles POST /api/v1/posts/{post_id}/favorite
func (h *PostHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	postID := chi.URLParam(r, "post_id")

	favorited, err := h.postService.ToggleFavorite(userID, postID)
	if err != nil {
		respondAppError(w, err)
		return
	}

	message := "Removed from favorites"
	if favorited {
		message = "Added to favorites"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"favorited": favorited, "message": message})
}

// Favorites handles GET /api/v1/favorites
func (h *PostHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	respondJSON(w, http.StatusOK, h.postService.Favorites(userID))
}

// TagHistory handles GET /api/v1/tags/history
func (h *PostHandler) TagHistory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	respondJSON(w, http.StatusOK, h.postService.TagHistory(userID))
}
