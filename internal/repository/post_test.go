package repository

import (
	"testing"

	"careerhub-backend/internal/models"
)

func seedPost(r *PostRepository, id string) {
	r.Create(&models.Post{
		ID:      id,
		LikedBy: map[string]bool{},
		VotedBy: map[string]bool{},
	})
}

func TestGetReturnsDetachedCopy(t *testing.T) {
	r := NewPostRepository()
	seedPost(r, "p1")

	before, err := r.Get("p1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if _, err := r.Like("p1", "u1"); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	if before.Likes != 0 || len(before.LikedBy) != 0 {
		t.Errorf("earlier snapshot changed: likes=%d set=%d", before.Likes, len(before.LikedBy))
	}
	after, _ := r.Get("p1")
	if after.Likes != 1 || !after.LikedBy["u1"] {
		t.Errorf("fresh read should see the like, got likes=%d", after.Likes)
	}
}

func TestCreateDoesNotAliasCallerStruct(t *testing.T) {
	r := NewPostRepository()
	p := &models.Post{ID: "p1", LikedBy: map[string]bool{}, VotedBy: map[string]bool{}}
	r.Create(p)

	if _, err := r.Like("p1", "u1"); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if p.Likes != 0 || len(p.LikedBy) != 0 {
		t.Errorf("caller's struct must stay untouched, got likes=%d set=%d", p.Likes, len(p.LikedBy))
	}
}

func TestListedCommentsDetached(t *testing.T) {
	r := NewPostRepository()
	seedPost(r, "p1")
	if _, err := r.AddComment("p1", &models.Comment{ID: "c1", AuthorID: "a", Replies: []*models.Reply{}}); err != nil {
		t.Fatalf("comment failed: %v", err)
	}

	before, _ := r.Get("p1")
	if _, err := r.AddReply("p1", "c1", &models.Reply{ID: "r1"}); err != nil {
		t.Fatalf("reply failed: %v", err)
	}

	if len(before.Comments[0].Replies) != 0 {
		t.Errorf("earlier snapshot gained a reply")
	}
	after, _ := r.Get("p1")
	if len(after.Comments[0].Replies) != 1 {
		t.Errorf("fresh read should see the reply, got %d", len(after.Comments[0].Replies))
	}
}
