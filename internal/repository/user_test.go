package repository

import (
	"testing"

	"careerhub-backend/internal/models"
)

func TestGetByIDReturnsDetachedCopy(t *testing.T) {
	r := NewUserRepository()
	if err := r.Create(&models.User{ID: "u1", Email: "alex@example.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	before, err := r.GetByID("u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if err := r.SaveProfile("u1", models.Profile{Name: "Alex"}); err != nil {
		t.Fatalf("save profile failed: %v", err)
	}

	if before.Profile.Name != "" || before.ProfileCompleted {
		t.Errorf("earlier snapshot changed: %+v", before.Profile)
	}
	after, _ := r.GetByID("u1")
	if after.Profile.Name != "Alex" || !after.ProfileCompleted {
		t.Errorf("fresh read should see the profile, got %+v", after.Profile)
	}
}
