package services

import (
	"errors"
	"testing"

	"careerhub-backend/internal/apperror"
)

func TestModeratorRejectsProhibitedWord(t *testing.T) {
	m := NewModerator(nil)

	err := m.Check("请找人代写论文")
	if err == nil {
		t.Fatal("expected rejection, got nil")
	}
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperror.Error, got %T", err)
	}
	if appErr.Kind != apperror.ModerationRejected {
		t.Errorf("unexpected kind: %v", appErr.Kind)
	}
	if appErr.Word != "代写" {
		t.Errorf("expected word 代写, got %q", appErr.Word)
	}
}

func TestModeratorAcceptsCleanContent(t *testing.T) {
	m := NewModerator(nil)

	if err := m.Check("正常内容"); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
}

func TestModeratorReturnsFirstWordInListOrder(t *testing.T) {
	m := NewModerator([]string{"alpha", "beta"})

	err := m.Check("beta then alpha")
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperror.Error, got %v", err)
	}
	// List order wins over position in the text.
	if appErr.Word != "alpha" {
		t.Errorf("expected first list word alpha, got %q", appErr.Word)
	}
}
