package services

import (
	"testing"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"
)

func newUserService() *UserService {
	return NewUserService(repository.NewUserRepository(), repository.NewSettingsRepository(), "test-secret")
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService()

	user, token, err := svc.Register("alex@example.com", "secret1", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token on registration")
	}

	userID, err := svc.ValidateJWT(token)
	if err != nil || userID != user.ID {
		t.Errorf("token should validate to %s, got %s (%v)", user.ID, userID, err)
	}

	if _, _, err := svc.Register("alex@example.com", "secret1", "secret1"); !apperror.IsKind(err, apperror.Conflict) {
		t.Errorf("duplicate registration should conflict, got %v", err)
	}
	if _, _, err := svc.Register("ben@example.com", "secret1", "different"); !apperror.IsKind(err, apperror.Validation) {
		t.Errorf("mismatched confirmation should fail validation, got %v", err)
	}

	if _, _, err := svc.Login("alex@example.com", "wrong"); !apperror.IsKind(err, apperror.Unauthenticated) {
		t.Errorf("wrong password should be unauthenticated, got %v", err)
	}
	logged, _, err := svc.Login("ALEX@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, logged.ID)
	}
}

func TestVerificationAutoApproves(t *testing.T) {
	svc := newUserService()
	user, _, err := svc.Register("alex@example.com", "secret1", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.SubmitVerification(user.ID, "", "123"); !apperror.IsKind(err, apperror.Validation) {
		t.Errorf("missing institution should fail validation, got %v", err)
	}

	if err := svc.SubmitVerification(user.ID, "HKU", "u1234567"); err != nil {
		t.Fatalf("verification failed: %v", err)
	}
	status, verified, err := svc.VerificationStatus(user.ID)
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if status != "approved" || !verified {
		t.Errorf("expected approved/verified, got %s/%v", status, verified)
	}
}

func TestSettingsDefaultAndUpdate(t *testing.T) {
	svc := newUserService()
	user, _, err := svc.Register("alex@example.com", "secret1", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if !svc.GetSettings(user.ID).ReceiveMessages {
		t.Error("receive_messages should default to true")
	}
	updated := svc.UpdateSettings(user.ID, models.Settings{ReceiveMessages: false})
	if updated.ReceiveMessages {
		t.Error("expected receive_messages=false after update")
	}
}
