package services

import (
	"fmt"
	"time"

	"careerhub-backend/internal/apperror"
	"careerhub-backend/internal/models"
	"careerhub-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const jwtExpDays = 30

// UserService handles accounts, profiles, verification and user settings
type UserService struct {
	users     *repository.UserRepository
	settings  *repository.SettingsRepository
	jwtSecret string
	now       func() time.Time
}

// NewUserService creates a new user service
func NewUserService(users *repository.UserRepository, settings *repository.SettingsRepository, jwtSecret string) *UserService {
	return &UserService{
		users:     users,
		settings:  settings,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// Register creates a new account and returns the user with a login token
func (s *UserService) Register(email, password, confirm string) (*models.User, string, error) {
	if password != confirm {
		return nil, "", apperror.NewValidation("Passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:                 uuid.New().String(),
		Email:              email,
		PasswordHash:       string(hash),
		VerificationStatus: "none",
		CreatedAt:          s.now(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, "", apperror.NewUnauthenticated("Account not registered. Please sign up first.")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", apperror.NewUnauthenticated("Incorrect password")
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateJWT generates a JWT token for a user
func (s *UserService) GenerateJWT(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     s.now().AddDate(0, 0, jwtExpDays).Unix(),
		"iat":     s.now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a JWT token and returns the user ID
func (s *UserService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return "", fmt.Errorf("user_id not found in token")
	}

	return userID, nil
}

// Get retrieves a user by ID
func (s *UserService) Get(userID string) (*models.User, error) {
	return s.users.GetByID(userID)
}

// SaveProfile replaces the user's profile fields
func (s *UserService) SaveProfile(userID string, profile models.Profile) error {
	return s.users.SaveProfile(userID, profile)
}

// SubmitVerification records a verification request. Requests are
// auto-approved; the verified flag gates the verified-offer badge.
func (s *UserService) SubmitVerification(userID, institution, studentNumber string) error {
	if institution == "" || studentNumber == "" {
		return apperror.NewValidation("Please fill in institution and student number")
	}
	return s.users.SetVerified(userID, "approved")
}

// VerificationStatus returns the user's verification state
func (s *UserService) VerificationStatus(userID string) (string, bool, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return "", false, err
	}
	return user.VerificationStatus, user.Verified, nil
}

// GetSettings returns the user's settings
func (s *UserService) GetSettings(userID string) models.Settings {
	return s.settings.Get(userID)
}

// UpdateSettings replaces the user's settings
func (s *UserService) UpdateSettings(userID string, settings models.Settings) models.Settings {
	s.settings.Set(userID, settings)
	return s.settings.Get(userID)
}
