package services

import (
	"errors"
	"fmt"

	"gocafe/internal/models"
	"gocafe/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed login: unknown username,
// wrong password, or a corrupt stored hash. Callers get no detail that
// would confirm whether an account exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration, authentication and profile updates.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register hashes the password and saves the new user. A taken username
// surfaces as repositories.ErrConflict.
func (s *AuthService) Register(user *models.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = string(hashed)

	if user.ImageURL == "" {
		user.ImageURL = models.DefaultUserImageURL
	}

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// Authenticate returns the user whose stored hash matches the password, or
// ErrInvalidCredentials.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// A corrupt hash fails the comparison the same way a wrong password
	// does, so it is a non-match rather than a fatal error.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile saves profile changes for an existing user. The username,
// admin flag and password hash are not touched here.
func (s *AuthService) UpdateProfile(user *models.User) error {
	if user.ImageURL == "" {
		user.ImageURL = models.DefaultUserImageURL
	}
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
