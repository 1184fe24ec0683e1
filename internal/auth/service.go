package auth

import (
	"context"
	"errors"
	"fmt"

	"feedbackManagement/models"
	"feedbackManagement/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. They are deliberately indistinguishable so login failures
	// cannot be used to enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownRole is returned by Signup for roles outside the known set.
	ErrUnknownRole = errors.New("unknown role")
)

// Service orchestrates signup and login against the user repository and
// the token service.
type Service struct {
	users  repository.UserRepositoryI
	tokens *TokenService
}

// NewService creates an auth Service.
func NewService(users repository.UserRepositoryI, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Signup registers a new account. The password is stored as a bcrypt hash,
// never in plaintext. Role defaults to employee when empty. Returns
// repository.ErrDuplicateUsername when the username is taken; uniqueness is
// enforced by the storage layer, not a pre-check.
func (s *Service) Signup(ctx context.Context, username, password, role string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if role == "" {
		role = models.RoleEmployee
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.users.Create(ctx, username, string(hash), role)
}

// Login verifies the credentials and returns a signed bearer token whose
// subject is the username. Unknown users and wrong passwords both fail
// with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.Username)
}
