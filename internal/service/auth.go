// Package service provides authentication business logic,
// delegating persistence to an AuthRepository.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/CmdKeeper/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthRepository defines the persistence operations
// required by the authentication service.
type AuthRepository interface {
	// UserExists returns true if a user with the given username exists.
	UserExists(ctx context.Context, username string) (bool, error)
	// CreateUser persists a new user record.
	CreateUser(ctx context.Context, user models.User) error
	// UserByUsername fetches a user by username.
	// Returns sql.ErrNoRows when no such user exists.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// TokenIssuer creates a signed bearer token embedding a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService implements registration and login by delegating persistence
// to an AuthRepository and token creation to a TokenIssuer.
type AuthService struct {
	repo   AuthRepository
	tokens TokenIssuer
}

// NewAuthService constructs an AuthService using the provided repository
// and token issuer.
func NewAuthService(repo AuthRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
// Returns ErrValidation if username or password is empty and
// ErrUserExists if the username is taken.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	exists, err := s.repo.UserExists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and returns a signed bearer token.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}
