package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/accounthub/account-system/internal/auth"
	"github.com/accounthub/account-system/internal/core/domain"
	"github.com/accounthub/account-system/internal/core/ports"
)

// UserService implements registration, login and existence checks for the
// account backend.
type UserService struct {
	repo   ports.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(repo ports.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Login verifies the password and issues a bearer token binding the
// account's principal. Unknown usernames and wrong passwords collapse into
// the same rejection so callers cannot probe which usernames exist.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !user.Open {
		return "", domain.ErrAccountClosed
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Principal{
		ID:       user.ID,
		Username: user.Username,
		Identity: user.Identity,
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Register hashes the password and creates the account. New accounts start
// as Member and open.
func (s *UserService) Register(ctx context.Context, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Identity:     auth.IdentityMember,
		Open:         true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s created. id: %d", created.Username, created.ID), nil
}

// Exists reports whether the username is taken.
func (s *UserService) Exists(ctx context.Context, username string) (bool, error) {
	return s.repo.Exists(ctx, username)
}
