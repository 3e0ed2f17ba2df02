package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/portfolio/backend/internal/repository"
	"github.com/portfolio/backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio/backend/internal/model"
)

// TokenTTL is the lifetime of an issued bearer token.
const TokenTTL = 24 * time.Hour

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	repo   repository.AdminRepository
	secret []byte
}

// NewAuthService creates an AuthService signing tokens with the given secret.
func NewAuthService(repo repository.AdminRepository, secret []byte) AuthService {
	return &authServiceImpl{repo: repo, secret: secret}
}

// Login compares the bcrypt hash and issues a token on success. The
// last-login stamp is best-effort and never fails the login.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*model.AdminUser, string, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		slog.Warn("last login update failed", "user_id", user.ID, "error", err)
	} else {
		user.LastLoginAt = &now
	}

	token := auth.CreateToken(user.ID, user.Role, TokenTTL, s.secret)
	return user, token, nil
}
