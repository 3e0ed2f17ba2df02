package service

import (
	"context"
	"errors"

	"github.com/portfolio/backend/internal/model"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. The two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService authenticates the administrator account.
type AuthService interface {
	// Login verifies the credentials and returns the account plus a
	// signed bearer token.
	Login(ctx context.Context, username, password string) (*model.AdminUser, string, error)
}
