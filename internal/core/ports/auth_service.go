package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// AuthResult is the response shape shared by login and register.
type AuthResult struct {
	User   *domain.User
	Tokens domain.TokenPair
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	// Rotate consumes a refresh token exactly once and issues a new pair.
	Rotate(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	// Logout is best-effort and never fails the caller-visible flow.
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
}
