package ports

import (
	"context"
	"time"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// TokenRepository persists issued refresh sessions.
type TokenRepository interface {
	Save(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	// Find returns the session for token, or (nil, nil) when the token is
	// unknown or already past its expiry.
	Find(ctx context.Context, token string) (*domain.RefreshSession, error)
	// Consume deletes the session iff it is still unexpired and reports
	// whether a row was removed. Two concurrent rotations of the same token
	// can both Find it, but only one Consume succeeds.
	Consume(ctx context.Context, token string) (bool, error)
	// DeleteByToken is idempotent; deleting an absent token is not an error.
	DeleteByToken(ctx context.Context, token string) error
	DeleteAllForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) (int64, error)
}
