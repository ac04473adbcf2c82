package ports

import (
	"time"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// TokenCodec signs and verifies the two token classes. Access and refresh
// tokens use distinct secrets so compromising one class cannot mint the other.
type TokenCodec interface {
	IssueAccess(user *domain.User) (string, error)
	IssueRefresh(user *domain.User) (string, error)
	VerifyAccess(token string) (*domain.AccessClaims, error)
	VerifyRefresh(token string) (*domain.RefreshClaims, error)
	// RefreshTTL is the lifetime stamped into refresh tokens; the session
	// store records the same wall-clock expiry.
	RefreshTTL() time.Duration
}
