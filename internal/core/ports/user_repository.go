package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// UserRepository defines persistence for accounts.
type UserRepository interface {
	// FindByEmail matches case-insensitively and includes the password hash.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByUUID(ctx context.Context, uuid string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context, opts domain.ListOptions) ([]domain.User, int, error)
	Update(ctx context.Context, uuid string, upd domain.UserUpdate) error
	Delete(ctx context.Context, uuid string) error
	CountByRole(ctx context.Context, role string) (int, error)
}
