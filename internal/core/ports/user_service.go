package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// UserService is the super-admin user management surface. Every mutation
// refuses super_admin targets regardless of the actor.
type UserService interface {
	List(ctx context.Context, opts domain.ListOptions) ([]domain.User, domain.Pagination, error)
	Get(ctx context.Context, uuid string) (*domain.User, error)
	Update(ctx context.Context, uuid string, upd domain.UserUpdate) (*domain.User, error)
	Promote(ctx context.Context, uuid string) (*domain.User, error)
	Demote(ctx context.Context, uuid string) (*domain.User, error)
	Delete(ctx context.Context, uuid string) error
}
