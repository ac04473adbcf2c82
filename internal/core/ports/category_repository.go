package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// CategoryRepository defines persistence for categories.
type CategoryRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id int64, upd domain.CategoryUpdate) error
	Delete(ctx context.Context, id int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	Count(ctx context.Context, activeOnly bool) (int, error)
}
