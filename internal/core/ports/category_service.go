package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

type CategoryService interface {
	PublicList(ctx context.Context) ([]domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, name, description string) (*domain.Category, error)
	Update(ctx context.Context, id int64, upd domain.CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}
