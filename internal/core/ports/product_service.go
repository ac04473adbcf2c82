package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

type ProductService interface {
	// PublicList lists active products only and ignores any owner scoping.
	PublicList(ctx context.Context, opts domain.ListOptions) ([]domain.Product, domain.Pagination, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// List applies role scoping: super_admin sees everything, admin sees own
	// products only, anyone else is denied.
	List(ctx context.Context, actor *domain.User, opts domain.ListOptions) ([]domain.Product, domain.Pagination, error)
	GetByUUID(ctx context.Context, actor *domain.User, uuid string) (*domain.Product, error)
	Create(ctx context.Context, actor *domain.User, input domain.NewProduct) (*domain.Product, error)
	Update(ctx context.Context, actor *domain.User, uuid string, upd domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, actor *domain.User, uuid string) error
}
