package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// ProductRepository defines persistence for catalog items.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByUUID(ctx context.Context, uuid string) (*domain.Product, error)
	// FindBySlug only returns active products; it backs the public detail page.
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// List applies every filter in opts plus pagination and returns the page
	// of rows together with the total matching count.
	List(ctx context.Context, opts domain.ListOptions) ([]domain.Product, int, error)
	// Update and Delete encode the ownership precondition in the statement
	// itself when ownerID is non-nil and report domain.ErrProductNotFound
	// when no row matched.
	Update(ctx context.Context, id int64, ownerID *int64, upd domain.ProductUpdate) error
	Delete(ctx context.Context, id int64, ownerID *int64) error
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	// Count counts products, optionally scoped to one creator.
	Count(ctx context.Context, ownerID *int64) (int, error)
	// Recent returns the newest products, optionally scoped to one creator.
	Recent(ctx context.Context, ownerID *int64, limit int) ([]domain.Product, error)
}
