package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

// ProductService implements catalog management with ownership-scoped
// visibility for admins and full visibility for super admins.
type ProductService struct {
	repo   ports.ProductRepository
	images ports.ImageStore
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, images ports.ImageStore, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, images: images, logger: logger}
}

// PublicList serves the landing page: active products only.
func (s *ProductService) PublicList(ctx context.Context, opts domain.ListOptions) ([]domain.Product, domain.Pagination, error) {
	opts.Normalize()
	opts.ActiveOnly = true
	opts.OwnerID = nil

	products, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return products, domain.NewPagination(total, opts.Page, opts.Limit), nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.FindBySlug(ctx, slug)
}

// List scopes visibility by role before any other filter is applied.
func (s *ProductService) List(ctx context.Context, actor *domain.User, opts domain.ListOptions) ([]domain.Product, domain.Pagination, error) {
	opts.Normalize()
	switch actor.Role {
	case domain.RoleSuperAdmin:
		opts.OwnerID = nil
	case domain.RoleAdmin:
		opts.OwnerID = &actor.ID
	default:
		return nil, domain.Pagination{}, domain.ErrForbidden
	}

	products, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return products, domain.NewPagination(total, opts.Page, opts.Limit), nil
}

func (s *ProductService) GetByUUID(ctx context.Context, actor *domain.User, uid string) (*domain.Product, error) {
	product, err := s.repo.FindByUUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleAdmin && product.CreatedBy != actor.ID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, actor *domain.User, input domain.NewProduct) (*domain.Product, error) {
	slug, err := UniqueSlug(ctx, input.Name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	metaTitle := input.MetaTitle
	if metaTitle == "" {
		metaTitle = input.Name
	}
	metaDescription := input.MetaDescription
	if metaDescription == "" {
		metaDescription = input.Description
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Product{
		UUID:            uuid.NewString(),
		Name:            input.Name,
		Slug:            slug,
		Description:     input.Description,
		Price:           input.Price,
		Stock:           input.Stock,
		CategoryID:      input.CategoryID,
		CreatedBy:       actor.ID,
		Image:           input.Image,
		MetaTitle:       metaTitle,
		MetaDescription: metaDescription,
		MetaKeywords:    input.MetaKeywords,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("uuid", created.UUID).Str("slug", created.Slug).Int64("created_by", actor.ID).Msg("product created")
	return s.repo.FindByUUID(ctx, created.UUID)
}

func (s *ProductService) Update(ctx context.Context, actor *domain.User, uid string, upd domain.ProductUpdate) (*domain.Product, error) {
	existing, err := s.repo.FindByUUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !CanManageProduct(actor, existing.CreatedBy) {
		return nil, domain.ErrForbidden
	}

	if upd.Name != nil {
		slug, err := UniqueSlug(ctx, *upd.Name, func(ctx context.Context, candidate string) (bool, error) {
			return s.repo.SlugExists(ctx, candidate, existing.ID)
		})
		if err != nil {
			return nil, err
		}
		upd.Slug = &slug
	}

	if upd.IsEmpty() {
		return existing, nil
	}

	if err := s.repo.Update(ctx, existing.ID, s.ownerScope(actor), upd); err != nil {
		return nil, err
	}

	// A replaced image leaves its predecessor orphaned on disk.
	if upd.Image != nil && existing.Image != nil {
		if err := s.images.Remove(ctx, existing.Image.URL); err != nil {
			s.logger.Warn().Err(err).Str("url", existing.Image.URL).Msg("failed to remove replaced image")
		}
	}

	return s.repo.FindByUUID(ctx, uid)
}

func (s *ProductService) Delete(ctx context.Context, actor *domain.User, uid string) error {
	existing, err := s.repo.FindByUUID(ctx, uid)
	if err != nil {
		return err
	}
	if !CanManageProduct(actor, existing.CreatedBy) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, existing.ID, s.ownerScope(actor)); err != nil {
		return err
	}

	if existing.Image != nil {
		if err := s.images.Remove(ctx, existing.Image.URL); err != nil {
			s.logger.Warn().Err(err).Str("url", existing.Image.URL).Msg("failed to remove image of deleted product")
		}
	}

	s.logger.Info().Str("uuid", uid).Int64("actor", actor.ID).Msg("product deleted")
	return nil
}

// ownerScope narrows repository mutations to the actor's own rows unless the
// actor is a super admin.
func (s *ProductService) ownerScope(actor *domain.User) *int64 {
	if actor.Role == domain.RoleSuperAdmin {
		return nil
	}
	return &actor.ID
}
