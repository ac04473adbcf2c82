package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

// CategoryService implements category management. Slug collisions are
// resolved, never surfaced.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) PublicList(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx, true)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx, false)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name, description string) (*domain.Category, error) {
	slug, err := UniqueSlug(ctx, name, func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, candidate, 0)
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("slug", created.Slug).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, upd domain.CategoryUpdate) (*domain.Category, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
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

	if err := s.repo.Update(ctx, id, upd); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Delete removes the category; products referencing it are orphaned by the
// store (SET NULL), not deleted.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("category deleted")
	return nil
}
