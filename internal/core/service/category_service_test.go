package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

type recordingCategoryRepo struct {
	stubCategoryRepo
	taken      map[string]bool
	created    *domain.Category
	found      *domain.Category
	lastUpdate domain.CategoryUpdate
	updated    bool
}

func (r *recordingCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.created = c
	return c, nil
}

func (r *recordingCategoryRepo) FindByID(_ context.Context, _ int64) (*domain.Category, error) {
	if r.found == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return r.found, nil
}

func (r *recordingCategoryRepo) Update(_ context.Context, _ int64, upd domain.CategoryUpdate) error {
	r.updated = true
	r.lastUpdate = upd
	return nil
}

func (r *recordingCategoryRepo) SlugExists(_ context.Context, slug string, _ int64) (bool, error) {
	return r.taken[slug], nil
}

func TestCategoryCreateResolvesSlugCollision(t *testing.T) {
	repo := &recordingCategoryRepo{taken: map[string]bool{"electronics": true}}
	svc := NewCategoryService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "Electronics", "Gadgets and devices")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "electronics-1" {
		t.Errorf("slug = %q, want electronics-1", created.Slug)
	}
	if !created.IsActive {
		t.Error("expected new category to be active")
	}
}

func TestCategoryUpdateRecomputesSlugOnRename(t *testing.T) {
	repo := &recordingCategoryRepo{found: &domain.Category{ID: 3, Name: "Old", Slug: "old"}}
	svc := NewCategoryService(repo, zerolog.Nop())

	name := "Home Appliances"
	if _, err := svc.Update(context.Background(), 3, domain.CategoryUpdate{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.lastUpdate.Slug == nil || *repo.lastUpdate.Slug != "home-appliances" {
		t.Errorf("slug = %v, want home-appliances", repo.lastUpdate.Slug)
	}
}

func TestCategoryUpdateEmptyChangeIsNoop(t *testing.T) {
	repo := &recordingCategoryRepo{found: &domain.Category{ID: 3, Name: "Books", Slug: "books"}}
	svc := NewCategoryService(repo, zerolog.Nop())

	if _, err := svc.Update(context.Background(), 3, domain.CategoryUpdate{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.updated {
		t.Error("empty update must not touch the repository")
	}
}
