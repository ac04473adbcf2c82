package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

const categoryColumns = `id, name, slug, description, is_active, created_at, updated_at`

// CategoryRepository is the PostgreSQL implementation of ports.CategoryRepository.
type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name, slug, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		c.Name, c.Slug, nullString(c.Description), c.IsActive, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, upd domain.CategoryUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Slug != nil {
		set("slug", *upd.Slug)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.IsActive != nil {
		set("is_active", *upd.IsActive)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE categories SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`,
		slug, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("category slug exists: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) Count(ctx context.Context, activeOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM categories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return count, nil
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var (
		c           domain.Category
		description sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	return &c, nil
}
