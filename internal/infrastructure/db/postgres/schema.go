package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// EnsureSchema creates all tables and indexes on first boot. Statements are
// idempotent so restarting against an initialized database is a no-op.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			uuid VARCHAR(36) UNIQUE NOT NULL,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'customer',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_email ON users (lower(email))`,
		`CREATE INDEX IF NOT EXISTS idx_users_role ON users (role)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			slug VARCHAR(100) UNIQUE NOT NULL,
			description TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			uuid VARCHAR(36) UNIQUE NOT NULL,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) UNIQUE NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
			created_by BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			image_url VARCHAR(500),
			image_original_name VARCHAR(255),
			image_mime_type VARCHAR(100),
			image_size BIGINT,
			meta_title VARCHAR(255),
			meta_description TEXT,
			meta_keywords VARCHAR(500),
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_created_by ON products (created_by)`,
		`CREATE INDEX IF NOT EXISTS idx_products_price ON products (price)`,
		`CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN (
			to_tsvector('english', coalesce(name,'') || ' ' || coalesce(description,'') || ' ' || coalesce(meta_keywords,''))
		)`,
		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token VARCHAR(500) NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_token ON refresh_tokens (token)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user ON refresh_tokens (user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_expires ON refresh_tokens (expires_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// seedUser describes one bootstrap account.
type seedUser struct {
	name  string
	email string
	role  string
}

// Seed inserts the bootstrap accounts and default categories when their
// tables are empty. The seed password is intended for local development only.
func Seed(ctx context.Context, db *sql.DB, password string, bcryptCost int) error {
	var users int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&users); err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}

	if users == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}

		accounts := []seedUser{
			{name: "Super Admin", email: "superadmin@example.com", role: "super_admin"},
			{name: "Admin User", email: "admin@example.com", role: "admin"},
			{name: "Customer User", email: "customer@example.com", role: "customer"},
		}
		now := time.Now().UTC()
		for _, a := range accounts {
			_, err := db.ExecContext(ctx,
				`INSERT INTO users (uuid, name, email, password, role, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, TRUE, $6, $6)`,
				uuid.NewString(), a.name, a.email, string(hash), a.role, now)
			if err != nil {
				return fmt.Errorf("seed: insert user %s: %w", a.email, err)
			}
		}
	}

	var categories int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&categories); err != nil {
		return fmt.Errorf("seed: count categories: %w", err)
	}

	if categories == 0 {
		defaults := [][2]string{
			{"Electronics", "electronics"},
			{"Clothing", "clothing"},
			{"Books", "books"},
			{"Home & Garden", "home-garden"},
		}
		for _, c := range defaults {
			_, err := db.ExecContext(ctx,
				`INSERT INTO categories (name, slug, is_active) VALUES ($1, $2, TRUE)`,
				c[0], c[1])
			if err != nil {
				return fmt.Errorf("seed: insert category %s: %w", c[0], err)
			}
		}
	}

	return nil
}
