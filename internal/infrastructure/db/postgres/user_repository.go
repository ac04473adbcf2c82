package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

var userSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

const userColumns = `id, uuid, name, email, password, role, is_active, created_at, updated_at`

// UserRepository is the PostgreSQL implementation of ports.UserRepository.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByUUID(ctx context.Context, uid string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE uuid = $1`, uid)
	return scanUser(row)
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (uuid, name, email, password, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		user.UUID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.User, int, error) {
	b := &condBuilder{}
	if opts.Role != "" {
		b.and("role = ?", opts.Role)
	}
	if opts.ExcludeRole != "" {
		b.and("role <> ?", opts.ExcludeRole)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		b.and("(name ILIKE ? OR email ILIKE ?)", pattern, pattern)
	}

	countQuery := `SELECT COUNT(*) FROM users WHERE ` + b.where()
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, b.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	column, direction := resolveSort(userSortFields, opts.SortBy, opts.SortOrder, "created_at")
	query := fmt.Sprintf(
		`SELECT %s FROM users WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		userColumns, b.where(), column, direction, b.next(), b.next()+1)
	args := append(b.args, opts.Limit, opts.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, uid string, upd domain.UserUpdate) error {
	var sets []string
	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.Role != nil {
		set("role", *upd.Role)
	}
	if upd.IsActive != nil {
		set("is_active", *upd.IsActive)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, uid)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE uuid = $%d`, strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE uuid = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserRow(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.UUID, &u.Name, &u.Email, &u.PasswordHash,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func scanUser(row *sql.Row) (*domain.User, error) {
	u, err := scanUserRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// isUniqueViolation matches the PostgreSQL unique_violation SQLSTATE.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
