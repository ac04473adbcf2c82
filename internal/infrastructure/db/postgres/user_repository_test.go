package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

func newUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db), mock
}

func userRows(users ...domain.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "uuid", "name", "email", "password", "role", "is_active", "created_at", "updated_at",
	})
	for _, u := range users {
		rows.AddRow(u.ID, u.UUID, u.Name, u.Email, u.PasswordHash, u.Role, u.IsActive, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestUserFindByEmail(t *testing.T) {
	repo, mock := newUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("alice@example.com").
		WillReturnRows(userRows(domain.User{
			ID: 1, UUID: "u-1", Name: "Alice", Email: "alice@example.com",
			PasswordHash: "hash", Role: domain.RoleAdmin, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		}))

	user, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "hash", user.PasswordHash, "lookups for authentication include the hash")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmailNotFound(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE lower\(email\) = lower\(\$1\)`).
		WithArgs("nobody@example.com").
		WillReturnRows(userRows())

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateReturnsID(t *testing.T) {
	repo, mock := newUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("u-1", "Alice", "alice@example.com", "hash", domain.RoleCustomer, true, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	user, err := repo.Create(context.Background(), &domain.User{
		UUID: "u-1", Name: "Alice", Email: "alice@example.com",
		PasswordHash: "hash", Role: domain.RoleCustomer, IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.User{Email: "dup@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserListFiltersAndPaginates(t *testing.T) {
	repo, mock := newUserRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role <> \$1 AND \(name ILIKE \$2 OR email ILIKE \$3\)`).
		WithArgs(domain.RoleSuperAdmin, "%bob%", "%bob%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT .+ FROM users WHERE role <> \$1 AND \(name ILIKE \$2 OR email ILIKE \$3\) ORDER BY created_at DESC LIMIT \$4 OFFSET \$5`).
		WithArgs(domain.RoleSuperAdmin, "%bob%", "%bob%", 10, 0).
		WillReturnRows(userRows(domain.User{
			ID: 2, UUID: "u-2", Name: "Bob", Email: "bob@example.com",
			Role: domain.RoleCustomer, IsActive: true, CreatedAt: now, UpdatedAt: now,
		}))

	users, total, err := repo.List(context.Background(), domain.ListOptions{
		Page: 1, Limit: 10, Search: "bob", ExcludeRole: domain.RoleSuperAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "Bob", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateBuildsSetClauseInFieldOrder(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`UPDATE users SET name = \$1, is_active = \$2, updated_at = now\(\) WHERE uuid = \$3`).
		WithArgs("Renamed", false, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	name := "Renamed"
	active := false
	err := repo.Update(context.Background(), "u-1", domain.UserUpdate{Name: &name, IsActive: &active})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateMissingRow(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`UPDATE users SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	name := "Renamed"
	err := repo.Update(context.Background(), "ghost", domain.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateEmptyIsNoop(t *testing.T) {
	repo, mock := newUserRepo(t)

	err := repo.Update(context.Background(), "u-1", domain.UserUpdate{})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDelete(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec(`DELETE FROM users WHERE uuid = \$1`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "u-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCountByRole(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE role = \$1`).
		WithArgs(domain.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountByRole(context.Background(), domain.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
