package domain

import "time"

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleCustomer   = "customer"
)

// User models an account in the back office. The numeric ID is the storage
// key and never leaves the API; UUID is the public identifier.
type User struct {
	ID           int64     `json:"-"`
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleAdmin || role == RoleCustomer
}

// UserUpdate carries a partial update for a user. Nil fields are left
// untouched by the repository.
type UserUpdate struct {
	Name     *string
	Role     *string
	IsActive *bool
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Role == nil && u.IsActive == nil
}
