package service

import "github.com/shopcraft/backoffice/internal/core/domain"

// CanManageProduct reports whether actor may mutate or delete a product
// owned by ownerID. Admins act on their own products only; super admins
// pass the ownership check unconditionally.
func CanManageProduct(actor *domain.User, ownerID int64) bool {
	switch actor.Role {
	case domain.RoleSuperAdmin:
		return true
	case domain.RoleAdmin:
		return actor.ID == ownerID
	default:
		return false
	}
}

// CanManageUser reports whether actor may mutate or delete target through
// the user management surface. A super_admin target is untouchable by
// anyone, including another super admin.
func CanManageUser(actor *domain.User, target *domain.User) bool {
	if target.Role == domain.RoleSuperAdmin {
		return false
	}
	return actor.Role == domain.RoleSuperAdmin
}
