package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

func newUserService(repo *memUserRepo, sessions *memTokenRepo) *UserService {
	return NewUserService(repo, sessions, zerolog.Nop())
}

func seedRoleUser(repo *memUserRepo, uuid, role string) *domain.User {
	user, _ := repo.Create(context.Background(), &domain.User{
		UUID:     uuid,
		Name:     "Someone",
		Email:    uuid + "@example.com",
		Role:     role,
		IsActive: true,
	})
	return user
}

func TestListExcludesSuperAdminsByDefault(t *testing.T) {
	repo := &memUserRepo{}
	svc := newUserService(repo, newMemTokenRepo())

	if _, _, err := svc.List(context.Background(), domain.ListOptions{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastList.ExcludeRole != domain.RoleSuperAdmin {
		t.Errorf("exclude role = %q, want super_admin", repo.lastList.ExcludeRole)
	}

	if _, _, err := svc.List(context.Background(), domain.ListOptions{Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastList.ExcludeRole != "" {
		t.Errorf("exclude role = %q, want empty when a role filter is set", repo.lastList.ExcludeRole)
	}
}

func TestGetRefusesSuperAdminTarget(t *testing.T) {
	repo := &memUserRepo{}
	seedRoleUser(repo, "root-uuid", domain.RoleSuperAdmin)
	svc := newUserService(repo, newMemTokenRepo())

	if _, err := svc.Get(context.Background(), "root-uuid"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
}

func TestUpdateRefusesSuperAdminTarget(t *testing.T) {
	repo := &memUserRepo{}
	seedRoleUser(repo, "root-uuid", domain.RoleSuperAdmin)
	svc := newUserService(repo, newMemTokenRepo())

	name := "Renamed"
	if _, err := svc.Update(context.Background(), "root-uuid", domain.UserUpdate{Name: &name}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if len(repo.updates) != 0 {
		t.Error("expected no repository update")
	}
}

func TestUpdateDropsInvalidRole(t *testing.T) {
	repo := &memUserRepo{}
	seedRoleUser(repo, "c-uuid", domain.RoleCustomer)
	svc := newUserService(repo, newMemTokenRepo())

	// An attempted escalation to super_admin is silently discarded; with no
	// other field set the update becomes a no-op.
	role := domain.RoleSuperAdmin
	user, err := svc.Update(context.Background(), "c-uuid", domain.UserUpdate{Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(repo.updates) != 0 {
		t.Error("expected the invalid role change to be dropped before the repository")
	}
	if user.Role != domain.RoleCustomer {
		t.Errorf("role = %q, want customer", user.Role)
	}
}

func TestUpdateDeactivationRevokesSessions(t *testing.T) {
	repo := &memUserRepo{}
	target := seedRoleUser(repo, "c-uuid", domain.RoleCustomer)
	sessions := newMemTokenRepo()
	svc := newUserService(repo, sessions)

	inactive := false
	if _, err := svc.Update(context.Background(), "c-uuid", domain.UserUpdate{IsActive: &inactive}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != target.ID {
		t.Errorf("revoked = %v, want [%d]", sessions.revoked, target.ID)
	}
}

func TestUpdateReactivationKeepsSessions(t *testing.T) {
	repo := &memUserRepo{}
	seedRoleUser(repo, "c-uuid", domain.RoleCustomer)
	sessions := newMemTokenRepo()
	svc := newUserService(repo, sessions)

	active := true
	if _, err := svc.Update(context.Background(), "c-uuid", domain.UserUpdate{IsActive: &active}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(sessions.revoked) != 0 {
		t.Error("activation must not revoke sessions")
	}
}

func TestPromoteRequiresCustomer(t *testing.T) {
	repo := &memUserRepo{}
	seedRoleUser(repo, "c-uuid", domain.RoleCustomer)
	seedRoleUser(repo, "a-uuid", domain.RoleAdmin)
	svc := newUserService(repo, newMemTokenRepo())

	user, err := svc.Promote(context.Background(), "c-uuid")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want admin", user.Role)
	}

	if _, err := svc.Promote(context.Background(), "a-uuid"); !errors.Is(err, domain.ErrNotACustomer) {
		t.Fatalf("promoting an admin: got %v, want ErrNotACustomer", err)
	}
}

func TestDemoteRequiresAdmin(t *testing.T) {
	repo := &memUserRepo{}
	seedRoleUser(repo, "a-uuid", domain.RoleAdmin)
	seedRoleUser(repo, "c-uuid", domain.RoleCustomer)
	svc := newUserService(repo, newMemTokenRepo())

	user, err := svc.Demote(context.Background(), "a-uuid")
	if err != nil {
		t.Fatalf("demote: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Errorf("role = %q, want customer", user.Role)
	}

	if _, err := svc.Demote(context.Background(), "c-uuid"); !errors.Is(err, domain.ErrNotAnAdmin) {
		t.Fatalf("demoting a customer: got %v, want ErrNotAnAdmin", err)
	}
}

func TestDeleteRefusesSuperAdminTarget(t *testing.T) {
	repo := &memUserRepo{}
	seedRoleUser(repo, "root-uuid", domain.RoleSuperAdmin)
	seedRoleUser(repo, "c-uuid", domain.RoleCustomer)
	svc := newUserService(repo, newMemTokenRepo())

	if err := svc.Delete(context.Background(), "root-uuid"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), "c-uuid"); err != nil {
		t.Fatalf("deleting a customer: %v", err)
	}
}

func TestDeleteUnknownUser(t *testing.T) {
	svc := newUserService(&memUserRepo{}, newMemTokenRepo())

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}
