package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

// UserService implements the super-admin user management surface. Routing
// already restricts these operations to super admins; the service still
// refuses super_admin targets unconditionally.
type UserService struct {
	repo     ports.UserRepository
	sessions ports.TokenRepository
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, sessions ports.TokenRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, sessions: sessions, logger: logger}
}

// List never returns super_admin accounts unless explicitly filtered to a
// single non-protected role.
func (s *UserService) List(ctx context.Context, opts domain.ListOptions) ([]domain.User, domain.Pagination, error) {
	opts.Normalize()
	if opts.Role == "" {
		opts.ExcludeRole = domain.RoleSuperAdmin
	}

	users, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return users, domain.NewPagination(total, opts.Page, opts.Limit), nil
}

func (s *UserService) Get(ctx context.Context, uuid string) (*domain.User, error) {
	user, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if user.Role == domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// Update changes name, role and/or active flag. Deactivation revokes every
// live refresh session of the target.
func (s *UserService) Update(ctx context.Context, uuid string, upd domain.UserUpdate) (*domain.User, error) {
	existing, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if existing.Role == domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if upd.Role != nil && *upd.Role != domain.RoleAdmin && *upd.Role != domain.RoleCustomer {
		upd.Role = nil
	}

	if !upd.IsEmpty() {
		if err := s.repo.Update(ctx, uuid, upd); err != nil {
			return nil, err
		}
	}

	if upd.IsActive != nil && !*upd.IsActive {
		if err := s.sessions.DeleteAllForUser(ctx, existing.ID); err != nil {
			s.logger.Warn().Err(err).Str("uuid", uuid).Msg("failed to revoke sessions of deactivated user")
		}
	}

	return s.repo.FindByUUID(ctx, uuid)
}

func (s *UserService) Promote(ctx context.Context, uuid string) (*domain.User, error) {
	user, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleCustomer {
		return nil, domain.ErrNotACustomer
	}

	role := domain.RoleAdmin
	if err := s.repo.Update(ctx, uuid, domain.UserUpdate{Role: &role}); err != nil {
		return nil, err
	}
	s.logger.Info().Str("uuid", uuid).Msg("customer promoted to admin")
	return s.repo.FindByUUID(ctx, uuid)
}

func (s *UserService) Demote(ctx context.Context, uuid string) (*domain.User, error) {
	user, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleAdmin {
		return nil, domain.ErrNotAnAdmin
	}

	role := domain.RoleCustomer
	if err := s.repo.Update(ctx, uuid, domain.UserUpdate{Role: &role}); err != nil {
		return nil, err
	}
	s.logger.Info().Str("uuid", uuid).Msg("admin demoted to customer")
	return s.repo.FindByUUID(ctx, uuid)
}

func (s *UserService) Delete(ctx context.Context, uuid string) error {
	user, err := s.repo.FindByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleSuperAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, uuid); err != nil {
		return err
	}
	s.logger.Info().Str("uuid", uuid).Str("role", user.Role).Msg("user deleted")
	return nil
}
