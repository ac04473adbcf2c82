package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

const (
	statsCacheTTL      = time.Minute
	recentProductCount = 5
)

// DashboardService aggregates role-scoped stats with a cache-aside layer in
// front of the store.
type DashboardService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	users      ports.UserRepository
	cache      ports.StatsCache
	logger     zerolog.Logger
}

func NewDashboardService(products ports.ProductRepository, categories ports.CategoryRepository, users ports.UserRepository, cache ports.StatsCache, logger zerolog.Logger) *DashboardService {
	return &DashboardService{
		products:   products,
		categories: categories,
		users:      users,
		cache:      cache,
		logger:     logger,
	}
}

func (s *DashboardService) Stats(ctx context.Context, actor *domain.User) (*ports.DashboardStats, error) {
	if actor.Role != domain.RoleSuperAdmin && actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	key := fmt.Sprintf("dashboard:stats:%s:%d", actor.Role, actor.ID)
	if s.cache != nil {
		var cached ports.DashboardStats
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	var (
		stats *ports.DashboardStats
		err   error
	)
	if actor.Role == domain.RoleSuperAdmin {
		stats, err = s.superAdminStats(ctx)
	} else {
		stats, err = s.adminStats(ctx, actor.ID)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stats, statsCacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *DashboardService) superAdminStats(ctx context.Context) (*ports.DashboardStats, error) {
	totalProducts, err := s.products.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	totalCategories, err := s.categories.Count(ctx, false)
	if err != nil {
		return nil, err
	}
	totalAdmins, err := s.users.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.users.CountByRole(ctx, domain.RoleCustomer)
	if err != nil {
		return nil, err
	}
	recent, err := s.products.Recent(ctx, nil, recentProductCount)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalProducts:   &totalProducts,
		TotalCategories: totalCategories,
		TotalAdmins:     &totalAdmins,
		TotalCustomers:  &totalCustomers,
		RecentProducts:  recent,
	}, nil
}

func (s *DashboardService) adminStats(ctx context.Context, adminID int64) (*ports.DashboardStats, error) {
	myProducts, err := s.products.Count(ctx, &adminID)
	if err != nil {
		return nil, err
	}
	totalCategories, err := s.categories.Count(ctx, true)
	if err != nil {
		return nil, err
	}
	recent, err := s.products.Recent(ctx, &adminID, recentProductCount)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		MyProducts:      &myProducts,
		TotalCategories: totalCategories,
		RecentProducts:  recent,
	}, nil
}
