package ports

import (
	"context"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// DashboardStats is the aggregation returned by /dashboard/stats. Pointer
// fields are omitted for roles they don't apply to.
type DashboardStats struct {
	TotalProducts   *int             `json:"totalProducts,omitempty"`
	TotalCategories int              `json:"totalCategories"`
	TotalAdmins     *int             `json:"totalAdmins,omitempty"`
	TotalCustomers  *int             `json:"totalCustomers,omitempty"`
	MyProducts      *int             `json:"myProducts,omitempty"`
	RecentProducts  []domain.Product `json:"recentProducts"`
}

type DashboardService interface {
	Stats(ctx context.Context, actor *domain.User) (*DashboardStats, error)
}
