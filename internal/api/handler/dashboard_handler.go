package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/ports"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns role-scoped dashboard aggregates.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  map[string]string
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	stats, err := h.dashboardService.Stats(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, stats, "")
}
