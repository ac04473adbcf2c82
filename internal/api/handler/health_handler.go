package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	db    *sql.DB
	cache *redis.Client
}

func NewHealthHandler(db *sql.DB, cache *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Live reports process liveness.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Live(c echo.Context) error {
	return respond(c, http.StatusOK, map[string]string{"state": "up"}, "")
}

// Ready reports readiness by pinging the backing stores.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx := c.Request().Context()

	checks := map[string]string{"postgres": "ok", "redis": "ok"}
	healthy := true

	if err := h.db.PingContext(ctx); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}
	} else {
		checks["redis"] = "disabled"
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "error",
			"checks": checks,
		})
	}
	return respond(c, http.StatusOK, checks, "")
}
