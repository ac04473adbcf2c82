package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// listOptions parses the shared pagination/filter query parameters. Values
// that fail to parse fall back to their defaults; range clamping happens in
// the service layer.
func listOptions(c echo.Context) domain.ListOptions {
	opts := domain.ListOptions{
		Page:      intParam(c, "page", domain.DefaultPage),
		Limit:     intParam(c, "limit", domain.DefaultLimit),
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			opts.CategoryID = &id
		}
	}
	if raw := c.QueryParam("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			opts.MinPrice = &v
		}
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			opts.MaxPrice = &v
		}
	}

	return opts
}

func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
