package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// envelope is the canonical success response shape.
type envelope struct {
	Status     string             `json:"status"`
	Message    string             `json:"message,omitempty"`
	Data       any                `json:"data,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func respond(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, envelope{Status: "success", Message: message, Data: data})
}

func respondPage(c echo.Context, code int, data any, p domain.Pagination, message string) error {
	return c.JSON(code, envelope{Status: "success", Message: message, Data: data, Pagination: &p})
}
