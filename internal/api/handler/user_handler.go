package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// List lists users, optionally filtered by role. Super admin accounts never
// appear in listings.
//
// @Summary      List users
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size (max 100)"
// @Param        search  query  string  false  "Match against name or email"
// @Param        role    query  string  false  "Filter by role"
// @Success      200  {array}  domain.User
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	opts := listOptions(c)
	opts.Role = c.QueryParam("role")

	users, page, err := h.userService.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, users, page, "")
}

// Admins lists admin accounts.
//
// @Summary      List admins
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /admin/users/admins [get]
func (h *UserHandler) Admins(c echo.Context) error {
	opts := listOptions(c)
	opts.Role = domain.RoleAdmin

	users, page, err := h.userService.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, users, page, "")
}

// Customers lists customer accounts.
//
// @Summary      List customers
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /admin/users/customers [get]
func (h *UserHandler) Customers(c echo.Context) error {
	opts := listOptions(c)
	opts.Role = domain.RoleCustomer

	users, page, err := h.userService.List(c.Request().Context(), opts)
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, users, page, "")
}

// Get returns a single user.
//
// @Summary      Get a user
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "User UUID"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{uuid} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user, "")
}

// Update applies a partial update to a user account.
//
// @Summary      Update a user
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string             true  "User UUID"
// @Param        body  body  updateUserRequest  true  "Fields to change"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{uuid} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.userService.Update(c.Request().Context(), c.Param("uuid"), domain.UserUpdate{
		Name:     req.Name,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user, "User updated successfully")
}

// Promote turns a customer into an admin.
//
// @Summary      Promote a customer to admin
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "User UUID"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{uuid}/promote [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	user, err := h.userService.Promote(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user, "User promoted to admin")
}

// Demote turns an admin back into a customer.
//
// @Summary      Demote an admin to customer
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "User UUID"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{uuid}/demote [patch]
func (h *UserHandler) Demote(c echo.Context) error {
	user, err := h.userService.Demote(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user, "User demoted to customer")
}

// Delete removes a user account.
//
// @Summary      Delete a user
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "User UUID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{uuid} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("uuid")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "User deleted successfully")
}
