package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type createCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// PublicList lists active categories.
//
// @Summary      List active categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) PublicList(c echo.Context) error {
	categories, err := h.categoryService.PublicList(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, categories, "")
}

// List lists every category, active or not.
//
// @Summary      List categories (management)
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /admin/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, categories, "")
}

// Get returns a single category by id.
//
// @Summary      Get a category
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /admin/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	category, err := h.categoryService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, category, "")
}

// Create creates a category.
//
// @Summary      Create a category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  createCategoryRequest  true  "Category"
// @Success      201  {object}  domain.Category
// @Failure      400  {object}  map[string]string
// @Router       /admin/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, category, "Category created successfully")
}

// Update applies a partial update to a category.
//
// @Summary      Update a category
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int                    true  "Category ID"
// @Param        body  body  updateCategoryRequest  true  "Fields to change"
// @Success      200  {object}  domain.Category
// @Failure      404  {object}  map[string]string
// @Router       /admin/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, domain.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, category, "Category updated successfully")
}

// Delete removes a category; its products keep existing without one.
//
// @Summary      Delete a category
// @Tags         admin-categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Category ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "Category deleted successfully")
}

func categoryID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	return id, nil
}
