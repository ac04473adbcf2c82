package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/api/metrics"
	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

type ProductHandler struct {
	productService ports.ProductService
	images         ports.ImageStore
}

func NewProductHandler(productService ports.ProductService, images ports.ImageStore) *ProductHandler {
	return &ProductHandler{productService: productService, images: images}
}

// PublicList lists active products for the storefront.
//
// @Summary      List active products
// @Tags         products
// @Produce      json
// @Param        page        query  int     false  "Page number"
// @Param        limit       query  int     false  "Page size (max 100)"
// @Param        search      query  string  false  "Full-text search"
// @Param        category_id query  int     false  "Filter by category"
// @Param        min_price   query  number  false  "Minimum price"
// @Param        max_price   query  number  false  "Maximum price"
// @Param        sort_by     query  string  false  "name, price or created_at"
// @Param        sort_order  query  string  false  "asc or desc"
// @Success      200  {array}  publicProduct
// @Router       /products [get]
func (h *ProductHandler) PublicList(c echo.Context) error {
	products, page, err := h.productService.PublicList(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, toPublicProducts(products), page, "")
}

// PublicGet returns a single active product by slug.
//
// @Summary      Get a product by slug
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Product slug"
// @Success      200  {object}  publicProduct
// @Failure      404  {object}  map[string]string
// @Router       /products/{slug} [get]
func (h *ProductHandler) PublicGet(c echo.Context) error {
	product, err := h.productService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, toPublicProduct(*product), "")
}

// List returns the management view of products, scoped to the caller's role.
//
// @Summary      List products (management)
// @Tags         admin-products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Product
// @Failure      403  {object}  map[string]string
// @Router       /admin/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	products, page, err := h.productService.List(c.Request().Context(), user, listOptions(c))
	if err != nil {
		return err
	}
	return respondPage(c, http.StatusOK, products, page, "")
}

// Get returns a single product in the management view.
//
// @Summary      Get a product (management)
// @Tags         admin-products
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "Product UUID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /admin/products/{uuid} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	product, err := h.productService.GetByUUID(c.Request().Context(), user, c.Param("uuid"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, product, "")
}

// Create creates a product from a multipart form with an optional image.
//
// @Summary      Create a product
// @Tags         admin-products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name   formData  string  true   "Product name"
// @Param        price  formData  number  true   "Price"
// @Param        stock  formData  int     false  "Stock"
// @Param        image  formData  file    false  "Product image"
// @Success      201  {object}  domain.Product
// @Failure      400  {object}  map[string]string
// @Router       /admin/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := req.toInput()

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}
	input.Image = image

	product, err := h.productService.Create(c.Request().Context(), user, input)
	if err != nil {
		// the product never made it in, so the upload is orphaned
		h.discardImage(c, image)
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, product, "Product created successfully")
}

// Update applies a partial update; fields absent from the form are untouched.
//
// @Summary      Update a product
// @Tags         admin-products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "Product UUID"
// @Success      200  {object}  domain.Product
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/products/{uuid} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	upd, err := parseProductUpdate(values)
	if err != nil {
		return err
	}

	image, err := h.saveImage(c)
	if err != nil {
		return err
	}
	upd.Image = image

	product, err := h.productService.Update(c.Request().Context(), user, c.Param("uuid"), upd)
	if err != nil {
		h.discardImage(c, image)
		return err
	}
	return respond(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a product and its stored image.
//
// @Summary      Delete a product
// @Tags         admin-products
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "Product UUID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/products/{uuid} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), user, c.Param("uuid")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil, "Product deleted successfully")
}

// saveImage persists the "image" form file when one was sent. A missing file
// is not an error.
func (h *ProductHandler) saveImage(c echo.Context) (*domain.Image, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	image, err := h.images.Save(c.Request().Context(), file)
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.ImageUploadsTotal.WithLabelValues("success").Inc()
	return image, nil
}

func (h *ProductHandler) discardImage(c echo.Context, image *domain.Image) {
	if image == nil {
		return
	}
	_ = h.images.Remove(c.Request().Context(), image.URL)
}
