package handler

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

// createProductRequest is bound from the multipart form accompanying the
// optional image upload.
type createProductRequest struct {
	Name            string  `form:"name" validate:"required,min=2,max=255"`
	Description     string  `form:"description"`
	Price           float64 `form:"price" validate:"gte=0"`
	Stock           int     `form:"stock" validate:"gte=0"`
	CategoryID      *int64  `form:"category_id"`
	MetaTitle       string  `form:"meta_title"`
	MetaDescription string  `form:"meta_description"`
	MetaKeywords    string  `form:"meta_keywords"`
}

func (r createProductRequest) toInput() domain.NewProduct {
	return domain.NewProduct{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		Stock:           r.Stock,
		CategoryID:      r.CategoryID,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKeywords:    r.MetaKeywords,
	}
}

// parseProductUpdate builds a partial update from the form: only fields
// present in the request are applied, so an empty string clears a text
// field while an absent one leaves it untouched.
func parseProductUpdate(values url.Values) (domain.ProductUpdate, error) {
	var upd domain.ProductUpdate

	if values.Has("name") {
		name := values.Get("name")
		upd.Name = &name
	}
	if values.Has("description") {
		desc := values.Get("description")
		upd.Description = &desc
	}
	if values.Has("price") {
		price, err := strconv.ParseFloat(values.Get("price"), 64)
		if err != nil || price < 0 {
			return upd, errInvalidField("price")
		}
		upd.Price = &price
	}
	if values.Has("stock") {
		stock, err := strconv.Atoi(values.Get("stock"))
		if err != nil || stock < 0 {
			return upd, errInvalidField("stock")
		}
		upd.Stock = &stock
	}
	if values.Has("category_id") {
		// "0" or empty clears the category reference
		id, err := strconv.ParseInt(values.Get("category_id"), 10, 64)
		if err != nil && values.Get("category_id") != "" {
			return upd, errInvalidField("category_id")
		}
		upd.CategoryID = &id
	}
	if values.Has("meta_title") {
		v := values.Get("meta_title")
		upd.MetaTitle = &v
	}
	if values.Has("meta_description") {
		v := values.Get("meta_description")
		upd.MetaDescription = &v
	}
	if values.Has("meta_keywords") {
		v := values.Get("meta_keywords")
		upd.MetaKeywords = &v
	}
	if values.Has("is_active") {
		active, err := strconv.ParseBool(values.Get("is_active"))
		if err != nil {
			return upd, errInvalidField("is_active")
		}
		upd.IsActive = &active
	}

	return upd, nil
}

func errInvalidField(name string) error {
	return echo.NewHTTPError(400, name+" is invalid")
}

// publicProduct is the narrowed field set served to anonymous callers:
// internal bookkeeping (active flag, creator, timestamps) is omitted.
type publicProduct struct {
	UUID            string  `json:"uuid"`
	Name            string  `json:"name"`
	Slug            string  `json:"slug"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
	ImageURL        string  `json:"image_url,omitempty"`
	MetaTitle       string  `json:"meta_title,omitempty"`
	MetaDescription string  `json:"meta_description,omitempty"`
	CategoryName    string  `json:"category_name,omitempty"`
	CategorySlug    string  `json:"category_slug,omitempty"`
}

func toPublicProduct(p domain.Product) publicProduct {
	out := publicProduct{
		UUID:            p.UUID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		Stock:           p.Stock,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		CategoryName:    p.CategoryName,
		CategorySlug:    p.CategorySlug,
	}
	if p.Image != nil {
		out.ImageURL = p.Image.URL
	}
	return out
}

func toPublicProducts(products []domain.Product) []publicProduct {
	out := make([]publicProduct, 0, len(products))
	for _, p := range products {
		out = append(out, toPublicProduct(p))
	}
	return out
}
