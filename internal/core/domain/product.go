package domain

import "time"

// Image describes an uploaded product image. URL is the public path under
// /uploads; the remaining fields keep the original upload metadata.
type Image struct {
	URL          string `json:"url"`
	OriginalName string `json:"original_name,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	Size         int64  `json:"size,omitempty"`
}

// Product is a catalog item. CreatedBy is the admin who created it and is
// immutable after creation.
type Product struct {
	ID              int64     `json:"-"`
	UUID            string    `json:"uuid"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	CategoryID      *int64    `json:"category_id,omitempty"`
	CategoryName    string    `json:"category_name,omitempty"`
	CategorySlug    string    `json:"category_slug,omitempty"`
	CreatedBy       int64     `json:"-"`
	CreatedByName   string    `json:"created_by_name,omitempty"`
	Image           *Image    `json:"image,omitempty"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	MetaKeywords    string    `json:"meta_keywords,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewProduct carries the fields accepted on product creation.
type NewProduct struct {
	Name            string
	Description     string
	Price           float64
	Stock           int
	CategoryID      *int64
	Image           *Image
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
}

// ProductUpdate carries a partial update for a product. Nil fields are left
// untouched. Slug is recomputed by the service when Name is set.
type ProductUpdate struct {
	Name            *string
	Slug            *string
	Description     *string
	Price           *float64
	Stock           *int
	CategoryID      *int64
	Image           *Image
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    *string
	IsActive        *bool
}

// IsEmpty reports whether the update would change nothing.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Slug == nil && u.Description == nil &&
		u.Price == nil && u.Stock == nil && u.CategoryID == nil &&
		u.Image == nil && u.MetaTitle == nil && u.MetaDescription == nil &&
		u.MetaKeywords == nil && u.IsActive == nil
}
