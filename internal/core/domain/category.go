package domain

import "time"

// Category groups products. Deleting a category orphans its products
// (FK with ON DELETE SET NULL), it never cascades.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryUpdate carries a partial update for a category.
type CategoryUpdate struct {
	Name        *string
	Slug        *string
	Description *string
	IsActive    *bool
}

func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Slug == nil && u.Description == nil && u.IsActive == nil
}
