package domain

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListOptions are the shared filter/sort/pagination knobs for product and
// user listings. Zero values mean "no filter". OwnerID scopes products to
// their creator; Role/ExcludeRole scope users.
type ListOptions struct {
	Page        int
	Limit       int
	Search      string
	CategoryID  *int64
	Role        string
	ExcludeRole string
	OwnerID     *int64
	MinPrice    *float64
	MaxPrice    *float64
	SortBy      string
	SortOrder   string
	ActiveOnly  bool
}

// Normalize clamps page and limit into their valid ranges.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
}

// Offset returns the row offset for the current page.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Pagination describes one page of a listing result.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes totalPages = ceil(total/limit).
func NewPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: pages}
}
