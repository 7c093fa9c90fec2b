package dto

type ProductFilters struct {
	Lang        string
	CategoryID  int64
	IsActive    *bool
	SearchQuery string // name or description search
	SortBy      string // name, price, updated_at
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}
