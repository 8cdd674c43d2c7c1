package pagination

import "gorm.io/gorm"

// DefaultPageSize applies when page_size is omitted.
const DefaultPageSize = 50

// PageRequest is bound from the page and page_size query parameters.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// Defaults fills in page 1 and DefaultPageSize for omitted values.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
}

// Offset is the number of rows before the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// InsertionOrder returns a GORM scope selecting the current page of rows
// ordered by primary key, which is the order they were saved in.
func (p PageRequest) InsertionOrder() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Offset(p.Offset()).Limit(p.PageSize)
	}
}

// PageResponse is one page of items plus the counts a client needs to page
// through the rest.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// NewPageResponse builds a PageResponse. Data is never serialised as null.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	var totalPages int
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// PageSlice pages an in-memory slice that has already been loaded and
// filtered.
func PageSlice[T any](items []T, req PageRequest) PageResponse[T] {
	req.Defaults()
	start := min(req.Offset(), len(items))
	end := min(start+req.PageSize, len(items))
	return NewPageResponse(items[start:end], req.Page, req.PageSize, int64(len(items)))
}
