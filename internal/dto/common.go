package dto

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListFilters is the filter portion of a list query; it is echoed back in
// the response meta.
type ListFilters struct {
	Search      string     `form:"search" json:"search,omitempty"`
	IsActive    *bool      `form:"is_active" json:"is_active,omitempty"`
	CreatedFrom *time.Time `form:"created_from" time_format:"2006-01-02T15:04:05Z07:00" json:"created_from,omitempty"`
	CreatedTo   *time.Time `form:"created_to" time_format:"2006-01-02T15:04:05Z07:00" json:"created_to,omitempty"`
	PositionMin *int       `form:"position_min" json:"position_min,omitempty"`
	PositionMax *int       `form:"position_max" json:"position_max,omitempty"`
}

type ListQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1" json:"page"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100" json:"limit"`
	ListFilters

	SortBy    string `form:"sort_by" binding:"omitempty,oneof=position name created_at updated_at" json:"sort_by,omitempty"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc" json:"sort_order,omitempty"`
}

// Normalize fills pagination defaults in place.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
}

// Offset returns the number of rows to skip.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Meta struct {
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Total   int64       `json:"total"`
	Pages   int         `json:"pages"`
	HasNext bool        `json:"has_next"`
	HasPrev bool        `json:"has_prev"`
	Filters ListFilters `json:"filters"`
}

// NewMeta derives pagination metadata from a query and total row count.
func NewMeta(q ListQuery, total int64) Meta {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Meta{
		Page:    q.Page,
		Limit:   q.Limit,
		Total:   total,
		Pages:   pages,
		HasNext: int64(q.Page*q.Limit) < total,
		HasPrev: q.Page > 1,
		Filters: q.ListFilters,
	}
}

// Paginated is the {data, meta} envelope every list endpoint returns.
type Paginated[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}
