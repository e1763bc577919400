package ports

import (
	"fmt"
	"strings"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

// maxLimit is the hard upper bound for page size across all entities.
const maxLimit = 100

// SortOrder values accepted by ListQuery.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListQuery carries the pagination/search/sort parameters shared by every
// list endpoint. Entity-specific equality filters embed it.
type ListQuery struct {
	Page      int    // 1-based; 0 means "use default"
	Limit     int    // max rows per page; 0 means "use default", capped at maxLimit
	Search    string // optional case-insensitive substring match
	SortBy    string // must be on the entity's allow-list
	SortOrder string // "asc" (default) or "desc"
}

// ListDefaults is the per-entity configuration a ListQuery is normalized
// against: default page size, default sort column, and the sort allow-list.
// SortFields maps the client-facing name to the database column.
type ListDefaults struct {
	Limit      int
	SortBy     string
	SortFields map[string]string
}

// Normalize validates q in place against d.
//
// Negative page or limit is rejected with ErrInvalidArgument, as is a sort
// field outside the allow-list; a zero page/limit means "not supplied" and
// takes the default, and limit is capped at maxLimit. SortBy is rewritten
// to the mapped column.
func (q *ListQuery) Normalize(d ListDefaults) error {
	if q.Page < 0 {
		return fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidArgument)
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 1", domain.ErrInvalidArgument)
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = d.Limit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}

	if q.SortBy == "" {
		q.SortBy = d.SortBy
	}
	col, ok := d.SortFields[q.SortBy]
	if !ok {
		return fmt.Errorf("%w: unknown sort field %q", domain.ErrInvalidArgument, q.SortBy)
	}
	q.SortBy = col

	switch strings.ToLower(q.SortOrder) {
	case "", SortAsc:
		q.SortOrder = SortAsc
	case SortDesc:
		q.SortOrder = SortDesc
	default:
		return fmt.Errorf("%w: sort order must be asc or desc", domain.ErrInvalidArgument)
	}

	q.Search = strings.TrimSpace(q.Search)
	return nil
}

// Offset returns the row offset for the normalized query.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the metadata block returned alongside every list result.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination computes pagination metadata; TotalPages is
// ceil(total/limit), 0 when total is 0.
func NewPagination(q ListQuery, total int64) Pagination {
	pages := 0
	if total > 0 {
		pages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return Pagination{Page: q.Page, Limit: q.Limit, Total: total, TotalPages: pages}
}

// Page bundles one page of records with its pagination metadata.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// NewPage builds a Page from a fetched slice and total count.
func NewPage[T any](items []T, q ListQuery, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Items: items, Pagination: NewPagination(q, total)}
}
