package ports

import (
	"errors"
	"testing"

	"github.com/serenispa/reservation-system/internal/core/domain"
)

var testDefaults = ListDefaults{
	Limit:  20,
	SortBy: "name",
	SortFields: map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	},
}

func TestNormalizeDefaults(t *testing.T) {
	q := ListQuery{}
	if err := q.Normalize(testDefaults); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Page != 1 || q.Limit != 20 {
		t.Fatalf("got page=%d limit=%d, want 1/20", q.Page, q.Limit)
	}
	if q.SortBy != "name" || q.SortOrder != SortAsc {
		t.Fatalf("got sort %s %s, want name asc", q.SortBy, q.SortOrder)
	}
	if q.Offset() != 0 {
		t.Fatalf("offset = %d, want 0", q.Offset())
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		q    ListQuery
	}{
		{"negative page", ListQuery{Page: -1}},
		{"negative limit", ListQuery{Limit: -5}},
		{"unknown sort field", ListQuery{SortBy: "password_hash"}},
		{"injection attempt", ListQuery{SortBy: "name; DROP TABLE guests"}},
		{"bad sort order", ListQuery{SortOrder: "sideways"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.q.Normalize(testDefaults)
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNormalizeCapsLimit(t *testing.T) {
	q := ListQuery{Limit: 5000}
	if err := q.Normalize(testDefaults); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Limit != 100 {
		t.Fatalf("limit = %d, want 100", q.Limit)
	}
}

func TestNormalizeMapsSortColumn(t *testing.T) {
	q := ListQuery{SortBy: "createdAt", SortOrder: "DESC", Page: 3, Limit: 10}
	if err := q.Normalize(testDefaults); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.SortBy != "created_at" || q.SortOrder != SortDesc {
		t.Fatalf("got %s %s, want created_at desc", q.SortBy, q.SortOrder)
	}
	if q.Offset() != 20 {
		t.Fatalf("offset = %d, want 20", q.Offset())
	}
}

func TestNewPagination(t *testing.T) {
	cases := []struct {
		total     int64
		limit     int
		wantPages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 20, 5},
	}
	for _, c := range cases {
		p := NewPagination(ListQuery{Page: 1, Limit: c.limit}, c.total)
		if p.TotalPages != c.wantPages {
			t.Errorf("total=%d limit=%d: totalPages = %d, want %d",
				c.total, c.limit, p.TotalPages, c.wantPages)
		}
	}
}

func TestNewPageNeverNil(t *testing.T) {
	p := NewPage[int](nil, ListQuery{Page: 1, Limit: 10}, 0)
	if p.Items == nil || len(p.Items) != 0 {
		t.Fatalf("items should be an empty non-nil slice")
	}
	if p.Pagination.Total != 0 || p.Pagination.TotalPages != 0 {
		t.Fatalf("unexpected pagination: %+v", p.Pagination)
	}
}
