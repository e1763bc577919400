package mysql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/serenispa/reservation-system/internal/api/metrics"
	"github.com/serenispa/reservation-system/internal/core/ports"
)

// listSpec describes one filtered list query: the normalized pagination
// parameters, the columns the free-text search matches against, and the
// exact-match clauses. Sort column and order in Query are trusted here:
// Normalize already restricted them to the entity's allow-list, so they are
// never raw client input.
type listSpec struct {
	Query  ports.ListQuery
	Search []string // searchable columns, lowercased LIKE match
	Where  []cond // equality/range filters, ANDed
}

type cond struct {
	expr string
	args []any
}

func where(expr string, args ...any) cond {
	return cond{expr: expr, args: args}
}

// runList executes the count and the bounded, sorted page fetch for spec
// concurrently and returns both. The two reads have no ordering dependency;
// each runs on its own session so the shared filter chain is not mutated.
func runList[T any](ctx context.Context, db *gorm.DB, entity string, spec listSpec) ([]T, int64, error) {
	start := time.Now()

	base := db.WithContext(ctx).Model(new(T))
	for _, c := range spec.Where {
		base = base.Where(c.expr, c.args...)
	}
	if spec.Query.Search != "" && len(spec.Search) > 0 {
		conds := make([]string, len(spec.Search))
		args := make([]any, len(spec.Search))
		needle := "%" + strings.ToLower(spec.Query.Search) + "%"
		for i, col := range spec.Search {
			conds[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = needle
		}
		base = base.Where(strings.Join(conds, " OR "), args...)
	}
	base = base.Session(&gorm.Session{})

	var (
		items []T
		total int64
	)
	errc := make(chan error, 2)
	go func() {
		errc <- base.Count(&total).Error
	}()
	go func() {
		errc <- base.
			Order(fmt.Sprintf("%s %s", spec.Query.SortBy, spec.Query.SortOrder)).
			Limit(spec.Query.Limit).
			Offset(spec.Query.Offset()).
			Find(&items).Error
	}()
	for i := 0; i < 2; i++ {
		if err := <-errc; err != nil {
			return nil, 0, fmt.Errorf("list %s: %w", entity, err)
		}
	}

	metrics.ListQueryDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())
	return items, total, nil
}
