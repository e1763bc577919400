package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/core/ports"
)

type stubDashboardRepo struct {
	summary *ports.DashboardSummary
	calls   int
	err     error
}

func (r *stubDashboardRepo) Summary(_ context.Context) (*ports.DashboardSummary, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.summary, nil
}

type stubSummaryCache struct {
	stored *ports.DashboardSummary
	getErr error
	setErr error
	sets   int
}

func (c *stubSummaryCache) Get(_ context.Context) (*ports.DashboardSummary, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.stored, nil
}

func (c *stubSummaryCache) Set(_ context.Context, s *ports.DashboardSummary) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.stored = s
	return nil
}

func TestDashboardCacheMissPopulates(t *testing.T) {
	repo := &stubDashboardRepo{summary: &ports.DashboardSummary{ActiveRooms: 4}}
	cache := &stubSummaryCache{}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.ActiveRooms != 4 {
		t.Fatalf("unexpected summary: %+v", got)
	}
	if repo.calls != 1 || cache.sets != 1 {
		t.Fatalf("calls=%d sets=%d, want 1/1", repo.calls, cache.sets)
	}
}

func TestDashboardCacheHitSkipsRepo(t *testing.T) {
	repo := &stubDashboardRepo{summary: &ports.DashboardSummary{ActiveRooms: 4}}
	cache := &stubSummaryCache{stored: &ports.DashboardSummary{ActiveRooms: 7}}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.ActiveRooms != 7 {
		t.Fatalf("expected cached summary, got %+v", got)
	}
	if repo.calls != 0 {
		t.Fatalf("repo should not be queried on a cache hit")
	}
}

func TestDashboardCacheFailureFallsBack(t *testing.T) {
	repo := &stubDashboardRepo{summary: &ports.DashboardSummary{ActiveRooms: 4}}
	cache := &stubSummaryCache{getErr: errors.New("redis down"), setErr: errors.New("redis down")}
	svc := NewDashboardService(repo, cache, zerolog.Nop())

	got, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.ActiveRooms != 4 || repo.calls != 1 {
		t.Fatalf("fallback failed: %+v calls=%d", got, repo.calls)
	}
}

func TestDashboardNilCache(t *testing.T) {
	repo := &stubDashboardRepo{summary: &ports.DashboardSummary{ActiveGuests: 12}}
	svc := NewDashboardService(repo, nil, zerolog.Nop())

	got, err := svc.Summary(context.Background())
	if err != nil || got.ActiveGuests != 12 {
		t.Fatalf("got %+v, %v", got, err)
	}
}
