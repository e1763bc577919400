package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/serenispa/reservation-system/internal/core/ports"
)

// SummaryCache abstracts the read-through cache (Redis) for the dashboard
// snapshot. Get returns (nil, nil) on a cache miss.
type SummaryCache interface {
	Get(ctx context.Context) (*ports.DashboardSummary, error)
	Set(ctx context.Context, s *ports.DashboardSummary) error
}

// DashboardSvc serves the admin landing-page snapshot, cached with a short
// TTL so repeated page loads do not hammer the count queries.
type DashboardSvc struct {
	repo   ports.DashboardRepository
	cache  SummaryCache
	logger zerolog.Logger
}

func NewDashboardService(repo ports.DashboardRepository, cache SummaryCache, logger zerolog.Logger) *DashboardSvc {
	return &DashboardSvc{repo: repo, cache: cache, logger: logger}
}

func (s *DashboardSvc) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache read failed, falling back to database")
		} else if cached != nil {
			return cached, nil
		}
	}

	summary, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, summary); err != nil {
			s.logger.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}
	return summary, nil
}
