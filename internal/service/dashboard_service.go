package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/scholar-hours-api/internal/dto"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	appErrors "github.com/noah-isme/scholar-hours-api/pkg/errors"
)

type dashboardScholarStore interface {
	Count(ctx context.Context) (int, error)
}

type dashboardActivityStore interface {
	ListInWindow(ctx context.Context, start, end time.Time) ([]models.Activity, error)
}

// DashboardService aggregates program-wide counters for the admin dashboard.
type DashboardService struct {
	scholars   dashboardScholarStore
	activities dashboardActivityStore
	cache      *CacheService
	logger     *zap.Logger
	loc        *time.Location
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(scholars dashboardScholarStore, activities dashboardActivityStore, cache *CacheService, logger *zap.Logger, loc *time.Location, cacheTTL time.Duration) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &DashboardService{
		scholars:   scholars,
		activities: activities,
		cache:      cache,
		logger:     logger,
		loc:        loc,
		cacheTTL:   cacheTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Stats returns the current-month dashboard counters. The payload is cached
// briefly since every admin page load requests it.
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	if s.cache != nil {
		var cached dto.DashboardStats
		if hit, _ := s.cache.Get(ctx, dashboardCacheKey, &cached); hit {
			return &cached, nil
		}
	}

	total, err := s.scholars.Count(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count scholars")
	}
	start, end := currentMonthWindow(s.now().In(s.loc))
	monthActivities, err := s.activities.ListInWindow(ctx, start, end)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load month activities")
	}

	stats := BuildDashboardStats(total, monthActivities)
	if s.cache != nil {
		_ = s.cache.Set(ctx, dashboardCacheKey, stats, s.cacheTTL)
	}
	return &stats, nil
}
