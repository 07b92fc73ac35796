package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/bank-bukti-api/internal/dto"
	"github.com/noah-isme/bank-bukti-api/internal/models"
)

const dashboardCachePattern = "dash:*"

type requestStore interface {
	List(ctx context.Context) ([]models.EvidenceRequest, error)
	Revision() uint64
}

type evidenceStore interface {
	List(ctx context.Context) ([]models.EvidenceItem, error)
	Revision() uint64
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL time.Duration
}

// DashboardService composes the fulfillment dashboard from both record stores.
type DashboardService struct {
	requests requestStore
	evidence evidenceStore
	settings warningWindow
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
	cfg      DashboardServiceConfig
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Requests requestStore
	Evidence evidenceStore
	Settings warningWindow
	Cache    *CacheService
	Metrics  *MetricsService
	Logger   *zap.Logger
	Config   DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	cfg := params.Config
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		requests: params.Requests,
		evidence: params.Evidence,
		settings: params.Settings,
		cache:    params.Cache,
		metrics:  params.Metrics,
		logger:   logger,
		now:      time.Now,
		cfg:      cfg,
	}
}

// Stats returns dashboard statistics as of date (zero means today) using warningDays, or the
// configured window when nil. The boolean reports whether the payload came from cache.
func (s *DashboardService) Stats(ctx context.Context, date time.Time, warningDays *int) (*dto.DashboardResponse, bool, error) {
	if date.IsZero() {
		date = s.now()
	}
	window := s.resolveWindow(warningDays)

	// revisions are read before the collections so a concurrent write can only make the key older
	cacheKey := fmt.Sprintf("dash:stats:%d:%d:%d:%s", s.requests.Revision(), s.evidence.Revision(), window, date.Format(models.DateLayout))
	if cached, hit := s.tryCache(ctx, cacheKey); hit {
		s.metrics.ObserveDashboard(cached.Stats)
		return cached, true, nil
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, false, repositoryError(err, "failed to load permintaan")
	}
	evidence, err := s.evidence.List(ctx)
	if err != nil {
		return nil, false, repositoryError(err, "failed to load bukti")
	}

	summary := &dto.DashboardResponse{
		Date:        date.Format(models.DateLayout),
		WarningDays: window,
		Stats:       AggregateStats(requests, evidence, window, date),
	}
	s.metrics.ObserveDashboard(summary.Stats)
	s.persistCache(ctx, cacheKey, summary)
	return summary, false, nil
}

// Deadline classifies a single due date as of date (zero means today).
func (s *DashboardService) Deadline(dueDate string, date time.Time, warningDays *int) dto.DeadlineResponse {
	if date.IsZero() {
		date = s.now()
	}
	window := s.resolveWindow(warningDays)
	return dto.DeadlineResponse{
		DueDate:     dueDate,
		Date:        date.Format(models.DateLayout),
		WarningDays: window,
		Deadline:    ClassifyDueDate(dueDate, window, date),
	}
}

func (s *DashboardService) resolveWindow(override *int) int {
	switch {
	case override != nil:
		return *override
	case s.settings != nil:
		return s.settings.WarningDays()
	default:
		return DefaultWarningDays
	}
}

// tryCache treats lookup failures as misses so a broken cache never blocks the dashboard.
func (s *DashboardService) tryCache(ctx context.Context, key string) (*dto.DashboardResponse, bool) {
	if !s.cache.Enabled() {
		return nil, false
	}
	var cached dto.DashboardResponse
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil || !hit {
		return nil, false
	}
	return &cached, true
}

func (s *DashboardService) persistCache(ctx context.Context, key string, value interface{}) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
