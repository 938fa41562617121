package services

import (
	"context"
	"sync"
	"time"

	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/redis/go-redis/v9"
)

// HealthService checks the dependencies the request pipeline needs: Postgres
// for persistence and Redis for rate limiting. Redis being down degrades the
// service (limits fail open) but does not make it unhealthy.
type HealthService struct {
	db      store.DB
	redis   redis.Cmdable
	version string

	mu        sync.RWMutex
	lastCheck *types.HealthCheck
}

func NewHealthService(db store.DB, redisClient redis.Cmdable, version string) *HealthService {
	return &HealthService{
		db:      db,
		redis:   redisClient,
		version: version,
	}
}

// CheckHealth pings both dependencies concurrently and caches the result for
// readiness probes.
func (s *HealthService) CheckHealth(ctx context.Context) *types.HealthCheck {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	check := &types.HealthCheck{
		Status:     types.HealthStatusUp,
		Components: make(map[string]types.HealthComponent),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Version:    s.version,
	}

	var wg sync.WaitGroup
	var dbHealth, redisHealth types.HealthComponent

	wg.Add(2)
	go func() {
		defer wg.Done()
		dbHealth = s.checkDatabase(checkCtx)
	}()
	go func() {
		defer wg.Done()
		redisHealth = s.checkRedis(checkCtx)
	}()
	wg.Wait()

	check.Components["database"] = dbHealth
	check.Components["redis"] = redisHealth

	if dbHealth.Status == types.HealthStatusDown {
		check.Status = types.HealthStatusDown
	} else if redisHealth.Status == types.HealthStatusDown {
		check.Status = types.HealthStatusDegraded
	}

	s.mu.Lock()
	s.lastCheck = check
	s.mu.Unlock()

	return check
}

// LastCheck returns the most recent health result, or nil before the first
// check has run.
func (s *HealthService) LastCheck() *types.HealthCheck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCheck
}

func (s *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	start := time.Now()
	if err := s.db.Ping(ctx); err != nil {
		logger.GetLogger().Errorw("Database health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: err.Error(),
		}
	}
	return types.HealthComponent{
		Status:    types.HealthStatusUp,
		LatencyMS: time.Since(start).Milliseconds(),
	}
}

func (s *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	start := time.Now()
	if err := s.redis.Ping(ctx).Err(); err != nil {
		logger.GetLogger().Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: err.Error(),
		}
	}
	return types.HealthComponent{
		Status:    types.HealthStatusUp,
		LatencyMS: time.Since(start).Milliseconds(),
	}
}
