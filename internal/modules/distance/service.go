// README: Distance resolver; ordered strategy chain over live API, static table and a constant estimate.
package distance

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LiveEstimator is the live routing tier. Implemented by maps.DistanceService.
type LiveEstimator interface {
	Driving(ctx context.Context, origin, destination string) (meters int, duration time.Duration, err error)
}

type Service struct {
	live        LiveEstimator // nil when no API key is configured
	cache       *redis.Client // nil disables caching
	cacheTTL    time.Duration
	liveTimeout time.Duration
	log         *zap.Logger
}

func NewService(live LiveEstimator, cache *redis.Client, liveTimeout, cacheTTL time.Duration, log *zap.Logger) *Service {
	if liveTimeout <= 0 {
		liveTimeout = 4 * time.Second
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Service{live: live, cache: cache, cacheTTL: cacheTTL, liveTimeout: liveTimeout, log: log}
}

type strategy func(ctx context.Context, origin, destination string) (Result, bool)

// Resolve never fails: it walks the tiers in order and stops at the first
// one that produces a result, ending at the constant estimate.
func (s *Service) Resolve(ctx context.Context, origin, destination string) Result {
	for _, try := range []strategy{s.fromCache, s.fromLive, s.fromTable} {
		if r, ok := try(ctx, origin, destination); ok {
			return r
		}
	}
	s.log.Warn("no distance data for route, using conservative estimate",
		zap.String("from", origin), zap.String("to", destination))
	return Result{
		DistanceKm:      fallbackDistanceKm,
		DurationMinutes: fallbackDurationMinutes,
		Source:          SourceFallback,
		Estimated:       true,
		Warning:         fallbackWarning,
	}
}

func (s *Service) fromCache(ctx context.Context, origin, destination string) (Result, bool) {
	if s.cache == nil {
		return Result{}, false
	}
	raw, err := s.cache.Get(ctx, cacheKey(origin, destination)).Bytes()
	if err != nil {
		return Result{}, false
	}
	var r Result
	if err := json.Unmarshal(raw, &r); err != nil || r.DistanceKm <= 0 {
		return Result{}, false
	}
	return r, true
}

func (s *Service) fromLive(ctx context.Context, origin, destination string) (Result, bool) {
	if s.live == nil {
		return Result{}, false
	}
	ctx, cancel := context.WithTimeout(ctx, s.liveTimeout)
	defer cancel()

	meters, dur, err := s.live.Driving(ctx, origin, destination)
	if err != nil {
		s.log.Warn("live distance lookup failed, falling back",
			zap.String("from", origin), zap.String("to", destination), zap.Error(err))
		return Result{}, false
	}
	r := Result{
		DistanceKm:      roundHalfUp(float64(meters) / 1000.0),
		DurationMinutes: roundHalfUp(dur.Seconds() / 60.0),
		Source:          SourceLiveService,
		Estimated:       false,
	}
	if r.DistanceKm <= 0 {
		return Result{}, false
	}
	s.storeCache(ctx, origin, destination, r)
	return r, true
}

func (s *Service) fromTable(_ context.Context, origin, destination string) (Result, bool) {
	km, ok := tableLookup(origin, destination)
	if !ok {
		return Result{}, false
	}
	// Duration heuristic carried over from the table's provenance: one
	// minute per kilometer.
	return Result{
		DistanceKm:      km,
		DurationMinutes: km,
		Source:          SourceStaticTable,
		Estimated:       true,
	}, true
}

func (s *Service) storeCache(ctx context.Context, origin, destination string, r Result) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(origin, destination), raw, s.cacheTTL).Err(); err != nil {
		s.log.Debug("distance cache write failed", zap.Error(err))
	}
}

func cacheKey(origin, destination string) string {
	return "distance:" + pairKey(NormalizeCity(origin), NormalizeCity(destination))
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
