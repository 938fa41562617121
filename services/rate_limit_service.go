package services

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiterInterface defines the contract for rate limiting operations.
// Keys must be namespaced by purpose and identity (e.g. "contact_form:<ip>")
// so limits stay independent per form and per submitter.
type RateLimiterInterface interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

// slidingWindowScript keeps a ZSET of submission timestamps per key and
// performs the check-and-record atomically: expired entries are dropped, and
// a key already holding `limit` in-window entries is rejected without
// recording. Atomicity matters because two concurrent submissions from the
// same IP must not both pass a limit that should block the second.
const slidingWindowScript = `
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
if redis.call('ZCARD', KEYS[1]) >= tonumber(ARGV[2]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`

// RateLimitService provides sliding-window rate limiting backed by Redis.
// It implements RateLimiterInterface.
type RateLimitService struct {
	redis     redis.Cmdable
	keyPrefix string
	now       func() time.Time
}

// NewRateLimitService creates a rate limit service on the given Redis client.
func NewRateLimitService(client redis.Cmdable) *RateLimitService {
	return &RateLimitService{
		redis:     client,
		keyPrefix: "rate_limit:",
		now:       time.Now,
	}
}

// CheckLimit reports whether another event is allowed for key within the
// window. When allowed, the event is recorded; when rejected, nothing is
// recorded and the returned duration approximates how long the caller must
// wait before the earliest in-window event expires.
func (s *RateLimitService) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	rKey := s.keyPrefix + key
	now := s.now()

	allowed, err := s.redis.Eval(ctx, slidingWindowScript,
		[]string{rKey},
		now.Add(-window).UnixMilli(),
		limit,
		now.UnixMilli(),
		strconv.FormatInt(now.UnixNano(), 10),
		window.Milliseconds(),
	).Int64()
	if err != nil {
		return false, 0, err
	}

	if allowed == 0 {
		ttl, err := s.redis.PTTL(ctx, rKey).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
