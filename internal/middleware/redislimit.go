package middleware

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "passgen:ratelimit:"

// minRedisMajor is the first Redis release accepting EXPIRE ... NX.
const minRedisMajor = 7

var ErrRedisTooOld = errors.New("redis server does not support EXPIRE NX")

// RedisLimiter counts requests per key in fixed one-minute windows shared by
// every instance pointing at the same Redis.
type RedisLimiter struct {
	rdb               *redis.Client
	requestsPerMinute int
	burst             int
	now               func() time.Time
}

// NewRedisLimiter creates a RedisLimiter allowing requestsPerMinute+burst
// requests per window. The server must run Redis 7 or later; use
// CheckRedisVersion before handing the client over.
func NewRedisLimiter(rdb *redis.Client, requestsPerMinute, burst int) *RedisLimiter {
	return &RedisLimiter{
		rdb:               rdb,
		requestsPerMinute: requestsPerMinute,
		burst:             burst,
		now:               time.Now,
	}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := windowKey(key, l.now())

	pipe := l.rdb.Pipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.ExpireNX(ctx, fullKey, time.Minute)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to execute rate limit check: %w", err)
	}

	return incr.Val() <= l.limit(), nil
}

func (l *RedisLimiter) limit() int64 {
	return int64(l.requestsPerMinute + l.burst)
}

func windowKey(key string, now time.Time) string {
	return fmt.Sprintf("%s%s:%d", rateLimitPrefix, key, now.Truncate(time.Minute).Unix())
}

// CheckRedisVersion returns ErrRedisTooOld when the server predates Redis 7.
func CheckRedisVersion(ctx context.Context, rdb *redis.Client) error {
	info, err := rdb.Info(ctx, "server").Result()
	if err != nil {
		return fmt.Errorf("failed to read redis server info: %w", err)
	}
	major, err := redisMajorVersion(info)
	if err != nil {
		return err
	}
	if major < minRedisMajor {
		return fmt.Errorf("%w: version %d", ErrRedisTooOld, major)
	}
	return nil
}

// redisMajorVersion extracts the major version from an INFO server reply.
func redisMajorVersion(info string) (int, error) {
	scanner := bufio.NewScanner(strings.NewReader(info))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		version, ok := strings.CutPrefix(line, "redis_version:")
		if !ok {
			continue
		}
		major, _, _ := strings.Cut(version, ".")
		n, err := strconv.Atoi(major)
		if err != nil {
			return 0, fmt.Errorf("invalid redis_version %q: %w", version, err)
		}
		return n, nil
	}
	return 0, errors.New("redis_version missing from server info")
}
