// Package quota enforces daily per-endpoint call budgets in Redis.
package quota

import (
	"context"
	"fmt"
	"googleapi-client/internal/platform/apperr"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "googleapi:quota"

// RedisQuota enforces a per-endpoint daily call budget shared by every
// process pointing at the same Redis. Days roll over at UTC midnight.
type RedisQuota struct {
	rdb   redis.UniversalClient
	limit int64
	now   func() time.Time
}

func NewRedisQuota(rdb redis.UniversalClient, dailyLimit int64) *RedisQuota {
	return &RedisQuota{rdb: rdb, limit: dailyLimit, now: time.Now}
}

// NewRedisQuotaFromAddr dials addr and checks connectivity.
func NewRedisQuotaFromAddr(ctx context.Context, addr string, dailyLimit int64) (*RedisQuota, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedisQuota(rdb, dailyLimit), nil
}

func (q *RedisQuota) key(endpoint string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, endpoint, q.now().UTC().Format(time.DateOnly))
}

// Allow consumes one unit of endpoint's budget for today. A limit of zero
// or less disables the check.
func (q *RedisQuota) Allow(ctx context.Context, endpoint string) error {
	if q.limit <= 0 {
		return nil
	}

	key := q.key(endpoint)

	n, err := q.rdb.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("quota incr %s: %w", key, err)
	}
	if n == 1 {
		// Keep yesterday's counter around briefly for inspection.
		if err := q.rdb.Expire(ctx, key, 48*time.Hour).Err(); err != nil {
			return fmt.Errorf("quota expire %s: %w", key, err)
		}
	}

	if n > q.limit {
		return apperr.New(apperr.KindQuotaExceeded,
			fmt.Sprintf("daily quota of %d calls exhausted for %s", q.limit, endpoint)).WithOp(endpoint)
	}
	return nil
}

// Used returns how many calls endpoint has consumed today.
func (q *RedisQuota) Used(ctx context.Context, endpoint string) (int64, error) {
	n, err := q.rdb.Get(ctx, q.key(endpoint)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("quota get: %w", err)
	}
	return n, nil
}

func (q *RedisQuota) Close() error {
	return q.rdb.Close()
}
