package ratelimit

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	perr "davenport/internal/platform/errors"
)

// takeScript performs the prune/count/record cycle atomically so the limiter
// stays correct across many application instances sharing one Redis.
// Scores are unix milliseconds; nanos would overflow the double precision
// sorted set scores carry.
// KEYS[1] window key
// ARGV[1] cutoff ms, ARGV[2] now ms, ARGV[3] limit,
// ARGV[4] member, ARGV[5] key ttl ms
var takeScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
local count = redis.call('ZCARD', KEYS[1])
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
local score = '0'
if oldest[2] then score = oldest[2] end
if count >= tonumber(ARGV[3]) then
  return {0, count, score}
end
redis.call('ZADD', KEYS[1], ARGV[2], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return {1, count, score}
`)

// RedisWindows keeps per-identity windows in Redis sorted sets, one set per
// identity scored by request time
type RedisWindows struct {
	rdb    *redis.Client
	prefix string
}

// RedisOption mutates RedisWindows construction
type RedisOption func(*RedisWindows)

// WithPrefix overrides the key prefix, default "ratelimit"
func WithPrefix(prefix string) RedisOption {
	return func(w *RedisWindows) { w.prefix = strings.Trim(prefix, ":") }
}

// NewRedisWindows builds a window store over the given client
func NewRedisWindows(rdb *redis.Client, opts ...RedisOption) *RedisWindows {
	if rdb == nil {
		panic("ratelimit.NewRedisWindows requires a non nil client")
	}
	w := &RedisWindows{rdb: rdb, prefix: "ratelimit"}
	for _, o := range opts {
		o(w)
	}
	return w
}

func (w *RedisWindows) key(identity string) string {
	return w.prefix + ":" + identity
}

// Take implements Windows
func (w *RedisWindows) Take(ctx context.Context, identity string, now, cutoff time.Time, limit int) (Result, error) {
	// member carries a uuid so two takes in the same millisecond both count
	member := strconv.FormatInt(now.UnixMilli(), 10) + ":" + uuid.NewString()
	ttlMs := now.Sub(cutoff).Milliseconds()
	if ttlMs <= 0 {
		ttlMs = 1
	}

	raw, err := takeScript.Run(ctx, w.rdb,
		[]string{w.key(identity)},
		cutoff.UnixMilli(), now.UnixMilli(), limit, member, ttlMs,
	).Slice()
	if err != nil {
		return Result{}, perr.Unavailablef("ratelimit redis take: %v", err)
	}
	if len(raw) != 3 {
		return Result{}, perr.Internalf("ratelimit redis take: unexpected reply shape")
	}

	allowed, _ := raw[0].(int64)
	count, _ := raw[1].(int64)

	res := Result{Allowed: allowed == 1, Count: int(count)}
	if s, ok := raw[2].(string); ok && s != "0" && s != "" {
		if ms, err := strconv.ParseFloat(s, 64); err == nil && ms > 0 {
			res.Oldest = time.UnixMilli(int64(ms))
		}
	}
	return res, nil
}

// Reset implements Windows
func (w *RedisWindows) Reset(ctx context.Context, identity string) error {
	if err := w.rdb.Del(ctx, w.key(identity)).Err(); err != nil {
		return perr.Unavailablef("ratelimit redis reset: %v", err)
	}
	return nil
}

// Clear implements Windows by scanning out every key under the prefix
func (w *RedisWindows) Clear(ctx context.Context) error {
	iter := w.rdb.Scan(ctx, 0, w.prefix+":*", 256).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 256 {
			if err := w.rdb.Del(ctx, keys...).Err(); err != nil {
				return perr.Unavailablef("ratelimit redis clear: %v", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return perr.Unavailablef("ratelimit redis clear: %v", err)
	}
	if len(keys) > 0 {
		if err := w.rdb.Del(ctx, keys...).Err(); err != nil {
			return perr.Unavailablef("ratelimit redis clear: %v", err)
		}
	}
	return nil
}
