package ratelimit

import (
	"context"
	"time"

	db_redis "goalkeeper/api/biz/db/redis"

	"github.com/redis/go-redis/v9"
)

// fixedWindow increments the counter and attaches the window TTL in one
// round trip. Keys that lost their TTL get a fresh one so a counter can
// never stick around forever.
// KEYS[1] counter key, ARGV[1] window seconds, ARGV[2] limit.
var fixedWindow = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])

if current == 1 then
    redis.call("EXPIRE", KEYS[1], ARGV[1])
elseif redis.call("TTL", KEYS[1]) == -1 then
    redis.call("EXPIRE", KEYS[1], ARGV[1])
end

if current > tonumber(ARGV[2]) then
    return 0
end
return 1
`)

const keyPrefix = "rate_limit:"

type Interceptor struct {
	window time.Duration
	limit  int64
}

func NewInterceptor(windowSeconds int, limit int64) *Interceptor {
	return &Interceptor{
		window: time.Duration(windowSeconds) * time.Second,
		limit:  limit,
	}
}

func (i *Interceptor) Allow(ctx context.Context, key string) (bool, error) {
	result, err := fixedWindow.Run(ctx, db_redis.GetRedisClient(),
		[]string{keyPrefix + key}, int(i.window.Seconds()), i.limit).Result()
	if err != nil {
		return false, err
	}

	return result.(int64) == 1, nil
}
