package middleware

import (
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/autoplus/concesionaria/internal/interface/console"
)

// Lua script: atomic INCR + set EXPIRE when new
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Limiter counts attempts per key in Redis within a fixed window.
// A nil client or a non-positive limit disables it.
type Limiter struct {
	rdb    *redis.Client
	Max    int
	Window time.Duration
}

func NewLimiter(rdb *redis.Client, max int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, Max: max, Window: window}
}

// Allow records one attempt under key and reports whether it is within the
// limit. Redis failures fail open.
func (l *Limiter) Allow(c *console.Context, key string) bool {
	if l == nil || l.rdb == nil || l.Max <= 0 || l.Window <= 0 {
		return true
	}
	countI, err := incrExpireScript.Run(c.Ctx, l.rdb, []string{key}, l.Window.Milliseconds()).Result()
	if err != nil {
		c.Logger().WithError(err).WithField("key", key).Warn("rate limit unavailable")
		return true
	}
	count := toInt(countI)
	if count > l.Max {
		ttl, _ := l.rdb.TTL(c.Ctx, key).Result()
		c.Logger().WithField("key", key).WithField("retry_after", ttl.String()).Warn("rate limit exceeded")
		return false
	}
	return true
}

func toInt(v interface{}) int {
	switch x := v.(type) {
	case int64:
		return int(x)
	case int:
		return x
	case string:
		i, _ := strconv.Atoi(x)
		return i
	}
	return 0
}
