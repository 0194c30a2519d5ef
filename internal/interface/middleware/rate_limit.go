package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-notes-api/pkg/response"
)

const rateKeyPrefix = "notes:rl:"

// KeyFunc builds a rate-limit key from the request.
type KeyFunc func(c *gin.Context) string

// AllowFunc returns true to bypass the limit.
type AllowFunc func(*gin.Context) bool

// KeyByIP limits by client IP only.
func KeyByIP() KeyFunc {
	return func(c *gin.Context) string {
		return rateKeyPrefix + "ip:" + ClientIP(c)
	}
}

// KeyByIPAndPath gives every route its own budget per client IP.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		return rateKeyPrefix + "route:" + route + ":ip:" + ClientIP(c)
	}
}

// KeyByUserID limits per authenticated user and must run after Auth.
// Anonymous requests fall back to the client IP.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		if id, ok := IdentityFrom(c); ok {
			return rateKeyPrefix + "user:" + id.UserID
		}
		return rateKeyPrefix + "user:anon:ip:" + ClientIP(c)
	}
}

// hitScript increments the window counter, starts its TTL on the first hit
// and returns {count, pttl}.
var hitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

type windowState struct {
	count int
	reset int // seconds until the window closes, rounded up
}

func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (windowState, error) {
	res, err := hitScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return windowState{}, err
	}
	st := windowState{}
	if len(res) > 0 {
		st.count = int(res[0])
	}
	if len(res) > 1 && res[1] > 0 {
		ttl := time.Duration(res[1]) * time.Millisecond
		st.reset = int((ttl + time.Second - 1) / time.Second)
	}
	return st, nil
}

// RateLimit is a fixed-window limiter backed by Redis. It fails open: a nil
// client or a Redis error lets the request through. Preflight requests are
// never counted.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if rdb == nil || limit <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	limitHeader := strconv.Itoa(limit)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || (allow != nil && allow(c)) {
			c.Next()
			return
		}

		st, err := hit(c.Request.Context(), rdb, keyFn(c), window)
		if err != nil {
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", limitHeader)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(0, limit-st.count)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(st.reset))

		if st.count > limit {
			if st.reset > 0 {
				c.Header("Retry-After", strconv.Itoa(st.reset))
			}
			response.Abort(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
