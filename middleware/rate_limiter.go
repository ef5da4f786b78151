package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	ctx = context.Background()
	rdb *redis.Client
)

// RateLimitConfig defines rules for different endpoints
type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
	Algorithm   string // "fixed_window", "sliding_window"
}

// Login endpoints take the tight limits; everything else shares the default.
var rateLimitRules = map[string]RateLimitConfig{
	"auth_login": {
		MaxRequests: 10, // 10 login attempts per 15 minutes per IP
		Window:      15 * time.Minute,
		Algorithm:   "sliding_window",
	},
	"auth_validate": {
		MaxRequests: 30,
		Window:      15 * time.Minute,
		Algorithm:   "sliding_window",
	},
	"default": {
		MaxRequests: 120,
		Window:      time.Minute,
		Algorithm:   "fixed_window",
	},
}

// InitRateLimiter wires the shared Redis client. When it is never called the
// middleware passes every request through, so Redis stays optional.
func InitRateLimiter(redisClient *redis.Client) {
	rdb = redisClient
}

func getRateLimitRule(path string) RateLimitConfig {
	switch {
	case strings.Contains(path, "/auth/login"), strings.Contains(path, "/auth/parent-login"):
		return rateLimitRules["auth_login"]
	case strings.Contains(path, "/auth/validate"):
		return rateLimitRules["auth_validate"]
	default:
		return rateLimitRules["default"]
	}
}

// Fixed Window Rate Limiter - Lua Script
func fixedWindowRateLimit(key string, config RateLimitConfig) (bool, error) {
	redisKey := fmt.Sprintf("rate:fw:%s", key)

	luaScript := `
	local key = KEYS[1]
	local expiry = ARGV[1]
	local limit = tonumber(ARGV[2])

	local current = redis.call('GET', key)

	if current == false then
		redis.call('SET', key, 1, 'EX', expiry)
		return 1
	end

	local count = tonumber(current)
	if count >= limit then
		return 0
	end

	redis.call('INCR', key)
	return 1
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		int(config.Window.Seconds()), config.MaxRequests).Result()
	if err != nil {
		return false, err
	}

	return result.(int64) == 1, nil
}

// Sliding Window Rate Limiter (More Accurate)
func slidingWindowRateLimit(key string, config RateLimitConfig) (bool, error) {
	now := time.Now().Unix()
	windowStart := now - int64(config.Window.Seconds())

	redisKey := fmt.Sprintf("rate:sw:%s", key)

	luaScript := `
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local max_requests = tonumber(ARGV[3])
	local window_seconds = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, 0, window_start)

	local current = redis.call('ZCARD', key)
	if current >= max_requests then
		return 0
	end

	redis.call('ZADD', key, now, now)
	redis.call('EXPIRE', key, window_seconds + 60)
	return 1
	`

	result, err := rdb.Eval(ctx, luaScript, []string{redisKey},
		now, windowStart, config.MaxRequests, int(config.Window.Seconds())).Result()
	if err != nil {
		return false, err
	}

	return result.(int64) == 1, nil
}

// RateLimiter guards the endpoints it is attached to by client IP.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		rule := getRateLimitRule(c.Request.URL.Path)
		key := fmt.Sprintf("%s:%s:ip:%s", c.Request.Method, c.Request.URL.Path, c.ClientIP())

		var allowed bool
		var err error
		switch rule.Algorithm {
		case "sliding_window":
			allowed, err = slidingWindowRateLimit(key, rule)
		default:
			allowed, err = fixedWindowRateLimit(key, rule)
		}

		if err != nil {
			// Don't block requests if Redis fails
			c.Next()
			return
		}

		if !allowed {
			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rule.MaxRequests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(rule.Window).Unix()))

			if os.Getenv("APP_API_RETURN_LANG") == "EN" {
				c.JSON(http.StatusTooManyRequests, gin.H{
					"message":     "Too many attempts, please try again later",
					"retry_after": int(rule.Window.Seconds()),
				})
			} else {
				c.JSON(http.StatusTooManyRequests, gin.H{
					"message":     "محاولات كثيرة، يرجى المحاولة لاحقاً",
					"retry_after": int(rule.Window.Seconds()),
				})
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
