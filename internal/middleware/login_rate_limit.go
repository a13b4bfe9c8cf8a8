package middleware

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const loginRateWindow = time.Minute

// LoginRateLimit caps login attempts per phone (or client IP when no phone is
// sent) within a one-minute window. A nil cache or non-positive limit disables it.
// Cache errors fail open.
func LoginRateLimit(cache *redis.Client, perMinute int, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil || perMinute <= 0 {
			return c.Next()
		}
		var req struct {
			Phone string `json:"phone"`
		}
		_ = c.BodyParser(&req)
		subject := strings.TrimSpace(req.Phone)
		if subject == "" {
			subject = "ip:" + c.IP()
		}
		window := time.Now().Unix() / int64(loginRateWindow.Seconds())
		key := "rl:login:" + subject + ":" + strconv.FormatInt(window, 10)

		var incr *redis.IntCmd
		_, err := cache.TxPipelined(c.UserContext(), func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(c.UserContext(), key)
			pipe.Expire(c.UserContext(), key, loginRateWindow)
			return nil
		})
		if err != nil {
			logger.Warn("login rate limit unavailable", slog.Any("error", err))
			return c.Next()
		}
		if incr.Val() > int64(perMinute) {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many login attempts, try again later")
		}
		return c.Next()
	}
}
