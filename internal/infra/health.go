package infra

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	StatusOK          = "ok"
	StatusDisabled    = "disabled"
	StatusUnavailable = "unavailable"
)

// Health reports the reachability of each backing service.
type Health struct {
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

// Healthy is false when a configured dependency failed its ping.
func (h Health) Healthy() bool {
	return h.Postgres != StatusUnavailable && h.Redis != StatusUnavailable
}

// Check pings db and cache. Nil dependencies report as disabled. Failure details
// are logged, not returned, so they never reach an unauthenticated caller.
func Check(ctx context.Context, db *pgxpool.Pool, cache *redis.Client, logger *slog.Logger) Health {
	h := Health{Postgres: StatusDisabled, Redis: StatusDisabled}
	if db != nil {
		h.Postgres = StatusOK
		if err := db.Ping(ctx); err != nil {
			logger.Warn("postgres health check failed", "error", err)
			h.Postgres = StatusUnavailable
		}
	}
	if cache != nil {
		h.Redis = StatusOK
		if err := cache.Ping(ctx).Err(); err != nil {
			logger.Warn("redis health check failed", "error", err)
			h.Redis = StatusUnavailable
		}
	}
	return h
}
