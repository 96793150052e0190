package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// SessionExpirer ends idle dashboard sessions.
type SessionExpirer interface {
	ExpireIdleSessions(ctx context.Context, ttl time.Duration) int
}

// RunSessionJanitor expires idle sessions every interval until ctx is done.
// A non-positive ttl disables expiry and returns immediately.
func RunSessionJanitor(ctx context.Context, sessions SessionExpirer, interval, ttl time.Duration, logger *zap.Logger) {
	if ttl <= 0 || interval <= 0 {
		logger.Info("session expiry disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.ExpireIdleSessions(ctx, ttl); n > 0 {
				logger.Info("expired idle sessions", zap.Int("count", n), zap.Duration("idle_ttl", ttl))
			}
		}
	}
}
