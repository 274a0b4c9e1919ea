package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// attemptWindow is how long an attempt counter lives before resetting.
const attemptWindow = 15 * time.Minute

// LoginLimiter throttles login attempts per username using a Redis counter
// with a TTL window. Key format: login_attempts:<username>
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
}

// NewLoginLimiter creates a LoginLimiter allowing maxAttempts per window.
func NewLoginLimiter(client *redis.Client, maxAttempts int) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts)}
}

// Allow records one attempt for username and reports whether it is still
// within budget. The window starts at the first attempt.
func (l *LoginLimiter) Allow(ctx context.Context, username string) (bool, error) {
	key := l.key(username)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return false, fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return n <= l.maxAttempts, nil
}

// Reset clears the attempt counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	if err := l.client.Del(ctx, l.key(username)).Err(); err != nil {
		return fmt.Errorf("login limiter reset: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(username string) string {
	return "login_attempts:" + username
}
