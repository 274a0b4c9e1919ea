package ports

import "context"

// LoginLimiter throttles credential-verification attempts per username.
// It is an explicit extension point: services treat a nil limiter as
// "throttling disabled".
type LoginLimiter interface {
	// Allow records one attempt for username and reports whether it is
	// still within budget.
	Allow(ctx context.Context, username string) (bool, error)
	// Reset clears the attempt counter after a successful login.
	Reset(ctx context.Context, username string) error
}
