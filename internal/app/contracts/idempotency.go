package contracts

import (
	"context"
	"time"
)

// IdempotencyService reserves client supplied keys so a retried submission
// is rejected instead of stored twice. Once stored, the key remembers the
// assessment it produced.
type IdempotencyService interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Complete(ctx context.Context, key, assessmentID string, ttl time.Duration) error
	Holder(ctx context.Context, key string) (string, error)
	Release(ctx context.Context, key string) error
}
