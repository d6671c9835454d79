package repository

import (
	"context"
	"time"
)

// CacheRepository memoizes calculation results keyed by their inputs.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
