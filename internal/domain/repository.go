package domain

import (
	"context"
	"time"
)

// ClassificationCache defines the interface for caching classification results
type ClassificationCache interface {
	Get(ctx context.Context, key string) (*Classification, error)
	Set(ctx context.Context, key string, value *Classification, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
