package usecase

import (
	"context"
	"time"
)

type CatalogueCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
	GetInt64(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
}

// CatalogueNotifier is told about every committed catalogue write.
type CatalogueNotifier interface {
	NotifyCatalogueUpdated(version int64)
}
