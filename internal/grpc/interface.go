package grpc

import (
	"context"
	"time"

	"github.com/godilite/grade-calculator/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

type ItemService interface {
	CreateItem(ctx context.Context, in service.ItemInput) (service.Item, error)
	GetItem(ctx context.Context, id int64) (service.Item, error)
}
