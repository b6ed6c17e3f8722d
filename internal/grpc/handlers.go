package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godilite/grade-calculator/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
)

const cacheKeyItem = "grpc:item"

type ItemHandlers struct {
	items    ItemService
	cache    Cacher
	logger   *zap.Logger
	sfGroup  singleflight.Group
	cacheTTL time.Duration
}

var _ ItemCatalogServer = (*ItemHandlers)(nil)

// NewItemHandlers initializes the gRPC handlers.
func NewItemHandlers(items ItemService, cache Cacher, logger *zap.Logger, ttl time.Duration) *ItemHandlers {
	if items == nil {
		panic("nil ItemService provided to NewItemHandlers")
	}
	if cache == nil {
		panic("nil Cacher provided to NewItemHandlers")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &ItemHandlers{
		items:    items,
		cache:    cache,
		logger:   logger.Named("grpc-handler"),
		cacheTTL: ttl,
	}
}

func itemKey(id int64) string {
	return fmt.Sprintf("%s:%d", cacheKeyItem, id)
}

func (h *ItemHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		h.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		h.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrItemNotFound):
		h.logger.Info("item not found", zap.String("op", op))
		return status.Error(codes.NotFound, "item not found")
	case errors.Is(err, service.ErrInvalidItem):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrStorageFailure):
		h.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Error(codes.Internal, "database error")
	default:
		h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (h *ItemHandlers) CreateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in, err := itemInputFromStruct(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	item, err := h.items.CreateItem(ctx, in)
	if err != nil {
		return nil, h.handleError(ctx, "CreateItem", err)
	}

	return h.respond("CreateItem", item)
}

func (h *ItemHandlers) GetItem(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := req.GetValue()
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "item id must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	item, err := FindAndCache(ctx, h.cache, &h.sfGroup, itemKey(id), h.cacheTTL, h.logger, func(fetchCtx context.Context) (service.Item, error) {
		return h.items.GetItem(fetchCtx, id)
	})
	if err != nil {
		return nil, h.handleError(ctx, "GetItem", err)
	}

	return h.respond("GetItem", item)
}

func (h *ItemHandlers) respond(op string, item service.Item) (*structpb.Struct, error) {
	out, err := itemToStruct(item)
	if err != nil {
		h.logger.Error("encode item", zap.String("op", op), zap.Error(err))
		return nil, status.Errorf(codes.Internal, "%s failed: encode item", op)
	}
	return out, nil
}
