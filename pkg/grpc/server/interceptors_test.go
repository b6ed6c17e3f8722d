package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestLoggingInterceptor(t *testing.T) {
	logger := zaptest.NewLogger(t)

	interceptor := LoggingInterceptor(logger)
	info := &grpc.UnaryServerInfo{FullMethod: "/items.v1.ItemCatalog/GetItem"}

	t.Run("successful request", func(t *testing.T) {
		resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return "success", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "success", resp)
	})

	t.Run("error request keeps status", func(t *testing.T) {
		_, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.NotFound, "item not found")
		})

		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestRequestIDInterceptor(t *testing.T) {
	interceptor := RequestIDInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/items.v1.ItemCatalog/GetItem"}

	capture := func(got *string) grpc.UnaryHandler {
		return func(ctx context.Context, req any) (any, error) {
			*got = RequestIDFromContext(ctx)
			return nil, nil
		}
	}

	t.Run("generates a uuid", func(t *testing.T) {
		var got string
		_, err := interceptor(context.Background(), nil, info, capture(&got))

		require.NoError(t, err)
		_, parseErr := uuid.Parse(got)
		assert.NoError(t, parseErr)
	})

	t.Run("propagates the caller id", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "abc-123"))

		var got string
		_, err := interceptor(ctx, nil, info, capture(&got))

		require.NoError(t, err)
		assert.Equal(t, "abc-123", got)
	})

	t.Run("empty context has no id", func(t *testing.T) {
		assert.Empty(t, RequestIDFromContext(context.Background()))
	})
}
