package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the metadata key carrying the request id in both directions.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by RequestIDInterceptor, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDInterceptor reuses the caller's x-request-id or assigns a new UUID,
// stores it in the context and echoes it back as a response header.
func RequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(RequestIDHeader); len(vals) > 0 && vals[0] != "" {
				id = vals[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

		return handler(context.WithValue(ctx, requestIDKey{}, id), req)
	}
}

// LoggingInterceptor creates a gRPC unary interceptor for request/response logging.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		clientAddr := "unknown"
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			clientAddr = p.Addr.String()
		}

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("client_addr", clientAddr),
		}
		if id := RequestIDFromContext(ctx); id != "" {
			fields = append(fields, zap.String("request_id", id))
		}

		logger.Debug("gRPC request started", fields...)

		resp, err := handler(ctx, req)
		fields = append(fields, zap.Duration("duration", time.Since(start)))

		if err != nil {
			st, _ := status.FromError(err)
			logger.Error("gRPC request failed", append(fields,
				zap.String("status_code", st.Code().String()),
				zap.String("status_message", st.Message()))...)
		} else {
			logger.Info("gRPC request completed", append(fields,
				zap.String("status_code", codes.OK.String()))...)
		}

		return resp, err
	}
}
