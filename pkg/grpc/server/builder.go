package server

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const defaultPort = 50051

type options struct {
	port         int
	listener     net.Listener
	logger       *zap.Logger
	reflection   bool
	requestLogs  bool
	interceptors []grpc.UnaryServerInterceptor
}

type Option func(*options)

// WithPort sets the TCP port. Port 0 picks a free port; read it back with Addr.
func WithPort(port int) Option {
	return func(o *options) { o.port = port }
}

// WithListener serves on lis instead of opening a TCP port. WithPort is ignored.
func WithListener(lis net.Listener) Option {
	return func(o *options) { o.listener = lis }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func WithReflection(enabled bool) Option {
	return func(o *options) { o.reflection = enabled }
}

// WithUnaryInterceptors appends interceptors after the request logging pair.
func WithUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) Option {
	return func(o *options) { o.interceptors = append(o.interceptors, interceptors...) }
}

// WithLogging installs RequestIDInterceptor and LoggingInterceptor ahead of any others.
func WithLogging(enabled bool) Option {
	return func(o *options) { o.requestLogs = enabled }
}

// Server is a gRPC server that always exposes the standard health service.
type Server struct {
	srv    *grpc.Server
	health *health.Server
	lis    net.Listener
	logger *zap.Logger
}

// New listens and builds the server. Nothing is served until Start.
func New(opts ...Option) (*Server, error) {
	o := options{port: defaultPort}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	lis, err := o.listen()
	if err != nil {
		return nil, err
	}

	var serverOpts []grpc.ServerOption
	if chain := o.unaryChain(); len(chain) > 0 {
		serverOpts = append(serverOpts, grpc.ChainUnaryInterceptor(chain...))
	}
	srv := grpc.NewServer(serverOpts...)

	if o.reflection {
		reflection.Register(srv)
	}

	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &Server{
		srv:    srv,
		health: hs,
		lis:    lis,
		logger: o.logger.Named("grpc-server"),
	}, nil
}

func (o options) listen() (net.Listener, error) {
	if o.listener != nil {
		return o.listener, nil
	}
	if o.port < 0 || o.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 0 and 65535", o.port)
	}
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", o.port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", o.port, err)
	}
	return lis, nil
}

func (o options) unaryChain() []grpc.UnaryServerInterceptor {
	var chain []grpc.UnaryServerInterceptor
	if o.requestLogs {
		chain = append(chain, RequestIDInterceptor(), LoggingInterceptor(o.logger))
	}
	return append(chain, o.interceptors...)
}

// Register installs a service and reports it SERVING under serviceName.
// An empty serviceName only installs it.
func (s *Server) Register(serviceName string, register func(grpc.ServiceRegistrar)) {
	register(s.srv)
	if serviceName == "" {
		return
	}
	s.health.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("service registered", zap.String("service", serviceName))
}

// Start serves in a goroutine. The overall health status turns SERVING here.
func (s *Server) Start() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("gRPC server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.srv.Serve(s.lis); err != nil {
			s.logger.Error("gRPC server failed", zap.Error(err))
		}
	}()
}

// Shutdown reports NOT_SERVING for every service, then drains in-flight calls.
// Calls still running when ctx expires are cut off and ctx.Err is returned.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()

	drained := make(chan struct{})
	go func() {
		s.srv.GracefulStop()
		close(drained)
	}()

	select {
	case <-drained:
		s.logger.Info("gRPC server stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("drain timed out, stopping")
		s.srv.Stop()
		return ctx.Err()
	}
}

// Addr is the bound address, useful with port 0.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
