package app

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/godilite/grade-calculator/internal/config"
	handler "github.com/godilite/grade-calculator/internal/grpc"
	"github.com/godilite/grade-calculator/internal/repository"
	"github.com/godilite/grade-calculator/internal/service"
	"github.com/godilite/grade-calculator/pkg/cache"
	dbbuilder "github.com/godilite/grade-calculator/pkg/database"
	grpcsrv "github.com/godilite/grade-calculator/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const (
	cacheKeyPrefix  = "itemserver:"
	shutdownTimeout = 10 * time.Second
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      handler.Cacher
	grpcServer *grpcsrv.Server
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
		dbbuilder.WithMigrations(repository.ItemsSchema),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	cacheClient, err := newCache(ctx, cfg, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	itemRepo := repository.NewItemRepository(dbPool)

	itemService := service.NewItemService(itemRepo, logger)

	grpcHandlers := handler.NewItemHandlers(itemService, cacheClient, logger, cfg.CacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
		grpcsrv.WithLogging(true),
	)
	if err != nil {
		_ = cacheClient.Close()
		dbPool.Close()
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.Register(handler.ItemCatalogServiceName, func(r grpc.ServiceRegistrar) {
		handler.RegisterItemCatalogServer(r, grpcHandlers)
	})

	return &App{
		logger:     logger,
		dbPool:     dbPool,
		cache:      cacheClient,
		grpcServer: grpcServer,
	}, nil
}

// newCache connects to Redis when an address is configured and otherwise
// falls back to a cache that never hits.
func newCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (handler.Cacher, error) {
	if cfg.RedisAddr == "" {
		logger.Info("Redis address not set, item cache disabled")
		return cache.Nop{}, nil
	}

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
		cache.WithKeyPrefix(cacheKeyPrefix),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))
	return cacheClient, nil
}

// Addr returns the address the gRPC server listens on.
func (a *App) Addr() net.Addr {
	return a.grpcServer.Addr()
}

// Start serves in the background.
func (a *App) Start() {
	a.logger.Info("application starting")
	a.grpcServer.Start()
}

// Shutdown stops the server, then releases the cache and database.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("application shutting down")

	err := a.grpcServer.Shutdown(ctx)
	if err != nil {
		a.logger.Warn("shutdown completed but deadline exceeded", zap.Error(err))
	}

	if cerr := a.cache.Close(); cerr != nil {
		a.logger.Error("cache shutdown error", zap.Error(cerr))
	}
	if derr := a.dbPool.Close(); derr != nil {
		a.logger.Error("database shutdown error", zap.Error(derr))
	}

	if err == nil {
		a.logger.Info("graceful shutdown completed successfully")
	}
	_ = a.logger.Sync()
	return err
}

// Run starts the application and blocks until a shutdown signal is received
// or ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Start()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return a.Shutdown(shutdownCtx)
}
