package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/LittlestCube/toontown-archipelago/internal/clients/catalog"
	"github.com/LittlestCube/toontown-archipelago/internal/config"
	"github.com/LittlestCube/toontown-archipelago/internal/handlers/rewards/v1alpha1"
	"github.com/LittlestCube/toontown-archipelago/internal/notifications"
	"github.com/LittlestCube/toontown-archipelago/internal/orchestrators/delivery"
	"github.com/LittlestCube/toontown-archipelago/internal/redis"
	"github.com/LittlestCube/toontown-archipelago/internal/repositories/applied"
	toonrepo "github.com/LittlestCube/toontown-archipelago/internal/repositories/toon"
	"github.com/LittlestCube/toontown-archipelago/internal/rewards"
	"github.com/LittlestCube/toontown-archipelago/internal/tables"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the reward delivery gRPC server. Settings come from TTAP_* environment variables; flags override them.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = grpcPort
	}

	logger := cfg.Logger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisClient, err := redis.Open(cfg.Redis.Mode, cfg.Redis.Endpoints, cfg.Redis.MasterName, &redis.Options{
		UseTLS: cfg.Redis.UseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to open redis: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	svc, cleanup, err := buildServices(cfg, redisClient, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterRewardServiceServer(srv, svc.handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting",
			"port", cfg.Port,
			"applied_backend", cfg.AppliedBackend,
			"redis_mode", cfg.Redis.Mode)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// services is the wired application
type services struct {
	orchestrator *delivery.Orchestrator
	inbox        *notifications.Inbox
	handler      *v1alpha1.Handler
}

// buildServices wires every component on top of an open redis client. The
// returned cleanup releases subscriptions and the applied store.
func buildServices(cfg *config.Config, redisClient redis.Client, logger *slog.Logger) (*services, func(), error) {
	tbl, err := loadTables(cfg.TablesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tables: %w", err)
	}

	items, err := catalog.New(&catalog.Config{Path: cfg.CatalogPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load item catalog: %w", err)
	}

	registry, err := rewards.NewRegistry(&rewards.RegistryConfig{
		Tables:  tbl,
		Catalog: items,
		Logger:  logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build reward registry: %w", err)
	}

	toonRepo, err := toonrepo.NewRedis(&toonrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create toon repository: %w", err)
	}

	appliedRepo, closeApplied, err := newAppliedRepo(cfg, redisClient)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create applied repository: %w", err)
	}

	eventBus := events.NewBus()
	notifier, err := notifications.NewBus(&notifications.BusConfig{EventBus: eventBus})
	if err != nil {
		closeApplied()
		return nil, nil, fmt.Errorf("failed to create notifier: %w", err)
	}
	inbox, err := notifications.NewInbox(&notifications.InboxConfig{
		EventBus: eventBus,
		Capacity: cfg.InboxCapacity,
	})
	if err != nil {
		closeApplied()
		return nil, nil, fmt.Errorf("failed to create inbox: %w", err)
	}
	sink := notifications.NewLogSink(eventBus, logger)

	cleanup := func() {
		_ = sink.Close()  // nolint:errcheck // safe to ignore in cleanup
		_ = inbox.Close() // nolint:errcheck // safe to ignore in cleanup
		closeApplied()
	}

	orchestrator, err := delivery.New(&delivery.Config{
		Registry:          registry,
		Tables:            tbl,
		ToonRepo:          toonRepo,
		AppliedRepo:       appliedRepo,
		Notifier:          notifier,
		History:           inbox,
		Logger:            logger,
		VictoryLocationID: cfg.VictoryLocationID,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create delivery orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{DeliveryService: orchestrator})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create reward handler: %w", err)
	}

	return &services{orchestrator: orchestrator, inbox: inbox, handler: handler}, cleanup, nil
}

func loadTables(path string) (*tables.Tables, error) {
	if path == "" {
		return tables.Default()
	}
	return tables.LoadFile(path)
}

func newAppliedRepo(cfg *config.Config, redisClient redis.Client) (applied.Repository, func(), error) {
	switch cfg.AppliedBackend {
	case config.AppliedBackendSQLite:
		repo, err := applied.NewSQLite(&applied.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil // nolint:errcheck // safe to ignore in cleanup
	case config.AppliedBackendMemory:
		return applied.NewInMemory(), func() {}, nil
	default:
		repo, err := applied.NewRedis(&applied.RedisConfig{Client: redisClient})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", fmt.Sprint(p))
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}
