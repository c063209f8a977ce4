package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"hrdesk/api/internal/account"
	"hrdesk/api/internal/config"
	"hrdesk/api/internal/dashboard"
	"hrdesk/api/internal/db"
	"hrdesk/api/internal/employee"
	internalgrpc "hrdesk/api/internal/grpc"
	internalhttp "hrdesk/api/internal/http"
	"hrdesk/api/internal/images"
	"hrdesk/api/internal/jobs"
	"hrdesk/api/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("hrdesk: %v", err)
	}
}

func run() error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: "hrdesk-api",
		Endpoint:    cfg.OTelEndpoint,
		Insecure:    cfg.OTelInsecure,
	})

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("db connection failed: %w", err)
	}
	defer pool.Close()

	store := db.NewStore(pool)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			_ = redisClient.Close()
			return fmt.Errorf("redis ping failed: %w", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("redis close error: %v", err)
			}
		}()
	}

	imageStore, err := images.NewStore(cfg.ImageDir)
	if err != nil {
		return fmt.Errorf("image store init failed: %w", err)
	}
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	cleaner := jobs.NewImageCleaner(imageStore, cfg.CleanupQueueSize)
	cleaner.Start(workerCtx)

	stats := dashboard.NewService(store.Queries, redisClient, cfg.DashboardCacheTTL)
	server := internalhttp.NewServer(cfg, internalhttp.Deps{
		Verifier:  account.NewVerifier(store.Queries),
		Employees: employee.NewService(store, imageStore, cleaner, stats),
		Directory: store.Queries,
		Dashboard: stats,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           otelhttp.NewHandler(server.Router(), "hrdesk-api"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer, healthServer := internalgrpc.NewServer()
	jobs.StartHealthProbe(ctx, cfg.HealthProbeEvery, pool, internalgrpc.StatusSetter{Health: healthServer}, internalgrpc.ServiceName)

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		stopWorkers()
		return fmt.Errorf("grpc listen error: %w", err)
	}

	serveErr := make(chan error, 2)
	go func() {
		log.Printf("hrdesk http listening on %s", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- fmt.Errorf("http server error: %w", err)
		}
	}()
	go func() {
		log.Printf("hrdesk grpc listening on %s", cfg.GRPCAddr)
		if err := grpcServer.Serve(listener); err != nil {
			serveErr <- fmt.Errorf("grpc server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	grpcServer.GracefulStop()

	stopWorkers()
	cleaner.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("tracing shutdown error: %v", err)
	}
	return runErr
}
