package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"citydirectory/adapters/redis"
	"citydirectory/auth"
	"citydirectory/handlers"
	"citydirectory/interfaces"
	"citydirectory/metrics"
	"citydirectory/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting directory service")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}

	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_grpc", config.GRPCPort,
		"service_port_http", config.HTTPPort,
		"redis_addr", config.RedisAddr,
		"reap_interval", config.ReapInterval,
	)

	now := func() time.Time {
		return time.Now().UTC()
	}

	var keyStore interfaces.KeyStore
	{
		if config.RedisAddr != "" {
			redisClient, err := redis.NewRedisUniversalClient(config.RedisAddr)
			if err != nil {
				level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
				os.Exit(1)
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := redisClient.Ping(ctx).Err(); err != nil {
				level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
				os.Exit(1)
			}
			level.Info(logger).Log("msg", "Connected to Redis")
			keyStore = redis.NewKeyStore(redisClient)
		} else {
			keyStore = auth.NewStaticKeyStore(config.APIKeys...)
		}
	}

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	store := service.NewMemoryStore(now)

	reaper := service.NewReaper(store, config.ReapInterval, now, collector, logger)
	reaper.Start()

	var grpcServer *grpc.Server
	{
		grpcServer = grpc.NewServer(
			grpc.ChainUnaryInterceptor(
				service.DirectoryErrorToGRPCInterceptor(logger),
				auth.UnaryServerInterceptor(keyStore, logger),
			),
			grpc.ChainStreamInterceptor(
				service.DirectoryErrorToGRPCStreamInterceptor(logger),
				auth.StreamServerInterceptor(keyStore, logger),
			),
		)
		handlers.RegisterDirectoryServer(grpcServer, handlers.NewGrpcServer(store, collector, logger))

		healthServer := health.NewServer()
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

		reflection.Register(grpcServer)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
	if err != nil {
		level.Error(logger).Log("msg", "Failed to listen", "err", err)
		os.Exit(1)
	}

	var e *echo.Echo
	if config.HTTPPort > 0 {
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterRoutes(e, handlers.NewHTTPServer(store, logger))
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		level.Info(logger).Log("msg", "Starting gRPC server", "addr", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil {
			level.Error(logger).Log("msg", "gRPC server error", "err", err)
		}
	}()

	if e != nil {
		go func() {
			addr := fmt.Sprintf(":%d", config.HTTPPort)
			level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
			if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
				level.Error(logger).Log("msg", "HTTP server error", "err", err)
			}
		}()
	}

	<-quit
	level.Info(logger).Log("msg", "Shutting down...")

	if e != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "Error during HTTP server shutdown", "err", err)
		}
	}

	grpcServer.GracefulStop()
	reaper.Stop()
	level.Info(logger).Log("msg", "Server stopped")
}
