package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"myregistry/adapters/memstore"
	"myregistry/adapters/myredis"
	"myregistry/domain"
	"myregistry/handlers"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// eventChannel is the redis pub/sub channel registry events go out on.
const eventChannel = "registry:events"

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	logger = level.NewFilter(logger, allowedLevel(config.LogLevel))

	level.Info(logger).Log("msg", "Starting MyRegistry service")
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"ttl", config.TTL,
		"sweep_interval", config.SweepInterval,
		"redis_addr", config.RedisAddr,
	)

	// Core state: store, clock, events, metrics.
	store := memstore.New()
	clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })
	notifier := service.NewNotifier(logger)

	promRegistry := prometheus.NewRegistry()
	metrics := service.NewMetrics(promRegistry)

	// Optional redis event publisher.
	if config.RedisAddr != "" {
		redisClient, err := myredis.NewRedisUniversalClient(config.RedisAddr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis, publishing registry events", "channel", eventChannel)

		marshal := func(e domain.Event) ([]byte, error) { return json.Marshal(e) }
		notifier.Subscribe(myredis.NewPublisher[domain.Event](redisClient, eventChannel, marshal))
	}

	// Registry and expiry sweeper.
	registry := service.NewRegistry(store, clock, notifier, metrics, logger)
	sweeper := service.NewSweeper(store, clock, notifier, metrics, config.TTL, config.SweepInterval, logger)
	sweeper.Start()

	// Create HTTPServer
	var httpServer handlers.ServerInterface
	{
		httpServer = handlers.NewHTTPServer(registry, sweeper, clock, config.TTL, config.SweepInterval, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, httpServer)
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	sweeper.Stop()
	level.Info(logger).Log("msg", "Server stopped", "registered_services", registry.Count())
}

// allowedLevel maps the LOG_LEVEL env value to a go-kit level filter.
func allowedLevel(lvl string) level.Option {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}
