package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/orderstack/orders-service/configs"
	"github.com/orderstack/orders-service/internal/application/services"
	"github.com/orderstack/orders-service/internal/core/ports"
	"github.com/orderstack/orders-service/internal/infrastructure/db"
	"github.com/orderstack/orders-service/internal/infrastructure/health"
	"github.com/orderstack/orders-service/internal/infrastructure/httpserver"
	"github.com/orderstack/orders-service/internal/infrastructure/redis"
	"github.com/orderstack/orders-service/internal/infrastructure/repositories"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := newLogger(&cfg.Log)
	logger.Info("Starting orders service...")

	var (
		orderRepo      ports.OrderRepository
		healthCheckers []ports.HealthChecker
	)

	switch cfg.Storage.Backend {
	case "postgres":
		database, err := db.NewDatabase(&cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database:", err)
		}
		defer database.Close()
		logger.Info("Connected to database successfully")

		if err := database.Migrate("./migrations"); err != nil {
			logger.Warn("Failed to run migrations:", err)
		}

		orderRepo = repositories.NewOrderRepository(database, logger)
		healthCheckers = append(healthCheckers, health.NewDBHealthChecker(database))
	default:
		logger.Info("Using in-memory order storage")
		orderRepo = repositories.NewOrderMemoryRepository()
	}

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")

		redisCache := redis.NewRedisCache(redisClient, "orders")
		orderRepo = repositories.NewCachingOrderRepository(orderRepo, redisCache, cfg.Storage.CacheTTL)
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
	}

	orderService := services.NewOrderService(orderRepo, logger)

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		OrderService:   orderService,
		HealthCheckers: healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}

func newLogger(cfg *config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}
	return logger
}
