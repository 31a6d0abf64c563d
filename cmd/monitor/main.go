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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	config "github.com/orderstack/orders-service/configs"
	"github.com/orderstack/orders-service/internal/core/domain/health"
	"github.com/orderstack/orders-service/internal/infrastructure/monitor"
	"github.com/orderstack/orders-service/internal/infrastructure/probe"
)

// The monitor is the external supervisor half of the health check contract:
// it polls the service process on a fixed interval and owns the
// starting/healthy/unhealthy record, exposing it over /state.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	}

	settings := health.Settings{
		Interval:          cfg.HealthCheck.Interval,
		Timeout:           cfg.HealthCheck.Timeout,
		StartPeriod:       cfg.HealthCheck.StartPeriod,
		Retries:           cfg.HealthCheck.Retries,
		RecoverySuccesses: cfg.HealthCheck.RecoverySuccesses,
	}

	prober := probe.NewHTTPProber(cfg.HealthCheck.Target, cfg.HealthCheck.Timeout)
	mon := monitor.New(prober, settings, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go mon.Run(ctx)

	logger.WithFields(logrus.Fields{
		"target": cfg.HealthCheck.Target,
		"listen": cfg.HealthCheck.ListenAddr,
	}).Info("Monitoring service process")

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.GET("/state", func(c echo.Context) error {
		return c.JSON(http.StatusOK, mon.State())
	})
	e.GET("/metrics", func(c echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})

	go func() {
		if err := e.Start(cfg.HealthCheck.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start monitor endpoint:", err)
		}
	}()

	// The monitor runs until the supervised process teardown tears it down
	// as well; there is no terminal health state.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down monitor...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Monitor endpoint forced to shutdown:", err)
	}

	logger.Info("Monitor exited")
}
