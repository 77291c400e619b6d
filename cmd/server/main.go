package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/iliyamo/rail-booking/internal/config"
	"github.com/iliyamo/rail-booking/internal/database"
	"github.com/iliyamo/rail-booking/internal/handler"
	"github.com/iliyamo/rail-booking/internal/logger"
	"github.com/iliyamo/rail-booking/internal/middleware"
	"github.com/iliyamo/rail-booking/internal/queue"
	"github.com/iliyamo/rail-booking/internal/repository"
	"github.com/iliyamo/rail-booking/internal/router"
	"github.com/iliyamo/rail-booking/internal/service"
	"github.com/iliyamo/rail-booking/internal/utils"
)

func main() {
	cfg := config.Load() // Load environment config

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Open(
		database.DSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName),
		database.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		},
	)
	if err != nil {
		zl.Fatal("database unavailable", zap.String("host", cfg.DBHost), zap.Error(err))
	}
	defer db.Close()
	zl.Info("database connected", zap.String("host", cfg.DBHost), zap.String("name", cfg.DBName))

	// Redis is optional; without it the cache and rate limiter pass through.
	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb != nil {
		defer rdb.Close()
	} else {
		zl.Warn("redis unavailable; cache and rate limiting disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	qcfg := config.LoadQueueConfig()
	var events service.EventPublisher
	if qcfg.Enabled {
		pub := queue.NewPublisher(qcfg.URL, qcfg.Queue, zl)
		defer pub.Close()
		events = pub
	}
	if qcfg.ConsumerEnabled {
		go func() {
			if err := queue.StartBookingConsumer(ctx, qcfg.URL, qcfg.Queue, qcfg.LogPath, zl); err != nil && !errors.Is(err, context.Canceled) {
				zl.Error("booking consumer stopped", zap.Error(err))
			}
		}()
	}

	stations := service.NewStationService(repository.NewStationRepo(db))
	fares := service.NewFareService(repository.NewFareRepo(db))
	bookings := service.NewBookingService(fares, repository.NewBookingRepo(db), events, cfg.Location, zl)
	auth := service.NewAuthService(repository.NewUserRepo(db), utils.NewPasswords(cfg.BcryptCost))

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(zl)
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(zl))
	e.Use(echomw.Recover()) // inside the logger so panics are logged as 500s
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{AllowOrigins: cfg.CORSOrigins}))
	e.Use(echomw.BodyLimit(cfg.BodyLimit))

	router.RegisterRoutes(e, router.Handlers{
		Health:   handler.Health(db),
		Stations: handler.NewStationHandler(stations, zl),
		Fares:    handler.NewFareHandler(fares, zl),
		Bookings: handler.NewBookingHandler(bookings, zl),
		Auth:     handler.NewAuthHandler(auth, zl),
	}, router.Middlewares{
		Cache:     middleware.NewRedisCache(config.LoadCacheConfig(), rdb, zl),
		RateLimit: middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, zl),
	})

	addr := ":" + cfg.Port // Address string with port
	go func() {
		zl.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
	bookings.Wait() // flush pending booking events before the publisher closes
}
