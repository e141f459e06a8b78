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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srgjo27/villa_booking/internal/adapter/cache"
	"github.com/srgjo27/villa_booking/internal/adapter/handler"
	"github.com/srgjo27/villa_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/villa_booking/internal/core/services"
	"github.com/srgjo27/villa_booking/internal/platform/clock"
	"github.com/srgjo27/villa_booking/internal/platform/config"
	"github.com/srgjo27/villa_booking/internal/platform/database"
	"github.com/srgjo27/villa_booking/internal/platform/logger"
	"github.com/srgjo27/villa_booking/internal/platform/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	}, lg)
	if err != nil {
		lg.Fatal("failed to connect to db after retries", zap.Error(err))
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db, lg); err != nil {
		lg.Fatal("failed to apply migrations", zap.Error(err))
	}

	lg.Info("connecting to redis", zap.String("addr", cfg.RedisAddr()))
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// The cache is optional; requests fall through to Postgres.
		lg.Warn("redis unavailable, history cache degraded", zap.Error(err))
	}

	clk := clock.NewSystem()

	bookingRepo := postgres.NewBookingRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	noteRepo := postgres.NewNoteRepository(db)
	historyCache := cache.NewHistoryCache(redisClient, cfg.CacheTTL)

	bookingService := services.NewBookingService(bookingRepo, historyCache, clk, lg)
	quotationService := services.NewQuotationService(bookingService, clk, lg)
	statsService := services.NewStatsService(statsRepo, lg)
	noteService := services.NewNoteService(noteRepo, lg)

	router := handler.NewRouter(
		handler.RouterConfig{
			Logger:          lg,
			JWTSecret:       cfg.JWTSecret,
			AllowedOrigins:  cfg.AllowedOrigins(),
			NotesRatePerMin: cfg.NotesRatePerMin,
		},
		handler.NewBookingHandler(bookingService, quotationService),
		handler.NewStatsHandler(statsService, clk),
		handler.NewNoteHandler(noteService),
		handler.NewHealthHandler(db),
	)

	server := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		lg.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server startup failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("server forced to shutdown", zap.Error(err))
	}

	lg.Info("server exiting")
}
