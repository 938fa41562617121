package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akshayraj-industries/website-backend/config"
	"github.com/akshayraj-industries/website-backend/db"
	"github.com/akshayraj-industries/website-backend/handlers"
	"github.com/akshayraj-industries/website-backend/internal/auth"
	"github.com/akshayraj-industries/website-backend/internal/images"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/router"
	"github.com/akshayraj-industries/website-backend/services"
	"github.com/akshayraj-industries/website-backend/store/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.InitLogger()
	defer func() { _ = logger.Close() }()
	log := logger.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalw("Failed to run migrations", "error", err)
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL())
	if err != nil {
		log.Fatalw("Failed to create database pool", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalw("Failed to ping database", "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = redisClient.Close() }()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Rate limits fail open without Redis; the forms keep working.
		log.Warnw("Redis unreachable at startup", "error", err)
	}

	inquiryStore := postgres.NewInquiryStore(pool)
	productStore := postgres.NewProductStore(pool)
	settingStore := postgres.NewSettingStore(pool)
	adminStore := postgres.NewAdminUserStore(pool)

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecretKey,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	limiter := services.NewRateLimitService(redisClient)
	notifier := services.NewEmailService(cfg)
	inquiryService := services.NewInquiryService(inquiryStore, limiter, notifier, cfg.RateLimit)
	authService := services.NewAuthService(adminStore, issuer)
	healthService := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	var uploader *images.Uploader
	if cfg.Upload.S3Bucket != "" {
		storage, err := images.NewS3Storage(ctx, cfg.Upload)
		if err != nil {
			log.Fatalw("Failed to initialize object storage", "error", err)
		}
		uploader = images.NewUploader(storage, cfg.Upload)
	} else {
		log.Warn("No S3 bucket configured, product image uploads disabled")
	}

	engine := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		TokenIssuer:     issuer,
		InquiryHandler:  handlers.NewInquiryHandler(inquiryService),
		ProductHandler:  handlers.NewProductHandler(productStore, uploader),
		SettingsHandler: handlers.NewSettingsHandler(settingStore),
		AdminHandler:    handlers.NewAdminHandler(authService, inquiryStore),
		HealthHandler:   handlers.NewHealthHandler(healthService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Server starting",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Graceful shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}
