package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"hoaxify/docs"
	"hoaxify/internal/auth"
	"hoaxify/internal/cache"
	"hoaxify/internal/config"
	"hoaxify/internal/db"
	"hoaxify/internal/handler"
	"hoaxify/internal/logger"
	"hoaxify/internal/repository"
	"hoaxify/internal/router"
	"hoaxify/internal/service"
	"hoaxify/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Hoaxify API
// @version 1.0
// @description Social posting API with users, hoaxes, timeline pagination and profile images.
// @BasePath /api/1.0
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalw("database init", "error", err)
	}
	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalw("auto-migrate", "error", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() { _ = cacheClient.Close() }()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warnw("redis unavailable, tokens cannot be refreshed and caching is off", "addr", cfg.RedisAddr, "error", err)
	}

	images, err := newImageStorage(context.Background(), cfg)
	if err != nil {
		log.Fatalw("image storage init", "backend", cfg.StorageBackend, "error", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	hoaxRepo := repository.NewHoaxRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	userService := service.NewUserService(userRepo, images, cacheClient, log)
	hoaxService := service.NewHoaxService(hoaxRepo, userRepo)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)

	e := echo.New()
	router.Register(
		e,
		cfg,
		log,
		authService,
		handler.NewUserHandler(userService),
		handler.NewHoaxHandler(hoaxService),
		handler.NewAuthHandler(authService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	log.Infow("swagger documentation available", "path", "/swagger/index.html")

	go func() {
		addr := ":" + cfg.ServerPort
		log.Infow("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorw("graceful shutdown", "error", err)
	}
}

func newImageStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageBackend == config.StorageS3 {
		return storage.NewS3(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.ProfileImagesFolder,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewLocal(cfg.FullProfileImagesPath(), cfg.FullAttachmentsPath())
}
