package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/shopcraft/backoffice/docs"
	"github.com/shopcraft/backoffice/internal/api"
	"github.com/shopcraft/backoffice/internal/api/handler"
	"github.com/shopcraft/backoffice/internal/core/service"
	"github.com/shopcraft/backoffice/internal/infrastructure/db/postgres"
	"github.com/shopcraft/backoffice/internal/infrastructure/db/redis"
	"github.com/shopcraft/backoffice/internal/infrastructure/janitor"
	"github.com/shopcraft/backoffice/internal/infrastructure/storage"
	"github.com/shopcraft/backoffice/internal/pkg/config"
	"github.com/shopcraft/backoffice/pkg/logger"
)

// @title           Shopcraft Back Office API
// @version         1.0
// @description     Role-gated back office API for catalog and user management.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
		MaxIdleConns: cfg.Postgres.MaxIdleConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensuring schema")
	}
	if err := postgres.Seed(ctx, db, cfg.SeedPassword, cfg.BcryptCost); err != nil {
		log.Fatal().Err(err).Msg("seeding database")
	}

	cache, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer cache.Close()

	images, err := storage.NewLocalImageStore(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("preparing upload storage")
	}

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	tokenRepo := postgres.NewTokenRepository(db)

	codec := service.NewTokenCodec(cfg.JWT.Secret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	authService := service.NewAuthService(userRepo, tokenRepo, codec, cfg.BcryptCost, log)
	productService := service.NewProductService(productRepo, images, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	userService := service.NewUserService(userRepo, tokenRepo, log)
	dashboardService := service.NewDashboardService(productRepo, categoryRepo, userRepo, redis.NewStatsCache(cache), log)

	e := api.NewRouter(api.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService, images),
		Category:  handler.NewCategoryHandler(categoryService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Health:    handler.NewHealthHandler(db, cache),
	}, codec, userRepo, images.Dir())

	if cfg.SessionSweepInterval > 0 {
		janitor.New(tokenRepo, cfg.SessionSweepInterval, log).Start(ctx)
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("starting server")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
