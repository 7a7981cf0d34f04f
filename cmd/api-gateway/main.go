package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/scholar-hours-api/api/swagger"
	"github.com/noah-isme/scholar-hours-api/internal/handler"
	"github.com/noah-isme/scholar-hours-api/internal/middleware"
	"github.com/noah-isme/scholar-hours-api/internal/repository"
	"github.com/noah-isme/scholar-hours-api/internal/router"
	"github.com/noah-isme/scholar-hours-api/internal/service"
	"github.com/noah-isme/scholar-hours-api/pkg/cache"
	"github.com/noah-isme/scholar-hours-api/pkg/config"
	"github.com/noah-isme/scholar-hours-api/pkg/database"
	"github.com/noah-isme/scholar-hours-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/scholar-hours-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/scholar-hours-api/pkg/middleware/requestid"
)

// @title Scholar Hours API
// @version 1.0.0
// @description Volunteer hour tracking and compliance reporting for scholarship programs
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	loc, err := time.LoadLocation(cfg.Program.Timezone)
	if err != nil {
		logr.Sugar().Warnw("invalid program timezone, falling back to UTC", "timezone", cfg.Program.Timezone)
		loc = time.UTC
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	scholarRepo := repository.NewScholarRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if redisClient != nil {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Reports.ReportCacheTTL, logr, cfg.Reports.CacheEnabled)
		defer cacheRepo.Close() //nolint:errcheck
	}

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	scholarSvc := service.NewScholarService(scholarRepo, userRepo, activityRepo, cacheSvc, validate, logr, cfg.Program.DefaultRequiredHours, loc)
	activitySvc := service.NewActivityService(activityRepo, scholarRepo, cacheSvc, metricsSvc, validate, logr)
	categorySvc := service.NewCategoryService(categoryRepo, validate, logr)
	reportSvc := service.NewReportService(scholarRepo, activityRepo, cacheSvc, metricsSvc, logr, loc, cfg.Reports.ReportCacheTTL)
	dashboardSvc := service.NewDashboardService(scholarRepo, activityRepo, cacheSvc, logr, loc, cfg.Reports.DashboardCacheTTL)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	router.Register(r, cfg.APIPrefix, router.Dependencies{
		Auth:       authSvc,
		Metrics:    metricsSvc,
		AuthH:      handler.NewAuthHandler(authSvc),
		ScholarH:   handler.NewScholarHandler(scholarSvc),
		ActivityH:  handler.NewActivityHandler(activitySvc),
		CategoryH:  handler.NewCategoryHandler(categorySvc),
		ReportH:    handler.NewReportHandler(reportSvc),
		DashboardH: handler.NewDashboardHandler(dashboardSvc),
		MetricsH:   handler.NewMetricsHandler(metricsSvc, db),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Sugar().Warnw("graceful shutdown failed", "error", err)
	}
	logr.Sugar().Infow("server stopped")
}
