package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/bank-bukti-api/api/swagger"
	"github.com/noah-isme/bank-bukti-api/internal/handler"
	internalmiddleware "github.com/noah-isme/bank-bukti-api/internal/middleware"
	"github.com/noah-isme/bank-bukti-api/internal/models"
	"github.com/noah-isme/bank-bukti-api/internal/repository"
	"github.com/noah-isme/bank-bukti-api/internal/seed"
	"github.com/noah-isme/bank-bukti-api/internal/service"
	"github.com/noah-isme/bank-bukti-api/pkg/cache"
	"github.com/noah-isme/bank-bukti-api/pkg/config"
	"github.com/noah-isme/bank-bukti-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/bank-bukti-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/bank-bukti-api/pkg/middleware/requestid"
)

// @title Bank Bukti API
// @version 0.1.0
// @description Audit evidence bank: requests, evidence and the fulfillment dashboard
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var snapshot models.Snapshot
	if cfg.Store.SeedDemoData {
		snapshot = seed.DemoSnapshot(time.Now())
		logr.Info("seeded demo data", zap.Int("permintaan", len(snapshot.Requests)), zap.Int("bukti", len(snapshot.Evidence)))
	}
	requestRepo := repository.NewRequestRepository(snapshot.Requests)
	evidenceRepo := repository.NewEvidenceRepository(snapshot.Evidence)

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	var redisClient *redis.Client
	if cfg.Dashboard.CacheEnabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis, 5*time.Second)
		if err != nil {
			logr.Warn("redis unavailable, dashboard cache disabled", zap.Error(err))
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.CacheEnabled && redisClient != nil)

	settingsSvc := service.NewSettingsService(cfg.Dashboard.WarningDays, logr)
	validate := service.NewValidator()

	requestSvc := service.NewRequestService(service.RequestServiceParams{
		Requests:  requestRepo,
		Evidence:  evidenceRepo,
		Settings:  settingsSvc,
		Cache:     cacheSvc,
		Validator: validate,
		Logger:    logr,
	})
	evidenceSvc := service.NewEvidenceService(service.EvidenceServiceParams{
		Evidence:  evidenceRepo,
		Requests:  requestRepo,
		Cache:     cacheSvc,
		Validator: validate,
		Logger:    logr,
	})
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Requests: requestRepo,
		Evidence: evidenceRepo,
		Settings: settingsSvc,
		Cache:    cacheSvc,
		Metrics:  metricsSvc,
		Logger:   logr,
		Config:   service.DashboardServiceConfig{CacheTTL: cfg.Dashboard.CacheTTL},
	})
	exportSvc := service.NewExportService(requestSvc, service.ExportConfig{
		Enabled: cfg.Exports.Enabled,
		Title:   cfg.Exports.Title,
	}, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.WithResponseMeta())
	if metricsSvc != nil {
		r.Use(internalmiddleware.Metrics(metricsSvc))
	}

	var metricsHandler http.Handler
	if metricsSvc != nil {
		metricsHandler = metricsSvc.Handler()
	}
	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Settings:  handler.NewSettingsHandler(settingsSvc),
		Requests:  handler.NewRequestHandler(requestSvc, exportSvc),
		Evidence:  handler.NewEvidenceHandler(evidenceSvc),
		Metrics:   handler.NewMetricsHandler(metricsHandler),
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "warningDays", settingsSvc.WarningDays())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
