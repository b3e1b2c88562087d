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
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/class-schedule-api/api/swagger"
	"github.com/noah-isme/class-schedule-api/internal/handler"
	internalmiddleware "github.com/noah-isme/class-schedule-api/internal/middleware"
	"github.com/noah-isme/class-schedule-api/internal/repository"
	"github.com/noah-isme/class-schedule-api/internal/router"
	"github.com/noah-isme/class-schedule-api/internal/service"
	"github.com/noah-isme/class-schedule-api/pkg/cache"
	"github.com/noah-isme/class-schedule-api/pkg/config"
	"github.com/noah-isme/class-schedule-api/pkg/database"
	"github.com/noah-isme/class-schedule-api/pkg/export"
	"github.com/noah-isme/class-schedule-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/class-schedule-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/class-schedule-api/pkg/middleware/requestid"
)

// @title Class Schedule API
// @version 1.0.0
// @description Weekly class timetable: lessons, subjects, week copy and exports.
// @BasePath /api
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logr.Fatal("failed to apply schema", zap.Error(err))
	}
	logr.Info("schema ready")

	metrics := service.NewMetricsService()
	cacheSvc := newCache(ctx, cfg, metrics, logr)
	validate := validator.New()

	lessons := repository.NewLessonRepository(db)
	lessonTimes := repository.NewLessonTimeRepository(db)

	handlers := router.Handlers{
		Auth: handler.NewAuthHandler(service.NewAuthService(repository.NewUserRepository(db), validate, logr)),
		Subjects: handler.NewSubjectHandler(service.NewSubjectService(
			repository.NewSubjectRepository(db), cacheSvc, metrics, logr)),
		Schedule: handler.NewScheduleHandler(service.NewScheduleService(
			lessons, repository.NewSeedRepository(db), cacheSvc, metrics, validate, logr)),
		Catalog: handler.NewCatalogHandler(service.NewCatalogService(
			lessonTimes, repository.NewRoomRepository(db), cacheSvc)),
		Export: handler.NewExportHandler(service.NewExportService(
			lessons, lessonTimes, cfg.Schedule.ReferenceDate,
			export.NewCSVExporter(), export.NewPDFExporter(cfg.Schedule.PDFFontPath), logr)),
		Metrics: handler.NewMetricsHandler(metrics, db),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))
	router.Mount(r, cfg.APIPrefix, handlers, cfg.Env != config.EnvProduction)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "cache", cacheSvc.Enabled())
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

// newCache connects Redis when caching is enabled. Any failure leaves the
// service disabled so reads go straight to Postgres.
func newCache(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) *service.CacheService {
	var repo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, cache disabled", zap.Error(err))
		} else {
			repo = repository.NewCacheRepository(client, logr)
		}
	}
	return service.NewCacheService(repo, metrics, cfg.Cache.TTL, logr, repo != nil)
}
