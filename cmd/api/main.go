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
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/backup"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/logging"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	raw, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open record store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() { _ = raw.Close() }()

	repo := repository.NewRecordRepository(metrics.InstrumentStore(raw, m), logger)
	if !timezone.IsValid(cfg.Timezone) {
		logger.Warn("unknown timezone, using default",
			zap.String("timezone", cfg.Timezone),
			zap.String("default", timezone.DefaultTimezone),
		)
	}
	clock := timezone.NewSystemClock(cfg.Timezone)

	hours, err := domain.NewBusinessHours(
		cfg.BusinessHoursStart,
		cfg.BusinessHoursEnd,
		time.Duration(cfg.SlotIntervalMinutes)*time.Minute,
	)
	if err != nil {
		logger.Warn("invalid business hours, using defaults", zap.Error(err))
		hours = domain.DefaultBusinessHours()
	}

	var archive *backup.Archive
	if cfg.ArchiveEnabled() {
		client := backup.NewS3Client(backup.S3Config{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.S3Endpoint,
		})
		archive = backup.NewArchive(client, cfg.BackupBucket)
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
		Repo:    repo,
		Clock:   clock,
		Hours:   hours,
		Backup:  backup.NewService(repo, clock, archive, logger),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
			zap.String("timezone", cfg.Timezone),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}

// openStore picks the record store backend named by STORE_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return store.NewMemory(), nil

	case config.DriverRedis:
		client, err := repository.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisStore(client, cfg.RedisPrefix), nil

	case config.DriverPostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(db), nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
