package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/clinic-scheduler/internal/db"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/slotlock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/logger"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/routes"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if !timezone.IsValid(cfg.ClinicTimezone) {
		log.WithField("timezone", cfg.ClinicTimezone).Warn("unknown clinic timezone, using UTC")
	}
	if err := validators.Register(); err != nil {
		log.WithError(err).Fatal("failed to register validators")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// STORAGE
	// ======================================================
	repo, db, sink, err := openStorage(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open storage")
	}

	dispatcher := audit.NewDispatcher(sink, log)
	defer dispatcher.Close()

	locker := openLocker(ctx, cfg, log)

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, cfg, routes.Deps{
		Repo:   repo,
		Locker: locker,
		Audit:  dispatcher,
		Log:    log,
		Clock:  ucAppointment.SystemClock(cfg.ClinicTimezone),
		DB:     db,
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}

func openStorage(cfg *config.Config, log *logrus.Logger) (domain.Repository, *gorm.DB, audit.Sink, error) {
	var seed []models.Doctor
	if cfg.SeedFile != "" {
		docs, err := infraRepo.LoadDoctorsFile(cfg.SeedFile)
		if err != nil {
			return nil, nil, nil, err
		}
		seed = docs
	}

	if cfg.StorageDriver == "memory" {
		log.WithField("doctors", len(seed)).Warn("using in-memory storage, data is lost on restart")
		return infraRepo.NewAppointmentMemoryRepository(seed...), nil, audit.NewLogSink(log), nil
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(seed) > 0 {
		n, err := dbpkg.SeedDoctors(db, seed)
		if err != nil {
			return nil, nil, nil, err
		}
		log.WithField("inserted", n).Info("doctors seeded")
	}
	return infraRepo.NewAppointmentGormRepository(db), db, audit.New(db), nil
}

// openLocker prefers Redis so every API instance shares slot locks. When
// Redis is unreachable the in-process locker still serializes this
// instance and the unique index covers the rest.
func openLocker(ctx context.Context, cfg *config.Config, log *logrus.Logger) slotlock.Locker {
	if cfg.RedisURL == "" {
		return slotlock.NewLocal()
	}

	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := slotlock.DialRedis(dialCtx, cfg.RedisURL)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, using in-process slot locks")
		return slotlock.NewLocal()
	}
	return slotlock.NewRedis(client, cfg.SlotLockTTL, log)
}
