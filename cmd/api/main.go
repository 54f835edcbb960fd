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
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	"github.com/BruksfildServices01/venue-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/venue-scheduler/internal/db"
	"github.com/BruksfildServices01/venue-scheduler/internal/infra/archive"
	"github.com/BruksfildServices01/venue-scheduler/internal/infra/payments"
	infraRepo "github.com/BruksfildServices01/venue-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/venue-scheduler/internal/infra/sequence"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/routes"
	"github.com/BruksfildServices01/venue-scheduler/internal/timezone"
)

func main() {

	// .env é opcional
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("main", "database: %v", err)
	}

	deps := routes.Dependencies{
		DB:                 db,
		Log:                log,
		Location:           timezone.Location(cfg.Timezone),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}

	// ======================================================
	// 🧾 AUDITORIA (worker assíncrono)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	deps.Audit = auditDispatcher

	// ======================================================
	// 🔢 NUMERAÇÃO DE RECIBOS
	// ======================================================
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()

		if err != nil {
			log.Warn("main", "redis unavailable (%v), using database sequencer", err)
			_ = rdb.Close()
		} else {
			deps.Sequencer = sequence.NewRedisSequencer(rdb, infraRepo.NewReceiptGormRepository(db))
			defer rdb.Close()
			log.Info("main", "receipt sequencer: redis %s", cfg.Redis.Addr)
		}
	}

	// ======================================================
	// 📦 ARQUIVO DE CONTRATOS (S3)
	// ======================================================
	if cfg.ArchiveEnabled() {
		deps.Archive = archive.NewS3Archive(archive.Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		log.Info("main", "contract archive: s3://%s", cfg.S3.Bucket)
	}

	// ======================================================
	// 💳 PAGAMENTOS
	// ======================================================
	if cfg.PaymentsEnabled() {
		mp, err := payments.NewMercadoPagoCheckout(cfg.MercadoPago.AccessToken)
		if err != nil {
			log.Warn("main", "mercado pago disabled: %v", err)
		} else {
			deps.Payments = mp
		}
	}

	r := gin.Default()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("main", "server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("main", "failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("main", "shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("main", "shutdown: %v", err)
	}

	// drena eventos pendentes antes de fechar o banco
	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("main", "server stopped")
}
