// cmd/welfare-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"welfare-moa/internal/api"
	"welfare-moa/internal/cache"
	"welfare-moa/internal/catalog"
	"welfare-moa/internal/common/config"
	"welfare-moa/internal/common/database"
	"welfare-moa/internal/common/logger"
	"welfare-moa/internal/engine"
	"welfare-moa/internal/rules"
	"welfare-moa/internal/store"
	"welfare-moa/internal/survey"
	"welfare-moa/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting welfare recommendation server...",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	// --- Catalog, question bank, and rule table ---
	programs := catalog.DefaultPrograms()
	ruleTable := rules.DefaultTable()

	if cfg.Registry.OverlayPath != "" {
		reg, err := registry.LoadRegistry(cfg.Registry.OverlayPath)
		if err != nil {
			zapLog.Fatal("registry overlay load failed",
				zap.String("path", cfg.Registry.OverlayPath), zap.Error(err))
		}
		programs = reg.MergePrograms(programs)
		ruleTable = reg.MergeRules(ruleTable)
		zapLog.Info("registry overlay applied",
			zap.String("version", reg.Version),
			zap.Int("programs", len(reg.Programs)),
			zap.Int("rules", len(reg.Rules)),
		)
	}

	cat := catalog.New(programs)
	bank := survey.DefaultBank()

	// --- PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return pg.Ping(pingCtx)
	}, 5, 2*time.Second, zapLog, "PostgreSQL initialization")
	if err != nil {
		zapLog.Fatal("postgres unavailable", zap.Error(err))
	}
	defer pg.Close()

	// --- Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return rdb.Ping(pingCtx)
	}, 5, 2*time.Second, zapLog, "Redis initialization")
	if err != nil {
		zapLog.Fatal("redis unavailable", zap.Error(err))
	}
	defer rdb.Close()

	// --- Engine and service edge ---
	eng := engine.New(cat, bank, ruleTable, log,
		engine.WithMinScore(cfg.Engine.MinScore),
	)
	resultCache := cache.New(rdb.Client,
		time.Duration(cfg.Engine.ResultCacheTTLHours)*time.Hour, log)
	profiles := store.New(pg.DB,
		time.Duration(cfg.Engine.ProfileRetentionDays)*24*time.Hour, log)

	server := api.NewServer(eng, cat, bank, resultCache, profiles, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Retention purge runs daily; a missed tick just delays the purge.
	purgeCtx, stopPurge := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-purgeCtx.Done():
				return
			case now := <-ticker.C:
				if _, err := profiles.PurgeExpired(purgeCtx, now.UTC()); err != nil {
					zapLog.Warn("retention purge failed", zap.Error(err))
				}
			}
		}
	}()

	go func() {
		zapLog.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	stopPurge()

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
