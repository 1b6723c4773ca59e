package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	pg "vetsoft/internal/adapters/storage/postgres"
	"vetsoft/internal/platform/config"
	"vetsoft/internal/platform/logger"
	"vetsoft/internal/router"

	"github.com/jmoiron/sqlx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("config error", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		File:   cfg.LogFile,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sin DB_DSN se usa storage in-memory (modo dev)
	var db *sqlx.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			log.Error("postgres open failed", map[string]any{"err": err})
			os.Exit(1)
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			log.Error("postgres migrate failed", map[string]any{"err": err})
			_ = db.Close()
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{DB: db, Logger: log}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Addr()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"err": err})
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	log.Info("shutting down", nil)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", map[string]any{"err": err})
	}
}
