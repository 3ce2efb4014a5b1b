package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mfreitas/leetrack/internal/api"
	"github.com/mfreitas/leetrack/internal/config"
	"github.com/mfreitas/leetrack/internal/logger"
	"github.com/mfreitas/leetrack/internal/repository/sqlite"
	"github.com/mfreitas/leetrack/internal/services"
	"github.com/mfreitas/leetrack/internal/stats"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("leetrack server starting")
	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("period_start=%02d-%02d", cfg.PeriodStartMonth, cfg.PeriodStartDay)

	database, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	repo := sqlite.NewProblemRepository(database)
	period := stats.Period{StartMonth: time.Month(cfg.PeriodStartMonth), StartDay: cfg.PeriodStartDay}

	srv := &api.Server{
		ProblemService: services.NewProblemService(repo),
		ReviewService:  services.NewReviewService(repo),
		StatsService:   services.NewStatsService(repo, period),
		BackupService:  services.NewBackupService(repo),
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("leetrack server stopped")
}
