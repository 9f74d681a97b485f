package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"admission/internal/platform/config"
	"admission/internal/platform/logger"
	"admission/internal/platform/postgres"
	"admission/internal/student/service"
	"admission/internal/student/store"
)

// main runs one duplicate-cleanup pass and exits. Intended for cron or a
// one-off operator invocation, not a long-running process.
func main() {
	cfg := config.StudentsFromEnv()
	log := logger.New("student-dedupe")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	defer db.Close()

	studentStore := store.NewPostgresStore(db)
	if err := studentStore.EnsureSchema(ctx); err != nil {
		log.Error("failed to ensure schema", "error", err.Error())
		os.Exit(1)
	}

	removed, err := service.New(studentStore).RemoveDuplicates(ctx)
	if err != nil {
		log.Error("duplicate cleanup failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("duplicate cleanup finished", "removed", removed)
}
