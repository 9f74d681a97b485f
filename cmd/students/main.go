package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"admission/internal/platform/config"
	"admission/internal/platform/httpserver"
	"admission/internal/platform/logger"
	"admission/internal/platform/metrics"
	"admission/internal/platform/postgres"
	"admission/internal/student/handler"
	"admission/internal/student/service"
	"admission/internal/student/store"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in internal/student.
func main() {
	cfg := config.StudentsFromEnv()
	log := logger.New(handler.ServiceName)

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

	m := metrics.New()
	svc := service.New(studentStore, service.WithMetrics(m))

	router := chi.NewRouter()
	handler.New(svc, log, m).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting students service", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("students service exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("students service stopped")
}
