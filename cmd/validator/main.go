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

	"admission/internal/eligibility/handler"
	"admission/internal/platform/config"
	"admission/internal/platform/httpserver"
	"admission/internal/platform/logger"
	"admission/internal/platform/metrics"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// The eligibility engine itself lives in internal/eligibility.
func main() {
	cfg := config.ValidatorFromEnv()
	log := logger.New(handler.ServiceName)

	m := metrics.New()

	router := chi.NewRouter()
	handler.New(log, m).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting validator service", "addr", cfg.Addr)
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
		log.Error("validator service exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("validator service stopped")
}
