package infra

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.ozon.dev/safariproxd/rserv/internal/threadpool"
)

type PoolStats interface {
	Stats() threadpool.Stats
}

type AdminServer struct {
	srv  *http.Server
	pool PoolStats
}

func NewAdmin(addr string, pool PoolStats) *AdminServer {
	as := &AdminServer{pool: pool}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", as.handleHealth)
	r.Get("/stats", as.handleStats)
	r.Handle("/metrics", promhttp.Handler())

	as.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	return as
}

func (a *AdminServer) Handler() http.Handler {
	return a.srv.Handler
}

func (a *AdminServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if a.pool.Stats().Closed {
		http.Error(w, "pool closed", http.StatusServiceUnavailable)
		return
	}
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.Warn("admin write failed", "error", err)
	}
}

func (a *AdminServer) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.pool.Stats()); err != nil {
		slog.Error("failed to encode pool stats", "error", err)
		http.Error(w, "encoding error", http.StatusInternalServerError)
	}
}

// ListenAndServe blocks until the server is shut down.
func (a *AdminServer) ListenAndServe() error {
	slog.Info("admin HTTP listening", "addr", a.srv.Addr)
	if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *AdminServer) Shutdown(ctx context.Context) {
	if err := a.srv.Shutdown(ctx); err != nil {
		slog.Warn("admin shutdown error", "error", err)
	}
}
