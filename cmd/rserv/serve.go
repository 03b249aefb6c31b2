package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.ozon.dev/safariproxd/rserv/internal/config"
	"gitlab.ozon.dev/safariproxd/rserv/internal/infra"
	"gitlab.ozon.dev/safariproxd/rserv/internal/metrics"
	"gitlab.ozon.dev/safariproxd/rserv/internal/server"
	"gitlab.ozon.dev/safariproxd/rserv/internal/threadpool"
	"gitlab.ozon.dev/safariproxd/rserv/internal/tracing"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accepts TCP connections and answers each one on the worker pool.",
		RunE:  runServe,
	}
	cmd.Flags().String("addr", "", "TCP listen address (overrides config)")
	cmd.Flags().Int("workers", 0, "Number of pool workers (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Address = addr
	}
	if cmd.Flags().Changed("workers") {
		workers, _ := cmd.Flags().GetInt("workers")
		if workers <= 0 {
			return errors.Errorf("--workers must be positive, got %d", workers)
		}
		cfg.Pool.Workers = workers
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := infra.SignalContext(cmd.Context())
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:  cfg.Tracing.Enabled,
		Endpoint: cfg.Tracing.Endpoint,
	})
	if err != nil {
		return errors.Wrap(err, "init tracing")
	}
	defer shutdownTracing()

	provider := metrics.NewPrometheusProvider()
	pool := threadpool.New(cfg.Pool.Workers,
		threadpool.WithName("connections"),
		threadpool.WithLogger(logger),
		threadpool.WithMetrics(provider),
	)
	// Runs after the accept loop has returned, so no connection job is lost.
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Error("pool close failed", "error", err)
		}
	}()

	srv := server.New(server.Config{
		Address:        cfg.Server.Address,
		ReadBufferSize: cfg.Server.ReadBufferSize,
		BodyTokens:     cfg.Server.BodyTokens,
	}, pool, logger, provider)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx)
	})
	g.Go(func() error {
		return pool.ReportStats(gctx, cfg.Pool.StatsInterval)
	})
	if cfg.Admin.Enabled {
		admin := infra.NewAdmin(cfg.Admin.Address, pool)
		g.Go(admin.ListenAndServe)
		g.Go(func() error {
			infra.Graceful(gctx, func(ctx context.Context) {
				shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				admin.Shutdown(shutdownCtx)
			})
			return nil
		})
	}

	return g.Wait()
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
