package server

import (
	"context"
	"log/slog"
	"net"
	"sync"

	"github.com/pkg/errors"
	"gitlab.ozon.dev/safariproxd/rserv/internal/metrics"
	"gitlab.ozon.dev/safariproxd/rserv/internal/threadpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate minimock -i Submitter -o ./mock/submitter_mock.go -n SubmitterMock -p mock

// Submitter is the part of the worker pool the server needs.
type Submitter interface {
	Submit(job threadpool.Job) error
}

type Config struct {
	Address        string
	ReadBufferSize int
	BodyTokens     int
}

type Server struct {
	cfg     Config
	pool    Submitter
	logger  *slog.Logger
	metrics metrics.Provider
	tracer  trace.Tracer

	mu       sync.Mutex
	listener net.Listener
}

func New(cfg Config, pool Submitter, logger *slog.Logger, provider metrics.Provider) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if provider == nil {
		provider = metrics.NewNoOpProvider()
	}
	return &Server{
		cfg:     cfg,
		pool:    pool,
		logger:  logger,
		metrics: provider,
		tracer:  otel.Tracer("rserv/server"),
	}
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "listen on %s", s.cfg.Address)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln and submits one job per connection.
// It returns nil once ctx is done, closing ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() {
		if err := ln.Close(); err != nil {
			s.logger.Warn("listener close failed", "error", err)
		}
	})
	defer stop()

	s.logger.Info("TCP listening", "addr", ln.Addr().String())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("TCP listener stopped")
				return nil
			}
			return errors.Wrap(err, "accept")
		}
		s.metrics.ConnectionAccepted()

		if err := s.pool.Submit(s.connectionJob(ctx, conn)); err != nil {
			_ = conn.Close()
			_ = ln.Close()
			return errors.Wrap(err, "submit connection")
		}
	}
}

// Addr returns the listening address, or nil before Serve.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}
