package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gitlab.ozon.dev/safariproxd/rserv/internal/httpx"
	"gitlab.ozon.dev/safariproxd/rserv/internal/threadpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (s *Server) connectionJob(ctx context.Context, conn net.Conn) threadpool.Job {
	id := uuid.NewString()
	return threadpool.JobFunc(func() {
		s.handle(ctx, id, conn)
	})
}

func (s *Server) handle(ctx context.Context, id string, conn net.Conn) {
	ctx, span := s.tracer.Start(context.WithoutCancel(ctx), "connection.handle",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("conn.id", id),
			attribute.String("net.peer.addr", conn.RemoteAddr().String()),
		),
	)
	defer span.End()

	logger := s.logger.With("conn_id", id, "remote", conn.RemoteAddr().String())
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Debug("connection close failed", "error", err)
		}
	}()

	status := "ok"
	if err := s.respond(ctx, conn, logger); err != nil {
		status = "error"
		logger.Warn("connection handling failed", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	s.metrics.ConnectionHandled(status)
}

// respond reads one buffer of request bytes without parsing them and writes
// a fixed 200 response.
func (s *Server) respond(ctx context.Context, conn net.Conn, logger *slog.Logger) error {
	buf := make([]byte, s.cfg.ReadBufferSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "read request")
	}
	logger.DebugContext(ctx, "request received", "bytes", n, "payload", string(buf[:n]))

	stream := httpx.NewConnStream(conn)
	if err := httpx.NewResponse(httpx.StatusOK).WriteHeader(stream); err != nil {
		return errors.Wrap(err, "write header")
	}
	for i := range s.cfg.BodyTokens {
		if err := httpx.WriteString(stream, " "+strconv.Itoa(i)+" "); err != nil {
			return errors.Wrap(err, "write body")
		}
	}
	return errors.Wrap(stream.Flush(), "flush response")
}
