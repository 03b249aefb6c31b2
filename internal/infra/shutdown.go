package infra

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// ErrShutdownSignal is the cancellation cause of a SignalContext that was
// stopped by SIGINT or SIGTERM.
var ErrShutdownSignal = errors.New("shutdown signal received")

// SignalContext returns a context cancelled on SIGINT or SIGTERM. Calling
// stop releases the signal handler and cancels the context without a signal
// cause.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := watchSignals(parent, sigCh)
	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}

func watchSignals(parent context.Context, sigCh <-chan os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	go func() {
		select {
		case sig := <-sigCh:
			slog.Info("shutdown signal received", "signal", sig.String())
			cancel(errors.Wrap(ErrShutdownSignal, sig.String()))
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(nil) }
}

// Graceful runs the callbacks in order once ctx is done.
func Graceful(ctx context.Context, cb ...func(context.Context)) {
	<-ctx.Done()

	shutdownCtx := context.WithoutCancel(ctx)
	for _, f := range cb {
		f(shutdownCtx)
	}
	slog.Info("shutdown complete")
}
