package infra

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchSignals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		trigger   func(sigCh chan os.Signal, stop context.CancelFunc)
		wantCause func(t *testing.T, cause error)
	}{
		{
			name: "Signal_CancelsWithSignalCause",
			trigger: func(sigCh chan os.Signal, _ context.CancelFunc) {
				sigCh <- syscall.SIGTERM
			},
			wantCause: func(t *testing.T, cause error) {
				require.ErrorIs(t, cause, ErrShutdownSignal)
				assert.Contains(t, cause.Error(), syscall.SIGTERM.String())
			},
		},
		{
			name: "Stop_CancelsWithoutSignalCause",
			trigger: func(_ chan os.Signal, stop context.CancelFunc) {
				stop()
			},
			wantCause: func(t *testing.T, cause error) {
				assert.ErrorIs(t, cause, context.Canceled)
				assert.NotErrorIs(t, cause, ErrShutdownSignal)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sigCh := make(chan os.Signal, 1)
			ctx, stop := watchSignals(context.Background(), sigCh)
			defer stop()

			tt.trigger(sigCh, stop)

			select {
			case <-ctx.Done():
			case <-time.After(time.Second):
				t.Fatal("context was not cancelled")
			}
			tt.wantCause(t, context.Cause(ctx))
		})
	}
}

func TestSignalContext_StopReleasesContext(t *testing.T) {
	t.Parallel()
	ctx, stop := SignalContext(context.Background())
	require.NoError(t, ctx.Err())

	stop()
	require.Error(t, ctx.Err())
	assert.NotErrorIs(t, context.Cause(ctx), ErrShutdownSignal)
}
