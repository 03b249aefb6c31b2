package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/rserv/internal/threadpool"
)

type staticStats threadpool.Stats

func (s staticStats) Stats() threadpool.Stats {
	return threadpool.Stats(s)
}

func TestAdmin_Endpoints(t *testing.T) {
	t.Parallel()
	running := staticStats{Name: "connections", Workers: 16, Active: 3, Queued: 7}

	tests := []struct {
		name       string
		pool       PoolStats
		method     string
		path       string
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "Healthz_Running",
			pool:       running,
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "ok", rec.Body.String())
			},
		},
		{
			name:       "Healthz_Closed",
			pool:       staticStats{Closed: true},
			method:     http.MethodGet,
			path:       "/healthz",
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "Stats",
			pool:       running,
			method:     http.MethodGet,
			path:       "/stats",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				var got threadpool.Stats
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, threadpool.Stats(running), got)
			},
		},
		{
			name:       "Stats_WrongMethod",
			pool:       running,
			method:     http.MethodPost,
			path:       "/stats",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "Metrics",
			pool:       running,
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "go_goroutines")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			admin := NewAdmin("127.0.0.1:0", tt.pool)
			rec := httptest.NewRecorder()
			admin.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
		})
	}
}

func TestAdmin_ListenAndServeStopsOnShutdown(t *testing.T) {
	t.Parallel()
	admin := NewAdmin("127.0.0.1:0", staticStats{})

	done := make(chan error, 1)
	go func() { done <- admin.ListenAndServe() }()

	time.Sleep(20 * time.Millisecond)
	admin.Shutdown(context.Background())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("admin server did not stop")
	}
}

func TestGraceful_RunsCallbacksInOrder(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	var order []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		Graceful(ctx,
			func(ctx context.Context) {
				assert.NoError(t, ctx.Err())
				order = append(order, "server")
			},
			func(context.Context) { order = append(order, "pool") },
		)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Graceful did not return")
	}
	assert.Equal(t, []string{"server", "pool"}, order)
}
