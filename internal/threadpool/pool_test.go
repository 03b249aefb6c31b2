package threadpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/rserv/internal/metrics/mock"
)

func newTestPool(t *testing.T, size int, opts ...Option) *Pool {
	t.Helper()
	p := New(size, append([]Option{WithLogger(discardLogger)}, opts...)...)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func closeWithin(t *testing.T, p *Pool, d time.Duration) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- p.Close() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(d):
		t.Fatalf("Close did not return within %s", d)
	}
}

func TestNew_PanicsOnNonPositiveSize(t *testing.T) {
	t.Parallel()
	for _, size := range []int{0, -1, -100} {
		assert.Panics(t, func() { New(size) }, "size %d", size)
	}
}

func TestNew_SpawnsExactlySizeWorkers(t *testing.T) {
	t.Parallel()
	for _, size := range []int{1, 4, 16} {
		p := newTestPool(t, size)

		assert.Equal(t, size, p.Size())
		require.Len(t, p.workers, size)
		for i, w := range p.workers {
			assert.Equal(t, i, w.ID())
		}
	}
}

func TestPool_RunsEveryJobExactlyOnce(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		size int
		jobs int
	}{
		{name: "NoJobs", size: 2, jobs: 0},
		{name: "SingleJob", size: 1, jobs: 1},
		{name: "FewerJobsThanWorkers", size: 8, jobs: 3},
		{name: "ManyJobs", size: 4, jobs: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestPool(t, tt.size)

			counts := make([]atomic.Int32, tt.jobs)
			for i := range tt.jobs {
				require.NoError(t, p.SubmitFunc(func() { counts[i].Add(1) }))
			}
			closeWithin(t, p, 5*time.Second)

			for i := range counts {
				assert.Equal(t, int32(1), counts[i].Load(), "job %d", i)
			}
		})
	}
}

func TestPool_SingleWorkerKeepsSubmissionOrder(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 1)

	var (
		mu  sync.Mutex
		got []int
	)
	for i := range 10 {
		require.NoError(t, p.SubmitFunc(func() {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, i)
		}))
	}
	closeWithin(t, p, time.Second)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestPool_PerProducerOrderWithConcurrentProducers(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 1)

	const (
		producers = 8
		perProd   = 50
	)
	var (
		mu   sync.Mutex
		seen = make(map[int][]int, producers)
		wg   sync.WaitGroup
	)
	for prod := range producers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seq := range perProd {
				err := p.SubmitFunc(func() {
					mu.Lock()
					defer mu.Unlock()
					seen[prod] = append(seen[prod], seq)
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	closeWithin(t, p, 5*time.Second)

	require.Len(t, seen, producers)
	for prod, seqs := range seen {
		require.Len(t, seqs, perProd, "producer %d", prod)
		for i, seq := range seqs {
			assert.Equal(t, i, seq, "producer %d", prod)
		}
	}
}

func TestPool_CloseReturnsAndStopsAllWorkers(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 4)

	for range 1000 {
		require.NoError(t, p.SubmitFunc(func() {}))
	}
	closeWithin(t, p, 5*time.Second)

	for _, w := range p.workers {
		select {
		case <-w.done:
		default:
			t.Fatalf("worker %d still running after Close", w.ID())
		}
	}
}

func TestPool_JobsSubmittedBeforeCloseStillRun(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 2)

	gate := make(chan struct{})
	var ran atomic.Int32
	for range 2 {
		require.NoError(t, p.SubmitFunc(func() {
			<-gate
			ran.Add(1)
		}))
	}
	for range 50 {
		require.NoError(t, p.SubmitFunc(func() { ran.Add(1) }))
	}

	closed := make(chan error, 1)
	go func() { closed <- p.Close() }()

	select {
	case <-closed:
		t.Fatal("Close returned while jobs were still running")
	case <-time.After(20 * time.Millisecond):
	}

	close(gate)
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.Equal(t, int32(52), ran.Load())
}

func TestPool_SubmitAfterClose(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 2)
	require.NoError(t, p.Close())

	err := p.SubmitFunc(func() {})
	assert.ErrorIs(t, err, ErrPoolClosed)
	assert.Panics(t, func() { p.MustSubmit(JobFunc(func() {})) })
}

func TestPool_CloseIsIdempotent(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 3)
	require.NoError(t, p.SubmitFunc(func() { time.Sleep(10 * time.Millisecond) }))

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.Close())
			for _, w := range p.workers {
				select {
				case <-w.done:
				default:
					t.Errorf("Close returned before worker %d exited", w.ID())
				}
			}
		}()
	}
	wg.Wait()
	assert.NoError(t, p.Close())
}

func TestPool_SurvivesPanickingJob(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 1)

	var ran atomic.Int32
	require.NoError(t, p.SubmitFunc(func() { panic("job failed") }))
	for range 5 {
		require.NoError(t, p.SubmitFunc(func() { ran.Add(1) }))
	}
	closeWithin(t, p, time.Second)

	assert.Equal(t, int32(5), ran.Load())
}

func TestPool_RejectsNilJob(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 1)

	assert.ErrorIs(t, p.Submit(nil), ErrNilJob)
	assert.ErrorIs(t, p.SubmitFunc(nil), ErrNilJob)
}

func TestPool_Stats(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 2, WithName("stats"))

	release := make(chan struct{})
	require.NoError(t, p.SubmitFunc(func() { <-release }))

	assert.Eventually(t, func() bool { return p.Active() == 1 }, time.Second, time.Millisecond)
	s := p.Stats()
	assert.Equal(t, "stats", s.Name)
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, 1, s.Active)
	assert.False(t, s.Closed)

	close(release)
	closeWithin(t, p, time.Second)

	s = p.Stats()
	assert.Zero(t, s.Active)
	assert.Zero(t, s.Queued)
	assert.True(t, s.Closed)
}

func TestPool_ReportsMetrics(t *testing.T) {
	t.Parallel()
	ctrl := minimock.NewController(t)
	m := mock.NewProviderMock(ctrl)

	var gauges [][3]int
	m.UpdatePoolMetricsMock.Times(2).Set(func(pool string, workers, active, queueLen int) {
		assert.Equal(t, "metered", pool)
		gauges = append(gauges, [3]int{workers, active, queueLen})
	})
	m.JobSubmittedMock.Expect("metered").Times(3)
	m.JobFinishedMock.Times(3).Set(func(pool string, _ time.Duration) {
		assert.Equal(t, "metered", pool)
	})

	p := newTestPool(t, 2, WithName("metered"), WithMetrics(m))
	for range 3 {
		require.NoError(t, p.SubmitFunc(func() {}))
	}
	closeWithin(t, p, time.Second)

	assert.Equal(t, [][3]int{{2, 0, 0}, {0, 0, 0}}, gauges)
}

func TestPool_ReportStats(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 1)

	assert.Error(t, p.ReportStats(context.Background(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.ReportStats(ctx, time.Millisecond) }()

	time.Sleep(5 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ReportStats did not stop on context cancel")
	}
}

func TestPool_CloseLeavesGaugesZeroWhileReporting(t *testing.T) {
	t.Parallel()
	ctrl := minimock.NewController(t)

	for round := range 50 {
		m := mock.NewProviderMock(ctrl)
		var (
			mu   sync.Mutex
			last [3]int
		)
		m.UpdatePoolMetricsMock.Set(func(_ string, workers, active, queueLen int) {
			mu.Lock()
			last = [3]int{workers, active, queueLen}
			mu.Unlock()
		})

		p := New(2, WithLogger(discardLogger), WithMetrics(m))
		ctx, cancel := context.WithCancel(context.Background())
		reported := make(chan error, 1)
		go func() { reported <- p.ReportStats(ctx, time.Microsecond) }()

		time.Sleep(50 * time.Microsecond)
		require.NoError(t, p.Close())
		cancel()
		require.NoError(t, <-reported)

		mu.Lock()
		assert.Equal(t, [3]int{0, 0, 0}, last, "round %d", round)
		mu.Unlock()
	}
}

func TestPool_CloseReportsWorkerLostInsideJob(t *testing.T) {
	t.Parallel()
	p := newTestPool(t, 2)

	var ran atomic.Int32
	require.NoError(t, p.SubmitFunc(runtime.Goexit))
	for range 5 {
		require.NoError(t, p.SubmitFunc(func() { ran.Add(1) }))
	}

	done := make(chan error, 1)
	go func() { done <- p.Close() }()
	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrWorkerExited)
	case <-time.After(time.Second):
		t.Fatal("Close did not return after a worker exited inside a job")
	}
	assert.Equal(t, int32(5), ran.Load())
}
