package threadpool

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.ozon.dev/safariproxd/rserv/internal/metrics/mock"
)

func TestWorker_RunsJobsUntilQuit(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	w := newWorker(7, q, testOptions())

	var ran atomic.Int32
	for range 3 {
		require.NoError(t, q.Send(Execute(JobFunc(func() { ran.Add(1) }))))
	}
	require.NoError(t, q.Send(Quit()))

	assert.NoError(t, w.Join())
	assert.Equal(t, int32(3), ran.Load())
	assert.Equal(t, 7, w.ID())
	assert.False(t, w.Busy())
}

func TestWorker_LeavesLaterMessagesForOthers(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	require.NoError(t, q.Send(Quit()))
	require.NoError(t, q.Send(Execute(JobFunc(func() {}))))

	w := newWorker(0, q, testOptions())

	require.NoError(t, w.Join())
	assert.Equal(t, 1, q.Len())
}

func TestWorker_ReceiveFailureIsReported(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	w := newWorker(3, q, testOptions())

	q.Close()

	err := w.Join()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueueClosed)
	assert.Contains(t, err.Error(), "worker 3")
}

func TestWorker_RecoversFromPanickingJob(t *testing.T) {
	t.Parallel()
	ctrl := minimock.NewController(t)
	m := mock.NewProviderMock(ctrl)
	m.JobPanickedMock.Expect("panicky").Times(1)
	m.JobFinishedMock.Times(2).Set(func(pool string, duration time.Duration) {
		assert.Equal(t, "panicky", pool)
		assert.GreaterOrEqual(t, duration, time.Duration(0))
	})

	q := NewQueue()
	w := newWorker(0, q, testOptions(WithName("panicky"), WithMetrics(m)))

	var after atomic.Bool
	require.NoError(t, q.Send(Execute(JobFunc(func() { panic("boom") }))))
	require.NoError(t, q.Send(Execute(JobFunc(func() { after.Store(true) }))))
	require.NoError(t, q.Send(Quit()))

	done := make(chan error, 1)
	go func() { done <- w.Join() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after a panicking job")
	}
	assert.True(t, after.Load())
}

func TestWorker_GoexitInsideJobIsReported(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	w := newWorker(4, q, testOptions())

	require.NoError(t, q.Send(Execute(JobFunc(runtime.Goexit))))
	require.NoError(t, q.Send(Quit()))

	err := w.Join()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWorkerExited)
	assert.Contains(t, err.Error(), "worker 4")
	assert.False(t, w.Busy())
	assert.Equal(t, 1, q.Len())
}
