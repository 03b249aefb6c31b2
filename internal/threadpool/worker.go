package threadpool

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"gitlab.ozon.dev/safariproxd/rserv/internal/metrics"
)

// ErrWorkerExited is reported by a worker whose goroutine ended inside a job,
// for example through runtime.Goexit, before it received Quit.
var ErrWorkerExited = errors.New("worker exited without quit")

// Worker runs messages from a shared queue on its own goroutine until it
// receives Quit.
type Worker struct {
	id      int
	pool    string
	queue   *Queue
	logger  *slog.Logger
	metrics metrics.Provider

	busy atomic.Bool
	done chan struct{}
	err  error
}

func newWorker(id int, queue *Queue, o options) *Worker {
	w := &Worker{
		id:      id,
		pool:    o.name,
		queue:   queue,
		logger:  o.logger.With("pool", o.name, "worker", id),
		metrics: o.metrics,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Worker) ID() int {
	return w.id
}

// Busy reports whether the worker is running a job right now.
func (w *Worker) Busy() bool {
	return w.busy.Load()
}

// Join blocks until the worker goroutine has exited and returns the reason it
// stopped abnormally, if any.
func (w *Worker) Join() error {
	<-w.done
	return w.err
}

func (w *Worker) loop() {
	stopped := false
	defer func() {
		if !stopped {
			w.err = errors.Wrapf(ErrWorkerExited, "worker %d", w.id)
			w.logger.Error("worker goroutine exited inside a job")
		}
		close(w.done)
	}()

	for {
		msg, err := w.queue.Receive()
		if err != nil {
			// The queue was closed before this worker got its Quit.
			w.err = errors.Wrapf(err, "worker %d: receive", w.id)
			w.logger.Error("worker terminated without quit signal", "error", err)
			stopped = true
			return
		}

		switch msg.Kind {
		case KindQuit:
			w.logger.Debug("worker stopped")
			stopped = true
			return
		case KindExecute:
			w.run(msg.Job)
		default:
			w.logger.Warn("unknown message dropped", "kind", msg.Kind.String())
		}
	}
}

func (w *Worker) run(job Job) {
	w.busy.Store(true)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("job panic recovered",
				"panic", fmt.Sprintf("%v", r),
				"stack_trace", string(debug.Stack()),
			)
			w.metrics.JobPanicked(w.pool)
		}
		w.metrics.JobFinished(w.pool, time.Since(start))
		w.busy.Store(false)
	}()

	job.Run()
}
