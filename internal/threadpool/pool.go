package threadpool

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gitlab.ozon.dev/safariproxd/rserv/internal/metrics"
	"go.uber.org/multierr"
)

var (
	ErrPoolClosed = errors.New("pool closed")
	ErrNilJob     = errors.New("job is nil")
)

// Pool owns a fixed set of workers and the sending side of their queue.
// The owner must call Close, typically via defer, on every exit path.
type Pool struct {
	name    string
	queue   *Queue
	workers []*Worker
	logger  *slog.Logger
	metrics metrics.Provider

	closeOnce sync.Once
	closeErr  error

	// gaugeMu orders periodic gauge updates against the final zeroing in
	// shutdown, so a stale tick never overwrites it.
	gaugeMu sync.Mutex
}

type Stats struct {
	Name    string `json:"name"`
	Workers int    `json:"workers"`
	Active  int    `json:"active"`
	Queued  int    `json:"queued"`
	Closed  bool   `json:"closed"`
}

// New starts size workers. A non-positive size is a programming error and
// panics.
func New(size int, opts ...Option) *Pool {
	if size <= 0 {
		panic(fmt.Sprintf("threadpool: size must be positive, got %d", size))
	}

	o := newOptions(opts)
	p := &Pool{
		name:    o.name,
		queue:   NewQueue(),
		workers: make([]*Worker, 0, size),
		logger:  o.logger.With("pool", o.name),
		metrics: o.metrics,
	}
	for i := range size {
		p.workers = append(p.workers, newWorker(i, p.queue, o))
	}

	p.metrics.UpdatePoolMetrics(p.name, size, 0, 0)
	p.logger.Info("pool started", "workers", size)
	return p
}

// Submit enqueues job and returns without waiting for it to start.
func (p *Pool) Submit(job Job) error {
	if job == nil {
		return ErrNilJob
	}
	if err := p.queue.Send(Execute(job)); err != nil {
		return errors.Wrapf(ErrPoolClosed, "submit to %q", p.name)
	}
	p.metrics.JobSubmitted(p.name)
	return nil
}

func (p *Pool) SubmitFunc(fn func()) error {
	if fn == nil {
		return ErrNilJob
	}
	return p.Submit(JobFunc(fn))
}

// MustSubmit is Submit for callers that treat a closed pool as a bug.
func (p *Pool) MustSubmit(job Job) {
	if err := p.Submit(job); err != nil {
		panic(err)
	}
}

// Close sends one Quit per worker behind everything already queued, then
// joins the workers in creation order. Every call returns the same result
// and none returns before all workers have exited.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.shutdown()
	})
	return p.closeErr
}

func (p *Pool) shutdown() error {
	p.logger.Info("pool stopping", "queued", p.queue.Len())

	if err := p.queue.Shutdown(len(p.workers)); err != nil {
		return errors.Wrap(err, "send quit signals")
	}

	var errs error
	for _, w := range p.workers {
		errs = multierr.Append(errs, w.Join())
	}

	p.gaugeMu.Lock()
	p.metrics.UpdatePoolMetrics(p.name, 0, 0, 0)
	p.gaugeMu.Unlock()

	if errs != nil {
		p.logger.Error("pool stopped with errors", "error", errs)
		return errs
	}
	p.logger.Info("pool stopped")
	return nil
}

func (p *Pool) Name() string {
	return p.name
}

func (p *Pool) Size() int {
	return len(p.workers)
}

func (p *Pool) QueueLen() int {
	return p.queue.Len()
}

// Active returns the number of workers running a job.
func (p *Pool) Active() int {
	n := 0
	for _, w := range p.workers {
		if w.Busy() {
			n++
		}
	}
	return n
}

func (p *Pool) Stats() Stats {
	return Stats{
		Name:    p.name,
		Workers: len(p.workers),
		Active:  p.Active(),
		Queued:  p.queue.Len(),
		Closed:  p.queue.Closed(),
	}
}

// ReportStats publishes pool gauges every interval until ctx is done.
func (p *Pool) ReportStats(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.Errorf("stats interval must be positive, got %s", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !p.publishStats() {
				return nil
			}
		}
	}
}

// publishStats reports false once the pool is closed and leaves the gauges
// to shutdown.
func (p *Pool) publishStats() bool {
	p.gaugeMu.Lock()
	defer p.gaugeMu.Unlock()

	s := p.Stats()
	if s.Closed {
		return false
	}
	p.metrics.UpdatePoolMetrics(p.name, s.Workers, s.Active, s.Queued)
	p.logger.Debug("pool stats",
		"active", s.Active,
		"total", s.Workers,
		"queued", s.Queued)
	return true
}
