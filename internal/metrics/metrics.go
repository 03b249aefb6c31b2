package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsSubmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rserv_pool_jobs_submitted_total",
		Help: "The total number of jobs submitted to the pool",
	}, []string{"pool"})

	JobsFinishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rserv_pool_jobs_finished_total",
		Help: "The total number of jobs run to completion by a worker",
	}, []string{"pool"})

	JobPanicsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rserv_pool_job_panics_total",
		Help: "The total number of jobs that panicked",
	}, []string{"pool"})

	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rserv_pool_job_duration_seconds",
		Help:    "Duration of job execution in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"pool"})

	PoolWorkers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rserv_pool_workers",
		Help: "Number of workers in the pool",
	}, []string{"pool"})

	PoolActiveWorkers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rserv_pool_active_workers",
		Help: "Number of workers currently running a job",
	}, []string{"pool"})

	PoolQueueLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rserv_pool_queue_length",
		Help: "Current number of messages waiting in the pool queue",
	}, []string{"pool"})

	ConnectionsAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rserv_connections_accepted_total",
		Help: "The total number of accepted TCP connections",
	})

	ConnectionsHandledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rserv_connections_handled_total",
		Help: "The total number of handled TCP connections",
	}, []string{"status"})
)
