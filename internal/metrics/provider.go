package metrics

import "time"

//go:generate minimock -i Provider -o ./mock/provider_mock.go -n ProviderMock -p mock

type Provider interface {
	JobSubmitted(pool string)
	JobFinished(pool string, duration time.Duration)
	JobPanicked(pool string)

	UpdatePoolMetrics(pool string, workers, active, queueLen int)

	ConnectionAccepted()
	ConnectionHandled(status string)
}

type PrometheusProvider struct{}

func NewPrometheusProvider() *PrometheusProvider {
	return &PrometheusProvider{}
}

func (p *PrometheusProvider) JobSubmitted(pool string) {
	JobsSubmittedTotal.WithLabelValues(pool).Inc()
}

func (p *PrometheusProvider) JobFinished(pool string, duration time.Duration) {
	JobsFinishedTotal.WithLabelValues(pool).Inc()
	JobDuration.WithLabelValues(pool).Observe(duration.Seconds())
}

func (p *PrometheusProvider) JobPanicked(pool string) {
	JobPanicsTotal.WithLabelValues(pool).Inc()
}

func (p *PrometheusProvider) UpdatePoolMetrics(pool string, workers, active, queueLen int) {
	PoolWorkers.WithLabelValues(pool).Set(float64(workers))
	PoolActiveWorkers.WithLabelValues(pool).Set(float64(active))
	PoolQueueLength.WithLabelValues(pool).Set(float64(queueLen))
}

func (p *PrometheusProvider) ConnectionAccepted() {
	ConnectionsAcceptedTotal.Inc()
}

func (p *PrometheusProvider) ConnectionHandled(status string) {
	ConnectionsHandledTotal.WithLabelValues(status).Inc()
}

type NoOpProvider struct{}

func NewNoOpProvider() *NoOpProvider {
	return &NoOpProvider{}
}

func (p *NoOpProvider) JobSubmitted(pool string)                                     {}
func (p *NoOpProvider) JobFinished(pool string, duration time.Duration)              {}
func (p *NoOpProvider) JobPanicked(pool string)                                      {}
func (p *NoOpProvider) UpdatePoolMetrics(pool string, workers, active, queueLen int) {}
func (p *NoOpProvider) ConnectionAccepted()                                          {}
func (p *NoOpProvider) ConnectionHandled(status string)                              {}
