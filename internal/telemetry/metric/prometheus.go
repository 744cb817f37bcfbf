package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the request metrics of one process.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec
}

// NewRegistry creates a registry with all client metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sleurencli",
			Name:      "requests_total",
			Help:      "Requests sent to the monitoring service.",
		}, []string{"method", "resource", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sleurencli",
			Name:      "request_duration_seconds",
			Help:      "Round-trip time of requests to the monitoring service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "resource"}),
		RequestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sleurencli",
			Name:      "request_errors_total",
			Help:      "Requests that failed before a response arrived.",
		}, []string{"method", "resource"}),
	}

	r.registry.MustRegister(r.RequestsTotal, r.RequestDuration, r.RequestErrors)
	return r
}

// ObserveResponse records a completed request.
func (r *Registry) ObserveResponse(method, resource string, code int, elapsed time.Duration) {
	r.RequestsTotal.WithLabelValues(method, resource, strconv.Itoa(code)).Inc()
	r.RequestDuration.WithLabelValues(method, resource).Observe(elapsed.Seconds())
}

// ObserveError records a request that failed at the transport level.
func (r *Registry) ObserveError(method, resource string) {
	r.RequestErrors.WithLabelValues(method, resource).Inc()
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Total returns the number of requests that received a response.
func (r *Registry) Total() int {
	families, err := r.registry.Gather()
	if err != nil {
		return 0
	}

	var total float64
	for _, mf := range families {
		if mf.GetName() != "sleurencli_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return int(total)
}
