package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	HTTPRequestsTotal     prometheus.CounterVec
	HTTPRequestDuration   prometheus.HistogramVec
	HTTPActiveConnections prometheus.GaugeVec

	PostsCreatedTotal     prometheus.Counter
	ReactionsTotal        prometheus.CounterVec
	FollowTogglesTotal    prometheus.CounterVec
	SessionsIssuedTotal   prometheus.Counter
	ErrorsTotal           prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Initialize creates and registers all Prometheus metrics
func Initialize() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: *promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"method", "path", "status"},
			),
			HTTPActiveConnections: *promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "http_active_connections",
					Help: "Number of currently active HTTP connections",
				},
				[]string{"method", "path"},
			),
			PostsCreatedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "posts_created_total",
					Help: "Total number of posts composed",
				},
			),
			ReactionsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "reactions_total",
					Help: "Total number of like/dislike reactions recorded",
				},
				[]string{"kind"},
			),
			FollowTogglesTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "follow_toggles_total",
					Help: "Total number of follow/unfollow toggles",
				},
				[]string{"action"},
			),
			SessionsIssuedTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "sessions_issued_total",
					Help: "Total number of login sessions issued",
				},
			),
			ErrorsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "errors_total",
					Help: "Total number of application errors",
				},
				[]string{"component"},
			),
		}
	})
	return instance
}

// Get returns the metrics instance, initializing it if necessary
func Get() *Metrics {
	return Initialize()
}
