package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	AssignmentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mission_assignments_created_total",
			Help: "Assignment records inserted by daily reconciliation",
		},
	)

	AssignmentsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mission_assignments_completed_total",
			Help: "Assignments marked as completed",
		},
	)

	RefreshTokenReuse = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "refresh_token_reuse_total",
			Help: "Refresh attempts with a token that is no longer the current one",
		},
	)
)

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func RecordAssignmentsCreated(n int64) {
	if n <= 0 {
		return
	}
	AssignmentsCreated.Add(float64(n))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
