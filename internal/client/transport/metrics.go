package transport

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	unauthenticated prometheus.Counter
	forbidden       prometheus.Counter
}

// newMetrics registers the client collectors on reg. A nil reg gets a
// private registry so several clients can coexist (tests, tools).
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "memberdesk",
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "Total number of backend requests, labeled by method and status.",
		}, []string{"method", "status"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "memberdesk",
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method"}),
		unauthenticated: f.NewCounter(prometheus.CounterOpts{
			Namespace: "memberdesk",
			Subsystem: "http_client",
			Name:      "unauthenticated_requests_total",
			Help:      "Requests sent without any bearer token.",
		}),
		forbidden: f.NewCounter(prometheus.CounterOpts{
			Namespace: "memberdesk",
			Subsystem: "http_client",
			Name:      "forbidden_responses_total",
			Help:      "Responses with status 403 that invalidated the session.",
		}),
	}
}

func statusLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
