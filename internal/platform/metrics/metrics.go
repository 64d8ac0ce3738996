// Package metrics holds the Prometheus collectors of the exchange service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "currency_exchange"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	conversions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "calculator",
			Name:      "conversions_total",
			Help:      "Server-side conversions by direction and validity.",
		},
		[]string{"direction", "valid"},
	)

	catalogWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "writes_total",
			Help:      "Admin writes to the price catalog.",
		},
		[]string{"operation"},
	)

	commentsPosted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "comments",
			Name:      "posted_total",
			Help:      "Comments submitted by visitors.",
		},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "admin",
			Name:      "logins_total",
			Help:      "Admin login attempts by outcome.",
		},
		[]string{"success"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		conversions,
		catalogWrites,
		commentsPosted,
		logins,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request in flight and returns the func that records it.
func RequestStarted(method string) func(path string, status int) {
	start := time.Now()
	httpInFlight.Inc()
	return func(path string, status int) {
		httpInFlight.Dec()
		if path == "" {
			path = "unmatched"
		}
		m := strings.ToUpper(method)
		httpRequests.WithLabelValues(m, path, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(m, path).Observe(time.Since(start).Seconds())
	}
}

// RecordConversion counts one conversion.
func RecordConversion(direction string, valid bool) {
	conversions.WithLabelValues(direction, strconv.FormatBool(valid)).Inc()
}

// RecordCatalogWrite counts one admin catalog operation.
func RecordCatalogWrite(operation string) {
	catalogWrites.WithLabelValues(operation).Inc()
}

// RecordCommentPosted counts one visitor comment.
func RecordCommentPosted() {
	commentsPosted.Inc()
}

// RecordLogin counts one admin login attempt.
func RecordLogin(success bool) {
	logins.WithLabelValues(strconv.FormatBool(success)).Inc()
}
