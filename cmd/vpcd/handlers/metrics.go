package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vpcd_http_requests_total",
			Help: "HTTP requests handled, by route, method and status code.",
		},
		[]string{"route", "method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vpcd_http_request_duration_seconds",
			Help:    "HTTP request latency, by route and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	provisionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vpcd_provision_operations_total",
			Help: "Provisioning operations, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument wraps a router with request counting and latency tracking.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		route := req.URL.Path
		if current := mux.CurrentRoute(req); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, req)

		requestsTotal.WithLabelValues(route, req.Method, strconv.Itoa(rec.status)).Inc()
		requestDuration.WithLabelValues(route, req.Method).Observe(time.Since(start).Seconds())
	})
}

// countOperation records the outcome of a provisioning operation.
func countOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	provisionTotal.WithLabelValues(operation, outcome).Inc()
}
