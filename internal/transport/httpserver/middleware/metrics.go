package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

var registerCollectors sync.Once

// NewMetrics registers the HTTP collectors and returns the recording
// middleware. The collectors live in the default registry, so registration
// happens once no matter how many routers are built in the process. Paths
// are labeled with the chi route pattern, not the raw URL, to keep metric
// cardinality bounded.
func NewMetrics() func(http.Handler) http.Handler {
	registerCollectors.Do(func() {
		prometheus.MustRegister(requestCounter, requestDuration)
	})

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			var path string
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				path = rctx.RoutePattern()
			}
			if path == "" {
				path = r.URL.Path
			}
			status := strconv.Itoa(ww.Status())

			requestCounter.WithLabelValues(r.Method, path, status).Inc()
			requestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		})
	}
}
