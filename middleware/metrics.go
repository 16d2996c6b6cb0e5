package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the request counters exposed at /metrics.
type Metrics struct {
	endpointCalls *prometheus.CounterVec
	errors        *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		endpointCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kanban_endpoint_calls_total",
			Help: "Total number of calls per endpoint.",
		}, []string{"endpoint", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kanban_errors_total",
			Help: "Total number of responses with a 4xx or 5xx status.",
		}, []string{"endpoint", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kanban_request_duration_seconds",
			Help:    "Request handling time.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
	}
	for _, c := range []prometheus.Collector{m.endpointCalls, m.errors, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler records every request under its chi route pattern.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := routePattern(r)
		m.endpointCalls.WithLabelValues(endpoint, r.Method).Inc()
		m.duration.WithLabelValues(endpoint, r.Method).Observe(time.Since(start).Seconds())
		if status := statusOf(ww); status >= http.StatusBadRequest {
			m.errors.WithLabelValues(endpoint, r.Method, strconv.Itoa(status)).Inc()
		}
	})
}

// routePattern keeps label cardinality bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func statusOf(ww chimw.WrapResponseWriter) int {
	if status := ww.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
