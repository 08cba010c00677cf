package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Matias-sh/mi-portafolio/pkg/endpoint"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records request counts and latencies per route.
type Metrics struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	Views     prometheus.Counter
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by route, method and status.",
			},
			[]string{"route", "method", "status"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		Views: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "writeup_views_total",
			Help: "Total number of write-up detail views.",
		}),
	}

	for _, collector := range []prometheus.Collector{m.requests, m.durations, m.Views} {
		if err := registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) For(route string) endpoint.Middleware {
	return func(next endpoint.ApiHandler) endpoint.ApiHandler {
		return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			apiErr := next(recorder, r)

			status := recorder.status
			if apiErr != nil {
				status = apiErr.Status
			}

			m.requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
			m.durations.WithLabelValues(route).Observe(time.Since(start).Seconds())

			return apiErr
		}
	}
}

// ViewRecorded satisfies the write-up handler's view hook.
func (m *Metrics) ViewRecorded() {
	if m != nil && m.Views != nil {
		m.Views.Inc()
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
