package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the planner's move pipeline.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	movesTotal      prometheus.Counter
	rejectionsTotal *prometheus.CounterVec
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	movesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_moves_total",
		Help: "Total number of applied subject moves",
	})

	rejectionsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_rejections_total",
		Help: "Total number of rejected placements by reason",
	}, []string{"reason"})

	registry.MustRegister(requestDuration, requestTotal, movesTotal, rejectionsTotal)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		movesTotal:      movesTotal,
		rejectionsTotal: rejectionsTotal,
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one request observation.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	s.requestDuration.With(labels).Observe(duration.Seconds())
	s.requestTotal.With(labels).Inc()
}

// ObserveMove counts an applied move.
func (s *MetricsService) ObserveMove() {
	s.movesTotal.Inc()
}

// ObserveRejection counts a rejected placement by reason code.
func (s *MetricsService) ObserveRejection(reason string) {
	s.rejectionsTotal.WithLabelValues(reason).Inc()
}
