package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jyotish"

// Metrics коллекторы Prometheus для HTTP-сервиса и вызовов внешнего сервиса расчётов
type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	astroCalls   *prometheus.CounterVec
	astroLatency *prometheus.HistogramVec
	staleResults *prometheus.CounterVec
}

// MustNewMetrics регистрирует коллекторы в reg; ошибка регистрации приводит к панике
func MustNewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		gatherer: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled by the view service.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests handled by the view service.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		astroCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "astro_api",
			Name:      "calls_total",
			Help:      "Total number of calls to the astrology computation service.",
		}, []string{"endpoint", "outcome"}),
		astroLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "astro_api",
			Name:      "call_duration_seconds",
			Help:      "Latency of calls to the astrology computation service.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"endpoint"}),
		staleResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "views",
			Name:      "stale_results_total",
			Help:      "Results dropped because their view slot was reset or superseded.",
		}, []string{"view"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.astroCalls, m.astroLatency, m.staleResults)
	return m
}

// ObserveHTTP фиксирует обработанный HTTP-запрос
func (m *Metrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveAstroCall фиксирует вызов внешнего сервиса; outcome: ok, service_error, transport_error
func (m *Metrics) ObserveAstroCall(endpoint, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.astroCalls.WithLabelValues(endpoint, outcome).Inc()
	m.astroLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metrics) IncStaleResult(view string) {
	if m == nil {
		return
	}
	m.staleResults.WithLabelValues(view).Inc()
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
