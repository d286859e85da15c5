// Package metrics exposes Prometheus metrics for the HTTP API and network totals.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"swapnet-ops/internal/selectors"
)

const namespace = "swapnet"

// SummarySource supplies the network aggregates exported as gauges.
type SummarySource interface {
	Summary() selectors.NetworkSummary
}

// Metrics holds the registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	SimulationRuns       *prometheus.CounterVec
	Actions              *prometheus.CounterVec
}

// New creates a registry with Go and process collectors plus the HTTP and
// action collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}
	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)
	m.HTTPRequestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "http_requests_in_flight",
		Help:      "Number of HTTP requests currently being processed",
	})
	m.SimulationRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_runs_total",
			Help:      "Simulation runs started, by kind",
		},
		[]string{"kind"},
	)
	m.Actions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_actions_total",
			Help:      "Store actions issued through the API, by role, action and whether an id matched",
		},
		[]string{"role", "action", "matched"},
	)
	registry.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDuration, m.HTTPRequestsInFlight, m.SimulationRuns, m.Actions)
	return m
}

// RegisterNetwork adds gauges that read the current network summary at scrape time.
func (m *Metrics) RegisterNetwork(src SummarySource) {
	gauge := func(name, help string, fn func(selectors.NetworkSummary) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "network",
			Name:      name,
			Help:      help,
		}, func() float64 { return fn(src.Summary()) })
	}
	m.registry.MustRegister(
		gauge("chargers_total", "Installed chargers", func(s selectors.NetworkSummary) float64 { return float64(s.TotalChargers) }),
		gauge("chargers_active", "Active chargers", func(s selectors.NetworkSummary) float64 { return float64(s.ActiveChargers) }),
		gauge("alerts", "Open alerts over all stations", func(s selectors.NetworkSummary) float64 { return float64(s.TotalAlerts) }),
		gauge("station_load_avg", "Mean station load in percent", func(s selectors.NetworkSummary) float64 { return s.AverageStationLoad }),
		gauge("efficiency_avg", "Mean station efficiency in percent", func(s selectors.NetworkSummary) float64 { return s.NetworkEfficiency }),
		gauge("stations_offline", "Stations reporting offline", func(s selectors.NetworkSummary) float64 { return float64(s.Operational.OfflineStations) }),
	)
}

// Registry returns the prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// RecordAction counts a store action issued through the API.
func (m *Metrics) RecordAction(role, action string, matched bool) {
	m.Actions.WithLabelValues(role, action, strconv.FormatBool(matched)).Inc()
}

// RecordSimulationRun counts a started simulation.
func (m *Metrics) RecordSimulationRun(kind string) {
	m.SimulationRuns.WithLabelValues(kind).Inc()
}

// Middleware records request counts and latency per route pattern.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// Endpoint returns a gin handler for /metrics.
func (m *Metrics) Endpoint() gin.HandlerFunc {
	h := m.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
