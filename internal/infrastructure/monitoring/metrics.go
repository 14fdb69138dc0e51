package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the asset server and window metrics on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Window metrics
	WindowState  *prometheus.GaugeVec
	WindowUptime prometheus.Gauge

	snapshot Snapshot
	mu       sync.Mutex
}

// Snapshot holds running totals for the shutdown summary.
type Snapshot struct {
	TotalRequests int64
	NotFound      int64
	ServerErrors  int64
	BytesServed   int64
	TotalDuration time.Duration
}

// NewMetrics creates a collector backed by a fresh registry, so several
// instances can coexist in one process.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "taupy_asset_requests_total",
				Help: "Total number of asset server requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "taupy_asset_request_duration_seconds",
				Help:    "Asset request duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "taupy_asset_response_size_bytes",
				Help:    "Asset response size in bytes",
				Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
			},
			[]string{"method"},
		),

		WindowState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "taupy_window_state",
				Help: "1 for the current window lifecycle state, 0 otherwise",
			},
			[]string{"state"},
		),
		WindowUptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "taupy_window_uptime_seconds",
				Help: "Seconds the event loop ran before the window closed",
			},
		),
	}
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method string, status int, duration time.Duration, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, statusLabel(status)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration
	m.snapshot.BytesServed += respSize
	switch {
	case status == 404:
		m.snapshot.NotFound++
	case status >= 500:
		m.snapshot.ServerErrors++
	}
	m.mu.Unlock()
}

// SetWindowState marks state as current and clears the others.
func (m *Metrics) SetWindowState(state string, all []string) {
	for _, s := range all {
		m.WindowState.WithLabelValues(s).Set(0)
	}
	m.WindowState.WithLabelValues(state).Set(1)
}

// SetWindowUptime records how long the event loop ran.
func (m *Metrics) SetWindowUptime(d time.Duration) {
	m.WindowUptime.Set(d.Seconds())
}

// Snapshot returns a copy of the running totals.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}

// AverageDuration is the mean request latency, zero before the first request.
func (s Snapshot) AverageDuration() time.Duration {
	if s.TotalRequests == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.TotalRequests)
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
