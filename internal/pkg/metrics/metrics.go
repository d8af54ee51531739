package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ProxyRequests counts proxied requests by method and upstream status ("error" for transport failures).
	ProxyRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vibe_tracker",
		Subsystem: "proxy",
		Name:      "requests_total",
		Help:      "Requests forwarded to the upstream marketplace API.",
	}, []string{"method", "status"})

	// ProxyDuration observes upstream round-trip time.
	ProxyDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "vibe_tracker",
		Subsystem: "proxy",
		Name:      "duration_seconds",
		Help:      "Upstream round-trip latency of proxied requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	// DashboardLoads counts dashboard load steps by step and outcome (ok, failed, fallback, stale).
	DashboardLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vibe_tracker",
		Subsystem: "dashboard",
		Name:      "loads_total",
		Help:      "Dashboard data loading steps by outcome.",
	}, []string{"step", "outcome"})

	registerOnce sync.Once
)

// MustRegisterMetrics registers all collectors with the default registry. Safe to call twice.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ProxyRequests, ProxyDuration, DashboardLoads)
	})
}

// StatusLabel renders a status code label; 0 means the request never got a response.
func StatusLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
