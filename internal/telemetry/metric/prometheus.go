package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/propkit/pkg/props"
)

const namespace = "propkit"

// Registry holds all load metrics.
type Registry struct {
	reg *prometheus.Registry

	LoadsTotal        *prometheus.CounterVec
	LoadDuration      prometheus.Histogram
	KeysLoaded        prometheus.Gauge
	LastLoadTimestamp prometheus.Gauge
	ReloadsTotal      *prometheus.CounterVec
}

var _ props.Observer = (*Registry)(nil)

// NewRegistry creates the metrics and registers them with a private registry.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		LoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "loads_total",
			Help:      "Properties loads by result and error code",
		}, []string{"result", "code"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "load_duration_seconds",
			Help:      "Time spent parsing, validating and resolving a properties file",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		KeysLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "keys_loaded",
			Help:      "Number of keys stored by the last successful load",
		}),
		LastLoadTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "loader",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix timestamp of the last successful load",
		}),
		ReloadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "watch",
			Name:      "reloads_total",
			Help:      "Reloads triggered by file changes, by whether the resolved values changed",
		}, []string{"changed"}),
	}

	r.reg.MustRegister(
		r.LoadsTotal,
		r.LoadDuration,
		r.KeysLoaded,
		r.LastLoadTimestamp,
		r.ReloadsTotal,
	)
	return r
}

// ObserveLoad implements props.Observer.
func (r *Registry) ObserveLoad(e props.LoadEvent) {
	r.LoadDuration.Observe(e.Duration.Seconds())
	if e.Err != nil {
		code := props.Code(e.Err)
		if code == "" {
			code = "other"
		}
		r.LoadsTotal.WithLabelValues("error", code).Inc()
		return
	}
	r.LoadsTotal.WithLabelValues("ok", "").Inc()
	r.KeysLoaded.Set(float64(e.Keys))
	r.LastLoadTimestamp.Set(float64(time.Now().Unix()))
}

// ObserveReload counts a watch-triggered reload.
func (r *Registry) ObserveReload(changed bool) {
	label := "false"
	if changed {
		label = "true"
	}
	r.ReloadsTotal.WithLabelValues(label).Inc()
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics in the text exposition format.
// The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
