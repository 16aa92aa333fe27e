package metrics

import (
	"github.com/marmos91/dataview/pkg/manifest"
)

// NewCodecMetrics creates a Prometheus-backed manifest.Metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called) or if the
// prometheus implementation package was never imported. Callers pass the
// result straight to the manifest store, which skips recording on nil.
//
// Example usage:
//
//	metrics.InitRegistry()
//	st, err := store.Open(cfg, store.WithMetrics(metrics.NewCodecMetrics()))
func NewCodecMetrics() manifest.Metrics {
	if !IsEnabled() || newPrometheusCodecMetrics == nil {
		return nil
	}
	return newPrometheusCodecMetrics()
}

// newPrometheusCodecMetrics is implemented in pkg/metrics/prometheus/codec.go.
var newPrometheusCodecMetrics func() manifest.Metrics

// RegisterCodecMetricsConstructor registers the Prometheus codec metrics constructor.
// Called by pkg/metrics/prometheus during package initialization.
func RegisterCodecMetricsConstructor(constructor func() manifest.Metrics) {
	newPrometheusCodecMetrics = constructor
}
