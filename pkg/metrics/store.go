package metrics

import (
	"github.com/marmos91/dataview/pkg/manifest/store"
)

// NewStoreMetrics creates a Prometheus-backed store.Metrics instance.
//
// Returns nil if metrics are not enabled (InitRegistry not called).
func NewStoreMetrics() store.Metrics {
	if !IsEnabled() || newPrometheusStoreMetrics == nil {
		return nil
	}
	return newPrometheusStoreMetrics()
}

var newPrometheusStoreMetrics func() store.Metrics

// RegisterStoreMetricsConstructor registers the Prometheus store metrics constructor.
// Called by pkg/metrics/prometheus during package initialization.
func RegisterStoreMetricsConstructor(constructor func() store.Metrics) {
	newPrometheusStoreMetrics = constructor
}
