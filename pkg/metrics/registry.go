// Package metrics owns the Prometheus registry shared by dataview components.
//
// Metrics are opt-in. Until InitRegistry is called every constructor in this
// package returns nil, and components treat a nil metrics value as "record
// nothing".
//
// The Prometheus implementations live in pkg/metrics/prometheus and register
// their constructors here on import, which keeps the consumer packages free of
// a direct client_golang dependency.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
)

// InitRegistry creates a fresh registry with the Go runtime and process
// collectors attached and enables metrics collection.
//
// Calling it again replaces the registry; collectors created from the previous
// registry keep working but are no longer gathered.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mu.Lock()
	registry = reg
	mu.Unlock()
	return reg
}

// IsEnabled reports whether InitRegistry has been called.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return registry != nil
}

// GetRegistry returns the active registry, or nil when metrics are disabled.
func GetRegistry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// Disable drops the active registry. Constructors return nil afterwards.
func Disable() {
	mu.Lock()
	registry = nil
	mu.Unlock()
}
