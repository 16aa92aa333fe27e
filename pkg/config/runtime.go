package config

import (
	"context"
	"fmt"

	"github.com/marmos91/dataview/internal/logger"
	"github.com/marmos91/dataview/internal/telemetry"
	"github.com/marmos91/dataview/pkg/manifest"
	"github.com/marmos91/dataview/pkg/manifest/store"
	"github.com/marmos91/dataview/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	// Registers the Prometheus metric constructors with pkg/metrics.
	_ "github.com/marmos91/dataview/pkg/metrics/prometheus"
)

// InitializeLogger configures the package-level logger from cfg.Logging.
func InitializeLogger(cfg *Config) error {
	return logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// InitializeTelemetry installs a tracer provider when telemetry is enabled.
// Exporters are passed through opts; the returned function flushes and
// shuts the provider down.
func InitializeTelemetry(ctx context.Context, cfg *Config, version string, opts ...sdktrace.TracerProviderOption) (func(context.Context) error, error) {
	return telemetry.Init(ctx, telemetry.Config{
		Enabled:         cfg.Telemetry.Enabled,
		ServiceName:     cfg.Telemetry.ServiceName,
		ServiceVersion:  version,
		SampleRate:      cfg.Telemetry.SampleRate,
		ShutdownTimeout: cfg.Telemetry.ShutdownTimeout,
	}, opts...)
}

// MetricsResult holds the metrics created by InitializeMetrics. All fields
// are nil when metrics are disabled.
type MetricsResult struct {
	// Registry gathers every dataview metric; expose it with promhttp.
	Registry *prometheus.Registry
	Codec    manifest.Metrics
	Store    store.Metrics
}

// StoreOptions returns the store options wiring these metrics.
func (r *MetricsResult) StoreOptions() []store.Option {
	if r == nil {
		return nil
	}
	var opts []store.Option
	if r.Codec != nil {
		opts = append(opts, store.WithMetrics(r.Codec))
	}
	if r.Store != nil {
		opts = append(opts, store.WithStoreMetrics(r.Store))
	}
	return opts
}

// InitializeMetrics creates the metrics registry and collectors when
// cfg.Metrics.Enabled is set. It must run before OpenStore.
func InitializeMetrics(cfg *Config) *MetricsResult {
	if !cfg.Metrics.Enabled {
		logger.Debug("Metrics disabled")
		return &MetricsResult{}
	}

	reg := metrics.InitRegistry()
	logger.Debug("Metrics enabled")
	return &MetricsResult{
		Registry: reg,
		Codec:    metrics.NewCodecMetrics(),
		Store:    metrics.NewStoreMetrics(),
	}
}

// OpenStore opens the manifest store described by cfg.Store and cfg.Codec.
func OpenStore(cfg *Config, opts ...store.Option) (*store.Store, error) {
	st, err := store.Open(store.Config{
		Path:            cfg.Store.Path,
		InMemory:        cfg.Store.InMemory,
		SyncWrites:      cfg.Store.SyncWrites,
		MaxManifestSize: cfg.Codec.MaxManifestSize.Int(),
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest store: %w", err)
	}
	return st, nil
}

// NewManifestValidator returns a validator resolving schema paths under
// cfg.Codec.SchemaRoot.
func NewManifestValidator(cfg *Config) *manifest.Validator {
	return manifest.NewValidator(cfg.Codec.SchemaRoot)
}
