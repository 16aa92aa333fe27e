package telemetry

import "time"

// Config holds OpenTelemetry configuration
type Config struct {
	// Enabled installs an SDK tracer provider. When false, spans go to
	// whatever provider the host process registered with otel, which is a
	// no-op by default.
	Enabled bool

	// ServiceName is the name reported on the trace resource
	ServiceName string

	// ServiceVersion is the version reported on the trace resource
	ServiceVersion string

	// SampleRate is the trace sampling rate (0.0 to 1.0)
	SampleRate float64

	// ShutdownTimeout bounds the final span flush
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Enabled:         false,
		ServiceName:     "dataview",
		ServiceVersion:  "dev",
		SampleRate:      1.0,
		ShutdownTimeout: 5 * time.Second,
	}
}
