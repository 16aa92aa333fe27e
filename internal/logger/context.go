package logger

import (
	"context"
	"time"
)

type contextKey struct{}

var logContextKey = contextKey{}

// LogContext holds the fields of one encode, decode or store session.
type LogContext struct {
	TraceID   string    // OpenTelemetry trace ID
	Manifest  string    // manifest name, if known
	Operation string    // encode, decode, put, get, ...
	Version   uint16    // manifest format version once decoded
	StartTime time.Time // for duration calculation
}

// WithContext returns a new context carrying lc.
func WithContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

// FromContext retrieves the LogContext from ctx, or nil if not present.
func FromContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// NewLogContext starts a session context for the given operation.
func NewLogContext(operation string) *LogContext {
	return &LogContext{
		Operation: operation,
		StartTime: time.Now(),
	}
}

// Clone creates a copy of the LogContext.
func (lc *LogContext) Clone() *LogContext {
	if lc == nil {
		return nil
	}
	c := *lc
	return &c
}

// WithManifest returns a copy with the manifest name set.
func (lc *LogContext) WithManifest(name string) *LogContext {
	c := lc.Clone()
	if c != nil {
		c.Manifest = name
	}
	return c
}

// WithVersion returns a copy with the format version set.
func (lc *LogContext) WithVersion(v uint16) *LogContext {
	c := lc.Clone()
	if c != nil {
		c.Version = v
	}
	return c
}

// WithTrace returns a copy with the trace ID set.
func (lc *LogContext) WithTrace(traceID string) *LogContext {
	c := lc.Clone()
	if c != nil {
		c.TraceID = traceID
	}
	return c
}

// DurationMs returns the time since StartTime in milliseconds.
func (lc *LogContext) DurationMs() float64 {
	if lc == nil || lc.StartTime.IsZero() {
		return 0
	}
	return Duration(lc.StartTime)
}
