// Package store persists encoded manifests in BadgerDB, keyed by name.
//
// Values are the exact bytes produced by manifest.Encode, so a stored
// manifest can be copied out of the database and decoded anywhere.
//
// Key layout:
//
//	m:<name>  ->  encoded manifest
package store

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/marmos91/dataview/internal/logger"
	"github.com/marmos91/dataview/internal/telemetry"
	"github.com/marmos91/dataview/pkg/dataview"
	"github.com/marmos91/dataview/pkg/manifest"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	prefixManifest = "m:"

	// MaxNameLength bounds manifest names in bytes.
	MaxNameLength = 255
)

var (
	// ErrNotFound is returned when no manifest is stored under a name.
	ErrNotFound = errors.New("manifest not found")

	// ErrInvalidName is returned for empty, oversized or non-UTF-8 names.
	ErrInvalidName = errors.New("invalid manifest name")
)

// Metrics observes store operations. A nil Metrics records nothing.
type Metrics interface {
	// ObserveOperation records one store operation ("put", "get", "delete",
	// "list") with its duration and outcome.
	ObserveOperation(operation string, duration time.Duration, err error)

	// RecordCacheStats publishes cumulative BadgerDB cache counters for a
	// cache type ("block" or "index").
	RecordCacheStats(cacheType string, hits, misses uint64, ratio float64)
}

// Config configures a Store.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory; nothing is written to disk.
	InMemory bool

	// SyncWrites fsyncs every write before Put returns.
	SyncWrites bool

	// MaxManifestSize bounds encoded manifests accepted by Put and Get.
	// Zero means dataview.BlockMaxSize.
	MaxManifestSize int
}

// Option configures optional Store dependencies.
type Option func(*Store)

// WithMetrics reports encode and decode timings to m.
func WithMetrics(m manifest.Metrics) Option {
	return func(s *Store) { s.codec = m }
}

// WithStoreMetrics reports operation timings and cache statistics to m.
func WithStoreMetrics(m Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// Store is a BadgerDB-backed manifest store. It is safe for concurrent use.
type Store struct {
	db      *badgerdb.DB
	maxSize int
	codec   manifest.Metrics
	metrics Metrics
}

// Open opens (or creates) a store.
func Open(cfg Config, opts ...Option) (*Store, error) {
	maxSize := cfg.MaxManifestSize
	switch {
	case maxSize == 0:
		maxSize = dataview.BlockMaxSize
	case maxSize < 0 || maxSize > dataview.BlockMaxSize:
		return nil, fmt.Errorf("max manifest size %d out of range (1..%d)", maxSize, dataview.BlockMaxSize)
	}

	var bopts badgerdb.Options
	if cfg.InMemory {
		bopts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("store path is required unless in_memory is set")
		}
		bopts = badgerdb.DefaultOptions(cfg.Path)
	}
	bopts = bopts.WithSyncWrites(cfg.SyncWrites).WithLogger(badgerLogger{})

	db, err := badgerdb.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger store: %w", err)
	}

	s := &Store{db: db, maxSize: maxSize}
	for _, opt := range opts {
		opt(s)
	}

	logger.Debug("Manifest store opened",
		logger.Path(cfg.Path),
		"in_memory", cfg.InMemory,
		"sync_writes", cfg.SyncWrites,
		logger.Max(maxSize))
	return s, nil
}

// Close flushes pending writes and closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger store: %w", err)
	}
	return nil
}

// MaxManifestSize returns the effective size limit.
func (s *Store) MaxManifestSize() int {
	return s.maxSize
}

func manifestKey(name string) []byte {
	return []byte(prefixManifest + name)
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case len(name) > MaxNameLength:
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrInvalidName, len(name), MaxNameLength)
	case !utf8.ValidString(name):
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidName)
	}
	return nil
}

// finish records the outcome of op.
func (s *Store) finish(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, time.Since(start), err)
	}
	if err != nil {
		args := []any{logger.Status("error"), logger.Err(err)}
		if path := dataview.PathOf(err); path != "" {
			telemetry.SetAttributes(ctx, telemetry.CodecScope(path))
			args = append(args, logger.Scope(path))
		}
		var oor *dataview.IndexOutOfRangeError
		if errors.As(err, &oor) {
			args = append(args, logger.Offset(oor.Offset))
		}
		telemetry.RecordError(ctx, err)
		logger.DebugCtx(ctx, "Manifest store operation failed", args...)
		return
	}
	logger.DebugCtx(ctx, "Manifest store operation complete", logger.Status("success"))
}

// begin starts the span and log session for op. The caller ends the span.
func (s *Store) begin(ctx context.Context, op, spanName, name string) (context.Context, trace.Span) {
	var attrs []attribute.KeyValue
	if name != "" {
		attrs = append(attrs, telemetry.StoreKey(manifestKey(name)))
	}
	ctx, span := telemetry.StartManifestSpan(ctx, spanName, name, attrs...)
	lc := logger.NewLogContext(op).WithManifest(name).WithTrace(telemetry.TraceID(ctx))
	return logger.WithContext(ctx, lc), span
}
