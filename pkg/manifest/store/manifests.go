package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/marmos91/dataview/internal/logger"
	"github.com/marmos91/dataview/internal/telemetry"
	"github.com/marmos91/dataview/pkg/manifest"
)

// ============================================================================
// Manifest CRUD
// ============================================================================

// Put encodes f and stores it under name, replacing any previous manifest.
func (s *Store) Put(ctx context.Context, name string, f manifest.Format) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	ctx, span := s.begin(ctx, "put", telemetry.SpanManifestPut, name)
	defer span.End()
	defer func() { s.finish(ctx, "put", start, err) }()

	if err := validateName(name); err != nil {
		return err
	}

	data, err := s.encode(f)
	if err != nil {
		return err
	}
	telemetry.SetAttributes(ctx,
		telemetry.ManifestVersion(uint16(f.Version())),
		telemetry.CodecBytes(len(data)))

	if len(data) > s.maxSize {
		return fmt.Errorf("%w: encoded manifest is %d bytes, limit is %d", manifest.ErrTooLarge, len(data), s.maxSize)
	}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(manifestKey(name), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store manifest: %w", err)
	}

	logger.DebugCtx(ctx, "Manifest stored",
		logger.Key(manifestKey(name)),
		logger.Version(uint16(f.Version())),
		logger.Modules(moduleCount(f)),
		logger.Size(len(data)))
	return nil
}

// Get loads and decodes the manifest stored under name.
func (s *Store) Get(ctx context.Context, name string) (f manifest.Format, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := s.begin(ctx, "get", telemetry.SpanManifestGet, name)
	defer span.End()
	defer func() { s.finish(ctx, "get", start, err) }()

	if err := validateName(name); err != nil {
		return nil, err
	}

	var data []byte
	err = s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(manifestKey(name))
		if err == badgerdb.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	s.reportCacheStats()

	telemetry.SetAttributes(ctx, telemetry.CodecBytes(len(data)))
	f, err = s.decode(data)
	if err != nil {
		return nil, err
	}
	telemetry.SetAttributes(ctx,
		telemetry.ManifestVersion(uint16(f.Version())),
		telemetry.ManifestModules(moduleCount(f)))
	logger.DebugCtx(ctx, "Manifest loaded",
		logger.Version(uint16(f.Version())),
		logger.Modules(moduleCount(f)),
		logger.Size(len(data)))
	return f, nil
}

// Delete removes the manifest stored under name.
func (s *Store) Delete(ctx context.Context, name string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	ctx, span := s.begin(ctx, "delete", telemetry.SpanManifestDelete, name)
	defer span.End()
	defer func() { s.finish(ctx, "delete", start, err) }()

	if err := validateName(name); err != nil {
		return err
	}

	err = s.db.Update(func(txn *badgerdb.Txn) error {
		key := manifestKey(name)
		if _, err := txn.Get(key); err != nil {
			if err == badgerdb.ErrKeyNotFound {
				return ErrNotFound
			}
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete manifest: %w", err)
	}
	return nil
}

// List returns the names of all stored manifests in ascending byte order.
func (s *Store) List(ctx context.Context) (names []string, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	ctx, span := s.begin(ctx, "list", telemetry.SpanManifestList, "")
	defer span.End()
	defer func() { s.finish(ctx, "list", start, err) }()

	err = s.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Prefix = []byte(prefixManifest)
		opts.PrefetchValues = false

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, prefixManifest))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list manifests: %w", err)
	}

	telemetry.SetAttributes(ctx, telemetry.StoreCount(len(names)))
	logger.DebugCtx(ctx, "Manifests listed", logger.Count(len(names)))
	return names, nil
}

// ============================================================================
// Codec helpers
// ============================================================================

func (s *Store) encode(f manifest.Format) ([]byte, error) {
	if f == nil {
		return nil, manifest.ErrNilFormat
	}
	start := time.Now()
	data, err := manifest.Encode(f)
	if s.codec != nil {
		s.codec.ObserveEncode(f.Version(), len(data), time.Since(start), err)
	}
	return data, err
}

func (s *Store) decode(data []byte) (manifest.Format, error) {
	start := time.Now()
	f, err := manifest.Decode(data, manifest.WithMaxSize(s.maxSize))
	if s.codec != nil {
		var v manifest.Version
		if f != nil {
			v = f.Version()
		} else {
			v, _ = manifest.PeekVersion(data)
		}
		s.codec.ObserveDecode(v, len(data), time.Since(start), err)
	}
	return f, err
}

func moduleCount(f manifest.Format) int {
	switch m := f.(type) {
	case *manifest.V1:
		return len(m.Modules)
	case *manifest.V2:
		return len(m.Modules)
	}
	return 0
}

// reportCacheStats publishes badger's cache counters. Both are nil-safe when
// a cache is disabled, which is the case for in-memory stores.
func (s *Store) reportCacheStats() {
	if s.metrics == nil {
		return
	}
	block := s.db.BlockCacheMetrics()
	s.metrics.RecordCacheStats("block", block.Hits(), block.Misses(), block.Ratio())
	index := s.db.IndexCacheMetrics()
	s.metrics.RecordCacheStats("index", index.Hits(), index.Misses(), index.Ratio())
}
