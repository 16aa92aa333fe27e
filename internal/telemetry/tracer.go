package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys
const (
	AttrManifestName    = "manifest.name"
	AttrManifestVersion = "manifest.version"
	AttrManifestModules = "manifest.modules"
	AttrCodecBytes      = "codec.bytes"
	AttrCodecScope      = "codec.scope"
	AttrStoreKey        = "store.key"
	AttrStoreCount      = "store.count"
)

// Span names
const (
	SpanManifestPut    = "manifest.put"
	SpanManifestGet    = "manifest.get"
	SpanManifestDelete = "manifest.delete"
	SpanManifestList   = "manifest.list"
)

func ManifestName(name string) attribute.KeyValue {
	return attribute.String(AttrManifestName, name)
}

func ManifestVersion(v uint16) attribute.KeyValue {
	return attribute.Int(AttrManifestVersion, int(v))
}

func ManifestModules(n int) attribute.KeyValue {
	return attribute.Int(AttrManifestModules, n)
}

// CodecBytes returns an attribute for an encoded size
func CodecBytes(n int) attribute.KeyValue {
	return attribute.Int(AttrCodecBytes, n)
}

// CodecScope returns an attribute for a diagnostic decode path
func CodecScope(path string) attribute.KeyValue {
	return attribute.String(AttrCodecScope, path)
}

// StoreKey returns an attribute for a store key, rendered as a string when
// printable and hex otherwise.
func StoreKey(key []byte) attribute.KeyValue {
	for _, b := range key {
		if b < 0x20 || b > 0x7e {
			return attribute.String(AttrStoreKey, fmt.Sprintf("%x", key))
		}
	}
	return attribute.String(AttrStoreKey, string(key))
}

func StoreCount(n int) attribute.KeyValue {
	return attribute.Int(AttrStoreCount, n)
}

// StartManifestSpan starts a span for a manifest store operation.
func StartManifestSpan(ctx context.Context, span, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := make([]attribute.KeyValue, 0, len(attrs)+1)
	if name != "" {
		all = append(all, ManifestName(name))
	}
	all = append(all, attrs...)
	return StartSpan(ctx, span, trace.WithAttributes(all...))
}
