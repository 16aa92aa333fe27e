package logger

import "log/slog"

// Standard field keys. Use these consistently so logs can be queried across
// the codec, the manifest layer and the store.
const (
	// ========================================================================
	// Tracing
	// ========================================================================
	KeyTraceID = "trace_id"

	// ========================================================================
	// Session
	// ========================================================================
	KeyManifest  = "manifest"  // manifest name
	KeyOperation = "operation" // encode, decode, put, get, delete, list
	KeyVersion   = "version"   // manifest format version
	KeyModules   = "modules"   // number of modules in a manifest

	// ========================================================================
	// Codec
	// ========================================================================
	KeyOffset = "offset" // cursor offset at failure
	KeySize   = "size"   // encoded size in bytes
	KeyMax    = "max"    // configured size ceiling
	KeyScope  = "scope"  // diagnostic path, e.g. "manifest > modules[2]"

	// ========================================================================
	// Store
	// ========================================================================
	KeyKey   = "key"   // badger key
	KeyPath  = "path"  // on-disk directory
	KeyCount = "count" // number of entries returned

	// ========================================================================
	// Outcome
	// ========================================================================
	KeyDurationMs = "duration_ms"
	KeyError      = "error"
	KeyStatus     = "status"
)

// Version returns a slog.Attr for a format version
func Version(v uint16) slog.Attr {
	return slog.Uint64(KeyVersion, uint64(v))
}

func Modules(n int) slog.Attr {
	return slog.Int(KeyModules, n)
}

// Offset returns a slog.Attr for a cursor offset
func Offset(off int) slog.Attr {
	return slog.Int(KeyOffset, off)
}

// Size returns a slog.Attr for an encoded size
func Size(n int) slog.Attr {
	return slog.Int(KeySize, n)
}

func Max(n int) slog.Attr {
	return slog.Int(KeyMax, n)
}

// Scope returns a slog.Attr for a diagnostic path
func Scope(path string) slog.Attr {
	return slog.String(KeyScope, path)
}

// Key returns a slog.Attr for a badger key. Manifest keys are a fixed
// prefix plus a UTF-8 name, so they are logged as text.
func Key(k []byte) slog.Attr {
	return slog.String(KeyKey, string(k))
}

func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Err returns a slog.Attr for an error. A nil error yields an empty attr,
// which handlers drop.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

func Status(s string) slog.Attr {
	return slog.String(KeyStatus, s)
}
