package config

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marmos91/dataview/internal/logger"
	"github.com/marmos91/dataview/pkg/manifest"
	"github.com/marmos91/dataview/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInitializeLogger(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Output = filepath.Join(t.TempDir(), "dataview.log")
	cfg.Logging.Format = "json"
	t.Cleanup(func() { logger.InitWithWriter(os.Stderr, "INFO", "text", false) })

	if err := InitializeLogger(cfg); err != nil {
		t.Fatalf("InitializeLogger failed: %v", err)
	}
	logger.Info("hello", "k", "v")

	// re-point the logger so the file is released before reading
	logger.InitWithWriter(&bytes.Buffer{}, "INFO", "text", false)

	data, err := os.ReadFile(cfg.Logging.Output)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("Expected JSON log line, got %q", data)
	}
}

func TestInitializeLogger_InvalidLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "LOUD"
	t.Cleanup(func() { logger.InitWithWriter(os.Stderr, "INFO", "text", false) })

	if err := InitializeLogger(cfg); err == nil {
		t.Fatal("Expected error for invalid level")
	}
}

func TestInitializeTelemetry_Disabled(t *testing.T) {
	shutdown, err := InitializeTelemetry(context.Background(), GetDefaultConfig(), "test")
	if err != nil {
		t.Fatalf("InitializeTelemetry failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestInitializeMetrics_Disabled(t *testing.T) {
	metrics.Disable()

	result := InitializeMetrics(GetDefaultConfig())
	if result.Registry != nil || result.Codec != nil || result.Store != nil {
		t.Errorf("Expected empty result when metrics are disabled, got %+v", result)
	}
	if len(result.StoreOptions()) != 0 {
		t.Error("Expected no store options when metrics are disabled")
	}
}

func TestOpenStoreWithMetrics(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Store.InMemory = true
	cfg.Store.Path = ""
	cfg.Metrics.Enabled = true
	t.Cleanup(metrics.Disable)

	result := InitializeMetrics(cfg)
	if result.Registry == nil || result.Codec == nil || result.Store == nil {
		t.Fatalf("Expected metrics to be created, got %+v", result)
	}

	st, err := OpenStore(cfg, result.StoreOptions()...)
	if err != nil {
		t.Fatalf("OpenStore failed: %v", err)
	}
	defer st.Close()

	if st.MaxManifestSize() != DefaultMaxManifestSize.Int() {
		t.Errorf("Expected store limit %d, got %d", DefaultMaxManifestSize.Int(), st.MaxManifestSize())
	}

	ctx := context.Background()
	if err := st.Put(ctx, "app", &manifest.V1{Name: "app"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := st.Get(ctx, "app"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if n, err := testutil.GatherAndCount(result.Registry, "dataview_manifest_decode_total"); err != nil || n != 1 {
		t.Errorf("Expected one decode series, got %d (%v)", n, err)
	}
	if n, err := testutil.GatherAndCount(result.Registry, "dataview_store_operations_total"); err != nil || n != 2 {
		t.Errorf("Expected put and get series, got %d (%v)", n, err)
	}
}

func TestOpenStore_InvalidConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Store.Path = ""

	if _, err := OpenStore(cfg); err == nil {
		t.Fatal("Expected error without a store path")
	}
}

func TestNewManifestValidator(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.graphql"), []byte("type A"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetDefaultConfig()
	cfg.Codec.SchemaRoot = root
	v := NewManifestValidator(cfg)

	ok := &manifest.V1{Name: "app", Modules: []manifest.ModuleV1{{Name: "a", SchemaPath: "a.graphql"}}}
	if err := v.Validate(ok); err != nil {
		t.Errorf("Expected valid manifest, got: %v", err)
	}

	missing := &manifest.V1{Name: "app", Modules: []manifest.ModuleV1{{Name: "b", SchemaPath: "b.graphql"}}}
	if err := v.Validate(missing); err == nil {
		t.Error("Expected error for missing schema file")
	}
}

func TestJSONSchema(t *testing.T) {
	raw, err := JSONSchema()
	if err != nil {
		t.Fatalf("JSONSchema failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}

	props, ok := doc["properties"].(map[string]any)
	if !ok {
		t.Fatalf("Schema has no properties: %s", raw)
	}
	for _, section := range []string{"logging", "telemetry", "codec", "store", "metrics"} {
		if _, ok := props[section]; !ok {
			t.Errorf("Schema missing section %q", section)
		}
	}

	codec := props["codec"].(map[string]any)["properties"].(map[string]any)
	size := codec["max_manifest_size"].(map[string]any)
	if _, ok := size["oneOf"]; !ok {
		t.Errorf("Expected max_manifest_size to accept strings or integers, got %v", size)
	}
	if _, ok := doc["required"]; ok {
		t.Errorf("Expected no required top-level fields, got %v", doc["required"])
	}
}
