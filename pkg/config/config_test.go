package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/marmos91/dataview/internal/bytesize"
	"gopkg.in/yaml.v3"
)

// yamlSafePath converts a filesystem path to a YAML-safe representation.
// On Windows, backslashes in double-quoted YAML strings are interpreted as
// escape sequences (e.g. \U -> Unicode escape), causing parse errors.
func yamlSafePath(p string) string {
	return filepath.ToSlash(p)
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "info"

store:
  path: "`+yamlSafePath(tmpDir)+`/manifests"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected normalized level 'INFO', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Expected default format 'text', got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("Expected default output 'stdout', got %q", cfg.Logging.Output)
	}
	if cfg.Codec.MaxManifestSize != DefaultMaxManifestSize {
		t.Errorf("Expected default max manifest size %s, got %s", DefaultMaxManifestSize, cfg.Codec.MaxManifestSize)
	}
	if cfg.Telemetry.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected default shutdown timeout 5s, got %v", cfg.Telemetry.ShutdownTimeout)
	}
	if cfg.Store.Path != yamlSafePath(tmpDir)+"/manifests" {
		t.Errorf("Expected store path from file, got %q", cfg.Store.Path)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Expected no error when loading default config, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected default config to be returned")
	}
	if cfg.Codec.MaxManifestSize != DefaultMaxManifestSize {
		t.Errorf("Expected default max manifest size, got %s", cfg.Codec.MaxManifestSize)
	}
}

func TestLoad_CustomTypes(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
codec:
  max_manifest_size: 32Mi
  schema_root: ./schemas
store:
  in_memory: true
telemetry:
  shutdown_timeout: 1m30s
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Codec.MaxManifestSize != 32*bytesize.MiB {
		t.Errorf("Expected 32Mi, got %s", cfg.Codec.MaxManifestSize)
	}
	if cfg.Codec.SchemaRoot != "./schemas" {
		t.Errorf("Expected schema root './schemas', got %q", cfg.Codec.SchemaRoot)
	}
	if cfg.Telemetry.ShutdownTimeout != 90*time.Second {
		t.Errorf("Expected 90s, got %v", cfg.Telemetry.ShutdownTimeout)
	}
	if !cfg.Store.InMemory {
		t.Error("Expected in_memory store")
	}
}

func TestLoad_NumericByteSize(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
codec:
  max_manifest_size: 1048576
store:
  in_memory: true
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Codec.MaxManifestSize != bytesize.MiB {
		t.Errorf("Expected 1Mi, got %s", cfg.Codec.MaxManifestSize)
	}
}

func TestLoad_BadByteSize(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
codec:
  max_manifest_size: 12 parsecs
store:
  in_memory: true
`)

	if _, err := Load(configPath); err == nil {
		t.Fatal("Expected error for unparseable size")
	}
}

func TestLoad_SizeAboveBlockLimit(t *testing.T) {
	configPath := writeConfig(t, "config.yaml", `
codec:
  max_manifest_size: 65Mi
store:
  in_memory: true
`)

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("Expected validation error for size above block limit")
	}
	if !strings.Contains(err.Error(), "max_manifest_size") {
		t.Errorf("Expected error to name max_manifest_size, got: %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, "invalid.yaml", `
logging:
  level: INFO
  invalid yaml here [[[
`)

	if _, err := Load(configPath); err == nil {
		t.Fatal("Expected error with invalid YAML, got nil")
	}
}

func TestLoad_TOML(t *testing.T) {
	configPath := writeConfig(t, "config.toml", `
[logging]
level = "WARN"
format = "json"

[store]
in_memory = true
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load TOML config: %v", err)
	}

	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected level 'WARN', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", cfg.Logging.Format)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("DATAVIEW_LOGGING_LEVEL", "ERROR")
	t.Setenv("DATAVIEW_CODEC_MAX_MANIFEST_SIZE", "2Mi")

	configPath := writeConfig(t, "config.yaml", `
logging:
  level: "INFO"
codec:
  max_manifest_size: 16Mi
store:
  in_memory: true
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Logging.Level != "ERROR" {
		t.Errorf("Expected level 'ERROR' from env var, got %q", cfg.Logging.Level)
	}
	if cfg.Codec.MaxManifestSize != 2*bytesize.MiB {
		t.Errorf("Expected 2Mi from env var, got %s", cfg.Codec.MaxManifestSize)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	_, err := MustLoad(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected 'not found' error, got: %v", err)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := GetDefaultConfig()
	cfg.Logging.Format = "json"
	cfg.Codec.MaxManifestSize = 8 * bytesize.MiB
	cfg.Telemetry.ShutdownTimeout = 10 * time.Second

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if !strings.Contains(string(raw), "max_manifest_size: 8Mi") {
		t.Errorf("Expected human-readable size in saved config, got:\n%s", raw)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Saved config is not valid YAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}
	if loaded.Logging.Format != "json" {
		t.Errorf("Expected format 'json', got %q", loaded.Logging.Format)
	}
	if loaded.Codec.MaxManifestSize != 8*bytesize.MiB {
		t.Errorf("Expected 8Mi, got %s", loaded.Codec.MaxManifestSize)
	}
	if loaded.Telemetry.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected 10s, got %v", loaded.Telemetry.ShutdownTimeout)
	}
}

func TestGetDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := GetDefaultConfigPath()
	if !filepath.IsAbs(path) {
		t.Errorf("Expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("Expected filename 'config.yaml', got %q", filepath.Base(path))
	}
	if DefaultConfigExists() {
		t.Error("Expected no config in a fresh XDG_CONFIG_HOME")
	}
}

func TestGetConfigDir(t *testing.T) {
	dir := GetConfigDir()

	if filepath.Base(dir) != "dataview" {
		t.Errorf("Expected directory name 'dataview', got %q", filepath.Base(dir))
	}
}
