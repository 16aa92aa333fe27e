package config

import (
	"strings"
	"testing"

	"github.com/marmos91/dataview/internal/bytesize"
)

func TestValidate_ValidConfig(t *testing.T) {
	if err := Validate(GetDefaultConfig()); err != nil {
		t.Errorf("Expected valid config to pass validation, got error: %v", err)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Level = "INVALID"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for invalid log level")
	}
	if !strings.Contains(err.Error(), "oneof") {
		t.Errorf("Expected 'oneof' validation error, got: %v", err)
	}
}

func TestValidate_InvalidLogFormat(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Logging.Format = "xml"

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected validation error for invalid log format")
	}
}

func TestValidate_MissingStorePath(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Store.Path = ""

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Expected validation error for missing store path")
	}
	errStr := strings.ToLower(err.Error())
	if !strings.Contains(errStr, "store") || !strings.Contains(errStr, "path") {
		t.Errorf("Expected error about store path, got: %v", err)
	}

	// an in-memory store needs no path
	cfg.Store.InMemory = true
	if err := Validate(cfg); err != nil {
		t.Errorf("Expected in-memory store without path to be valid, got: %v", err)
	}
}

func TestValidate_MaxManifestSize(t *testing.T) {
	tests := []struct {
		name    string
		size    bytesize.ByteSize
		wantErr bool
	}{
		{"Zero", 0, true},
		{"OneByte", 1, false},
		{"AtBlockLimit", 64 * bytesize.MiB, false},
		{"AboveBlockLimit", 64*bytesize.MiB + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			cfg.Codec.MaxManifestSize = tt.size

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_TelemetrySampleRate(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.SampleRate = 1.5

	if err := Validate(cfg); err == nil {
		t.Fatal("Expected validation error for sample rate out of range")
	}
}

func TestValidate_LogLevelNormalization(t *testing.T) {
	testCases := []string{"info", "INFO", "debug", "DEBUG", "warn", "WARN", "error", "ERROR"}

	for _, level := range testCases {
		cfg := GetDefaultConfig()
		cfg.Logging.Level = level

		if err := Validate(cfg); err != nil {
			t.Errorf("Validation failed for level %q: %v", level, err)
		}

		// Validation should NOT normalize - level should remain as-is
		if cfg.Logging.Level != level {
			t.Errorf("Expected level to remain %q after validation, got %q", level, cfg.Logging.Level)
		}
	}

	cfg := &Config{Logging: LoggingConfig{Level: "info"}}
	ApplyDefaults(cfg)
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected ApplyDefaults to normalize 'info' to 'INFO', got %q", cfg.Logging.Level)
	}
}
