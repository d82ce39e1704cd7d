// Package config provides configuration types and defaults for particlezoo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/particlezoo/internal/log"
	"github.com/zjrosen/particlezoo/internal/physconst"
	"github.com/zjrosen/particlezoo/internal/presentation"
	"github.com/zjrosen/particlezoo/internal/tracing"
)

// Config holds all configuration options for particlezoo.
type Config struct {
	Constants ConstantsConfig `mapstructure:"constants"`
	Output    OutputConfig    `mapstructure:"output"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Log       LogConfig       `mapstructure:"log"`
	Tracing   tracing.Config  `mapstructure:"tracing"`
	Export    ExportConfig    `mapstructure:"export"`
}

// ConstantsConfig selects the CODATA release the registry is built against.
type ConstantsConfig struct {
	Release string `mapstructure:"release"` // "CODATA2014" (default) or "CODATA2018"
}

// OutputConfig controls command output.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "table" (default), "json" or "yaml"
}

// CacheConfig tunes the name/alias resolution cache.
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// LogToStderr as log.path sends debug logs to the command's stderr.
const LogToStderr = "-"

// LogConfig holds debug logging options.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Level   string `mapstructure:"level"`
}

// ExportConfig holds snapshot export options.
type ExportConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// DefaultConfigDir returns ~/.config/particlezoo, or "" if the home
// directory is unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "particlezoo")
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	traceCfg := tracing.DefaultConfig()
	traceCfg.FilePath = DefaultTracesFilePath()

	return Config{
		Constants: ConstantsConfig{
			Release: string(physconst.DefaultRelease),
		},
		Output: OutputConfig{
			Format: string(presentation.FormatTable),
		},
		Cache: CacheConfig{
			TTL:             10 * time.Minute,
			CleanupInterval: 30 * time.Minute,
		},
		Log: LogConfig{
			Enabled: false,
			Path:    "debug.log",
			Level:   "debug",
		},
		Tracing: traceCfg,
		Export: ExportConfig{
			DBPath: "particles.db",
		},
	}
}

// Validate checks every section, returning the first problem found.
func Validate(c Config) error {
	if _, err := physconst.ForRelease(c.Constants.Release); err != nil {
		return fmt.Errorf("constants.release: %w", err)
	}
	if _, err := presentation.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	return ValidateTracing(c.Tracing)
}

// ValidateCache rejects non-positive durations.
func ValidateCache(cache CacheConfig) error {
	if cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", cache.TTL)
	}
	if cache.CleanupInterval <= 0 {
		return fmt.Errorf("cache.cleanup_interval must be positive, got %s", cache.CleanupInterval)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	switch t.Exporter {
	case "", tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}

	if t.Enabled {
		if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# particlezoo configuration

# Physical constants the registry is built against
constants:
  release: CODATA2014   # "CODATA2014" (default) or "CODATA2018"

# Command output
output:
  format: table         # "table", "json" or "yaml"

# Name and alias resolution cache
cache:
  ttl: 10m
  cleanup_interval: 30m

# Debug logging (also enabled by --debug or PARTICLEZOO_DEBUG=1)
log:
  enabled: false
  path: debug.log       # "-" writes to stderr
  level: debug          # "debug", "info", "warn" or "error"

# Snapshot export
export:
  db_path: particles.db

# OpenTelemetry tracing of registry builds and lookups
# tracing:
#   enabled: true
#   exporter: file      # "none", "file", "stdout" or "otlp"
#   file_path: ~/.config/particlezoo/traces/traces.jsonl
#
# Example: Send traces to Jaeger via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: jaeger.internal:4317
#   sample_rate: 0.1
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
