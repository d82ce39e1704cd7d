package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/particlezoo/internal/tracing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, "CODATA2014", cfg.Constants.Release)
	require.Equal(t, "table", cfg.Output.Format)
	require.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	require.Equal(t, 30*time.Minute, cfg.Cache.CleanupInterval)
	require.False(t, cfg.Log.Enabled)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, tracing.ExporterFile, cfg.Tracing.Exporter)
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"short release", func(c *Config) { c.Constants.Release = "2018" }, ""},
		{"unknown release", func(c *Config) { c.Constants.Release = "CODATA1986" }, "constants.release"},
		{"json output", func(c *Config) { c.Output.Format = "JSON" }, ""},
		{"unknown output", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }, "cache.ttl"},
		{"negative cleanup", func(c *Config) { c.Cache.CleanupInterval = -time.Second }, "cache.cleanup_interval"},
		{"empty log level", func(c *Config) { c.Log.Level = "" }, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"sample rate", func(c *Config) { c.Tracing.SampleRate = 1.5 }, "sample_rate"},
		{"exporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }, "tracing.exporter"},
		{"file exporter without path", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.FilePath = ""
		}, "tracing.file_path"},
		{"otlp without endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = tracing.ExporterOTLP
			c.Tracing.OTLPEndpoint = ""
		}, "tracing.otlp_endpoint"},
		{"disabled tracing skips path checks", func(c *Config) {
			c.Tracing.FilePath = ""
		}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestDefaultConfigTemplate_LoadsThroughViper(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))

	require.Equal(t, "CODATA2014", cfg.Constants.Release)
	require.Equal(t, "table", cfg.Output.Format)
	require.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	require.Equal(t, "debug.log", cfg.Log.Path)
	require.Equal(t, "particles.db", cfg.Export.DBPath)
}

func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(configPath))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}
