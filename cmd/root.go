package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appparticle "github.com/zjrosen/particlezoo/internal/application/particle"
	"github.com/zjrosen/particlezoo/internal/cachemanager"
	"github.com/zjrosen/particlezoo/internal/config"
	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/log"
	"github.com/zjrosen/particlezoo/internal/presentation"
	"github.com/zjrosen/particlezoo/internal/tracing"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so
	// the OSC 11 response cannot race the input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".particlezoo/config.yaml"

var version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	cfgFile string

	v       *viper.Viper
	cfg     config.Config
	tracing *tracing.Provider
	service *appparticle.Service

	cleanups []func()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "particlezoo",
		Short: "Query a registry of leptons, baryons and their antiparticles",
		Long: `particlezoo builds a registry of the sixteen known leptons, baryons and
their antiparticles from a fixed taxonomy and an ordered set of derivation
rules, then answers queries against it.

Masses are taken from a CODATA release (default CODATA2014). Use --constants
or the constants:use command to select another one.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ~/.config/particlezoo/config.yaml)")
	flags.String("constants", "", "CODATA release to build against (e.g., CODATA2018)")
	flags.StringP("output", "o", "", "output format: table, json or yaml")
	flags.Bool("debug", false, "write debug logs to log.path")

	a.v = viper.New()
	_ = a.v.BindPFlag("constants.release", flags.Lookup("constants"))
	_ = a.v.BindPFlag("output.format", flags.Lookup("output"))
	_ = a.v.BindPFlag("log.enabled", flags.Lookup("debug"))

	rootCmd.AddCommand(
		newParticlesListCmd(a),
		newParticlesShowCmd(a),
		newParticlesDiffCmd(a),
		newParticlesBrowseCmd(a),
		newTaxonomyListCmd(a),
		newConstantsListCmd(a),
		newConstantsUseCmd(a),
		newConfigInitCmd(a),
		newSnapshotsSaveCmd(a),
		newSnapshotsListCmd(a),
		newSnapshotsShowCmd(a),
		newSnapshotsDeleteCmd(a),
	)

	return rootCmd
}

// setup loads configuration and starts logging and tracing.
func (a *app) setup(cmd *cobra.Command) error {
	setDefaults(a.v, config.Defaults())

	a.v.SetEnvPrefix("PARTICLEZOO")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindEnv("log.enabled", "PARTICLEZOO_LOG_ENABLED", "PARTICLEZOO_DEBUG")

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		// Config lookup order:
		// 1. .particlezoo/config.yaml (current directory)
		// 2. ~/.config/particlezoo/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			a.v.SetConfigFile(localConfigPath)
		} else {
			a.v.AddConfigPath(config.DefaultConfigDir())
			a.v.SetConfigName("config")
			a.v.SetConfigType("yaml")
		}
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := config.Validate(a.cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if a.cfg.Log.Enabled {
		if a.cfg.Log.Path == config.LogToStderr {
			log.InitWriter(cmd.ErrOrStderr())
			a.cleanups = append(a.cleanups, func() { log.SetEnabled(false) })
		} else {
			closeLog, err := log.Init(a.cfg.Log.Path)
			if err != nil {
				return fmt.Errorf("opening debug log: %w", err)
			}
			a.cleanups = append(a.cleanups, closeLog)
		}
		if a.cfg.Log.Level != "" {
			level, _ := log.ParseLevel(a.cfg.Log.Level)
			log.SetMinLevel(level)
		}
	}

	provider, err := tracing.NewProvider(a.cfg.Tracing)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	a.tracing = provider
	a.cleanups = append(a.cleanups, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
		}
	})

	log.Debug(log.CatCLI, "command start", "command", cmd.Name(), "config", a.v.ConfigFileUsed(),
		"release", a.cfg.Constants.Release)
	return nil
}

// close releases everything setup acquired, newest first.
func (a *app) close() {
	if a.service != nil {
		stats := a.service.CacheStats()
		log.Debug(log.CatCache, "resolver cache", "hits", stats.Hits, "misses", stats.Misses, "errors", stats.Errors)
	}
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

// particles builds the registry for the configured release and wraps it in a
// query service. The service is built once per invocation.
func (a *app) particles(ctx context.Context) (*appparticle.Service, error) {
	if a.service != nil {
		return a.service, nil
	}

	reg, _, err := appparticle.BuildRegistry(ctx, a.tracing.Tracer(), a.cfg.Constants.Release)
	if err != nil {
		return nil, err
	}

	cache := cachemanager.NewInMemoryCacheManager[string, string]("resolver", a.cfg.Cache.TTL, a.cfg.Cache.CleanupInterval)
	a.service = appparticle.NewService(reg, cache, a.tracing.Tracer(), a.cfg.Cache.TTL)
	return a.service, nil
}

// registry builds a registry for an explicit release, bypassing the service.
func (a *app) registry(ctx context.Context, release string) (*particle.Registry, error) {
	reg, _, err := appparticle.BuildRegistry(ctx, a.tracing.Tracer(), release)
	return reg, err
}

func (a *app) formatter(w io.Writer) *presentation.Formatter {
	format, err := presentation.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		format = presentation.FormatTable
	}
	return presentation.NewFormatter(w, format)
}

// configPath is where config writes go: the loaded file, else --config, else
// the user config.
func (a *app) configPath() string {
	if used := a.v.ConfigFileUsed(); used != "" {
		return used
	}
	if a.cfgFile != "" {
		return a.cfgFile
	}
	return filepath.Join(config.DefaultConfigDir(), "config.yaml")
}

func setDefaults(v *viper.Viper, d config.Config) {
	v.SetDefault("constants.release", d.Constants.Release)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.cleanup_interval", d.Cache.CleanupInterval)
	v.SetDefault("log.enabled", d.Log.Enabled)
	v.SetDefault("log.path", d.Log.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("export.db_path", d.Export.DBPath)
}

// run executes one invocation with the given arguments and streams.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.close()

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	return rootCmd.ExecuteContext(ctx)
}

// Execute runs the root command
func Execute() error {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}
