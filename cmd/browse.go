package cmd

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	appparticle "github.com/zjrosen/particlezoo/internal/application/particle"
	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/log"
	"github.com/zjrosen/particlezoo/internal/physconst"
	"github.com/zjrosen/particlezoo/internal/presentation"
	"github.com/zjrosen/particlezoo/internal/pubsub"
	"github.com/zjrosen/particlezoo/internal/ui/browse"
	"github.com/zjrosen/particlezoo/internal/watcher"
)

func newParticlesBrowseCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "particles:browse",
		Short: "Browse the registry interactively",
		Long: `Open a terminal browser over the registry.

With --watch the registry is rebuilt whenever the config file changes, so
running constants:use in another terminal switches the browsed release.
A --constants flag pins the release and takes precedence over the file.

Keys:
  tab / l / →        next category filter
  shift+tab / h / ←  previous category filter
  ↑ / ↓ / j / k      move
  enter / space      toggle details
  ?                  more keys
  q / esc            quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.particles(cmd.Context())
			if err != nil {
				return err
			}

			consts, err := physconst.ForRelease(a.cfg.Constants.Release)
			if err != nil {
				return err
			}
			taxonomy := svc.Provider().Taxonomy()
			model := browse.New(
				browseTitle(consts.Release()),
				presentation.FromDomainParticles(svc.Provider().List(), taxonomy),
				categoryNames(),
			)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if watch {
				broker := pubsub.NewBroker[browse.Reload]()
				defer broker.Close()
				model = model.WithReloads(ctx, broker.Subscribe(ctx))

				stop, err := a.watchConfig(ctx, broker)
				if err != nil {
					return err
				}
				defer stop()
			}

			p := tea.NewProgram(
				model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rebuild the registry when the config file changes")
	return cmd
}

func browseTitle(release physconst.Release) string {
	return fmt.Sprintf("particlezoo · %s", release)
}

func categoryNames() []string {
	out := make([]string, 0, len(particle.AllCategories()))
	for _, c := range particle.AllCategories() {
		out = append(out, string(c))
	}
	return out
}

// watchConfig publishes a reload to broker after every config file change
// until ctx is done. The returned func stops the watch and returns once any
// reload in flight has finished.
func (a *app) watchConfig(ctx context.Context, broker *pubsub.Broker[browse.Reload]) (func(), error) {
	w, err := watcher.New(watcher.DefaultConfig(a.configPath()))
	if err != nil {
		return nil, err
	}
	onChange, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return nil, err
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case <-onChange:
				a.publishReload(ctx, broker)
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
		if err := w.Stop(); err != nil {
			log.ErrorErr(log.CatConfig, "stopping config watcher failed", err)
		}
	}, nil
}

// publishReload re-reads the config file and rebuilds the registry for its
// release.
func (a *app) publishReload(ctx context.Context, broker *pubsub.Broker[browse.Reload]) {
	fail := func(err error) {
		log.ErrorErr(log.CatConfig, "registry reload failed", err, "config", a.configPath())
		broker.Publish(pubsub.ReloadFailedEvent, browse.Reload{Err: err.Error()})
	}

	if err := a.v.ReadInConfig(); err != nil {
		fail(fmt.Errorf("reading config: %w", err))
		return
	}

	reg, consts, err := appparticle.BuildRegistry(ctx, a.tracing.Tracer(), a.v.GetString("constants.release"))
	if err != nil {
		fail(err)
		return
	}

	log.Info(log.CatConfig, "registry reloaded", "release", consts.Release())
	broker.Publish(pubsub.ReloadedEvent, browse.Reload{
		Title:     browseTitle(consts.Release()),
		Particles: presentation.FromDomainParticles(reg.List(), reg.Taxonomy()),
	})
}
