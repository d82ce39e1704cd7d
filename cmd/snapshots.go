package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/infrastructure/sqlite"
	"github.com/zjrosen/particlezoo/internal/log"
	"github.com/zjrosen/particlezoo/internal/physconst"
	"github.com/zjrosen/particlezoo/internal/presentation"
	"github.com/zjrosen/particlezoo/internal/tracing"
)

// openSnapshots opens the export database, preferring --db over export.db_path.
func (a *app) openSnapshots(cmd *cobra.Command) (*sqlite.DB, error) {
	path := a.cfg.Export.DBPath
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		path = db
	}

	db, err := sqlite.NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}
	a.cleanups = append(a.cleanups, func() {
		if err := db.Close(); err != nil {
			log.ErrorErr(log.CatExport, "closing snapshot database failed", err)
		}
	})
	return db, nil
}

func addDBFlag(cmd *cobra.Command) {
	cmd.Flags().String("db", "", "Snapshot database path (default: export.db_path)")
}

func newSnapshotsSaveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots:save",
		Short: "Export the registry to a SQLite snapshot",
		Long: `Build the registry for the configured release and store every record and
category membership in the snapshot database. Prints the snapshot id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openSnapshots(cmd)
			if err != nil {
				return err
			}
			consts, err := physconst.ForRelease(a.cfg.Constants.Release)
			if err != nil {
				return err
			}
			reg, err := a.registry(cmd.Context(), string(consts.Release()))
			if err != nil {
				return err
			}

			ctx, span := tracing.Start(cmd.Context(), a.tracing.Tracer(), tracing.SpanSnapshotSave,
				attribute.String(tracing.AttrRelease, string(consts.Release())))
			defer span.End()

			id, err := db.Snapshots().Save(ctx, reg, string(consts.Release()))
			if err != nil {
				tracing.Fail(span, err)
				return err
			}
			log.Info(log.CatExport, "snapshot saved", "id", id, "release", consts.Release())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
	addDBFlag(cmd)
	return cmd
}

func newSnapshotsListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots:list",
		Short: "List stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.openSnapshots(cmd)
			if err != nil {
				return err
			}
			summaries, err := db.Snapshots().List(cmd.Context())
			if err != nil {
				return err
			}

			dtos := make([]presentation.SnapshotDTO, len(summaries))
			for i, s := range summaries {
				dtos[i] = presentation.SnapshotDTO{
					ID:        s.ID.String(),
					Release:   s.Release,
					Particles: s.ParticleCount,
					CreatedAt: s.CreatedAt,
				}
			}
			return a.formatter(cmd.OutOrStdout()).FormatSnapshots(dtos)
		},
	}
	addDBFlag(cmd)
	return cmd
}

func newSnapshotsShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots:show <id>",
		Short: "Show the particles stored in a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q: %w", args[0], err)
			}
			db, err := a.openSnapshots(cmd)
			if err != nil {
				return err
			}
			snap, err := db.Snapshots().Find(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.formatter(cmd.OutOrStdout()).FormatParticles(snapshotParticles(snap))
		},
	}
	addDBFlag(cmd)
	return cmd
}

func newSnapshotsDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots:delete <id>",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q: %w", args[0], err)
			}
			db, err := a.openSnapshots(cmd)
			if err != nil {
				return err
			}
			if err := db.Snapshots().Delete(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
			return err
		},
	}
	addDBFlag(cmd)
	return cmd
}

// snapshotParticles rebuilds presentation records from stored rows.
func snapshotParticles(snap *sqlite.Snapshot) []presentation.ParticleDTO {
	categories := make(map[string][]string)
	for category, symbols := range snap.Categories {
		for _, symbol := range symbols {
			categories[symbol] = append(categories[symbol], category)
		}
	}

	out := make([]presentation.ParticleDTO, len(snap.Particles))
	for i, m := range snap.Particles {
		dto := presentation.ParticleDTO{
			Symbol:       m.Symbol,
			Name:         m.Name,
			Class:        m.Class,
			Spin:         m.Spin,
			Charge:       m.Charge,
			LeptonNumber: m.LeptonNumber,
			BaryonNumber: m.BaryonNumber,
			Antimatter:   m.Antimatter,
			Categories:   categoriesInOrder(categories[m.Symbol]),
			Mass:         presentation.MassDTO{Unknown: true},
			HalfLife:     presentation.HalfLifeDTO{Stable: true},
		}
		if m.Generation != nil {
			g := int(*m.Generation)
			dto.Generation = &g
		}
		if m.MassValue != nil && m.MassUnit != nil {
			dto.Mass = presentation.MassDTO{Value: m.MassValue, Unit: *m.MassUnit}
		}
		if m.HalfLifeValue != nil && m.HalfLifeUnit != nil {
			dto.HalfLife = presentation.HalfLifeDTO{Value: m.HalfLifeValue, Unit: *m.HalfLifeUnit}
		}
		out[i] = dto
	}
	return out
}

// categoriesInOrder sorts names into taxonomy declaration order.
func categoriesInOrder(names []string) []string {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	out := make([]string, 0, len(names))
	for _, c := range particle.AllCategories() {
		if have[string(c)] {
			out = append(out, string(c))
		}
	}
	return out
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
