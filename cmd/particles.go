package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	appparticle "github.com/zjrosen/particlezoo/internal/application/particle"
	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/presentation"
)

func newParticlesListCmd(a *app) *cobra.Command {
	var (
		categories []string
		class      string
	)

	cmd := &cobra.Command{
		Use:   "particles:list",
		Short: "List registered particles",
		Long: `List registered particles in canonical order.

Use --category to keep only members of a category (repeatable, AND logic).
Use --class to keep only one base class.

Examples:
  # List everything
  particlezoo particles:list

  # Leptons only
  particlezoo particles:list --class lepton

  # Antimatter fermions
  particlezoo particles:list -k antimatter -k fermion

  # Parse specific fields with jq
  particlezoo particles:list -o json | jq '.[].symbol'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := appparticle.Filter{Class: particle.Class(class)}
			for _, name := range categories {
				c, err := particle.ParseCategory(name)
				if err != nil {
					return err
				}
				filter.Categories = append(filter.Categories, c)
			}

			svc, err := a.particles(cmd.Context())
			if err != nil {
				return err
			}
			ps, err := svc.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			dtos := presentation.FromDomainParticles(ps, svc.Provider().Taxonomy())
			return a.formatter(cmd.OutOrStdout()).FormatParticles(dtos)
		},
	}

	cmd.Flags().StringArrayVarP(&categories, "category", "k", nil, "Filter by category (can be repeated, e.g., --category matter)")
	cmd.Flags().StringVar(&class, "class", "", "Filter by class: lepton, antilepton, baryon or antibaryon")
	return cmd
}

func newParticlesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "particles:show <symbol-or-name>...",
		Short: "Show one or more particles",
		Long: `Show particles by symbol, name or common alias.

Examples:
  particlezoo particles:show mu-
  particlezoo particles:show "electron neutrino" positron
  particlezoo particles:show antiproton -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.particles(cmd.Context())
			if err != nil {
				return err
			}
			ps, err := svc.ResolveAll(cmd.Context(), args)
			if err != nil {
				return err
			}

			dtos := presentation.FromDomainParticles(ps, svc.Provider().Taxonomy())
			return a.formatter(cmd.OutOrStdout()).FormatParticles(dtos)
		},
	}
}

func newParticlesDiffCmd(a *app) *cobra.Command {
	var (
		from    string
		to      string
		unified bool
	)

	cmd := &cobra.Command{
		Use:   "particles:diff",
		Short: "Compare the registries built from two constants releases",
		Long: `Build the registry against two CODATA releases and report every field
that differs.

Examples:
  particlezoo particles:diff --from CODATA2014 --to CODATA2018
  particlezoo particles:diff --to 2018 --unified`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if from == "" {
				from = a.cfg.Constants.Release
			}

			left, err := a.registry(cmd.Context(), from)
			if err != nil {
				return err
			}
			right, err := a.registry(cmd.Context(), to)
			if err != nil {
				return err
			}

			if !unified {
				diffs := appparticle.Compare(cmd.Context(), left, right)
				return a.formatter(cmd.OutOrStdout()).FormatDifferences(presentation.FromDifferences(diffs))
			}

			leftYAML, err := renderYAML(presentation.FromDomainParticles(left.List(), left.Taxonomy()))
			if err != nil {
				return err
			}
			rightYAML, err := renderYAML(presentation.FromDomainParticles(right.List(), right.Taxonomy()))
			if err != nil {
				return err
			}
			diff := presentation.UnifiedDiff(from, to, leftYAML, rightYAML)
			if diff == "" {
				diff = "no differences\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Release to compare from (default: the configured release)")
	cmd.Flags().StringVar(&to, "to", "", "Release to compare to (required)")
	cmd.Flags().BoolVarP(&unified, "unified", "u", false, "Print a line diff of the YAML renderings")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func renderYAML(dtos []presentation.ParticleDTO) (string, error) {
	var buf bytes.Buffer
	if err := presentation.NewFormatter(&buf, presentation.FormatYAML).FormatParticles(dtos); err != nil {
		return "", err
	}
	return buf.String(), nil
}
