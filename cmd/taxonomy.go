package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/particlezoo/internal/domain/particle"
	"github.com/zjrosen/particlezoo/internal/presentation"
)

func newTaxonomyListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy:list [category]...",
		Short: "List categories and their members",
		Long: `List every category of the taxonomy, or only the named ones, with the
symbols each contains. The boson category exists but is empty.

Examples:
  particlezoo taxonomy:list
  particlezoo taxonomy:list neutrinos antineutrinos
  particlezoo taxonomy:list matter -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := make([]particle.Category, 0, len(args))
			for _, name := range args {
				c, err := particle.ParseCategory(name)
				if err != nil {
					return err
				}
				categories = append(categories, c)
			}
			if len(categories) == 0 {
				categories = particle.AllCategories()
			}

			svc, err := a.particles(cmd.Context())
			if err != nil {
				return err
			}

			dtos := make([]presentation.TaxonomyDTO, 0, len(categories))
			for _, c := range categories {
				members, err := svc.Members(cmd.Context(), c)
				if err != nil {
					return err
				}
				dtos = append(dtos, presentation.FromCategory(c, members))
			}
			return a.formatter(cmd.OutOrStdout()).FormatTaxonomy(dtos)
		},
	}
}
