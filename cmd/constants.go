package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/particlezoo/internal/config"
	"github.com/zjrosen/particlezoo/internal/physconst"
	"github.com/zjrosen/particlezoo/internal/presentation"
)

func newConstantsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants:list",
		Short: "List the available CODATA releases",
		Long: `List the CODATA releases the registry can be built against, with the
masses each supplies. The release in use is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := physconst.ForRelease(a.cfg.Constants.Release)
			if err != nil {
				return err
			}
			return a.formatter(cmd.OutOrStdout()).FormatReleases(presentation.FromReleases(current.Release()))
		},
	}
}

func newConstantsUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "constants:use <release>",
		Short: "Select the CODATA release in the config file",
		Long: `Store the release in constants.release of the config file, creating the
file if needed. Other settings and comments are preserved.

Examples:
  particlezoo constants:use CODATA2018
  particlezoo constants:use 2014 --config ./particlezoo.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath()
			if err := config.SaveRelease(path, args[0]); err != nil {
				return err
			}

			set, _ := physconst.ForRelease(args[0])
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "using %s (%s)\n", set.Release(), path)
			return err
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "config:init",
		Short: "Write a commented default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath()
			if !force && fileExists(path) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.WriteDefaultConfig(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
