package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "devkit",
		Short:         "devkit bundles small CSS, colour, JSON, SVG and snippet tools for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the dashboard
			if len(args) == 0 {
				return runDashboard(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file (default $DEVKIT_CONFIG or ~/.devkit/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log output format: text or json (overrides the config file)")

	cmd.AddCommand(newShadowCmd(app))
	cmd.AddCommand(newGradientCmd(app))
	cmd.AddCommand(newPaletteCmd(app))
	cmd.AddCommand(newJSONCmd(app))
	cmd.AddCommand(newSVGCmd(app))
	cmd.AddCommand(newSnippetCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
