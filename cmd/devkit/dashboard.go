package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/palette"
	"github.com/alexisbeaulieu97/devkit/internal/tui/dashboard"
)

func newDashboardCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive workbench",
		Long:  `Launch the interactive TUI with one tab per tool: box-shadow, gradient, palette, JSON, SVG→JSX and snippets.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}

	return cmd
}

func runDashboard(cmd *cobra.Command, app *AppContext) error {
	ctx, _ := app.CommandContext(cmd, "command.dashboard")

	if !isTerminal(cmd.OutOrStdout()) || !isTerminal(cmd.InOrStdin()) {
		return newCommandError("launch dashboard", "checking the terminal", errors.New("not a terminal"), "Run devkit from an interactive terminal, or use a subcommand such as 'devkit json --print'.")
	}

	// The dashboard owns the terminal, so logs go to the configured file or
	// nowhere.
	logger, err := app.dashboardLogger()
	if err != nil {
		return newCommandError("launch dashboard", "opening the log file", err, "Check log.file in your configuration.")
	}
	app.Logger = logger

	mgr, err := app.Snippets(ctx)
	if err != nil {
		return err
	}

	mode, err := palette.ParseMode(app.Config.Palette.Mode)
	if err != nil {
		return newCommandError("launch dashboard", "reading palette settings", err, "Set palette.mode to harmonic or pentagram.")
	}

	logger.Info(ctx, "launching dashboard", "snippets", len(mgr.List()))

	m := dashboard.NewModel(ctx, dashboard.Deps{
		Snippets:       mgr,
		Clipboard:      newClipboard(logger, app.Config.Clipboard.DisableOSC52),
		Logger:         logger,
		PaletteMode:    mode,
		ShadesOnSelect: app.Config.Palette.ShadesOnSelect,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error(ctx, "dashboard execution failed", "error", err)
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	logger.Info(ctx, "dashboard closed")
	return nil
}
