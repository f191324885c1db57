package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/palette"
)

type paletteOptions struct {
	mode   string
	seed   uint64
	shades string
	css    bool
	out    outputFlags
}

func newPaletteCmd(app *AppContext) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a five-colour palette",
		Example: `  devkit palette
  devkit palette --mode pentagram --css
  devkit palette --shades '#3b82f6'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.palette")

			colors, err := buildPalette(app, cmd, opts)
			if err != nil {
				return newCommandError("generate palette", "building colours", err, "Use --mode harmonic|pentagram, or pass a hex colour to --shades.")
			}

			if opts.css {
				return emit(ctx, cmd, app, logger, "generate palette", "CSS variables", palette.CSSVariables(colors), opts.out)
			}

			for _, c := range colors {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s%s  %s\n", swatch(cmd.ErrOrStderr(), c.Hex), c.Hex, c.Name)
			}
			logger.Debug(ctx, "palette generated", "tool", "palette", "colors", palette.Hexes(colors))
			return emit(ctx, cmd, app, logger, "generate palette", "palette", strings.Join(palette.Hexes(colors), " "), opts.out)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "Generation mode: harmonic or pentagram (default from config)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible palette")
	cmd.Flags().StringVar(&opts.shades, "shades", "", "Print five lightness variants of this hex colour instead")
	cmd.Flags().BoolVar(&opts.css, "css", false, "Output CSS custom properties")
	opts.out.register(cmd)

	return cmd
}

func buildPalette(app *AppContext, cmd *cobra.Command, opts *paletteOptions) ([]palette.Color, error) {
	if opts.shades != "" {
		return palette.Shades(opts.shades)
	}

	name := opts.mode
	if name == "" && app.Config != nil {
		name = app.Config.Palette.Mode
	}
	mode, err := palette.ParseMode(name)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cmd.Flags().Changed("seed") {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}
	return palette.New(rng).Generate(mode), nil
}
