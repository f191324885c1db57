package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/gradient"
)

type gradientOptions struct {
	kind  string
	angle int
	stops []string
	bare  bool
	out   outputFlags
}

func newGradientCmd(app *AppContext) *cobra.Command {
	opts := &gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Compose a CSS linear or radial gradient",
		Example: `  devkit gradient
  devkit gradient --type radial --stop '#ff7e5f@0' --stop '#feb47b@100'
  devkit gradient --angle 135 --stop '#0f2027@0' --stop '#2c5364@60' --stop '#203a43@100'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.gradient")

			g, err := buildGradient(opts)
			if err != nil {
				return newCommandError("build gradient", "applying gradient settings", err,
					"Stops are written as <hex>@<position>, e.g. --stop '#667eea@0'; at least two are required.")
			}

			out := g.Declaration()
			if opts.bare {
				out = g.CSS()
			}

			logger.Debug(ctx, "gradient rendered", "tool", "gradient", "stops", len(g.Stops()))
			return emit(ctx, cmd, app, logger, "build gradient", "gradient", out, opts.out)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "type", "t", string(gradient.Linear), "Gradient type: linear or radial")
	cmd.Flags().IntVarP(&opts.angle, "angle", "a", gradient.DefaultAngle, "Angle in degrees for linear gradients (0-360)")
	cmd.Flags().StringArrayVarP(&opts.stops, "stop", "s", nil, "Colour stop as <hex>@<position> (repeatable)")
	cmd.Flags().BoolVar(&opts.bare, "value", false, "Print only the gradient, without the background property")
	opts.out.register(cmd)

	return cmd
}

func buildGradient(opts *gradientOptions) (*gradient.Gradient, error) {
	g := gradient.New()

	kind, err := gradient.ParseType(opts.kind)
	if err != nil {
		return nil, err
	}
	if err := g.SetType(kind); err != nil {
		return nil, err
	}
	if opts.angle < 0 || opts.angle > gradient.MaxAngle {
		return nil, fmt.Errorf("angle %d is outside 0..%d", opts.angle, gradient.MaxAngle)
	}
	g.SetAngle(opts.angle)

	if len(opts.stops) == 0 {
		return g, nil
	}
	if len(opts.stops) < gradient.MinStops {
		return nil, fmt.Errorf("got %d stop(s), need at least %d", len(opts.stops), gradient.MinStops)
	}

	defaults := g.Stops()
	for i, raw := range opts.stops {
		hex, pos, err := parseStop(raw)
		if err != nil {
			return nil, err
		}

		var id string
		if i < len(defaults) {
			id = defaults[i].ID
		} else {
			id = g.Add().ID
		}
		if err := g.Update(id, gradient.StopUpdate{Color: &hex, Position: &pos}); err != nil {
			return nil, fmt.Errorf("stop %q: %w", raw, err)
		}
	}
	return g, nil
}

// parseStop splits "<hex>@<position>".
func parseStop(raw string) (string, int, error) {
	hex, posText, ok := strings.Cut(raw, "@")
	if !ok {
		return "", 0, fmt.Errorf("stop %q: expected <hex>@<position>", raw)
	}
	pos, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(posText), "%"))
	if err != nil {
		return "", 0, fmt.Errorf("stop %q: invalid position: %w", raw, err)
	}
	if pos < 0 || pos > gradient.MaxPosition {
		return "", 0, fmt.Errorf("stop %q: position must be within 0..%d", raw, gradient.MaxPosition)
	}
	return strings.TrimSpace(hex), pos, nil
}
