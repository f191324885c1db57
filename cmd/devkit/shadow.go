package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/color"
	"github.com/alexisbeaulieu97/devkit/internal/shadow"
)

type shadowOptions struct {
	value shadow.Shadow
	bare  bool
	out   outputFlags
}

func newShadowCmd(app *AppContext) *cobra.Command {
	opts := &shadowOptions{value: shadow.Default()}

	cmd := &cobra.Command{
		Use:   "shadow",
		Short: "Compose a CSS box-shadow declaration",
		Example: `  devkit shadow
  devkit shadow --x 4 --y 8 --blur 24 --color '#1e293b' --opacity 0.25`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.shadow")

			if err := opts.value.Validate(); err != nil {
				return newCommandError("build box-shadow", "validating shadow settings", err,
					fmt.Sprintf("Offsets must be within %d..%d, blur %d..%d, spread %d..%d and opacity 0..1.",
						shadow.OffsetMin, shadow.OffsetMax, shadow.BlurMin, shadow.BlurMax, shadow.SpreadMin, shadow.SpreadMax))
			}
			hex, err := color.NormalizeHex(opts.value.Color)
			if err != nil {
				return newCommandError("build box-shadow", "parsing the shadow colour", err, "Use a hex colour such as #000000 or #333.")
			}
			opts.value.Color = hex

			render := opts.value.CSS
			if opts.bare {
				render = opts.value.Value
			}
			css, err := render()
			if err != nil {
				return newCommandError("build box-shadow", "rendering CSS", err, "Use a hex colour such as #000000.")
			}

			logger.Debug(ctx, "shadow rendered", "tool", "shadow", "css", css)
			return emit(ctx, cmd, app, logger, "build box-shadow", "box-shadow", css, opts.out)
		},
	}

	cmd.Flags().IntVar(&opts.value.OffsetX, "x", opts.value.OffsetX, "Horizontal offset in px")
	cmd.Flags().IntVar(&opts.value.OffsetY, "y", opts.value.OffsetY, "Vertical offset in px")
	cmd.Flags().IntVar(&opts.value.Blur, "blur", opts.value.Blur, "Blur radius in px")
	cmd.Flags().IntVar(&opts.value.Spread, "spread", opts.value.Spread, "Spread radius in px")
	cmd.Flags().StringVar(&opts.value.Color, "color", opts.value.Color, "Shadow colour as hex")
	cmd.Flags().Float64Var(&opts.value.Opacity, "opacity", opts.value.Opacity, "Shadow opacity between 0 and 1")
	cmd.Flags().BoolVar(&opts.bare, "value", false, "Print only the value, without the box-shadow property")
	opts.out.register(cmd)

	return cmd
}
