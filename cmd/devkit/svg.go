package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/svgjsx"
)

type svgOptions struct {
	component bool
	name      string
	outline   bool
	diff      bool
	html      string
	sanitize  bool
	out       outputFlags
}

func newSVGCmd(app *AppContext) *cobra.Command {
	opts := &svgOptions{}

	cmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "Convert SVG markup to JSX",
		Long: `Convert SVG markup to JSX by renaming attributes React spells differently
(class, stroke-width, xlink:href, ...). The transform is textual; elements
that JSX requires to be self-closed are reported as warnings.`,
		Example: `  devkit svg icon.svg
  devkit svg --component --name "arrow left" icon.svg
  devkit svg --html preview.html --sanitize icon.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.svg")

			input, err := readInput(cmd, args)
			if err != nil {
				return newCommandError("convert SVG", "reading input", err, "Pass a file path or pipe SVG markup on stdin.")
			}
			if strings.TrimSpace(input) == "" {
				return newCommandError("convert SVG", "reading input", fmt.Errorf("input is empty"), "Pass a file containing SVG markup.")
			}
			input = strings.TrimRight(input, "\r\n")

			if opts.html != "" {
				page := svgjsx.PreviewHTML(input, opts.name, opts.sanitize)
				if err := os.WriteFile(opts.html, []byte(page), 0o644); err != nil {
					return newCommandError("convert SVG", fmt.Sprintf("writing preview %s", opts.html), err, "Check that the target directory exists and is writable.")
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote preview to %s\n", opts.html)
			}

			report := svgjsx.Analyze(input)
			for _, w := range report.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			logger.Debug(ctx, "svg converted", "tool", "svg", "rules_hit", len(report.Hits), "warnings", len(report.Warnings))

			label, out := "JSX", report.JSX
			switch {
			case opts.outline:
				label = "outline"
				if out, err = svgjsx.Outline(input); err != nil {
					return newCommandError("outline SVG", "parsing markup", err, "The outline needs well-formed XML; check for unclosed tags.")
				}
			case opts.diff:
				label, out = "diff", svgjsx.Diff(input)
				if out == "" {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No attributes needed renaming.")
					return nil
				}
				out = strings.TrimRight(out, "\n")
			case opts.component:
				label, out = "component", svgjsx.Component(input, opts.name)
			}

			return emit(ctx, cmd, app, logger, "convert SVG", label, out, opts.out)
		},
	}

	cmd.Flags().BoolVar(&opts.component, "component", false, "Wrap the JSX in an exported React component")
	cmd.Flags().StringVar(&opts.name, "name", "", "Component name or preview title (default IconComponent)")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "Print the element tree instead of JSX")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Print a unified diff between the SVG and the JSX")
	cmd.Flags().StringVar(&opts.html, "html", "", "Also write a standalone HTML preview to this path")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "Strip scripts and unknown elements from the HTML preview")
	cmd.MarkFlagsMutuallyExclusive("component", "outline", "diff")
	opts.out.register(cmd)

	return cmd
}
