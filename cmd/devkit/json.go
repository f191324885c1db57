package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/jsonfmt"
)

type jsonOptions struct {
	minify   bool
	sortKeys bool
	query    string
	stats    bool
	out      outputFlags
}

func newJSONCmd(app *AppContext) *cobra.Command {
	opts := &jsonOptions{}

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Validate, pretty-print or minify JSON",
		Example: `  devkit json data.json
  curl -s https://example.com/api | devkit json --minify --print
  devkit json --query users.0.name data.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.json")

			input, err := readInput(cmd, args)
			if err != nil {
				return newCommandError("format JSON", "reading input", err, "Pass a file path or pipe JSON on stdin.")
			}

			if opts.query != "" {
				raw, err := jsonfmt.Query(input, opts.query)
				if err != nil {
					return newCommandError("query JSON", fmt.Sprintf("evaluating path %q", opts.query), err, queryHint(err))
				}
				input = raw
			}

			mode := jsonfmt.Pretty
			if opts.minify {
				mode = jsonfmt.Minify
			}
			res, err := jsonfmt.Format(input, jsonfmt.Options{Mode: mode, SortKeys: opts.sortKeys})
			if err != nil {
				logger.Warn(ctx, "json input rejected", "tool", "json", "error", err)
				return newCommandError("format JSON", "parsing input", err, "Check for trailing commas, unquoted keys or single quotes.")
			}

			if opts.stats {
				s := res.Stats
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d characters, %d lines, %d keys\n", s.Characters, s.Lines, s.Keys)
			}
			return emit(ctx, cmd, app, logger, "format JSON", "JSON", res.Output, opts.out)
		},
	}

	cmd.Flags().BoolVarP(&opts.minify, "minify", "m", false, "Minify instead of pretty-printing")
	cmd.Flags().BoolVar(&opts.sortKeys, "sort-keys", false, "Sort object keys")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Select a value with a gjson path before formatting")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print character, line and key counts to stderr")
	opts.out.register(cmd)

	return cmd
}

func queryHint(err error) string {
	if errors.Is(err, jsonfmt.ErrPathNotFound) {
		return "Paths use dots and indexes, e.g. users.0.name; run without --query to inspect the document."
	}
	return "Check for trailing commas, unquoted keys or single quotes."
}
