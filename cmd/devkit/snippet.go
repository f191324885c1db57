package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/devkit/internal/snippet"
)

func newSnippetCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "snippet",
		Short:   "Manage the code snippet library",
		Long:    "Add, list, show, copy, remove, export and import code snippets stored in the configured backend.",
		Aliases: []string{"snip", "snippets"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSnippetAddCmd(app))
	cmd.AddCommand(newSnippetListCmd(app))
	cmd.AddCommand(newSnippetShowCmd(app))
	cmd.AddCommand(newSnippetRemoveCmd(app))
	cmd.AddCommand(newSnippetCopyCmd(app))
	cmd.AddCommand(newSnippetExportCmd(app))
	cmd.AddCommand(newSnippetImportCmd(app))

	return cmd
}

type snippetAddOptions struct {
	title       string
	description string
	category    string
	tags        string
	code        string
	file        string
}

func newSnippetAddCmd(app *AppContext) *cobra.Command {
	opts := &snippetAddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a snippet",
		Example: `  devkit snippet add --title useDebounce --category react-hooks --tags "react, hooks" --file useDebounce.ts
  pbpaste | devkit snippet add --title "Flex center" --category css`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.snippet.add")

			category, err := snippet.ParseCategory(opts.category)
			if err != nil || category == snippet.CategoryAll {
				if err == nil {
					err = errors.New(`"all" is a filter, not a category`)
				}
				return newCommandError("add snippet", "parsing the category", err, "Use one of: "+categorySlugs()+".")
			}

			code := opts.code
			if code == "" {
				var fileArgs []string
				if opts.file != "" {
					fileArgs = []string{opts.file}
				}
				if code, err = readInput(cmd, fileArgs); err != nil {
					return newCommandError("add snippet", "reading the code", err, "Pass --code, --file or pipe the code on stdin.")
				}
				code = strings.TrimRight(code, "\r\n")
			}

			mgr, err := app.Snippets(ctx)
			if err != nil {
				return err
			}

			created, err := mgr.Create(ctx, snippet.Draft{
				Title:       opts.title,
				Description: opts.description,
				Code:        code,
				Category:    category,
				Tags:        snippet.ParseTags(opts.tags),
			})
			if err != nil {
				logger.Error(ctx, "snippet add failed", "error", err)
				return newCommandError("add snippet", "saving the snippet", err, "Title and code are required.")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added snippet %q (%s)\n", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Snippet title (required)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Optional description")
	cmd.Flags().StringVar(&opts.category, "category", string(snippet.CategoryOther), "Category name or slug: "+categorySlugs())
	cmd.Flags().StringVar(&opts.tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&opts.code, "code", "", "Snippet code (default: read --file or stdin)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the code from this file")

	return cmd
}

type snippetListOptions struct {
	search     string
	category   string
	fuzzy      bool
	jsonOutput bool
}

func newSnippetListCmd(app *AppContext) *cobra.Command {
	opts := &snippetListOptions{}

	cmd := &cobra.Command{
		Use:     "list [query]",
		Short:   "List snippets, optionally filtered",
		Aliases: []string{"ls"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.snippet.list")

			if len(args) == 1 {
				opts.search = args[0]
			}
			category, err := snippet.ParseCategory(opts.category)
			if err != nil {
				return newCommandError("list snippets", "parsing the category", err, "Use all or one of: "+categorySlugs()+".")
			}

			mgr, err := app.Snippets(ctx)
			if err != nil {
				return err
			}

			var list []snippet.Snippet
			if opts.fuzzy && opts.search != "" {
				for _, s := range mgr.FuzzyFind(opts.search) {
					if category == snippet.CategoryAll || s.Category == category {
						list = append(list, s)
					}
				}
			} else {
				list = mgr.Filter(opts.search, category)
			}

			if opts.jsonOutput {
				return renderSnippetsJSON(cmd, list)
			}
			if len(list) == 0 {
				return renderEmptySnippets(cmd, len(mgr.List()) > 0)
			}
			return renderSnippetTable(cmd, list)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Case-insensitive search over title, description and tags")
	cmd.Flags().StringVar(&opts.category, "category", string(snippet.CategoryAll), "Only show this category")
	cmd.Flags().BoolVar(&opts.fuzzy, "fuzzy", false, "Rank titles by fuzzy match instead of substring search")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderEmptySnippets(cmd *cobra.Command, filtered bool) error {
	if filtered {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No snippets match the current filter.")
		return nil
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No snippets saved yet.")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'devkit snippet add --title <title>' to add your first snippet.")
	return nil
}

func renderSnippetTable(cmd *cobra.Command, list []snippet.Snippet) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tTITLE\tCATEGORY\tTAGS\tCREATED")
	for _, s := range list {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.Title,
			s.Category,
			valueOrFallback(strings.Join(s.Tags, ", "), "-"),
			s.CreatedAt.Local().Format(time.DateOnly),
		)
	}

	return writer.Flush()
}

type snippetJSONPayload struct {
	Count    int               `json:"count"`
	Snippets []snippet.Snippet `json:"snippets"`
}

func renderSnippetsJSON(cmd *cobra.Command, list []snippet.Snippet) error {
	if list == nil {
		list = []snippet.Snippet{}
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(snippetJSONPayload{Count: len(list), Snippets: list})
}

func newSnippetShowCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a snippet in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := app.CommandContext(cmd, "command.snippet.show")

			s, err := lookupSnippet(ctx, app, "show snippet", args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", s.Title)
			_, _ = fmt.Fprintf(out, "  ID:          %s\n", s.ID)
			_, _ = fmt.Fprintf(out, "  Category:    %s\n", s.Category)
			_, _ = fmt.Fprintf(out, "  Tags:        %s\n", valueOrFallback(strings.Join(s.Tags, ", "), "-"))
			_, _ = fmt.Fprintf(out, "  Created:     %s\n", s.CreatedAt.Local().Format(time.RFC1123))
			_, _ = fmt.Fprintf(out, "  Description: %s\n", valueOrFallback(s.Description, "(none)"))
			_, _ = fmt.Fprintf(out, "\n%s\n", s.Code)
			return nil
		},
	}

	return cmd
}

type snippetRemoveOptions struct {
	force bool
}

func newSnippetRemoveCmd(app *AppContext) *cobra.Command {
	opts := &snippetRemoveOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Short:   "Delete a snippet",
		Aliases: []string{"remove", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.snippet.rm")

			s, err := lookupSnippet(ctx, app, "remove snippet", args[0])
			if err != nil {
				return err
			}

			if !opts.force {
				confirmed, err := confirmRemoval(cmd, s)
				if err != nil {
					return err
				}
				if !confirmed {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			mgr, err := app.Snippets(ctx)
			if err != nil {
				return err
			}
			if _, err := mgr.Delete(ctx, s.ID); err != nil {
				logger.Error(ctx, "snippet delete failed", "id", s.ID, "error", err)
				return newCommandError("remove snippet", fmt.Sprintf("deleting %q", s.ID), err, "Check disk space and file permissions, then retry.")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed snippet %q (%s)\n", s.Title, s.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func confirmRemoval(cmd *cobra.Command, s snippet.Snippet) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove snippet", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Delete snippet %q (%s)? [y/N]: ", s.Title, s.ID)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

type snippetCopyOptions struct {
	out outputFlags
}

func newSnippetCopyCmd(app *AppContext) *cobra.Command {
	opts := &snippetCopyOptions{}

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a snippet's code to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.snippet.copy")

			s, err := lookupSnippet(ctx, app, "copy snippet", args[0])
			if err != nil {
				return err
			}
			return emit(ctx, cmd, app, logger, "copy snippet", fmt.Sprintf("%q", s.Title), s.Code, opts.out)
		},
	}

	opts.out.register(cmd)

	return cmd
}

type snippetExportOptions struct {
	format string
	output string
}

func newSnippetExportCmd(app *AppContext) *cobra.Command {
	opts := &snippetExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every snippet as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.snippet.export")

			format := snippet.FormatFromPath(opts.output)
			if opts.format != "" {
				parsed, err := snippet.ParseFormat(opts.format)
				if err != nil {
					return newCommandError("export snippets", "parsing the format", err, "Use --format json or --format yaml.")
				}
				format = parsed
			}

			mgr, err := app.Snippets(ctx)
			if err != nil {
				return err
			}
			data, err := mgr.Export(format)
			if err != nil {
				return newCommandError("export snippets", "encoding the library", err, "Retry with --format json.")
			}

			if opts.output == "" || opts.output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return newCommandError("export snippets", fmt.Sprintf("writing %s", opts.output), err, "Check that the target directory exists and is writable.")
			}

			logger.Info(ctx, "snippets exported", "path", opts.output, "count", len(mgr.List()))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d snippet(s) to %s\n", len(mgr.List()), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: json or yaml (default from the file extension, else json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

type snippetImportOptions struct {
	format string
}

func newSnippetImportCmd(app *AppContext) *cobra.Command {
	opts := &snippetImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import snippets from a JSON or YAML export",
		Long:  "Import snippets from a JSON or YAML export. Snippets whose id already exists are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.snippet.import")

			format := snippet.FormatFromPath(args[0])
			if opts.format != "" {
				parsed, err := snippet.ParseFormat(opts.format)
				if err != nil {
					return newCommandError("import snippets", "parsing the format", err, "Use --format json or --format yaml.")
				}
				format = parsed
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return newCommandError("import snippets", fmt.Sprintf("reading %s", args[0]), err, "Check that the file exists and you have permission to read it.")
			}

			mgr, err := app.Snippets(ctx)
			if err != nil {
				return err
			}
			added, err := mgr.Import(ctx, []byte(data), format)
			if err != nil {
				logger.Error(ctx, "snippet import failed", "path", args[0], "error", err)
				return newCommandError("import snippets", fmt.Sprintf("importing %s", args[0]), err, "Fix the entries reported above; nothing was imported.")
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d snippet(s)\n", added)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "Input format: json or yaml (default from the file extension)")

	return cmd
}

func lookupSnippet(ctx context.Context, app *AppContext, operation, id string) (snippet.Snippet, error) {
	mgr, err := app.Snippets(ctx)
	if err != nil {
		return snippet.Snippet{}, err
	}
	s, ok := mgr.Get(id)
	if !ok {
		return snippet.Snippet{}, newCommandError(operation, fmt.Sprintf("looking up snippet %q", id), errors.New("snippet not found"), "Run 'devkit snippet list' to view saved snippets.")
	}
	return s, nil
}

func categorySlugs() string {
	slugs := make([]string, len(snippet.Categories))
	for i, c := range snippet.Categories {
		slugs[i] = c.Slug()
	}
	return strings.Join(slugs, ", ")
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
