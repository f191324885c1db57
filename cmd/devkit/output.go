package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/devkit/internal/ports"
)

// outputFlags are shared by every command that produces copyable text.
type outputFlags struct {
	print bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.print, "print", "p", false, "Write the result to stdout only, without touching the clipboard")
}

// emit writes text to stdout and, unless --print is set, copies it to the
// clipboard as well.
func emit(ctx context.Context, cmd *cobra.Command, app *AppContext, logger ports.Logger, operation, label, text string, opts outputFlags) error {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
	if opts.print {
		return nil
	}

	if err := app.Clipboard.WriteText(ctx, text); err != nil {
		logger.Error(ctx, "clipboard write failed", "target", label, "error", err)
		return newCommandError(operation, "copying the result to the clipboard", err, "Re-run with --print to write the result to stdout only.")
	}

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "✓ Copied %s to clipboard\n", label)
	return nil
}

// readInput returns the contents of the file named by args[0], or stdin when
// no argument or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		if isTerminal(cmd.InOrStdin()) {
			return "", fmt.Errorf("no input: pass a file or pipe data on stdin")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

// swatch renders a coloured block when writing to a terminal, and nothing
// otherwise.
func swatch(w io.Writer, hex string) string {
	if !isTerminal(w) {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ") + " "
}
