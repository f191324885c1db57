package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/devkit/internal/ports"
	"github.com/alexisbeaulieu97/devkit/internal/snippet"
)

// copiedResetDelay is how long the copied indicator stays visible.
const copiedResetDelay = 2 * time.Second

// copyCmd writes text to the clipboard off the update loop.
func copyCmd(ctx context.Context, cb ports.Clipboard, label, text string) tea.Cmd {
	return func() tea.Msg {
		if err := cb.WriteText(ctx, text); err != nil {
			return CopyFailedMsg{Label: label, Err: err}
		}
		return CopiedMsg{Label: label}
	}
}

// clearCopiedCmd schedules the reset of the copied indicator
func clearCopiedCmd(seq int) tea.Cmd {
	return tea.Tick(copiedResetDelay, func(time.Time) tea.Msg {
		return clearCopiedMsg{Seq: seq}
	})
}

// loadSnippetsCmd reads the persisted library
func loadSnippetsCmd(ctx context.Context, mgr *snippet.Manager) tea.Cmd {
	return func() tea.Msg {
		return SnippetsLoadedMsg{Err: mgr.Load(ctx)}
	}
}
